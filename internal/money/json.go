package money

import (
	"encoding/json"
	"fmt"
)

type jsonMoney struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonMoney{Amount: m.StringFixed(), Currency: m.CurrencyCode()})
}

func (m *Money) UnmarshalJSON(data []byte) error {
	var raw jsonMoney
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode money: %w", err)
	}

	parsed, err := Parse(raw.Amount, raw.Currency)
	if err != nil {
		return err
	}

	*m = parsed
	return nil
}
