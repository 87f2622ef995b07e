package service

import (
	"cmp"
	"context"
	"slices"

	"github.com/hance08/teller/internal/model"
	"github.com/hance08/teller/internal/money"
)

// TypeTotal aggregates the accounts of one type held in one currency.
type TypeTotal struct {
	Type     model.AccountType
	Accounts int
	Total    money.Money
}

type Statistics struct {
	TotalAccounts int
	Totals        []TypeTotal
}

// Statistics sums balances per account type and currency. Totals are
// ordered by type, then currency code.
func (as *AccountService) Statistics(ctx context.Context) (Statistics, error) {
	accounts, err := as.repo.FindAll(ctx)
	if err != nil {
		return Statistics{}, err
	}

	type key struct {
		accType model.AccountType
		code    string
	}
	totals := make(map[key]*TypeTotal)
	for _, acc := range accounts {
		k := key{acc.Type(), acc.Balance().CurrencyCode()}
		t, ok := totals[k]
		if !ok {
			t = &TypeTotal{Type: acc.Type(), Total: money.Zero(acc.Balance().Currency())}
			totals[k] = t
		}
		sum, err := t.Total.Add(acc.Balance())
		if err != nil {
			return Statistics{}, err
		}
		t.Total = sum
		t.Accounts++
	}

	stats := Statistics{TotalAccounts: len(accounts)}
	for _, t := range totals {
		stats.Totals = append(stats.Totals, *t)
	}
	slices.SortFunc(stats.Totals, func(a, b TypeTotal) int {
		return cmp.Or(
			cmp.Compare(a.Type, b.Type),
			cmp.Compare(a.Total.CurrencyCode(), b.Total.CurrencyCode()),
		)
	})
	return stats, nil
}
