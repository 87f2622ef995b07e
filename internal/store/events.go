package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hance08/teller/internal/model"
)

// EventRecord is a journaled domain event. Payload is the JSON encoding of
// the concrete event.
type EventRecord struct {
	EventID    string
	AccountID  model.AccountID
	EventType  model.EventType
	OccurredAt time.Time
	Payload    string
}

func newEventRecord(event model.DomainEvent) (EventRecord, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return EventRecord{}, fmt.Errorf("encode %s event: %w", event.EventType(), err)
	}

	return EventRecord{
		EventID:    event.EventID().String(),
		AccountID:  event.AccountID(),
		EventType:  event.EventType(),
		OccurredAt: event.OccurredAt(),
		Payload:    string(payload),
	}, nil
}

// Decode turns the record back into its typed event.
func (r EventRecord) Decode() (model.DomainEvent, error) {
	switch r.EventType {
	case model.EventAccountOpened:
		return decodePayload[model.AccountOpened](r)
	case model.EventFundsDeposited:
		return decodePayload[model.FundsDeposited](r)
	case model.EventFundsWithdrawn:
		return decodePayload[model.FundsWithdrawn](r)
	case model.EventFundsTransferred:
		return decodePayload[model.FundsTransferred](r)
	default:
		return nil, fmt.Errorf("unknown event type %q", r.EventType)
	}
}

func decodePayload[T model.DomainEvent](r EventRecord) (model.DomainEvent, error) {
	var event T
	if err := json.Unmarshal([]byte(r.Payload), &event); err != nil {
		return nil, fmt.Errorf("decode %s event %s: %w", r.EventType, r.EventID, err)
	}
	return event, nil
}
