package store

import (
	"context"
	"fmt"
	"time"

	"github.com/hance08/teller/internal/model"
)

// AppendEvents writes events in order. Events already journaled are
// skipped, so replaying a batch is harmless.
func (s *Store) AppendEvents(ctx context.Context, events []model.DomainEvent) error {
	for _, event := range events {
		rec, err := newEventRecord(event)
		if err != nil {
			return err
		}

		_, err = s.db.ExecContext(ctx, s.rebind(`
            INSERT INTO account_events (event_id, account_id, event_type, occurred_at, payload)
            VALUES (?, ?, ?, ?, ?)
            ON CONFLICT (event_id) DO NOTHING
        `), rec.EventID, string(rec.AccountID), string(rec.EventType),
			rec.OccurredAt.UTC().Format(timeLayout), rec.Payload)
		if err != nil {
			return fmt.Errorf("failed to journal event %s: %w", rec.EventID, err)
		}
	}
	return nil
}

// ListEvents returns the journal for one account, oldest first.
func (s *Store) ListEvents(ctx context.Context, id model.AccountID) ([]EventRecord, error) {
	rows, err := s.db.QueryContext(ctx, s.rebind(`
        SELECT event_id, account_id, event_type, occurred_at, payload
        FROM account_events
        WHERE account_id = ?
        ORDER BY seq
    `), string(id))
	if err != nil {
		return nil, fmt.Errorf("failed to query events for %s: %w", id, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var records []EventRecord
	for rows.Next() {
		var (
			rec                            EventRecord
			accountID, eventType, occurred string
		)
		if err := rows.Scan(&rec.EventID, &accountID, &eventType, &occurred, &rec.Payload); err != nil {
			return nil, fmt.Errorf("failed to scan event row: %w", err)
		}
		rec.AccountID = model.AccountID(accountID)
		rec.EventType = model.EventType(eventType)
		if rec.OccurredAt, err = time.Parse(timeLayout, occurred); err != nil {
			return nil, fmt.Errorf("event %s occurred_at: %w", rec.EventID, err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating event rows: %w", err)
	}

	return records, nil
}
