package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	sqlite "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/hance08/teller/internal/model"
	"github.com/hance08/teller/internal/money"
)

const accountColumns = `id, account_type, holder_name, currency, balance,
        interest_rate, minimum_balance, overdraft_limit, created_at`

const timeLayout = time.RFC3339Nano

// Save inserts the account or overwrites the stored row with the same id.
func (s *Store) Save(ctx context.Context, account model.Account) error {
	snap := account.Snapshot()

	var rate, minimum, overdraft sql.NullString
	switch snap.Type {
	case model.Savings:
		rate = sql.NullString{String: snap.InterestRate.String(), Valid: true}
		minimum = sql.NullString{String: snap.MinimumBalance.StringFixed(), Valid: true}
	case model.Checking:
		overdraft = sql.NullString{String: snap.OverdraftLimit.StringFixed(), Valid: true}
	}

	_, err := s.db.ExecContext(ctx, s.rebind(`
        INSERT INTO accounts (`+accountColumns+`, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT (id) DO UPDATE SET
            holder_name = excluded.holder_name,
            balance = excluded.balance,
            interest_rate = excluded.interest_rate,
            minimum_balance = excluded.minimum_balance,
            overdraft_limit = excluded.overdraft_limit,
            updated_at = excluded.updated_at
    `),
		string(snap.ID), string(snap.Type), snap.HolderName,
		snap.Balance.CurrencyCode(), snap.Balance.StringFixed(),
		rate, minimum, overdraft,
		snap.CreatedAt.UTC().Format(timeLayout),
		time.Now().UTC().Format(timeLayout),
	)
	if err != nil {
		if isConstraintErr(err) {
			return fmt.Errorf("failed to save account %s: %w", snap.ID, ErrConstraintViolation)
		}
		return fmt.Errorf("failed to save account %s: %w", snap.ID, err)
	}

	return nil
}

func (s *Store) FindByID(ctx context.Context, id model.AccountID) (model.Account, error) {
	row := s.db.QueryRowContext(ctx, s.rebind(`
        SELECT `+accountColumns+`
        FROM accounts
        WHERE id = ?
    `), string(id))

	acc, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("account %s: %w", id, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query account %s: %w", id, err)
	}

	return acc, nil
}

func (s *Store) FindAll(ctx context.Context) ([]model.Account, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT `+accountColumns+`
        FROM accounts
        ORDER BY id
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var accounts []model.Account
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, acc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}

	return accounts, nil
}

func (s *Store) Delete(ctx context.Context, id model.AccountID) error {
	result, err := s.db.ExecContext(ctx, s.rebind(`DELETE FROM accounts WHERE id = ?`), string(id))
	if err != nil {
		return fmt.Errorf("failed to delete account %s: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("account %s: %w", id, ErrRecordNotFound)
	}

	return nil
}

func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM accounts`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count accounts: %w", err)
	}
	return count, nil
}

// NextSequence bumps the counter row for accType in a single statement, so
// two callers can never read the same value.
func (s *Store) NextSequence(ctx context.Context, accType model.AccountType) (int, error) {
	if !accType.Valid() {
		return 0, fmt.Errorf("%w: %q", model.ErrUnknownAccountType, string(accType))
	}

	var next int
	err := s.db.QueryRowContext(ctx, s.rebind(`
        INSERT INTO account_sequences (account_type, last_value)
        VALUES (?, 1)
        ON CONFLICT (account_type) DO UPDATE
            SET last_value = account_sequences.last_value + 1
        RETURNING last_value
    `), string(accType)).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("failed to allocate %s sequence: %w", accType, err)
	}

	return next, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (model.Account, error) {
	var (
		id, accType, holder, code, balance, createdAt string
		rate, minimum, overdraft                      sql.NullString
	)

	if err := row.Scan(&id, &accType, &holder, &code, &balance,
		&rate, &minimum, &overdraft, &createdAt); err != nil {
		return nil, err
	}

	snap := model.Snapshot{
		ID:         model.AccountID(id),
		Type:       model.AccountType(accType),
		HolderName: holder,
	}

	var err error
	if snap.Balance, err = money.Parse(balance, code); err != nil {
		return nil, fmt.Errorf("account %s balance: %w", id, err)
	}
	if snap.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return nil, fmt.Errorf("account %s created_at: %w", id, err)
	}

	if rate.Valid {
		if snap.InterestRate, err = decimal.NewFromString(rate.String); err != nil {
			return nil, fmt.Errorf("account %s interest_rate: %w", id, err)
		}
	}
	if snap.MinimumBalance, err = parseOptionalMoney(minimum, code); err != nil {
		return nil, fmt.Errorf("account %s minimum_balance: %w", id, err)
	}
	if snap.OverdraftLimit, err = parseOptionalMoney(overdraft, code); err != nil {
		return nil, fmt.Errorf("account %s overdraft_limit: %w", id, err)
	}

	return model.FromSnapshot(snap)
}

func parseOptionalMoney(v sql.NullString, code string) (money.Money, error) {
	if !v.Valid {
		return money.Parse("0", code)
	}
	return money.Parse(v.String, code)
}

func isConstraintErr(err error) bool {
	var sqliteErr sqlite.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite.ErrConstraint
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code.Class() == "23"
	}

	return false
}
