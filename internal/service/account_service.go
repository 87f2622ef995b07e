package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/hance08/teller/internal/config"
	"github.com/hance08/teller/internal/constants"
	"github.com/hance08/teller/internal/model"
	"github.com/hance08/teller/internal/money"
	"github.com/hance08/teller/internal/store"
)

// Deps are the storage collaborators of AccountService. A single
// store.Backend satisfies all of them.
type Deps struct {
	Repo      store.Repository
	Sequences store.SequenceGenerator
	Tx        store.Transactor
	Journal   store.EventJournal
}

type AccountService struct {
	repo    store.Repository
	seq     store.SequenceGenerator
	tx      store.Transactor
	journal store.EventJournal
	policy  config.Policy
	logger  *pterm.Logger
	locks   *keyLock
}

func NewAccountService(deps Deps, policy config.Policy, logger *pterm.Logger) *AccountService {
	if logger == nil {
		logger = pterm.DefaultLogger.WithLevel(pterm.LogLevelDisabled)
	}
	return &AccountService{
		repo:    deps.Repo,
		seq:     deps.Sequences,
		tx:      deps.Tx,
		journal: deps.Journal,
		policy:  policy,
		logger:  logger,
		locks:   newKeyLock(),
	}
}

type CreateAccountCommand struct {
	HolderName     string
	InitialDeposit money.Money
	// AccountType is parsed with model.ParseAccountType.
	AccountType string
}

type TransferCommand struct {
	From      model.AccountID
	To        model.AccountID
	Amount    money.Money
	Reference string
}

// CreateAccount validates cmd, allocates the next id for its type and stores
// the new account with the configured policy.
func (as *AccountService) CreateAccount(ctx context.Context, cmd CreateAccountCommand) (model.Account, error) {
	if strings.TrimSpace(cmd.HolderName) == "" {
		return nil, model.ErrBlankHolderName
	}
	if !cmd.InitialDeposit.IsPositive() {
		return nil, fmt.Errorf("initial deposit %s: %w", cmd.InitialDeposit, model.ErrNonPositiveAmount)
	}
	accType, err := model.ParseAccountType(cmd.AccountType)
	if err != nil {
		return nil, err
	}

	seq, err := as.seq.NextSequence(ctx, accType)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate account number: %w", err)
	}
	id, err := model.NewAccountID(accType, seq)
	if err != nil {
		return nil, err
	}

	unit := cmd.InitialDeposit.Currency()
	var acc model.Account
	switch accType {
	case model.Savings:
		acc, err = model.NewSavingsAccount(id, cmd.HolderName, cmd.InitialDeposit,
			as.policy.SavingsInterestRate, money.New(as.policy.SavingsMinimumBalance, unit))
	case model.Checking:
		acc, err = model.NewCheckingAccount(id, cmd.HolderName, cmd.InitialDeposit,
			money.New(as.policy.CheckingOverdraft, unit))
	}
	if err != nil {
		return nil, err
	}

	if err := as.repo.Save(ctx, acc); err != nil {
		return nil, fmt.Errorf("failed to save account %s: %w", id, err)
	}
	as.publish(ctx, acc)

	as.logger.Info("account created", as.logger.Args("id", id, "type", accType, "balance", acc.Balance()))
	return acc, nil
}

// FindAccount reports found=false for an absent account. The error is only
// set when the store itself fails.
func (as *AccountService) FindAccount(ctx context.Context, id model.AccountID) (model.Account, bool, error) {
	acc, err := as.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return acc, true, nil
}

func (as *AccountService) ListAccounts(ctx context.Context) ([]model.Account, error) {
	return as.repo.FindAll(ctx)
}

func (as *AccountService) Deposit(ctx context.Context, id model.AccountID, amount money.Money) (model.OperationResult, error) {
	unlock := as.locks.Lock(id)
	defer unlock()

	acc, found, err := as.FindAccount(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return model.DepositFailed{Reason: constants.ReasonAccountNotFound}, nil
	}

	res, err := acc.Deposit(amount)
	if err != nil {
		return nil, err
	}
	if !res.Succeeded() {
		as.logger.Debug("deposit refused", as.logger.Args("id", id, "result", res))
		return res, nil
	}

	if err := as.repo.Save(ctx, acc); err != nil {
		return nil, fmt.Errorf("failed to save account %s: %w", id, err)
	}
	as.publish(ctx, acc)

	as.logger.Info("deposit", as.logger.Args("id", id, "amount", amount, "balance", acc.Balance()))
	return res, nil
}

func (as *AccountService) Withdraw(ctx context.Context, id model.AccountID, amount money.Money) (model.OperationResult, error) {
	unlock := as.locks.Lock(id)
	defer unlock()

	acc, found, err := as.FindAccount(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return model.WithdrawalFailed{Reason: constants.ReasonAccountNotFound}, nil
	}

	res, err := acc.Withdraw(amount)
	if err != nil {
		return nil, err
	}
	if !res.Succeeded() {
		as.logger.Debug("withdrawal refused", as.logger.Args("id", id, "result", res))
		return res, nil
	}

	if err := as.repo.Save(ctx, acc); err != nil {
		return nil, fmt.Errorf("failed to save account %s: %w", id, err)
	}
	as.publish(ctx, acc)

	as.logger.Info("withdrawal", as.logger.Args("id", id, "amount", amount, "balance", acc.Balance()))
	return res, nil
}

// TransferFunds moves cmd.Amount between two accounts. Both legs run on
// copies of the loaded accounts and are saved in one store transaction, so
// a failure at any step leaves both stored accounts as they were.
func (as *AccountService) TransferFunds(ctx context.Context, cmd TransferCommand) (model.TransferResult, error) {
	if cmd.From == cmd.To {
		return nil, fmt.Errorf("transfer %s -> %s: %w", cmd.From, cmd.To, ErrSameAccount)
	}
	if !cmd.Amount.IsPositive() {
		return nil, fmt.Errorf("transfer amount %s: %w", cmd.Amount, model.ErrNonPositiveAmount)
	}

	unlock := as.locks.Lock(cmd.From, cmd.To)
	defer unlock()

	src, found, err := as.FindAccount(ctx, cmd.From)
	if err != nil {
		return nil, err
	}
	if !found {
		return model.TransferRejected{Reason: fmt.Sprintf("source %s", constants.ReasonAccountNotFound)}, nil
	}
	dst, found, err := as.FindAccount(ctx, cmd.To)
	if err != nil {
		return nil, err
	}
	if !found {
		return model.TransferRejected{Reason: fmt.Sprintf("destination %s", constants.ReasonAccountNotFound)}, nil
	}

	src, dst = src.Clone(), dst.Clone()

	res, err := src.Withdraw(cmd.Amount)
	if err != nil {
		return nil, fmt.Errorf("withdraw from %s: %w", cmd.From, err)
	}
	if !res.Succeeded() {
		as.logger.Debug("transfer refused", as.logger.Args("from", cmd.From, "to", cmd.To, "result", res))
		return model.TransferRejected{Reason: "withdrawal from source failed", Cause: res}, nil
	}

	res, err = dst.Deposit(cmd.Amount)
	if err != nil {
		return nil, fmt.Errorf("deposit into %s: %w", cmd.To, err)
	}
	if !res.Succeeded() {
		as.logger.Debug("transfer refused", as.logger.Args("from", cmd.From, "to", cmd.To, "result", res))
		return model.TransferRejected{Reason: "deposit into destination failed", Cause: res}, nil
	}

	src.RecordTransfer(cmd.To, cmd.Amount, cmd.Reference)

	err = as.tx.ExecTx(ctx, func(r store.Repository) error {
		if err := r.Save(ctx, src); err != nil {
			return err
		}
		return r.Save(ctx, dst)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to persist transfer %s -> %s: %w", cmd.From, cmd.To, err)
	}
	as.publish(ctx, src)
	as.publish(ctx, dst)

	as.logger.Info("transfer", as.logger.Args("from", cmd.From, "to", cmd.To, "amount", cmd.Amount, "reference", cmd.Reference))
	return model.TransferCompleted{
		SourceBalance:      src.Balance(),
		DestinationBalance: dst.Balance(),
	}, nil
}

// DeleteAccount closes an account. Its journal is kept.
func (as *AccountService) DeleteAccount(ctx context.Context, id model.AccountID) error {
	unlock := as.locks.Lock(id)
	defer unlock()

	if err := as.repo.Delete(ctx, id); err != nil {
		return err
	}
	as.logger.Info("account deleted", as.logger.Args("id", id))
	return nil
}

// History returns the journaled events of an account, oldest first.
func (as *AccountService) History(ctx context.Context, id model.AccountID) ([]model.DomainEvent, error) {
	records, err := as.journal.ListEvents(ctx, id)
	if err != nil {
		return nil, err
	}

	events := make([]model.DomainEvent, 0, len(records))
	for _, rec := range records {
		event, err := rec.Decode()
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, nil
}

// publish drains the account's pending events into the journal. A journal
// failure does not undo the already persisted change.
func (as *AccountService) publish(ctx context.Context, acc model.Account) {
	events := acc.PullEvents()
	if len(events) == 0 {
		return
	}
	if err := as.journal.AppendEvents(ctx, events); err != nil {
		as.logger.Warn("failed to journal events", as.logger.Args("id", acc.ID(), "count", len(events), "error", err))
	}
}
