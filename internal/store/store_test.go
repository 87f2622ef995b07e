package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/hance08/teller/internal/model"
	"github.com/hance08/teller/internal/money"
)

func openSQLite(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(DriverSQLite, filepath.Join(t.TempDir(), "teller.db"), os.DirFS("../.."))
	if err != nil {
		t.Fatalf("NewStore err=%v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func backends(t *testing.T) map[string]Backend {
	return map[string]Backend{
		"memory": NewMemoryStore(),
		"sqlite": openSQLite(t),
	}
}

func usd(t *testing.T, amount string) money.Money {
	t.Helper()
	m, err := money.Parse(amount, "USD")
	if err != nil {
		t.Fatalf("parse %q: %v", amount, err)
	}
	return m
}

func savings(t *testing.T, id model.AccountID, balance string) *model.SavingsAccount {
	t.Helper()
	acc, err := model.NewSavingsAccount(id, "Grace Hopper", usd(t, balance), decimal.RequireFromString("0.02"), usd(t, "50"))
	if err != nil {
		t.Fatalf("NewSavingsAccount err=%v", err)
	}
	return acc
}

func checking(t *testing.T, id model.AccountID, balance string) *model.CheckingAccount {
	t.Helper()
	acc, err := model.NewCheckingAccount(id, "Alan Turing", usd(t, balance), usd(t, "100"))
	if err != nil {
		t.Fatalf("NewCheckingAccount err=%v", err)
	}
	return acc
}

func TestSaveAndFindRoundTrip(t *testing.T) {
	ctx := context.Background()
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			sav := savings(t, "SAV000001", "1234.56")
			chk := checking(t, "CHK000001", "20")
			if _, err := chk.Withdraw(usd(t, "70")); err != nil {
				t.Fatalf("withdraw err=%v", err)
			}

			for _, acc := range []model.Account{sav, chk} {
				if err := b.Save(ctx, acc); err != nil {
					t.Fatalf("Save(%s) err=%v", acc.ID(), err)
				}
			}

			got, err := b.FindByID(ctx, "SAV000001")
			if err != nil {
				t.Fatalf("FindByID err=%v", err)
			}
			gs, ok := got.(*model.SavingsAccount)
			if !ok {
				t.Fatalf("type=%T want *SavingsAccount", got)
			}
			if !gs.Balance().Equal(usd(t, "1234.56")) || gs.HolderName() != "Grace Hopper" {
				t.Fatalf("unexpected savings %s %s", gs.HolderName(), gs.Balance())
			}
			if !gs.InterestRate().Equal(decimal.RequireFromString("0.02")) || !gs.MinimumBalance().Equal(usd(t, "50")) {
				t.Fatalf("policy not restored: rate=%s min=%s", gs.InterestRate(), gs.MinimumBalance())
			}
			if !gs.CreatedAt().Equal(sav.CreatedAt()) {
				t.Fatalf("createdAt=%v want=%v", gs.CreatedAt(), sav.CreatedAt())
			}
			if len(gs.Events()) != 0 {
				t.Fatalf("loaded account carries %d events", len(gs.Events()))
			}

			got, err = b.FindByID(ctx, "CHK000001")
			if err != nil {
				t.Fatalf("FindByID err=%v", err)
			}
			if !got.Balance().Equal(usd(t, "-50")) {
				t.Fatalf("checking balance=%s want -50", got.Balance())
			}
			if gc := got.(*model.CheckingAccount); !gc.OverdraftLimit().Equal(usd(t, "100")) {
				t.Fatalf("overdraft=%s want 100", gc.OverdraftLimit())
			}
		})
	}
}

func TestSaveOverwrites(t *testing.T) {
	ctx := context.Background()
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			acc := checking(t, "CHK000001", "100")
			if err := b.Save(ctx, acc); err != nil {
				t.Fatalf("Save err=%v", err)
			}
			if _, err := acc.Deposit(usd(t, "25")); err != nil {
				t.Fatalf("Deposit err=%v", err)
			}
			if err := b.Save(ctx, acc); err != nil {
				t.Fatalf("Save err=%v", err)
			}

			got, err := b.FindByID(ctx, "CHK000001")
			if err != nil {
				t.Fatalf("FindByID err=%v", err)
			}
			if !got.Balance().Equal(usd(t, "125")) {
				t.Fatalf("balance=%s want 125", got.Balance())
			}
			if n, _ := b.Count(ctx); n != 1 {
				t.Fatalf("count=%d want 1", n)
			}
		})
	}
}

func TestFindAllDeleteAndNotFound(t *testing.T) {
	ctx := context.Background()
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			for _, acc := range []model.Account{
				checking(t, "CHK000002", "10"),
				savings(t, "SAV000001", "100"),
				checking(t, "CHK000001", "10"),
			} {
				if err := b.Save(ctx, acc); err != nil {
					t.Fatalf("Save err=%v", err)
				}
			}

			all, err := b.FindAll(ctx)
			if err != nil {
				t.Fatalf("FindAll err=%v", err)
			}
			var ids []model.AccountID
			for _, acc := range all {
				ids = append(ids, acc.ID())
			}
			want := []model.AccountID{"CHK000001", "CHK000002", "SAV000001"}
			if len(ids) != len(want) {
				t.Fatalf("ids=%v want=%v", ids, want)
			}
			for i := range want {
				if ids[i] != want[i] {
					t.Fatalf("ids=%v want=%v", ids, want)
				}
			}

			if err := b.Delete(ctx, "CHK000002"); err != nil {
				t.Fatalf("Delete err=%v", err)
			}
			if err := b.Delete(ctx, "CHK000002"); !errors.Is(err, ErrRecordNotFound) {
				t.Fatalf("second Delete err=%v want ErrRecordNotFound", err)
			}
			if _, err := b.FindByID(ctx, "CHK000002"); !errors.Is(err, ErrRecordNotFound) {
				t.Fatalf("FindByID err=%v want ErrRecordNotFound", err)
			}
		})
	}
}

func TestNextSequenceIsPerTypeAndUnique(t *testing.T) {
	ctx := context.Background()
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			const n = 50
			var (
				mu   sync.Mutex
				seen = make(map[int]bool)
				wg   sync.WaitGroup
			)
			for range n {
				wg.Add(1)
				go func() {
					defer wg.Done()
					seq, err := b.NextSequence(ctx, model.Savings)
					if err != nil {
						t.Errorf("NextSequence err=%v", err)
						return
					}
					mu.Lock()
					seen[seq] = true
					mu.Unlock()
				}()
			}
			wg.Wait()

			if len(seen) != n {
				t.Fatalf("distinct sequences=%d want=%d", len(seen), n)
			}
			for i := 1; i <= n; i++ {
				if !seen[i] {
					t.Fatalf("sequence %d never handed out", i)
				}
			}

			seq, err := b.NextSequence(ctx, model.Checking)
			if err != nil || seq != 1 {
				t.Fatalf("checking seq=%d err=%v want 1", seq, err)
			}
			if _, err := b.NextSequence(ctx, "BROKERAGE"); !errors.Is(err, model.ErrUnknownAccountType) {
				t.Fatalf("err=%v want ErrUnknownAccountType", err)
			}
		})
	}
}

func TestExecTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			src := checking(t, "CHK000001", "100")
			if err := b.Save(ctx, src); err != nil {
				t.Fatalf("Save err=%v", err)
			}

			err := b.ExecTx(ctx, func(r Repository) error {
				if _, err := src.Withdraw(usd(t, "40")); err != nil {
					return err
				}
				if err := r.Save(ctx, src); err != nil {
					return err
				}
				if err := r.Save(ctx, checking(t, "CHK000002", "40")); err != nil {
					return err
				}
				return boom
			})
			if !errors.Is(err, boom) {
				t.Fatalf("ExecTx err=%v want boom", err)
			}

			got, err := b.FindByID(ctx, "CHK000001")
			if err != nil {
				t.Fatalf("FindByID err=%v", err)
			}
			if !got.Balance().Equal(usd(t, "100")) {
				t.Fatalf("balance=%s want 100 after rollback", got.Balance())
			}
			if _, err := b.FindByID(ctx, "CHK000002"); !errors.Is(err, ErrRecordNotFound) {
				t.Fatalf("rolled back insert visible, err=%v", err)
			}
		})
	}
}

func TestExecTxCommits(t *testing.T) {
	ctx := context.Background()
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			err := b.ExecTx(ctx, func(r Repository) error {
				if err := r.Save(ctx, checking(t, "CHK000001", "10")); err != nil {
					return err
				}
				return r.Save(ctx, savings(t, "SAV000001", "100"))
			})
			if err != nil {
				t.Fatalf("ExecTx err=%v", err)
			}
			if n, err := b.Count(ctx); err != nil || n != 2 {
				t.Fatalf("count=%d err=%v want 2", n, err)
			}
		})
	}
}

func TestEventJournal(t *testing.T) {
	ctx := context.Background()
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			acc := checking(t, "CHK000001", "100")
			if _, err := acc.Deposit(usd(t, "5")); err != nil {
				t.Fatalf("Deposit err=%v", err)
			}
			acc.RecordTransfer("SAV000001", usd(t, "5"), "rent")
			events := acc.PullEvents()

			if err := b.AppendEvents(ctx, events); err != nil {
				t.Fatalf("AppendEvents err=%v", err)
			}
			// replay is a no-op
			if err := b.AppendEvents(ctx, events); err != nil {
				t.Fatalf("AppendEvents replay err=%v", err)
			}

			records, err := b.ListEvents(ctx, "CHK000001")
			if err != nil {
				t.Fatalf("ListEvents err=%v", err)
			}
			if len(records) != 3 {
				t.Fatalf("records=%d want 3", len(records))
			}

			wantTypes := []model.EventType{model.EventAccountOpened, model.EventFundsDeposited, model.EventFundsTransferred}
			for i, rec := range records {
				if rec.EventType != wantTypes[i] {
					t.Fatalf("record %d type=%s want=%s", i, rec.EventType, wantTypes[i])
				}
			}

			decoded, err := records[2].Decode()
			if err != nil {
				t.Fatalf("Decode err=%v", err)
			}
			tr, ok := decoded.(model.FundsTransferred)
			if !ok {
				t.Fatalf("decoded=%T want FundsTransferred", decoded)
			}
			if tr.Destination != "SAV000001" || tr.Reference != "rent" || !tr.Amount.Equal(usd(t, "5")) {
				t.Fatalf("unexpected transfer %+v", tr)
			}
			if tr.EventID() != events[2].EventID() {
				t.Fatalf("event id=%s want=%s", tr.EventID(), events[2].EventID())
			}

			if other, _ := b.ListEvents(ctx, "SAV000001"); len(other) != 0 {
				t.Fatalf("unrelated account has %d events", len(other))
			}
		})
	}
}

func TestNewStoreRejectsUnknownDriver(t *testing.T) {
	if _, err := NewStore("oracle", "x", os.DirFS("../..")); !errors.Is(err, ErrUnsupportedDriver) {
		t.Fatalf("err=%v want ErrUnsupportedDriver", err)
	}
}

func TestRebind(t *testing.T) {
	pg := &Store{driver: DriverPostgres}
	got := pg.rebind("SELECT a FROM t WHERE x = ? AND y = ?")
	if want := "SELECT a FROM t WHERE x = $1 AND y = $2"; got != want {
		t.Fatalf("rebind=%q want=%q", got, want)
	}

	lite := &Store{driver: DriverSQLite}
	if q := "WHERE x = ?"; lite.rebind(q) != q {
		t.Fatalf("sqlite query must not be rewritten")
	}
}
