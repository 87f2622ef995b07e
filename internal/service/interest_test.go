package service

import (
	"context"
	"testing"

	"github.com/hance08/teller/internal/model"
	"github.com/hance08/teller/internal/money"
	"github.com/hance08/teller/internal/store"
)

func TestApplyInterest(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, store.NewMemoryStore())
	sav := open(t, svc, "savings", "1234.56")
	chk := open(t, svc, "checking", "500")

	report, err := svc.ApplyInterest(ctx, sav.ID())
	if err != nil {
		t.Fatalf("ApplyInterest err=%v", err)
	}
	if !report.Applied || !report.Interest.Equal(usd(t, "24.69")) || !report.NewBalance.Equal(usd(t, "1259.25")) {
		t.Fatalf("report=%+v", report)
	}
	if got := balanceOf(t, svc, sav.ID()); !got.Equal(usd(t, "1259.25")) {
		t.Fatalf("stored=%s want 1259.25", got)
	}

	history, _ := svc.History(ctx, sav.ID())
	if last, ok := history[len(history)-1].(model.FundsDeposited); !ok || !last.Amount.Equal(usd(t, "24.69")) {
		t.Fatalf("last event=%#v want FundsDeposited 24.69", history[len(history)-1])
	}

	report, err = svc.ApplyInterest(ctx, chk.ID())
	if err != nil || report.Applied {
		t.Fatalf("checking report=%+v err=%v", report, err)
	}
	if got := balanceOf(t, svc, chk.ID()); !got.Equal(usd(t, "500")) {
		t.Fatalf("checking=%s want 500", got)
	}

	report, err = svc.ApplyInterest(ctx, "SAV000404")
	if err != nil || report.Applied {
		t.Fatalf("absent report=%+v err=%v", report, err)
	}
}

func TestApplyInterestSkipsZeroInterest(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, store.NewMemoryStore())
	// 0.02 * 0.20 = 0.004, rounds to zero cents.
	sav := open(t, svc, "savings", "0.20")

	report, err := svc.ApplyInterest(ctx, sav.ID())
	if err != nil {
		t.Fatalf("ApplyInterest err=%v", err)
	}
	if report.Applied || !report.Interest.IsZero() {
		t.Fatalf("report=%+v want not applied", report)
	}
	if history, _ := svc.History(ctx, sav.ID()); len(history) != 1 {
		t.Fatalf("journal=%d want 1", len(history))
	}
}

func TestApplyInterestToAll(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, store.NewMemoryStore())
	for _, balance := range []string{"100", "200", "300"} {
		open(t, svc, "savings", balance)
	}
	open(t, svc, "checking", "1000")

	reports, err := svc.ApplyInterestToAll(ctx)
	if err != nil {
		t.Fatalf("ApplyInterestToAll err=%v", err)
	}
	want := []struct {
		id      model.AccountID
		balance string
	}{
		{"SAV000001", "102.00"},
		{"SAV000002", "204.00"},
		{"SAV000003", "306.00"},
	}
	if len(reports) != len(want) {
		t.Fatalf("reports=%d want %d", len(reports), len(want))
	}
	for i, w := range want {
		r := reports[i]
		if r.AccountID != w.id || !r.Applied || !r.NewBalance.Equal(usd(t, w.balance)) {
			t.Fatalf("report[%d]=%+v want %s %s", i, r, w.id, w.balance)
		}
	}
	if got := balanceOf(t, svc, "CHK000001"); !got.Equal(usd(t, "1000")) {
		t.Fatalf("checking=%s want untouched", got)
	}
}

func TestApplyInterestToAllHonoursCancellation(t *testing.T) {
	svc := newTestService(t, store.NewMemoryStore())
	open(t, svc, "savings", "100")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := svc.ApplyInterestToAll(ctx); err == nil {
		t.Fatal("cancelled context must fail")
	}
}

func TestStatistics(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, store.NewMemoryStore())
	open(t, svc, "savings", "100")
	open(t, svc, "savings", "250.50")
	open(t, svc, "checking", "40")
	eur, _ := money.Parse("75", "EUR")
	if _, err := svc.CreateAccount(ctx, CreateAccountCommand{HolderName: "Emmy", InitialDeposit: eur, AccountType: "checking"}); err != nil {
		t.Fatalf("CreateAccount err=%v", err)
	}

	stats, err := svc.Statistics(ctx)
	if err != nil {
		t.Fatalf("Statistics err=%v", err)
	}
	if stats.TotalAccounts != 4 {
		t.Fatalf("total=%d want 4", stats.TotalAccounts)
	}

	want := []struct {
		accType  model.AccountType
		accounts int
		total    string
	}{
		{model.Checking, 1, "EUR 75.00"},
		{model.Checking, 1, "USD 40.00"},
		{model.Savings, 2, "USD 350.50"},
	}
	if len(stats.Totals) != len(want) {
		t.Fatalf("totals=%+v", stats.Totals)
	}
	for i, w := range want {
		got := stats.Totals[i]
		if got.Type != w.accType || got.Accounts != w.accounts || got.Total.String() != w.total {
			t.Fatalf("totals[%d]=%s %d %s want %s %d %s", i, got.Type, got.Accounts, got.Total, w.accType, w.accounts, w.total)
		}
	}
}
