package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/hance08/teller/internal/constants"
	"github.com/hance08/teller/internal/model"
	"github.com/hance08/teller/internal/money"
)

// InterestReport describes one ApplyInterest call. Applied is false for
// absent and checking accounts, and when the computed interest is zero.
type InterestReport struct {
	AccountID  model.AccountID
	Applied    bool
	Interest   money.Money
	NewBalance money.Money
}

func (as *AccountService) ApplyInterest(ctx context.Context, id model.AccountID) (InterestReport, error) {
	unlock := as.locks.Lock(id)
	defer unlock()

	report := InterestReport{AccountID: id}

	acc, found, err := as.FindAccount(ctx, id)
	if err != nil {
		return report, err
	}
	if !found {
		return report, nil
	}
	report.NewBalance = acc.Balance()

	savings, ok := acc.(*model.SavingsAccount)
	if !ok {
		return report, nil
	}

	interest := savings.CalculateInterest()
	report.Interest = interest
	if !interest.IsPositive() {
		return report, nil
	}

	res, err := savings.Deposit(interest)
	if err != nil {
		return report, err
	}
	if !res.Succeeded() {
		return report, nil
	}

	if err := as.repo.Save(ctx, savings); err != nil {
		return report, fmt.Errorf("failed to save account %s: %w", id, err)
	}
	as.publish(ctx, savings)

	report.Applied = true
	report.NewBalance = savings.Balance()
	as.logger.Info("interest applied", as.logger.Args("id", id, "interest", interest, "balance", report.NewBalance))
	return report, nil
}

// ApplyInterestToAll credits interest to every savings account using a
// bounded worker pool. Reports come back in account id order. The first
// failure cancels the remaining work.
func (as *AccountService) ApplyInterestToAll(ctx context.Context) ([]InterestReport, error) {
	accounts, err := as.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	var ids []model.AccountID
	for _, acc := range accounts {
		if acc.Type() == model.Savings {
			ids = append(ids, acc.ID())
		}
	}

	reports := make([]InterestReport, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(constants.InterestWorkers)
	for i, id := range ids {
		g.Go(func() error {
			report, err := as.ApplyInterest(gctx, id)
			if err != nil {
				return fmt.Errorf("apply interest to %s: %w", id, err)
			}
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}
