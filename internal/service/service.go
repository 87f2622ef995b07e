package service

import (
	"github.com/pterm/pterm"

	"github.com/hance08/teller/internal/config"
	"github.com/hance08/teller/internal/store"
)

type Service struct {
	Account *AccountService
}

func NewService(backend store.Backend, policy config.Policy, logger *pterm.Logger) *Service {
	return &Service{
		Account: NewAccountService(Deps{
			Repo:      backend,
			Sequences: backend,
			Tx:        backend,
			Journal:   backend,
		}, policy, logger),
	}
}
