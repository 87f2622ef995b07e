package account

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hance08/teller/internal/model"
	"github.com/hance08/teller/internal/service"
	"github.com/hance08/teller/internal/ui/prompts"
	"github.com/hance08/teller/internal/ui/views"
	"github.com/hance08/teller/internal/utils"
	"github.com/hance08/teller/internal/validation"
)

type createFlags struct {
	Holder   string
	Type     string
	Deposit  string
	Currency string
}

// AccountCreator manages the state and logic for creating an account
type AccountCreator struct {
	holder      string
	accountType model.AccountType
	currency    string
	deposit     string

	svc             *service.Service
	defaultCurrency string
}

func NewCreateCmd(svc *service.Service, defaultCurrency string) *cobra.Command {
	flags := &createFlags{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Open a new account.",
		Long: `Open a savings or checking account with an initial deposit.

Savings accounts keep a minimum balance and earn interest.
Checking accounts may be overdrawn up to their overdraft limit.
Without flags the command asks for every value.`,
		Example: `  teller account create -t savings -n "Ada Lovelace" -d 500
  teller account create -t checking -n "Alan Turing" -d 100 --currency EUR`,
		RunE: func(cmd *cobra.Command, args []string) error {
			creator := &AccountCreator{svc: svc, defaultCurrency: defaultCurrency}

			hasFlags := cmd.Flags().Changed("holder") ||
				cmd.Flags().Changed("type") ||
				cmd.Flags().Changed("deposit")

			if hasFlags {
				return creator.FlagsMode(cmd.Context(), flags)
			}
			return creator.InteractiveMode(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&flags.Holder, "holder", "n", "", "Account holder name")
	cmd.Flags().StringVarP(&flags.Type, "type", "t", "", "Account type: savings (SAV) or checking (CHK)")
	cmd.Flags().StringVarP(&flags.Deposit, "deposit", "d", "", "Initial deposit, must be positive")
	cmd.Flags().StringVar(&flags.Currency, "currency", "", "Currency code (defaults to config default)")

	return cmd
}

// FlagsMode builds an account from command-line flags
func (ac *AccountCreator) FlagsMode(ctx context.Context, flags *createFlags) error {
	if flags.Type == "" || flags.Holder == "" || flags.Deposit == "" {
		return fmt.Errorf("--type, --holder and --deposit are all required in flags mode")
	}

	accType, err := model.ParseAccountType(flags.Type)
	if err != nil {
		return err
	}
	if err := validation.ValidateHolderName(flags.Holder); err != nil {
		return err
	}
	if err := validation.ValidateCurrency(flags.Currency); err != nil {
		return err
	}

	ac.accountType = accType
	ac.holder = strings.TrimSpace(flags.Holder)
	ac.currency = ac.resolveCurrency(flags.Currency)
	ac.deposit = flags.Deposit

	if err := ac.displaySummary(); err != nil {
		return err
	}
	return ac.Save(ctx)
}

// InteractiveMode builds an account through interactive prompts
func (ac *AccountCreator) InteractiveMode(ctx context.Context) error {
	// Step 1: Select account type
	accType, err := prompts.PromptAccountType()
	if err != nil {
		return err
	}
	ac.accountType = accType

	// Step 2: Holder name
	holder, err := prompts.PromptHolderName(validation.ValidateHolderName)
	if err != nil {
		return err
	}
	ac.holder = strings.TrimSpace(holder)

	// Step 3: Currency
	currency, err := prompts.PromptCurrency(ac.defaultCurrency, validation.ValidateCurrency)
	if err != nil {
		return err
	}
	ac.currency = ac.resolveCurrency(currency)

	// Step 4: Initial deposit
	deposit, err := prompts.PromptInitialDeposit(ac.currency, validation.PositiveAmount(ac.currency))
	if err != nil {
		return err
	}
	ac.deposit = deposit

	if err := ac.displaySummary(); err != nil {
		return err
	}

	// Confirm proceed with creation
	if err := confirmProceed(); err != nil {
		return err
	}

	return ac.Save(ctx)
}

func (ac *AccountCreator) resolveCurrency(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return ac.defaultCurrency
	}
	return code
}

func (ac *AccountCreator) displaySummary() error {
	return views.RenderAccountSummary(views.AccountSummaryItem{
		HolderName:     ac.holder,
		Type:           ac.accountType,
		Currency:       ac.currency,
		InitialDeposit: ac.deposit,
	})
}

// Save opens the account through the service
func (ac *AccountCreator) Save(ctx context.Context) error {
	deposit, err := utils.ParseAmount(ac.deposit, ac.currency)
	if err != nil {
		return err
	}

	acc, err := ac.svc.Account.CreateAccount(ctx, service.CreateAccountCommand{
		HolderName:     ac.holder,
		InitialDeposit: deposit,
		AccountType:    string(ac.accountType),
	})
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	return views.RenderAccountSuccess(acc)
}

func confirmProceed() error {
	confirm, err := prompts.PromptConfirm("Proceed with account creation?", true)
	if err != nil {
		return err
	}

	if !confirm {
		return fmt.Errorf("account creation cancelled")
	}

	return nil
}
