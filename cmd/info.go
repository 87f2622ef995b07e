package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hance08/teller/internal/config"
	"github.com/hance08/teller/internal/constants"
	"github.com/hance08/teller/internal/store"
	"github.com/hance08/teller/internal/ui/views"
)

type infoRunner struct {
	cfg *config.Config
}

func NewInfoCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display current configuration, database path, and system details.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				cfg: cfg,
			}

			return runner.Run()
		},
	}
}

func (r *infoRunner) Run() error {
	configPath := r.cfg.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	driver := r.cfg.Database.Driver
	if driver == "" {
		driver = store.DriverSQLite
	}

	dbPath := r.cfg.Database.Path
	dbExists := false
	switch driver {
	case store.DriverSQLite:
		if dbPath == "" {
			dbPath = filepath.Join(getAppDataDirOrUnknown(), constants.DefaultDBName)
		}
		if _, err := os.Stat(dbPath); err == nil {
			dbExists = true
		}
	default:
		// never print credentials from the DSN
		dbPath = "(configured by database.dsn)"
		dbExists = true
	}

	policy, err := r.cfg.ParsePolicy()
	if err != nil {
		return err
	}

	items := views.SystemInfoItem{
		ConfigPath:      configPath,
		DBDriver:        driver,
		DBPath:          dbPath,
		DBExists:        dbExists,
		DefaultCurrency: r.cfg.Defaults.Currency,
		AppDataDir:      getAppDataDirOrUnknown(),
		InterestRate:    policy.SavingsInterestRate.String(),
		MinimumBalance:  policy.SavingsMinimumBalance.StringFixed(2),
		OverdraftLimit:  policy.CheckingOverdraft.StringFixed(2),
	}

	if err := views.RenderSystemInfo(items); err != nil {
		return err
	}
	return nil
}

func getAppDataDirOrUnknown() string {
	dir, err := getAppDataDir()
	if err != nil {
		return "Unknown"
	}
	return dir
}
