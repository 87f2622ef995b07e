package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"unicode"

	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hance08/teller/cmd/account"
	"github.com/hance08/teller/internal/app"
	"github.com/hance08/teller/internal/config"
	"github.com/hance08/teller/internal/constants"
	"github.com/hance08/teller/internal/errhandler"
	"github.com/hance08/teller/internal/ui/prompts"
)

var (
	cfgFile string
	cfg     *config.Config
)

func Execute(migrations fs.FS) {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	cfgFile = lookupConfigFlag(os.Args[1:])

	if err := initConfig(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	if err := ensureDefaultCurrency(); err != nil {
		errhandler.HandleError(err)
		os.Exit(1)
	}

	application, cleanup, err := app.NewApp(cfg, migrations)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	rootCmd := &cobra.Command{
		Use:           "teller",
		Short:         "teller is a CLI bank account manager",
		Long:          `teller opens savings and checking accounts and moves money between them.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "set the config file path")

	svc := application.Service
	defaultCurrency := cfg.Defaults.Currency

	rootCmd.AddCommand(account.NewAccountCmd(svc, defaultCurrency))
	rootCmd.AddCommand(NewDepositCmd(svc, defaultCurrency))
	rootCmd.AddCommand(NewWithdrawCmd(svc, defaultCurrency))
	rootCmd.AddCommand(NewTransferCmd(svc, defaultCurrency))
	rootCmd.AddCommand(NewInterestCmd(svc))
	rootCmd.AddCommand(NewStatsCmd(svc))
	rootCmd.AddCommand(NewInfoCmd(cfg))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = rootCmd.ExecuteContext(ctx)
	stop()
	cleanup()

	if err != nil {
		if errhandler.IsInterrupt(err) {
			errhandler.HandleError(err)
		}

		pterm.Error.Println(capitalize(err.Error()))
		if hint := errhandler.Hint(err); hint != "" {
			pterm.Info.Println(hint)
		}
		os.Exit(1)
	}
}

// lookupConfigFlag finds --config before cobra parses flags, since the
// config has to be loaded to build the commands.
func lookupConfigFlag(args []string) string {
	for i, arg := range args {
		switch {
		case arg == "--config" || arg == "-c":
			if i+1 < len(args) {
				return args[i+1]
			}
		case strings.HasPrefix(arg, "--config="):
			return strings.TrimPrefix(arg, "--config=")
		}
	}
	return ""
}

func ensureDefaultCurrency() error {
	if viper.GetString("defaults.currency") != "" {
		return nil
	}

	currency, err := initWizard()
	if err != nil {
		return err
	}
	cfg.Defaults.Currency = currency
	return nil
}

func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		appDir, err := getAppDataDir()
		if err != nil {
			return fmt.Errorf("error getting app dir: %w", err)
		}

		viper.AddConfigPath(appDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		if err := createDefaultConfig(); err != nil {
			return fmt.Errorf("failed to ensure config file: %w", err)
		}
	}

	// a .env in the working directory may carry TELLER_* overrides
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	viper.SetEnvPrefix("TELLER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // allow using environment variables to override
	bindEnvKeys()

	if err := viper.ReadInConfig(); err != nil {

		if cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return fmt.Errorf("config file error: %w", err)
		}
	}

	cfg = config.NewDefault()
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode into struct, %v", err)
	}

	dbPath, err := expandPath(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("invalid database.path: %w", err)
	}
	cfg.Database.Path = dbPath
	cfg.ConfigPath = viper.ConfigFileUsed()

	return nil
}

// bindEnvKeys makes Unmarshal see TELLER_* variables for keys that are
// missing from the config file.
func bindEnvKeys() {
	for _, key := range []string{
		"database.driver",
		"database.path",
		"database.dsn",
		"defaults.currency",
		"policy.savings.interest_rate",
		"policy.savings.minimum_balance",
		"policy.checking.overdraft_limit",
		"log.level",
	} {
		_ = viper.BindEnv(key)
	}
}

func initWizard() (string, error) {
	currentDefault := constants.DefaultCurrency

	currency, err := prompts.PromptInitCurrency(currentDefault)
	if err != nil {
		return "", err
	}

	viper.Set("defaults.currency", currency)

	if err := viper.WriteConfig(); err != nil {
		return "", fmt.Errorf("failed to save config to file: %w", err)
	}

	pterm.Success.Printf("Configuration saved. Default currency set to: %s\n", currency)

	return currency, nil
}

func getAppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, "."+constants.AppDirName), nil
	}

	return filepath.Join(configDir, constants.AppDirName), nil
}

func expandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if path == "~" {
			return home, nil
		}
		if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~\\") {
			return filepath.Join(home, path[2:]), nil
		}
	}
	return path, nil
}

func createDefaultConfig() error {
	appDir, err := getAppDataDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(appDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(appDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	defaults := config.NewDefault()
	viper.SetDefault("database.driver", defaults.Database.Driver)
	viper.SetDefault("policy.savings.interest_rate", defaults.Policy.Savings.InterestRate)
	viper.SetDefault("policy.savings.minimum_balance", defaults.Policy.Savings.MinimumBalance)
	viper.SetDefault("policy.checking.overdraft_limit", defaults.Policy.Checking.OverdraftLimit)
	viper.SetDefault("log.level", defaults.Log.Level)

	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
