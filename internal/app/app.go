package app

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pterm/pterm"

	"github.com/hance08/teller/internal/config"
	"github.com/hance08/teller/internal/constants"
	"github.com/hance08/teller/internal/service"
	"github.com/hance08/teller/internal/store"
)

type App struct {
	Service *service.Service
	Store   store.Backend
	Logger  *pterm.Logger
}

// NewApp initialize config, database and core logic, then return App entity
func NewApp(cfg *config.Config, migrationFS fs.FS) (*App, func(), error) {
	logger, err := NewLogger(cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}

	policy, err := cfg.ParsePolicy()
	if err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	driver, dsn, err := resolveDatabase(cfg.Database)
	if err != nil {
		return nil, nil, err
	}

	dbStore, err := store.NewStore(driver, dsn, migrationFS)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	logger.Debug("database ready", logger.Args("driver", dbStore.Driver()))

	svc := service.NewService(dbStore, policy, logger)

	cleanup := func() {
		if err := dbStore.Close(); err != nil {
			fmt.Printf("Error closing DB: %v\n", err)
		}
	}

	return &App{
		Service: svc,
		Store:   dbStore,
		Logger:  logger,
	}, cleanup, nil
}

// NewLogger returns a stderr logger. An empty level means warn.
func NewLogger(level string) (*pterm.Logger, error) {
	lvl, err := parseLogLevel(level)
	if err != nil {
		return nil, err
	}
	return pterm.DefaultLogger.WithWriter(os.Stderr).WithLevel(lvl), nil
}

func parseLogLevel(level string) (pterm.LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return pterm.LogLevelTrace, nil
	case "debug":
		return pterm.LogLevelDebug, nil
	case "info":
		return pterm.LogLevelInfo, nil
	case "", "warn", "warning":
		return pterm.LogLevelWarn, nil
	case "error":
		return pterm.LogLevelError, nil
	case "off", "disabled":
		return pterm.LogLevelDisabled, nil
	default:
		return 0, fmt.Errorf("invalid log.level %q", level)
	}
}

func resolveDatabase(db config.DatabaseConfig) (driver, dsn string, err error) {
	driver = db.Driver
	if driver == "" {
		driver = store.DriverSQLite
	}

	switch driver {
	case store.DriverSQLite:
		dsn = db.Path
		if dsn == "" {
			appDir, err := getAppDataDir()
			if err != nil {
				return "", "", err
			}
			dsn = filepath.Join(appDir, constants.DefaultDBName)
		}
	case store.DriverPostgres:
		if db.DSN == "" {
			return "", "", fmt.Errorf("database.dsn is required for the postgres driver")
		}
		dsn = db.DSN
	default:
		return "", "", fmt.Errorf("%w: %q", store.ErrUnsupportedDriver, driver)
	}
	return driver, dsn, nil
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
