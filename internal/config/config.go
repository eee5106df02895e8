package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/Veraticus/spend/internal/common"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Configuration keys.
const (
	KeyDatabasePath = "database.path"
	KeyLogLevel     = "logging.level"
	KeyLogFormat    = "logging.format"
	KeyLogFile      = "logging.file"
	KeyCurrency     = "ui.currency"
)

// Defaults.
const (
	DefaultDatabaseName = "spend.db"
	DefaultLogName      = "spend.log"
	DefaultCurrency     = "USD"
	EnvPrefix           = "SPEND"
)

// Settings is the resolved application configuration.
type Settings struct {
	DatabasePath string
	LogFormat    string
	LogFile      string
	Currency     string
	LogLevel     slog.Level
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyDatabasePath, DataPath(DefaultDatabaseName))
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeyLogFile, StatePath(DefaultLogName))
	v.SetDefault(KeyCurrency, DefaultCurrency)
}

// LoadEnvFile loads variables from the given .env files into the process
// environment. Missing files are ignored; variables already set win.
func LoadEnvFile(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
	}
	return nil
}

// Init prepares v: defaults, .env, environment binding and the config
// file. A missing config file is not an error.
func Init(v *viper.Viper, cfgFile string) error {
	SetDefaults(v)

	if err := LoadEnvFile(); err != nil {
		return err
	}

	if cfgFile != "" {
		v.SetConfigFile(ExpandPath(cfgFile))
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		v.AddConfigPath(filepath.Join(home, ".config", "spend"))
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
		slog.Debug("No config file found, using defaults")
	}
	return nil
}

// FromViper resolves and validates settings.
func FromViper(v *viper.Viper) (Settings, error) {
	level, err := common.ParseLevel(v.GetString(KeyLogLevel))
	if err != nil {
		return Settings{}, err
	}

	format := strings.ToLower(v.GetString(KeyLogFormat))
	if format != "console" && format != "json" {
		return Settings{}, fmt.Errorf("%w: log format %q", common.ErrInvalidConfig, format)
	}

	currency := strings.ToUpper(strings.TrimSpace(v.GetString(KeyCurrency)))
	if money.GetCurrency(currency) == nil {
		return Settings{}, fmt.Errorf("%w: unknown currency %q", common.ErrInvalidConfig, currency)
	}

	dbPath := v.GetString(KeyDatabasePath)
	if dbPath == "" {
		dbPath = DataPath(DefaultDatabaseName)
	}

	return Settings{
		DatabasePath: ExpandPath(dbPath),
		LogLevel:     level,
		LogFormat:    format,
		LogFile:      ExpandPath(v.GetString(KeyLogFile)),
		Currency:     currency,
	}, nil
}
