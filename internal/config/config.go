package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Database  Database  `mapstructure:",squash"`
	Warehouse Warehouse `mapstructure:",squash"`
	LoadSync  LoadSync  `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Database credentials are resolved from the environment (or the secret store
// that populates it). They are never embedded in source.
type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Warehouse holds the load-semantics knobs.
//
// DateOrder resolves numerically ambiguous source dates: "day-first",
// "month-first", or "strict" to reject anything ambiguous. ReferentialPolicy
// decides what a staged sale referencing an unknown dimension key does to the
// batch: "abort" fails the whole run, "quarantine" flags the row and merges
// the remainder.
type Warehouse struct {
	DateOrder         string `mapstructure:"warehouse_date_order"`
	ReferentialPolicy string `mapstructure:"warehouse_referential_policy"`
}

type LoadSync struct {
	CronSchedule string `mapstructure:"load_sync_cron"`
	Enabled      bool   `mapstructure:"load_sync_enabled"`
	SourceDir    string `mapstructure:"load_sync_source_dir"`
	ArchiveDir   string `mapstructure:"load_sync_archive_dir"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/retail_dw")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "")

	// Matches the source system's day-first exports. Set to "strict" when the
	// feed's convention is unknown; ambiguous dates are then rejected.
	viper.SetDefault("WAREHOUSE_DATE_ORDER", "day-first")
	viper.SetDefault("WAREHOUSE_REFERENTIAL_POLICY", "abort")

	viper.SetDefault("LOAD_SYNC_CRON", "0 2 * * *") // nightly, 2am
	viper.SetDefault("LOAD_SYNC_ENABLED", false)
	viper.SetDefault("LOAD_SYNC_SOURCE_DIR", "data")
	viper.SetDefault("LOAD_SYNC_ARCHIVE_DIR", "data/processed")

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // local development only; no-op when .env is absent

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.WithError(err).Debug("no .env readable by viper, relying on environment")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.WithError(err).Warn("could not resolve working directory")
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.WithField("path", location).Debug("loaded .env")
			return
		}
	}
}
