package configs

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
	_ "time/tzdata" // time zones must resolve on hosts without zoneinfo

	"github.com/kkyr/fig"
	"go.uber.org/zap"
)

type DB struct {
	Host               string `validate:"required"`
	Port               int    `default:"5432"`
	User               string `default:"postgres"`
	Password           string `validate:"required"`
	Database           string `default:"coffee"`
	MaxIdleConnections int    `default:"10"`
	MaxOpenConnections int    `default:"10"`
}

type Server struct {
	Port int `default:"8080"`
}

// Ledger holds the defaults applied when a request leaves them out. All
// calendar bucketing uses TimeZone.
type Ledger struct {
	TimeZone         string `default:"UTC"`
	DefaultListLimit int    `default:"20"`
	DefaultDays      int    `default:"30"`
}

type Metrics struct {
	Disabled bool
	Path     string `default:"/metrics"`
}

type RoasterWeb struct {
	BaseURL    string
	SearchPath string `default:"/search"`
}

type Integrations struct {
	Bean       []string
	RoasterWeb RoasterWeb
}

type Config struct {
	DB           DB
	Server       Server
	Ledger       Ledger
	Metrics      Metrics
	Integrations Integrations
}

const envPrefix = "COFFEELEDGER" // env prefix for env vars

var ErrConfiguration = errors.New("configuration error")

func GetConfig(configFileName string, logger *zap.Logger) (*Config, error) {
	config := Config{}
	homeDir, _ := os.UserHomeDir()

	logger.Info("Loading config", zap.String("file", configFileName))

	err := fig.Load(&config, fig.File(configFileName), fig.Dirs(".", homeDir), fig.UseEnv(envPrefix))
	if err != nil {
		if strings.Contains(err.Error(), "file not found") {
			logger.Warn("Could not find config file", zap.String("file", configFileName))

			err = fig.Load(&config, fig.IgnoreFile(), fig.UseEnv(envPrefix))
			if err != nil {
				return nil, err
			}
		} else {
			return nil, err
		}
	}

	if _, err := config.Ledger.Location(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Location resolves TimeZone. The zone name is also sent to the database, so
// "Local" is rejected: it only has meaning inside this process.
func (l Ledger) Location() (*time.Location, error) {
	if strings.EqualFold(l.TimeZone, "Local") {
		return nil, fmt.Errorf("%w: time zone %q must be an IANA name", ErrConfiguration, l.TimeZone)
	}

	location, err := time.LoadLocation(l.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid time zone %q: %w", ErrConfiguration, l.TimeZone, err)
	}

	return location, nil
}
