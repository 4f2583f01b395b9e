package configs_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"

	"droscher.com/CoffeeLedger/configs"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (suite *ConfigTestSuite) TestGetConfig_GetsNamedFile() {
	logger := zaptest.NewLogger(suite.T())

	config, err := configs.GetConfig("testdata/config.toml", logger)

	suite.Require().NoError(err)
	suite.Equal("test.local", config.DB.Host)
	suite.Equal(1234, config.DB.Port)
	suite.Equal("testuser", config.DB.User)
	suite.Equal("test123", config.DB.Password)
	suite.Equal("testdb", config.DB.Database)
	suite.Equal(5, config.DB.MaxIdleConnections)
	suite.Equal(7, config.DB.MaxOpenConnections)
	suite.Equal(666, config.Server.Port)
	suite.Equal("Europe/Berlin", config.Ledger.TimeZone)
	suite.Equal(25, config.Ledger.DefaultListLimit)
	suite.Equal(14, config.Ledger.DefaultDays)
	suite.True(config.Metrics.Disabled)
	suite.Equal("/internal/metrics", config.Metrics.Path)
	suite.Equal([]string{"roaster_web"}, config.Integrations.Bean)
	suite.Equal("https://roaster.local", config.Integrations.RoasterWeb.BaseURL)
	suite.Equal("/find", config.Integrations.RoasterWeb.SearchPath)
}

func (suite *ConfigTestSuite) TestGetConfig_GetsEnv() {
	logger := zaptest.NewLogger(suite.T())

	suite.T().Setenv("COFFEELEDGER_DB_HOST", "test.local")
	suite.T().Setenv("COFFEELEDGER_DB_PORT", "1234")
	suite.T().Setenv("COFFEELEDGER_DB_USER", "testuser")
	suite.T().Setenv("COFFEELEDGER_DB_PASSWORD", "test123")
	suite.T().Setenv("COFFEELEDGER_DB_DATABASE", "testdb")
	suite.T().Setenv("COFFEELEDGER_DB_MAXIDLECONNECTIONS", "5")
	suite.T().Setenv("COFFEELEDGER_DB_MAXOPENCONNECTIONS", "7")
	suite.T().Setenv("COFFEELEDGER_SERVER_PORT", "666")
	suite.T().Setenv("COFFEELEDGER_LEDGER_TIMEZONE", "America/Vancouver")
	suite.T().Setenv("COFFEELEDGER_INTEGRATIONS_BEAN", "roaster_web")
	suite.T().Setenv("COFFEELEDGER_INTEGRATIONS_ROASTERWEB_BASEURL", "https://env.roaster.local")

	config, err := configs.GetConfig("", logger)

	suite.Require().NoError(err)
	suite.Equal("test.local", config.DB.Host)
	suite.Equal(1234, config.DB.Port)
	suite.Equal("testuser", config.DB.User)
	suite.Equal("test123", config.DB.Password)
	suite.Equal("testdb", config.DB.Database)
	suite.Equal(5, config.DB.MaxIdleConnections)
	suite.Equal(7, config.DB.MaxOpenConnections)
	suite.Equal(666, config.Server.Port)
	suite.Equal("America/Vancouver", config.Ledger.TimeZone)
	suite.Equal([]string{"roaster_web"}, config.Integrations.Bean)
	suite.Equal("https://env.roaster.local", config.Integrations.RoasterWeb.BaseURL)
}

func (suite *ConfigTestSuite) TestGetConfig_AppliesDefaults() {
	logger := zaptest.NewLogger(suite.T())

	suite.T().Setenv("COFFEELEDGER_DB_HOST", "test.local")
	suite.T().Setenv("COFFEELEDGER_DB_PASSWORD", "test123")

	config, err := configs.GetConfig("", logger)

	suite.Require().NoError(err)
	suite.Equal(5432, config.DB.Port)
	suite.Equal("postgres", config.DB.User)
	suite.Equal("coffee", config.DB.Database)
	suite.Equal(8080, config.Server.Port)
	suite.Equal("UTC", config.Ledger.TimeZone)
	suite.Equal(20, config.Ledger.DefaultListLimit)
	suite.Equal(30, config.Ledger.DefaultDays)
	suite.False(config.Metrics.Disabled)
	suite.Equal("/metrics", config.Metrics.Path)
	suite.Empty(config.Integrations.Bean)
	suite.Equal("/search", config.Integrations.RoasterWeb.SearchPath)

	location, err := config.Ledger.Location()
	suite.Require().NoError(err)
	suite.Equal(time.UTC, location)
}

func (suite *ConfigTestSuite) TestGetConfig_EnvOverridesFile() {
	logger := zaptest.NewLogger(suite.T())

	suite.T().Setenv("COFFEELEDGER_DB_HOST", "env.local")
	suite.T().Setenv("COFFEELEDGER_DB_USER", "envuser")
	suite.T().Setenv("COFFEELEDGER_DB_PASSWORD", "env123")
	suite.T().Setenv("COFFEELEDGER_LEDGER_DEFAULTDAYS", "60")

	config, err := configs.GetConfig("testdata/config.toml", logger)

	suite.Require().NoError(err)
	suite.Equal("env.local", config.DB.Host)
	suite.Equal(1234, config.DB.Port)
	suite.Equal("envuser", config.DB.User)
	suite.Equal("env123", config.DB.Password)
	suite.Equal("testdb", config.DB.Database)
	suite.Equal(60, config.Ledger.DefaultDays)
	suite.Equal(25, config.Ledger.DefaultListLimit)
}

func (suite *ConfigTestSuite) TestGetConfig_MissingFileReturnsError() {
	logger := zaptest.NewLogger(suite.T())

	config, err := configs.GetConfig("testdata/missing.toml", logger)

	suite.Nil(config)
	suite.Error(err)
}

func (suite *ConfigTestSuite) TestGetConfig_MissingValues() {
	logger := zaptest.NewLogger(suite.T())

	config, err := configs.GetConfig("", logger)

	suite.Nil(config)
	suite.EqualError(err, "DB.Host: required validation failed, DB.Password: required validation failed")
}

func (suite *ConfigTestSuite) TestGetConfig_InvalidTimeZone() {
	logger := zaptest.NewLogger(suite.T())

	config, err := configs.GetConfig("testdata/bad-timezone.toml", logger)

	suite.Nil(config)
	suite.Require().ErrorIs(err, configs.ErrConfiguration)
	suite.ErrorContains(err, "Mars/Olympus_Mons")
}

func (suite *ConfigTestSuite) TestLocation_RejectsLocal() {
	for _, zone := range []string{"Local", "local"} {
		location, err := configs.Ledger{TimeZone: zone}.Location()

		suite.Nil(location)
		suite.Require().ErrorIs(err, configs.ErrConfiguration)
		suite.ErrorContains(err, "IANA")
	}
}

func (suite *ConfigTestSuite) TestLocation_NamedZone() {
	location, err := configs.Ledger{TimeZone: "Europe/Berlin"}.Location()

	suite.Require().NoError(err)
	suite.Equal("Europe/Berlin", location.String())
}
