// Package config loads application settings from an optional YAML file and
// EM_-prefixed environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. EM_DATABASE_DRIVER.
const EnvPrefix = "EM"

type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	Database DatabaseConfig `mapstructure:"database"`
}

type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
	// SQLLevel controls what gorm reports through the logger: silent, error, warn or info.
	SQLLevel string `mapstructure:"sql_level"`
}

// DatabaseConfig selects the driver and carries the connection settings for it.
type DatabaseConfig struct {
	Driver   string         `mapstructure:"driver"`
	MySQL    MySQLConfig    `mapstructure:"mysql"`
	Postgres PostgresConfig `mapstructure:"postgres"`
	Pool     PoolConfig     `mapstructure:"pool"`
}

type MySQLConfig struct {
	DSN string `mapstructure:"dsn"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

type PoolConfig struct {
	MaxIdleConns       int `mapstructure:"max_idle_conns"`
	MaxOpenConns       int `mapstructure:"max_open_conns"`
	ConnMaxLifetimeMin int `mapstructure:"conn_max_lifetime_minutes"`
}

// DSN renders the key/value connection string understood by the pgx driver.
// Values are quoted so empty passwords and values with spaces survive parsing.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		quoteDSNValue(p.Host), p.Port, quoteDSNValue(p.User), quoteDSNValue(p.Password),
		quoteDSNValue(p.DBName), quoteDSNValue(p.SSLMode))
}

var dsnValueEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

func quoteDSNValue(s string) string {
	return "'" + dsnValueEscaper.Replace(s) + "'"
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output_path", "")
	v.SetDefault("log.sql_level", "warn")

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.mysql.dsn", "")
	v.SetDefault("database.postgres.host", "localhost")
	v.SetDefault("database.postgres.port", 5432)
	v.SetDefault("database.postgres.user", "postgres")
	v.SetDefault("database.postgres.password", "")
	v.SetDefault("database.postgres.dbname", "employee_db")
	v.SetDefault("database.postgres.sslmode", "disable")
	v.SetDefault("database.pool.max_idle_conns", 2)
	v.SetDefault("database.pool.max_open_conns", 5)
	v.SetDefault("database.pool.conn_max_lifetime_minutes", 60)
}

// Load reads configPath when it exists and layers environment variables on
// top. A missing file is not an error; the defaults and environment still apply.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			v.SetConfigFile(configPath)
			v.SetConfigType("yaml")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read config file %s: %w", configPath, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("stat config file %s: %w", configPath, err)
		}
	}

	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return &conf, nil
}

// Validate checks that the selected driver has what it needs to connect.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "mysql":
		if c.Database.MySQL.DSN == "" {
			return errors.New("database.mysql.dsn is required for the mysql driver")
		}
	case "postgres":
		if c.Database.Postgres.Host == "" || c.Database.Postgres.DBName == "" {
			return errors.New("database.postgres.host and database.postgres.dbname are required")
		}
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	return nil
}
