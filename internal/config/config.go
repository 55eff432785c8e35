// Package config resolves runtime settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

var ErrMissingSecret = errors.New("config: JWT_SECRET is required unless AUTH_DISABLED=true")

type Config struct {
	Port string

	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	SQLitePath string

	RedisEnabled  bool
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	JWTSecret string
	JWTIssuer string
	JWTTTL    time.Duration

	RateLimit      int
	RateWindow     time.Duration
	PersistTimeout time.Duration
	AuthDisabled   bool
}

// PostgresDSN renders the connection string for the pgx driver.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

// DSN returns the data source for the configured SQL driver.
func (c *Config) DSN() string {
	if c.DBDriver == DriverSQLite {
		return c.SQLitePath
	}
	return c.PostgresDSN()
}

// Load reads envFiles (missing files are skipped; the default is .env) and
// resolves every key through viper with the environment taking precedence.
func Load(envFiles ...string) (*Config, error) {
	cfg, err := read(envFiles)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadStore is Load for tools that only touch the database; HTTP and auth
// settings are resolved but not validated.
func LoadStore(envFiles ...string) (*Config, error) {
	cfg, err := read(envFiles)
	if err != nil {
		return nil, err
	}
	if err := cfg.validateDriver(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func read(envFiles []string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return nil, fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	v := viper.New()
	v.SetTypeByDefaultValue(true)
	setDefaults(v)
	v.AutomaticEnv()

	cfg := &Config{
		Port: v.GetString("PORT"),

		DBDriver:   strings.ToLower(v.GetString("DB_DRIVER")),
		DBHost:     v.GetString("DB_HOST"),
		DBPort:     v.GetString("DB_PORT"),
		DBUser:     v.GetString("DB_USER"),
		DBPassword: v.GetString("DB_PASSWORD"),
		DBName:     v.GetString("DB_NAME"),
		SQLitePath: v.GetString("SQLITE_PATH"),

		RedisEnabled:  v.GetBool("REDIS_ENABLED"),
		RedisHost:     v.GetString("REDIS_HOST"),
		RedisPort:     v.GetString("REDIS_PORT"),
		RedisPassword: v.GetString("REDIS_PASSWORD"),
		RedisDB:       v.GetInt("REDIS_DB"),

		JWTSecret: v.GetString("JWT_SECRET"),
		JWTIssuer: v.GetString("JWT_ISSUER"),
		JWTTTL:    v.GetDuration("JWT_TTL"),

		RateLimit:      v.GetInt("RATE_LIMIT"),
		RateWindow:     v.GetDuration("RATE_WINDOW"),
		PersistTimeout: v.GetDuration("PERSIST_TIMEOUT"),
		AuthDisabled:   v.GetBool("AUTH_DISABLED"),
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")

	v.SetDefault("DB_DRIVER", DriverPostgres)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "kanso_user")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "kanso_db")
	v.SetDefault("SQLITE_PATH", "kanso-ledger.db")

	v.SetDefault("REDIS_ENABLED", true)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_ISSUER", "kanso-ledger")
	v.SetDefault("JWT_TTL", 24*time.Hour)

	v.SetDefault("RATE_LIMIT", 100)
	v.SetDefault("RATE_WINDOW", time.Minute)
	v.SetDefault("PERSIST_TIMEOUT", 3*time.Second)
	v.SetDefault("AUTH_DISABLED", false)
}

func (c *Config) Validate() error {
	if err := c.validateDriver(); err != nil {
		return err
	}
	if c.JWTSecret == "" && !c.AuthDisabled {
		return ErrMissingSecret
	}
	if c.JWTTTL <= 0 {
		return fmt.Errorf("config: JWT_TTL must be positive")
	}
	if c.PersistTimeout <= 0 {
		return fmt.Errorf("config: PERSIST_TIMEOUT must be positive")
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("config: RATE_LIMIT cannot be negative")
	}
	return nil
}

func (c *Config) validateDriver() error {
	switch c.DBDriver {
	case DriverPostgres, DriverSQLite, DriverMemory:
		return nil
	}
	return fmt.Errorf("config: DB_DRIVER must be postgres, sqlite or memory, got %q", c.DBDriver)
}
