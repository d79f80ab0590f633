package cmd

import (
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/labstack/gommon/log"
	"github.com/lib/pq"
)

type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`

	DatabaseURL string `env:"DATABASE_URL"`
	DBHost      string `env:"DB_HOST"     envDefault:"localhost"`
	DBPort      string `env:"DB_PORT"     envDefault:"5432"`
	DBUser      string `env:"DB_USER"     envDefault:"postgres"`
	DBPassword  string `env:"DB_PASSWORD"`
	DBName      string `env:"DB_NAME"     envDefault:"parceltrack"`
	DBSslMode   string `env:"DB_SSLMODE"  envDefault:"disable"`

	JWTSecret  string        `env:"JWT_SECRET,required,notEmpty"`
	JWTTTL     time.Duration `env:"JWT_TTL"                      envDefault:"168h"`
	BcryptCost int           `env:"BCRYPT_COST"                  envDefault:"10"`

	FeeRatePerUnit float64 `env:"FEE_RATE_PER_UNIT" envDefault:"80"`

	AdminName     string `env:"ADMIN_NAME"     envDefault:"Administrator"`
	AdminEmail    string `env:"ADMIN_EMAIL"`
	AdminPassword string `env:"ADMIN_PASSWORD"`

	StatusReportSchedule string `env:"STATUS_REPORT_SCHEDULE" envDefault:"@every 5m"`
	LogLevel             string `env:"LOG_LEVEL"              envDefault:"info"`
}

// LoadConfig reads the process environment. Callers load any .env file first.
func LoadConfig() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the environment parser accepts but the service
// cannot run with.
func (c Config) Validate() error {
	if math.IsNaN(c.FeeRatePerUnit) || math.IsInf(c.FeeRatePerUnit, 0) || c.FeeRatePerUnit < 0 {
		return fmt.Errorf("FEE_RATE_PER_UNIT must be a finite non-negative number, got %v", c.FeeRatePerUnit)
	}
	return nil
}

// DSN returns the keyword/value connection string. DATABASE_URL wins over the
// individual DB_* keys when set.
func (c Config) DSN() (string, error) {
	if c.DatabaseURL != "" {
		dsn, err := pq.ParseURL(c.DatabaseURL)
		if err != nil {
			return "", fmt.Errorf("parse DATABASE_URL: %w", err)
		}
		return dsn, nil
	}
	return fmt.Sprintf("host=%v port=%v user=%v password=%v dbname=%v sslmode=%v",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode), nil
}

// HasBootstrapAdmin reports whether an administrator account should be
// ensured at startup.
func (c Config) HasBootstrapAdmin() bool {
	return c.AdminEmail != "" && c.AdminPassword != ""
}

func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// EchoLevel maps LOG_LEVEL onto echo's own logger.
func (c Config) EchoLevel() log.Lvl {
	switch c.SlogLevel() {
	case slog.LevelDebug:
		return log.DEBUG
	case slog.LevelWarn:
		return log.WARN
	case slog.LevelError:
		return log.ERROR
	default:
		return log.INFO
	}
}
