// Package config reads the server configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var (
	ErrMissing = errors.New("is required but not set")
	ErrInvalid = errors.New("is invalid")
)

// Config is the configuration of the server.
type Config struct {
	Port          string
	APIURL        *url.URL
	DatabaseDSN   string
	Income        decimal.Decimal
	MonthlyBudget decimal.Decimal
	DebtScore     decimal.Decimal
}

// Defaults for all optional settings.
const (
	DefaultPort          = "8080"
	DefaultDatabaseDSN   = "file::memory:?cache=shared"
	DefaultIncome        = "25000"
	DefaultMonthlyBudget = "0"
	DefaultDebtScore     = "0.5"
)

// Load reads the configuration from the environment.
//
// Variables from the files are only set if they are not already set in the
// environment. Without files, ".env" in the working directory is read if it exists.
func Load(files ...string) (Config, error) {
	err := godotenv.Load(files...)
	if errors.Is(err, fs.ErrNotExist) && len(files) == 0 {
		log.Debug().Msg("no .env file found, using the environment only")
	} else if err != nil {
		return Config{}, fmt.Errorf("could not load environment file: %w", err)
	}

	var errs []error
	c := Config{
		Port:        getenv("PORT", DefaultPort),
		DatabaseDSN: getenv("DATABASE_DSN", DefaultDatabaseDSN),
	}

	apiURL, ok := os.LookupEnv("API_URL")
	if !ok || apiURL == "" {
		errs = append(errs, fmt.Errorf("API_URL %w", ErrMissing))
	} else {
		c.APIURL, err = url.Parse(apiURL)
		if err != nil {
			errs = append(errs, fmt.Errorf("API_URL %w: %w", ErrInvalid, err))
		}
	}

	c.Income, err = decimal.NewFromString(getenv("INCOME", DefaultIncome))
	if err != nil {
		errs = append(errs, fmt.Errorf("INCOME %w: %w", ErrInvalid, err))
	}

	c.MonthlyBudget, err = decimal.NewFromString(getenv("MONTHLY_BUDGET", DefaultMonthlyBudget))
	if err != nil {
		errs = append(errs, fmt.Errorf("MONTHLY_BUDGET %w: %w", ErrInvalid, err))
	}

	c.DebtScore, err = decimal.NewFromString(getenv("DEBT_SCORE", DefaultDebtScore))
	if err != nil {
		errs = append(errs, fmt.Errorf("DEBT_SCORE %w: %w", ErrInvalid, err))
	}

	if len(errs) > 0 {
		return Config{}, errors.Join(errs...)
	}

	return c, c.Validate()
}

// Validate checks the value ranges. All problems are reported at once.
func (c Config) Validate() error {
	var errs []error

	if c.APIURL == nil || c.APIURL.Scheme == "" || c.APIURL.Host == "" {
		errs = append(errs, fmt.Errorf("API_URL %w: it must be an absolute URL, e.g. https://example.com/api", ErrInvalid))
	}

	if !c.Income.IsPositive() {
		errs = append(errs, fmt.Errorf("INCOME %w: it must be positive, got %s", ErrInvalid, c.Income))
	}

	if c.MonthlyBudget.IsNegative() {
		errs = append(errs, fmt.Errorf("MONTHLY_BUDGET %w: it must not be negative, got %s", ErrInvalid, c.MonthlyBudget))
	}

	if c.DebtScore.IsNegative() || c.DebtScore.GreaterThan(decimal.NewFromInt(1)) {
		errs = append(errs, fmt.Errorf("DEBT_SCORE %w: it must be between 0 and 1, got %s", ErrInvalid, c.DebtScore))
	}

	return errors.Join(errs...)
}

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}

	return fallback
}
