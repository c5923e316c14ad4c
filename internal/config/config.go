package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const DefaultMetricsOrigin = "https://ln3tnkd4d5uiufjgimi6jlkmci0bceff.lambda-url.us-west-2.on.aws/"

// Config holds runtime configuration for the API service and dashctl.
type Config struct {
	ListenAddr      string
	ShutdownTimeout time.Duration
	CORSOrigins     []string

	MetricsOrigin string
	// StatsOrigin is optional; the node grid is disabled when empty.
	StatsOrigin  string
	FetchTimeout time.Duration

	EarningsEpoch string // "January 2006"
	DisplayTZ     string // IANA name, used for literal date ranges
	PayoutWeekday string
	PayoutNth     int

	LogLevel  string
	LogFormat string // text | json
}

// FromEnv loads configuration from environment variables with sensible defaults.
func FromEnv() Config {
	return Config{
		ListenAddr:      getEnv("APP_LISTEN_ADDR", ":8080"),
		ShutdownTimeout: time.Duration(getEnvInt("APP_SHUTDOWN_TIMEOUT_SEC", 5)) * time.Second,
		CORSOrigins:     getEnvList("APP_CORS_ORIGINS", []string{"*"}),
		MetricsOrigin:   getEnv("APP_METRICS_ORIGIN", DefaultMetricsOrigin),
		StatsOrigin:     getEnv("APP_STATS_ORIGIN", ""),
		FetchTimeout:    time.Duration(getEnvInt("APP_FETCH_TIMEOUT_SEC", 30)) * time.Second,
		EarningsEpoch:   getEnv("APP_EARNINGS_EPOCH", "November 2022"),
		DisplayTZ:       getEnv("APP_DISPLAY_TZ", "UTC"),
		PayoutWeekday:   getEnv("APP_PAYOUT_WEEKDAY", "Tuesday"),
		PayoutNth:       getEnvInt("APP_PAYOUT_NTH", 2),
		LogLevel:        getEnv("APP_LOG_LEVEL", "info"),
		LogFormat:       getEnv("APP_LOG_FORMAT", "text"),
	}
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error

	if err := checkOrigin("APP_METRICS_ORIGIN", c.MetricsOrigin); err != nil {
		errs = append(errs, err)
	}
	if c.StatsOrigin != "" {
		if err := checkOrigin("APP_STATS_ORIGIN", c.StatsOrigin); err != nil {
			errs = append(errs, err)
		}
	}
	if c.FetchTimeout <= 0 {
		errs = append(errs, errors.New("APP_FETCH_TIMEOUT_SEC must be positive"))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("APP_SHUTDOWN_TIMEOUT_SEC must be positive"))
	}
	if _, err := c.Epoch(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Location(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Weekday(); err != nil {
		errs = append(errs, err)
	}
	if c.PayoutNth < 1 || c.PayoutNth > 5 {
		errs = append(errs, fmt.Errorf("APP_PAYOUT_NTH must be between 1 and 5, got %d", c.PayoutNth))
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("APP_LOG_LEVEL: %w", err))
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		errs = append(errs, fmt.Errorf("APP_LOG_FORMAT must be text or json, got %q", c.LogFormat))
	}

	return errors.Join(errs...)
}

// Epoch is the first earnings month, UTC.
func (c Config) Epoch() (time.Time, error) {
	t, err := time.Parse("January 2006", strings.TrimSpace(c.EarningsEpoch))
	if err != nil {
		return time.Time{}, fmt.Errorf("APP_EARNINGS_EPOCH %q: expected e.g. \"November 2022\"", c.EarningsEpoch)
	}
	return t, nil
}

func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.DisplayTZ)
	if err != nil {
		return nil, fmt.Errorf("APP_DISPLAY_TZ: %w", err)
	}
	return loc, nil
}

func (c Config) Weekday() (time.Weekday, error) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(d.String(), strings.TrimSpace(c.PayoutWeekday)) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("APP_PAYOUT_WEEKDAY %q is not a weekday name", c.PayoutWeekday)
}

func checkOrigin(key, origin string) error {
	u, err := url.Parse(origin)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%s %q must be an absolute URL", key, origin)
	}
	return nil
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return def
	}
	return parsed
}

func getEnvList(key string, def []string) []string {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return def
	}

	parts := strings.Split(val, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
