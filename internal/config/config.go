package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config contains runtime settings for the ingestion daemon
type Config struct {
	LogLevel      string
	FranceTravail struct {
		ClientID     string
		ClientSecret string
		Scopes       []string
		TokenURL     string
		BaseURL      string
		Keywords     string
		Department   string
	} // France Travail API credentials and query
	Ingest struct {
		MaxResults int
		PageSize   int
		Schedule   string // cron spec, e.g. "@every 6h"
		Output     string // NDJSON file path
	}
	Retry struct {
		MaxAttempts int
		Delay       time.Duration
	}
	Breaker struct {
		Threshold int
		Reset     time.Duration
		Disabled  bool
	}
}

// Load populates config from environment variables. Zero values for the
// tuning knobs mean "use the client's defaults".
func Load() (Config, error) {
	cfg := Config{
		LogLevel: "info",
	}
	cfg.Ingest.MaxResults = 150
	cfg.Ingest.Schedule = "@every 6h"
	cfg.Ingest.Output = "jobs.ndjson"

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	cfg.FranceTravail.ClientID = os.Getenv("FT_CLIENT_ID")
	cfg.FranceTravail.ClientSecret = os.Getenv("FT_CLIENT_SECRET")
	cfg.FranceTravail.TokenURL = os.Getenv("FT_TOKEN_URL")
	cfg.FranceTravail.BaseURL = os.Getenv("FT_BASE_URL")
	cfg.FranceTravail.Keywords = os.Getenv("FT_KEYWORDS")
	cfg.FranceTravail.Department = os.Getenv("FT_DEPARTMENT")
	if v := os.Getenv("FT_SCOPES"); v != "" {
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				cfg.FranceTravail.Scopes = append(cfg.FranceTravail.Scopes, s)
			}
		}
	}

	if v := os.Getenv("INGEST_SCHEDULE"); v != "" {
		cfg.Ingest.Schedule = v
	}
	if v := os.Getenv("INGEST_OUTPUT"); v != "" {
		cfg.Ingest.Output = v
	}

	var err error
	if cfg.Ingest.MaxResults, err = intEnv("INGEST_MAX_RESULTS", cfg.Ingest.MaxResults); err != nil {
		return cfg, err
	}
	if cfg.Ingest.PageSize, err = intEnv("INGEST_PAGE_SIZE", 0); err != nil {
		return cfg, err
	}
	if cfg.Retry.MaxAttempts, err = intEnv("RETRY_MAX_ATTEMPTS", 0); err != nil {
		return cfg, err
	}
	if cfg.Breaker.Threshold, err = intEnv("BREAKER_THRESHOLD", 0); err != nil {
		return cfg, err
	}

	retryDelayMS, err := intEnv("RETRY_DELAY_MS", 0)
	if err != nil {
		return cfg, err
	}
	cfg.Retry.Delay = time.Duration(retryDelayMS) * time.Millisecond

	breakerResetMS, err := intEnv("BREAKER_RESET_MS", 0)
	if err != nil {
		return cfg, err
	}
	cfg.Breaker.Reset = time.Duration(breakerResetMS) * time.Millisecond

	cfg.Breaker.Disabled = boolEnv("BREAKER_DISABLED")

	var missingVars []string

	if cfg.FranceTravail.ClientID == "" {
		missingVars = append(missingVars, "FT_CLIENT_ID")
	}

	if cfg.FranceTravail.ClientSecret == "" {
		missingVars = append(missingVars, "FT_CLIENT_SECRET")
	}

	if len(missingVars) > 0 {
		return cfg, fmt.Errorf("missing required environment variables: %s", strings.Join(missingVars, ", "))
	}

	return cfg, nil
}

func intEnv(name string, def int) (int, error) {
	v := os.Getenv(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q is not an integer", name, v)
	}
	return n, nil
}

func boolEnv(name string) bool {
	switch strings.ToLower(os.Getenv(name)) {
	case "1", "true", "yes":
		return true
	}
	return false
}
