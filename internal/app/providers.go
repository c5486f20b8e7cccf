// Package app assembles the ingestion daemon from its parts.
package app

import (
	"github.com/jobpulse/jobpulse/internal/config"
	"github.com/jobpulse/jobpulse/internal/domain/job"
	ftconnector "github.com/jobpulse/jobpulse/internal/domain/job/providers/francetravail"
	"github.com/jobpulse/jobpulse/internal/normalize"
	"github.com/jobpulse/jobpulse/internal/region"
	"github.com/jobpulse/jobpulse/internal/scheduler"
	"github.com/jobpulse/jobpulse/pkg/francetravail"
	"github.com/jobpulse/jobpulse/pkg/logging"
)

// Application bundles the wired components of the ingestion daemon.
type Application struct {
	Service   job.Service
	Scheduler *scheduler.Scheduler
}

// provideClientConfig maps runtime config onto the API client config
func provideClientConfig(cfg config.Config, log *logging.Logger) francetravail.Config {
	return francetravail.Config{
		ClientID:            cfg.FranceTravail.ClientID,
		ClientSecret:        cfg.FranceTravail.ClientSecret,
		Scopes:              cfg.FranceTravail.Scopes,
		TokenURL:            cfg.FranceTravail.TokenURL,
		BaseURL:             cfg.FranceTravail.BaseURL,
		PageSize:            cfg.Ingest.PageSize,
		MaxRetryAttempts:    cfg.Retry.MaxAttempts,
		RetryDelay:          cfg.Retry.Delay,
		BreakerThreshold:    cfg.Breaker.Threshold,
		BreakerResetTimeout: cfg.Breaker.Reset,
		DisableBreaker:      cfg.Breaker.Disabled,
		Logger:              log,
	}
}

// provideResolver builds the region resolver on the built-in catalog
func provideResolver() *region.Resolver {
	return region.NewResolver(region.Catalog{})
}

// provideNormalizer creates the offer normalizer
func provideNormalizer(resolver *region.Resolver, log *logging.Logger) *normalize.Normalizer {
	return normalize.NewNormalizer(resolver, log)
}

// provideConnectorSettings extracts the connector query from main config
func provideConnectorSettings(cfg config.Config) ftconnector.Settings {
	return ftconnector.Settings{
		Keywords:          cfg.FranceTravail.Keywords,
		Department:        cfg.FranceTravail.Department,
		DefaultMaxResults: cfg.Ingest.MaxResults,
	}
}

// provideConnector creates the France Travail provider from the client
func provideConnector(client *francetravail.Client, normalizer *normalize.Normalizer, settings ftconnector.Settings, log *logging.Logger) (*ftconnector.Connector, error) {
	return ftconnector.NewConnector(client, normalizer, settings, log)
}

// provideProviders creates the slice of job providers
func provideProviders(connector *ftconnector.Connector) []job.Provider {
	return []job.Provider{connector}
}

// provideScheduler wires the ingestion loop
func provideScheduler(svc job.Service, cfg config.Config, log *logging.Logger) *scheduler.Scheduler {
	return scheduler.New(svc, cfg.Ingest.Schedule, log)
}

// newApplication creates the Application struct
func newApplication(svc job.Service, sched *scheduler.Scheduler) *Application {
	return &Application{
		Service:   svc,
		Scheduler: sched,
	}
}
