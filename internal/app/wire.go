//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"

	"github.com/jobpulse/jobpulse/internal/config"
	"github.com/jobpulse/jobpulse/internal/domain/job"
	"github.com/jobpulse/jobpulse/pkg/francetravail"
	"github.com/jobpulse/jobpulse/pkg/logging"
)

// InitializeApplication creates the Application with all components wired up
func InitializeApplication(cfg config.Config, log *logging.Logger, out job.Sink) (*Application, error) {
	wire.Build(
		// Infrastructure - France Travail API
		provideClientConfig,
		francetravail.NewClient,

		// Normalization
		provideResolver,
		provideNormalizer,

		// Providers
		provideConnectorSettings,
		provideConnector,
		provideProviders,

		// Services
		job.NewServiceWithDeps,

		// Ingestion loop
		provideScheduler,
		newApplication,
	)

	return &Application{}, nil
}
