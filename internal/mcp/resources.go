package mcp

import (
	"github.com/honeycarbs/jobscout/internal/config"
	"github.com/honeycarbs/jobscout/internal/domain/job"
	adzunaProvider "github.com/honeycarbs/jobscout/internal/domain/job/providers/adzuna"
	"github.com/honeycarbs/jobscout/pkg/adzuna"
	"github.com/honeycarbs/jobscout/pkg/logging"
)

// Resources holds everything the tools need
type Resources struct {
	JobService job.Service
}

// provideAdzunaCredentials extracts Adzuna credentials from main config
func provideAdzunaCredentials(cfg config.Config) config.Adzuna {
	return cfg.Adzuna
}

// provideJobProvider builds the Adzuna provider. Without credentials it
// returns a nil provider so the service can report the missing keys per call.
func provideJobProvider(creds config.Adzuna, logger *logging.Logger) (job.Provider, error) {
	if !creds.Configured() {
		logger.Warn("Adzuna credentials missing; job_search will report configuration errors",
			"missing", creds.MissingKeys(),
		)
		return nil, nil
	}

	client, err := adzuna.NewClient(adzuna.Config{
		AppID:  creds.AppID,
		AppKey: creds.AppKey,
	})
	if err != nil {
		return nil, err
	}

	provider, err := adzunaProvider.NewProvider(client)
	if err != nil {
		return nil, err
	}

	logger.Info("Adzuna provider initialized")
	return provider, nil
}

// newResources creates Resources struct
func newResources(jobService job.Service) *Resources {
	return &Resources{
		JobService: jobService,
	}
}
