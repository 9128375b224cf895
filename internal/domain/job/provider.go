package job

import (
	"context"

	"github.com/honeycarbs/jobscout/internal/domain"
)

// Provider represents an external job data source
type Provider interface {
	// e.g. "adzuna"
	Name() string

	// Search performs one request against the source and returns canonical
	// jobs. It must honor the deadline on ctx.
	Search(ctx context.Context, req domain.SearchRequest) ([]domain.Job, error)
}
