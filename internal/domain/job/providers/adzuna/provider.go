package adzuna

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/honeycarbs/jobscout/internal/domain"
	jobdomain "github.com/honeycarbs/jobscout/internal/domain/job"
	"github.com/honeycarbs/jobscout/pkg/adzuna"
)

// searchClient describes the subset of the Adzuna client used by the provider.
type searchClient interface {
	SearchJobs(ctx context.Context, params adzuna.SearchParams) ([]adzuna.Job, error)
}

// Option configures Provider
type Option func(*Provider)

// WithClock sets the clock used for discovery timestamps
func WithClock(clock func() time.Time) Option {
	return func(p *Provider) {
		p.clock = clock
	}
}

// WithIDGenerator sets the canonical id generator
func WithIDGenerator(gen func() uuid.UUID) Option {
	return func(p *Provider) {
		p.newID = gen
	}
}

// Provider implements job.Provider using Adzuna API
type Provider struct {
	client searchClient
	clock  func() time.Time
	newID  func() uuid.UUID
}

// NewProvider builds an Adzuna provider
func NewProvider(client searchClient, opts ...Option) (*Provider, error) {
	if client == nil {
		return nil, fmt.Errorf("adzuna provider: client is required")
	}
	p := &Provider{
		client: client,
		clock:  time.Now,
		newID:  uuid.New,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Name returns provider identifier
func (p *Provider) Name() string {
	return SourceName
}

// Search queries Adzuna once and returns canonical jobs in provider order
func (p *Provider) Search(ctx context.Context, req domain.SearchRequest) ([]domain.Job, error) {
	if p == nil || p.client == nil {
		return nil, fmt.Errorf("adzuna provider: client is nil")
	}

	postings, err := p.client.SearchJobs(ctx, adzuna.SearchParams{
		Query:          req.Query,
		Location:       req.Location,
		ResultsPerPage: req.ResultsCount,
	})
	if err != nil {
		return nil, err
	}

	now := p.clock()
	out := make([]domain.Job, 0, len(postings))
	for _, posting := range postings {
		out = append(out, MapPosting(posting, p.newID(), now))
	}

	return out, nil
}

var _ jobdomain.Provider = (*Provider)(nil)
