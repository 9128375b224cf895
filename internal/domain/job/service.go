package job

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/honeycarbs/jobscout/internal/config"
	"github.com/honeycarbs/jobscout/internal/domain"
	"github.com/honeycarbs/jobscout/pkg/logging"
)

// Service searches for jobs and always answers with a SearchResult envelope.
// Failures are reported through Action == ActionError, never as a Go error.
type Service interface {
	Search(ctx context.Context, req domain.SearchRequest) domain.SearchResult
}

// Option configures Service
type Option func(*options)

type options struct {
	provider Provider
	logger   *logging.Logger
	sleep    func(time.Duration)
	policy   retryPolicy
}

// WithProvider sets the job provider
func WithProvider(p Provider) Option {
	return func(o *options) {
		o.provider = p
	}
}

// WithLogger sets the logger
func WithLogger(l *logging.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithSleep replaces the backoff wait, mostly for tests
func WithSleep(sleep func(time.Duration)) Option {
	return func(o *options) {
		o.sleep = sleep
	}
}

// WithAttemptTimeout overrides the per-attempt timeout
func WithAttemptTimeout(d time.Duration) Option {
	return func(o *options) {
		o.policy.attemptTimeout = d
	}
}

// NewService builds Service from the provider credentials and options.
// A provider is only required when the credentials are present; without
// them every search reports the missing configuration.
func NewService(creds config.Adzuna, opts ...Option) (Service, error) {
	o := &options{
		logger: logging.Nop(),
		sleep:  time.Sleep,
		policy: defaultPolicy(),
	}
	for _, opt := range opts {
		opt(o)
	}

	if creds.Configured() && o.provider == nil {
		return nil, fmt.Errorf("job.Service: provider is required")
	}
	if o.policy.attemptTimeout <= 0 {
		return nil, fmt.Errorf("job.Service: attempt timeout must be positive")
	}

	return &service{
		creds:    creds,
		provider: o.provider,
		logger:   o.logger,
		sleep:    o.sleep,
		policy:   o.policy,
	}, nil
}

// NewServiceWithDeps creates a Service with direct dependencies (Wire-compatible)
func NewServiceWithDeps(creds config.Adzuna, provider Provider, logger *logging.Logger) (Service, error) {
	if logger == nil {
		logger = logging.Nop()
	}
	return NewService(creds, WithProvider(provider), WithLogger(logger.Named("job_search")))
}

type service struct {
	creds    config.Adzuna
	provider Provider
	logger   *logging.Logger
	sleep    func(time.Duration)
	policy   retryPolicy
}

// Search validates the request, runs it through the retry loop and wraps
// the outcome. Cancelling ctx does not abort the search; only the
// per-attempt timeout does.
func (s *service) Search(ctx context.Context, req domain.SearchRequest) domain.SearchResult {
	ctx = context.WithoutCancel(ctx)
	req = req.Normalized()

	if strings.TrimSpace(req.Query) == "" {
		s.logger.Warn("job search rejected", "err", ErrQueryRequired)
		return domain.ErrorResult("Search query is required")
	}

	if missing := s.creds.MissingKeys(); len(missing) > 0 {
		s.logger.Error("job search rejected", "err", ErrCredentialsMissing, "missing", missing)
		return domain.ErrorResult(credentialsMessage(missing))
	}

	log := s.logger.With(
		"provider", s.provider.Name(),
		"query", req.Query,
		"location", req.Location,
		"results_count", req.ResultsCount,
	)

	jobs, attempts, err := s.run(ctx, req, log)
	if err != nil {
		if body := statusBody(err); body != "" {
			log = log.With("status_body", body)
		}
		log.Error("job search failed", "err", err, "attempts", attempts)
		return domain.ErrorResult(describe(err))
	}

	log.Info("job search completed", "count", len(jobs), "attempts", attempts)
	return domain.DisplayResult(req, jobs, summary(req, len(jobs)))
}

// run drives ATTEMPTING(1..max) until SUCCESS or FAILED
func (s *service) run(ctx context.Context, req domain.SearchRequest, log *logging.Logger) ([]domain.Job, int, error) {
	var lastErr error

	for attempt := 1; attempt <= s.policy.maxAttempts; attempt++ {
		log.Debug("job search attempt", "attempt", attempt)

		jobs, err := s.attempt(ctx, req)

		switch s.policy.next(attempt, err) {
		case stepSucceed:
			return jobs, attempt, nil
		case stepFail:
			if classify(err) == failureTransient {
				return nil, attempt, &exhaustedError{attempts: attempt, err: err}
			}
			return nil, attempt, err
		case stepRetry:
			lastErr = err
			delay := s.policy.backoff(attempt)
			log.Warn("job search attempt failed, retrying",
				"attempt", attempt,
				"err", err,
				"backoff", delay,
			)
			s.sleep(delay)
		}
	}

	// only reachable with a misconfigured policy
	return nil, s.policy.maxAttempts, &exhaustedError{attempts: s.policy.maxAttempts, err: lastErr}
}

// attempt is one request under its own deadline; cancel runs on every path.
func (s *service) attempt(ctx context.Context, req domain.SearchRequest) ([]domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, s.policy.attemptTimeout)
	defer cancel()

	return s.provider.Search(ctx, req)
}

func summary(req domain.SearchRequest, count int) string {
	if req.Location == "" {
		return fmt.Sprintf("Found %d job(s) matching %q across all locations", count, req.Query)
	}
	return fmt.Sprintf("Found %d job(s) matching %q in %s", count, req.Query, req.Location)
}
