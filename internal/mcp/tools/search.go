package tools

import (
	"context"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/jobscout/internal/domain"
	"github.com/honeycarbs/jobscout/pkg/logging"
)

const jobSearchToolName = "job_search"

// JobSearcher runs a search and always returns an envelope
type JobSearcher interface {
	Search(ctx context.Context, req domain.SearchRequest) domain.SearchResult
}

// JobSearchParams defines the arguments for the job_search tool
type JobSearchParams struct {
	Query        string `json:"query" jsonschema:"Job search keywords, e.g. 'backend engineer golang'"`
	Location     string `json:"location,omitempty" jsonschema:"Optional location filter; omit to search all locations"`
	ResultsCount *int   `json:"resultsCount,omitempty" jsonschema:"Number of results between 1 and 50 (default 20)"`
}

func (p JobSearchParams) request() domain.SearchRequest {
	count := domain.DefaultResultsCount
	if p.ResultsCount != nil {
		// an explicit zero is out of range, not omitted
		count = domain.ClampResultsCount(*p.ResultsCount)
	}
	return domain.SearchRequest{
		Query:        p.Query,
		Location:     p.Location,
		ResultsCount: count,
	}
}

type jobSearchTool struct {
	service JobSearcher
	logger  *logging.Logger
}

// WithJobSearch registers the job_search tool
func WithJobSearch(service JobSearcher) Option {
	return func(reg *registry) {
		handler := jobSearchTool{service: service, logger: reg.logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        jobSearchToolName,
			Description: "Search Adzuna job listings by keywords and optional location; returns normalized jobs for display",
		}, handler.handle)
		reg.names = append(reg.names, jobSearchToolName)
	}
}

func (t jobSearchTool) handle(ctx context.Context, req *sdkmcp.CallToolRequest, params JobSearchParams) (*sdkmcp.CallToolResult, any, error) {
	t.logger.Info("job_search request",
		"query", params.Query,
		"location", params.Location,
		"results_count", params.ResultsCount,
	)

	if t.service == nil {
		res := domain.ErrorResult("job search service not configured")
		t.logger.Error("job_search: service not available")
		return errorResult(res.Error), res, nil
	}

	result := t.service.Search(ctx, params.request())

	if result.Action == domain.ActionError {
		t.logger.Warn("job_search returned error", "err", result.Error)
		return errorResult("[job_search] " + result.Error), result, nil
	}

	t.logger.Info("job_search completed", "count", result.Count)
	return textResult(formatJobs(result)), result, nil
}

func formatJobs(result domain.SearchResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[job_search] %s", result.Message)

	for _, j := range result.Jobs {
		fmt.Fprintf(&b, "\n• %s at %s (%s)", j.Title, j.Company, j.Location)
		if j.Salary != nil {
			fmt.Fprintf(&b, " %s", *j.Salary)
		}
		fmt.Fprintf(&b, " [id: %s]", j.ID)
	}

	return b.String()
}
