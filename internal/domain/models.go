package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// JobID uniquely identifies a canonical job record
type JobID = uuid.UUID

const (
	DefaultResultsCount = 20
	MinResultsCount     = 1
	MaxResultsCount     = 50

	// AllLocations is echoed back when the request carried no location
	AllLocations = "All locations"
)

// Action discriminates a SearchResult
type Action string

const (
	ActionDisplay Action = "display"
	ActionError   Action = "error"
)

// Job is the source-agnostic job record handed to the agent. It is built
// once per provider posting and never mutated afterwards.
type Job struct {
	ID           JobID      `json:"id"`
	Title        string     `json:"title"`
	Company      string     `json:"company"`
	Location     string     `json:"location"`
	Salary       *string    `json:"salary,omitempty"`
	Description  string     `json:"description"`
	Requirements []string   `json:"requirements"`
	URL          string     `json:"url"`
	Source       string     `json:"source"`
	DiscoveredAt time.Time  `json:"discoveredAt"`
	Category     string     `json:"category,omitempty"`
	ContractType string     `json:"contractType,omitempty"`
	PostedAt     *time.Time `json:"postedAt,omitempty"`
}

// SearchRequest is the caller-supplied search
type SearchRequest struct {
	Query        string
	Location     string
	ResultsCount int
}

// Normalized returns a copy with ResultsCount clamped to the allowed range.
// A zero ResultsCount means the caller left it out and becomes
// DefaultResultsCount.
func (r SearchRequest) Normalized() SearchRequest {
	if r.ResultsCount == 0 {
		r.ResultsCount = DefaultResultsCount
	}
	r.ResultsCount = ClampResultsCount(r.ResultsCount)
	return r
}

// ClampResultsCount bounds n to [MinResultsCount, MaxResultsCount]
func ClampResultsCount(n int) int {
	return min(max(n, MinResultsCount), MaxResultsCount)
}

// SearchResult is the envelope returned for every search, successful or not.
// Error results carry an empty, non-nil job list.
type SearchResult struct {
	Action   Action `json:"action"`
	Jobs     []Job  `json:"jobs"`
	Count    int    `json:"count,omitempty"`
	Query    string `json:"query,omitempty"`
	Location string `json:"location,omitempty"`
	Message  string `json:"message,omitempty"`
	Error    string `json:"error,omitempty"`
}

type displayWire struct {
	Action   Action `json:"action"`
	Jobs     []Job  `json:"jobs"`
	Count    int    `json:"count"`
	Query    string `json:"query"`
	Location string `json:"location"`
	Message  string `json:"message"`
}

type errorWire struct {
	Action Action `json:"action"`
	Error  string `json:"error"`
	Jobs   []Job  `json:"jobs"`
}

// MarshalJSON emits exactly the fields of the result's variant.
func (r SearchResult) MarshalJSON() ([]byte, error) {
	jobs := r.Jobs
	if jobs == nil {
		jobs = []Job{}
	}
	if r.Action == ActionError {
		return json.Marshal(errorWire{Action: r.Action, Error: r.Error, Jobs: jobs})
	}
	return json.Marshal(displayWire{
		Action:   r.Action,
		Jobs:     jobs,
		Count:    r.Count,
		Query:    r.Query,
		Location: r.Location,
		Message:  r.Message,
	})
}

// DisplayResult builds a success envelope; Count always equals len(jobs).
func DisplayResult(req SearchRequest, jobs []Job, message string) SearchResult {
	if jobs == nil {
		jobs = []Job{}
	}
	location := req.Location
	if location == "" {
		location = AllLocations
	}
	return SearchResult{
		Action:   ActionDisplay,
		Jobs:     jobs,
		Count:    len(jobs),
		Query:    req.Query,
		Location: location,
		Message:  message,
	}
}

// ErrorResult builds a failure envelope
func ErrorResult(msg string) SearchResult {
	if msg == "" {
		msg = "Unknown error occurred while searching for jobs"
	}
	return SearchResult{
		Action: ActionError,
		Jobs:   []Job{},
		Error:  msg,
	}
}
