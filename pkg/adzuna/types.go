package adzuna

import (
	"fmt"
	"net/http"
)

// Config defines Adzuna API client settings
type Config struct {
	AppID      string
	AppKey     string
	BaseURL    string // tests only; production always talks to api.adzuna.com
	UserAgent  string
	HTTPClient *http.Client
}

// Client queries the Adzuna job search API. One call to SearchJobs is one
// HTTP request; retries and timeouts belong to the caller.
type Client struct {
	appID      string
	appKey     string
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// SearchParams describe a single search page request
type SearchParams struct {
	Query          string
	Location       string
	ResultsPerPage int
}

type jobSearchResponse struct {
	Count   int   `json:"count"`
	Results []Job `json:"results"`
}

// Job is a posting exactly as Adzuna returns it.
type Job struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Company      Named    `json:"company"`
	Location     Named    `json:"location"`
	Description  string   `json:"description"`
	SalaryMin    *float64 `json:"salary_min,omitempty"`
	SalaryMax    *float64 `json:"salary_max,omitempty"`
	RedirectURL  string   `json:"redirect_url"`
	Category     *Label   `json:"category,omitempty"`
	ContractType string   `json:"contract_type,omitempty"`
	Created      string   `json:"created,omitempty"`
}

// Named is the {display_name} object Adzuna uses for companies and locations
type Named struct {
	DisplayName string `json:"display_name"`
}

// Label is the {label, tag} object Adzuna uses for categories
type Label struct {
	Label string `json:"label"`
	Tag   string `json:"tag,omitempty"`
}

// StatusError is returned when Adzuna answers with a non-success status.
type StatusError struct {
	Code   int
	Status string
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("adzuna: API error: %d %s", e.Code, e.Status)
}

// DecodeError is returned when the response body is not the expected JSON.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("adzuna: decode response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
