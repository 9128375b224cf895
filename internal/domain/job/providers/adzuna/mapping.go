package adzuna

import (
	"math"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/honeycarbs/jobscout/internal/domain"
	"github.com/honeycarbs/jobscout/pkg/adzuna"
)

const (
	SourceName = "adzuna"

	RequirementDegree     = "Bachelor's degree or equivalent experience"
	RequirementExperience = "Relevant professional experience"
)

// MapPosting converts a provider posting into a canonical job. The
// provider's own id is never reused as the record id.
func MapPosting(posting adzuna.Job, id domain.JobID, discoveredAt time.Time) domain.Job {
	job := domain.Job{
		ID:           id,
		Title:        posting.Title,
		Company:      posting.Company.DisplayName,
		Location:     posting.Location.DisplayName,
		Salary:       FormatSalary(posting.SalaryMin, posting.SalaryMax),
		Description:  posting.Description,
		Requirements: ExtractRequirements(posting.Description),
		URL:          posting.RedirectURL,
		Source:       SourceName,
		DiscoveredAt: discoveredAt.UTC(),
		ContractType: posting.ContractType,
	}

	if posting.Category != nil {
		job.Category = posting.Category.Label
	}

	if posting.Created != "" {
		if ts, err := time.Parse(time.RFC3339, posting.Created); err == nil {
			ts = ts.UTC()
			job.PostedAt = &ts
		}
	}

	return job
}

// ExtractRequirements derives the fixed requirement strings from keywords
// in the description. Degree comes before experience when both match.
func ExtractRequirements(description string) []string {
	text := strings.ToLower(description)
	reqs := make([]string, 0, 2)

	if strings.Contains(text, "bachelor") || strings.Contains(text, "degree") {
		reqs = append(reqs, RequirementDegree)
	}
	if strings.Contains(text, "experience") {
		reqs = append(reqs, RequirementExperience)
	}

	return reqs
}

// FormatSalary renders "$80,000 - $120,000", "$80,000+" or nil.
// Zero or negative bounds count as absent; a lone maximum yields nil.
func FormatSalary(minSalary, maxSalary *float64) *string {
	lo, hi := wholeDollars(minSalary), wholeDollars(maxSalary)
	if lo <= 0 {
		return nil
	}

	p := message.NewPrinter(language.English)

	var s string
	if hi > 0 {
		s = p.Sprintf("$%d - $%d", lo, hi)
	} else {
		s = p.Sprintf("$%d+", lo)
	}
	return &s
}

func wholeDollars(v *float64) int64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return 0
	}
	return int64(math.Round(*v))
}
