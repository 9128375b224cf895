package job

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"syscall"

	"github.com/honeycarbs/jobscout/internal/config"
	"github.com/honeycarbs/jobscout/pkg/adzuna"
)

var (
	// ErrCredentialsMissing means the provider app id or key is not configured
	ErrCredentialsMissing = errors.New("adzuna credentials not configured")

	// ErrQueryRequired is returned for blank queries
	ErrQueryRequired = errors.New("query is required")
)

// failureClass decides what the retry loop does with an attempt error
type failureClass int

const (
	// retrying cannot fix it: bad status, bad body, anything unexpected
	failureFatal failureClass = iota
	// timeouts and a short list of connection-level errnos
	failureTransient
)

// transientErrnos are the connection failures worth another attempt
var transientErrnos = []syscall.Errno{
	syscall.ETIMEDOUT,
	syscall.ECONNRESET,
	syscall.ECONNREFUSED,
}

func classify(err error) failureClass {
	var statusErr *adzuna.StatusError
	if errors.As(err, &statusErr) {
		return failureFatal
	}
	if isTimeout(err) {
		return failureTransient
	}
	for _, errno := range transientErrnos {
		if errors.Is(err, errno) {
			return failureTransient
		}
	}
	return failureFatal
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// exhaustedError is produced once the last allowed attempt failed transiently
type exhaustedError struct {
	attempts int
	err      error
}

func (e *exhaustedError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("all %d attempts failed", e.attempts)
	}
	if isTimeout(e.err) {
		return fmt.Sprintf("Request timed out after %d attempts. The Adzuna API may be slow or unavailable.", e.attempts)
	}
	return fmt.Sprintf("Network error after %d attempts: %v", e.attempts, e.err)
}

func (e *exhaustedError) Unwrap() error {
	return e.err
}

func credentialsMessage(missing []string) string {
	return fmt.Sprintf(
		"Adzuna API credentials not configured. Set %s and %s (missing: %s).",
		config.EnvAdzunaAppID, config.EnvAdzunaAppKey, strings.Join(missing, ", "),
	)
}

// statusBody is the response body Adzuna sent with a failure status, if any
func statusBody(err error) string {
	var statusErr *adzuna.StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Body
	}
	return ""
}

// describe turns a terminal search error into the user-visible message
func describe(err error) string {
	var statusErr *adzuna.StatusError
	if errors.As(err, &statusErr) {
		return fmt.Sprintf("Adzuna API error: %d %s", statusErr.Code, statusErr.Status)
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return "Unknown error occurred while searching for jobs"
}
