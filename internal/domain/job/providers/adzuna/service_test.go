package adzuna

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/honeycarbs/jobscout/internal/config"
	"github.com/honeycarbs/jobscout/internal/domain"
	jobdomain "github.com/honeycarbs/jobscout/internal/domain/job"
	"github.com/honeycarbs/jobscout/pkg/adzuna"
)

var stackCreds = config.Adzuna{AppID: "stack-id", AppKey: "stack-secret"}

type delays struct {
	mu  sync.Mutex
	got []time.Duration
}

func (d *delays) sleep(v time.Duration) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.got = append(d.got, v)
}

// newStack wires the real client, provider and service against baseURL.
func newStack(t *testing.T, baseURL string, opts ...jobdomain.Option) (jobdomain.Service, *delays) {
	t.Helper()

	client, err := adzuna.NewClient(adzuna.Config{
		AppID:   stackCreds.AppID,
		AppKey:  stackCreds.AppKey,
		BaseURL: baseURL,
	})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	provider, err := NewProvider(client)
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}

	rec := &delays{}
	all := append([]jobdomain.Option{jobdomain.WithProvider(provider), jobdomain.WithSleep(rec.sleep)}, opts...)
	svc, err := jobdomain.NewService(stackCreds, all...)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc, rec
}

func assertNoCredentials(t *testing.T, msg string) {
	t.Helper()
	for _, secret := range []string{stackCreds.AppID, stackCreds.AppKey} {
		if strings.Contains(msg, secret) {
			t.Errorf("message leaks %q: %s", secret, msg)
		}
	}
}

func TestServiceConnectionRefusedExhaustsRetries(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL
	srv.Close()

	svc, rec := newStack(t, baseURL)
	res := svc.Search(context.Background(), domain.SearchRequest{Query: "go", ResultsCount: 5})

	if res.Action != domain.ActionError {
		t.Fatalf("action = %q, want error", res.Action)
	}
	if !strings.Contains(res.Error, "Network error after 3 attempts") {
		t.Errorf("error = %q", res.Error)
	}
	assertNoCredentials(t, res.Error)
	if want := []time.Duration{time.Second, 2 * time.Second}; !reflect.DeepEqual(rec.got, want) {
		t.Errorf("backoff = %v, want %v", rec.got, want)
	}
}

func TestServiceSlowServerTimesOutEveryAttempt(t *testing.T) {
	var hits atomic.Int32
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	svc, rec := newStack(t, srv.URL, jobdomain.WithAttemptTimeout(100*time.Millisecond))
	res := svc.Search(context.Background(), domain.SearchRequest{Query: "go", Location: "Austin", ResultsCount: 5})

	if res.Action != domain.ActionError {
		t.Fatalf("action = %q, want error", res.Action)
	}
	if !strings.Contains(res.Error, "timed out after 3 attempts") {
		t.Errorf("error = %q", res.Error)
	}
	assertNoCredentials(t, res.Error)
	if n := hits.Load(); n != 3 {
		t.Errorf("server hits = %d, want 3", n)
	}
	if want := []time.Duration{time.Second, 2 * time.Second}; !reflect.DeepEqual(rec.got, want) {
		t.Errorf("backoff = %v, want %v", rec.got, want)
	}
}

func TestServiceStatusErrorStopsAfterOneRequest(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.Error(w, `{"exception":"AUTH_FAIL"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	svc, rec := newStack(t, srv.URL)
	res := svc.Search(context.Background(), domain.SearchRequest{Query: "go", ResultsCount: 5})

	if res.Error != "Adzuna API error: 401 Unauthorized" {
		t.Errorf("error = %q", res.Error)
	}
	if n := hits.Load(); n != 1 {
		t.Errorf("server hits = %d, want 1", n)
	}
	if len(rec.got) != 0 {
		t.Errorf("unexpected backoff %v", rec.got)
	}
}

func TestServiceSendsDefaultCountWhenOmitted(t *testing.T) {
	var perPage atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		perPage.Store(r.URL.Query().Get("results_per_page"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[]}`))
	}))
	defer srv.Close()

	svc, _ := newStack(t, srv.URL)
	res := svc.Search(context.Background(), domain.SearchRequest{Query: "go"})

	if res.Action != domain.ActionDisplay {
		t.Fatalf("action = %q, error %q", res.Action, res.Error)
	}
	if got := perPage.Load(); got != "20" {
		t.Errorf("results_per_page = %v, want 20", got)
	}
}
