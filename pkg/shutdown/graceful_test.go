package shutdown

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"testing"
	"time"

	"github.com/honeycarbs/jobscout/pkg/logging"
)

type stopper struct {
	err      error
	deadline bool
}

func (s *stopper) Shutdown(ctx context.Context) error {
	_, s.deadline = ctx.Deadline()
	return s.err
}

func runGraceful(t *testing.T, s *stopper) error {
	t.Helper()

	// keep early signals from hitting the default handler, which exits
	guard := make(chan os.Signal, 16)
	signal.Notify(guard, syscall.SIGUSR1)
	defer signal.Stop(guard)

	done := make(chan error, 1)
	go func() {
		done <- Graceful([]os.Signal{syscall.SIGUSR1}, s, time.Second, logging.Nop())
	}()

	// wait until the handler is installed before signalling
	deadline := time.After(2 * time.Second)
	for {
		if err := syscall.Kill(os.Getpid(), syscall.SIGUSR1); err != nil {
			t.Fatalf("Kill: %v", err)
		}
		select {
		case err := <-done:
			return err
		case <-deadline:
			t.Fatal("Graceful did not return")
		case <-time.After(20 * time.Millisecond):
		}
	}
}

func TestGracefulStopsOnSignal(t *testing.T) {
	s := &stopper{}
	if err := runGraceful(t, s); err != nil {
		t.Fatalf("Graceful: %v", err)
	}
	if !s.deadline {
		t.Error("Shutdown should receive a context with a deadline")
	}
}

func TestGracefulReturnsShutdownError(t *testing.T) {
	want := errors.New("listener stuck")
	s := &stopper{err: want}
	if err := runGraceful(t, s); !errors.Is(err, want) {
		t.Errorf("err = %v, want %v", err, want)
	}
}
