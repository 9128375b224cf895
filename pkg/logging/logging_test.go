package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"DEBUG":   zapcore.DebugLevel,
		"warning": zapcore.WarnLevel,
		" warn ":  zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"":        zapcore.InfoLevel,
		"bogus":   zapcore.InfoLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestLoggerWritesKeyValues(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewFromZap(zap.New(core)).Named("adapter").With("source", "adzuna")

	log.Warn("attempt failed", "attempt", 2)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	e := entries[0]
	if e.LoggerName != "adapter" || e.Level != zapcore.WarnLevel {
		t.Errorf("unexpected entry: %+v", e.Entry)
	}
	fields := e.ContextMap()
	if fields["source"] != "adzuna" || fields["attempt"] != int64(2) {
		t.Errorf("fields = %v", fields)
	}
}

func TestNopDiscards(t *testing.T) {
	log := Nop()
	log.Error("ignored", "k", "v")
	if err := log.Sync(); err != nil {
		t.Errorf("Sync: %v", err)
	}
}
