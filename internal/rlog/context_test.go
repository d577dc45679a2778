package rlog_test

import (
	"context"
	"testing"

	"github.com/donaldgifford/runestone/internal/rlog"
)

func TestFromContextNoLoggerAttached(t *testing.T) {
	if got := rlog.FromContext(context.Background()); got != rlog.Default() {
		t.Error("expected the default logger when none is attached")
	}
}

func TestFromContextNilContext(t *testing.T) {
	if got := rlog.FromContext(nil); got != rlog.Default() {
		t.Error("expected the default logger for a nil context")
	}
}

func TestWithLoggerRoundTrips(t *testing.T) {
	logger := rlog.New("debug")
	ctx := rlog.WithLogger(context.Background(), logger)

	if got := rlog.FromContext(ctx); got != logger {
		t.Error("FromContext did not return the attached logger")
	}
}

func TestWithRunIDTagsLoggerAndReturnsID(t *testing.T) {
	logger := rlog.New("info")
	ctx, runID := rlog.WithRunID(context.Background(), logger)

	if runID == "" {
		t.Fatal("expected a non-empty run id")
	}

	tagged := rlog.FromContext(ctx)
	if tagged == logger {
		t.Error("WithRunID should return a distinct tagged logger, not the original")
	}
}

func TestWithRunIDGeneratesDistinctIDs(t *testing.T) {
	logger := rlog.New("info")
	_, first := rlog.WithRunID(context.Background(), logger)
	_, second := rlog.WithRunID(context.Background(), logger)

	if first == second {
		t.Error("expected distinct run ids across calls")
	}
}
