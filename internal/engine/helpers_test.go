package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

// newTestEngine creates an empty engine that panics on board desyncs.
func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := New(config.NewConfigBuilder().WithInvariantChecks(true).Build())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return e
}

// loadEngine creates a test engine holding fen.
func loadEngine(t *testing.T, fen string) *Engine {
	t.Helper()
	e := newTestEngine(t)
	if err := e.Load(fen); err != nil {
		t.Fatalf("Load(%q) error = %v", fen, err)
	}
	return e
}

// startEngine creates a test engine at the initial position.
func startEngine(t *testing.T) *Engine {
	t.Helper()
	e := newTestEngine(t)
	e.SetUp()
	return e
}
