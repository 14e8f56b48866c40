package factory

import (
	"io"
	"log/slog"
	"time"

	"github.com/mvukas/rostertag/internal/dependencies/mocks"
	"github.com/mvukas/rostertag/internal/services/auth"
	"github.com/mvukas/rostertag/internal/storage/memory"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2026, 1, 8, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	// DefaultConfig has no admin password, so construction cannot fail
	app, err := newWithDependencies(store, mockClock, mockRandom, auth.DefaultConfig(), logger)
	if err != nil {
		panic(err)
	}

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}
