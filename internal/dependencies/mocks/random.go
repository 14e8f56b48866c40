package mocks

import (
	"fmt"

	"github.com/mvukas/rostertag/internal/dependencies/random"
)

// MockRandom is a deterministic implementation of Random for testing.
// IDs come out as "{prefix}1", "{prefix}2", ... in call order.
type MockRandom struct {
	idCounter int

	// StringResults is a queue of results to return from String
	StringResults []string
	stringIndex   int
}

// Ensure MockRandom implements Random
var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// ID returns sequential identifiers with the given prefix
func (r *MockRandom) ID(prefix string) string {
	r.idCounter++
	return fmt.Sprintf("%s%d", prefix, r.idCounter)
}

// String returns the next queued result, or empty string if none remaining
func (r *MockRandom) String(length int, alphabet string) string {
	if r.stringIndex >= len(r.StringResults) {
		return ""
	}
	result := r.StringResults[r.stringIndex]
	r.stringIndex++
	return result
}

// QueueString adds values to the String result queue
func (r *MockRandom) QueueString(values ...string) {
	r.StringResults = append(r.StringResults, values...)
}
