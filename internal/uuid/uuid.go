// Package uuid wraps id generation so tests can pin battle session ids.
package uuid

//go:generate mockgen -destination=mocks/mock_generator.go -package=mocks -source=uuid.go

import (
	"github.com/google/uuid"
)

// Generator is an interface for generating UUIDs
type Generator interface {
	New() string
}

// GoogleUUIDGenerator implements the Generator interface using Google's UUID package
type GoogleUUIDGenerator struct{}

// New generates a new UUID string
func (g *GoogleUUIDGenerator) New() string {
	return uuid.New().String()
}

// NewGoogleUUIDGenerator creates a new GoogleUUIDGenerator
func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}

// Sequence hands out a fixed list of ids. Tests use it when the id must be known upfront.
type Sequence struct {
	IDs  []string
	next int
}

// New returns the next id, repeating the last one once the list is exhausted.
func (s *Sequence) New() string {
	if len(s.IDs) == 0 {
		return ""
	}
	if s.next >= len(s.IDs) {
		return s.IDs[len(s.IDs)-1]
	}
	id := s.IDs[s.next]
	s.next++
	return id
}
