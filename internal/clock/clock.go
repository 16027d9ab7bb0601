// Package clock lets services and repositories read the time through an
// interface so tests can pin it.
package clock

import "time"

//go:generate mockgen -destination=mock/mock.go -package=mockclock -source=clock.go

// TimeProvider returns the current time
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider reads the wall clock in UTC
type RealTimeProvider struct{}

// Now returns the current UTC time
func (RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}

// NewRealTimeProvider creates a RealTimeProvider
func NewRealTimeProvider() TimeProvider {
	return RealTimeProvider{}
}

// Fixed always returns the same time. Tests advance it by assigning T.
type Fixed struct {
	T time.Time
}

// Now returns T
func (f *Fixed) Now() time.Time {
	return f.T
}

// Advance moves the fixed time forward
func (f *Fixed) Advance(d time.Duration) {
	f.T = f.T.Add(d)
}
