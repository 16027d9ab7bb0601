package profiles

import (
	"context"
	"sync"

	"github.com/Kkzin999/sun/internal/clock"
	"github.com/Kkzin999/sun/internal/domain/character"
	dnderr "github.com/Kkzin999/sun/internal/errors"
)

// InMemoryRepository keeps profiles in a map. Used for tests and the memory
// storage driver.
type InMemoryRepository struct {
	mu           sync.RWMutex
	profiles     map[character.Ref]*character.Profile
	baseStats    character.Stats
	timeProvider clock.TimeProvider
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository(baseStats character.Stats, timeProvider clock.TimeProvider) *InMemoryRepository {
	if timeProvider == nil {
		timeProvider = clock.NewRealTimeProvider()
	}
	return &InMemoryRepository{
		profiles:     make(map[character.Ref]*character.Profile),
		baseStats:    baseStats,
		timeProvider: timeProvider,
	}
}

// Get returns a copy of the stored profile or a default one
func (r *InMemoryRepository) Get(_ context.Context, ref character.Ref) (*character.Profile, error) {
	if err := validateRef(ref); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.profiles[ref]
	if !ok {
		return character.NewProfile(ref, r.baseStats), nil
	}
	return p.Clone(), nil
}

// Upsert stores a copy of the profile
func (r *InMemoryRepository) Upsert(_ context.Context, profile *character.Profile) error {
	if profile == nil {
		return dnderr.InvalidArgument("profile cannot be nil")
	}
	if err := validateRef(profile.Ref()); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stamp(profile, r.timeProvider)
	r.profiles[profile.Ref()] = profile.Clone()
	return nil
}

func validateRef(ref character.Ref) error {
	if ref.CommunityID == "" {
		return dnderr.InvalidArgument("community ID is required")
	}
	if ref.CharacterID == "" {
		return dnderr.InvalidArgument("character ID is required")
	}
	return nil
}

func stamp(p *character.Profile, tp clock.TimeProvider) {
	now := tp.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
}
