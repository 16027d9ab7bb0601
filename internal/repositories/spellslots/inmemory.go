package spellslots

import (
	"context"
	"sync"

	"github.com/Kkzin999/sun/internal/domain/character"
	"github.com/Kkzin999/sun/internal/domain/spell"
)

// InMemoryRepository keeps slots in a map
type InMemoryRepository struct {
	mu       sync.RWMutex
	slots    map[character.Ref]map[int]spell.Slot
	defaults Defaults
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository(defaults Defaults) *InMemoryRepository {
	return &InMemoryRepository{
		slots:    make(map[character.Ref]map[int]spell.Slot),
		defaults: defaults,
	}
}

// GetSlots returns the character's slots, materializing defaults on first read
func (r *InMemoryRepository) GetSlots(_ context.Context, ref character.Ref) ([]spell.Slot, error) {
	if err := validateRef(ref); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.slots[ref]
	if !ok {
		stored = make(map[int]spell.Slot, spell.MaxSlots)
		for _, s := range r.defaults.DefaultSlots(ref) {
			stored[s.Index] = s
		}
		r.slots[ref] = stored
	}

	return complete(ref, stored, r.defaults), nil
}

// SaveSlot stores the slot
func (r *InMemoryRepository) SaveSlot(_ context.Context, slot spell.Slot) error {
	if err := validateSlot(slot); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	ref := slot.Ref()
	if r.slots[ref] == nil {
		r.slots[ref] = make(map[int]spell.Slot, spell.MaxSlots)
	}
	r.slots[ref][slot.Index] = slot
	return nil
}
