package spellslots

//go:generate mockgen -destination=mock/mock.go -package=mockspellslots -source=interface.go

import (
	"context"

	"github.com/Kkzin999/sun/internal/domain/character"
	"github.com/Kkzin999/sun/internal/domain/spell"
)

// Repository defines the interface for spell slot persistence
type Repository interface {
	// GetSlots returns all slots ordered by index. The default loadout is
	// written the first time a character's slots are read.
	GetSlots(ctx context.Context, ref character.Ref) ([]spell.Slot, error)

	// SaveSlot stores one slot, either a re-equip or progress from a cast
	SaveSlot(ctx context.Context, slot spell.Slot) error
}

// Defaults produces the starting loadout. *spell.Catalog satisfies it.
type Defaults interface {
	DefaultSlots(ref character.Ref) []spell.Slot
}
