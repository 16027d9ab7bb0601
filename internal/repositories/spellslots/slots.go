package spellslots

import (
	"sort"

	"github.com/Kkzin999/sun/internal/domain/character"
	"github.com/Kkzin999/sun/internal/domain/spell"
	dnderr "github.com/Kkzin999/sun/internal/errors"
)

// complete orders stored slots by index and fills any index never stored with
// its default.
func complete(ref character.Ref, stored map[int]spell.Slot, defaults Defaults) []spell.Slot {
	out := make([]spell.Slot, 0, spell.MaxSlots)
	for _, d := range defaults.DefaultSlots(ref) {
		if s, ok := stored[d.Index]; ok {
			out = append(out, s)
			continue
		}
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
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

func validateSlot(slot spell.Slot) error {
	if err := validateRef(slot.Ref()); err != nil {
		return err
	}
	if !spell.ValidIndex(slot.Index) {
		return dnderr.InvalidArgumentf("slot index %d out of range", slot.Index).
			WithMeta("slot", slot.Index)
	}
	return nil
}
