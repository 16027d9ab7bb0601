package errors

// Game rule violations. Each one is recoverable at the command boundary and maps
// to a reply for the player.
const (
	CodeAlreadyInBattle       Code = "already_in_battle"
	CodeNoActiveBattle        Code = "no_active_battle"
	CodeClassNotCaster        Code = "class_not_caster"
	CodeSlotEmpty             Code = "slot_empty"
	CodeInsufficientMana      Code = "insufficient_mana"
	CodeInvalidClass          Code = "invalid_class"
	CodeClassAlreadyChosen    Code = "class_already_chosen"
	CodeInvalidSpellArchetype Code = "invalid_spell_archetype"
	CodeReequipDuringBattle   Code = "reequip_during_battle"
	CodeExhausted             Code = "exhausted"
	CodeInsufficientTokens    Code = "insufficient_tokens"
	CodeSlotNotLocked         Code = "slot_not_locked"
)

// AlreadyInBattle reports that the character already has a live hunt.
func AlreadyInBattle(characterID string) *Error {
	return New(CodeAlreadyInBattle, "character is already in battle").
		WithMeta("character_id", characterID)
}

// NoActiveBattle reports that the character has no live hunt.
func NoActiveBattle(characterID string) *Error {
	return New(CodeNoActiveBattle, "character has no active battle").
		WithMeta("character_id", characterID)
}

// ClassNotCaster reports a spell cast by a class without spell slots.
func ClassNotCaster(class string) *Error {
	return Newf(CodeClassNotCaster, "class %q cannot cast spells", class).
		WithMeta("class", class)
}

// SlotEmpty reports a cast or inspect against a slot with no spell.
func SlotEmpty(slot int) *Error {
	return Newf(CodeSlotEmpty, "spell slot %d is empty", slot).
		WithMeta("slot", slot)
}

// InsufficientMana reports a cast whose cost exceeds the mana left in the hunt.
func InsufficientMana(cost, available int) *Error {
	return Newf(CodeInsufficientMana, "spell costs %d mana but only %d is available", cost, available).
		WithMeta("cost", cost).
		WithMeta("available", available)
}

// InvalidClass reports an unknown class archetype.
func InvalidClass(class string) *Error {
	return Newf(CodeInvalidClass, "unknown class %q", class).
		WithMeta("class", class)
}

// ClassAlreadyChosen reports a second class selection; the existing class is kept.
func ClassAlreadyChosen(existing string) *Error {
	return Newf(CodeClassAlreadyChosen, "class already chosen: %s", existing).
		WithMeta("class", existing)
}

// InvalidSpellArchetype reports an unknown spell id.
func InvalidSpellArchetype(spellID string) *Error {
	return Newf(CodeInvalidSpellArchetype, "unknown spell %q", spellID).
		WithMeta("spell_id", spellID)
}

// ReequipDuringBattle reports a slot change attempted during a hunt.
func ReequipDuringBattle(slot int) *Error {
	return Newf(CodeReequipDuringBattle, "cannot change spell slot %d during battle", slot).
		WithMeta("slot", slot)
}

// Exhausted reports a hunt attempted with no hit points left.
func Exhausted(characterID string) *Error {
	return New(CodeExhausted, "character has no hit points left").
		WithMeta("character_id", characterID)
}

// InsufficientTokens reports a token purchase the balance cannot cover.
func InsufficientTokens(cost, available int) *Error {
	return Newf(CodeInsufficientTokens, "needs %d tokens but only %d are available", cost, available).
		WithMeta("cost", cost).
		WithMeta("available", available)
}

// SlotNotLocked reports an ascend attempt on a slot that has nothing to ascend.
func SlotNotLocked(slot int) *Error {
	return Newf(CodeSlotNotLocked, "spell slot %d cannot ascend", slot).
		WithMeta("slot", slot)
}
