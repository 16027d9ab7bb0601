package discord

import (
	"fmt"
	"strings"

	"github.com/Kkzin999/sun/internal/domain/battle"
	"github.com/Kkzin999/sun/internal/domain/character"
	"github.com/Kkzin999/sun/internal/domain/progression"
	"github.com/Kkzin999/sun/internal/domain/spell"
	dnderr "github.com/Kkzin999/sun/internal/errors"
	battleService "github.com/Kkzin999/sun/internal/services/battle"
	characterService "github.com/Kkzin999/sun/internal/services/character"
)

var rarityNames = map[spell.Rarity]string{
	spell.RarityCommon:    "Comum",
	spell.RarityRare:      "Rara",
	spell.RarityEpic:      "Épica",
	spell.RarityLegendary: "Lendária",
	spell.RarityMythic:    "Mítica",
}

func rarityName(r spell.Rarity) string {
	if name, ok := rarityNames[r]; ok {
		return name
	}
	return string(r)
}

// errorReply turns a service error into the message the player sees
func errorReply(err error) string {
	meta := dnderr.GetMeta(err)

	switch dnderr.GetCode(err) {
	case dnderr.CodeAlreadyInBattle:
		return "⚔️ Você já está em uma caçada! Use `/rpg attack` ou `/rpg cast`."
	case dnderr.CodeNoActiveBattle:
		return "❌ Você não está em nenhuma caçada. Use `/rpg hunt` para começar."
	case dnderr.CodeClassNotCaster:
		return "❌ Sua classe não usa magias. Apenas magos lançam feitiços."
	case dnderr.CodeSlotEmpty:
		return fmt.Sprintf("❌ O slot %v está vazio. Use `/rpg spell equip`.", meta["slot"])
	case dnderr.CodeInsufficientMana:
		return fmt.Sprintf("🔮 Mana insuficiente: a magia custa %v e você tem %v.", meta["cost"], meta["available"])
	case dnderr.CodeInvalidClass:
		return fmt.Sprintf("❌ A classe %q não existe.", meta["class"])
	case dnderr.CodeClassAlreadyChosen:
		return "❌ Você já escolheu sua classe. A escolha é permanente."
	case dnderr.CodeInvalidSpellArchetype:
		return fmt.Sprintf("❌ A magia %q não existe. Veja `/rpg spell list`.", meta["spell_id"])
	case dnderr.CodeReequipDuringBattle:
		return "❌ Não é possível trocar magias durante uma caçada."
	case dnderr.CodeExhausted:
		return "💤 Você está sem vida. Use `/rpg rest` antes de caçar."
	case dnderr.CodeInsufficientTokens:
		return fmt.Sprintf("🎟️ Tokens insuficientes: custa %v e você tem %v.", meta["cost"], meta["available"])
	case dnderr.CodeSlotNotLocked:
		return fmt.Sprintf("❌ A magia do slot %v ainda não está pronta para ascender.", meta["slot"])
	case dnderr.CodeInvalidArgument:
		if slot, ok := meta["slot"]; ok {
			return fmt.Sprintf("❌ Slot %v inválido. Escolha entre 1 e %d.", slot, spell.MaxSlots)
		}
		return "❌ Opção inválida."
	case dnderr.CodeUnavailable:
		return "❌ Erro ao acessar o banco de dados. Tente novamente."
	}
	return "❌ Algo deu errado. Tente novamente."
}

func huntReply(userID string, s *battle.Session) string {
	o := s.Opponent
	return fmt.Sprintf("🐾 <@%s> encontrou um **%s**! (HP %d, ataque %d, defesa %d)\nEle ataca a cada %s. Use `/rpg attack` ou `/rpg cast`.",
		userID, o.Name, o.HitPoints, o.Attack, o.Defense, o.AttackInterval)
}

func opponentLine(s *battle.Session) string {
	return fmt.Sprintf("%s: %d/%d HP", s.Opponent.Name, s.OpponentHP, s.Opponent.HitPoints)
}

func attackReply(r *battleService.AttackResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "⚔️ Você causou %d de dano. %s", r.Damage, opponentLine(r.Session))
	writeSettlement(&b, r.Session, r.Settlement)
	return b.String()
}

func castReply(r *battleService.CastResult) string {
	var b strings.Builder
	out := r.Outcome
	switch out.Kind {
	case spell.EffectShield:
		fmt.Fprintf(&b, "🛡️ %s ergueu um escudo de %d (total %d).", r.Spell.Name, out.Shielded, r.Session.Shield)
	case spell.EffectLifesteal:
		fmt.Fprintf(&b, "🩸 %s causou %d de dano e recuperou %d HP.", r.Spell.Name, out.Damage, out.Healed)
	default:
		fmt.Fprintf(&b, "🔥 %s causou %d de dano.", r.Spell.Name, out.Damage)
	}
	fmt.Fprintf(&b, " Mana: %d (-%d)\n%s", r.Session.PlayerMana, r.Cost, opponentLine(r.Session))

	if r.Slot.Locked {
		fmt.Fprintf(&b, "\n🔒 %s atingiu o limite da raridade %s. Use `/rpg spell ascend slot:%d`.", r.Spell.Name, rarityName(r.Slot.Rarity), r.Slot.Index)
	}
	writeSettlement(&b, r.Session, r.Settlement)
	return b.String()
}

func writeSettlement(b *strings.Builder, s *battle.Session, st *battleService.Settlement) {
	if st == nil {
		return
	}
	if st.Victory {
		fmt.Fprintf(b, "\n🏆 Você derrotou **%s** e ganhou %d moedas!", s.Opponent.Name, st.Loot)
		return
	}
	b.WriteString("\n" + defeatLine(s))
}

func defeatLine(s *battle.Session) string {
	return fmt.Sprintf("💀 Você foi derrotado por **%s**. Use `/rpg rest` para se recuperar.", s.Opponent.Name)
}

func statusReply(s *battle.Session) string {
	return fmt.Sprintf("⚔️ Caçada contra **%s**\n%s\n❤️ Você: %d/%d HP | 🔮 Mana %d | 🛡️ Escudo %d\nPróximo ataque <t:%d:R>",
		s.Opponent.Name, opponentLine(s), s.PlayerHP, s.PlayerMaxHP, s.PlayerMana, s.Shield, s.NextAttackAt.Unix())
}

func profileReply(userID string, p *character.Profile, className string) string {
	return fmt.Sprintf("📜 **Perfil de <@%s>**\nClasse: %s | Nível %d (%d XP, faltam %d)\n❤️ HP %d/%d | 🔮 Mana %d/%d\n⚔️ Ataque %d | 🛡️ Defesa %d\n🎟️ Tokens %d | 💰 Moedas %d",
		userID, className, p.Level, p.Experience, progression.ExperienceToNextLevel(p.Experience),
		p.CurrentHP, p.MaxHP, p.Mana, p.MaxMana, p.Attack, p.Defense, p.Tokens, p.Currency)
}

func classListReply(classes []*character.Archetype) string {
	var b strings.Builder
	b.WriteString("Escolha sua classe com `/rpg class archetype:<id>`:")
	for _, a := range classes {
		fmt.Fprintf(&b, "\n• **%s** (`%s`)", a.Name, a.ID)
		if a.Caster {
			b.WriteString(" usa magias")
		}
	}
	return b.String()
}

func classReply(p *character.Profile, className string) string {
	return fmt.Sprintf("✅ Agora você é **%s**! HP %d | Ataque %d | Defesa %d | Mana %d",
		className, p.MaxHP, p.Attack, p.Defense, p.MaxMana)
}

func restReply(p *character.Profile) string {
	return fmt.Sprintf("💤 Você descansou. HP %d/%d | Mana %d/%d", p.CurrentHP, p.MaxHP, p.Mana, p.MaxMana)
}

func slotLine(v *characterService.SlotView) string {
	if v.Archetype == nil {
		return fmt.Sprintf("%d. (vazio)", v.Slot.Index)
	}
	line := fmt.Sprintf("%d. **%s** %s nv %d | custo %d | poder %d",
		v.Slot.Index, v.Archetype.Name, rarityName(v.Slot.Rarity), v.Slot.Level, v.Cost, v.Power)
	if v.Slot.Locked {
		return line + " | 🔒 pronta para ascender"
	}
	if v.Slot.Rarity.Terminal() {
		return line
	}
	return line + fmt.Sprintf(" | XP %d (faltam %d)", v.Slot.XP, v.XPToNext)
}

func spellListReply(slots []*characterService.SlotView, catalog []*spell.Archetype) string {
	var b strings.Builder
	b.WriteString("📖 **Suas magias**")
	for _, v := range slots {
		b.WriteString("\n" + slotLine(v))
	}
	b.WriteString("\n\n**Disponíveis**")
	for _, a := range catalog {
		fmt.Fprintf(&b, "\n• `%s` %s (%s): %s", a.ID, a.Name, rarityName(a.Rarity), a.Description)
	}
	return b.String()
}

func inspectReply(v *characterService.SlotView) string {
	var b strings.Builder
	b.WriteString("🔎 " + slotLine(v))
	if v.Archetype != nil {
		fmt.Fprintf(&b, "\n%s\nEfeito: %s", v.Archetype.Description, v.Archetype.Effect.Kind())
	}
	if cost, ok := spell.AscendCost(v.Slot); ok {
		fmt.Fprintf(&b, "\nAscender custa %d tokens.", cost)
	}
	return b.String()
}

func equipReply(v *characterService.SlotView) string {
	return fmt.Sprintf("✅ **%s** equipada no slot %d.", v.Archetype.Name, v.Slot.Index)
}

func ascendReply(r *characterService.AscendResult) string {
	name := r.Slot.Slot.SpellID
	if r.Slot.Archetype != nil {
		name = r.Slot.Archetype.Name
	}
	return fmt.Sprintf("✨ **%s** agora é %s e recomeça no nível %d! Tokens gastos: %d, restantes: %d.",
		name, rarityName(r.Slot.Slot.Rarity), r.Slot.Slot.Level, r.Cost, r.TokensLeft)
}

func setExperienceReply(userID string, p *character.Profile) string {
	return fmt.Sprintf("✅ XP de <@%s> definido para %d (nível %d).", userID, p.Experience, p.Level)
}

func levelUpReply(userID string, r *characterService.GrantResult) string {
	reward := r.Gain.Reward
	return fmt.Sprintf("🎉 <@%s> subiu para o nível %d! +%d token(s), +%d moedas.",
		userID, r.Gain.LevelUp.To, reward.Tokens, reward.Currency)
}
