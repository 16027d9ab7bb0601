package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/Kkzin999/sun/internal/domain/character"
	"github.com/Kkzin999/sun/internal/logger"
	battleService "github.com/Kkzin999/sun/internal/services/battle"
	"github.com/bwmarrin/discordgo"
)

// CommandName is the single top-level slash command
const CommandName = "rpg"

// Command is a parsed /rpg invocation
type Command struct {
	Ref       character.Ref
	UserID    string
	ChannelID string
	// Name is the subcommand, prefixed by its group for grouped ones, e.g. "spell equip"
	Name    string
	IsAdmin bool
	Options map[string]*discordgo.ApplicationCommandInteractionDataOption
}

// Reply is the text sent back for a command
type Reply struct {
	Content   string
	Ephemeral bool
}

var errNotInGuild = errors.New("os comandos do RPG só funcionam em servidores")

// ParseCommand extracts the /rpg subcommand from an interaction. It returns
// nil without error for other commands.
func ParseCommand(i *discordgo.InteractionCreate) (*Command, error) {
	data := i.ApplicationCommandData()
	if data.Name != CommandName {
		return nil, nil
	}
	if i.GuildID == "" || i.Member == nil || i.Member.User == nil {
		return nil, errNotInGuild
	}
	if len(data.Options) == 0 {
		return nil, fmt.Errorf("subcomando ausente")
	}

	cmd := &Command{
		Ref:       refFor(i.GuildID, i.Member.User.ID),
		UserID:    i.Member.User.ID,
		ChannelID: i.ChannelID,
		IsAdmin:   i.Member.Permissions&(discordgo.PermissionAdministrator|discordgo.PermissionManageGuild) != 0,
	}

	sub := data.Options[0]
	cmd.Name = sub.Name
	if sub.Type == discordgo.ApplicationCommandOptionSubCommandGroup {
		if len(sub.Options) == 0 {
			return nil, fmt.Errorf("subcomando ausente em %s", sub.Name)
		}
		cmd.Name = sub.Name + " " + sub.Options[0].Name
		sub = sub.Options[0]
	}

	cmd.Options = make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(sub.Options))
	for _, opt := range sub.Options {
		cmd.Options[opt.Name] = opt
	}
	return cmd, nil
}

// StringOption returns the named option as a string. User options yield the user ID.
func (c *Command) StringOption(name string) string {
	opt, ok := c.Options[name]
	if !ok {
		return ""
	}
	s, _ := opt.Value.(string)
	return s
}

// IntOption returns the named option as an int
func (c *Command) IntOption(name string) (int, bool) {
	opt, ok := c.Options[name]
	if !ok {
		return 0, false
	}
	switch v := opt.Value.(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	case int64:
		return int(v), true
	}
	return 0, false
}

func refFor(guildID, userID string) character.Ref {
	return character.Ref{CommunityID: guildID, CharacterID: userID}
}

// Execute runs a parsed command against the game services
func (h *Handler) Execute(ctx context.Context, cmd *Command) *Reply {
	logger.Debug("Executing command", "command", cmd.Name, "ref", cmd.Ref.Key())

	reply, err := h.execute(ctx, cmd)
	if err != nil {
		logger.Info("Command failed", "command", cmd.Name, "ref", cmd.Ref.Key(), "error", err)
		return &Reply{Content: errorReply(err), Ephemeral: true}
	}
	return reply
}

func (h *Handler) execute(ctx context.Context, cmd *Command) (*Reply, error) {
	switch cmd.Name {
	case "hunt":
		session, err := h.battles.StartHunt(ctx, cmd.Ref, cmd.ChannelID)
		if err != nil {
			return nil, err
		}
		return &Reply{Content: huntReply(cmd.UserID, session)}, nil

	case "attack":
		result, err := h.battles.BasicAttack(ctx, cmd.Ref)
		if err != nil {
			return nil, err
		}
		return &Reply{Content: attackReply(result)}, nil

	case "cast":
		slot, _ := cmd.IntOption("slot")
		result, err := h.battles.CastSpell(ctx, cmd.Ref, slot)
		if err != nil {
			return nil, err
		}
		return &Reply{Content: castReply(result)}, nil

	case "status":
		session, err := h.battles.Status(cmd.Ref)
		if err != nil {
			return nil, err
		}
		return &Reply{Content: statusReply(session)}, nil

	case "profile":
		p, err := h.characters.GetProfile(ctx, cmd.Ref)
		if err != nil {
			return nil, err
		}
		return &Reply{Content: profileReply(cmd.UserID, p, h.className(p.Class))}, nil

	case "class":
		archetype := cmd.StringOption("archetype")
		if archetype == "" {
			return &Reply{Content: classListReply(h.characters.ListClasses()), Ephemeral: true}, nil
		}
		p, err := h.characters.ChooseClass(ctx, cmd.Ref, character.ClassID(archetype))
		if err != nil {
			return nil, err
		}
		return &Reply{Content: classReply(p, h.className(p.Class))}, nil

	case "rest":
		p, err := h.characters.Rest(ctx, cmd.Ref)
		if err != nil {
			return nil, err
		}
		return &Reply{Content: restReply(p)}, nil

	case "spell list":
		slots, err := h.characters.GetSpellSlots(ctx, cmd.Ref)
		if err != nil {
			return nil, err
		}
		return &Reply{Content: spellListReply(slots, h.characters.ListSpells()), Ephemeral: true}, nil

	case "spell inspect":
		slot, _ := cmd.IntOption("slot")
		view, err := h.characters.InspectSpell(ctx, cmd.Ref, slot)
		if err != nil {
			return nil, err
		}
		return &Reply{Content: inspectReply(view), Ephemeral: true}, nil

	case "spell equip":
		slot, _ := cmd.IntOption("slot")
		view, err := h.characters.EquipSpell(ctx, cmd.Ref, slot, cmd.StringOption("spell"))
		if err != nil {
			return nil, err
		}
		return &Reply{Content: equipReply(view)}, nil

	case "spell ascend":
		slot, _ := cmd.IntOption("slot")
		result, err := h.characters.AscendSpell(ctx, cmd.Ref, slot)
		if err != nil {
			return nil, err
		}
		return &Reply{Content: ascendReply(result)}, nil

	case "admin setxp", "admin endhunt":
		return h.executeAdmin(ctx, cmd)
	}

	return &Reply{Content: fmt.Sprintf("❌ Comando desconhecido: %s", cmd.Name), Ephemeral: true}, nil
}

func (h *Handler) executeAdmin(ctx context.Context, cmd *Command) (*Reply, error) {
	if !cmd.IsAdmin {
		return &Reply{Content: "❌ Apenas administradores podem usar este comando.", Ephemeral: true}, nil
	}

	targetID := cmd.StringOption("user")
	if targetID == "" {
		targetID = cmd.UserID
	}
	target := refFor(cmd.Ref.CommunityID, targetID)

	switch cmd.Name {
	case "admin setxp":
		amount, _ := cmd.IntOption("amount")
		p, err := h.characters.SetExperience(ctx, target, amount)
		if err != nil {
			return nil, err
		}
		logger.Info("Admin set experience", "admin", cmd.UserID, "target", target.Key(), "experience", amount)
		return &Reply{Content: setExperienceReply(targetID, p), Ephemeral: true}, nil

	default:
		if _, err := h.battles.Teardown(ctx, target, battleService.ReasonAdmin); err != nil {
			return nil, err
		}
		logger.Info("Admin ended hunt", "admin", cmd.UserID, "target", target.Key())
		return &Reply{Content: fmt.Sprintf("✅ Caçada de <@%s> encerrada.", targetID), Ephemeral: true}, nil
	}
}

func (h *Handler) className(id character.ClassID) string {
	if id == "" {
		return "Sem classe"
	}
	for _, a := range h.characters.ListClasses() {
		if a.ID == id {
			return a.Name
		}
	}
	return string(id)
}
