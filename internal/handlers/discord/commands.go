package discord

import (
	"fmt"

	"github.com/Kkzin999/sun/internal/domain/spell"
	"github.com/Kkzin999/sun/internal/logger"
	"github.com/bwmarrin/discordgo"
)

// CommandRegistrar replaces the application's slash commands. *discordgo.Session satisfies it.
type CommandRegistrar interface {
	ApplicationCommandBulkOverwrite(appID string, guildID string, commands []*discordgo.ApplicationCommand, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error)
}

// RegisterCommands registers /rpg for a guild, or globally when guildID is empty
func (h *Handler) RegisterCommands(r CommandRegistrar, appID, guildID string) error {
	created, err := r.ApplicationCommandBulkOverwrite(appID, guildID, []*discordgo.ApplicationCommand{h.Command()})
	if err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}

	logger.Info("Registered commands", "count", len(created), "guild_id", guildID)
	return nil
}

// Command builds the /rpg definition. Class and spell choices come from game data.
func (h *Handler) Command() *discordgo.ApplicationCommand {
	minSlot := 1.0

	slotOption := func(description string) *discordgo.ApplicationCommandOption {
		return &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "slot",
			Description: description,
			Required:    true,
			MinValue:    &minSlot,
			MaxValue:    spell.MaxSlots,
		}
	}

	classChoices := []*discordgo.ApplicationCommandOptionChoice{}
	for _, a := range h.characters.ListClasses() {
		classChoices = append(classChoices, &discordgo.ApplicationCommandOptionChoice{Name: a.Name, Value: string(a.ID)})
	}

	spellChoices := []*discordgo.ApplicationCommandOptionChoice{}
	for _, a := range h.characters.ListSpells() {
		// Discord caps choices at 25
		if len(spellChoices) == 25 {
			break
		}
		spellChoices = append(spellChoices, &discordgo.ApplicationCommandOptionChoice{Name: a.Name, Value: a.ID})
	}

	userOption := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionUser,
		Name:        "user",
		Description: "Jogador alvo",
		Required:    true,
	}

	return &discordgo.ApplicationCommand{
		Name:        CommandName,
		Description: "RPG do servidor",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "hunt",
				Description: "Procura um monstro para enfrentar",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "attack",
				Description: "Ataca o monstro da sua caçada",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "cast",
				Description: "Lança a magia de um slot",
				Options:     []*discordgo.ApplicationCommandOption{slotOption("Slot da magia")},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "status",
				Description: "Mostra a caçada atual",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "profile",
				Description: "Mostra seu perfil",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "class",
				Description: "Escolhe sua classe (permanente)",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "archetype",
						Description: "Classe",
						Choices:     classChoices,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "rest",
				Description: "Recupera HP e mana",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommandGroup,
				Name:        "spell",
				Description: "Gerencia suas magias",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionSubCommand,
						Name:        "list",
						Description: "Lista seus slots e as magias disponíveis",
					},
					{
						Type:        discordgo.ApplicationCommandOptionSubCommand,
						Name:        "inspect",
						Description: "Mostra os detalhes de um slot",
						Options:     []*discordgo.ApplicationCommandOption{slotOption("Slot da magia")},
					},
					{
						Type:        discordgo.ApplicationCommandOptionSubCommand,
						Name:        "equip",
						Description: "Equipa uma magia em um slot",
						Options: []*discordgo.ApplicationCommandOption{
							slotOption("Slot da magia"),
							{
								Type:        discordgo.ApplicationCommandOptionString,
								Name:        "spell",
								Description: "Magia",
								Required:    true,
								Choices:     spellChoices,
							},
						},
					},
					{
						Type:        discordgo.ApplicationCommandOptionSubCommand,
						Name:        "ascend",
						Description: "Gasta tokens para continuar evoluindo uma magia",
						Options:     []*discordgo.ApplicationCommandOption{slotOption("Slot da magia")},
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommandGroup,
				Name:        "admin",
				Description: "Comandos de administração",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionSubCommand,
						Name:        "setxp",
						Description: "Define o XP de um jogador",
						Options: []*discordgo.ApplicationCommandOption{
							userOption,
							{
								Type:        discordgo.ApplicationCommandOptionInteger,
								Name:        "amount",
								Description: "XP total",
								Required:    true,
							},
						},
					},
					{
						Type:        discordgo.ApplicationCommandOptionSubCommand,
						Name:        "endhunt",
						Description: "Encerra a caçada de um jogador",
						Options:     []*discordgo.ApplicationCommandOption{userOption},
					},
				},
			},
		},
	}
}
