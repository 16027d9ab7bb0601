package discord

import (
	"context"
	"fmt"

	"github.com/Kkzin999/sun/internal/logger"
	"github.com/Kkzin999/sun/internal/services"
	battleService "github.com/Kkzin999/sun/internal/services/battle"
	characterService "github.com/Kkzin999/sun/internal/services/character"
	"github.com/bwmarrin/discordgo"
)

// Responder answers interactions. *discordgo.Session satisfies it.
type Responder interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
}

// ChannelSender posts plain channel messages. *discordgo.Session satisfies it.
type ChannelSender interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Handler routes /rpg commands and chat messages to the game services
type Handler struct {
	characters characterService.Service
	battles    battleService.Service
}

// HandlerConfig holds configuration for the handler
type HandlerConfig struct {
	ServiceProvider *services.Provider
}

// NewHandler creates a new Discord handler
func NewHandler(cfg *HandlerConfig) *Handler {
	if cfg.ServiceProvider == nil {
		panic("service provider is required")
	}

	return &Handler{
		characters: cfg.ServiceProvider.CharacterService,
		battles:    cfg.ServiceProvider.BattleService,
	}
}

// HandleInteraction handles all Discord interactions
func (h *Handler) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	h.handleInteraction(context.Background(), s, i)
}

func (h *Handler) handleInteraction(ctx context.Context, r Responder, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	cmd, err := ParseCommand(i)
	if err != nil {
		logger.Warn("Rejected interaction", "error", err)
		respond(r, i, &Reply{Content: "❌ " + err.Error(), Ephemeral: true})
		return
	}
	if cmd == nil {
		return
	}

	reply := h.Execute(ctx, cmd)
	respond(r, i, reply)
}

// HandleMessageCreate grants passive experience for guild chat
func (h *Handler) HandleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	h.handleMessage(context.Background(), s, m)
}

func (h *Handler) handleMessage(ctx context.Context, sender ChannelSender, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || m.GuildID == "" {
		return
	}

	ref := refFor(m.GuildID, m.Author.ID)
	result, err := h.characters.GrantMessageExperience(ctx, ref)
	if err != nil {
		logger.Error("Failed to grant message experience", "ref", ref.Key(), "error", err)
		return
	}
	if result == nil || result.Gain.LevelUp == nil {
		return
	}

	msg := levelUpReply(m.Author.ID, result)
	if _, err := sender.ChannelMessageSend(m.ChannelID, msg); err != nil {
		logger.Warn("Failed to announce level up", "ref", ref.Key(), "channel_id", m.ChannelID, "error", err)
	}
}

func respond(r Responder, i *discordgo.InteractionCreate, reply *Reply) {
	data := &discordgo.InteractionResponseData{Content: reply.Content}
	if reply.Ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}

	err := r.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
	if err != nil {
		logger.Error("Failed to respond to interaction", "interaction_id", i.ID, "error", fmt.Errorf("respond: %w", err))
	}
}
