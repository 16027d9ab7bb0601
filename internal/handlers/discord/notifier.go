package discord

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/Kkzin999/sun/internal/domain/character"
	"github.com/Kkzin999/sun/internal/logger"
	battleService "github.com/Kkzin999/sun/internal/services/battle"
	characterService "github.com/Kkzin999/sun/internal/services/character"
	"github.com/bwmarrin/discordgo"
)

var (
	_ battleService.Notifier          = (*ChannelNotifier)(nil)
	_ characterService.RewardNotifier = (*RoleRewardNotifier)(nil)
)

// ChannelNotifier posts battle events to the hunt's channel
type ChannelNotifier struct {
	sender ChannelSender
}

// NewChannelNotifier creates a notifier posting through sender
func NewChannelNotifier(sender ChannelSender) *ChannelNotifier {
	return &ChannelNotifier{sender: sender}
}

// Announce sends message to channelID. A deleted or inaccessible channel is
// reported as battle.ErrChannelUnreachable.
func (n *ChannelNotifier) Announce(ctx context.Context, channelID, message string) error {
	_, err := n.sender.ChannelMessageSend(channelID, message, discordgo.WithContext(ctx))
	if err == nil {
		return nil
	}

	if channelGone(err) {
		return fmt.Errorf("%w: channel %s: %v", battleService.ErrChannelUnreachable, channelID, err)
	}
	return fmt.Errorf("failed to send to channel %s: %w", channelID, err)
}

func channelGone(err error) bool {
	var restErr *discordgo.RESTError
	if !errors.As(err, &restErr) || restErr.Message == nil {
		return false
	}

	switch restErr.Message.Code {
	case discordgo.ErrCodeUnknownChannel, discordgo.ErrCodeMissingAccess, discordgo.ErrCodeMissingPermissions:
		return true
	}
	return false
}

// RoleGranter adds a role to a guild member. *discordgo.Session satisfies it.
type RoleGranter interface {
	GuildMemberRoleAdd(guildID, userID, roleID string, options ...discordgo.RequestOption) error
}

// RoleRewardNotifier grants the chat roles configured for level tiers
type RoleRewardNotifier struct {
	granter RoleGranter
	roles   map[int]string
	levels  []int
}

// NewRoleRewardNotifier creates a notifier for roles keyed by the level that unlocks them
func NewRoleRewardNotifier(granter RoleGranter, roles map[int]string) *RoleRewardNotifier {
	levels := make([]int, 0, len(roles))
	for level := range roles {
		levels = append(levels, level)
	}
	slices.Sort(levels)

	return &RoleRewardNotifier{
		granter: granter,
		roles:   roles,
		levels:  levels,
	}
}

// GrantLevelRewards grants every role unlocked at or below level. Roles the
// member already has are granted again, which Discord treats as a no-op.
func (n *RoleRewardNotifier) GrantLevelRewards(ctx context.Context, ref character.Ref, level int) error {
	var errs []error
	for _, tier := range n.levels {
		if tier > level {
			break
		}

		roleID := n.roles[tier]
		if err := n.granter.GuildMemberRoleAdd(ref.CommunityID, ref.CharacterID, roleID, discordgo.WithContext(ctx)); err != nil {
			errs = append(errs, fmt.Errorf("role %s for level %d: %w", roleID, tier, err))
			continue
		}
		logger.Debug("Granted reward role", "ref", ref.Key(), "role_id", roleID, "tier", tier)
	}
	return errors.Join(errs...)
}
