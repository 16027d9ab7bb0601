package discord

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/Kkzin999/sun/internal/clock"
	mockdice "github.com/Kkzin999/sun/internal/dice/mock"
	"github.com/Kkzin999/sun/internal/services"
	"github.com/Kkzin999/sun/internal/testutils"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// fakeSession records what the handler sends to Discord
type fakeSession struct {
	mu        sync.Mutex
	responses []*discordgo.InteractionResponse
	messages  map[string][]string
	roles     []string
	commands  []*discordgo.ApplicationCommand
	sendErr   error
	roleErr   map[string]error
}

func newFakeSession() *fakeSession {
	return &fakeSession{messages: map[string][]string{}, roleErr: map[string]error{}}
}

func (f *fakeSession) InteractionRespond(_ *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses = append(f.responses, resp)
	return nil
}

func (f *fakeSession) ChannelMessageSend(channelID, content string, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	f.messages[channelID] = append(f.messages[channelID], content)
	return &discordgo.Message{ChannelID: channelID, Content: content}, nil
}

func (f *fakeSession) GuildMemberRoleAdd(guildID, userID, roleID string, _ ...discordgo.RequestOption) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.roleErr[roleID]; err != nil {
		return err
	}
	f.roles = append(f.roles, fmt.Sprintf("%s/%s/%s", guildID, userID, roleID))
	return nil
}

func (f *fakeSession) ApplicationCommandBulkOverwrite(_, _ string, cmds []*discordgo.ApplicationCommand, _ ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error) {
	f.commands = cmds
	return cmds, nil
}

func interaction(guildID, userID string, perms int64, options ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:        "interaction-1",
			Type:      discordgo.InteractionApplicationCommand,
			GuildID:   guildID,
			ChannelID: "channel-1",
			Member: &discordgo.Member{
				User:        &discordgo.User{ID: userID},
				Permissions: perms,
			},
			Data: discordgo.ApplicationCommandInteractionData{
				Name:    CommandName,
				Options: options,
			},
		},
	}
}

func sub(name string, options ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:    name,
		Type:    discordgo.ApplicationCommandOptionSubCommand,
		Options: options,
	}
}

func group(name string, subcommand *discordgo.ApplicationCommandInteractionDataOption) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:    name,
		Type:    discordgo.ApplicationCommandOptionSubCommandGroup,
		Options: []*discordgo.ApplicationCommandInteractionDataOption{subcommand},
	}
}

func intOpt(name string, v int) *discordgo.ApplicationCommandInteractionDataOption {
	// Discord delivers numbers as JSON floats
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionInteger, Value: float64(v)}
}

func strOpt(name, v string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionString, Value: v}
}

func userOpt(id string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: "user", Type: discordgo.ApplicationCommandOptionUser, Value: id}
}

func TestParseCommand(t *testing.T) {
	t.Run("subcommand", func(t *testing.T) {
		cmd, err := ParseCommand(interaction("guild-1", "user-1", 0, sub("cast", intOpt("slot", 2))))
		require.NoError(t, err)
		require.NotNil(t, cmd)

		assert.Equal(t, "cast", cmd.Name)
		assert.Equal(t, "guild-1", cmd.Ref.CommunityID)
		assert.Equal(t, "user-1", cmd.Ref.CharacterID)
		assert.Equal(t, "channel-1", cmd.ChannelID)
		assert.False(t, cmd.IsAdmin)

		slot, ok := cmd.IntOption("slot")
		assert.True(t, ok)
		assert.Equal(t, 2, slot)
	})

	t.Run("grouped subcommand", func(t *testing.T) {
		cmd, err := ParseCommand(interaction("guild-1", "user-1", discordgo.PermissionAdministrator,
			group("spell", sub("equip", intOpt("slot", 1), strOpt("spell", "raio")))))
		require.NoError(t, err)

		assert.Equal(t, "spell equip", cmd.Name)
		assert.Equal(t, "raio", cmd.StringOption("spell"))
		assert.True(t, cmd.IsAdmin)
	})

	t.Run("missing options", func(t *testing.T) {
		cmd, err := ParseCommand(interaction("guild-1", "user-1", 0, sub("hunt")))
		require.NoError(t, err)

		_, ok := cmd.IntOption("slot")
		assert.False(t, ok)
		assert.Empty(t, cmd.StringOption("spell"))
	})

	t.Run("other command", func(t *testing.T) {
		i := interaction("guild-1", "user-1", 0, sub("hunt"))
		i.Data = discordgo.ApplicationCommandInteractionData{Name: "dnd"}

		cmd, err := ParseCommand(i)
		assert.NoError(t, err)
		assert.Nil(t, cmd)
	})

	t.Run("direct message", func(t *testing.T) {
		i := interaction("", "user-1", 0, sub("hunt"))
		i.Member = nil
		i.User = &discordgo.User{ID: "user-1"}

		_, err := ParseCommand(i)
		assert.ErrorIs(t, err, errNotInGuild)
	})
}

// HandlerTestSuite drives the handler against real services on in-memory storage
type HandlerTestSuite struct {
	suite.Suite
	ctx     context.Context
	clock   *clock.Fixed
	roller  *mockdice.ManualMockRoller
	fake    *fakeSession
	handler *Handler
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = &clock.Fixed{T: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	s.roller = mockdice.NewManualMockRoller()
	s.fake = newFakeSession()

	provider := services.NewProvider(&services.ProviderConfig{
		GameData:     testutils.LoadBalance(s.T()),
		Roller:       s.roller,
		TimeProvider: s.clock,
	})
	s.handler = NewHandler(&HandlerConfig{ServiceProvider: provider})
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) run(perms int64, opt *discordgo.ApplicationCommandInteractionDataOption) *Reply {
	cmd, err := ParseCommand(interaction("guild-1", "user-1", perms, opt))
	s.Require().NoError(err)
	return s.handler.Execute(s.ctx, cmd)
}

func (s *HandlerTestSuite) TestProfile_NewCharacter() {
	reply := s.run(0, sub("profile"))

	s.Contains(reply.Content, "Perfil de <@user-1>")
	s.Contains(reply.Content, "Sem classe")
	s.Contains(reply.Content, "HP 100/100")
	s.False(reply.Ephemeral)
}

func (s *HandlerTestSuite) TestClass_ListsChoicesWithoutArchetype() {
	reply := s.run(0, sub("class"))

	s.True(reply.Ephemeral)
	s.Contains(reply.Content, "**Mago** (`mage`) usa magias")
	s.Contains(reply.Content, "**Soldado** (`soldier`)")
}

func (s *HandlerTestSuite) TestClass_ChooseAndRepeat() {
	reply := s.run(0, sub("class", strOpt("archetype", "mage")))
	s.Equal("✅ Agora você é **Mago**! HP 80 | Ataque 6 | Defesa 4 | Mana 100", reply.Content)

	reply = s.run(0, sub("class", strOpt("archetype", "soldier")))
	s.True(reply.Ephemeral)
	s.Contains(reply.Content, "A escolha é permanente")

	reply = s.run(0, sub("profile"))
	s.Contains(reply.Content, "Classe: Mago")
}

func (s *HandlerTestSuite) TestClass_Unknown() {
	reply := s.run(0, sub("class", strOpt("archetype", "bard")))

	s.True(reply.Ephemeral)
	s.Equal(`❌ A classe "bard" não existe.`, reply.Content)
}

func (s *HandlerTestSuite) TestHunt_AttackAndStatus() {
	reply := s.run(0, sub("hunt"))
	s.Contains(reply.Content, "<@user-1> encontrou um **")

	reply = s.run(0, sub("hunt"))
	s.True(reply.Ephemeral)
	s.Contains(reply.Content, "Você já está em uma caçada")

	reply = s.run(0, sub("attack"))
	s.Contains(reply.Content, "⚔️ Você causou")

	reply = s.run(0, sub("status"))
	s.Contains(reply.Content, "Caçada contra **")
	s.Contains(reply.Content, "Próximo ataque <t:")
}

func (s *HandlerTestSuite) TestStatus_NoHunt() {
	reply := s.run(0, sub("status"))

	s.True(reply.Ephemeral)
	s.Contains(reply.Content, "Você não está em nenhuma caçada")
}

func (s *HandlerTestSuite) TestCast_NotCaster() {
	s.run(0, sub("hunt"))

	reply := s.run(0, sub("cast", intOpt("slot", 1)))
	s.True(reply.Ephemeral)
	s.Contains(reply.Content, "Sua classe não usa magias")
}

func (s *HandlerTestSuite) TestCast_MageShield() {
	s.run(0, sub("class", strOpt("archetype", "mage")))
	s.run(0, sub("hunt"))

	// The default loadout puts Muralha in slot 2
	reply := s.run(0, sub("cast", intOpt("slot", 2)))
	s.False(reply.Ephemeral)
	s.Contains(reply.Content, "🛡️ Muralha ergueu um escudo")
}

func (s *HandlerTestSuite) TestSpells_ListInspectEquip() {
	s.run(0, sub("class", strOpt("archetype", "mage")))

	reply := s.run(0, group("spell", sub("list")))
	s.Contains(reply.Content, "1. **Bola de Fogo** Comum nv 1")
	s.Contains(reply.Content, "`meteoro` Meteoro (Lendária)")

	reply = s.run(0, group("spell", sub("equip", intOpt("slot", 3), strOpt("spell", "raio"))))
	s.Equal("✅ **Raio** equipada no slot 3.", reply.Content)

	reply = s.run(0, group("spell", sub("inspect", intOpt("slot", 3))))
	s.Contains(reply.Content, "3. **Raio**")
	s.Contains(reply.Content, "Efeito: damage")

	reply = s.run(0, group("spell", sub("inspect", intOpt("slot", 4))))
	s.True(reply.Ephemeral)
	s.Contains(reply.Content, "Slot 4 inválido")
}

func (s *HandlerTestSuite) TestSpells_EquipDuringHunt() {
	s.run(0, sub("class", strOpt("archetype", "mage")))
	s.run(0, sub("hunt"))

	reply := s.run(0, group("spell", sub("equip", intOpt("slot", 1), strOpt("spell", "raio"))))
	s.True(reply.Ephemeral)
	s.Contains(reply.Content, "durante uma caçada")
}

func (s *HandlerTestSuite) TestSpells_AscendUnlockedSlot() {
	s.run(0, sub("class", strOpt("archetype", "mage")))

	reply := s.run(0, group("spell", sub("ascend", intOpt("slot", 1))))
	s.True(reply.Ephemeral)
	s.Contains(reply.Content, "ainda não está pronta para ascender")
}

func (s *HandlerTestSuite) TestRest() {
	reply := s.run(0, sub("rest"))

	s.Equal("💤 Você descansou. HP 100/100 | Mana 0/0", reply.Content)
}

func (s *HandlerTestSuite) TestAdmin_RequiresPermission() {
	reply := s.run(0, group("admin", sub("setxp", userOpt("user-2"), intOpt("amount", 300))))

	s.True(reply.Ephemeral)
	s.Contains(reply.Content, "Apenas administradores")
}

func (s *HandlerTestSuite) TestAdmin_SetExperience() {
	reply := s.run(discordgo.PermissionManageGuild, group("admin", sub("setxp", userOpt("user-2"), intOpt("amount", 300))))
	s.Equal("✅ XP de <@user-2> definido para 300 (nível 2).", reply.Content)

	cmd, err := ParseCommand(interaction("guild-1", "user-2", 0, sub("profile")))
	s.Require().NoError(err)
	reply = s.handler.Execute(s.ctx, cmd)
	s.Contains(reply.Content, "Nível 2 (300 XP, faltam 300)")
}

func (s *HandlerTestSuite) TestAdmin_EndHunt() {
	s.run(0, sub("hunt"))

	reply := s.run(discordgo.PermissionAdministrator, group("admin", sub("endhunt", userOpt("user-1"))))
	s.Equal("✅ Caçada de <@user-1> encerrada.", reply.Content)

	reply = s.run(0, sub("status"))
	s.Contains(reply.Content, "Você não está em nenhuma caçada")

	reply = s.run(discordgo.PermissionAdministrator, group("admin", sub("endhunt", userOpt("user-1"))))
	s.True(reply.Ephemeral)
	s.Contains(reply.Content, "Você não está em nenhuma caçada")
}

func (s *HandlerTestSuite) TestHandleInteraction_Responds() {
	s.handler.handleInteraction(s.ctx, s.fake, interaction("guild-1", "user-1", 0, sub("status")))

	s.Require().Len(s.fake.responses, 1)
	resp := s.fake.responses[0]
	s.Equal(discordgo.InteractionResponseChannelMessageWithSource, resp.Type)
	s.Equal(discordgo.MessageFlagsEphemeral, resp.Data.Flags)
	s.Contains(resp.Data.Content, "nenhuma caçada")
}

func (s *HandlerTestSuite) TestHandleInteraction_IgnoresOtherTypes() {
	i := interaction("guild-1", "user-1", 0, sub("status"))
	i.Type = discordgo.InteractionMessageComponent
	i.Data = discordgo.MessageComponentInteractionData{CustomID: "button"}

	s.handler.handleInteraction(s.ctx, s.fake, i)
	s.Empty(s.fake.responses)
}

func message(guildID, userID string, bot bool) *discordgo.MessageCreate {
	return &discordgo.MessageCreate{Message: &discordgo.Message{
		GuildID:   guildID,
		ChannelID: "channel-1",
		Author:    &discordgo.User{ID: userID, Bot: bot},
		Content:   "olá",
	}}
}

func (s *HandlerTestSuite) TestHandleMessage_AnnouncesLevelUp() {
	s.run(discordgo.PermissionAdministrator, group("admin", sub("setxp", userOpt("user-1"), intOpt("amount", 90))))

	s.roller.SetNextRoll(11)
	s.handler.handleMessage(s.ctx, s.fake, message("guild-1", "user-1", false))

	s.Equal([]string{"🎉 <@user-1> subiu para o nível 1! +1 token(s), +100 moedas."}, s.fake.messages["channel-1"])

	// Still on cooldown: no roll is consumed and nothing is posted
	s.handler.handleMessage(s.ctx, s.fake, message("guild-1", "user-1", false))
	s.Len(s.fake.messages["channel-1"], 1)
}

func (s *HandlerTestSuite) TestHandleMessage_QuietWithoutLevelUp() {
	s.roller.SetNextRoll(1)
	s.handler.handleMessage(s.ctx, s.fake, message("guild-1", "user-1", false))

	s.Empty(s.fake.messages)
	reply := s.run(0, sub("profile"))
	s.Contains(reply.Content, "Nível 0 (15 XP")
}

func (s *HandlerTestSuite) TestHandleMessage_IgnoresBotsAndDirectMessages() {
	s.handler.handleMessage(s.ctx, s.fake, message("guild-1", "bot-1", true))
	s.handler.handleMessage(s.ctx, s.fake, message("", "user-1", false))

	s.Empty(s.fake.messages)
	reply := s.run(0, sub("profile"))
	s.Contains(reply.Content, "(0 XP")
}

func (s *HandlerTestSuite) TestHandleMessage_SendFailureIsLogged() {
	s.run(discordgo.PermissionAdministrator, group("admin", sub("setxp", userOpt("user-1"), intOpt("amount", 90))))
	s.fake.sendErr = errors.New("rate limited")

	s.roller.SetNextRoll(11)
	s.handler.handleMessage(s.ctx, s.fake, message("guild-1", "user-1", false))

	reply := s.run(0, sub("profile"))
	s.Contains(reply.Content, "Nível 1")
}

func (s *HandlerTestSuite) TestRegisterCommands() {
	s.Require().NoError(s.handler.RegisterCommands(s.fake, "app-1", "guild-1"))

	s.Require().Len(s.fake.commands, 1)
	cmd := s.fake.commands[0]
	s.Equal(CommandName, cmd.Name)

	names := map[string]*discordgo.ApplicationCommandOption{}
	for _, opt := range cmd.Options {
		names[opt.Name] = opt
	}
	for _, name := range []string{"hunt", "attack", "cast", "status", "profile", "class", "rest", "spell", "admin"} {
		s.Contains(names, name)
	}
	s.Len(names["spell"].Options, 4)
	s.Len(names["class"].Options[0].Choices, 4)
}
