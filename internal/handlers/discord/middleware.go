package discord

import (
	"fmt"
	"runtime/debug"

	"github.com/Kkzin999/sun/internal/logger"
	"github.com/bwmarrin/discordgo"
)

// RecoverMiddleware wraps handler functions to recover from panics
func RecoverMiddleware(handlerName string, handler func(*discordgo.Session, *discordgo.InteractionCreate)) func(*discordgo.Session, *discordgo.InteractionCreate) {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("Panic in handler", "handler", handlerName, "panic", fmt.Sprint(r), "stack", string(debug.Stack()))
				respond(s, i, &Reply{Content: "❌ Ocorreu um erro inesperado.", Ephemeral: true})
			}
		}()

		handler(s, i)
	}
}

// RecoverMessageMiddleware is RecoverMiddleware for message events, which have
// nobody to answer.
func RecoverMessageMiddleware(handlerName string, handler func(*discordgo.Session, *discordgo.MessageCreate)) func(*discordgo.Session, *discordgo.MessageCreate) {
	return func(s *discordgo.Session, m *discordgo.MessageCreate) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("Panic in handler", "handler", handlerName, "panic", fmt.Sprint(r), "stack", string(debug.Stack()))
			}
		}()

		handler(s, m)
	}
}
