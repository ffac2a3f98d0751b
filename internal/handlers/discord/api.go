package discord

//go:generate mockgen -package=mocks -destination=mocks/mock_api.go github.com/KirkDiggler/spyglass/internal/handlers/discord API

import "github.com/bwmarrin/discordgo"

// API is the part of the Discord session the bot calls directly
type API interface {
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
	MessageReactionAdd(channelID, messageID, emojiID string, options ...discordgo.RequestOption) error
	UpdateCustomStatus(state string) error
}

var _ API = (*discordgo.Session)(nil)
