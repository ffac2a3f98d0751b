package discord

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/spyglass/internal/services/notifier"
	"github.com/bwmarrin/discordgo"
)

var _ notifier.MessageSender = (*Sender)(nil)

// Sender posts notifications to a channel
type Sender struct {
	api API
}

// NewSender creates a sender on top of a Discord session
func NewSender(api API) *Sender {
	return &Sender{api: api}
}

// SendMessage implements notifier.MessageSender
func (s *Sender) SendMessage(ctx context.Context, channelID, text string, tts bool) error {
	_, err := s.api.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Content: text,
		TTS:     tts,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to send message to channel %s: %w", channelID, err)
	}
	return nil
}
