package discord

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/KirkDiggler/spyglass/internal/services/presence"
	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"
)

// Intents the bot needs to see the target's messages and presence
const Intents = discordgo.IntentsGuildMessages |
	discordgo.IntentsDirectMessages |
	discordgo.IntentsMessageContent |
	discordgo.IntentsGuildPresences |
	discordgo.IntentsGuildMembers

// Restarter restarts the watcher tasks; implemented by the supervisor
type Restarter interface {
	Restart(ctx context.Context) error
}

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	api        API
	presence   presence.Service
	supervisor Restarter
	config     *Config

	mu  sync.Mutex
	ctx context.Context
}

// Config holds the configuration for the bot
type Config struct {
	// Session is the gateway session, see NewSession
	Session *discordgo.Session

	// TargetUser gets the emoji reaction on every message
	TargetUser string

	// Optional custom emoji; both must be set to react
	EmojiID   string
	EmojiName string

	// BotActivity is shown as the bot's custom status
	BotActivity string

	PresenceService presence.Service
	Supervisor      Restarter
}

// NewSession creates a Discord session with the bot's intents
func NewSession(token string) (*discordgo.Session, error) {
	if token == "" {
		return nil, errors.New("token cannot be empty")
	}

	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}
	session.Identify.Intents = Intents

	return session, nil
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Session == nil {
		return nil, errors.New("session cannot be nil")
	}

	if cfg.PresenceService == nil {
		return nil, errors.New("presence service cannot be nil")
	}

	if cfg.Supervisor == nil {
		return nil, errors.New("supervisor cannot be nil")
	}

	session := cfg.Session
	bot := newBot(session, cfg)

	session.AddHandler(bot.handleReady)
	session.AddHandler(bot.handleResumed)
	session.AddHandler(bot.handleMessageCreate)
	session.AddHandler(bot.handlePresenceUpdate)

	return bot, nil
}

func newBot(api API, cfg *Config) *Bot {
	bot := &Bot{
		api:        api,
		presence:   cfg.PresenceService,
		supervisor: cfg.Supervisor,
		config:     cfg,
		ctx:        context.Background(),
	}
	if session, ok := api.(*discordgo.Session); ok {
		bot.session = session
	}
	return bot
}

// Start opens the gateway connection. The watchers are (re)started by the
// ready event, bound to ctx.
func (b *Bot) Start(ctx context.Context) error {
	b.mu.Lock()
	b.ctx = ctx
	b.mu.Unlock()

	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	log.Info("Bot is now running")
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	return b.session.Close()
}

func (b *Bot) context() context.Context {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ctx
}

func (b *Bot) restartWatchers(reason string) {
	if err := b.supervisor.Restart(b.context()); err != nil {
		log.Error("Failed to restart watchers", "reason", reason, "err", err)
	}
}

// handleReady restarts the watchers and sets the bot's custom status
func (b *Bot) handleReady(_ *discordgo.Session, r *discordgo.Ready) {
	if r.User != nil {
		log.Info("Connected to gateway", "user", r.User.Username)
	}

	if b.config.BotActivity != "" {
		if err := b.api.UpdateCustomStatus(b.config.BotActivity); err != nil {
			log.Error("Failed to set custom status", "err", err)
		}
	}

	b.restartWatchers("ready")
}

func (b *Bot) handleResumed(_ *discordgo.Session, _ *discordgo.Resumed) {
	log.Info("Gateway session resumed")
	b.restartWatchers("resumed")
}

// handleMessageCreate reacts to every message posted by the target user
func (b *Bot) handleMessageCreate(_ *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.ID != b.config.TargetUser {
		return
	}
	if b.config.EmojiID == "" || b.config.EmojiName == "" {
		return
	}

	emoji := b.config.EmojiName + ":" + b.config.EmojiID
	if err := b.api.MessageReactionAdd(m.ChannelID, m.ID, emoji); err != nil {
		log.Error("Error reacting to message", "message", m.ID, "err", err)
	}
}

func (b *Bot) handlePresenceUpdate(_ *discordgo.Session, p *discordgo.PresenceUpdate) {
	update := PresenceFromUpdate(p)
	if update == nil {
		return
	}

	if _, err := b.presence.HandlePresence(b.context(), &presence.HandlePresenceInput{
		Presence: update,
	}); err != nil {
		log.Error("Error handling presence update", "err", err)
	}
}
