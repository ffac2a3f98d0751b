package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/spyglass/internal/clients/opendota"
	"github.com/KirkDiggler/spyglass/internal/clients/steam"
	"github.com/KirkDiggler/spyglass/internal/common/clock"
	"github.com/KirkDiggler/spyglass/internal/common/uuid"
	"github.com/KirkDiggler/spyglass/internal/config"
	"github.com/KirkDiggler/spyglass/internal/handlers/discord"
	"github.com/KirkDiggler/spyglass/internal/httpapi"
	"github.com/KirkDiggler/spyglass/internal/localization"
	"github.com/KirkDiggler/spyglass/internal/metrics"
	"github.com/KirkDiggler/spyglass/internal/repositories/notification"
	"github.com/KirkDiggler/spyglass/internal/services/matchpoller"
	"github.com/KirkDiggler/spyglass/internal/services/notifier"
	"github.com/KirkDiggler/spyglass/internal/services/presence"
	"github.com/KirkDiggler/spyglass/internal/services/steampoller"
	"github.com/KirkDiggler/spyglass/internal/services/supervisor"
	"github.com/KirkDiggler/spyglass/internal/state"
	"github.com/charmbracelet/log"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

const shutdownTimeout = 10 * time.Second

func main() {
	log.SetReportTimestamp(true)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration", "err", err)
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal("Invalid log level", "err", err)
	}
	log.SetLevel(level)

	locals, err := localization.Load(cfg.LocalizationPath)
	if err != nil {
		log.Fatal("Failed to load localization", "path", cfg.LocalizationPath, "err", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	notificationRepo := newNotificationRepository(ctx, cfg)
	metricsSvc := metrics.NewService()

	session, err := discord.NewSession(cfg.Token)
	if err != nil {
		log.Fatal("Failed to create Discord session", "err", err)
	}

	// Discord allows roughly five messages per five seconds per channel
	notifierSvc, err := notifier.New(&notifier.Config{
		ChannelID:     cfg.OutputChannel,
		Sender:        discord.NewSender(session),
		Repository:    notificationRepo,
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
		Metrics:       metricsSvc,
		Limiter:       rate.NewLimiter(rate.Every(time.Second), 5),
	})
	if err != nil {
		log.Fatal("Failed to create notifier", "err", err)
	}

	playerState := state.New()

	tasks, err := newWatchers(cfg, locals, notifierSvc, playerState, metricsSvc)
	if err != nil {
		log.Fatal("Failed to create watchers", "err", err)
	}

	sup, err := supervisor.New(&supervisor.Config{
		Tasks:   tasks,
		Metrics: metricsSvc,
	})
	if err != nil {
		log.Fatal("Failed to create supervisor", "err", err)
	}

	presenceSvc, err := presence.New(&presence.Config{
		TargetGuild:  cfg.TargetGuild,
		TargetUser:   cfg.TargetUser,
		State:        playerState,
		Notifier:     notifierSvc,
		Localization: locals,
		Metrics:      metricsSvc,
	})
	if err != nil {
		log.Fatal("Failed to create presence service", "err", err)
	}

	bot, err := discord.New(&discord.Config{
		Session:         session,
		TargetUser:      cfg.TargetUser,
		EmojiID:         cfg.EmojiID,
		EmojiName:       cfg.EmojiName,
		BotActivity:     locals.BotActivity,
		PresenceService: presenceSvc,
		Supervisor:      sup,
	})
	if err != nil {
		log.Fatal("Failed to create Discord bot", "err", err)
	}

	g, gctx := errgroup.WithContext(ctx)

	if err := bot.Start(gctx); err != nil {
		log.Fatal("Failed to start Discord bot", "err", err)
	}

	if cfg.HTTPAddr != "" {
		srv := &http.Server{
			Addr: cfg.HTTPAddr,
			Handler: httpapi.SetupRoutes(&httpapi.Deps{
				Supervisor:    sup,
				State:         playerState,
				Notifier:      notifierSvc,
				Notifications: notificationRepo,
				Metrics:       metrics.NewMetricsHandler(),
			}),
			ReadHeaderTimeout: 5 * time.Second,
		}

		g.Go(func() error {
			log.Info("HTTP server listening", "addr", cfg.HTTPAddr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error("Server error", "err", err)
	}

	log.Info("Shutting down")

	if err := bot.Stop(); err != nil {
		log.Error("Error stopping bot", "err", err)
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := sup.Stop(stopCtx); err != nil {
		log.Error("Watchers did not stop in time", "err", err)
	}

	log.Info("Bot has been shut down")
}

// newNotificationRepository uses Redis when configured and an in-memory log otherwise
func newNotificationRepository(ctx context.Context, cfg *config.Config) notification.Repository {
	if cfg.RedisAddr == "" {
		log.Info("REDIS_ADDR not set, keeping the notification log in memory")
		return notification.NewMemory(notification.DefaultMaxEntries)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis", "addr", cfg.RedisAddr, "err", err)
	}

	repo, err := notification.NewRedis(&notification.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatal("Failed to create notification repository", "err", err)
	}

	return repo
}

// newWatchers builds the poller tasks. The Steam poller needs an API key.
func newWatchers(
	cfg *config.Config,
	locals *localization.Bundle,
	notifierSvc notifier.Service,
	playerState *state.Store,
	metricsSvc metrics.Metrics,
) ([]supervisor.Task, error) {
	dotaClient, err := opendota.New(&opendota.Config{})
	if err != nil {
		return nil, err
	}

	matchPoller, err := matchpoller.New(&matchpoller.Config{
		Client:       dotaClient,
		Notifier:     notifierSvc,
		Localization: locals,
		Metrics:      metricsSvc,
		AccountID:    cfg.TargetSteamID32,
		Interval:     cfg.MatchPollInterval,
	})
	if err != nil {
		return nil, err
	}

	tasks := []supervisor.Task{matchPoller}

	if !cfg.SteamEnabled() {
		log.Warn("STEAM_API_KEY not set, Steam presence polling disabled")
		return tasks, nil
	}

	steamClient, err := steam.New(&steam.Config{
		APIKey: cfg.SteamAPIKey,
	})
	if err != nil {
		return nil, err
	}

	steamPoller, err := steampoller.New(&steampoller.Config{
		Client:       steamClient,
		State:        playerState,
		Notifier:     notifierSvc,
		Localization: locals,
		Metrics:      metricsSvc,
		SteamID64:    cfg.SteamID64(),
		Interval:     cfg.SteamPollInterval,
	})
	if err != nil {
		return nil, err
	}

	return append(tasks, steamPoller), nil
}
