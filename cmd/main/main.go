package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"becbot/pkg"
	"becbot/pkg/cascade"
	"becbot/pkg/colors"
	"becbot/pkg/cooldown"
	"becbot/pkg/db"
	"becbot/pkg/handlers"
	"becbot/pkg/moderation"
	"becbot/pkg/suggestions"
	"becbot/pkg/util"

	"github.com/disgoorg/disgo"
	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/cache"
	"github.com/disgoorg/disgo/gateway"
	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		panic(err)
	}
	config, err := pkg.LoadConfig()
	if err != nil {
		panic(err)
	}

	err = sentry.Init(sentry.ClientOptions{
		Dsn:           config.SentryDSN,
		EnableTracing: false,
		EnableLogs:    true,
		BeforeSend: func(event *sentry.Event, hint *sentry.EventHint) *sentry.Event {
			if config.Production() { // only log events in prod
				return event
			}
			return nil
		},
	})
	if err != nil {
		panic(err)
	}
	defer sentry.Flush(2 * time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := slog.New(slog.NewMultiHandler(
		tint.NewHandler(os.Stdout, &tint.Options{
			Level: config.LogLevel,
		}),
		sentryslog.Option{
			EventLevel: []slog.Level{slog.LevelError},
			LogLevel:   []slog.Level{slog.LevelWarn},
		}.NewSentryHandler(ctx)))
	slog.SetDefault(logger)

	slog.Info("becbot: starting the bot...", slog.String("disgo.version", disgo.Version))

	pool, err := pgxpool.New(ctx, config.DatabaseURL)
	if err != nil {
		panic(err)
	}
	defer pool.Close()
	if err := db.Migrate(ctx, pool); err != nil {
		panic(err)
	}
	store := db.NewDB(pool)

	b := &pkg.Bot{
		DB:            store,
		CanCooldown:   cooldown.New(pkg.CanCooldown),
		QuoteCooldown: cooldown.New(pkg.QuoteCooldown),
		Cascades:      cascade.NewRegistry(),
	}
	h := handlers.NewHandler(b, config)

	client, err := disgo.New(config.Token,
		bot.WithGatewayConfigOpts(
			gateway.WithIntents(gateway.IntentGuilds, gateway.IntentGuildMessages, gateway.IntentMessageContent, gateway.IntentGuildMessageReactions),
			gateway.WithPresenceOpts(gateway.WithPlayingActivity("Becbot Reloaded"))),
		bot.WithCacheConfigOpts(cache.WithCaches(cache.FlagGuilds, cache.FlagChannels, cache.FlagRoles)),
		bot.WithEventManagerConfigOpts(bot.WithAsyncEventsEnabled()),
		bot.WithEventListeners(h, h.Listeners()))
	if err != nil {
		panic(err)
	}
	b.Suggestions = suggestions.New(store, &suggestions.RestPlatform{Rest: client.Rest})
	b.Colors = colors.New(&colors.RestRoleAPI{Rest: client.Rest})
	b.Moderation = newPipeline(ctx, config.Moderation, &moderation.RestReporter{
		Rest:      client.Rest,
		ChannelID: config.Moderation.LogChannelID,
		Self: func() moderation.Identity {
			user, ok := client.Caches.SelfUser()
			if !ok {
				return moderation.Identity{}
			}
			return moderation.Identity{Name: user.Username, IconURL: user.EffectiveAvatarURL()}
		},
	})

	defer func() {
		client.Close(context.TODO())
		if b.Moderation != nil {
			b.Moderation.Close()
		}
	}()

	if err := client.OpenGateway(ctx); err != nil {
		panic(err)
	}

	slog.Info("becbot: bot is now running.")
	s := make(chan os.Signal, 1)
	signal.Notify(s, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-s
	slog.Info("becbot: shutting down...")
}

// newPipeline returns nil when no log channel is configured.
func newPipeline(ctx context.Context, config moderation.Config, reporter moderation.Reporter) *moderation.Pipeline {
	if !config.Enabled() {
		slog.Warn("becbot: LOG_CHANNEL_ID is not set, moderation is disabled")
		return nil
	}
	classifier := moderation.NewProfanityClassifier(config.ExtraTerms, true)

	var (
		images *moderation.ImageScanner
		queue  *moderation.Queue
	)
	if config.ImagesEnabled() {
		images = moderation.NewImageScanner(
			&moderation.HTTPFetcher{Client: util.NewAttachmentClient()},
			&moderation.TesseractRecognizer{TessdataDir: config.TessdataDir, Language: config.Language},
			classifier,
			reporter)
		queue = moderation.NewQueue(ctx, config.Workers, config.QueueSize, slog.Default())
	} else {
		slog.Warn("becbot: TESSDATA is not set, image scanning is disabled")
	}
	slog.Info("becbot: moderation enabled",
		slog.Any("channel.id", config.LogChannelID),
		slog.Bool("moderation.images", images != nil),
		slog.Int("moderation.workers", config.Workers))
	return moderation.New(config, classifier, reporter, images, queue, slog.Default())
}
