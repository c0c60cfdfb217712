package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"github.com/Freeeeeet/thunders/internal/app"
	"github.com/Freeeeeet/thunders/internal/assist"
	"github.com/Freeeeeet/thunders/internal/config"
	"github.com/Freeeeeet/thunders/internal/controller"
	"github.com/Freeeeeet/thunders/internal/controller/httpapi"
	"github.com/Freeeeeet/thunders/internal/gameweek"
	"github.com/Freeeeeet/thunders/internal/repository"
	"github.com/Freeeeeet/thunders/internal/service"
	"github.com/Freeeeeet/thunders/migrations"
	"github.com/go-telegram/bot"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	logger.Info("Starting thunders",
		zap.String("environment", cfg.Environment),
		zap.String("timezone", cfg.TimeZone),
		zap.Bool("bot_enabled", cfg.BotEnabled()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("Application stopped with error", zap.Error(err))
	}

	logger.Info("👋 Shutdown complete")
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	pool, err := pgxpool.New(ctx, cfg.GetDBDSN())
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return err
	}
	logger.Info("✅ Connected to database")

	if cfg.Migrations {
		migrator, err := app.NewMigrator(pool, migrations.FS, logger)
		if err != nil {
			return err
		}
		err = migrator.Run(ctx)
		migrator.Close()
		if err != nil {
			return err
		}
	}

	weeks, err := gameweek.New(cfg.Location())
	if err != nil {
		return err
	}

	// Repositories
	guestRepo := repository.NewGuestApplicationRepository(pool)
	membershipRepo := repository.NewMembershipRepository(pool)
	icnRepo := repository.NewIcnMemberRepository(pool)
	postRepo := repository.NewYoutubePostRepository(pool)
	contactRepo := repository.NewContactMessageRepository(pool)
	adminRepo := repository.NewAdminRepository(pool)

	// Services
	rosterService := service.NewRosterService(weeks, guestRepo, logger)
	membershipService := service.NewMembershipService(membershipRepo, guestRepo, cfg.Location(), logger)
	icnService := service.NewIcnService(icnRepo, guestRepo, cfg.Location(), logger)
	boardService := service.NewBoardService(postRepo, logger)
	contactService := service.NewContactService(contactRepo, logger)
	adminService := service.NewAdminService(adminRepo, logger)

	var generator assist.Generator
	gemini, err := assist.NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	switch {
	case err == nil:
		generator = gemini
	case errors.Is(err, assist.ErrNotConfigured):
		logger.Warn("GEMINI_API_KEY not set, AI drafts disabled")
	default:
		return err
	}
	assistant := assist.New(generator, weeks, logger)

	if cfg.BotEnabled() {
		if err := startBot(ctx, cfg, logger, rosterService, membershipService, adminService, assistant); err != nil {
			return err
		}
	} else {
		logger.Warn("TELEGRAM_TOKEN not set, bot and deadline digest disabled")
	}

	server := httpapi.NewServer(httpapi.Deps{
		Roster:      rosterService,
		Memberships: membershipService,
		Icn:         icnService,
		Videos:      boardService,
		Contacts:    contactService,
		Assistant:   assistant,
	}, httpapi.Options{
		AdminToken:    cfg.AdminAPIToken,
		GuestChatURL:  cfg.GuestChatURL,
		MemberChatURL: cfg.MemberChatURL,
		WeeksCount:    cfg.WeeksCount,
	}, logger)

	accessLog := app.AccessLogWriter(logger)
	defer accessLog.Close()

	return server.Start(ctx, cfg.HTTPAddr, accessLog)
}

// startBot запускает Telegram бота и рассылку итогов недели в фоне
func startBot(
	ctx context.Context,
	cfg *config.Config,
	logger *zap.Logger,
	rosterService *service.RosterService,
	membershipService *service.MembershipService,
	adminService *service.AdminService,
	assistant *assist.Assistant,
) error {
	b, err := bot.New(cfg.TelegramToken)
	if err != nil {
		return err
	}

	botController := controller.NewBotController(
		b,
		rosterService,
		membershipService,
		adminService,
		assistant,
		cfg.FontPath,
		logger,
	)
	if err := botController.RegisterHandlers(ctx); err != nil {
		logger.Warn("Bot commands menu not set", zap.Error(err))
	}

	scheduler := app.NewScheduler(rosterService, adminService, botController, logger)
	scheduler.Start(ctx)

	go func() {
		botController.Start(ctx)
		scheduler.Stop()
	}()

	return nil
}
