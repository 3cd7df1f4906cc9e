package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-telegram/bot"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Freeeeeet/meeting_bot/internal/app"
	"github.com/Freeeeeet/meeting_bot/internal/config"
	"github.com/Freeeeeet/meeting_bot/internal/controller"
	"github.com/Freeeeeet/meeting_bot/internal/controller/state"
	"github.com/Freeeeeet/meeting_bot/internal/repository"
	"github.com/Freeeeeet/meeting_bot/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment, cfg.LogLevel)
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("Bot stopped with error", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Starting meeting bot",
		zap.String("environment", cfg.Environment),
		zap.Duration("session_ttl", cfg.SessionTTL))

	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return err
	}

	migrator, err := app.NewMigrator(pool, logger)
	if err != nil {
		return err
	}
	if err := migrator.Run(ctx); err != nil {
		migrator.Close()
		return err
	}
	migrator.Close()

	userRepo := repository.NewUserRepository(pool)
	proposalRepo := repository.NewProposalRepository(pool)

	userService := service.NewUserService(userRepo, logger)
	meetingService := service.NewMeetingService(proposalRepo, logger)

	stateManager := state.NewManager()

	botInstance, err := bot.New(cfg.TelegramToken)
	if err != nil {
		return err
	}

	botController := controller.NewBotController(
		botInstance,
		userService,
		meetingService,
		stateManager,
		cfg.HistoryLimit,
		logger,
	)
	if err := botController.RegisterHandlers(ctx); err != nil {
		// меню команд не критично для работы
		logger.Warn("Bot started without commands menu", zap.Error(err))
	}

	janitor := app.NewJanitor(stateManager, cfg.SessionTTL, cfg.SessionSweepInterval, logger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return botController.Start(gctx)
	})
	g.Go(func() error {
		return janitor.Run(gctx)
	})

	err = g.Wait()
	logger.Info("Meeting bot stopped")
	return err
}
