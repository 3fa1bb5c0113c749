package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"attendbot/config"
	"attendbot/jobs"
	"attendbot/routes"
	"attendbot/services"
	"attendbot/services/logger"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "attendbot",
		Usage: "Discord bot chấm công vào/ra",
		Before: func(c *cli.Context) error {
			config.LoadEnv(logger.NewDefaultLogger(logger.InfoLevel))
			return nil
		},
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "chạy HTTP server nhận interaction từ Discord",
				Action: serve,
			},
			{
				Name:   "register-commands",
				Usage:  "đăng ký slash command với Discord",
				Action: registerCommands,
			},
			{
				Name:   "migrate",
				Usage:  "tạo bảng attendance_events",
				Action: migrate,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("❌ %v", err)
	}
}

func loadConfig() (*config.Config, logger.Logger, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}
	lg, closer, err := config.NewLogger(cfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	cleanup := func() {
		if closer != nil {
			_ = closer.Close()
		}
	}
	return cfg, lg, cleanup, nil
}

func serve(c *cli.Context) error {
	cfg, lg, cleanup, err := loadConfig()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := config.InitApp(ctx, cfg, lg)
	if err != nil {
		return fmt.Errorf("failed to initialize app: %w", err)
	}
	defer app.Close()

	if err := jobs.InitCronJobs(app.Cron, cfg.ReminderCron, app.Reminder); err != nil {
		return fmt.Errorf("failed to initialize cron jobs: %w", err)
	}

	router := config.NewRouter()
	if err := routes.SetupRoutes(router, app); err != nil {
		return fmt.Errorf("invalid DISCORD_PUBLIC_KEY: %w", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		lg.Info("Server starting on port %s...", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	lg.Info("Đang tắt server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func registerCommands(c *cli.Context) error {
	cfg, lg, cleanup, err := loadConfig()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := cfg.RequireDiscordAPI(); err != nil {
		return err
	}

	cmds := services.SlashCommands()
	registrar := services.NewCommandRegistrar(cfg.DiscordApplicationID, cfg.DiscordBotToken)
	if err := registrar.Register(c.Context, cmds); err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}
	lg.Info("✅ Đã đăng ký %d slash command", len(cmds))
	return nil
}

func migrate(c *cli.Context) error {
	cfg, lg, cleanup, err := loadConfig()
	if err != nil {
		return err
	}
	defer cleanup()

	store, db, err := config.OpenStore(cfg, lg)
	if err != nil {
		return err
	}
	gs, ok := store.(*services.GormEventStore)
	if !ok {
		lg.Info("STORE=%s không cần migrate", cfg.Store)
		return nil
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()

	if err := gs.Migrate(c.Context); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	lg.Info("✅ Đã migrate bảng attendance_events")
	return nil
}
