package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/mattn/go-sqlite3"

	authservice "squadmatch/auth/service"
	botsqlite "squadmatch/bot/botstorage/sqlite"
	"squadmatch/bot/tgbot"
	"squadmatch/internal/config"
	"squadmatch/internal/logger"
	sqlite3 "squadmatch/internal/migrate"
	"squadmatch/internal/service"
	"squadmatch/internal/storage/sqlite"
	"squadmatch/internal/web"
)

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.New()
	if err != nil {
		return err
	}
	log := logger.New(cfg.Server.Debug)

	db, err := sqlite.Open(cfg.Server.SqliteFile)
	if err != nil {
		return fmt.Errorf("open server db: %w", err)
	}
	defer db.Close()
	if err := sqlite3.UpServerDB(db); err != nil {
		return fmt.Errorf("migrate server db: %w", err)
	}
	store := sqlite.New(db, log)

	authCfg, err := authservice.NewConfig()
	if err != nil {
		return err
	}
	auth, err := authservice.New(context.Background(), authCfg, store, log)
	if err != nil {
		return err
	}

	squadService := service.New(store, store, store, cfg.Rating, log)

	if cfg.Server.TgBotEnabled {
		botStore, err := botsqlite.New(log, cfg.TgBot)
		if err != nil {
			return fmt.Errorf("bot storage: %w", err)
		}
		bot, err := tgbot.New(squadService, botStore, cfg, log)
		if err != nil {
			return fmt.Errorf("telegram bot: %w", err)
		}
		squadService.SetNotifier(bot)
		go bot.Run()
		defer bot.Stop()
	}

	server := web.New(squadService, cfg.Server, auth, log)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-stop
		if err := server.Shutdown(); err != nil {
			log.WithError(err).Error("shutdown")
		}
	}()

	return server.Serve()
}
