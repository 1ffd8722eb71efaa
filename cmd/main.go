package main

import (
	"boozbaal-chat/ai"
	"boozbaal-chat/console"
	"boozbaal-chat/domain"
	"boozbaal-chat/infrastructure/gemini"
	"boozbaal-chat/repositories"
	"boozbaal-chat/runtime/workers"
	"boozbaal-chat/services"
	"boozbaal-chat/storage"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires every component and keeps the console alive until the user
// quits or a signal arrives. Returning instead of exiting lets the deferred
// database close run.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := storage.Open(config.BadgerFilepath, config.BadgerInMemory)
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Debug("Closing BadgerDB...")
		_ = db.Close()
	}()
	store := storage.NewBadgerStore(db, log)

	// 3. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. Reply suggestions, disabled without credential
	aiConfig := ai.Config{APIKey: config.APIKey, Model: config.AIModel}
	var generator ai.Generator
	if aiConfig.Enabled() {
		g, err := gemini.NewGenerator(ctx, config.APIKey, log)
		if err != nil {
			log.Error("Gemini client unavailable", "error", err)
		} else {
			generator = g
		}
	}
	suggester := ai.NewSuggester(aiConfig, generator, log)

	// 5. Repositories & Services
	app := config.AppPrefix
	if app == "" {
		app = domain.DefaultAppPrefix
	}
	sessions := repositories.NewSessionRepository(store, app, log)
	login := services.NewLoginService(repositories.NewUserRepository(store, app, log), log)
	newChat := func(user domain.User) services.IChatService {
		tabs := repositories.NewTabRepository(store, app, user, sessions, log)
		return services.NewChatService(user, sessions, tabs, suggester, config.InviteBaseURL, log)
	}

	// 6. Console
	sup := workers.NewSupervisor(log, config.RestartInterval)
	ui := console.New(os.Stdout, log, login, newChat, sessions, sup)
	err = ui.Run(ctx, os.Stdin)

	// 7. Final Cleanup
	stop()
	ui.Wait()
	sup.Wait()
	log.Debug("Program stopped cleanly")
	return err
}
