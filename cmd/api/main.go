package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/i-keeper/club-chatbot/config"
	"github.com/i-keeper/club-chatbot/internal/bootstrap"
	"github.com/i-keeper/club-chatbot/internal/chat/prompt"
	"github.com/i-keeper/club-chatbot/internal/chat/reference"
	"github.com/i-keeper/club-chatbot/internal/chat/service"
	"github.com/i-keeper/club-chatbot/internal/llm/gemini"
)

const serviceName = "club-chatbot"

func main() {
	if err := run(); err != nil {
		log.Fatalf("%v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	bootstrap.SetGinMode(cfg.App.Environment)

	doc, err := reference.Load(cfg.Chat.ReferencePath)
	if err != nil {
		return fmt.Errorf("reference: %w", err)
	}
	log.Printf("loaded reference document %s (%d bytes)", doc.Source(), doc.Size())

	tmpl := prompt.Default()
	if cfg.Chat.PromptFile != "" {
		if tmpl, err = prompt.LoadFile(cfg.Chat.PromptFile); err != nil {
			return fmt.Errorf("prompt: %w", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gen, err := gemini.New(context.Background(), cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		return fmt.Errorf("gemini: %w", err)
	}
	defer gen.Close()

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:    serviceName,
		Version:        cfg.App.Version,
		Model:          gen.Model(),
		AllowedOrigins: cfg.AllowedOrigins(),
		Chat:           service.NewChatService(gen, doc, tmpl),
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("listening on :%s (origins=%v)", cfg.Server.Port, cfg.AllowedOrigins())
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
		log.Println("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
