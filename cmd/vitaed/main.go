// Command vitaed serves the resume intake dialogue over HTTP.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"

	apihttp "github.com/OnslaughtSnail/vitae/api/http"
	"github.com/OnslaughtSnail/vitae/api/http/handlers"
	"github.com/OnslaughtSnail/vitae/internal/version"
	"github.com/OnslaughtSnail/vitae/kernel/engine"
	"github.com/OnslaughtSnail/vitae/kernel/form"
	"github.com/OnslaughtSnail/vitae/kernel/render"
	"github.com/OnslaughtSnail/vitae/kernel/store"
	"github.com/OnslaughtSnail/vitae/kernel/store/inmemory"
	redisstore "github.com/OnslaughtSnail/vitae/kernel/store/redis"
	sqlitestore "github.com/OnslaughtSnail/vitae/kernel/store/sqlite"
	"github.com/OnslaughtSnail/vitae/pkg/config"
	clog "github.com/OnslaughtSnail/vitae/pkg/log"
)

func main() {
	if err := run(); err != nil {
		clog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()
	if cfg.Verbose {
		clog.SetVerbose(true)
	}
	clog.Info("starting vitaed", "version", version.String(), "addr", cfg.Addr)

	schema, err := loadSchema(cfg)
	if err != nil {
		return err
	}

	sessions, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	eng, err := engine.New(engine.Config{
		Store:           sessions,
		Schema:          schema,
		TTL:             time.Duration(cfg.SessionTTLMinutes) * time.Minute,
		MaxAttempts:     cfg.RetryAttempts,
		MaxCorrections:  cfg.MaxCorrections,
		DefaultLanguage: cfg.Language,
	})
	if err != nil {
		return err
	}

	renderer, err := buildRenderer(cfg, schema)
	if err != nil {
		return err
	}

	app := fiber.New(fiber.Config{
		AppName:               "vitae " + version.String(),
		DisableStartupMessage: true,
	})
	apihttp.Register(app,
		handlers.NewHealthHandler(sessions),
		handlers.NewChatHandler(eng, renderer),
		handlers.NewSessionHandler(eng),
		handlers.NewExportHandler(eng),
	)

	clog.Info("HTTP server listening", "addr", cfg.Addr, "store", cfg.StoreBackend, "renderer", cfg.Renderer)
	return app.Listen(cfg.Addr)
}

func loadSchema(cfg *config.Config) (*form.Schema, error) {
	var (
		schema *form.Schema
		err    error
	)
	if cfg.FormPath != "" {
		schema, err = form.Load(cfg.FormPath)
	} else {
		schema, err = form.Default()
	}
	if err != nil {
		return nil, fmt.Errorf("load intake form: %w", err)
	}
	if cfg.MaxSkills > 0 {
		schema.Limits.MaxSkills = cfg.MaxSkills
	}
	if cfg.MaxCorrections > 0 {
		schema.Limits.MaxCorrections = cfg.MaxCorrections
	}
	return schema, nil
}

func openStore(cfg *config.Config) (store.Store, func(), error) {
	switch cfg.StoreBackend {
	case "memory":
		return inmemory.New(), func() {}, nil
	case "redis":
		s, err := redisstore.New(redisstore.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("open redis store: %w", err)
		}
		return s, func() { _ = s.Close() }, nil
	case "sqlite":
		s, err := sqlitestore.New(cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return s, func() { _ = s.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}

func buildRenderer(cfg *config.Config, schema *form.Schema) (render.Renderer, error) {
	fallback := render.NewTemplate(schema)
	switch cfg.Renderer {
	case "template":
		return fallback, nil
	case "anthropic":
		if cfg.AnthropicKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY is required for the anthropic renderer")
		}
		return render.NewAnthropic(cfg.AnthropicKey, cfg.AnthropicModel, fallback), nil
	case "gemini":
		if cfg.GeminiKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required for the gemini renderer")
		}
		return render.NewGemini(context.Background(), cfg.GeminiKey, cfg.GeminiModel, fallback)
	default:
		return nil, fmt.Errorf("unknown renderer %q", cfg.Renderer)
	}
}
