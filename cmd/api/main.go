package main

import (
	"context"
	"time"

	"github.com/Surabhi222005/MentorMe/internal/config"
	"github.com/Surabhi222005/MentorMe/internal/groq"
	"github.com/Surabhi222005/MentorMe/internal/handler"
	"github.com/Surabhi222005/MentorMe/internal/history"
	"github.com/Surabhi222005/MentorMe/internal/logger"
	"github.com/Surabhi222005/MentorMe/internal/portfinder"
	"github.com/Surabhi222005/MentorMe/internal/ratelimit"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

type application struct {
	Logger  *zap.Logger
	Config  *config.Config
	History *history.Store
	Limiter *ratelimit.Limiter
	Handler *handler.Handler
	Port    int
}

func main() {
	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, _ := logger.NewLogger(cfg.Env)
	defer log.Sync()
	sugar := log.Sugar()
	sugar.Infof("config loaded: %s", cfg)

	prompts, err := groq.LoadPrompts(cfg.Groq.PromptsFile)
	if err != nil {
		sugar.Fatal(err)
	}
	groqClient := groq.NewClient(cfg.Groq.APIKey, cfg.Groq.Model,
		groq.WithBaseURL(cfg.Groq.BaseURL),
		groq.WithTimeout(cfg.Groq.Timeout),
		groq.WithPrompts(prompts),
	)

	store, err := openHistory(ctx, cfg, log)
	if err != nil {
		sugar.Fatal(err)
	}
	defer store.Close()

	port, err := portfinder.New(log, cfg.PortSearchLimit).Find(ctx, cfg.Port)
	if err != nil {
		sugar.Fatalf("no port available from %d: %v", cfg.Port, err)
	}
	if port != cfg.Port {
		sugar.Infof("port %d in use, using %d", cfg.Port, port)
	}

	app := &application{
		Logger:  log,
		Config:  cfg,
		History: store,
		Port:    port,
		Handler: &handler.Handler{
			Logger:         log,
			AI:             groqClient,
			History:        store,
			Provider:       "Groq",
			Model:          groqClient.Model(),
			Port:           port,
			MaxUploadBytes: cfg.Upload.MaxBytes,
		},
	}
	if cfg.Limiter.Enabled {
		app.Limiter = ratelimit.New(cfg.Limiter.RPS, cfg.Limiter.Burst, 3*time.Minute)
	}

	if err := app.serve(); err != nil {
		sugar.Fatal(err)
	}
}
