package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/The-Menufy/Menufy-Backend-sub000/internal/config"
	"github.com/The-Menufy/Menufy-Backend-sub000/internal/infra"
	"github.com/The-Menufy/Menufy-Backend-sub000/internal/realtime"
	"github.com/The-Menufy/Menufy-Backend-sub000/internal/repository"
	"github.com/The-Menufy/Menufy-Backend-sub000/internal/router"
	"github.com/The-Menufy/Menufy-Backend-sub000/internal/service"
	"github.com/The-Menufy/Menufy-Backend-sub000/internal/worker"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ── Outbound infrastructure ──────────────────────────────────────────────
	mailer := infra.NewMailer(cfg)
	nutrition := infra.NewNutritionClient(cfg.NutritionAPIURL, cfg.NutritionAPIKey)

	var chat *infra.ChatClient
	if cfg.OpenAIKey != "" {
		chat, err = infra.NewChatClient(cfg.OpenAIKey, cfg.OpenAIModel)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize chat client")
		}
	}

	var media *infra.MediaStore
	if cfg.MediaEndpoint != "" {
		media, err = infra.NewMediaStore(ctx, cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize media store")
		}
	}

	// ── Async workers ────────────────────────────────────────────────────────
	// Handlers are wired here (composition root) so the pool has full access
	// to infrastructure dependencies.
	dispatcher := worker.NewDispatcher(rdb)
	recipeRepo := repository.NewRecipeRepository(db)
	ingredientRepo := repository.NewIngredientRepository(db)
	costingSvc := service.NewCostingService(recipeRepo)

	pool := worker.NewPool(rdb)
	pool.Register("email", worker.NewEmailWorker(mailer))
	pool.Register("report", worker.NewReportWorker(costingSvc, dispatcher, cfg.PDFStoragePath))
	pool.Start(ctx, cfg.WorkerPoolSize)

	worker.StartStockCron(ctx, worker.StockCronConfig{
		Ingredients: ingredientRepo,
		Dispatcher:  dispatcher,
		ToEmail:     cfg.AlertsToEmail,
	})

	// ── Realtime hub ─────────────────────────────────────────────────────────
	hub := realtime.NewHub(rdb)
	go hub.Run(ctx)

	r := router.New(cfg, db, rdb, router.Deps{
		Hub:        hub,
		Nutrition:  nutrition,
		Chat:       chat,
		Media:      media,
		Dispatcher: dispatcher,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("backend listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
