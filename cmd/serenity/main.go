package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"serenity/internal/ai"
	"serenity/internal/config"
	"serenity/internal/handlers"
	"serenity/internal/logger"
	"serenity/internal/storage"
	"serenity/internal/usecases"
)

func main() {
	cfg := config.New()
	logger.Init(cfg.LogLevel)

	if cfg.OpenAIKey == "" {
		logger.Logger.Fatal("OPENAI_API_KEY is required")
	}

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
	if err != nil {
		logger.Logger.Fatal("unable to connect to db", "err", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		logger.Logger.Fatal("unable to ping db", "err", err)
	}
	logger.Logger.Info("connected to db")

	docStore := storage.NewDocStore(pool)
	if err := docStore.EnsureSchema(ctx); err != nil {
		logger.Logger.Fatal("unable to ensure schema", "err", err)
	}

	journalStorage := storage.NewJournalStorage(docStore)
	chatStorage := storage.NewChatStorage(docStore)
	moodStorage := storage.NewMoodStorage(docStore)
	statsStorage := storage.NewStatsStorage(journalStorage, moodStorage)

	gateway := ai.NewOpenAIGateway(cfg.OpenAIKey, cfg.OpenAIModel, cfg.GatewayTimeout)
	analyzer := usecases.NewAnalyzer(gateway)
	companion := usecases.NewCompanion(gateway)
	statsEngine := usecases.NewStatsEngine(statsStorage)

	router := handlers.NewRouter(
		handlers.NewJournalHandler(journalStorage, analyzer),
		handlers.NewChatHandler(chatStorage, companion, analyzer),
		handlers.NewMoodHandler(moodStorage),
		handlers.NewStatsHandler(statsEngine),
		cfg.CORSOrigins,
	)

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: router,
	}

	if err := run(srv); err != nil && err != http.ErrServerClosed {
		logger.Logger.Fatal("server failed", "err", err)
	}
}

// run starts the server and shuts it down gracefully on SIGINT/SIGTERM.
func run(srv *http.Server) error {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	logger.Logger.Info("listening", "addr", srv.Addr)

	select {
	case err := <-errCh:
		return err
	case <-sigCh:
		logger.Logger.Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}
}
