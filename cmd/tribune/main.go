package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ai-safety-tribune/internal/api"
	"ai-safety-tribune/internal/article"
	"ai-safety-tribune/internal/config"
	"ai-safety-tribune/internal/db"
	"ai-safety-tribune/internal/event"
	"ai-safety-tribune/internal/github"
	"ai-safety-tribune/internal/ingest"

	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	// Root context cancelled on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := log.New(os.Stdout, "[tribune] ", log.LstdFlags|log.Lshortfile)

	cfg, err := config.FromEnv()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	// Article store: in-memory by default, mongo when configured
	var store article.Store
	var mongoClient *mongo.Client

	switch cfg.Storage {
	case "mongo":
		mongoClient, err = db.ConnectMongo(ctx, cfg.MongoURI)
		if err != nil {
			logger.Fatalf("failed to connect to db: %v", err)
		}
		store, err = article.NewMongoStore(mongoClient.Database(cfg.MongoDBName), logger)
		if err != nil {
			logger.Fatalf("failed to init mongo store: %v", err)
		}
		logger.Println("mongo article store initialised")
	default:
		mem := article.NewMemStore()
		if cfg.SeedDemoData {
			mem.Seed()
		}
		store = mem
		logger.Println("in-memory article store initialised")
	}

	// GitHub contents client
	httpClient := &http.Client{Timeout: cfg.Timeout}
	fetcher := github.NewClient(cfg.GitHubAPIURL, cfg.GitHubToken, httpClient)

	// Event publisher (RabbitMQ), optional
	var publisher ingest.Publisher
	if cfg.RabbitURI != "" {
		rabbit, err := event.NewRabbitPublisher(
			cfg.RabbitURI,
			cfg.RabbitExchange,
			cfg.RabbitRoutingKey,
			logger,
		)
		if err != nil {
			logger.Fatalf("failed to init rabbit publisher: %v", err)
		}
		defer rabbit.Close()
		publisher = rabbit
		logger.Println("event publisher initialised")
	}

	// Ingestion pipeline behind the webhook
	ingestService := ingest.NewService(
		store,
		fetcher,
		publisher,
		cfg.MainRef,
		cfg.ContentDir,
		cfg.ContentExt,
		logger,
	)

	// HTTP API
	server := api.NewServer(store, ingestService, logger)
	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: server.Router(),
	}

	go func() {
		logger.Printf("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Printf("HTTP server error: %v", err)
		}
	}()

	logger.Println("service started")

	// Block until we receive a signal / ctx cancelled
	<-ctx.Done()
	logger.Println("shutdown signal received, shutting down...")

	// Unified shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Graceful HTTP shutdown
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Printf("HTTP server shutdown error: %v", err)
	}

	// Graceful Mongo shutdown
	if mongoClient != nil {
		if err := mongoClient.Disconnect(shutdownCtx); err != nil {
			logger.Printf("mongo disconnect error: %v", err)
		}
	}

	logger.Println("shutdown complete")
}
