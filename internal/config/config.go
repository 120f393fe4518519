package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Addr             string
	Storage          string // "memory" or "mongo"
	MongoURI         string
	MongoDBName      string
	GitHubToken      string
	GitHubAPIURL     string
	Timeout          time.Duration
	MainRef          string
	ContentDir       string
	ContentExt       string
	RabbitURI        string // empty disables event publishing
	RabbitExchange   string
	RabbitRoutingKey string
	SeedDemoData     bool
}

const (
	Addr                = "ADDR"
	Storage             = "STORAGE"
	MongoURI            = "MONGO_URI"
	MongoDBName         = "MONGO_DB_NAME"
	GitHubToken         = "GITHUB_TOKEN"
	GitHubAPIURL        = "GITHUB_API_URL"
	Timeout             = "TIMEOUT"
	MainRef             = "MAIN_REF"
	ContentDir          = "CONTENT_DIR"
	ContentExt          = "CONTENT_EXT"
	RabbitURIEnv        = "RABBIT_URI"
	RabbitExchangeEnv   = "RABBIT_EXCHANGE"
	RabbitRoutingKeyEnv = "RABBIT_ROUTING_KEY"
	SeedDemoData        = "SEED_DEMO_DATA"
)

func FromEnv() (Config, error) {
	var cfg Config

	cfg.Addr = getEnv(Addr, ":8080")
	cfg.Storage = getEnv(Storage, "memory")
	cfg.MongoURI = getEnv(MongoURI, "mongodb://localhost:27017")
	cfg.MongoDBName = getEnv(MongoDBName, "tribune")
	cfg.GitHubToken = os.Getenv(GitHubToken)
	cfg.GitHubAPIURL = getEnv(GitHubAPIURL, "https://api.github.com")
	cfg.MainRef = getEnv(MainRef, "refs/heads/main")
	cfg.ContentDir = getEnv(ContentDir, "articles/")
	cfg.ContentExt = getEnv(ContentExt, ".json")
	cfg.RabbitURI = os.Getenv(RabbitURIEnv)
	cfg.RabbitExchange = getEnv(RabbitExchangeEnv, "tribune.sync")
	cfg.RabbitRoutingKey = getEnv(RabbitRoutingKeyEnv, "article.created")

	if cfg.Storage != "memory" && cfg.Storage != "mongo" {
		return cfg, fmt.Errorf("invalid %v: %q (want memory or mongo)", Storage, cfg.Storage)
	}

	var err error
	timeoutStr := getEnv(Timeout, "10s")
	if cfg.Timeout, err = time.ParseDuration(timeoutStr); err != nil {
		return cfg, fmt.Errorf("invalid %v: %w", Timeout, err)
	}
	if cfg.SeedDemoData, err = getEnvBool(SeedDemoData, true); err != nil {
		return cfg, fmt.Errorf("invalid %v: %w", SeedDemoData, err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, err
	}
	return b, nil
}
