// Kollektiv server — ingests documentation sources into per-user vector
// indexes and serves retrieval-augmented chat over them.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/kollektiv-ai/kollektiv/pkg/api"
	"github.com/kollektiv-ai/kollektiv/pkg/chat"
	"github.com/kollektiv-ai/kollektiv/pkg/chunker"
	"github.com/kollektiv-ai/kollektiv/pkg/cleanup"
	"github.com/kollektiv-ai/kollektiv/pkg/config"
	"github.com/kollektiv-ai/kollektiv/pkg/conversation"
	"github.com/kollektiv-ai/kollektiv/pkg/crawler"
	"github.com/kollektiv-ai/kollektiv/pkg/database"
	"github.com/kollektiv-ai/kollektiv/pkg/events"
	"github.com/kollektiv-ai/kollektiv/pkg/kv"
	"github.com/kollektiv-ai/kollektiv/pkg/llm"
	"github.com/kollektiv-ai/kollektiv/pkg/queue"
	"github.com/kollektiv-ai/kollektiv/pkg/retrieval"
	"github.com/kollektiv-ai/kollektiv/pkg/serializer"
	"github.com/kollektiv-ai/kollektiv/pkg/services"
	"github.com/kollektiv-ai/kollektiv/pkg/summarizer"
	"github.com/kollektiv-ai/kollektiv/pkg/tokenizer"
	"github.com/kollektiv-ai/kollektiv/pkg/vector"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	// Parse command-line flags
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	podID := resolvePodID()
	ctx := context.Background()

	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting kollektiv",
		"http_port", cfg.HTTP.Port,
		"pod_id", podID,
		"config_dir", *configDir)

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Domain services
	codec := serializer.NewCodec()
	sourceService := services.NewSourceService(dbClient.Client)
	jobService := services.NewJobService(dbClient.Client, codec)
	contentService := services.NewContentService(dbClient.Client)
	conversationService := services.NewConversationService(dbClient.Client)
	slog.Info("Services initialized")

	// 4. Redis backs the conversation K/V store and the stage-event bus
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.Error("Failed to connect to redis", "addr", cfg.Redis.Addr, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Error("Error closing redis client", "error", err)
		}
	}()
	kvStore := kv.NewStore(redisClient, codec)
	bus := events.NewBus(redisClient, codec)
	slog.Info("Connected to redis", "addr", cfg.Redis.Addr)

	// 5. Per-user vector index (qdrant + embeddings)
	qdrantClient, err := vector.NewQdrantClient(cfg.Qdrant)
	if err != nil {
		slog.Error("Failed to create qdrant client", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := qdrantClient.Close(); err != nil {
			slog.Error("Error closing qdrant client", "error", err)
		}
	}()
	embedder := vector.NewOpenAIEmbedder(cfg.Embeddings)
	index := vector.NewIndex(qdrantClient, embedder)

	// 6. LLM client, retrieval path, summarizer
	llmClient := llm.NewClient(llm.NewMessages(cfg.Anthropic.APIKey), cfg.Anthropic)
	reranker := retrieval.NewCohereReranker(cfg.Reranker)
	retriever := retrieval.NewRetriever(index, reranker)
	summaryGen := summarizer.NewGenerator(llmClient, contentService)

	// 7. Chat stack: tokenizer, assistant, conversation manager
	tok, err := tokenizer.NewTiktoken()
	if err != nil {
		slog.Error("Failed to initialize tokenizer", "error", err)
		os.Exit(1)
	}
	assistant := llm.NewAssistant(llmClient, retriever, contentService, cfg.Chat)
	manager, err := conversation.NewManager(kvStore, conversationService, tok, cfg.Chat)
	if err != nil {
		slog.Error("Failed to initialize conversation manager", "error", err)
		os.Exit(1)
	}
	chatService := chat.NewService(manager, assistant)

	// 8. Crawler client
	crawlerClient := crawler.NewClient(cfg.Firecrawl, cfg.HTTP.PublicBaseURL)
	slog.Info("Crawler initialized", "webhook_url", crawlerClient.WebhookURL())

	// 9. Ingestion queue: shared services container, executor, worker pool
	queueServices := &queue.Services{
		Sources: sourceService,
		Jobs:    jobService,
		Content: contentService,
		Crawler: crawlerClient,
		Chunker: chunker.New(tok, chunker.DefaultConfig()),
		Index:   index,
		Summary: summaryGen,
		Bus:     bus,
		Prompts: assistant,
		Config:  cfg.Queue,
	}

	// One-time startup orphan recovery
	if err := queue.RecoverStartupOrphans(ctx, queueServices, podID); err != nil {
		slog.Error("Failed to recover startup orphans", "error", err)
		// Non-fatal — continue
	}

	executor := queue.NewIngestExecutor(queueServices)
	workerPool := queue.NewWorkerPool(podID, queueServices, executor)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// Background retention sweep for finished jobs
	cleanupService := cleanup.NewService(cfg.Retention, jobService)
	cleanupService.Start(ctx)

	// 10. Create HTTP server
	httpServer := api.NewServer(podID, cfg, dbClient, sourceService, jobService, conversationService, workerPool)
	httpServer.SetCrawler(crawlerClient)
	httpServer.SetChatService(chatService)
	httpServer.SetEventBus(bus)
	httpServer.SetRedis(redisClient)

	// 11. Start HTTP server (non-blocking)
	errCh := make(chan error, 1)
	go func() {
		addr := cfg.HTTP.Host + ":" + strconv.Itoa(cfg.HTTP.Port)
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Kollektiv started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 12. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 13. Graceful shutdown: drain workers first, then the HTTP server
	cleanupService.Stop()

	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer workerCancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-workerShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded, incomplete jobs will be orphan-recovered")
	}

	// Stop HTTP server with its own timeout budget
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
