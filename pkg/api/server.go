// Package api exposes the HTTP surface: source registration and inspection,
// the crawler webhook, SSE streams for ingestion progress and chat turns,
// conversation history, and health.
package api

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	echo "github.com/labstack/echo/v5"
	"github.com/redis/go-redis/v9"

	"github.com/kollektiv-ai/kollektiv/pkg/config"
	"github.com/kollektiv-ai/kollektiv/pkg/database"
	"github.com/kollektiv-ai/kollektiv/pkg/events"
	"github.com/kollektiv-ai/kollektiv/pkg/models"
	"github.com/kollektiv-ai/kollektiv/pkg/queue"
	"github.com/kollektiv-ai/kollektiv/pkg/services"
)

// CrawlStarter starts crawls on the external crawler service.
type CrawlStarter interface {
	StartCrawl(ctx context.Context, crawl models.CrawlConfig) (string, error)
}

// ChatStreamer produces the event stream for a single chat turn.
type ChatStreamer interface {
	GetResponse(ctx context.Context, userID, conversationID uuid.UUID, text string) (<-chan models.FrontendChatEvent, error)
}

// EventBus publishes stage events and serves per-source subscriptions.
type EventBus interface {
	PublishStageEvent(ctx context.Context, event models.ContentProcessingEvent) error
	StreamSource(ctx context.Context, sourceID uuid.UUID) (*events.EventStream, error)
}

// Server is the HTTP API server.
type Server struct {
	podID         string
	cfg           *config.Config
	dbClient      *database.Client
	sources       *services.SourceService
	jobs          *services.JobService
	conversations *services.ConversationService
	workerPool    *queue.WorkerPool

	// Optional collaborators; handlers that need a missing one return 503.
	crawler CrawlStarter
	chat    ChatStreamer
	bus     EventBus
	redis   *redis.Client

	echo       *echo.Echo
	httpServer *http.Server
	health     healthCache
}

type healthCache struct {
	mu   sync.Mutex
	at   time.Time
	code int
	resp *HealthResponse
}

// NewServer creates the API server and registers all routes.
func NewServer(
	podID string,
	cfg *config.Config,
	dbClient *database.Client,
	sources *services.SourceService,
	jobs *services.JobService,
	conversations *services.ConversationService,
	workerPool *queue.WorkerPool,
) *Server {
	s := &Server{
		podID:         podID,
		cfg:           cfg,
		dbClient:      dbClient,
		sources:       sources,
		jobs:          jobs,
		conversations: conversations,
		workerPool:    workerPool,
	}

	e := echo.New()
	e.Use(securityHeaders())
	if cfg != nil && cfg.HTTP != nil && len(cfg.HTTP.AllowedOrigins) > 0 {
		e.Use(corsHeaders(cfg.HTTP.AllowedOrigins))
	}

	e.POST("/api/v0/sources", s.addSourceHandler)
	e.GET("/api/v0/sources", s.listSourcesHandler)
	e.GET("/api/v0/sources/:id", s.getSourceHandler)
	e.GET("/api/v0/sources/:id/events", s.sourceEventsHandler)
	e.POST("/api/v0/chat", s.chatHandler)
	e.GET("/api/v0/conversations", s.listConversationsHandler)
	e.GET("/api/v0/conversations/:id", s.getConversationHandler)
	e.POST("/webhooks/firecrawl", s.firecrawlWebhookHandler)
	e.GET("/health", s.healthHandler)

	s.echo = e
	// No WriteTimeout: SSE responses stay open until the stream ends.
	s.httpServer = &http.Server{
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// SetCrawler wires the crawler client used to start crawls.
func (s *Server) SetCrawler(c CrawlStarter) {
	s.crawler = c
}

// SetChatService wires the chat service backing POST /api/v0/chat.
func (s *Server) SetChatService(c ChatStreamer) {
	s.chat = c
}

// SetEventBus wires the bus used for stage events and SSE subscriptions.
func (s *Server) SetEventBus(b EventBus) {
	s.bus = b
}

// SetRedis wires the redis client checked by the health endpoint.
func (s *Server) SetRedis(r *redis.Client) {
	s.redis = r
}

// ServeHTTP implements http.Handler, so the server can also be mounted on a
// caller-owned listener.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

// Start begins serving on addr. It blocks until the server stops and
// returns http.ErrServerClosed after a clean Shutdown.
func (s *Server) Start(addr string) error {
	s.httpServer.Addr = addr
	return s.httpServer.ListenAndServe()
}

// Shutdown stops accepting new connections and waits for in-flight
// requests to finish or ctx to expire.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
