package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"travel-assistant/internal/chat"
	tgDelivery "travel-assistant/internal/chat/delivery/telegram"
	"travel-assistant/internal/middleware"
	"travel-assistant/internal/session"
	"travel-assistant/internal/test"
	"travel-assistant/pkg/log"
	"travel-assistant/pkg/metrics"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	allowedOrigins  []string
	shutdownTimeout time.Duration
	mw              middleware.Middleware

	// Chat domain
	chatUC          chat.UseCase
	sessions        *session.Manager
	telegramHandler tgDelivery.Handler

	// Observability
	metrics     *metrics.Metrics
	metricsPath string

	// Test domain
	testHandler test.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	AllowedOrigins  []string
	ShutdownTimeout time.Duration
	Middleware      middleware.Middleware

	// Chat domain
	ChatUseCase     chat.UseCase
	Sessions        *session.Manager
	TelegramHandler tgDelivery.Handler

	// Observability, optional
	Metrics     *metrics.Metrics
	MetricsPath string

	// Test domain, optional
	TestHandler test.Handler
}

// New creates a new HTTPServer instance with every route registered.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.Default(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		allowedOrigins:  cfg.AllowedOrigins,
		shutdownTimeout: cfg.ShutdownTimeout,
		mw:              cfg.Middleware,
		chatUC:          cfg.ChatUseCase,
		sessions:        cfg.Sessions,
		telegramHandler: cfg.TelegramHandler,
		metrics:         cfg.Metrics,
		metricsPath:     cfg.MetricsPath,
		testHandler:     cfg.TestHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = defaultShutdownTimeout
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.chatUC == nil {
		return errors.New("chat use case is required")
	}
	return nil
}
