package http_init

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	http_access_middleware "github.com/humanbelnik/distancehug/internal/delivery/http/middleware/access"
	http_logging_middleware "github.com/humanbelnik/distancehug/internal/delivery/http/middleware/logging"
)

const apiPrefix = "/api"

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 15 * time.Second
)

// Request bodies are closed schemas.
var closedSchemas sync.Once

type Controller interface {
	RegisterRoutes(router *gin.RouterGroup)
}

type ControllerPool struct {
	pool   []Controller
	rg     *gin.RouterGroup
	engine *gin.Engine
	logger *slog.Logger
}

type options struct {
	logger      *slog.Logger
	mode        string
	corsOrigins []string
}

type Option func(*options)

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMode sets RW or RO.
func WithMode(mode string) Option {
	return func(o *options) {
		o.mode = mode
	}
}

func WithCORSOrigins(origins []string) Option {
	return func(o *options) {
		o.corsOrigins = origins
	}
}

func NewControllerPool(opts ...Option) *ControllerPool {
	o := &options{
		logger:      slog.Default(),
		mode:        "RW",
		corsOrigins: []string{"*"},
	}
	for _, opt := range opts {
		opt(o)
	}

	closedSchemas.Do(func() {
		binding.EnableDecoderDisallowUnknownFields = true
	})

	engine := gin.New()
	engine.Use(
		gin.Recovery(),
		http_logging_middleware.RequestLogger(o.logger),
		cors.New(corsConfig(o.corsOrigins)),
		http_access_middleware.ReadOnlyBadGatewayMiddleware(o.mode),
	)

	rg := engine.Group(apiPrefix)
	return &ControllerPool{
		pool:   make([]Controller, 0, 10),
		rg:     rg,
		engine: engine,
		logger: o.logger,
	}
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowCredentials = true
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	cfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}

	cfg.AllowOrigins = []string{}
	for _, origin := range origins {
		if origin == "*" {
			cfg.AllowAllOrigins = true
			cfg.AllowOrigins = nil
			break
		}
		cfg.AllowOrigins = append(cfg.AllowOrigins, origin)
	}
	if len(cfg.AllowOrigins) == 0 {
		cfg.AllowAllOrigins = true
		cfg.AllowOrigins = nil
	}
	return cfg
}

func (pool *ControllerPool) Register() {
	for _, c := range pool.pool {
		c.RegisterRoutes(pool.rg)
	}
}

func (pool *ControllerPool) Add(c Controller) {
	pool.pool = append(pool.pool, c)
}

func (pool *ControllerPool) Handler() http.Handler {
	return pool.engine
}

// Run serves on addr until ctx is done, then drains in-flight requests.
func (pool *ControllerPool) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           pool.engine,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		pool.logger.Info("http server started", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	pool.logger.Info("http server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
