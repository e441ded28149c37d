package server

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/katalvlaran/terrapath/config"
	"github.com/katalvlaran/terrapath/planner"
	"github.com/katalvlaran/terrapath/terrain"
)

// Server is the HTTP front end of the planner.
type Server struct {
	cfg        *config.Config
	log        *slog.Logger
	engine     *gin.Engine
	costs      terrain.CostTable
	impassable terrain.ClassSet
	opts       planner.Options
}

// New validates cfg and builds the gin engine with all routes and middleware.
func New(cfg *config.Config, logger *slog.Logger) (*Server, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	costs, err := cfg.CostTable()
	if err != nil {
		return nil, err
	}
	impassable, err := cfg.ImpassableSet()
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:        cfg,
		log:        logger,
		costs:      costs,
		impassable: impassable,
		opts:       cfg.PlannerOptions(),
	}
	s.engine = s.routes()

	return s, nil
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler { return s.engine }

// routes assembles the engine.
func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestID(), accessLog(s.log))
	r.SetHTMLTemplate(template.Must(template.New("index").Parse(indexHTML)))

	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	site := r.Group("/")
	site.Use(brotliResponse())
	site.GET("", s.handleIndex)

	api := r.Group("/api/v1")
	if s.cfg.Server.RateLimit > 0 {
		api.Use(rateLimit(rate.NewLimiter(rate.Limit(s.cfg.Server.RateLimit), s.cfg.Server.RateBurst)))
	}
	api.Use(brotliRequest(), brotliResponse())
	api.GET("/terrain", s.handleTerrain)
	api.POST("/costmap", s.handleCostmap)
	api.POST("/surface", s.handleSurface)
	api.POST("/routes", s.handleRoute)
	api.POST("/routes/batch", s.handleBatch)

	return r
}

// Run serves on cfg.Server.Addr until ctx is cancelled, then shuts down
// gracefully within cfg.Server.ShutdownTimeout.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Server.Addr,
		Handler:      s.engine,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server: listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info("shutting down http server", "timeout", s.cfg.Server.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}

	return nil
}

// planOutcome is what metrics need to know about a planning attempt.
type planOutcome struct {
	result   string
	elapsed  time.Duration
	expanded int
}
