// Package server exposes the crawl over HTTP for the front end and the
// external scheduler that keeps the cache warm.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"stormwatch/internal/briefing"
	"stormwatch/internal/cache"
	"stormwatch/internal/config"
	"stormwatch/internal/crawl"
	"stormwatch/internal/news"
	"stormwatch/internal/summary"
)

const shutdownTimeout = 30 * time.Second

type Server struct {
	cfg        config.Config
	crawler    *crawl.Crawler
	cache      *cache.Cache
	summarizer *summary.Generator
	log        *zap.SugaredLogger
}

// New wires the HTTP layer. cache may be nil (no redis configured).
func New(cfg config.Config, crawler *crawl.Crawler, c *cache.Cache, log *zap.SugaredLogger) *Server {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Server{
		cfg:        cfg,
		crawler:    crawler,
		cache:      c,
		summarizer: summary.New(cfg.AI, log),
		log:        log,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), s.corsMiddleware())

	r.GET("/healthz", s.handleHealth)
	r.GET("/crawl", s.handleCrawl)
	r.POST("/summary", s.handleSummary)
	r.GET("/pdf", s.handlePDF)
	return r
}

// Run serves until SIGINT/SIGTERM, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.log.Infow("http server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	case sig := <-sigChan:
		s.log.Infow("shutdown signal received", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.log.Info("server stopped")
	return nil
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleCrawl serves the latest result, from cache when present. A total
// upstream failure still answers 200 with an empty article list so the front
// end can render its "no updates" state.
func (s *Server) handleCrawl(c *gin.Context) {
	c.Header("Cache-Control", fmt.Sprintf("public, s-maxage=%d", s.cfg.Server.CacheMaxAgeSeconds))

	if res, ok := s.cache.Get(c.Request.Context()); ok {
		c.JSON(http.StatusOK, res)
		return
	}
	res := s.crawler.Run(c.Request.Context())
	s.cache.Set(c.Request.Context(), res)
	c.JSON(http.StatusOK, res)
}

type summaryRequest struct {
	Articles []news.Article `json:"articles"`
}

// handleSummary generates the executive briefing for the posted articles.
// With no articles in the body it summarizes the current crawl instead.
func (s *Server) handleSummary(c *gin.Context) {
	var req summaryRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	articles := req.Articles
	if len(articles) == 0 {
		articles = s.latest(c.Request.Context()).Articles
	}
	c.JSON(http.StatusOK, s.summarizer.Generate(c.Request.Context(), articles))
}

// handlePDF streams the categorized briefing PDF for the latest crawl.
func (s *Server) handlePDF(c *gin.Context) {
	res := s.latest(c.Request.Context())
	pdf, err := briefing.Render(res, s.cfg.Categories, s.cfg.Output.DRNumber)
	if err != nil {
		s.log.Errorw("pdf render failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "pdf generation failed"})
		return
	}
	name := fmt.Sprintf("sc-winter-storm-news-%s.pdf", res.Metadata.CrawledAt.Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// latest returns the cached result when available, crawling otherwise.
func (s *Server) latest(ctx context.Context) crawl.Result {
	if res, ok := s.cache.Get(ctx); ok {
		return *res
	}
	res := s.crawler.Run(ctx)
	s.cache.Set(ctx, res)
	return res
}

func (s *Server) corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
