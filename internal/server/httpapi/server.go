// Package httpapi serves the small HTTP surface next to the gRPC server:
// a health check and the deep-link hand-off that sends a topic selection
// to the Telegram bot.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/studyguide/internal/deeplink"
	"github.com/dmitrijs2005/studyguide/internal/logging"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	address     string
	botUserName string
	engine      *gin.Engine
	logger      logging.Logger
}

func NewServer(address, botUserName string, l logging.Logger) *Server {
	s := &Server{
		address:     address,
		botUserName: botUserName,
		engine:      gin.New(),
		logger:      l.With("module", "http_server"),
	}

	s.engine.Use(gin.Recovery(), s.requestLogger())
	s.engine.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodGet},
		AllowHeaders:    []string{"Origin", "Accept"},
	}))

	s.engine.GET("/health", s.health)
	s.engine.GET("/handoff", s.handoff)

	return s
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Debug(c.Request.Context(), "http",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"elapsed", time.Since(start))
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

// handoff redirects /handoff?subject=12&topics=1,3 to the bot's deep link.
func (s *Server) handoff(c *gin.Context) {
	if s.botUserName == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "bot not configured"})
		return
	}

	subjectID, err := strconv.ParseInt(c.Query("subject"), 10, 64)
	if err != nil || subjectID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid subject"})
		return
	}

	var topics []int
	for _, part := range strings.Split(c.Query("topics"), ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid topics"})
			return
		}
		topics = append(topics, n)
	}

	payload, err := deeplink.Encode(subjectID, topics)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.Redirect(http.StatusFound, deeplink.Link(s.botUserName, payload))
}

// Run serves until ctx is done, then shuts down with a short grace period.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
