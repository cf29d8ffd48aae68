// Package http exposes the bot's small HTTP surface: a health probe and
// the Telegram webhook endpoint used instead of long polling.
package http

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"deskbot/internal/infrastructure/telegram"
	"deskbot/internal/interfaces/http/middleware"
	"deskbot/internal/shared/config"
	"deskbot/internal/shared/logger"
)

// Server wraps the gin engine and the underlying http.Server.
type Server struct {
	engine        *gin.Engine
	srv           *http.Server
	handler       telegram.UpdateHandler
	webhookSecret string
	logger        logger.Interface
}

// NewServer builds the HTTP server. The update handler receives every
// webhook update that passes the secret check.
func NewServer(
	serverCfg *config.ServerConfig,
	telegramCfg *config.TelegramConfig,
	handler telegram.UpdateHandler,
	log logger.Interface,
) *Server {
	if serverCfg.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.Recovery())

	s := &Server{
		engine:        engine,
		handler:       handler,
		webhookSecret: telegramCfg.WebhookSecret,
		logger:        log,
	}

	engine.GET("/healthz", s.handleHealth)
	engine.POST("/webhooks/telegram", s.handleWebhook)

	s.srv = &http.Server{
		Addr:              serverCfg.GetAddr(),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

// Start blocks serving HTTP until Shutdown is called or the listener fails.
func (s *Server) Start() error {
	s.logger.Infow("http server listening", "addr", s.srv.Addr)
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleWebhook validates the Telegram secret token and feeds the update to
// the conversation pipeline. It always answers 200 for accepted updates so
// Telegram does not redeliver an update our handler chose to reject.
func (s *Server) handleWebhook(c *gin.Context) {
	if s.webhookSecret == "" {
		s.logger.Errorw("webhook secret not configured, rejecting request")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "webhook not configured"})
		return
	}

	secretHeader := c.GetHeader("X-Telegram-Bot-Api-Secret-Token")
	if subtle.ConstantTimeCompare([]byte(secretHeader), []byte(s.webhookSecret)) != 1 {
		s.logger.Warnw("webhook secret verification failed",
			"received_secret_empty", secretHeader == "",
		)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid webhook secret"})
		return
	}

	var update telegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		s.logger.Errorw("failed to parse webhook update", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := s.handler.HandleUpdate(c.Request.Context(), &update); err != nil {
		s.logger.Errorw("webhook update processing failed",
			"update_id", update.UpdateID,
			"error", err,
		)
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
