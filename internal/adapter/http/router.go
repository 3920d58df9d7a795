// Package http exposes login, export and backup over HTTP with gin.
package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/simaogato/lifedash-backend/internal/auth"
	"github.com/simaogato/lifedash-backend/internal/domain"
	"github.com/simaogato/lifedash-backend/internal/usecase/snapshot"
)

// Authenticator issues and checks session tokens
type Authenticator interface {
	Login(password string) (string, time.Time, error)
	Verify(token string) error
}

// Exporter builds snapshots of every domain
type Exporter interface {
	Export(ctx context.Context) (*snapshot.Snapshot, error)
	Stats(ctx context.Context) (*snapshot.Stats, error)
	Backup(ctx context.Context, sink snapshot.Sink) (*snapshot.BackupResult, error)
}

// Handler serves the HTTP API. Auth and Sink are optional: without Auth every
// route is public, without Sink POST /api/backup answers 503.
type Handler struct {
	Exporter Exporter
	Auth     Authenticator
	Sink     snapshot.Sink
	Log      zerolog.Logger
}

// Router builds the gin engine with every route registered
func (h *Handler) Router() *gin.Engine {
	r := gin.New()
	r.Use(RequestLogger(h.Log), gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.POST("/login", h.Login)

	protected := api.Group("")
	if h.Auth != nil {
		protected.Use(AuthMiddleware(h.Auth))
	} else {
		h.Log.Warn().Msg("Authentication is disabled, export and backup routes are public")
	}
	{
		protected.GET("/export", h.Export)
		protected.GET("/backup/stats", h.Stats)
		protected.POST("/backup", h.Backup)
	}

	return r
}

// LoginInput is the body of POST /api/login
type LoginInput struct {
	Password string `json:"password" binding:"required"`
}

// Login exchanges the app password for a session token
func (h *Handler) Login(c *gin.Context) {
	if h.Auth == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "authentication is disabled"})
		return
	}

	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, expiresAt, err := h.Auth.Login(input.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidPassword) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid password"})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "expiresAt": expiresAt})
}

// Export downloads the full snapshot as a JSON attachment
func (h *Handler) Export(c *gin.Context) {
	snap, err := h.Exporter.Export(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", snapshot.FileName(snap.ExportedAt)))
	c.IndentedJSON(http.StatusOK, snap)
}

// Stats returns the record counts a backup would contain
func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.Exporter.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

// Backup uploads a snapshot to the configured sink
func (h *Handler) Backup(c *gin.Context) {
	if h.Sink == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "backup storage is not configured"})
		return
	}

	result, err := h.Exporter.Backup(c.Request.Context(), h.Sink)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

func respondError(c *gin.Context, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidInput):
		code = http.StatusBadRequest
	}
	_ = c.Error(err)
	c.JSON(code, gin.H{"error": err.Error()})
}
