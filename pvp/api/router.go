// Package api exposes the kits and kit preferences of the server over a read-only HTTP API.
package api

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jwegrzyn/pvp/pvp/kit"
)

// Server serves the kit API on an address. Every request must carry the configured key in the
// authorization header.
type Server struct {
	log  *slog.Logger
	http *http.Server
}

// New creates a new API server for the registry passed. The server does not listen until
// ListenAndServe is called.
func New(log *slog.Logger, addr, key string, kits *kit.Registry) *Server {
	return &Server{
		log: log,
		http: &http.Server{
			Addr:              addr,
			Handler:           NewRouter(log, key, kits),
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// ListenAndServe serves the API until Shutdown is called.
func (s *Server) ListenAndServe() {
	s.log.Info("Kit API listening", "addr", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.log.Error("kit API stopped", "error", err)
	}
}

// Shutdown stops the server, waiting for active requests until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// NewRouter sets up the gin router of the API.
func NewRouter(log *slog.Logger, key string, kits *kit.Registry) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(func(c *gin.Context) {
		if subtle.ConstantTimeCompare([]byte(c.GetHeader("authorization")), []byte(key)) != 1 {
			log.Debug("rejected kit API request", "path", c.Request.URL.Path, "ip", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	})

	router.GET("/kits", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"kits": kits.Names()})
	})
	router.GET("/kits/:name", func(c *gin.Context) {
		k, ok := kits.Kit(c.Param("name"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"reason": "no kit found"})
			return
		}
		c.JSON(http.StatusOK, kit.Encode(k))
	})
	router.GET("/preferences/:player", func(c *gin.Context) {
		player := c.Param("player")
		name, ok := kits.Preference(player)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"reason": "no preference found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"player": player,
			"kit":    name,
		})
	})
	return router
}
