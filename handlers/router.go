package handlers

import (
	"slices"

	"classical-ciphers-backend/config"

	"github.com/charmbracelet/log"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the HTTP host: CORS, request logging, recovery and the
// /api/v1 routes.
func NewRouter(cfg *config.Config, logger *log.Logger) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)
	router := gin.New()
	router.Use(RequestLogger(logger), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if origins := cfg.Server.AllowedOrigins; len(origins) == 0 || slices.Contains(origins, "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = origins
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "X-Requested-With", RequestIDHeader}
	corsConfig.ExposeHeaders = []string{RequestIDHeader}
	router.Use(cors.New(corsConfig))

	cipherHandler := NewCipherHandler(cfg.Server.MaxTextLength, logger)
	cipherHandler.Register(router.Group("/api/v1"))

	return router
}
