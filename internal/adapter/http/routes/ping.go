package routes

import (
	"ouvidoria/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addPingRoutes(rg *gin.RouterGroup, h *handlers.HealthHandler) {
	rg.GET("/ping", h.Ping)
}

func addHealthRoutes(router *gin.Engine, h *handlers.HealthHandler) {
	router.GET("/health", h.Health)
	router.GET("/liveness", h.Liveness)
	router.GET("/readiness", h.Readiness)
}
