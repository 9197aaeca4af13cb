package routes

import (
	"ouvidoria/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathManifestacoes = "/manifestacoes"

// addManifestacaoRoutes registers the citizen and staff endpoints. GET /:id takes a
// protocol; it shares the wildcard name with the status route.
func addManifestacaoRoutes(rg *gin.RouterGroup, h *handlers.ManifestacaoHandler, submitLimit gin.HandlerFunc) {
	manifestacoes := rg.Group(PathManifestacoes)
	{
		// Cidadão
		manifestacoes.POST("", submitLimit, h.Criar)
		manifestacoes.GET("/protocolo/:protocolo", h.BuscarPorProtocolo)
		manifestacoes.GET("/:id", h.BuscarPorProtocolo)

		// Atendente
		manifestacoes.GET("", h.Listar)
		manifestacoes.GET("/indicadores", h.Indicadores)
		manifestacoes.PATCH("/:id/status", h.AtualizarStatus)
		manifestacoes.PUT("/:id/status", h.AtualizarStatus)
	}
}
