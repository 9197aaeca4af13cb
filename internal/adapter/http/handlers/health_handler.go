package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// StorageCheck reports whether the storage backend is reachable.
type StorageCheck func(ctx context.Context) error

// HealthHandler serves the health endpoints.
type HealthHandler struct {
	checkStorage StorageCheck
	now          func() time.Time
}

// NewHealthHandler builds the handler. A nil check always succeeds (in-memory storage).
func NewHealthHandler(check StorageCheck) *HealthHandler {
	if check == nil {
		check = func(context.Context) error { return nil }
	}
	return &HealthHandler{checkStorage: check, now: time.Now}
}

type HealthResponse struct {
	Status    string            `json:"status"`
	Checks    map[string]string `json:"checks,omitempty"`
	Error     string            `json:"error,omitempty"`
	Timestamp int64             `json:"timestamp"`
}

// Ping godoc
// @Summary Ping
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/v1/ping [get]
func (h *HealthHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

// Liveness godoc
// @Summary Liveness check
// @Description Confirma que o processo está respondendo, sem checar dependências
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /liveness [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "alive", Timestamp: h.now().Unix()})
}

// Readiness godoc
// @Summary Readiness check
// @Description Verifica se o armazenamento está acessível
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readiness [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	h.respond(c, 3*time.Second, "ready", "not_ready")
}

// Health godoc
// @Summary Health check
// @Description Verificação completa para monitoramento externo
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	h.respond(c, 5*time.Second, "healthy", "unhealthy")
}

func (h *HealthHandler) respond(c *gin.Context, timeout time.Duration, okStatus, failStatus string) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
	defer cancel()

	res := HealthResponse{
		Status:    okStatus,
		Checks:    map[string]string{"storage": "ok"},
		Timestamp: h.now().Unix(),
	}
	code := http.StatusOK
	if err := h.checkStorage(ctx); err != nil {
		res.Status = failStatus
		res.Checks["storage"] = "failed"
		res.Error = err.Error()
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, res)
}
