package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func recordSpans(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr)))
	t.Cleanup(func() { otel.SetTracerProvider(prev) })
	return sr
}

func tracedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestTracing())
	r.GET("/api/manifestacoes/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/api/manifestacoes", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.PATCH("/api/manifestacoes/:id/status", func(c *gin.Context) {
		_ = c.Error(assert.AnError)
		c.Status(http.StatusInternalServerError)
	})
	return r
}

func attrs(s sdktrace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	out := map[attribute.Key]attribute.Value{}
	for _, kv := range s.Attributes() {
		out[kv.Key] = kv.Value
	}
	return out
}

func TestRequestTracing(t *testing.T) {
	sr := recordSpans(t)
	r := tracedRouter()

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/manifestacoes/2024-000001", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/manifestacoes?status=ABERTA&tipo=ELOGIO", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPatch, "/api/manifestacoes/abc-123/status", nil))

	spans := sr.Ended()
	require.Len(t, spans, 3)

	byProtocolo := spans[0]
	assert.Equal(t, "GET /api/manifestacoes/:id", byProtocolo.Name())
	assert.Equal(t, trace.SpanKindServer, byProtocolo.SpanKind())
	a := attrs(byProtocolo)
	assert.Equal(t, "2024000001", a["ouvidoria.protocolo"].AsString())
	assert.Equal(t, int64(http.StatusOK), a["http.status_code"].AsInt64())
	assert.Equal(t, codes.Ok, byProtocolo.Status().Code)

	listagem := attrs(spans[1])
	assert.Equal(t, "ABERTA", listagem["ouvidoria.filtro.status"].AsString())
	assert.Equal(t, "ELOGIO", listagem["ouvidoria.filtro.tipo"].AsString())
	_, hasProtocolo := listagem["ouvidoria.protocolo"]
	assert.False(t, hasProtocolo)

	status := spans[2]
	assert.Equal(t, "PATCH /api/manifestacoes/:id/status", status.Name())
	a = attrs(status)
	assert.Equal(t, "abc-123", a["ouvidoria.manifestacao_id"].AsString())
	assert.Equal(t, codes.Error, status.Status().Code)
	assert.Contains(t, a["http.error_message"].AsString(), assert.AnError.Error())
}

func TestRequestTracing_ContinuesIncomingTrace(t *testing.T) {
	sr := recordSpans(t)
	prev := otel.GetTextMapPropagator()
	otel.SetTextMapPropagator(propagation.TraceContext{})
	t.Cleanup(func() { otel.SetTextMapPropagator(prev) })

	req := httptest.NewRequest(http.MethodGet, "/nao-existe", nil)
	req.Header.Set("traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")
	tracedRouter().ServeHTTP(httptest.NewRecorder(), req)

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "http.request", spans[0].Name())
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", spans[0].SpanContext().TraceID().String())
	assert.Equal(t, "00f067aa0ba902b7", spans[0].Parent().SpanID().String())
}
