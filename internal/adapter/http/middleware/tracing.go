package middleware

import (
	"net/http"
	"time"

	"ouvidoria/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "ouvidoria/http"

// RequestTracing opens one span per request named after the matched route, continuing
// any incoming trace context. The manifestação a request targets is recorded on the
// span: GET /:id carries a protocol, the status routes carry the record id.
func RequestTracing() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		route := c.FullPath()
		name := "http.request"
		if route != "" {
			name = c.Request.Method + " " + route
		}

		parent := otel.GetTextMapPropagator().Extract(c.Request.Context(), propagation.HeaderCarrier(c.Request.Header))
		ctx, span := otel.Tracer(tracerName).Start(parent, name, trace.WithSpanKind(trace.SpanKindServer))
		defer span.End()

		span.SetAttributes(
			attribute.String("http.method", c.Request.Method),
			attribute.String("http.route", route),
			attribute.String("http.user_agent", c.Request.UserAgent()),
			attribute.String("http.client_ip", c.ClientIP()),
		)
		span.SetAttributes(manifestacaoAttributes(c)...)

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		status := c.Writer.Status()
		span.SetAttributes(
			attribute.Int("http.status_code", status),
			attribute.Int64("http.duration_ms", time.Since(start).Milliseconds()),
		)
		switch {
		case status >= http.StatusInternalServerError:
			span.SetStatus(codes.Error, "HTTP request failed")
			if len(c.Errors) > 0 {
				span.SetAttributes(attribute.String("http.error_message", c.Errors.String()))
			}
		case status == http.StatusNotFound && route != "":
			span.SetAttributes(attribute.Bool("ouvidoria.not_found", true))
		default:
			span.SetStatus(codes.Ok, "")
		}
	}
}

func manifestacaoAttributes(c *gin.Context) []attribute.KeyValue {
	var attrs []attribute.KeyValue
	if p := c.Param("protocolo"); p != "" {
		attrs = append(attrs, attribute.String("ouvidoria.protocolo", entities.NormalizeProtocolo(p)))
	}
	if id := c.Param("id"); id != "" {
		if c.Request.Method == http.MethodGet {
			attrs = append(attrs, attribute.String("ouvidoria.protocolo", entities.NormalizeProtocolo(id)))
		} else {
			attrs = append(attrs, attribute.String("ouvidoria.manifestacao_id", id))
		}
	}
	for _, key := range []string{"status", "tipo"} {
		if v := c.Query(key); v != "" {
			attrs = append(attrs, attribute.String("ouvidoria.filtro."+key, v))
		}
	}
	return attrs
}
