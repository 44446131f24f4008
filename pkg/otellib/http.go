package otellib

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const httpSpanPrefix = "http::"

// HTTPMiddleware traces requests with otelhttp and puts the logger into the request context.
// Spans are renamed to the matched chi route pattern once routing is done.
func HTTPMiddleware(tp trace.TracerProvider, logger *zap.Logger) func(next http.Handler) http.Handler {
	traced := func(h http.Handler) http.Handler {
		return otelhttp.NewHandler(h, "http",
			otelhttp.WithTracerProvider(tp),
			otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
				return httpSpanPrefix + r.Method
			}),
		)
	}

	return func(next http.Handler) http.Handler {
		return traced(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			l := logger
			if reqID := middleware.GetReqID(ctx); reqID != "" {
				l = l.With(zap.String(requestIDField, reqID))
			}
			next.ServeHTTP(w, r.WithContext(ToContext(ctx, l)))

			if pattern := routePattern(r); pattern != "" {
				trace.SpanFromContext(ctx).SetName(httpSpanPrefix + r.Method + " " + pattern)
			}
		}))
	}
}

func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return ""
	}
	return rctx.RoutePattern()
}
