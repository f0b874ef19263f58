package telemetry

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// untracedPaths are probe and scrape endpoints excluded from tracing.
var untracedPaths = map[string]bool{
	"/health":  true,
	"/ready":   true,
	"/metrics": true,
}

// unmatchedRoute names spans for requests no route accepted.
const unmatchedRoute = "unmatched"

// HTTPMiddleware wraps handlers with OpenTelemetry HTTP instrumentation,
// extracting incoming trace context and starting a server span per request.
// Install it with chi's Router.Use so spans can be named after the matched
// route pattern once routing completes.
func HTTPMiddleware(service string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return otelhttp.NewHandler(
			nameByRoute(next),
			service,
			otelhttp.WithTracerProvider(otel.GetTracerProvider()),
			otelhttp.WithPropagators(otel.GetTextMapPropagator()),
			otelhttp.WithFilter(shouldTrace),
			otelhttp.WithSpanNameFormatter(spanName),
		)
	}
}

func shouldTrace(r *http.Request) bool {
	return !untracedPaths[r.URL.Path]
}

// spanName is the provisional name, "HTTP GET", used until routing is done.
func spanName(_ string, r *http.Request) string {
	return "HTTP " + r.Method
}

// nameByRoute renames the request span to "HTTP GET /api/hello" using the
// route pattern, keeping span names bounded for arbitrary request paths.
func nameByRoute(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r)
		trace.SpanFromContext(r.Context()).SetName(spanName("", r) + " " + routePattern(r))
	})
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return unmatchedRoute
}

// TraceID returns the trace ID of the request span, or "" when there is none.
func TraceID(r *http.Request) string {
	sc := trace.SpanContextFromContext(r.Context())
	if !sc.IsValid() {
		return ""
	}
	return sc.TraceID().String()
}
