package greeting

import (
	"log/slog"
	"net/http"

	"github.com/sbxservice/hello-service/pkg/serializer"
	"github.com/sbxservice/hello-service/pkg/server"
	"github.com/sbxservice/hello-service/pkg/telemetry"
)

// HandleHello serves GET /api/hello?name=<optional>. Building the response
// cannot fail, so every GET is answered with 200.
func (b *Builder) HandleHello(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		server.WriteMethodNotAllowed(w, r, http.MethodGet)
		return
	}

	name := r.URL.Query().Get("name")
	resp := b.BuildResponse(r.Context(), name, FromRequest(r))

	if err := r.Context().Err(); err != nil {
		slog.Debug("client went away before response",
			"requestID", server.RequestIDFromContext(r.Context()),
			"error", err)
	}

	kind := greetingKind(name)
	greetingsTotal.WithLabelValues(kind).Inc()

	slog.Debug("greeting served",
		"requestID", server.RequestIDFromContext(r.Context()),
		"apiVersion", server.APIVersionFromContext(r.Context()),
		"traceID", telemetry.TraceID(r),
		"kind", kind,
	)

	serializer.RespondJSON(w, http.StatusOK, resp)
}
