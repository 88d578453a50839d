package home

import (
	"net/http"

	"go.uber.org/zap"
)

// Handler serves the root liveness probe.
type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{
		Log: logger,
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET / , HEAD / – liveness                                                    |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeRoot returns a fixed text payload. There is nothing to see at the
// root of this service; the body says as much.
func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if r.Method != http.MethodHead {
		_, _ = w.Write([]byte("I don't think you're supposed to be here."))
	}
}
