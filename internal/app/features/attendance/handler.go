// internal/app/features/attendance/handler.go
package attendance

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	userstore "github.com/Artemka1806/LyBotAPI/internal/app/store/users"
	"github.com/Artemka1806/LyBotAPI/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/query"
	"go.uber.org/zap"
)

// Handler serves the attendance report.
type Handler struct {
	Users *userstore.Store
	Log   *zap.Logger
}

func NewHandler(users *userstore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Users: users,
		Log:   logger,
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /attendance?timestamp=…                                                  |
| One store query plus an in-memory transform; no side effects.                |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	since := 0.0 // unbounded: include every reported status
	if raw := query.Get(r, "timestamp"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			http.Error(w, "timestamp must be a number", http.StatusBadRequest)
			return
		}
		since = parsed
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	users, err := h.Users.ListStatusesSince(ctx, since)
	if err != nil {
		h.Log.Error("attendance query failed", zap.Error(err), zap.Float64("since", since))
		http.Error(w, "user store unavailable", http.StatusInternalServerError)
		return
	}

	report := BuildReport(users)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(report); err != nil {
		h.Log.Error("attendance encode failed", zap.Error(err))
	}
}
