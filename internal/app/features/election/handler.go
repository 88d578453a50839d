// internal/app/features/election/handler.go
package election

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/Artemka1806/LyBotAPI/internal/app/system/sanitize"
	"github.com/Artemka1806/LyBotAPI/internal/app/system/telegram"
	"github.com/Artemka1806/LyBotAPI/internal/app/system/timeouts"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler relays the election question form into the bot chat.
type Handler struct {
	Bot *telegram.Client
	Log *zap.Logger

	// RedirectURL is the fixed page every submission ends up on, whether or
	// not the relay delivered.
	RedirectURL string
}

func NewHandler(bot *telegram.Client, redirectURL string, logger *zap.Logger) *Handler {
	return &Handler{
		Bot:         bot,
		Log:         logger,
		RedirectURL: redirectURL,
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /election (form-encoded name, email, question)                          |
| Fire-and-forget: one delivery attempt, then an unconditional 303.            |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form body", http.StatusBadRequest)
		return
	}

	name := strings.TrimSpace(r.PostFormValue("name"))
	email := strings.TrimSpace(r.PostFormValue("email"))
	question := strings.TrimSpace(r.PostFormValue("question"))
	if name == "" || email == "" || question == "" {
		http.Error(w, "name, email and question are required", http.StatusBadRequest)
		return
	}

	text := formatMessage(name, email, sanitize.Message(question))

	// Delivery id ties the submit log line to the failure line when the Bot
	// API call goes wrong; nothing else carries it.
	deliveryID := uuid.NewString()

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Bot.SendMessage(ctx, text); err != nil {
		h.Log.Warn("election relay delivery failed",
			zap.String("delivery_id", deliveryID),
			zap.Error(err))
	} else {
		h.Log.Info("election question relayed",
			zap.String("delivery_id", deliveryID))
	}

	http.Redirect(w, r, h.RedirectURL, http.StatusSeeOther)
}

// formatMessage builds the fixed-format relay text. The question arrives
// already sanitized.
func formatMessage(name, email, question string) string {
	return fmt.Sprintf("Нове запитання з форми виборів\nІм'я: %s\nEmail: %s\nЗапитання: %s", name, email, question)
}
