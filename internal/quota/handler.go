package quota

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/threadgenius/threadgenius/internal/api"
	"github.com/threadgenius/threadgenius/internal/auth"
	"github.com/threadgenius/threadgenius/internal/users"
)

// Handler exposes the authenticated user's quota status.
type Handler struct {
	tracker *Tracker
}

func NewHandler(tracker *Tracker) *Handler {
	return &Handler{tracker: tracker}
}

func (h *Handler) GetUsage(w http.ResponseWriter, r *http.Request) {
	claims := auth.GetUserClaims(r.Context())
	if claims == nil {
		api.HandleError(w, api.ErrUnauthorized)
		return
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		api.HandleError(w, api.ErrUnauthorized)
		return
	}

	status, err := h.tracker.CheckLimit(r.Context(), userID, users.Plan(claims.Plan))
	if err != nil {
		slog.Error("reading quota status", "error", err)
		api.HandleError(w, api.ErrQuotaUnavailable)
		return
	}

	api.JSON(w, http.StatusOK, status)
}
