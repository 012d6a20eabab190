package generation

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/threadgenius/threadgenius/internal/api"
	"github.com/threadgenius/threadgenius/internal/auth"
	"github.com/threadgenius/threadgenius/internal/llm"
	"github.com/threadgenius/threadgenius/internal/presets"
	"github.com/threadgenius/threadgenius/internal/quota"
	"github.com/threadgenius/threadgenius/internal/users"
)

type Handler struct {
	svc      *Service
	validate *validator.Validate
}

func NewHandler(svc *Service) *Handler {
	return &Handler{
		svc:      svc,
		validate: validator.New(),
	}
}

func (h *Handler) GenerateTweet(w http.ResponseWriter, r *http.Request) {
	userID, plan, ok := caller(r)
	if !ok {
		api.HandleError(w, api.ErrUnauthorized)
		return
	}

	var req TweetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.HandleError(w, api.ErrBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		api.HandleError(w, api.NewValidationError(err.Error()))
		return
	}

	result, err := h.svc.GenerateTweet(r.Context(), userID, plan, &req)
	if err != nil {
		handleGenerationError(w, err)
		return
	}
	api.JSON(w, http.StatusOK, result)
}

func (h *Handler) GenerateThread(w http.ResponseWriter, r *http.Request) {
	userID, plan, ok := caller(r)
	if !ok {
		api.HandleError(w, api.ErrUnauthorized)
		return
	}

	var req ThreadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.HandleError(w, api.ErrBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		api.HandleError(w, api.NewValidationError(err.Error()))
		return
	}

	result, err := h.svc.GenerateThread(r.Context(), userID, plan, &req)
	if err != nil {
		handleGenerationError(w, err)
		return
	}
	api.JSON(w, http.StatusOK, result)
}

func (h *Handler) GenerateBio(w http.ResponseWriter, r *http.Request) {
	userID, plan, ok := caller(r)
	if !ok {
		api.HandleError(w, api.ErrUnauthorized)
		return
	}

	var req BioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.HandleError(w, api.ErrBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		api.HandleError(w, api.NewValidationError(err.Error()))
		return
	}

	result, err := h.svc.GenerateBio(r.Context(), userID, plan, &req)
	if err != nil {
		handleGenerationError(w, err)
		return
	}
	api.JSON(w, http.StatusOK, result)
}

func (h *Handler) GenerateIdeas(w http.ResponseWriter, r *http.Request) {
	userID, plan, ok := caller(r)
	if !ok {
		api.HandleError(w, api.ErrUnauthorized)
		return
	}

	var req IdeasRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.HandleError(w, api.ErrBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		api.HandleError(w, api.NewValidationError(err.Error()))
		return
	}

	result, err := h.svc.GenerateIdeas(r.Context(), userID, plan, &req)
	if err != nil {
		handleGenerationError(w, err)
		return
	}
	api.JSON(w, http.StatusOK, result)
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := caller(r)
	if !ok {
		api.HandleError(w, api.ErrUnauthorized)
		return
	}

	page, pageSize := pagination(r)
	items, total, err := h.svc.History(r.Context(), userID, pageSize, (page-1)*pageSize)
	if err != nil {
		slog.Error("listing history", "error", err)
		api.HandleError(w, api.ErrInternalServer)
		return
	}
	if items == nil {
		items = []*Content{}
	}
	api.JSONPaginated(w, http.StatusOK, items, total, page, pageSize)
}

func (h *Handler) ListIdeas(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := caller(r)
	if !ok {
		api.HandleError(w, api.ErrUnauthorized)
		return
	}

	page, pageSize := pagination(r)
	items, total, err := h.svc.Ideas(r.Context(), userID, pageSize, (page-1)*pageSize)
	if err != nil {
		slog.Error("listing ideas", "error", err)
		api.HandleError(w, api.ErrInternalServer)
		return
	}
	if items == nil {
		items = []Idea{}
	}
	api.JSONPaginated(w, http.StatusOK, items, total, page, pageSize)
}

func (h *Handler) UpdateIdea(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := caller(r)
	if !ok {
		api.HandleError(w, api.ErrUnauthorized)
		return
	}

	ideaID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		api.HandleError(w, api.NewBadRequestError("invalid idea id"))
		return
	}

	var req UpdateIdeaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.HandleError(w, api.ErrBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		api.HandleError(w, api.NewValidationError(err.Error()))
		return
	}

	idea, err := h.svc.UpdateIdeaStatus(r.Context(), userID, ideaID, req.Status)
	if err != nil {
		if errors.Is(err, ErrIdeaNotFound) {
			api.HandleError(w, api.ErrNotFound)
			return
		}
		slog.Error("updating idea", "error", err)
		api.HandleError(w, api.ErrInternalServer)
		return
	}
	api.JSON(w, http.StatusOK, idea)
}

// handleGenerationError maps service errors onto the API taxonomy. Internal
// detail never reaches the client.
func handleGenerationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, presets.ErrInvalidTone):
		api.HandleError(w, api.ErrInvalidTone)
	case errors.Is(err, presets.ErrInvalidNiche):
		api.HandleError(w, api.ErrInvalidNiche)
	case errors.Is(err, ErrProfileIncomplete):
		api.HandleError(w, api.ErrProfileIncomplete)
	case errors.Is(err, ErrLimitExceeded):
		api.HandleError(w, api.ErrLimitExceeded)
	case errors.Is(err, quota.ErrQuotaUnavailable):
		api.HandleError(w, api.ErrQuotaUnavailable)
	case errors.Is(err, llm.ErrTimeout):
		api.HandleError(w, api.ErrGenerationTimeout)
	default:
		slog.Error("generation failed", "error", err)
		api.HandleError(w, api.ErrGenerationFailed)
	}
}

func caller(r *http.Request) (uuid.UUID, users.Plan, bool) {
	claims := auth.GetUserClaims(r.Context())
	if claims == nil {
		return uuid.Nil, "", false
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, "", false
	}
	plan := users.Plan(claims.Plan)
	if !plan.Valid() {
		plan = users.PlanFree
	}
	return id, plan, true
}

func pagination(r *http.Request) (page, pageSize int) {
	page = 1
	pageSize = 20
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("page_size")); err == nil && v > 0 && v <= 100 {
		pageSize = v
	}
	return page, pageSize
}
