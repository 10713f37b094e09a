package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"slices"
	"strconv"

	"cinema-screening/internal/dto/request"
	"cinema-screening/internal/dto/response"
	"cinema-screening/internal/usecase"
	"cinema-screening/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ScreeningHandler struct {
	service usecase.ScreeningService
	log     *zap.Logger
}

func NewScreeningHandler(service usecase.ScreeningService, log *zap.Logger) *ScreeningHandler {
	return &ScreeningHandler{
		service: service,
		log:     log.With(zap.String("handler", "screening")),
	}
}

// ListScreenings handles GET /api/cinema?title=
func (h *ScreeningHandler) ListScreenings(w http.ResponseWriter, r *http.Request) {
	// Filter by title (optional)
	var title *string
	query := r.URL.Query()
	if query.Has("title") {
		t := query.Get("title")
		title = &t
	}

	// Call service
	screenings := slices.Collect(h.service.ListScreenings(r.Context(), title))
	// Always render a JSON array, never null
	if screenings == nil {
		screenings = []response.ScreeningResponse{}
	}

	utils.ResponseSuccess(w, "Screenings retrieved successfully", screenings)
}

// GetScreening handles GET /api/cinema/{id}
func (h *ScreeningHandler) GetScreening(w http.ResponseWriter, r *http.Request) {
	id, ok := h.screeningID(w, r)
	if !ok {
		return
	}

	screening, err := h.service.GetScreening(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err, "get screening")
		return
	}

	utils.ResponseSuccess(w, "Screening retrieved successfully", screening)
}

// CreateScreening handles POST /api/cinema
func (h *ScreeningHandler) CreateScreening(w http.ResponseWriter, r *http.Request) {
	var req request.CreateScreeningRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if violations := utils.ValidateStruct(req); len(violations) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", violations)
		return
	}

	// Call service
	screening, err := h.service.CreateScreening(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create screening")
		return
	}

	utils.ResponseCreated(w, "Screening created successfully", screening)
}

// Reserve handles POST /api/cinema/{id}/reserve
func (h *ScreeningHandler) Reserve(w http.ResponseWriter, r *http.Request) {
	id, ok := h.screeningID(w, r)
	if !ok {
		return
	}

	// Parse request body
	var req request.ReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Call service
	screening, err := h.service.Reserve(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, err, "reserve screening")
		return
	}

	utils.ResponseSuccess(w, "Seats reserved successfully", screening)
}

// Reschedule handles PUT /api/cinema/{id}
func (h *ScreeningHandler) Reschedule(w http.ResponseWriter, r *http.Request) {
	id, ok := h.screeningID(w, r)
	if !ok {
		return
	}

	// Parse request body
	var req request.RescheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Call service
	screening, err := h.service.Reschedule(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, err, "reschedule screening")
		return
	}

	utils.ResponseSuccess(w, "Screening rescheduled successfully", screening)
}

// DeleteAll handles DELETE /api/cinema
func (h *ScreeningHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	h.service.DeleteAll(r.Context())
	utils.ResponseNoContent(w)
}

// screeningID parses the {id} path param, writing a 400 when it is not a number
func (h *ScreeningHandler) screeningID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		h.log.Warn("Invalid screening ID", zap.String("screening_id", raw))
		utils.ResponseBadRequest(w, "Screening ID must be a number", nil)
		return 0, false
	}
	return id, true
}

// handleServiceError maps service errors to status codes
func (h *ScreeningHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	var validationErr *usecase.ValidationError

	switch {
	case errors.Is(err, usecase.ErrScreeningNotFound):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrInvalidReservation):
		h.log.Warn(operation+" failed - bad reservation",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.As(err, &validationErr):
		h.log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, "Validation failed", validationErr.Violations)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
