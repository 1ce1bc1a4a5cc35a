package handlers

import (
	"net/http"
	"time"

	"github.com/dom/ep-app-api/internal/api/respond"
	"github.com/dom/ep-app-api/internal/domain"
	"github.com/dom/ep-app-api/internal/service"
	"go.uber.org/zap"
)

type SeizureHandler struct {
	seizureService *service.SeizureService
	logger         *zap.Logger
}

func NewSeizureHandler(seizureService *service.SeizureService, logger *zap.Logger) *SeizureHandler {
	return &SeizureHandler{seizureService: seizureService, logger: logger}
}

type SeizureResponse struct {
	ID          string               `json:"id"`
	UserID      string               `json:"userId"`
	Date        time.Time            `json:"date"`
	Length      domain.SeizureLength `json:"length"`
	SeizureType string               `json:"seizureType"`
	Trigger     string               `json:"trigger"`
	Comment     string               `json:"comment"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}

func newSeizureResponse(s *domain.Seizure) SeizureResponse {
	return SeizureResponse{
		ID:          s.ID.String(),
		UserID:      s.UserID.String(),
		Date:        s.Date,
		Length:      s.Length.Data(),
		SeizureType: s.SeizureType,
		Trigger:     s.Trigger,
		Comment:     s.Comment,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func newSeizureResponses(seizures []*domain.Seizure) []SeizureResponse {
	resp := make([]SeizureResponse, 0, len(seizures))
	for _, s := range seizures {
		resp = append(resp, newSeizureResponse(s))
	}
	return resp
}

// List returns the caller's seizures, newest first
func (h *SeizureHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	seizures, err := h.seizureService.List(r.Context(), userID)
	if err != nil {
		writeError(w, h.logger, "seizure.List", err, "Could not list seizures")
		return
	}

	respond.JSON(w, http.StatusOK, newSeizureResponses(seizures))
}

func (h *SeizureHandler) Create(w http.ResponseWriter, r *http.Request) {
	const message = "Could not register seizure"

	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var req service.CreateSeizureInput
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, "seizure.Create", err, message)
		return
	}

	seizure, err := h.seizureService.Create(r.Context(), userID, req)
	if err != nil {
		writeError(w, h.logger, "seizure.Create", err, message)
		return
	}

	respond.JSON(w, http.StatusOK, newSeizureResponse(seizure))
}

func (h *SeizureHandler) Update(w http.ResponseWriter, r *http.Request) {
	const message = "Could not update seizure"

	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	id, err := recordID(r)
	if err != nil {
		writeError(w, h.logger, "seizure.Update", err, message)
		return
	}

	var req service.UpdateSeizureInput
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, "seizure.Update", err, message)
		return
	}

	seizure, err := h.seizureService.Update(r.Context(), userID, id, req)
	if err != nil {
		writeError(w, h.logger, "seizure.Update", err, message)
		return
	}

	respond.JSON(w, http.StatusOK, newSeizureResponse(seizure))
}

func (h *SeizureHandler) Delete(w http.ResponseWriter, r *http.Request) {
	const message = "Could not delete seizure"

	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	id, err := recordID(r)
	if err != nil {
		writeError(w, h.logger, "seizure.Delete", err, message)
		return
	}

	seizure, err := h.seizureService.Delete(r.Context(), userID, id)
	if err != nil {
		writeError(w, h.logger, "seizure.Delete", err, message)
		return
	}

	respond.JSON(w, http.StatusOK, newSeizureResponse(seizure))
}
