package handlers

import (
	"net/http"

	"github.com/dom/ep-app-api/internal/api/respond"
	"github.com/dom/ep-app-api/internal/service"
	"go.uber.org/zap"
)

type VocabularyHandler struct {
	vocabService *service.VocabularyService
	logger       *zap.Logger
}

func NewVocabularyHandler(vocabService *service.VocabularyService, logger *zap.Logger) *VocabularyHandler {
	return &VocabularyHandler{vocabService: vocabService, logger: logger}
}

type SeizureTypeResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type ContactTypeResponse struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

func (h *VocabularyHandler) SeizureTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.vocabService.SeizureTypes(r.Context())
	if err != nil {
		writeError(w, h.logger, "vocabulary.SeizureTypes", err, "Could not list seizure types")
		return
	}

	resp := make([]SeizureTypeResponse, len(types))
	for i, st := range types {
		resp[i] = SeizureTypeResponse{Name: st.Name, Description: st.Description}
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *VocabularyHandler) ContactTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.vocabService.ContactTypes(r.Context())
	if err != nil {
		writeError(w, h.logger, "vocabulary.ContactTypes", err, "Could not list contact types")
		return
	}

	resp := make([]ContactTypeResponse, len(types))
	for i, ct := range types {
		resp[i] = ContactTypeResponse{Name: ct.Name, Category: string(ct.Category)}
	}

	respond.JSON(w, http.StatusOK, resp)
}
