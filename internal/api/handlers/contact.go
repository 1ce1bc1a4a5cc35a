package handlers

import (
	"net/http"
	"time"

	"github.com/dom/ep-app-api/internal/api/respond"
	"github.com/dom/ep-app-api/internal/domain"
	"github.com/dom/ep-app-api/internal/service"
	"go.uber.org/zap"
)

type ContactHandler struct {
	contactService *service.ContactService
	logger         *zap.Logger
}

func NewContactHandler(contactService *service.ContactService, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{contactService: contactService, logger: logger}
}

type ContactResponse struct {
	ID               string    `json:"id"`
	UserID           string    `json:"userId"`
	ContactType      string    `json:"contactType"`
	Category         string    `json:"category"`
	ContactFirstName string    `json:"contactFirstName"`
	ContactSurname   string    `json:"contactSurname"`
	PhoneNumber      string    `json:"phoneNumber"`
	Relation         string    `json:"relation"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func newContactResponse(c *domain.Contact) ContactResponse {
	return ContactResponse{
		ID:               c.ID.String(),
		UserID:           c.UserID.String(),
		ContactType:      c.ContactType,
		Category:         string(c.Category),
		ContactFirstName: c.ContactFirstName,
		ContactSurname:   c.ContactSurname,
		PhoneNumber:      c.PhoneNumber,
		Relation:         c.Relation,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

func newContactResponses(contacts []*domain.Contact) []ContactResponse {
	resp := make([]ContactResponse, 0, len(contacts))
	for _, c := range contacts {
		resp = append(resp, newContactResponse(c))
	}
	return resp
}

func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	contacts, err := h.contactService.List(r.Context(), userID)
	if err != nil {
		writeError(w, h.logger, "contact.List", err, "Could not list contacts")
		return
	}

	respond.JSON(w, http.StatusOK, newContactResponses(contacts))
}

func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	const message = "Could not create contact"

	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var req service.CreateContactInput
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, "contact.Create", err, message)
		return
	}

	contact, err := h.contactService.Create(r.Context(), userID, req)
	if err != nil {
		writeError(w, h.logger, "contact.Create", err, message)
		return
	}

	respond.JSON(w, http.StatusOK, newContactResponse(contact))
}

func (h *ContactHandler) Update(w http.ResponseWriter, r *http.Request) {
	const message = "Could not update contact"

	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	id, err := recordID(r)
	if err != nil {
		writeError(w, h.logger, "contact.Update", err, message)
		return
	}

	var req service.UpdateContactInput
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, "contact.Update", err, message)
		return
	}

	contact, err := h.contactService.Update(r.Context(), userID, id, req)
	if err != nil {
		writeError(w, h.logger, "contact.Update", err, message)
		return
	}

	respond.JSON(w, http.StatusOK, newContactResponse(contact))
}

func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	const message = "Could not delete contact"

	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	id, err := recordID(r)
	if err != nil {
		writeError(w, h.logger, "contact.Delete", err, message)
		return
	}

	contact, err := h.contactService.Delete(r.Context(), userID, id)
	if err != nil {
		writeError(w, h.logger, "contact.Delete", err, message)
		return
	}

	respond.JSON(w, http.StatusOK, newContactResponse(contact))
}
