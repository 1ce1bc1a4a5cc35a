package handlers

import (
	"net/http"
	"time"

	"github.com/dom/ep-app-api/internal/api/respond"
	"github.com/dom/ep-app-api/internal/domain"
	"github.com/dom/ep-app-api/internal/service"
	"go.uber.org/zap"
)

type UserHandler struct {
	userService *service.UserService
	logger      *zap.Logger
}

func NewUserHandler(userService *service.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{userService: userService, logger: logger}
}

type ProfileResponse struct {
	UserID    string     `json:"userId"`
	Email     string     `json:"email"`
	FirstName string     `json:"firstName"`
	Surname   string     `json:"surname"`
	BirthDate *time.Time `json:"birthDate"`
}

type UserDataResponse struct {
	ProfileResponse
	Seizures []SeizureResponse `json:"seizures"`
	Contacts []ContactResponse `json:"contacts"`
}

func newProfileResponse(u *domain.User) ProfileResponse {
	return ProfileResponse{
		UserID:    u.ID.String(),
		Email:     u.Email,
		FirstName: u.FirstName,
		Surname:   u.Surname,
		BirthDate: u.BirthDate,
	}
}

// GetUserData returns the profile with all seizures and contacts
func (h *UserHandler) GetUserData(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	data, err := h.userService.GetUserData(r.Context(), userID)
	if err != nil {
		writeError(w, h.logger, "user.GetUserData", err, "Could not load user data")
		return
	}

	respond.JSON(w, http.StatusOK, UserDataResponse{
		ProfileResponse: newProfileResponse(data.User),
		Seizures:        newSeizureResponses(data.Seizures),
		Contacts:        newContactResponses(data.Contacts),
	})
}

// Update changes profile fields and, optionally, the password
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	const message = "Could not update user"

	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var req service.UpdateUserInput
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, "user.Update", err, message)
		return
	}

	user, err := h.userService.Update(r.Context(), userID, req)
	if err != nil {
		writeError(w, h.logger, "user.Update", err, message)
		return
	}

	respond.JSON(w, http.StatusOK, newProfileResponse(user))
}
