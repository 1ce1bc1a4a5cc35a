package handlers

import (
	"net/http"

	"github.com/dom/ep-app-api/internal/api/respond"
	"github.com/dom/ep-app-api/internal/service"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *service.AuthService
	logger      *zap.Logger
}

func NewAuthHandler(authService *service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, logger: logger}
}

type AuthResponse struct {
	UserID      string `json:"userId"`
	AccessToken string `json:"accessToken"`
}

// Register creates an account and returns its access token
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	const message = "Could not create user"

	var req service.RegisterInput
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, "auth.Register", err, message)
		return
	}

	result, err := h.authService.Register(r.Context(), req)
	if err != nil {
		writeError(w, h.logger, "auth.Register", err, message)
		return
	}

	respond.JSON(w, http.StatusOK, AuthResponse{
		UserID:      result.User.ID.String(),
		AccessToken: result.AccessToken,
	})
}

// Login returns the account's access token for valid credentials, and
// {"notFound": true} otherwise.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	const message = "Could not log in"

	var req service.LoginInput
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, "auth.Login", err, message)
		return
	}

	result, err := h.authService.Login(r.Context(), req)
	if err != nil {
		writeError(w, h.logger, "auth.Login", err, message)
		return
	}

	respond.JSON(w, http.StatusOK, AuthResponse{
		UserID:      result.User.ID.String(),
		AccessToken: result.AccessToken,
	})
}
