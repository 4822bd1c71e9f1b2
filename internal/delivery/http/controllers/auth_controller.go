package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	h "kioskcheckin/internal/delivery/http/helpers"
	"kioskcheckin/internal/domain"
)

// SessionRequest is the request body for POST /auth/session
type SessionRequest struct {
	Passcode string `json:"passcode"`
}

// Validate implements Validator.
func (s SessionRequest) Validate() []string {
	var errs []string
	if s.Passcode == "" {
		errs = append(errs, "passcode is required")
	}
	return errs
}

// SessionResponse is the response body for POST /auth/session
type SessionResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
}

type AuthController struct {
	Logger  *slog.Logger
	Service domain.AuthService
}

func NewAuthController(logger *slog.Logger, svc domain.AuthService) *AuthController {
	return &AuthController{
		Logger:  logger,
		Service: svc,
	}
}

// StartSession godoc
// @Summary Unlock a kiosk session
// @Description Exchange the shared kiosk passcode for a Bearer session token.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body SessionRequest true "Kiosk passcode"
// @Success 200 {object} helpers.APIResponse "data contains token and token_type"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /auth/session [post]
func (c *AuthController) StartSession(w http.ResponseWriter, r *http.Request) {
	var req SessionRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	token, err := c.Service.StartSession(r.Context(), req.Passcode)
	if err != nil {
		if !errors.Is(err, domain.ErrBadPasscode) {
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		}
		h.WriteDomainError(w, err)
		return
	}

	h.WriteJSONSuccess(w, http.StatusOK, SessionResponse{Token: token, TokenType: "Bearer"})
}
