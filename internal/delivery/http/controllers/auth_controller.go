package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	h "conferencecentral/internal/delivery/http/helpers"
	"conferencecentral/internal/domain"
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// RequestLoginCodeRequest is the request body for POST /auth/login/code
type RequestLoginCodeRequest struct {
	Email string `json:"email"`
}

// Validate implements Validator.
func (r RequestLoginCodeRequest) Validate() []string {
	var errs []string
	email := strings.TrimSpace(strings.ToLower(r.Email))
	if email == "" {
		errs = append(errs, "email is required")
	} else if !emailRegexp.MatchString(email) {
		errs = append(errs, "invalid email format")
	}
	return errs
}

// VerifyLoginCodeRequest is the request body for POST /auth/login/verify
type VerifyLoginCodeRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// Validate implements Validator.
func (r VerifyLoginCodeRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.Email) == "" {
		errs = append(errs, "email is required")
	}
	if strings.TrimSpace(r.Code) == "" {
		errs = append(errs, "code is required")
	}
	return errs
}

// RequestLoginCodeResponse is the data payload for POST /auth/login/code (200).
type RequestLoginCodeResponse struct {
	Status string `json:"status"`
}

// VerifyLoginCodeResponse is the data payload for POST /auth/login/verify (200).
type VerifyLoginCodeResponse struct {
	Token     string          `json:"token"`
	TokenType string          `json:"token_type"`
	Profile   *domain.Profile `json:"profile"`
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

// RequestLoginCode godoc
// @Summary Request a login code
// @Description Sends a one-time login code to the given email address. Always returns 200 on a well-formed request so that email addresses cannot be probed.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body RequestLoginCodeRequest true "Email to send the code to"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /auth/login/code [post]
func (c *AuthController) RequestLoginCode(w http.ResponseWriter, r *http.Request) {
	var req RequestLoginCodeRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if err := c.Service.RequestLoginCode(r.Context(), email); err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, RequestLoginCodeResponse{Status: "code sent"})
}

// VerifyLoginCode godoc
// @Summary Verify a login code
// @Description Exchanges a one-time login code for a JWT. The profile is created lazily on first login.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body VerifyLoginCodeRequest true "Email and code"
// @Success 200 {object} helpers.APIResponse "data contains token, token_type, and profile"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized (wrong or expired code)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /auth/login/verify [post]
func (c *AuthController) VerifyLoginCode(w http.ResponseWriter, r *http.Request) {
	var req VerifyLoginCodeRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	email := strings.TrimSpace(strings.ToLower(req.Email))
	token, profile, err := c.Service.VerifyLoginCode(r.Context(), email, strings.TrimSpace(req.Code))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid or expired code")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, VerifyLoginCodeResponse{Token: token, TokenType: "Bearer", Profile: profile})
}
