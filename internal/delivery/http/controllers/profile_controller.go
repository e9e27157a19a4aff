package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	h "conferencecentral/internal/delivery/http/helpers"
	"conferencecentral/internal/delivery/http/middleware"
	"conferencecentral/internal/domain"
)

// SaveProfileRequest is the request body for POST /profile. Empty fields are
// left unchanged.
type SaveProfileRequest struct {
	DisplayName  string `json:"display_name"`
	TeeShirtSize string `json:"tee_shirt_size"`
}

// Validate implements Validator.
func (s SaveProfileRequest) Validate() []string {
	var errs []string
	if size := strings.TrimSpace(s.TeeShirtSize); size != "" && !domain.TeeShirtSize(size).Valid() {
		errs = append(errs, "unknown tee_shirt_size")
	}
	return errs
}

type ProfileController struct {
	Logger  *slog.Logger
	Service domain.ProfileService
}

func NewProfileController(logger *slog.Logger, svc domain.ProfileService) *ProfileController {
	return &ProfileController{
		Logger:  logger,
		Service: svc,
	}
}

// GetProfile godoc
// @Summary Get the caller's profile
// @Description Returns the authenticated user's profile, creating it on first access with the verified email.
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the profile"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /profile [get]
func (c *ProfileController) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	email, _ := middleware.EmailFromContext(r.Context())
	profile, err := c.Service.GetOrCreate(r.Context(), userID, email)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, profile)
}

// SaveProfile godoc
// @Summary Update the caller's profile
// @Description Updates display name and/or tee-shirt size. Empty fields are unchanged. The profile is created first if it does not exist yet.
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SaveProfileRequest true "Profile fields to update"
// @Success 200 {object} helpers.APIResponse "data contains the updated profile"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /profile [post]
func (c *ProfileController) SaveProfile(w http.ResponseWriter, r *http.Request) {
	var req SaveProfileRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	email, _ := middleware.EmailFromContext(r.Context())
	upd := domain.ProfileUpdate{
		DisplayName:  strings.TrimSpace(req.DisplayName),
		TeeShirtSize: domain.TeeShirtSize(strings.TrimSpace(req.TeeShirtSize)),
	}
	profile, err := c.Service.Save(r.Context(), userID, email, upd)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, profile)
}
