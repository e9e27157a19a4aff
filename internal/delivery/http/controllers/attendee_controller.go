package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	h "conferencecentral/internal/delivery/http/helpers"
	"conferencecentral/internal/delivery/http/middleware"
	"conferencecentral/internal/domain"
)

// BooleanResultResponse is the data payload for registration and wishlist
// mutations. Result reports whether the state changed.
type BooleanResultResponse struct {
	Result bool `json:"result"`
}

type AttendeeController struct {
	Logger  *slog.Logger
	Service domain.AttendeeService
}

func NewAttendeeController(logger *slog.Logger, svc domain.AttendeeService) *AttendeeController {
	return &AttendeeController{
		Logger:  logger,
		Service: svc,
	}
}

// RegisterForConference godoc
// @Summary Register for a conference
// @Description Takes one seat at the conference for the caller. The seat decrement and the registration row are committed atomically.
// @Tags attendees
// @Produce json
// @Security BearerAuth
// @Param conferenceID path string true "Conference ID"
// @Success 200 {object} helpers.APIResponse "data contains result true"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (already registered or sold out)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conference/{conferenceID}/registration [post]
func (c *AttendeeController) RegisterForConference(w http.ResponseWriter, r *http.Request) {
	conferenceID := r.PathValue("conferenceID")
	if conferenceID == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing conferenceID")
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	result, err := c.Service.RegisterForConference(r.Context(), conferenceID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "conference not found")
			return
		}
		if errors.Is(err, domain.ErrConflict) {
			h.WriteJSONError(w, http.StatusConflict, h.ErrCodeConflict, "already registered")
			return
		}
		if errors.Is(err, domain.ErrNoSeats) {
			h.WriteJSONError(w, http.StatusConflict, h.ErrCodeConflict, "no seats available")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, BooleanResultResponse{Result: result})
}

// UnregisterFromConference godoc
// @Summary Unregister from a conference
// @Description Returns the caller's seat. Result is false when the caller was not registered; that is not an error and the seat counter is untouched.
// @Tags attendees
// @Produce json
// @Security BearerAuth
// @Param conferenceID path string true "Conference ID"
// @Success 200 {object} helpers.APIResponse "data contains result"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conference/{conferenceID}/registration [delete]
func (c *AttendeeController) UnregisterFromConference(w http.ResponseWriter, r *http.Request) {
	conferenceID := r.PathValue("conferenceID")
	if conferenceID == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing conferenceID")
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	result, err := c.Service.UnregisterFromConference(r.Context(), conferenceID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "conference not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, BooleanResultResponse{Result: result})
}

// GetConferencesToAttend godoc
// @Summary List conferences the caller is registered for
// @Tags attendees
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data is an array of conferences"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/attending [get]
func (c *AttendeeController) GetConferencesToAttend(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	confs, err := c.Service.ListConferencesToAttend(r.Context(), userID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, toConferenceResponses(confs))
}

// AddSessionToWishlist godoc
// @Summary Add a session to the caller's wishlist
// @Tags attendees
// @Produce json
// @Security BearerAuth
// @Param sessionID path string true "Session ID"
// @Success 200 {object} helpers.APIResponse "data contains result true"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (session)"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (already wishlisted)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /session/{sessionID}/wishlist [post]
func (c *AttendeeController) AddSessionToWishlist(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionID")
	if sessionID == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing sessionID")
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	result, err := c.Service.AddSessionToWishlist(r.Context(), sessionID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "session not found")
			return
		}
		if errors.Is(err, domain.ErrConflict) {
			h.WriteJSONError(w, http.StatusConflict, h.ErrCodeConflict, "session already in wishlist")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, BooleanResultResponse{Result: result})
}

// RemoveSessionFromWishlist godoc
// @Summary Remove a session from the caller's wishlist
// @Description Result is false when the session was not wishlisted; that is not an error.
// @Tags attendees
// @Produce json
// @Security BearerAuth
// @Param sessionID path string true "Session ID"
// @Success 200 {object} helpers.APIResponse "data contains result"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (session)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /session/{sessionID}/wishlist [delete]
func (c *AttendeeController) RemoveSessionFromWishlist(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionID")
	if sessionID == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing sessionID")
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	result, err := c.Service.RemoveSessionFromWishlist(r.Context(), sessionID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "session not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, BooleanResultResponse{Result: result})
}

// GetSessionsInWishlist godoc
// @Summary List sessions in the caller's wishlist
// @Tags attendees
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data is an array of sessions"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /sessions/wishlist [get]
func (c *AttendeeController) GetSessionsInWishlist(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	sessions, err := c.Service.ListWishlistSessions(r.Context(), userID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, toSessionResponses(sessions))
}
