package controllers

import (
	"log/slog"
	"net/http"

	h "conferencecentral/internal/delivery/http/helpers"
	"conferencecentral/internal/domain"
)

// AnnouncementResponse is the data payload for GET /conference/announcement.
// Announcement is "" when no announcement is published.
type AnnouncementResponse struct {
	Announcement string `json:"announcement"`
}

// FeaturedSpeakerResponse is the data payload for GET /featuredSpeaker.
// FeaturedSpeaker is "" when no speaker is featured.
type FeaturedSpeakerResponse struct {
	FeaturedSpeaker string `json:"featured_speaker"`
}

type AnnouncementController struct {
	Logger        *slog.Logger
	Announcements domain.AnnouncementService
	Featured      domain.FeaturedSpeakerService
}

func NewAnnouncementController(logger *slog.Logger, announcements domain.AnnouncementService, featured domain.FeaturedSpeakerService) *AnnouncementController {
	return &AnnouncementController{
		Logger:        logger,
		Announcements: announcements,
		Featured:      featured,
	}
}

// GetAnnouncement godoc
// @Summary Get the current near-sold-out announcement
// @Description Returns the published announcement string, or "" when none is set.
// @Tags announcements
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains announcement"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conference/announcement [get]
func (c *AnnouncementController) GetAnnouncement(w http.ResponseWriter, r *http.Request) {
	announcement, err := c.Announcements.Announcement(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, AnnouncementResponse{Announcement: announcement})
}

// GetFeaturedSpeaker godoc
// @Summary Get the current featured speaker summary
// @Description Returns the featured-speaker string, or "" when none is set.
// @Tags announcements
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains featured_speaker"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /featuredSpeaker [get]
func (c *AnnouncementController) GetFeaturedSpeaker(w http.ResponseWriter, r *http.Request) {
	speaker, err := c.Featured.FeaturedSpeaker(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, FeaturedSpeakerResponse{FeaturedSpeaker: speaker})
}

// RefreshAnnouncements godoc
// @Summary Recompute the near-sold-out announcement
// @Description Scans nearly-sold-out conferences and publishes or clears the announcement. Runs on a schedule; this route exists for manual runs.
// @Tags announcements
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the published announcement ("" when cleared)"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /tasks/announcements [post]
func (c *AnnouncementController) RefreshAnnouncements(w http.ResponseWriter, r *http.Request) {
	announcement, err := c.Announcements.Refresh(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, AnnouncementResponse{Announcement: announcement})
}
