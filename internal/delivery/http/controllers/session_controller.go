package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	h "conferencecentral/internal/delivery/http/helpers"
	"conferencecentral/internal/delivery/http/middleware"
	"conferencecentral/internal/domain"
	"conferencecentral/internal/query"
)

// timeLayout is the wire format for session start times.
const timeLayout = "15:04"

// CreateSessionRequest is the request body for POST /session.
// Date uses YYYY-MM-DD, start_time uses HH:MM.
type CreateSessionRequest struct {
	ConferenceID  string   `json:"conference_id"`
	Name          string   `json:"name"`
	Highlights    string   `json:"highlights"`
	Speaker       string   `json:"speaker"`
	Duration      *int     `json:"duration"`
	TypeOfSession []string `json:"type_of_session"`
	Date          string   `json:"date"`
	StartTime     string   `json:"start_time"`
}

// Validate implements Validator.
func (c CreateSessionRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, "name is required")
	}
	if strings.TrimSpace(c.ConferenceID) == "" {
		errs = append(errs, "conference_id is required")
	}
	if strings.TrimSpace(c.Date) == "" {
		errs = append(errs, "date is required")
	} else if _, err := time.Parse(dateLayout, strings.TrimSpace(c.Date)); err != nil {
		errs = append(errs, "date must be YYYY-MM-DD")
	}
	if strings.TrimSpace(c.StartTime) == "" {
		errs = append(errs, "start_time is required")
	} else if _, err := time.Parse(timeLayout, strings.TrimSpace(c.StartTime)); err != nil {
		errs = append(errs, "start_time must be HH:MM")
	}
	if c.Duration != nil && *c.Duration < 0 {
		errs = append(errs, "duration must be non-negative")
	}
	return errs
}

// QuerySessionsRequest is the request body for POST /querySessions.
type QuerySessionsRequest struct {
	Filters []query.Clause `json:"filters"`
}

type SessionController struct {
	Logger  *slog.Logger
	Service domain.SessionService
}

func NewSessionController(logger *slog.Logger, svc domain.SessionService) *SessionController {
	return &SessionController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateSession godoc
// @Summary Create a session
// @Description Creates a session within a conference. Only the conference organizer can create sessions. Naming a speaker dispatches an asynchronous featured-speaker evaluation.
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateSessionRequest true "Session data"
// @Success 201 {object} helpers.APIResponse "data contains the created session"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (not organizer)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (conference)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /session [post]
func (c *SessionController) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	date, _ := time.Parse(dateLayout, strings.TrimSpace(req.Date))
	start, _ := time.Parse(timeLayout, strings.TrimSpace(req.StartTime))
	input := domain.SessionInput{
		ConferenceID:  strings.TrimSpace(req.ConferenceID),
		Name:          strings.TrimSpace(req.Name),
		Highlights:    req.Highlights,
		Speaker:       strings.TrimSpace(req.Speaker),
		Duration:      req.Duration,
		TypeOfSession: req.TypeOfSession,
		Date:          date,
		StartTime:     start,
	}
	sess, err := c.Service.Create(r.Context(), userID, input)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "conference not found")
			return
		}
		if errors.Is(err, domain.ErrForbidden) {
			h.WriteJSONError(w, http.StatusForbidden, h.ErrCodeForbidden, "forbidden")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, toSessionResponse(sess))
}

// GetConferenceSessions godoc
// @Summary List sessions of a conference
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param conferenceID path string true "Conference ID"
// @Success 200 {object} helpers.APIResponse "data is an array of sessions"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /getConferenceSessions/{conferenceID} [get]
func (c *SessionController) GetConferenceSessions(w http.ResponseWriter, r *http.Request) {
	conferenceID := r.PathValue("conferenceID")
	if conferenceID == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing conferenceID")
		return
	}
	c.list(w, r, func() ([]*domain.Session, error) {
		return c.Service.ListByConference(r.Context(), conferenceID)
	})
}

// GetConferenceSessionsByType godoc
// @Summary List sessions of a conference by type
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param conferenceID path string true "Conference ID"
// @Param typeOfSession path string true "Session type (e.g. lecture, workshop)"
// @Success 200 {object} helpers.APIResponse "data is an array of sessions"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /getConferenceSessionsByType/{conferenceID}/{typeOfSession} [get]
func (c *SessionController) GetConferenceSessionsByType(w http.ResponseWriter, r *http.Request) {
	conferenceID := r.PathValue("conferenceID")
	sessionType := r.PathValue("typeOfSession")
	if conferenceID == "" || sessionType == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing conferenceID or typeOfSession")
		return
	}
	c.list(w, r, func() ([]*domain.Session, error) {
		return c.Service.ListByConferenceAndType(r.Context(), conferenceID, sessionType)
	})
}

// GetSessionsBySpeaker godoc
// @Summary List sessions by speaker across all conferences
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param speaker path string true "Speaker name"
// @Success 200 {object} helpers.APIResponse "data is an array of sessions"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /getSessionsBySpeaker/{speaker} [get]
func (c *SessionController) GetSessionsBySpeaker(w http.ResponseWriter, r *http.Request) {
	speaker := r.PathValue("speaker")
	if speaker == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing speaker")
		return
	}
	c.list(w, r, func() ([]*domain.Session, error) {
		return c.Service.ListBySpeaker(r.Context(), speaker)
	})
}

// GetShortSessions godoc
// @Summary List short sessions
// @Description Returns sessions with a known duration of at most 30 minutes.
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data is an array of sessions"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /sessions/short [get]
func (c *SessionController) GetShortSessions(w http.ResponseWriter, r *http.Request) {
	c.list(w, r, func() ([]*domain.Session, error) {
		return c.Service.ListShort(r.Context())
	})
}

// GetSessionsOfInterest godoc
// @Summary List non-workshop sessions starting by early evening
// @Description Returns sessions with no workshop tag and a known start time at or before 19:00.
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data is an array of sessions"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /sessions/interest [get]
func (c *SessionController) GetSessionsOfInterest(w http.ResponseWriter, r *http.Request) {
	c.list(w, r, func() ([]*domain.Session, error) {
		return c.Service.ListOfInterest(r.Context())
	})
}

// QuerySessions godoc
// @Summary Query sessions with filters
// @Description Runs a filtered session query. Filters use field/operator/value triples (fields: DURATION, DATE, START_TIME, TYPE_OF_SESSION, SPEAKER; operators: EQ, GT, GTEQ, LT, LTEQ, NE). Inequality operators are allowed on only one field per query.
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body QuerySessionsRequest true "Filter clauses (may be empty)"
// @Success 200 {object} helpers.APIResponse "data is an array of sessions"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (invalid filters)"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /querySessions [post]
func (c *SessionController) QuerySessions(w http.ResponseWriter, r *http.Request) {
	var req QuerySessionsRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	sessions, err := c.Service.Query(r.Context(), req.Filters)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, toSessionResponses(sessions))
}

func (c *SessionController) list(w http.ResponseWriter, r *http.Request, fetch func() ([]*domain.Session, error)) {
	sessions, err := fetch()
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, toSessionResponses(sessions))
}
