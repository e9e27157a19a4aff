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

// dateLayout is the wire format for conference dates.
const dateLayout = "2006-01-02"

// parseDate parses a wire date; an empty string yields nil.
func parseDate(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// CreateConferenceRequest is the request body for POST /conference.
// Dates use the YYYY-MM-DD format.
type CreateConferenceRequest struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Topics       []string `json:"topics"`
	City         string   `json:"city"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	MaxAttendees int      `json:"max_attendees"`
}

// Validate implements Validator.
func (c CreateConferenceRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, "name is required")
	}
	if c.MaxAttendees < 0 {
		errs = append(errs, "max_attendees must be non-negative")
	}
	if _, err := parseDate(c.StartDate); err != nil {
		errs = append(errs, "start_date must be YYYY-MM-DD")
	}
	if _, err := parseDate(c.EndDate); err != nil {
		errs = append(errs, "end_date must be YYYY-MM-DD")
	}
	return errs
}

// UpdateConferenceRequest is the request body for PUT /conference/{conferenceID}.
// All fields optional; omitted fields are unchanged.
type UpdateConferenceRequest struct {
	Name         *string  `json:"name"`
	Description  *string  `json:"description"`
	Topics       []string `json:"topics"`
	City         *string  `json:"city"`
	StartDate    *string  `json:"start_date"`
	EndDate      *string  `json:"end_date"`
	MaxAttendees *int     `json:"max_attendees"`
}

// Validate implements Validator.
func (u UpdateConferenceRequest) Validate() []string {
	var errs []string
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		errs = append(errs, "name cannot be empty")
	}
	if u.MaxAttendees != nil && *u.MaxAttendees < 0 {
		errs = append(errs, "max_attendees must be non-negative")
	}
	if u.StartDate != nil {
		if _, err := parseDate(*u.StartDate); err != nil {
			errs = append(errs, "start_date must be YYYY-MM-DD")
		}
	}
	if u.EndDate != nil {
		if _, err := parseDate(*u.EndDate); err != nil {
			errs = append(errs, "end_date must be YYYY-MM-DD")
		}
	}
	return errs
}

// QueryConferencesRequest is the request body for POST /queryConferences.
type QueryConferencesRequest struct {
	Filters []query.Clause `json:"filters"`
}

type ConferenceController struct {
	Logger  *slog.Logger
	Service domain.ConferenceService
}

func NewConferenceController(logger *slog.Logger, svc domain.ConferenceService) *ConferenceController {
	return &ConferenceController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateConference godoc
// @Summary Create a conference
// @Description Creates a conference owned by the caller. City and topics get defaults when omitted; month is derived from start_date; seats_available starts at max_attendees. A confirmation email is sent asynchronously.
// @Tags conferences
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateConferenceRequest true "Conference data"
// @Success 201 {object} helpers.APIResponse "data contains the created conference"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conference [post]
func (c *ConferenceController) CreateConference(w http.ResponseWriter, r *http.Request) {
	var req CreateConferenceRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	startDate, _ := parseDate(req.StartDate)
	endDate, _ := parseDate(req.EndDate)
	input := domain.ConferenceInput{
		Name:         strings.TrimSpace(req.Name),
		Description:  req.Description,
		Topics:       req.Topics,
		City:         strings.TrimSpace(req.City),
		StartDate:    startDate,
		EndDate:      endDate,
		MaxAttendees: req.MaxAttendees,
	}
	conf, err := c.Service.Create(r.Context(), userID, input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, toConferenceResponse(conf))
}

// UpdateConference godoc
// @Summary Update a conference
// @Description Applies a partial update. Only the organizer can update; changing start_date re-derives month. Seats are not recomputed on max_attendees changes.
// @Tags conferences
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param conferenceID path string true "Conference ID"
// @Param body body UpdateConferenceRequest true "Fields to update (all optional)"
// @Success 200 {object} helpers.APIResponse "data contains the updated conference"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (not organizer)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conference/{conferenceID} [put]
func (c *ConferenceController) UpdateConference(w http.ResponseWriter, r *http.Request) {
	conferenceID := r.PathValue("conferenceID")
	if conferenceID == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing conferenceID")
		return
	}
	var req UpdateConferenceRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	upd := domain.ConferenceUpdate{
		Name:         req.Name,
		Description:  req.Description,
		Topics:       req.Topics,
		City:         req.City,
		MaxAttendees: req.MaxAttendees,
	}
	if req.StartDate != nil {
		upd.StartDate, _ = parseDate(*req.StartDate)
	}
	if req.EndDate != nil {
		upd.EndDate, _ = parseDate(*req.EndDate)
	}
	conf, err := c.Service.Update(r.Context(), userID, conferenceID, upd)
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
	h.WriteJSONSuccess(w, http.StatusOK, toConferenceResponse(conf))
}

// GetConference godoc
// @Summary Get a conference by ID
// @Tags conferences
// @Produce json
// @Security BearerAuth
// @Param conferenceID path string true "Conference ID"
// @Success 200 {object} helpers.APIResponse "data contains the conference"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conference/{conferenceID} [get]
func (c *ConferenceController) GetConference(w http.ResponseWriter, r *http.Request) {
	conferenceID := r.PathValue("conferenceID")
	if conferenceID == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing conferenceID")
		return
	}
	conf, err := c.Service.Get(r.Context(), conferenceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "conference not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, toConferenceResponse(conf))
}

// GetConferencesCreated godoc
// @Summary List conferences created by the caller
// @Tags conferences
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data is an array of conferences"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /getConferencesCreated [post]
func (c *ConferenceController) GetConferencesCreated(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	confs, err := c.Service.ListCreatedBy(r.Context(), userID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, toConferenceResponses(confs))
}

// QueryConferences godoc
// @Summary Query conferences with filters
// @Description Runs a filtered conference query. Filters use field/operator/value triples (fields: CITY, TOPIC, MONTH, MAX_ATTENDEES; operators: EQ, GT, GTEQ, LT, LTEQ, NE). Inequality operators are allowed on only one field per query; results are sorted by that field, then name.
// @Tags conferences
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body QueryConferencesRequest true "Filter clauses (may be empty)"
// @Success 200 {object} helpers.APIResponse "data is an array of conferences"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (invalid filters)"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /queryConferences [post]
func (c *ConferenceController) QueryConferences(w http.ResponseWriter, r *http.Request) {
	var req QueryConferencesRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	confs, err := c.Service.Query(r.Context(), req.Filters)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, toConferenceResponses(confs))
}

// GetConferencesByKeyword godoc
// @Summary List conferences matching a name keyword
// @Description Returns conferences whose name contains the q query parameter (case-insensitive).
// @Tags conferences
// @Produce json
// @Security BearerAuth
// @Param q query string true "Name keyword"
// @Success 200 {object} helpers.APIResponse "data is an array of conferences"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (missing q)"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /conferences/keyword [get]
func (c *ConferenceController) GetConferencesByKeyword(w http.ResponseWriter, r *http.Request) {
	keyword := strings.TrimSpace(r.URL.Query().Get("q"))
	if keyword == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing q parameter")
		return
	}
	confs, err := c.Service.ListByKeyword(r.Context(), keyword)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, toConferenceResponses(confs))
}
