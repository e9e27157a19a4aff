package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"conferencecentral/internal/delivery/http/controllers"
	"conferencecentral/internal/delivery/http/middleware"
	"conferencecentral/internal/domain"
)

// Controllers groups the controllers the router dispatches to.
type Controllers struct {
	Auth         *controllers.AuthController
	Profile      *controllers.ProfileController
	Conference   *controllers.ConferenceController
	Session      *controllers.SessionController
	Attendee     *controllers.AttendeeController
	Announcement *controllers.AnnouncementController
}

// NewRouter initializes the HTTP router with all application routes.
// Everything except login, swagger, and health requires a Bearer token.
func NewRouter(c Controllers, verifier domain.TokenVerifier, logger *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(verifier, logger)

	// Auth
	mux.HandleFunc("POST /auth/login/code", c.Auth.RequestLoginCode)
	mux.HandleFunc("POST /auth/login/verify", c.Auth.VerifyLoginCode)

	// Profile
	mux.HandleFunc("GET /profile", auth(c.Profile.GetProfile))
	mux.HandleFunc("POST /profile", auth(c.Profile.SaveProfile))

	// Conferences
	mux.HandleFunc("POST /conference", auth(c.Conference.CreateConference))
	mux.HandleFunc("GET /conference/announcement", auth(c.Announcement.GetAnnouncement))
	mux.HandleFunc("PUT /conference/{conferenceID}", auth(c.Conference.UpdateConference))
	mux.HandleFunc("GET /conference/{conferenceID}", auth(c.Conference.GetConference))
	mux.HandleFunc("POST /getConferencesCreated", auth(c.Conference.GetConferencesCreated))
	mux.HandleFunc("POST /queryConferences", auth(c.Conference.QueryConferences))
	mux.HandleFunc("GET /conferences/keyword", auth(c.Conference.GetConferencesByKeyword))

	// Registration
	mux.HandleFunc("POST /conference/{conferenceID}/registration", auth(c.Attendee.RegisterForConference))
	mux.HandleFunc("DELETE /conference/{conferenceID}/registration", auth(c.Attendee.UnregisterFromConference))
	mux.HandleFunc("GET /conferences/attending", auth(c.Attendee.GetConferencesToAttend))

	// Sessions
	mux.HandleFunc("POST /session", auth(c.Session.CreateSession))
	mux.HandleFunc("GET /getConferenceSessions/{conferenceID}", auth(c.Session.GetConferenceSessions))
	mux.HandleFunc("GET /getConferenceSessionsByType/{conferenceID}/{typeOfSession}", auth(c.Session.GetConferenceSessionsByType))
	mux.HandleFunc("GET /getSessionsBySpeaker/{speaker}", auth(c.Session.GetSessionsBySpeaker))
	mux.HandleFunc("GET /sessions/short", auth(c.Session.GetShortSessions))
	mux.HandleFunc("GET /sessions/interest", auth(c.Session.GetSessionsOfInterest))
	mux.HandleFunc("POST /querySessions", auth(c.Session.QuerySessions))

	// Wishlist
	mux.HandleFunc("POST /session/{sessionID}/wishlist", auth(c.Attendee.AddSessionToWishlist))
	mux.HandleFunc("DELETE /session/{sessionID}/wishlist", auth(c.Attendee.RemoveSessionFromWishlist))
	mux.HandleFunc("GET /sessions/wishlist", auth(c.Attendee.GetSessionsInWishlist))

	// Announcements
	mux.HandleFunc("GET /featuredSpeaker", auth(c.Announcement.GetFeaturedSpeaker))
	mux.HandleFunc("POST /tasks/announcements", auth(c.Announcement.RefreshAnnouncements))

	// Health
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
