// Command server runs the conference management API.
package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"conferencecentral/config"
	_ "conferencecentral/docs"
	"conferencecentral/internal/adapters/auth"
	"conferencecentral/internal/adapters/cache"
	"conferencecentral/internal/adapters/email"
	"conferencecentral/internal/adapters/tasks"
	httpdelivery "conferencecentral/internal/delivery/http"
	"conferencecentral/internal/delivery/http/controllers"
	"conferencecentral/internal/delivery/http/middleware"
	"conferencecentral/internal/repository/postgres"
	"conferencecentral/internal/services"
)

// @title Conference Central API
// @version 1.0
// @description Conference and session management API with passwordless login.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelPing()
	if err := db.PingContext(pingCtx); err != nil {
		logger.Error("database unreachable", "err", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	// Repositories
	conferenceRepo := postgres.NewConferenceRepository(db)
	sessionRepo := postgres.NewSessionRepository(db)
	profileRepo := postgres.NewProfileRepository(db)
	registrationRepo := postgres.NewRegistrationRepository(db)
	wishlistRepo := postgres.NewWishlistRepository(db)
	loginCodeRepo := postgres.NewLoginCodeRepository(db)

	// Adapters
	appCache := cache.NewMemoryCache()
	taskQueue := tasks.NewInProcessQueue(cfg.TaskQueueWorkers, cfg.TaskQueueRetries, logger)
	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:           cfg.Mailer.Provider,
		FromAddress:        cfg.Mailer.FromAddress,
		FromName:           cfg.Mailer.FromName,
		SESRegion:          cfg.Mailer.SESRegion,
		SESAccessKeyID:     cfg.Mailer.SESAccessKeyID,
		SESSecretAccessKey: cfg.Mailer.SESSecretAccessKey,
	}, logger)
	if err != nil {
		logger.Error("create mailer", "err", err)
		os.Exit(1)
	}
	tokenIssuer := auth.NewJWTIssuer(cfg.JWTSecret)
	tokenVerifier := auth.NewJWTVerifier(cfg.JWTSecret)

	// Services
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer())
	profileService := services.NewProfileService(profileRepo)
	authService := services.NewAuthService(
		loginCodeRepo,
		profileService,
		tokenIssuer,
		time.Duration(cfg.JWTExpiryHours)*time.Hour,
		emailService,
	)
	conferenceService := services.NewConferenceService(conferenceRepo, profileRepo, emailService, taskQueue, logger)
	featuredService := services.NewFeaturedSpeakerService(sessionRepo, appCache, cfg.FeaturedSpeakerMinSessions, logger)
	sessionService := services.NewSessionService(sessionRepo, conferenceRepo, featuredService, taskQueue, logger)
	attendeeService := services.NewAttendeeService(conferenceRepo, sessionRepo, registrationRepo, wishlistRepo)
	announcementService := services.NewAnnouncementService(conferenceRepo, appCache)

	mux := httpdelivery.NewRouter(httpdelivery.Controllers{
		Auth:         controllers.NewAuthController(logger, authService),
		Profile:      controllers.NewProfileController(logger, profileService),
		Conference:   controllers.NewConferenceController(logger, conferenceService),
		Session:      controllers.NewSessionController(logger, sessionService),
		Attendee:     controllers.NewAttendeeController(logger, attendeeService),
		Announcement: controllers.NewAnnouncementController(logger, announcementService, featuredService),
	}, tokenVerifier, logger)

	handler := middleware.CORS(cfg.CORSAllowedOrigins,
		middleware.LoggingMiddleware(logger, mux))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Recompute the sold-out announcement on a fixed schedule so the cached
	// value tracks registrations without a request-time scan.
	go func() {
		interval := time.Duration(cfg.AnnouncementRefreshMinutes) * time.Minute
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-rootCtx.Done():
				return
			case <-ticker.C:
				if _, err := announcementService.Refresh(rootCtx); err != nil {
					logger.Warn("announcement refresh failed", "err", err)
				}
			}
		}
	}()

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "err", err)
			stop()
		}
	}()

	<-rootCtx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", "err", err)
	}
	if err := taskQueue.Shutdown(shutdownCtx); err != nil {
		logger.Warn("task queue drain incomplete", "err", err)
	}
	logger.Info("server stopped")
}
