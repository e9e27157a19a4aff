package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// ConferenceConfirmationEmailData holds data for the conference-created
// confirmation email sent to the organizer.
type ConferenceConfirmationEmailData struct {
	Email          string
	ConferenceName string
	City           string
	StartDate      string
	EndDate        string
	MaxAttendees   int
}

// LoginCodeEmailData holds data for the passwordless login code email.
type LoginCodeEmailData struct {
	Email            string
	Code             string
	ExpiresInMinutes int
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendConferenceConfirmation(ctx context.Context, data *ConferenceConfirmationEmailData) error
	SendLoginCode(ctx context.Context, data *LoginCodeEmailData) error
}
