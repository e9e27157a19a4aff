package email

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"conferencecentral/internal/domain"
)

// MailerConfig holds delivery settings. Field names mirror
// config.MailerSettings so wiring is a straight copy.
type MailerConfig struct {
	Provider              string
	FromAddress           string
	FromName              string
	SESRegion             string
	SESAccessKeyID        string
	SESSecretAccessKey    string
	SESInsecureSkipVerify bool
}

// NewMailer selects a mailer by provider name. "ses" sends through AWS
// SES; "noop" or an unrecognized provider logs instead of sending.
func NewMailer(cfg MailerConfig, logger *slog.Logger) (domain.Mailer, error) {
	switch cfg.Provider {
	case "ses":
		return newSESMailer(cfg, logger), nil
	case "noop":
		return &noopMailer{logger: logger}, nil
	default:
		logger.Warn("unknown email provider, falling back to noop", "provider", cfg.Provider)
		return &noopMailer{logger: logger}, nil
	}
}

type sesMailer struct {
	client *ses.Client
	from   string
	logger *slog.Logger
}

func newSESMailer(cfg MailerConfig, logger *slog.Logger) *sesMailer {
	if cfg.SESInsecureSkipVerify {
		logger.Warn("TLS certificate verification disabled for SES, development only")
	}
	awsCfg := aws.Config{
		Region: cfg.SESRegion,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.SESAccessKeyID, cfg.SESSecretAccessKey, ""),
		),
		HTTPClient: &http.Client{
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{
					InsecureSkipVerify: cfg.SESInsecureSkipVerify,
					MinVersion:         tls.VersionTLS12,
				},
			},
		},
	}
	from := cfg.FromAddress
	if cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", cfg.FromName, cfg.FromAddress)
	}
	return &sesMailer{
		client: ses.NewFromConfig(awsCfg),
		from:   from,
		logger: logger,
	}
}

func (s *sesMailer) Send(to, subject, html, text string) error {
	body := &types.Body{}
	if html != "" {
		body.Html = &types.Content{Data: aws.String(html), Charset: aws.String("UTF-8")}
	}
	if text != "" {
		body.Text = &types.Content{Data: aws.String(text), Charset: aws.String("UTF-8")}
	}
	input := &ses.SendEmailInput{
		Source:      aws.String(s.from),
		Destination: &types.Destination{ToAddresses: []string{to}},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject), Charset: aws.String("UTF-8")},
			Body:    body,
		},
	}
	result, err := s.client.SendEmail(context.Background(), input)
	if err != nil {
		return fmt.Errorf("failed to send email via SES: %w", err)
	}
	s.logger.Info("email sent via SES", "to", to, "message_id", aws.ToString(result.MessageId))
	return nil
}

type noopMailer struct {
	logger *slog.Logger
}

func (n *noopMailer) Send(to, subject, html, text string) error {
	n.logger.Info("email suppressed by noop mailer", "to", to, "subject", subject)
	return nil
}
