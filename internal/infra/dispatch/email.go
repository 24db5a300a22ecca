package dispatch

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"log/slog"
	"net/http"
	texttemplate "text/template"
	"time"

	"github.com/sendgrid/rest"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

//go:embed templates/reminder.html templates/reminder.txt
var templateFS embed.FS

const dateLayout = "Mon, Jan 2 2006"

type EmailMessage struct {
	ToName    string
	ToAddress string
	Subject   string
	Text      string
	HTML      string
}

type emailView struct {
	AppName       string
	Title         string
	Description   string
	Date          string
	Time          string
	Priority      string
	PriorityColor string
	Category      string
	Location      string
	Notes         string
}

// EmailRenderer turns a payload into a reminder email.
type EmailRenderer struct {
	appName  string
	location *time.Location
	html     *htmltemplate.Template
	text     *texttemplate.Template
}

func NewEmailRenderer(appName string, location *time.Location) (*EmailRenderer, error) {
	if location == nil {
		location = time.UTC
	}

	html, err := htmltemplate.ParseFS(templateFS, "templates/reminder.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse html template: %w", err)
	}

	text, err := texttemplate.ParseFS(templateFS, "templates/reminder.txt")
	if err != nil {
		return nil, fmt.Errorf("failed to parse text template: %w", err)
	}

	return &EmailRenderer{
		appName:  appName,
		location: location,
		html:     html,
		text:     text,
	}, nil
}

func (r *EmailRenderer) Render(recipient Recipient, p Payload) (EmailMessage, error) {
	view := emailView{
		AppName:       r.appName,
		Title:         p.Title,
		Description:   p.Description,
		Date:          p.TriggerDate.In(r.location).Format(dateLayout),
		Time:          p.TimeOfDay,
		Priority:      string(p.Priority),
		PriorityColor: p.Priority.Color(),
		Category:      p.Category,
		Location:      p.Location,
		Notes:         p.Notes,
	}

	var html, text bytes.Buffer

	if err := r.html.Execute(&html, view); err != nil {
		return EmailMessage{}, fmt.Errorf("failed to render html email: %w", err)
	}

	if err := r.text.Execute(&text, view); err != nil {
		return EmailMessage{}, fmt.Errorf("failed to render text email: %w", err)
	}

	return EmailMessage{
		ToName:    recipient.Name,
		ToAddress: recipient.Email,
		Subject:   "Reminder: " + p.Title,
		Text:      text.String(),
		HTML:      html.String(),
	}, nil
}

// MailClient is satisfied by *sendgrid.Client.
type MailClient interface {
	SendWithContext(ctx context.Context, email *sgmail.SGMailV3) (*rest.Response, error)
}

type EmailSenderConfig struct {
	FromName    string
	FromAddress string
}

// EmailSender delivers reminder emails through SendGrid.
type EmailSender struct {
	client   MailClient
	renderer *EmailRenderer
	from     *sgmail.Email
}

var _ ChannelSender = (*EmailSender)(nil)

func NewEmailSender(client MailClient, renderer *EmailRenderer, cfg EmailSenderConfig) *EmailSender {
	return &EmailSender{
		client:   client,
		renderer: renderer,
		from:     sgmail.NewEmail(cfg.FromName, cfg.FromAddress),
	}
}

func (s *EmailSender) Send(ctx context.Context, recipient Recipient, payload Payload) error {
	if recipient.Email == "" {
		return Permanent(fmt.Errorf("%w: email", ErrNoAddress))
	}

	msg, err := s.renderer.Render(recipient, payload)
	if err != nil {
		return Permanent(err)
	}

	m := sgmail.NewSingleEmail(
		s.from,
		msg.Subject,
		sgmail.NewEmail(msg.ToName, msg.ToAddress),
		msg.Text,
		msg.HTML,
	)

	res, err := s.client.SendWithContext(ctx, m)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	switch {
	case res.StatusCode < http.StatusBadRequest:
		slog.DebugContext(ctx, "email accepted by provider",
			slog.String("event", "notification.email.accepted"),
			slog.String("reminder_id", payload.ReminderID),
			slog.Int("status", res.StatusCode),
		)

		return nil
	case res.StatusCode == http.StatusBadRequest || res.StatusCode == http.StatusRequestEntityTooLarge:
		return Permanent(fmt.Errorf("email rejected by provider: status %d: %s", res.StatusCode, res.Body))
	case res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusForbidden:
		// A revoked or under-scoped API key affects every email, not this
		// recipient; the notification stays retryable until it is fixed.
		slog.ErrorContext(ctx, "email provider refused credentials",
			slog.String("event", "notification.email.unauthorized"),
			slog.String("reminder_id", payload.ReminderID),
			slog.Int("status", res.StatusCode),
		)

		return fmt.Errorf("email provider refused credentials: status %d", res.StatusCode)
	default:
		return fmt.Errorf("email provider unavailable: status %d", res.StatusCode)
	}
}
