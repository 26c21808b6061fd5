package services

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/cirilocodes/noelles-group/internal/config"
	"github.com/cirilocodes/noelles-group/internal/models"
	"github.com/cirilocodes/noelles-group/pkg/logger"
)

// Mailer delivers a single message. The SMTP implementation is swapped
// for a fake in handler tests.
type Mailer interface {
	Send(to, subject, htmlBody, textBody string) error
}

// Mail is the process-wide mailer used by NotifySubmission.
var Mail Mailer = &smtpMailer{}

type smtpMailer struct{}

func (m *smtpMailer) Send(to, subject, htmlBody, textBody string) error {
	cfg := config.AppConfig
	if cfg.SMTPUser == "" || cfg.SMTPPassword == "" {
		logger.Warn().Msg("Email credentials not configured, notification skipped")
		return nil
	}

	host := cfg.SMTPHost
	port := cfg.SMTPPort
	if port == "" {
		port = "587"
	}

	auth := smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPassword, host)
	addr := fmt.Sprintf("%s:%s", host, port)
	boundary := "----=_NOELLES_EMAIL_BOUNDARY"

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s\r\n", cfg.SMTPUser))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", to))
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", sanitizeHeader(subject)))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString(fmt.Sprintf("Content-Type: multipart/alternative; boundary=\"%s\"\r\n\r\n", boundary))

	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	sb.WriteString(textBody + "\r\n")

	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/html; charset=utf-8\r\n\r\n")
	sb.WriteString(htmlBody + "\r\n")

	sb.WriteString(fmt.Sprintf("--%s--\r\n", boundary))

	return smtp.SendMail(addr, auth, cfg.SMTPUser, []string{to}, []byte(sb.String()))
}

// sanitizeHeader strips CRLF so submitter-provided text cannot inject
// extra mail headers.
func sanitizeHeader(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.TrimSpace(s)
}

// NotifySubmission sends a formatted notification to the operator address.
// Delivery is fire-and-forget: it runs on its own goroutine, failures are
// logged with enough context to reproduce and never retried, and the
// caller's response does not depend on the outcome.
func NotifySubmission(subject, htmlBody, textBody string) {
	to := config.AppConfig.NotifyEmail
	if to == "" {
		logger.Warn().Str("subject", subject).Msg("NOTIFY_EMAIL not configured, notification skipped")
		return
	}

	go func() {
		if err := Mail.Send(to, subject, htmlBody, textBody); err != nil {
			logger.Error().
				Err(err).
				Str("recipient", to).
				Str("subject", subject).
				Msg("Failed to send notification email")
			return
		}
		logger.Info().Str("recipient", to).Str("subject", subject).Msg("Notification email sent")
	}()
}

// --- Notification templates ---

func field(label, value string) string {
	if value == "" {
		value = "Not specified"
	}
	return fmt.Sprintf("<p><strong>%s:</strong> %s</p>", label, value)
}

func textField(label, value string) string {
	if value == "" {
		value = "Not specified"
	}
	return fmt.Sprintf("%s: %s\n", label, value)
}

func ContactNotification(c *models.ContactSubmission) (subject, html, text string) {
	subject = fmt.Sprintf("New Contact Message - %s", c.Subject)
	html = "<h2>New Contact Message</h2>" +
		field("Name", c.Name) +
		field("Email", c.Email) +
		field("Company", c.Company) +
		field("Phone", c.Phone) +
		field("Subject", c.Subject) +
		"<p><strong>Message:</strong></p><p>" + c.Message + "</p>"
	text = "New Contact Message\n\n" +
		textField("Name", c.Name) +
		textField("Email", c.Email) +
		textField("Company", c.Company) +
		textField("Phone", c.Phone) +
		textField("Subject", c.Subject) +
		"Message:\n" + c.Message + "\n"
	return subject, html, text
}

func EarlyAccessNotification(r *models.EarlyAccessRequest) (subject, html, text string) {
	subject = fmt.Sprintf("New Early Access Request - %s", r.Name)
	html = "<h2>New Early Access Request</h2>" +
		field("Name", r.Name) +
		field("Email", r.Email) +
		field("Company", r.Company) +
		field("Phone", r.Phone) +
		"<p><strong>Message:</strong></p><p>" + r.Message + "</p>"
	text = "New Early Access Request\n\n" +
		textField("Name", r.Name) +
		textField("Email", r.Email) +
		textField("Company", r.Company) +
		textField("Phone", r.Phone) +
		"Message:\n" + r.Message + "\n"
	return subject, html, text
}

func BookingNotification(b *models.Booking) (subject, html, text string) {
	subject = fmt.Sprintf("New Project Booking - %s", b.ServiceType)
	html = "<h2>New Project Booking Received</h2>" +
		field("Name", b.Name) +
		field("Email", b.Email) +
		field("Country", b.Country) +
		field("Phone", b.Phone) +
		field("Service Type", b.ServiceType) +
		"<p><strong>Project Details:</strong></p><p>" + b.ProjectDetails + "</p>"
	text = "New Project Booking Received\n\n" +
		textField("Name", b.Name) +
		textField("Email", b.Email) +
		textField("Country", b.Country) +
		textField("Phone", b.Phone) +
		textField("Service Type", b.ServiceType) +
		"Project Details:\n" + b.ProjectDetails + "\n"
	return subject, html, text
}

func ReviewNotification(r *models.Review) (subject, html, text string) {
	subject = fmt.Sprintf("New Customer Review - %d Stars", r.Rating)
	html = "<h2>New Customer Review Received</h2>" +
		field("Name", r.Name) +
		field("Email", r.Email) +
		field("Rating", fmt.Sprintf("%d/5 stars", r.Rating)) +
		field("Service Used", r.ServiceUsed) +
		"<p><strong>Review:</strong></p><p>" + r.Message + "</p>" +
		"<p><em>Note: Review needs approval before appearing on the website.</em></p>"
	text = "New Customer Review Received\n\n" +
		textField("Name", r.Name) +
		textField("Email", r.Email) +
		textField("Rating", fmt.Sprintf("%d/5 stars", r.Rating)) +
		textField("Service Used", r.ServiceUsed) +
		"Review:\n" + r.Message + "\n"
	return subject, html, text
}
