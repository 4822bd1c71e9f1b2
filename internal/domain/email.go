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

// WelcomeEmailData holds data for the first-registration welcome email.
type WelcomeEmailData struct {
	Email      string
	FirstName  string
	EventTitle string
}

// EmailService defines the contract for sending domain-level emails.
// Sending is best-effort: a failed email never fails the check-in.
type EmailService interface {
	SendWelcome(ctx context.Context, data *WelcomeEmailData) error
}
