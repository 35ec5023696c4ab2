package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"

	"go-jobboard-backend/config"
)

// EmailService handles sending emails via SMTP
type EmailService struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
	toEmail   string
}

// ContactEmailData holds the data for contact form emails
type ContactEmailData struct {
	SenderName  string
	SenderEmail string
	Subject     string
	Message     string
}

// PasswordResetEmailData holds the data for password-reset emails
type PasswordResetEmailData struct {
	Username string
	ResetURL string
}

func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		fromEmail: cfg.SMTPFromEmail,
		toEmail:   cfg.ContactEmailTo,
	}
}

const contactEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Contact Form Submission</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #1d4ed8; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .field { margin-bottom: 15px; }
        .label { font-weight: bold; color: #555; }
        .message-box { background: white; padding: 15px; border-left: 4px solid #1d4ed8; margin-top: 10px; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header"><h1>New Contact Form Submission</h1></div>
        <div class="content">
            <div class="field">
                <div class="label">From:</div>
                <div>{{.SenderName}} ({{.SenderEmail}})</div>
            </div>
            <div class="field">
                <div class="label">Subject:</div>
                <div>{{.Subject}}</div>
            </div>
            <div class="field">
                <div class="label">Message:</div>
                <div class="message-box">{{.Message}}</div>
            </div>
        </div>
        <div class="footer">
            <p>This email was sent from the job board contact form.</p>
            <p>To reply, send an email to: {{.SenderEmail}}</p>
        </div>
    </div>
</body>
</html>`

const passwordResetEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Password Reset</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .button { display: inline-block; background: #1d4ed8; color: white; padding: 12px 24px; text-decoration: none; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <h2>Hi {{.Username}},</h2>
        <p>We received a request to reset your password. Click the button below to choose a new one.</p>
        <p><a class="button" href="{{.ResetURL}}">Reset Password</a></p>
        <p>If you did not request a reset, you can safely ignore this email.</p>
        <div class="footer"><p>This link expires in 30 minutes.</p></div>
    </div>
</body>
</html>`

// SendContactEmail sends a contact form email to the configured recipient
func (s *EmailService) SendContactEmail(data ContactEmailData) error {
	body, err := renderTemplate("contact", contactEmailTemplate, data)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Contact Form: %s", data.Subject)
	return s.send(s.toEmail, data.SenderEmail, subject, body)
}

// SendPasswordResetEmail sends a reset link to the given address
func (s *EmailService) SendPasswordResetEmail(to string, data PasswordResetEmailData) error {
	body, err := renderTemplate("password_reset", passwordResetEmailTemplate, data)
	if err != nil {
		return err
	}

	return s.send(to, s.fromEmail, "Reset your password", body)
}

func renderTemplate(name, text string, data interface{}) (string, error) {
	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		return "", fmt.Errorf("failed to parse email template: %w", err)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", fmt.Errorf("failed to execute email template: %w", err)
	}
	return body.String(), nil
}

func (s *EmailService) send(to, replyTo, subject, htmlBody string) error {
	msg := []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Reply-To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		s.fromEmail, to, replyTo, subject, htmlBody,
	))

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	if err := smtp.SendMail(addr, auth, s.fromEmail, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// IsConfigured checks if the email service has valid SMTP configuration
func (s *EmailService) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}
