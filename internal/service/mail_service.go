package service

import (
	"fmt"

	"github.com/Paul-Briman/lumina-photography/internal/config"

	"gopkg.in/gomail.v2"
)

// Mailer dispatches outgoing account email.
type Mailer interface {
	SendPasswordResetEmail(to, resetURL string) error
}

// SMTPMailer sends mail through the configured SMTP relay. When no SMTP host
// is configured every send is a silent no-op, matching dev environments.
type SMTPMailer struct{}

func NewSMTPMailer() *SMTPMailer {
	return &SMTPMailer{}
}

func (m *SMTPMailer) SendPasswordResetEmail(to, resetURL string) error {
	cfg := config.Get()
	if cfg.SMTP.Host == "" {
		return nil
	}

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: auto; padding: 20px; border: 1px solid #ddd; border-radius: 8px; background-color: #f9f9f9;">
			<h2 style="color: #333; text-align: center;">Reset Your Lumina Password</h2>
			<p>Hello,</p>
			<p>We received a request to reset the password for your Lumina account. Click the button below to create a new password:</p>
			<p style="text-align: center;"><a href="%s" style="display: inline-block; padding: 12px 30px; background-color: #3B82F6; color: #fff; text-decoration: none; border-radius: 8px;">Reset Password</a></p>
			<p><strong>This link will expire in 1 hour.</strong> If you didn't request this, you can safely ignore this email.</p>
			<p style="word-break: break-all; background: #f3f4f6; padding: 10px; border-radius: 6px; font-size: 14px;">%s</p>
		</div>
	`, resetURL, resetURL)

	from := cfg.SMTP.From
	if from == "" {
		from = cfg.SMTP.Username
	}

	message := gomail.NewMessage()
	message.SetHeader("From", from)
	message.SetHeader("To", to)
	message.SetHeader("Subject", "Reset Your Lumina Password")
	message.SetBody("text/html", body)

	dialer := gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password)
	return dialer.DialAndSend(message)
}
