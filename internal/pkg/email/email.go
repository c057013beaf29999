package email

import (
	"fmt"
	"log/slog"
	"net/smtp"
	"time"

	"github.com/deeraj1899/EMS/internal/config"
)

const maxRetries = 3

// EmailService delivers the credential and notification mails the
// system generates. All bodies are plain text.
type EmailService interface {
	SendAdminCredentials(to, adminName, organizationName, password, adminCode string) error
	SendEmployeeCredentials(to, employeeName, organizationName, password string) error
	SendPromotionCode(to, employeeName, adminCode string) error
	SendTemporaryPassword(to, employeeName, tempPassword string) error
}

type emailServiceImpl struct {
	cfg config.SMTPConfig
}

func NewEmailService(cfg config.SMTPConfig) EmailService {
	return &emailServiceImpl{cfg: cfg}
}

func (s *emailServiceImpl) SendAdminCredentials(to, adminName, organizationName, password, adminCode string) error {
	body := fmt.Sprintf(
		"Hello %s,\n\nYour organization %q has been registered.\n\nLogin password: %s\nAdmin code: %s\n\nPlease change your password after first login.\n",
		adminName, organizationName, password, adminCode,
	)
	return s.send(to, fmt.Sprintf("Welcome to %s", organizationName), body)
}

func (s *emailServiceImpl) SendEmployeeCredentials(to, employeeName, organizationName, password string) error {
	body := fmt.Sprintf(
		"Hello %s,\n\nAn account has been created for you at %s.\n\nLogin password: %s\n\nPlease change your password after first login.\n",
		employeeName, organizationName, password,
	)
	return s.send(to, fmt.Sprintf("Your %s account", organizationName), body)
}

func (s *emailServiceImpl) SendPromotionCode(to, employeeName, adminCode string) error {
	body := fmt.Sprintf(
		"Hello %s,\n\nYou have been promoted to Manager.\n\nYour admin code: %s\n",
		employeeName, adminCode,
	)
	return s.send(to, "You have been promoted", body)
}

func (s *emailServiceImpl) SendTemporaryPassword(to, employeeName, tempPassword string) error {
	body := fmt.Sprintf(
		"Hello %s,\n\nYour new temporary password is: %s\n\nPlease change it after logging in.\n",
		employeeName, tempPassword,
	)
	return s.send(to, "Password Reset Request", body)
}

func (s *emailServiceImpl) send(to, subject, textBody string) error {
	// Skip sending if SMTP is not configured
	if s.cfg.Host == "" {
		slog.Warn("SMTP not configured, skipping email send", "to", to, "subject", subject)
		return nil
	}

	from := s.cfg.From

	headers := fmt.Sprintf("From: %s\r\n", from)
	headers += fmt.Sprintf("To: %s\r\n", to)
	headers += fmt.Sprintf("Subject: %s\r\n", subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += "Content-Type: text/plain; charset=\"UTF-8\"\r\n"
	headers += "\r\n"

	message := []byte(headers + textBody)

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := smtp.SendMail(addr, auth, from, []string{to}, message)
		if err == nil {
			slog.Info("Email sent successfully", "to", to, "subject", subject, "attempt", attempt)
			return nil
		}

		lastErr = err
		slog.Error("Failed to send email",
			"to", to,
			"subject", subject,
			"attempt", attempt,
			"max_retries", maxRetries,
			"error", err,
		)

		// Backoff: 1s, 2s, 4s.
		if attempt < maxRetries {
			time.Sleep(time.Duration(1<<(attempt-1)) * time.Second)
		}
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
