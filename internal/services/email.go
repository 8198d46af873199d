package services

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"go.uber.org/zap"

	"master-student-chatbot/internal/models"
)

// EmailService sends support tickets to the support mailbox.
// Without SMTP credentials it runs in dev mode and only logs the mail.
type EmailService struct {
	host    string
	port    string
	user    string
	pass    string
	from    string
	to      string
	devMode bool
	logger  *zap.Logger
	send    func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewEmailService(host, port, user, pass, from, to string, logger *zap.Logger) *EmailService {
	devMode := host == "" || user == ""
	if devMode {
		logger.Warn("email service running in dev mode, support tickets are logged only")
	}
	return &EmailService{
		host:    host,
		port:    port,
		user:    user,
		pass:    pass,
		from:    from,
		to:      to,
		devMode: devMode,
		logger:  logger,
		send:    smtp.SendMail,
	}
}

func (s *EmailService) Name() string { return "email" }

func (s *EmailService) Deliver(ctx context.Context, ticket models.SupportTicket, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.sendPlain(s.to, subject, body, ticket.StudentEmail)
}

func (s *EmailService) sendPlain(to, subject, body, replyTo string) error {
	if s.devMode {
		s.logger.Info("dev email",
			zap.String("to", to),
			zap.String("subject", subject),
			zap.String("body", body))
		return nil
	}

	headers := []string{
		fmt.Sprintf("From: %s", s.from),
		fmt.Sprintf("To: %s", to),
		fmt.Sprintf("Subject: %s", subject),
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=UTF-8",
	}
	if strings.Contains(replyTo, "@") {
		headers = append(headers, fmt.Sprintf("Reply-To: %s", replyTo))
	}

	message := strings.Join(headers, "\r\n") + "\r\n\r\n" + body

	auth := smtp.PlainAuth("", s.user, s.pass, s.host)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)

	if err := s.send(addr, auth, s.from, []string{to}, []byte(message)); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}

	s.logger.Info("email sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}
