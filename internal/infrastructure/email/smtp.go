package email

import (
	"context"
	"fmt"
	"html"

	"gopkg.in/gomail.v2"

	"issuetracker/internal/domain/project"
	"issuetracker/internal/domain/user"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	BaseURL     string // Base URL for email links (e.g., "http://localhost:8080")
}

// Sender delivers one message. gomail.Dialer satisfies it.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPAssignmentNotifier emails users when they are added to a project.
type SMTPAssignmentNotifier struct {
	config SMTPConfig
	sender Sender
}

func NewSMTPAssignmentNotifier(config SMTPConfig) *SMTPAssignmentNotifier {
	return NewAssignmentNotifierWithSender(config,
		gomail.NewDialer(config.Host, config.Port, config.Username, config.Password))
}

func NewAssignmentNotifierWithSender(config SMTPConfig, sender Sender) *SMTPAssignmentNotifier {
	return &SMTPAssignmentNotifier{
		config: config,
		sender: sender,
	}
}

func (s *SMTPAssignmentNotifier) NotifyAssigned(ctx context.Context, assignee *user.User, p *project.Project) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	projectURL := fmt.Sprintf("%s/api/projects/%d", s.config.BaseURL, p.ID())
	subject := fmt.Sprintf("You were added to %s", p.Name())

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Hello %s,</h2>
			<p>You have been assigned to the project <strong>%s</strong>.</p>
			<p><a href="%s">Open the project</a></p>
		</body>
		</html>
	`, html.EscapeString(assignee.FullName()), html.EscapeString(p.Name()), projectURL)

	plainBody := fmt.Sprintf(`
Hello %s,

You have been assigned to the project %s.

%s
	`, assignee.FullName(), p.Name(), projectURL)

	return s.sendEmail(assignee.Email().String(), subject, htmlBody, plainBody)
}

func (s *SMTPAssignmentNotifier) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.sender.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// NoopAssignmentNotifier is used when email is disabled.
type NoopAssignmentNotifier struct{}

func (NoopAssignmentNotifier) NotifyAssigned(ctx context.Context, assignee *user.User, p *project.Project) error {
	return nil
}
