package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"master-student-chatbot/internal/models"
)

const notProvided = "Not provided"

// NotificationSink delivers a formatted support ticket somewhere outside the process.
type NotificationSink interface {
	Name() string
	Deliver(ctx context.Context, ticket models.SupportTicket, subject, body string) error
}

type SupportNotifier struct {
	sinks  []NotificationSink
	logger *zap.Logger
	now    func() time.Time
}

func NewSupportNotifier(logger *zap.Logger, sinks ...NotificationSink) *SupportNotifier {
	return &SupportNotifier{
		sinks:  sinks,
		logger: logger,
		now:    time.Now,
	}
}

// Notify builds a ticket for the issue and hands it to every sink.
// It reports whether all sinks accepted the ticket and never panics.
func (n *SupportNotifier) Notify(ctx context.Context, user *models.UserProfile, issueText string) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			n.logger.Error("support notification panicked", zap.Any("panic", r))
			ok = false
		}
	}()

	ticket := newSupportTicket(user, issueText, n.now())
	subject := fmt.Sprintf("Support request: %s", ticket.StudentName)
	body := formatTicketBody(ticket)

	n.logger.Info("support ticket created",
		zap.String("ticket_id", ticket.ID),
		zap.String("student_name", ticket.StudentName),
		zap.String("student_email", ticket.StudentEmail),
		zap.String("school", ticket.School),
		zap.String("class", ticket.Class),
		zap.String("issue", ticket.IssueText))

	ok = true
	for _, sink := range n.sinks {
		if err := sink.Deliver(ctx, ticket, subject, body); err != nil {
			n.logger.Error("support ticket delivery failed",
				zap.String("ticket_id", ticket.ID),
				zap.String("sink", sink.Name()),
				zap.Error(err))
			ok = false
		}
	}
	return ok
}

func newSupportTicket(user *models.UserProfile, issueText string, now time.Time) models.SupportTicket {
	var profile models.UserProfile
	if user != nil {
		profile = *user
	}
	return models.SupportTicket{
		ID:           uuid.NewString(),
		StudentName:  orNotProvided(profile.FirstName),
		StudentEmail: orNotProvided(profile.Email),
		School:       orNotProvided(profile.School),
		Class:        orNotProvided(profile.Class),
		IssueText:    issueText,
		Timestamp:    now.UTC().Format(time.RFC3339),
	}
}

func formatTicketBody(t models.SupportTicket) string {
	var b strings.Builder
	b.WriteString("A student has reported a coins/payment issue.\n\n")
	fmt.Fprintf(&b, "Ticket ID:     %s\n", t.ID)
	fmt.Fprintf(&b, "Student Name:  %s\n", t.StudentName)
	fmt.Fprintf(&b, "Student Email: %s\n", t.StudentEmail)
	fmt.Fprintf(&b, "School:        %s\n", t.School)
	fmt.Fprintf(&b, "Class:         %s\n", t.Class)
	fmt.Fprintf(&b, "Reported At:   %s\n\n", t.Timestamp)
	b.WriteString("Issue:\n")
	b.WriteString(t.IssueText)
	b.WriteString("\n")
	return b.String()
}

func orNotProvided(s string) string {
	if strings.TrimSpace(s) == "" {
		return notProvided
	}
	return strings.TrimSpace(s)
}
