package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"master-student-chatbot/internal/models"
)

const (
	ServiceName   = "Master Student Chatbot (Gemini)"
	StatusSuccess = "success"

	historyWindow = 5
	defaultName   = "Student"
	assistantName = "Master Student"
)

const systemPrompt = `You are Master Student, an AI assistant for the Student Notes Marketplace platform.
You help students with:
- Finding and downloading study notes
- Understanding subjects and topics
- Guidance on uploading their own notes
- Academic advice and study tips
- Platform navigation and features

Keep responses helpful, friendly, and focused on education.
Always encourage learning and academic excellence.
Limit responses to 150 words for better user experience.
Use simple language that students can easily understand.`

var suggestions = []string{
	"How do I find notes for my subject?",
	"How can I upload and earn from my notes?",
	"What subjects are available on the platform?",
	"How do I download notes?",
	"Can you give me study tips for exams?",
	"How does the earning system work?",
	"Which subjects are most popular?",
	"How do I improve my study habits?",
}

// Notifier dispatches a support ticket and reports whether it went out.
type Notifier interface {
	Notify(ctx context.Context, user *models.UserProfile, issueText string) bool
}

// Chatbot answers chat requests. It holds no per-request state and is safe for concurrent use.
type Chatbot struct {
	generator    Generator
	notifier     Notifier
	model        string
	supportEmail string
	logger       *zap.Logger
	now          func() time.Time
}

// NewChatbot wires the orchestrator. A nil generator means every normal reply is fallback text.
func NewChatbot(generator Generator, notifier Notifier, model, supportEmail string, logger *zap.Logger) *Chatbot {
	if generator != nil {
		model = generator.Model()
	}
	return &Chatbot{
		generator:    generator,
		notifier:     notifier,
		model:        model,
		supportEmail: supportEmail,
		logger:       logger,
		now:          time.Now,
	}
}

func (c *Chatbot) Model() string { return c.model }

// Timestamp returns the current time in ISO-8601 form.
func (c *Chatbot) Timestamp() string {
	return c.now().Format(time.RFC3339)
}

func (c *Chatbot) Suggestions() []string {
	out := make([]string, len(suggestions))
	copy(out, suggestions)
	return out
}

func (c *Chatbot) Health() models.HealthResponse {
	return models.HealthResponse{
		Status:    "healthy",
		Timestamp: c.Timestamp(),
		Service:   ServiceName,
		Model:     c.model,
	}
}

// Reply validates the request and answers it through the support or the generation branch.
// The only error it returns is *ValidationError; upstream failures are replaced by fallback text.
func (c *Chatbot) Reply(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	if req.Message == nil {
		return nil, &ValidationError{Message: "Message is required"}
	}
	message := strings.TrimSpace(*req.Message)
	if message == "" {
		return nil, &ValidationError{Message: "Message cannot be empty"}
	}

	resp := &models.ChatResponse{
		Status: StatusSuccess,
		Model:  c.model,
	}

	if IsSupportIssue(message) {
		resp.Response, resp.SupportEmailSent = c.supportReply(ctx, req.User, message)
	} else {
		resp.Response = c.generate(ctx, message, req.User, req.History)
	}

	resp.Timestamp = c.Timestamp()
	return resp, nil
}

func (c *Chatbot) supportReply(ctx context.Context, user *models.UserProfile, message string) (string, *bool) {
	reply := supportReply(displayName(user))

	sent := false
	if c.notifier != nil {
		sent = c.notifier.Notify(ctx, user, message)
	}

	if user == nil {
		return reply, nil
	}
	if sent {
		reply += "\n\n" + supportConfirmation(c.supportEmail)
	}
	return reply, &sent
}

func (c *Chatbot) generate(ctx context.Context, message string, user *models.UserProfile, history []models.ChatTurn) string {
	if c.generator == nil {
		return Fallback(message)
	}

	text, err := c.generator.Generate(ctx, buildPrompt(message, user, history), DefaultGenerationOptions)
	if err != nil {
		c.logger.Warn("generation failed, using fallback reply",
			zap.Bool("empty_response", errors.Is(err, ErrEmptyResponse)),
			zap.Error(err))
		return Fallback(message)
	}
	return text
}

func buildPrompt(message string, user *models.UserProfile, history []models.ChatTurn) string {
	var b strings.Builder
	b.WriteString(systemPrompt)
	b.WriteString("\n\n")

	if info := userInfoLine(user); info != "" {
		b.WriteString(info)
		b.WriteString("\n\n")
	}

	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}
	for _, turn := range history {
		role := assistantName
		if turn.Role == models.RoleUser {
			role = defaultName
		}
		b.WriteString(role)
		b.WriteString(": ")
		b.WriteString(turn.Content)
		b.WriteString("\n")
	}

	b.WriteString(displayName(user))
	b.WriteString(": ")
	b.WriteString(message)
	b.WriteString("\n")
	b.WriteString(assistantName)
	b.WriteString(":")
	return b.String()
}

// userInfoLine renders "USER INFO: name[ from school][ (Class X)]", or "" when nothing is known.
func userInfoLine(user *models.UserProfile) string {
	if user == nil {
		return ""
	}
	school := strings.TrimSpace(user.School)
	class := strings.TrimSpace(user.Class)
	if strings.TrimSpace(user.FirstName) == "" && school == "" && class == "" {
		return ""
	}

	line := "USER INFO: " + displayName(user)
	if school != "" {
		line += " from " + school
	}
	if class != "" {
		line += " (Class " + class + ")"
	}
	return line
}

func displayName(user *models.UserProfile) string {
	if user == nil {
		return defaultName
	}
	if name := strings.TrimSpace(user.FirstName); name != "" {
		return name
	}
	return defaultName
}
