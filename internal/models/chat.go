package models

// Chat turn roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatTurn represents a single message in a conversation.
type ChatTurn struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// UserProfile is the optional student profile sent by the client.
type UserProfile struct {
	FirstName string `json:"firstName,omitempty"`
	School    string `json:"school,omitempty"`
	Class     string `json:"class,omitempty"`
	Email     string `json:"email,omitempty"`
}

// ChatRequest is the payload sent to the chat endpoint.
// Message is a pointer so a missing key can be told apart from an empty string.
type ChatRequest struct {
	Message *string      `json:"message"`
	User    *UserProfile `json:"user,omitempty"`
	History []ChatTurn   `json:"history,omitempty"`
}

// ChatResponse is the reply from the chatbot.
type ChatResponse struct {
	Response         string `json:"response"`
	Timestamp        string `json:"timestamp"`
	Status           string `json:"status"`
	Model            string `json:"model"`
	SupportEmailSent *bool  `json:"support_email_sent,omitempty"`
}

type SuggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
	Timestamp   string   `json:"timestamp"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
	Model     string `json:"model"`
}
