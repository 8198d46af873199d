package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"master-student-chatbot/internal/models"
	"master-student-chatbot/internal/services"
)

type stubChatService struct {
	resp    *models.ChatResponse
	err     error
	panics  bool
	lastReq *models.ChatRequest
}

func (s *stubChatService) Reply(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	if s.panics {
		panic("nil pointer in prompt builder")
	}
	s.lastReq = &req
	return s.resp, s.err
}

func (s *stubChatService) Suggestions() []string { return []string{"a", "b"} }

func (s *stubChatService) Health() models.HealthResponse {
	return models.HealthResponse{Status: "healthy", Service: services.ServiceName, Model: "m"}
}

func (s *stubChatService) Timestamp() string { return "2026-03-01T10:30:00Z" }

func postChat(h *ChatHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.Chat(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.NewDecoder(rr.Body).Decode(&out); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return out
}

func TestChatHandler_InvalidJSON(t *testing.T) {
	svc := &stubChatService{}
	h := NewChatHandler(svc, zap.NewNop())

	rr := postChat(h, `{"message":`)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}
	if got := decodeBody(t, rr)["error"]; got != "Message is required" {
		t.Fatalf("expected required error, got %v", got)
	}
	if svc.lastReq != nil {
		t.Fatalf("service should not be called for an unreadable body")
	}
}

func TestChatHandler_ValidationError(t *testing.T) {
	svc := &stubChatService{err: &services.ValidationError{Message: "Message cannot be empty"}}
	h := NewChatHandler(svc, zap.NewNop())

	rr := postChat(h, `{"message":"  "}`)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}
	body := decodeBody(t, rr)
	if body["error"] != "Message cannot be empty" {
		t.Fatalf("expected empty message error, got %v", body["error"])
	}
	if _, ok := body["message"]; ok {
		t.Fatalf("validation errors must not carry a message field")
	}
}

func TestChatHandler_InternalError(t *testing.T) {
	svc := &stubChatService{err: errors.New("unexpected")}
	h := NewChatHandler(svc, zap.NewNop())

	rr := postChat(h, `{"message":"hello"}`)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, rr.Code)
	}
	body := decodeBody(t, rr)
	if body["error"] != "Internal server error" || body["message"] != "Sorry, I encountered an error. Please try again." {
		t.Fatalf("unexpected error body: %v", body)
	}
}

func TestChatHandler_PanicBecomes500(t *testing.T) {
	h := NewChatHandler(&stubChatService{panics: true}, zap.NewNop())

	rr := postChat(h, `{"message":"hello"}`)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, rr.Code)
	}
	if decodeBody(t, rr)["message"] != "Sorry, I encountered an error. Please try again." {
		t.Fatalf("expected chat-specific error message")
	}
}

func TestChatHandler_PassesRequestThrough(t *testing.T) {
	svc := &stubChatService{resp: &models.ChatResponse{Response: "hi", Status: "success", Model: "m", Timestamp: "t"}}
	h := NewChatHandler(svc, zap.NewNop())

	rr := postChat(h, `{"message":"hi","user":{"firstName":"Ravi","class":"10"},"history":[{"role":"user","content":"earlier"}]}`)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if svc.lastReq == nil || svc.lastReq.Message == nil || *svc.lastReq.Message != "hi" {
		t.Fatalf("expected message to reach the service")
	}
	if svc.lastReq.User == nil || svc.lastReq.User.FirstName != "Ravi" || svc.lastReq.User.Class != "10" {
		t.Fatalf("expected user profile to be decoded, got %+v", svc.lastReq.User)
	}
	if len(svc.lastReq.History) != 1 || svc.lastReq.History[0].Content != "earlier" {
		t.Fatalf("expected history to be decoded, got %+v", svc.lastReq.History)
	}
	body := decodeBody(t, rr)
	if _, ok := body["support_email_sent"]; ok {
		t.Fatalf("support_email_sent should be omitted for normal replies")
	}
}

func TestNotFoundAndMethodNotAllowed(t *testing.T) {
	rr := httptest.NewRecorder()
	NotFound(rr, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if rr.Code != http.StatusNotFound || decodeBody(t, rr)["error"] != "Endpoint not found" {
		t.Fatalf("unexpected not found response: %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	MethodNotAllowed(rr, httptest.NewRequest(http.MethodDelete, "/chat", nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status %d, got %d", http.StatusMethodNotAllowed, rr.Code)
	}
}
