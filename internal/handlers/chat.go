package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"master-student-chatbot/internal/middleware"
	"master-student-chatbot/internal/models"
)

type chatService interface {
	Reply(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error)
	Suggestions() []string
	Health() models.HealthResponse
	Timestamp() string
}

type ChatHandler struct {
	chatbot chatService
	logger  *zap.Logger
}

func NewChatHandler(chatbot chatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		chatbot: chatbot,
		logger:  logger,
	}
}

func (h *ChatHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.chatbot.Health())
}

func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			h.logger.Error("chat endpoint panicked",
				zap.Any("panic", rec),
				zap.String("request_id", middleware.GetRequestID(r.Context())))
			writeJSON(w, http.StatusInternalServerError, chatInternalError)
		}
	}()

	// An unreadable body carries no message.
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp(msgMessageRequired))
		return
	}

	resp, err := h.chatbot.Reply(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *ChatHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.SuggestionsResponse{
		Suggestions: h.chatbot.Suggestions(),
		Timestamp:   h.chatbot.Timestamp(),
	})
}
