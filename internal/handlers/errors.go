package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"master-student-chatbot/internal/middleware"
	"master-student-chatbot/internal/models"
	"master-student-chatbot/internal/services"
)

const msgMessageRequired = "Message is required"

var chatInternalError = models.ErrorResponse{
	Error:   "Internal server error",
	Message: "Sorry, I encountered an error. Please try again.",
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResp(message string) models.ErrorResponse {
	return models.ErrorResponse{Error: message}
}

func (h *ChatHandler) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var vErr *services.ValidationError
	if errors.As(err, &vErr) {
		writeJSON(w, http.StatusBadRequest, errorResp(vErr.Message))
		return
	}

	h.logger.Error("chat endpoint error",
		zap.Error(err),
		zap.String("request_id", middleware.GetRequestID(r.Context())))
	writeJSON(w, http.StatusInternalServerError, chatInternalError)
}

func NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, errorResp("Endpoint not found"))
}

func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, errorResp("Method not allowed"))
}
