package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/travelmate/booking-backend/internal/services"
)

// ChatRequest is the payload for the travel assistant endpoint
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// ChatResponse is the assistant's answer
type ChatResponse struct {
	Reply string `json:"reply"`
}

// AssistantHandler serves the canned travel assistant
type AssistantHandler struct {
	assistant *services.AssistantService
}

// NewAssistantHandler creates a new AssistantHandler
func NewAssistantHandler(assistant *services.AssistantService) *AssistantHandler {
	return &AssistantHandler{assistant: assistant}
}

// Chat handles POST /api/v1/assistant/chat
func (h *AssistantHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	c.JSON(http.StatusOK, ChatResponse{Reply: h.assistant.Reply(req.Message)})
}
