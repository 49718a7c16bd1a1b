package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"coldreach/internal/logger"
	"coldreach/internal/types"
)

// MessageGenerator produces one outreach message. *ai.Generator satisfies it.
type MessageGenerator interface {
	GenerateColdMessage(ctx context.Context, person, reason string) (string, error)
}

// APIHandler holds dependencies for API endpoints.
type APIHandler struct {
	generator MessageGenerator
	log       *logger.Logger
}

// NewAPIHandler initializes a new API handler with its dependencies.
func NewAPIHandler(gen MessageGenerator, log *logger.Logger) *APIHandler {
	return &APIHandler{
		generator: gen,
		log:       log,
	}
}

// POST /prompt
func (h *APIHandler) GeneratePrompt(c *gin.Context) {
	requestID := uuid.New().String()
	c.Header("X-Request-ID", requestID)
	log := h.log.With("request_id", requestID)

	var req types.PromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	log.Info("Received generation request", "person_len", len(req.PersonInput), "reason_len", len(req.ReasonInput))

	text, err := h.generator.GenerateColdMessage(c.Request.Context(), req.PersonInput, req.ReasonInput)
	if err != nil {
		log.Error("Error generating message", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate message"})
		return
	}

	log.Info("Generation successful", "text_len", len(text))
	c.JSON(http.StatusOK, types.PromptResponse{Data: &types.PromptData{Text: text}})
}

// GET /health
func (h *APIHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
