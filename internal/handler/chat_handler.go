// Package handler provides HTTP handlers for API endpoints.
package handler

import (
	"net/http"

	"aura-backend/internal/domain/session"
	"aura-backend/internal/services"
	"aura-backend/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

// ChatHandler handles the chat session endpoints.
type ChatHandler struct {
	service *services.ChatService
}

// NewChatHandler creates a chat handler.
func NewChatHandler(service *services.ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

// CreateSession handles POST /sessions.
func (h *ChatHandler) CreateSession(c *gin.Context) {
	var req httpdto.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("Text is required"))
		return
	}

	s, err := h.service.CreateSession(c.Request.Context(), req.Text)
	if err != nil {
		writeChatError(c, err, "Failed to create session")
		return
	}

	c.JSON(http.StatusCreated, httpdto.CreateSessionResponse{
		SessionID: s.ID.Hex(),
		Title:     s.Title,
		Messages:  toMessageDTOs(s.Messages),
		Timestamp: s.Timestamp,
	})
}

// AddMessage handles POST /sessions/:sessionId/messages.
func (h *ChatHandler) AddMessage(c *gin.Context) {
	sessionID := c.Param("sessionId")

	var req httpdto.AddMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("Text is required"))
		return
	}

	res, err := h.service.AddMessage(c.Request.Context(), sessionID, req.Text)
	if err != nil {
		writeChatError(c, err, "Failed to add message")
		return
	}

	c.JSON(http.StatusOK, httpdto.AddMessageResponse{
		Message:        toMessageDTO(res.Message),
		AIResponse:     toMessageDTO(res.AIResponse),
		UpdatedSession: toSessionDTO(res.UpdatedSession),
	})
}

// ListSessions handles GET /sessions.
func (h *ChatHandler) ListSessions(c *gin.Context) {
	sessions, err := h.service.ListSessions(c.Request.Context())
	if err != nil {
		writeChatError(c, err, "Failed to fetch sessions")
		return
	}

	result := make([]httpdto.SessionDTO, 0, len(sessions))
	for _, s := range sessions {
		result = append(result, toSessionDTO(s))
	}

	c.JSON(http.StatusOK, result)
}

// GetSession handles GET /sessions/:sessionId.
func (h *ChatHandler) GetSession(c *gin.Context) {
	s, err := h.service.GetSession(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		writeChatError(c, err, "Failed to fetch session")
		return
	}

	c.JSON(http.StatusOK, toSessionDTO(s))
}

// writeChatError maps a service error to the chat API's error contract.
// Unexpected errors surface as a generic message; the detail only reaches
// the logs via the gin error list.
func writeChatError(c *gin.Context, err error, fallback string) {
	switch status := services.HTTPStatus(err); status {
	case http.StatusBadRequest:
		c.JSON(status, httpdto.NewErrorResponse("Text is required"))
	case http.StatusNotFound:
		c.JSON(status, httpdto.NewErrorResponse("Session not found"))
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, httpdto.NewErrorResponse(fallback))
	}
}

func toMessageDTO(m session.Message) httpdto.MessageDTO {
	return httpdto.MessageDTO{
		ID:        m.ID,
		Text:      m.Text,
		IsUser:    m.IsUser,
		Timestamp: m.Timestamp,
	}
}

func toMessageDTOs(messages []session.Message) []httpdto.MessageDTO {
	result := make([]httpdto.MessageDTO, 0, len(messages))
	for _, m := range messages {
		result = append(result, toMessageDTO(m))
	}
	return result
}

func toSessionDTO(s session.Session) httpdto.SessionDTO {
	return httpdto.SessionDTO{
		ID:          s.ID.Hex(),
		Title:       s.Title,
		LastMessage: s.LastMessage,
		Timestamp:   s.Timestamp,
		Messages:    toMessageDTOs(s.Messages),
	}
}
