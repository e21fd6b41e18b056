package httpdto

import "time"

// CreateSessionRequest is used for POST /sessions
type CreateSessionRequest struct {
	Text string `json:"text"`
}

// AddMessageRequest is used for POST /sessions/:sessionId/messages
type AddMessageRequest struct {
	Text string `json:"text"`
}

// MessageDTO is one conversation turn as exposed to clients.
type MessageDTO struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	IsUser    bool      `json:"isUser"`
	Timestamp time.Time `json:"timestamp"`
}

// SessionDTO is a full session record as exposed to clients.
type SessionDTO struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	LastMessage string       `json:"lastMessage"`
	Timestamp   time.Time    `json:"timestamp"`
	Messages    []MessageDTO `json:"messages"`
}

// CreateSessionResponse is returned by POST /sessions
type CreateSessionResponse struct {
	SessionID string       `json:"sessionId"`
	Title     string       `json:"title"`
	Messages  []MessageDTO `json:"messages"`
	Timestamp time.Time    `json:"timestamp"`
}

// AddMessageResponse is returned by POST /sessions/:sessionId/messages
type AddMessageResponse struct {
	Message        MessageDTO `json:"message"`
	AIResponse     MessageDTO `json:"aiResponse"`
	UpdatedSession SessionDTO `json:"updatedSession"`
}
