// Package session defines the chat session documents persisted in the store.
package session

import (
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Session is one persisted conversation. Messages are embedded in the
// document; their slice order is the conversation order.
type Session struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	LastMessage string             `bson:"lastMessage" json:"lastMessage"`
	Timestamp   time.Time          `bson:"timestamp" json:"timestamp"`
	Messages    []Message          `bson:"messages" json:"messages"`
}

// Message is a single turn, tagged as user- or assistant-origin.
type Message struct {
	ID        string    `bson:"id" json:"id"`
	Text      string    `bson:"text" json:"text"`
	IsUser    bool      `bson:"isUser" json:"isUser"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

func NewUserMessage(text string) Message {
	return Message{
		ID:        uuid.NewString(),
		Text:      text,
		IsUser:    true,
		Timestamp: time.Now(),
	}
}

func NewAssistantMessage(text string) Message {
	return Message{
		ID:        uuid.NewString(),
		Text:      text,
		IsUser:    false,
		Timestamp: time.Now(),
	}
}
