// internal/models/chat.go
package models

import "time"

// ChatTurn is a single utterance in a seller-chat transcript.
type ChatTurn struct {
	Role    ChatRole  `json:"role"`
	Content string    `json:"content"`
	At      time.Time `json:"at"`
}
