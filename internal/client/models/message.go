package models

import "time"

// Role is the author of a chat message.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Message is one assistant chat entry. Messages are append-only.
type Message struct {
	ID        string
	Role      Role
	Text      string
	CreatedAt time.Time
}
