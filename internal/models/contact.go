package models

import "time"

// ContactMessage is a row of the contact_messages table.
type ContactMessage struct {
	MessageID string    `db:"message_id"`
	UserID    *string   `db:"user_id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Message   string    `db:"message"`
	CreatedAt time.Time `db:"created_at"`
}
