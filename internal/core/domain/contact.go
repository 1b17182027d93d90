package domain

import "time"

// ContactMessage is a message a signed-in customer left for the shop.
type ContactMessage struct {
	MessageID string    `json:"messageId"`
	UserID    string    `json:"userId,omitempty"` // empty once the account is deleted
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
