package domain

import (
	"errors"
	"time"
)

var ErrMessageNotFound = errors.New("contact message not found")
var ErrRateLimited = errors.New("too many submissions")

// ContactMessage is a public contact-form submission. IsRead is flipped by
// admins working through the inbox.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
