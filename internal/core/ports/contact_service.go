package ports

import (
	"context"

	"github.com/rommelaere-renov/site-backend/internal/core/domain"
)

// ContactService handles the public contact form and the admin inbox.
type ContactService interface {
	// CreateMessage persists a public submission and triggers a best-effort
	// owner notification. ClientIP feeds the submission rate limit.
	CreateMessage(ctx context.Context, in CreateMessageInput) (*domain.ContactMessage, error)
	GetMessages(ctx context.Context) ([]domain.ContactMessage, error)
	GetMessageByID(ctx context.Context, id string) (*domain.ContactMessage, error)
	MarkAsRead(ctx context.Context, id string) error
	DeleteMessage(ctx context.Context, id string) error
}

type CreateMessageInput struct {
	Name     string
	Email    string
	Phone    string
	Subject  string
	Message  string
	ClientIP string
}
