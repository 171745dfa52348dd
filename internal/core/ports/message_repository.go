package ports

import (
	"context"

	"github.com/rommelaere-renov/site-backend/internal/core/domain"
)

// MessageRepository persists contact-form submissions.
type MessageRepository interface {
	Create(ctx context.Context, m *domain.ContactMessage) (*domain.ContactMessage, error)
	List(ctx context.Context) ([]domain.ContactMessage, error)
	FindByID(ctx context.Context, id string) (*domain.ContactMessage, error)
	MarkAsRead(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
