package ports

import (
	"context"

	"github.com/rommelaere-renov/site-backend/internal/core/domain"
)

// TestimonialRepository persists customer testimonials.
type TestimonialRepository interface {
	Create(ctx context.Context, t *domain.Testimonial) (*domain.Testimonial, error)
	FindByID(ctx context.Context, id string) (*domain.Testimonial, error)
	ListByStatus(ctx context.Context, status domain.TestimonialStatus) ([]domain.Testimonial, error)
	UpdateStatus(ctx context.Context, id string, status domain.TestimonialStatus) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
