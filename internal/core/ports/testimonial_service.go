package ports

import (
	"context"

	"github.com/rommelaere-renov/site-backend/internal/core/domain"
)

// TestimonialService handles public submissions and the admin moderation flow.
type TestimonialService interface {
	// Create inserts a public submission; the stored testimonial always
	// starts pending, whatever the caller sends.
	Create(ctx context.Context, in CreateTestimonialInput) (*domain.Testimonial, error)
	// ListApproved is the public listing.
	ListApproved(ctx context.Context) ([]domain.Testimonial, error)
	ListPending(ctx context.Context) ([]domain.Testimonial, error)
	Approve(ctx context.Context, id string) error
	Reject(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type CreateTestimonialInput struct {
	Name        string
	Title       string
	ProjectType string
	Rating      int
	Testimonial string
	ClientIP    string
}
