package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/rommelaere-renov/site-backend/internal/core/domain"
	"github.com/rommelaere-renov/site-backend/internal/core/ports"
)

const limitScopeTestimonial = "testimonial"

// TestimonialService handles public testimonial submissions and the admin
// moderation workflow.
type TestimonialService struct {
	testimonials ports.TestimonialRepository
	limiter      SubmissionLimiter
	log          zerolog.Logger
}

func NewTestimonialService(testimonials ports.TestimonialRepository, limiter SubmissionLimiter, log zerolog.Logger) *TestimonialService {
	return &TestimonialService{testimonials: testimonials, limiter: limiter, log: log}
}

// Create inserts a public submission. Whatever status the client claims, the
// stored testimonial starts pending.
func (s *TestimonialService) Create(ctx context.Context, in ports.CreateTestimonialInput) (*domain.Testimonial, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, domain.ErrInvalidRating
	}

	if s.limiter != nil && in.ClientIP != "" {
		allowed, err := s.limiter.Allow(ctx, limitScopeTestimonial, in.ClientIP)
		if err != nil {
			s.log.Warn().Err(err).Msg("rate limiter unavailable, allowing submission")
		} else if !allowed {
			return nil, domain.ErrRateLimited
		}
	}

	now := time.Now().UTC()
	created, err := s.testimonials.Create(ctx, &domain.Testimonial{
		Name:        in.Name,
		Title:       in.Title,
		ProjectType: in.ProjectType,
		Rating:      in.Rating,
		Testimonial: in.Testimonial,
		Status:      domain.TestimonialPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, fmt.Errorf("create testimonial: %w", err)
	}

	s.log.Info().Str("testimonial_id", created.ID).Int("rating", created.Rating).Msg("testimonial submitted")
	return created, nil
}

func (s *TestimonialService) ListApproved(ctx context.Context) ([]domain.Testimonial, error) {
	return s.testimonials.ListByStatus(ctx, domain.TestimonialApproved)
}

func (s *TestimonialService) ListPending(ctx context.Context) ([]domain.Testimonial, error) {
	return s.testimonials.ListByStatus(ctx, domain.TestimonialPending)
}

func (s *TestimonialService) Approve(ctx context.Context, id string) error {
	return s.moderate(ctx, id, domain.TestimonialApproved)
}

func (s *TestimonialService) Reject(ctx context.Context, id string) error {
	return s.moderate(ctx, id, domain.TestimonialRejected)
}

// Delete is allowed from any moderation state.
func (s *TestimonialService) Delete(ctx context.Context, id string) error {
	return s.testimonials.Delete(ctx, id)
}

func (s *TestimonialService) moderate(ctx context.Context, id string, next domain.TestimonialStatus) error {
	t, err := s.testimonials.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !t.Status.CanTransitionTo(next) {
		return fmt.Errorf("moderate testimonial: %w (from %s to %s)", domain.ErrInvalidTransition, t.Status, next)
	}
	if err := s.testimonials.UpdateStatus(ctx, id, next); err != nil {
		return err
	}
	s.log.Info().Str("testimonial_id", id).Str("status", string(next)).Msg("testimonial moderated")
	return nil
}
