package domain

import (
	"errors"
	"time"
)

// TestimonialStatus represents the moderation state of a testimonial.
type TestimonialStatus string

const (
	TestimonialPending  TestimonialStatus = "pending"
	TestimonialApproved TestimonialStatus = "approved"
	TestimonialRejected TestimonialStatus = "rejected"
)

// validModeration defines the allowed moderation transitions. Deletion is not
// a transition; it is allowed from any state.
var validModeration = map[TestimonialStatus][]TestimonialStatus{
	TestimonialPending: {TestimonialApproved, TestimonialRejected},
}

var ErrInvalidTransition = errors.New("invalid moderation transition")
var ErrTestimonialNotFound = errors.New("testimonial not found")
var ErrInvalidRating = errors.New("rating must be between 1 and 5")

// CanTransitionTo reports whether a moderation move from s to next is valid.
func (s TestimonialStatus) CanTransitionTo(next TestimonialStatus) bool {
	for _, allowed := range validModeration[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Testimonial is a customer review. Public submissions always start pending
// and only surface on the site once approved.
type Testimonial struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Title       string            `json:"title,omitempty"`
	ProjectType string            `json:"project_type,omitempty"`
	Rating      int               `json:"rating"`
	Testimonial string            `json:"testimonial"`
	Status      TestimonialStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}
