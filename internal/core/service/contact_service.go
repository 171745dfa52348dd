package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/rommelaere-renov/site-backend/internal/core/domain"
	"github.com/rommelaere-renov/site-backend/internal/core/ports"
)

// SubmissionLimiter abstracts the per-IP rate limit on public form
// submissions (Redis).
type SubmissionLimiter interface {
	Allow(ctx context.Context, scope, clientIP string) (bool, error)
}

// Notifier delivers owner notifications out of band. Enqueue must never
// block the caller; delivery is at-most-best-effort.
type Notifier interface {
	Notify(payload ports.NotificationPayload)
}

const limitScopeContact = "contact"

// ContactService handles public contact-form submissions and the admin inbox.
type ContactService struct {
	messages ports.MessageRepository
	limiter  SubmissionLimiter
	notifier Notifier
	log      zerolog.Logger
}

func NewContactService(messages ports.MessageRepository, limiter SubmissionLimiter, notifier Notifier, log zerolog.Logger) *ContactService {
	return &ContactService{messages: messages, limiter: limiter, notifier: notifier, log: log}
}

// CreateMessage rate-limits, persists, then notifies the owner. The
// notification leg can never fail the call: the message is already stored.
func (s *ContactService) CreateMessage(ctx context.Context, in ports.CreateMessageInput) (*domain.ContactMessage, error) {
	if err := s.checkLimit(ctx, limitScopeContact, in.ClientIP); err != nil {
		return nil, err
	}

	created, err := s.messages.Create(ctx, &domain.ContactMessage{
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Subject:   in.Subject,
		Message:   in.Message,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}

	s.log.Info().Str("message_id", created.ID).Str("subject", created.Subject).Msg("contact message received")

	if s.notifier != nil {
		s.notifier.Notify(contactNotification(created))
	}

	return created, nil
}

// checkLimit fails open: a limiter outage must not take the contact form down.
func (s *ContactService) checkLimit(ctx context.Context, scope, clientIP string) error {
	if s.limiter == nil || clientIP == "" {
		return nil
	}
	allowed, err := s.limiter.Allow(ctx, scope, clientIP)
	if err != nil {
		s.log.Warn().Err(err).Str("scope", scope).Msg("rate limiter unavailable, allowing submission")
		return nil
	}
	if !allowed {
		return domain.ErrRateLimited
	}
	return nil
}

func (s *ContactService) GetMessages(ctx context.Context) ([]domain.ContactMessage, error) {
	return s.messages.List(ctx)
}

func (s *ContactService) GetMessageByID(ctx context.Context, id string) (*domain.ContactMessage, error) {
	return s.messages.FindByID(ctx, id)
}

func (s *ContactService) MarkAsRead(ctx context.Context, id string) error {
	return s.messages.MarkAsRead(ctx, id)
}

func (s *ContactService) DeleteMessage(ctx context.Context, id string) error {
	return s.messages.Delete(ctx, id)
}

// contactNotification renders the owner notification for a new message.
func contactNotification(m *domain.ContactMessage) ports.NotificationPayload {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s <%s>\n", m.Name, m.Email)
	if m.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", m.Phone)
	}
	fmt.Fprintf(&b, "\n%s\n", m.Message)

	return ports.NotificationPayload{
		Title:   "New contact message: " + m.Subject,
		Content: b.String(),
	}
}
