// Package notify delivers owner notifications out of band. Delivery is
// at-most-best-effort: a Connect-protocol webhook is tried first, with an
// SMTP fallback; failures are logged and counted, never surfaced to the
// request that triggered them.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/smtp"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/rommelaere-renov/site-backend/internal/api/metrics"
	"github.com/rommelaere-renov/site-backend/internal/core/ports"
)

const (
	queueBuffer     = 64
	deliveryTimeout = 15 * time.Second

	webhookPath = "webdevtoken.v1.WebDevService/SendNotification"
)

// Config carries the delivery endpoints. Either leg may be left blank; a
// blank leg is skipped.
type Config struct {
	WebhookURL string
	WebhookKey string

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	// EmailTo is the fallback recipient.
	EmailTo string
	// AppName labels the From header on fallback mail.
	AppName string
}

// Notifier queues payloads and delivers them on a background worker.
type Notifier struct {
	cfg    Config
	client *http.Client
	queue  chan ports.NotificationPayload
	log    zerolog.Logger
}

func New(cfg Config, log zerolog.Logger) *Notifier {
	return &Notifier{
		cfg:    cfg,
		client: &http.Client{Timeout: deliveryTimeout},
		queue:  make(chan ports.NotificationPayload, queueBuffer),
		log:    log,
	}
}

// Start launches the delivery worker. The worker stops when ctx is cancelled.
func (n *Notifier) Start(ctx context.Context) {
	go n.run(ctx)
}

// Notify enqueues a payload without blocking. When the queue is full the
// payload is dropped with a warning; the triggering request already
// succeeded and must not wait.
func (n *Notifier) Notify(payload ports.NotificationPayload) {
	payload, err := validatePayload(payload)
	if err != nil {
		n.log.Warn().Err(err).Msg("notification payload rejected")
		return
	}

	select {
	case n.queue <- payload:
	default:
		n.log.Warn().Str("title", payload.Title).Msg("notification queue full, dropping")
	}
}

func (n *Notifier) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case payload, ok := <-n.queue:
			if !ok {
				return
			}
			n.deliver(ctx, payload)
		}
	}
}

// deliver tries the webhook first and falls back to email on any failure.
func (n *Notifier) deliver(ctx context.Context, payload ports.NotificationPayload) {
	if n.cfg.WebhookURL != "" {
		if err := n.sendWebhook(ctx, payload); err == nil {
			metrics.NotificationsTotal.WithLabelValues("webhook", "sent").Inc()
			return
		} else {
			metrics.NotificationsTotal.WithLabelValues("webhook", "failed").Inc()
			n.log.Warn().Err(err).Msg("webhook notification failed, trying email fallback")
		}
	}

	if n.cfg.SMTPHost == "" || n.cfg.EmailTo == "" {
		return
	}
	if err := n.sendEmail(payload); err != nil {
		metrics.NotificationsTotal.WithLabelValues("email", "failed").Inc()
		n.log.Error().Err(err).Msg("fallback email failed")
		return
	}
	metrics.NotificationsTotal.WithLabelValues("email", "sent").Inc()
}

func (n *Notifier) sendWebhook(ctx context.Context, payload ports.NotificationPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, deliveryTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpointURL(), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+n.cfg.WebhookKey)
	req.Header.Set("Connect-Protocol-Version", "1")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("send webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("send webhook: unexpected status %s", resp.Status)
	}
	return nil
}

func (n *Notifier) endpointURL() string {
	base := n.cfg.WebhookURL
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + webhookPath
}

func (n *Notifier) sendEmail(payload ports.NotificationPayload) error {
	from := n.cfg.SMTPUser
	appName := n.cfg.AppName
	if appName == "" {
		appName = "Contact Form"
	}

	var msg bytes.Buffer
	fmt.Fprintf(&msg, "From: %q <%s>\r\n", appName, from)
	fmt.Fprintf(&msg, "To: %s\r\n", n.cfg.EmailTo)
	fmt.Fprintf(&msg, "Subject: %s\r\n", payload.Title)
	fmt.Fprintf(&msg, "\r\n%s\r\n", payload.Content)

	addr := fmt.Sprintf("%s:%d", n.cfg.SMTPHost, n.cfg.SMTPPort)
	auth := smtp.PlainAuth("", n.cfg.SMTPUser, n.cfg.SMTPPass, n.cfg.SMTPHost)
	if err := smtp.SendMail(addr, auth, from, []string{n.cfg.EmailTo}, msg.Bytes()); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

// validatePayload trims and bounds the payload before delivery is attempted.
func validatePayload(p ports.NotificationPayload) (ports.NotificationPayload, error) {
	p.Title = strings.TrimSpace(p.Title)
	p.Content = strings.TrimSpace(p.Content)

	if p.Title == "" {
		return p, fmt.Errorf("notification title is required")
	}
	if p.Content == "" {
		return p, fmt.Errorf("notification content is required")
	}
	if len(p.Title) > ports.NotificationTitleMaxLength {
		return p, fmt.Errorf("notification title exceeds %d characters", ports.NotificationTitleMaxLength)
	}
	if len(p.Content) > ports.NotificationContentMaxLength {
		return p, fmt.Errorf("notification content exceeds %d characters", ports.NotificationContentMaxLength)
	}
	return p, nil
}
