// Package metrics defines and registers all custom Prometheus metrics for the
// renovation-site backend. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default registry via promauto at package
// init; importing the package is enough.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "renov"

// LoginsTotal counts login attempts by outcome.
// Label:
//   - outcome: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"outcome"},
)

// ContactMessagesTotal counts contact-form submissions that were persisted.
var ContactMessagesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contact_messages_total",
		Help:      "Total number of contact messages created.",
	},
)

// TestimonialsCreatedTotal counts public testimonial submissions.
var TestimonialsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "testimonials_created_total",
		Help:      "Total number of testimonials submitted.",
	},
)

// TestimonialsModeratedTotal counts moderation decisions.
// Label:
//   - decision: "approved" or "rejected"
var TestimonialsModeratedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "testimonials_moderated_total",
		Help:      "Total number of testimonial moderation decisions.",
	},
	[]string{"decision"},
)

// NotificationsTotal counts owner-notification delivery attempts.
// Labels:
//   - channel: "webhook" or "email"
//   - outcome: "sent" or "failed"
var NotificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_total",
		Help:      "Total number of owner notification deliveries, by channel and outcome.",
	},
	[]string{"channel", "outcome"},
)
