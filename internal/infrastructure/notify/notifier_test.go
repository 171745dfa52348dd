package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/rommelaere-renov/site-backend/internal/core/ports"
)

func TestNotifier_WebhookDelivery(t *testing.T) {
	type received struct {
		payload ports.NotificationPayload
		path    string
		auth    string
		proto   string
	}
	got := make(chan received, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var p ports.NotificationPayload
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		got <- received{
			payload: p,
			path:    r.URL.Path,
			auth:    r.Header.Get("Authorization"),
			proto:   r.Header.Get("Connect-Protocol-Version"),
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	n := New(Config{WebhookURL: srv.URL, WebhookKey: "hook-key"}, zerolog.Nop())
	n.Start(ctx)
	n.Notify(ports.NotificationPayload{Title: "New contact message: Quote", Content: "From: Jan"})

	select {
	case r := <-got:
		if r.payload.Title != "New contact message: Quote" {
			t.Fatalf("unexpected title %q", r.payload.Title)
		}
		if !strings.HasSuffix(r.path, "/webdevtoken.v1.WebDevService/SendNotification") {
			t.Fatalf("unexpected path %q", r.path)
		}
		if r.auth != "Bearer hook-key" {
			t.Fatalf("unexpected authorization header %q", r.auth)
		}
		if r.proto != "1" {
			t.Fatalf("unexpected connect protocol version %q", r.proto)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("webhook never received the notification")
	}
}

func TestNotifier_WebhookNon2xxIsFailure(t *testing.T) {
	hits := make(chan struct{}, 2)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits <- struct{}{}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// No SMTP fallback configured: a failing webhook is dropped quietly.
	n := New(Config{WebhookURL: srv.URL}, zerolog.Nop())
	n.Start(ctx)
	n.Notify(ports.NotificationPayload{Title: "t", Content: "c"})

	select {
	case <-hits:
	case <-time.After(5 * time.Second):
		t.Fatalf("webhook never hit")
	}
}

func TestNotifier_RejectsInvalidPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("invalid payload must never reach the webhook")
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	n := New(Config{WebhookURL: srv.URL}, zerolog.Nop())
	n.Start(ctx)

	n.Notify(ports.NotificationPayload{Title: "", Content: "c"})
	n.Notify(ports.NotificationPayload{Title: "t", Content: "   "})
	n.Notify(ports.NotificationPayload{Title: strings.Repeat("x", ports.NotificationTitleMaxLength+1), Content: "c"})
	n.Notify(ports.NotificationPayload{Title: "t", Content: strings.Repeat("x", ports.NotificationContentMaxLength+1)})

	// Give the worker a moment to drain anything wrongly enqueued.
	time.Sleep(100 * time.Millisecond)
}

func TestValidatePayload_Trims(t *testing.T) {
	p, err := validatePayload(ports.NotificationPayload{Title: "  hello  ", Content: "  world  "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Title != "hello" || p.Content != "world" {
		t.Fatalf("payload not trimmed: %+v", p)
	}
}

func TestNotifier_QueueFullDrops(t *testing.T) {
	// Worker never started: the queue fills up and further payloads are
	// dropped without blocking the caller.
	n := New(Config{WebhookURL: "http://127.0.0.1:0"}, zerolog.Nop())

	done := make(chan struct{})
	go func() {
		for i := 0; i < queueBuffer+10; i++ {
			n.Notify(ports.NotificationPayload{Title: "t", Content: "c"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Notify blocked on a full queue")
	}
}
