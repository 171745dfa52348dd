package handler

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/rommelaere-renov/site-backend/internal/core/domain"
	"github.com/rommelaere-renov/site-backend/internal/core/ports"
)

type stubTestimonialService struct {
	created  *ports.CreateTestimonialInput
	approved []string
	rejected []string
	deleted  []string
	err      error
}

func (s *stubTestimonialService) Create(_ context.Context, in ports.CreateTestimonialInput) (*domain.Testimonial, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.created = &in
	return &domain.Testimonial{
		ID:          "t1",
		Name:        in.Name,
		Rating:      in.Rating,
		Testimonial: in.Testimonial,
		Status:      domain.TestimonialPending,
	}, nil
}

func (s *stubTestimonialService) ListApproved(context.Context) ([]domain.Testimonial, error) {
	return []domain.Testimonial{{ID: "t2", Status: domain.TestimonialApproved}}, nil
}

func (s *stubTestimonialService) ListPending(context.Context) ([]domain.Testimonial, error) {
	return []domain.Testimonial{{ID: "t1", Status: domain.TestimonialPending}}, nil
}

func (s *stubTestimonialService) Approve(_ context.Context, id string) error {
	if s.err != nil {
		return s.err
	}
	s.approved = append(s.approved, id)
	return nil
}

func (s *stubTestimonialService) Reject(_ context.Context, id string) error {
	if s.err != nil {
		return s.err
	}
	s.rejected = append(s.rejected, id)
	return nil
}

func (s *stubTestimonialService) Delete(_ context.Context, id string) error {
	if s.err != nil {
		return s.err
	}
	s.deleted = append(s.deleted, id)
	return nil
}

func TestTestimonialHandler_Create(t *testing.T) {
	svc := &stubTestimonialService{}
	h := NewTestimonialHandler(svc)

	c, rec := newAuthTestContext(t, http.MethodPost, "/api/testimonials",
		`{"name":"Jan","rating":5,"testimonial":"Great work"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if svc.created == nil || svc.created.Rating != 5 {
		t.Fatalf("service not called correctly: %+v", svc.created)
	}
	if !strings.Contains(rec.Body.String(), `"pending"`) {
		t.Fatalf("expected pending status in body: %s", rec.Body.String())
	}
}

func TestTestimonialHandler_Create_RatingOutOfRange(t *testing.T) {
	svc := &stubTestimonialService{}
	h := NewTestimonialHandler(svc)

	for _, body := range []string{
		`{"name":"Jan","rating":0,"testimonial":"x"}`,
		`{"name":"Jan","rating":6,"testimonial":"x"}`,
	} {
		c, _ := newAuthTestContext(t, http.MethodPost, "/api/testimonials", body)
		err := h.Create(c)
		httpErr, ok := err.(*echo.HTTPError)
		if !ok || httpErr.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %v", body, err)
		}
	}
	if svc.created != nil {
		t.Fatalf("service must not be called for invalid ratings")
	}
}

func TestTestimonialHandler_Create_RateLimitedPassthrough(t *testing.T) {
	svc := &stubTestimonialService{err: domain.ErrRateLimited}
	h := NewTestimonialHandler(svc)

	c, _ := newAuthTestContext(t, http.MethodPost, "/api/testimonials",
		`{"name":"Jan","rating":5,"testimonial":"x"}`)
	if err := h.Create(c); err != domain.ErrRateLimited {
		t.Fatalf("expected ErrRateLimited passthrough, got %v", err)
	}
}

func TestTestimonialHandler_List(t *testing.T) {
	h := NewTestimonialHandler(&stubTestimonialService{})

	c, rec := newAuthTestContext(t, http.MethodGet, "/api/testimonials", "")
	if err := h.List(c); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"approved"`) || strings.Contains(body, `"pending"`) {
		t.Fatalf("public list must contain approved only: %s", body)
	}
}

func TestTestimonialHandler_Moderation(t *testing.T) {
	svc := &stubTestimonialService{}
	h := NewTestimonialHandler(svc)

	c, rec := newAuthTestContext(t, http.MethodPost, "/api/testimonials/t1/approve", "")
	c.SetParamNames("id")
	c.SetParamValues("t1")
	if err := h.Approve(c); err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(svc.approved) != 1 || svc.approved[0] != "t1" {
		t.Fatalf("approve not forwarded: %v", svc.approved)
	}

	c, _ = newAuthTestContext(t, http.MethodPost, "/api/testimonials/t2/reject", "")
	c.SetParamNames("id")
	c.SetParamValues("t2")
	if err := h.Reject(c); err != nil {
		t.Fatalf("reject failed: %v", err)
	}
	if len(svc.rejected) != 1 || svc.rejected[0] != "t2" {
		t.Fatalf("reject not forwarded: %v", svc.rejected)
	}

	c, _ = newAuthTestContext(t, http.MethodDelete, "/api/testimonials/t3", "")
	c.SetParamNames("id")
	c.SetParamValues("t3")
	if err := h.Delete(c); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if len(svc.deleted) != 1 || svc.deleted[0] != "t3" {
		t.Fatalf("delete not forwarded: %v", svc.deleted)
	}
}
