package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rommelaere-renov/site-backend/internal/api/metrics"
	"github.com/rommelaere-renov/site-backend/internal/core/ports"
)

// TestimonialHandler handles public testimonial submissions and the admin
// moderation endpoints.
type TestimonialHandler struct {
	service ports.TestimonialService
}

func NewTestimonialHandler(service ports.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{service: service}
}

// List handles GET /api/testimonials — approved testimonials only.
//
// @Summary      List approved testimonials
// @Tags         testimonials
// @Produce      json
// @Success      200  {array}  domain.Testimonial
// @Router       /api/testimonials [get]
func (h *TestimonialHandler) List(c echo.Context) error {
	testimonials, err := h.service.ListApproved(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, testimonials)
}

// Create handles POST /api/testimonials (public). The stored testimonial
// always starts pending.
//
// @Summary      Submit a testimonial
// @Tags         testimonials
// @Accept       json
// @Produce      json
// @Param        body  body      createTestimonialRequest  true  "Testimonial"
// @Success      201   {object}  domain.Testimonial
// @Failure      400   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /api/testimonials [post]
func (h *TestimonialHandler) Create(c echo.Context) error {
	var req createTestimonialRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), ports.CreateTestimonialInput{
		Name:        req.Name,
		Title:       req.Title,
		ProjectType: req.ProjectType,
		Rating:      req.Rating,
		Testimonial: req.Testimonial,
		ClientIP:    c.RealIP(),
	})
	if err != nil {
		return err
	}

	metrics.TestimonialsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, created)
}

// GetPending handles GET /api/testimonials/pending (admin).
//
// @Summary      List testimonials awaiting moderation
// @Tags         testimonials
// @Produce      json
// @Success      200  {array}   domain.Testimonial
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/testimonials/pending [get]
func (h *TestimonialHandler) GetPending(c echo.Context) error {
	testimonials, err := h.service.ListPending(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, testimonials)
}

// Approve handles POST /api/testimonials/:id/approve (admin).
//
// @Summary      Approve a pending testimonial
// @Tags         testimonials
// @Produce      json
// @Param        id   path      string  true  "Testimonial ID"
// @Success      200  {object}  successResponse
// @Failure      404  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /api/testimonials/{id}/approve [post]
func (h *TestimonialHandler) Approve(c echo.Context) error {
	if err := h.service.Approve(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.TestimonialsModeratedTotal.WithLabelValues("approved").Inc()
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// Reject handles POST /api/testimonials/:id/reject (admin).
//
// @Summary      Reject a pending testimonial
// @Tags         testimonials
// @Produce      json
// @Param        id   path      string  true  "Testimonial ID"
// @Success      200  {object}  successResponse
// @Failure      404  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /api/testimonials/{id}/reject [post]
func (h *TestimonialHandler) Reject(c echo.Context) error {
	if err := h.service.Reject(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.TestimonialsModeratedTotal.WithLabelValues("rejected").Inc()
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// Delete handles DELETE /api/testimonials/:id (admin). Allowed from any
// moderation state.
//
// @Summary      Delete a testimonial
// @Tags         testimonials
// @Produce      json
// @Param        id   path      string  true  "Testimonial ID"
// @Success      200  {object}  successResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/testimonials/{id} [delete]
func (h *TestimonialHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}
