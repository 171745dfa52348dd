package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rommelaere-renov/site-backend/internal/api/metrics"
	"github.com/rommelaere-renov/site-backend/internal/core/ports"
)

// ContactHandler handles the public contact form and the admin inbox.
type ContactHandler struct {
	service ports.ContactService
}

func NewContactHandler(service ports.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

// CreateMessage handles POST /api/contact/messages (public).
//
// @Summary      Submit a contact message
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body      createMessageRequest  true  "Message"
// @Success      201   {object}  domain.ContactMessage
// @Failure      400   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /api/contact/messages [post]
func (h *ContactHandler) CreateMessage(c echo.Context) error {
	var req createMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.CreateMessage(c.Request().Context(), ports.CreateMessageInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Subject:  req.Subject,
		Message:  req.Message,
		ClientIP: c.RealIP(),
	})
	if err != nil {
		return err
	}

	metrics.ContactMessagesTotal.Inc()
	return c.JSON(http.StatusCreated, created)
}

// GetMessages handles GET /api/contact/messages (admin).
//
// @Summary      List contact messages, newest first
// @Tags         contact
// @Produce      json
// @Success      200  {array}   domain.ContactMessage
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/contact/messages [get]
func (h *ContactHandler) GetMessages(c echo.Context) error {
	messages, err := h.service.GetMessages(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messages)
}

// GetMessage handles GET /api/contact/messages/:id (admin).
//
// @Summary      Get a contact message
// @Tags         contact
// @Produce      json
// @Param        id   path      string  true  "Message ID"
// @Success      200  {object}  domain.ContactMessage
// @Failure      404  {object}  errorResponse
// @Router       /api/contact/messages/{id} [get]
func (h *ContactHandler) GetMessage(c echo.Context) error {
	msg, err := h.service.GetMessageByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, msg)
}

// MarkAsRead handles POST /api/contact/messages/:id/read (admin).
//
// @Summary      Mark a contact message as read
// @Tags         contact
// @Produce      json
// @Param        id   path      string  true  "Message ID"
// @Success      200  {object}  successResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/contact/messages/{id}/read [post]
func (h *ContactHandler) MarkAsRead(c echo.Context) error {
	if err := h.service.MarkAsRead(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// DeleteMessage handles DELETE /api/contact/messages/:id (admin).
//
// @Summary      Delete a contact message
// @Tags         contact
// @Produce      json
// @Param        id   path      string  true  "Message ID"
// @Success      200  {object}  successResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/contact/messages/{id} [delete]
func (h *ContactHandler) DeleteMessage(c echo.Context) error {
	if err := h.service.DeleteMessage(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}
