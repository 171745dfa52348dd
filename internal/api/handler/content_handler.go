package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rommelaere-renov/site-backend/internal/core/ports"
)

// ContentHandler handles HTTP requests for services, projects, galleries and
// the public contact card.
type ContentHandler struct {
	service ports.ContentService
}

func NewContentHandler(service ports.ContentService) *ContentHandler {
	return &ContentHandler{service: service}
}

// GetServices handles GET /api/content/services.
//
// @Summary      List services
// @Tags         content
// @Produce      json
// @Success      200  {array}  domain.Service
// @Router       /api/content/services [get]
func (h *ContentHandler) GetServices(c echo.Context) error {
	services, err := h.service.GetServices(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, services)
}

// GetService handles GET /api/content/services/:id.
//
// @Summary      Get a service
// @Tags         content
// @Produce      json
// @Param        id   path      string  true  "Service ID"
// @Success      200  {object}  domain.Service
// @Failure      404  {object}  errorResponse
// @Router       /api/content/services/{id} [get]
func (h *ContentHandler) GetService(c echo.Context) error {
	svc, err := h.service.GetServiceByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, svc)
}

// CreateService handles POST /api/content/services (admin).
//
// @Summary      Create a service
// @Tags         content
// @Accept       json
// @Produce      json
// @Param        body  body      createServiceRequest  true  "Service"
// @Success      201   {object}  domain.Service
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/content/services [post]
func (h *ContentHandler) CreateService(c echo.Context) error {
	var req createServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.CreateService(c.Request().Context(), ports.CreateServiceInput{
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
		Order:       req.Order,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateService handles PATCH /api/content/services/:id (admin).
//
// @Summary      Update a service
// @Tags         content
// @Accept       json
// @Produce      json
// @Param        id    path      string                true  "Service ID"
// @Param        body  body      updateServiceRequest  true  "Fields to update"
// @Success      200   {object}  successResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/content/services/{id} [patch]
func (h *ContentHandler) UpdateService(c echo.Context) error {
	var req updateServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.service.UpdateService(c.Request().Context(), c.Param("id"), ports.ServiceUpdate{
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
		Order:       req.Order,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// DeleteService handles DELETE /api/content/services/:id (admin).
//
// @Summary      Delete a service
// @Tags         content
// @Produce      json
// @Param        id   path      string  true  "Service ID"
// @Success      200  {object}  successResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/content/services/{id} [delete]
func (h *ContentHandler) DeleteService(c echo.Context) error {
	if err := h.service.DeleteService(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// GetProjects handles GET /api/content/projects.
//
// @Summary      List projects
// @Tags         content
// @Produce      json
// @Success      200  {array}  domain.Project
// @Router       /api/content/projects [get]
func (h *ContentHandler) GetProjects(c echo.Context) error {
	projects, err := h.service.GetProjects(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projects)
}

// GetProject handles GET /api/content/projects/:id.
//
// @Summary      Get a project
// @Tags         content
// @Produce      json
// @Param        id   path      string  true  "Project ID"
// @Success      200  {object}  domain.Project
// @Failure      404  {object}  errorResponse
// @Router       /api/content/projects/{id} [get]
func (h *ContentHandler) GetProject(c echo.Context) error {
	project, err := h.service.GetProjectByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

// CreateProject handles POST /api/content/projects (admin).
//
// @Summary      Create a project
// @Tags         content
// @Accept       json
// @Produce      json
// @Param        body  body      createProjectRequest  true  "Project"
// @Success      201   {object}  domain.Project
// @Failure      400   {object}  errorResponse
// @Router       /api/content/projects [post]
func (h *ContentHandler) CreateProject(c echo.Context) error {
	var req createProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.CreateProject(c.Request().Context(), ports.CreateProjectInput{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Order:       req.Order,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateProject handles PATCH /api/content/projects/:id (admin).
//
// @Summary      Update a project
// @Tags         content
// @Accept       json
// @Produce      json
// @Param        id    path      string                true  "Project ID"
// @Param        body  body      updateProjectRequest  true  "Fields to update"
// @Success      200   {object}  successResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/content/projects/{id} [patch]
func (h *ContentHandler) UpdateProject(c echo.Context) error {
	var req updateProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.service.UpdateProject(c.Request().Context(), c.Param("id"), ports.ProjectUpdate{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Order:       req.Order,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// DeleteProject handles DELETE /api/content/projects/:id (admin). The
// project's gallery is deleted with it.
//
// @Summary      Delete a project
// @Tags         content
// @Produce      json
// @Param        id   path      string  true  "Project ID"
// @Success      200  {object}  successResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/content/projects/{id} [delete]
func (h *ContentHandler) DeleteProject(c echo.Context) error {
	if err := h.service.DeleteProject(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// GetProjectImages handles GET /api/content/projects/:id/images.
//
// @Summary      List a project's gallery, ordered for carousel display
// @Tags         content
// @Produce      json
// @Param        id   path      string  true  "Project ID"
// @Success      200  {array}  domain.ProjectImage
// @Router       /api/content/projects/{id}/images [get]
func (h *ContentHandler) GetProjectImages(c echo.Context) error {
	images, err := h.service.GetProjectImages(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, images)
}

// CreateProjectImage handles POST /api/content/project-images (admin).
//
// @Summary      Add an image to a project gallery
// @Tags         content
// @Accept       json
// @Produce      json
// @Param        body  body      createProjectImageRequest  true  "Image"
// @Success      201   {object}  domain.ProjectImage
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/content/project-images [post]
func (h *ContentHandler) CreateProjectImage(c echo.Context) error {
	var req createProjectImageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.CreateProjectImage(c.Request().Context(), ports.CreateProjectImageInput{
		ProjectID: req.ProjectID,
		ImageURL:  req.ImageURL,
		Order:     req.Order,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// DeleteProjectImage handles DELETE /api/content/project-images/:id (admin).
//
// @Summary      Remove an image from a gallery
// @Tags         content
// @Produce      json
// @Param        id   path      string  true  "Image ID"
// @Success      200  {object}  successResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/content/project-images/{id} [delete]
func (h *ContentHandler) DeleteProjectImage(c echo.Context) error {
	if err := h.service.DeleteProjectImage(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// GetContactInfo handles GET /api/content/contact-info.
//
// @Summary      Get the public contact card
// @Tags         content
// @Produce      json
// @Success      200  {object}  domain.ContactInfo
// @Router       /api/content/contact-info [get]
func (h *ContentHandler) GetContactInfo(c echo.Context) error {
	info, err := h.service.GetContactInfo(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, info)
}

// UpdateContactInfo handles PATCH /api/content/contact-info (admin).
//
// @Summary      Update the public contact card
// @Tags         content
// @Accept       json
// @Produce      json
// @Param        body  body      updateContactInfoRequest  true  "Fields to update"
// @Success      200   {object}  successResponse
// @Router       /api/content/contact-info [patch]
func (h *ContentHandler) UpdateContactInfo(c echo.Context) error {
	var req updateContactInfoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.service.UpdateContactInfo(c.Request().Context(), ports.ContactInfoUpdate{
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}
