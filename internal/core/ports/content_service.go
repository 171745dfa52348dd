package ports

import (
	"context"

	"github.com/rommelaere-renov/site-backend/internal/core/domain"
)

// ContentService exposes the public reads and admin mutations over services,
// projects, galleries and the contact card. Authorization is enforced at the
// transport layer; the service assumes gated callers are admins.
type ContentService interface {
	GetServices(ctx context.Context) ([]domain.Service, error)
	GetServiceByID(ctx context.Context, id string) (*domain.Service, error)
	CreateService(ctx context.Context, in CreateServiceInput) (*domain.Service, error)
	UpdateService(ctx context.Context, id string, update ServiceUpdate) error
	DeleteService(ctx context.Context, id string) error

	GetProjects(ctx context.Context) ([]domain.Project, error)
	GetProjectByID(ctx context.Context, id string) (*domain.Project, error)
	CreateProject(ctx context.Context, in CreateProjectInput) (*domain.Project, error)
	UpdateProject(ctx context.Context, id string, update ProjectUpdate) error
	DeleteProject(ctx context.Context, id string) error

	GetProjectImages(ctx context.Context, projectID string) ([]domain.ProjectImage, error)
	CreateProjectImage(ctx context.Context, in CreateProjectImageInput) (*domain.ProjectImage, error)
	DeleteProjectImage(ctx context.Context, id string) error

	GetContactInfo(ctx context.Context) (*domain.ContactInfo, error)
	UpdateContactInfo(ctx context.Context, update ContactInfoUpdate) error
}

type CreateServiceInput struct {
	Title       string
	Description string
	Icon        string
	Order       int
}

type CreateProjectInput struct {
	Title       string
	Description string
	ImageURL    string
	Order       int
}

type CreateProjectImageInput struct {
	ProjectID string
	ImageURL  string
	Order     int
}
