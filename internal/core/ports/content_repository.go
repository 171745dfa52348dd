package ports

import (
	"context"

	"github.com/rommelaere-renov/site-backend/internal/core/domain"
)

// ServiceRepository persists the advertised renovation services.
type ServiceRepository interface {
	List(ctx context.Context) ([]domain.Service, error)
	FindByID(ctx context.Context, id string) (*domain.Service, error)
	Create(ctx context.Context, s *domain.Service) (*domain.Service, error)
	Update(ctx context.Context, id string, update ServiceUpdate) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// ProjectRepository persists portfolio projects.
type ProjectRepository interface {
	List(ctx context.Context) ([]domain.Project, error)
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	Update(ctx context.Context, id string, update ProjectUpdate) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// ProjectImageRepository persists the ordered gallery of each project.
type ProjectImageRepository interface {
	ListByProject(ctx context.Context, projectID string) ([]domain.ProjectImage, error)
	Create(ctx context.Context, img *domain.ProjectImage) (*domain.ProjectImage, error)
	Delete(ctx context.Context, id string) error
	DeleteByProject(ctx context.Context, projectID string) error
}

// ContactInfoRepository persists the single public contact card.
type ContactInfoRepository interface {
	Get(ctx context.Context) (*domain.ContactInfo, error)
	Update(ctx context.Context, update ContactInfoUpdate) error
}

// ServiceUpdate carries a partial service update. Nil means "leave unchanged".
type ServiceUpdate struct {
	Title       *string
	Description *string
	Icon        *string
	Order       *int
}

// ProjectUpdate carries a partial project update. Nil means "leave unchanged".
type ProjectUpdate struct {
	Title       *string
	Description *string
	ImageURL    *string
	Order       *int
}

// ContactInfoUpdate carries a partial contact-card update.
type ContactInfoUpdate struct {
	Phone   *string
	Email   *string
	Address *string
}
