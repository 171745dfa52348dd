package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/rommelaere-renov/site-backend/internal/core/domain"
	"github.com/rommelaere-renov/site-backend/internal/core/ports"
)

// ContentService implements the site content operations over the four
// content repositories.
type ContentService struct {
	services    ports.ServiceRepository
	projects    ports.ProjectRepository
	images      ports.ProjectImageRepository
	contactInfo ports.ContactInfoRepository
	log         zerolog.Logger
}

func NewContentService(
	services ports.ServiceRepository,
	projects ports.ProjectRepository,
	images ports.ProjectImageRepository,
	contactInfo ports.ContactInfoRepository,
	log zerolog.Logger,
) *ContentService {
	return &ContentService{
		services:    services,
		projects:    projects,
		images:      images,
		contactInfo: contactInfo,
		log:         log,
	}
}

func (s *ContentService) GetServices(ctx context.Context) ([]domain.Service, error) {
	return s.services.List(ctx)
}

func (s *ContentService) GetServiceByID(ctx context.Context, id string) (*domain.Service, error) {
	return s.services.FindByID(ctx, id)
}

func (s *ContentService) CreateService(ctx context.Context, in ports.CreateServiceInput) (*domain.Service, error) {
	created, err := s.services.Create(ctx, &domain.Service{
		Title:       in.Title,
		Description: in.Description,
		Icon:        in.Icon,
		Order:       in.Order,
	})
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("service_id", created.ID).Str("title", created.Title).Msg("service created")
	return created, nil
}

func (s *ContentService) UpdateService(ctx context.Context, id string, update ports.ServiceUpdate) error {
	return s.services.Update(ctx, id, update)
}

func (s *ContentService) DeleteService(ctx context.Context, id string) error {
	return s.services.Delete(ctx, id)
}

func (s *ContentService) GetProjects(ctx context.Context) ([]domain.Project, error) {
	return s.projects.List(ctx)
}

func (s *ContentService) GetProjectByID(ctx context.Context, id string) (*domain.Project, error) {
	return s.projects.FindByID(ctx, id)
}

func (s *ContentService) CreateProject(ctx context.Context, in ports.CreateProjectInput) (*domain.Project, error) {
	created, err := s.projects.Create(ctx, &domain.Project{
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		Order:       in.Order,
	})
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("project_id", created.ID).Str("title", created.Title).Msg("project created")
	return created, nil
}

func (s *ContentService) UpdateProject(ctx context.Context, id string, update ports.ProjectUpdate) error {
	return s.projects.Update(ctx, id, update)
}

// DeleteProject removes the project and its owned gallery. A failure cleaning
// up images after the project is gone is logged, not surfaced: the project
// deletion already took effect.
func (s *ContentService) DeleteProject(ctx context.Context, id string) error {
	if err := s.projects.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.images.DeleteByProject(ctx, id); err != nil {
		s.log.Warn().Err(err).Str("project_id", id).Msg("failed to delete project gallery")
	}
	return nil
}

func (s *ContentService) GetProjectImages(ctx context.Context, projectID string) ([]domain.ProjectImage, error) {
	return s.images.ListByProject(ctx, projectID)
}

func (s *ContentService) CreateProjectImage(ctx context.Context, in ports.CreateProjectImageInput) (*domain.ProjectImage, error) {
	// The image must attach to an existing project.
	if _, err := s.projects.FindByID(ctx, in.ProjectID); err != nil {
		return nil, fmt.Errorf("create project image: %w", err)
	}
	return s.images.Create(ctx, &domain.ProjectImage{
		ProjectID: in.ProjectID,
		ImageURL:  in.ImageURL,
		Order:     in.Order,
	})
}

func (s *ContentService) DeleteProjectImage(ctx context.Context, id string) error {
	return s.images.Delete(ctx, id)
}

func (s *ContentService) GetContactInfo(ctx context.Context) (*domain.ContactInfo, error) {
	return s.contactInfo.Get(ctx)
}

func (s *ContentService) UpdateContactInfo(ctx context.Context, update ports.ContactInfoUpdate) error {
	return s.contactInfo.Update(ctx, update)
}
