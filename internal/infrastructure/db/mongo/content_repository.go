package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rommelaere-renov/site-backend/internal/core/domain"
	"github.com/rommelaere-renov/site-backend/internal/core/ports"
)

const (
	collectionServices      = "services"
	collectionProjects      = "projects"
	collectionProjectImages = "project_images"
	collectionContactInfo   = "contact_info"
)

// ServiceRepository persists advertised services.
type ServiceRepository struct {
	col *mongo.Collection
}

func NewServiceRepository(db *mongo.Database) *ServiceRepository {
	return &ServiceRepository{col: db.Collection(collectionServices)}
}

type serviceDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description,omitempty"`
	Icon        string             `bson:"icon,omitempty"`
	Order       int                `bson:"order"`
}

func (d serviceDoc) toDomain() domain.Service {
	return domain.Service{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Description: d.Description,
		Icon:        d.Icon,
		Order:       d.Order,
	}
}

func (r *ServiceRepository) List(ctx context.Context) ([]domain.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "order", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer cur.Close(ctx)

	var services []domain.Service
	for cur.Next(ctx) {
		var doc serviceDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode service: %w", err)
		}
		services = append(services, doc.toDomain())
	}
	return services, cur.Err()
}

func (r *ServiceRepository) FindByID(ctx context.Context, id string) (*domain.Service, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrServiceNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc serviceDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrServiceNotFound
		}
		return nil, fmt.Errorf("find service: %w", err)
	}
	s := doc.toDomain()
	return &s, nil
}

func (r *ServiceRepository) Create(ctx context.Context, s *domain.Service) (*domain.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, serviceDoc{
		Title:       s.Title,
		Description: s.Description,
		Icon:        s.Icon,
		Order:       s.Order,
	})
	if err != nil {
		return nil, fmt.Errorf("insert service: %w", err)
	}

	created := *s
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ServiceRepository) Update(ctx context.Context, id string, update ports.ServiceUpdate) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrServiceNotFound
	}

	set := bson.M{}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Icon != nil {
		set["icon"] = *update.Icon
	}
	if update.Order != nil {
		set["order"] = *update.Order
	}
	if len(set) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update service: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrServiceNotFound
	}
	return nil
}

func (r *ServiceRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrServiceNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrServiceNotFound
	}
	return nil
}

func (r *ServiceRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.col.CountDocuments(ctx, bson.M{})
}

// ProjectRepository persists portfolio projects.
type ProjectRepository struct {
	col *mongo.Collection
}

func NewProjectRepository(db *mongo.Database) *ProjectRepository {
	return &ProjectRepository{col: db.Collection(collectionProjects)}
}

type projectDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description,omitempty"`
	ImageURL    string             `bson:"image_url,omitempty"`
	Order       int                `bson:"order"`
}

func (d projectDoc) toDomain() domain.Project {
	return domain.Project{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Description: d.Description,
		ImageURL:    d.ImageURL,
		Order:       d.Order,
	}
}

func (r *ProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "order", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer cur.Close(ctx)

	var projects []domain.Project
	for cur.Next(ctx) {
		var doc projectDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode project: %w", err)
		}
		projects = append(projects, doc.toDomain())
	}
	return projects, cur.Err()
}

func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*domain.Project, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProjectNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc projectDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}
	p := doc.toDomain()
	return &p, nil
}

func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, projectDoc{
		Title:       p.Title,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		Order:       p.Order,
	})
	if err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}

	created := *p
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ProjectRepository) Update(ctx context.Context, id string, update ports.ProjectUpdate) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrProjectNotFound
	}

	set := bson.M{}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.ImageURL != nil {
		set["image_url"] = *update.ImageURL
	}
	if update.Order != nil {
		set["order"] = *update.Order
	}
	if len(set) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrProjectNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

func (r *ProjectRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.col.CountDocuments(ctx, bson.M{})
}

// ProjectImageRepository persists ordered project galleries.
type ProjectImageRepository struct {
	col *mongo.Collection
}

func NewProjectImageRepository(db *mongo.Database) *ProjectImageRepository {
	return &ProjectImageRepository{col: db.Collection(collectionProjectImages)}
}

type projectImageDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	ProjectID string             `bson:"project_id"`
	ImageURL  string             `bson:"image_url"`
	Order     int                `bson:"order"`
}

func (d projectImageDoc) toDomain() domain.ProjectImage {
	return domain.ProjectImage{
		ID:        d.ID.Hex(),
		ProjectID: d.ProjectID,
		ImageURL:  d.ImageURL,
		Order:     d.Order,
	}
}

// ListByProject returns a project's gallery sorted by rank.
func (r *ProjectImageRepository) ListByProject(ctx context.Context, projectID string) ([]domain.ProjectImage, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"project_id": projectID},
		options.Find().SetSort(bson.D{{Key: "order", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list project images: %w", err)
	}
	defer cur.Close(ctx)

	var images []domain.ProjectImage
	for cur.Next(ctx) {
		var doc projectImageDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode project image: %w", err)
		}
		images = append(images, doc.toDomain())
	}
	return images, cur.Err()
}

func (r *ProjectImageRepository) Create(ctx context.Context, img *domain.ProjectImage) (*domain.ProjectImage, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, projectImageDoc{
		ProjectID: img.ProjectID,
		ImageURL:  img.ImageURL,
		Order:     img.Order,
	})
	if err != nil {
		return nil, fmt.Errorf("insert project image: %w", err)
	}

	created := *img
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ProjectImageRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrProjectImageNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete project image: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrProjectImageNotFound
	}
	return nil
}

func (r *ProjectImageRepository) DeleteByProject(ctx context.Context, projectID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.DeleteMany(ctx, bson.M{"project_id": projectID})
	if err != nil {
		return fmt.Errorf("delete project gallery: %w", err)
	}
	return nil
}

// EnsureIndexes creates the gallery lookup index.
func (r *ProjectImageRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "project_id", Value: 1}, {Key: "order", Value: 1}},
	})
	return err
}

// ContactInfoRepository persists the single public contact card as one
// upserted document.
type ContactInfoRepository struct {
	col *mongo.Collection
}

func NewContactInfoRepository(db *mongo.Database) *ContactInfoRepository {
	return &ContactInfoRepository{col: db.Collection(collectionContactInfo)}
}

const contactInfoKey = "contact_info"

type contactInfoDoc struct {
	Key     string `bson:"key"`
	Phone   string `bson:"phone,omitempty"`
	Email   string `bson:"email,omitempty"`
	Address string `bson:"address,omitempty"`
}

// Get returns the contact card; an empty card when none was stored yet.
func (r *ContactInfoRepository) Get(ctx context.Context) (*domain.ContactInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc contactInfoDoc
	err := r.col.FindOne(ctx, bson.M{"key": contactInfoKey}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &domain.ContactInfo{}, nil
		}
		return nil, fmt.Errorf("get contact info: %w", err)
	}
	return &domain.ContactInfo{Phone: doc.Phone, Email: doc.Email, Address: doc.Address}, nil
}

func (r *ContactInfoRepository) Update(ctx context.Context, update ports.ContactInfoUpdate) error {
	set := bson.M{}
	if update.Phone != nil {
		set["phone"] = *update.Phone
	}
	if update.Email != nil {
		set["email"] = *update.Email
	}
	if update.Address != nil {
		set["address"] = *update.Address
	}
	if len(set) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.UpdateOne(ctx, bson.M{"key": contactInfoKey},
		bson.M{"$set": set}, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("update contact info: %w", err)
	}
	return nil
}
