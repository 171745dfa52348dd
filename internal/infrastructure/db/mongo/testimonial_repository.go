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
)

const collectionTestimonials = "testimonials"

// TestimonialRepository persists customer testimonials.
type TestimonialRepository struct {
	col *mongo.Collection
}

func NewTestimonialRepository(db *mongo.Database) *TestimonialRepository {
	return &TestimonialRepository{col: db.Collection(collectionTestimonials)}
}

type testimonialDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Title       string             `bson:"title,omitempty"`
	ProjectType string             `bson:"project_type,omitempty"`
	Rating      int                `bson:"rating"`
	Testimonial string             `bson:"testimonial"`
	Status      string             `bson:"status"`
	CreatedAt   int64              `bson:"created_at"`
	UpdatedAt   int64              `bson:"updated_at"`
}

func (d testimonialDoc) toDomain() domain.Testimonial {
	return domain.Testimonial{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Title:       d.Title,
		ProjectType: d.ProjectType,
		Rating:      d.Rating,
		Testimonial: d.Testimonial,
		Status:      domain.TestimonialStatus(d.Status),
		CreatedAt:   unixToTime(d.CreatedAt),
		UpdatedAt:   unixToTime(d.UpdatedAt),
	}
}

func (r *TestimonialRepository) Create(ctx context.Context, t *domain.Testimonial) (*domain.Testimonial, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, testimonialDoc{
		Name:        t.Name,
		Title:       t.Title,
		ProjectType: t.ProjectType,
		Rating:      t.Rating,
		Testimonial: t.Testimonial,
		Status:      string(t.Status),
		CreatedAt:   t.CreatedAt.Unix(),
		UpdatedAt:   t.UpdatedAt.Unix(),
	})
	if err != nil {
		return nil, fmt.Errorf("insert testimonial: %w", err)
	}

	created := *t
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *TestimonialRepository) FindByID(ctx context.Context, id string) (*domain.Testimonial, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrTestimonialNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc testimonialDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTestimonialNotFound
		}
		return nil, fmt.Errorf("find testimonial: %w", err)
	}
	t := doc.toDomain()
	return &t, nil
}

// ListByStatus returns testimonials in one moderation state, newest first.
func (r *TestimonialRepository) ListByStatus(ctx context.Context, status domain.TestimonialStatus) ([]domain.Testimonial, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"status": string(status)},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}
	defer cur.Close(ctx)

	var testimonials []domain.Testimonial
	for cur.Next(ctx) {
		var doc testimonialDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode testimonial: %w", err)
		}
		testimonials = append(testimonials, doc.toDomain())
	}
	return testimonials, cur.Err()
}

func (r *TestimonialRepository) UpdateStatus(ctx context.Context, id string, status domain.TestimonialStatus) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrTestimonialNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"status":     string(status),
		"updated_at": time.Now().UTC().Unix(),
	}})
	if err != nil {
		return fmt.Errorf("update testimonial status: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrTestimonialNotFound
	}
	return nil
}

func (r *TestimonialRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrTestimonialNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete testimonial: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrTestimonialNotFound
	}
	return nil
}

func (r *TestimonialRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.col.CountDocuments(ctx, bson.M{})
}

// EnsureIndexes creates the moderation listing index.
func (r *TestimonialRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}},
	})
	return err
}
