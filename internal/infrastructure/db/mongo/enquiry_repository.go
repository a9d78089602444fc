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

	"github.com/estateops/crm-backend/internal/core/domain"
	"github.com/estateops/crm-backend/internal/core/ports"
)

const collectionEnquiries = "enquiries"

// EnquiryRepository implements ports.EnquiryRepository using MongoDB.
type EnquiryRepository struct {
	col *mongo.Collection
}

func NewEnquiryRepository(db *mongo.Database) *EnquiryRepository {
	return &EnquiryRepository{col: db.Collection(collectionEnquiries)}
}

func (r *EnquiryRepository) Create(ctx context.Context, e *domain.Enquiry) (*domain.Enquiry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	e.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, e); err != nil {
		return nil, fmt.Errorf("insert enquiry: %w", err)
	}
	return e, nil
}

func (r *EnquiryRepository) FindByID(ctx context.Context, id string) (*domain.Enquiry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var e domain.Enquiry
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&e); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEnquiryNotFound
		}
		return nil, fmt.Errorf("find enquiry: %w", err)
	}
	return &e, nil
}

func (r *EnquiryRepository) List(ctx context.Context, filter ports.EnquiryFilter) ([]*domain.Enquiry, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.AssignedEmployeeID != "" {
		query["assigned_employee_id"] = filter.AssignedEmployeeID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.EnquiryType != "" {
		query["enquiry_type"] = filter.EnquiryType
	}

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count enquiries: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list enquiries: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Enquiry
	for cur.Next(ctx) {
		var e domain.Enquiry
		if err := cur.Decode(&e); err != nil {
			return nil, 0, fmt.Errorf("decode enquiry: %w", err)
		}
		out = append(out, &e)
	}
	return out, total, cur.Err()
}

func (r *EnquiryRepository) Update(ctx context.Context, e *domain.Enquiry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": e.ID}, e)
	if err != nil {
		return fmt.Errorf("update enquiry: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrEnquiryNotFound
	}
	return nil
}

func (r *EnquiryRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete enquiry: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrEnquiryNotFound
	}
	return nil
}

// EnsureIndexes creates the lookup indexes used by the ownership filter.
func (r *EnquiryRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "assigned_employee_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
