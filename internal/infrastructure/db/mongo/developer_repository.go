package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/estateops/crm-backend/internal/core/domain"
	"github.com/estateops/crm-backend/internal/core/ports"
)

const collectionDevelopers = "developers"

// DeveloperRepository implements ports.DeveloperRepository using MongoDB.
type DeveloperRepository struct {
	col *mongo.Collection
}

func NewDeveloperRepository(db *mongo.Database) *DeveloperRepository {
	return &DeveloperRepository{col: db.Collection(collectionDevelopers)}
}

func (r *DeveloperRepository) Create(ctx context.Context, d *domain.Developer) (*domain.Developer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	d.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, d); err != nil {
		return nil, fmt.Errorf("insert developer: %w", err)
	}
	return d, nil
}

func (r *DeveloperRepository) FindByID(ctx context.Context, id string) (*domain.Developer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d domain.Developer
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrDeveloperNotFound
		}
		return nil, fmt.Errorf("find developer: %w", err)
	}
	return &d, nil
}

func (r *DeveloperRepository) List(ctx context.Context, filter ports.PageFilter) ([]*domain.Developer, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	total, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("count developers: %w", err)
	}

	cur, err := r.col.Find(ctx, bson.M{}, pageOptions(filter))
	if err != nil {
		return nil, 0, fmt.Errorf("list developers: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Developer
	for cur.Next(ctx) {
		var d domain.Developer
		if err := cur.Decode(&d); err != nil {
			return nil, 0, fmt.Errorf("decode developer: %w", err)
		}
		out = append(out, &d)
	}
	return out, total, cur.Err()
}

func (r *DeveloperRepository) Update(ctx context.Context, d *domain.Developer) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": d.ID}, d)
	if err != nil {
		return fmt.Errorf("update developer: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrDeveloperNotFound
	}
	return nil
}

func (r *DeveloperRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete developer: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrDeveloperNotFound
	}
	return nil
}

// pageOptions converts a PageFilter into find options shared by the catalog
// repositories.
func pageOptions(filter ports.PageFilter) *options.FindOptions {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 || limit > 100 {
		limit = 100
	}
	return options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))
}
