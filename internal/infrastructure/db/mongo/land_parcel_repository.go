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

const collectionLandParcels = "land_parcels"

// LandParcelRepository implements ports.LandParcelRepository using MongoDB.
// Survey numbers are unique; a duplicate insert maps to ErrLandParcelExists.
type LandParcelRepository struct {
	col *mongo.Collection
}

func NewLandParcelRepository(db *mongo.Database) *LandParcelRepository {
	return &LandParcelRepository{col: db.Collection(collectionLandParcels)}
}

func (r *LandParcelRepository) Create(ctx context.Context, p *domain.LandParcel) (*domain.LandParcel, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	p.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, p); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrLandParcelExists
		}
		return nil, fmt.Errorf("insert land parcel: %w", err)
	}
	return p, nil
}

func (r *LandParcelRepository) FindByID(ctx context.Context, id string) (*domain.LandParcel, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.LandParcel
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrLandParcelNotFound
		}
		return nil, fmt.Errorf("find land parcel: %w", err)
	}
	return &p, nil
}

func (r *LandParcelRepository) List(ctx context.Context, filter ports.PageFilter) ([]*domain.LandParcel, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	total, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("count land parcels: %w", err)
	}

	cur, err := r.col.Find(ctx, bson.M{}, pageOptions(filter))
	if err != nil {
		return nil, 0, fmt.Errorf("list land parcels: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.LandParcel
	for cur.Next(ctx) {
		var p domain.LandParcel
		if err := cur.Decode(&p); err != nil {
			return nil, 0, fmt.Errorf("decode land parcel: %w", err)
		}
		out = append(out, &p)
	}
	return out, total, cur.Err()
}

func (r *LandParcelRepository) Update(ctx context.Context, p *domain.LandParcel) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrLandParcelExists
		}
		return fmt.Errorf("update land parcel: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrLandParcelNotFound
	}
	return nil
}

func (r *LandParcelRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete land parcel: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrLandParcelNotFound
	}
	return nil
}

// EnsureIndexes creates the unique survey number index.
func (r *LandParcelRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "survey_number", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
