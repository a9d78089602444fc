package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/estateops/crm-backend/internal/core/domain"
	"github.com/estateops/crm-backend/internal/core/ports"
)

const collectionInventory = "inventory"

// InventoryRepository implements ports.InventoryRepository using MongoDB.
type InventoryRepository struct {
	col *mongo.Collection
}

func NewInventoryRepository(db *mongo.Database) *InventoryRepository {
	return &InventoryRepository{col: db.Collection(collectionInventory)}
}

func (r *InventoryRepository) Create(ctx context.Context, u *domain.InventoryUnit) (*domain.InventoryUnit, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	u.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, u); err != nil {
		return nil, fmt.Errorf("insert inventory unit: %w", err)
	}
	return u, nil
}

func (r *InventoryRepository) FindByID(ctx context.Context, id string) (*domain.InventoryUnit, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var u domain.InventoryUnit
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUnitNotFound
		}
		return nil, fmt.Errorf("find inventory unit: %w", err)
	}
	return &u, nil
}

func (r *InventoryRepository) List(ctx context.Context, filter ports.PageFilter) ([]*domain.InventoryUnit, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	total, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("count inventory: %w", err)
	}

	cur, err := r.col.Find(ctx, bson.M{}, pageOptions(filter))
	if err != nil {
		return nil, 0, fmt.Errorf("list inventory: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.InventoryUnit
	for cur.Next(ctx) {
		var u domain.InventoryUnit
		if err := cur.Decode(&u); err != nil {
			return nil, 0, fmt.Errorf("decode inventory unit: %w", err)
		}
		out = append(out, &u)
	}
	return out, total, cur.Err()
}

func (r *InventoryRepository) Update(ctx context.Context, u *domain.InventoryUnit) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": u.ID}, u)
	if err != nil {
		return fmt.Errorf("update inventory unit: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUnitNotFound
	}
	return nil
}

func (r *InventoryRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete inventory unit: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrUnitNotFound
	}
	return nil
}
