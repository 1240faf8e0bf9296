package mongostore

import (
	"context"
	"fmt"
	"time"

	"cafeteria-admin/internal/model"
	"cafeteria-admin/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type inventoryDocument struct {
	ID           primitive.ObjectID `bson:"_id"`
	SKU          string             `bson:"sku"`
	Quantity     float64            `bson:"quantity"`
	Unit         string             `bson:"unit"`
	ReorderLevel *float64           `bson:"reorder_level"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

func (d inventoryDocument) toModel() model.InventoryItem {
	return model.InventoryItem{
		BaseModel: model.BaseModel{
			ID:        d.ID.Hex(),
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
		SKU:          d.SKU,
		Quantity:     d.Quantity,
		Unit:         d.Unit,
		ReorderLevel: d.ReorderLevel,
	}
}

// upsertUpdate builds the update document for UpsertBySKU. The candidate id
// only lands in the store when no record holds the sku yet.
func upsertUpdate(item *model.InventoryItem, candidate primitive.ObjectID, now time.Time) bson.M {
	return bson.M{
		"$set": bson.M{
			"quantity":      item.Quantity,
			"unit":          item.Unit,
			"reorder_level": item.ReorderLevel,
			"updated_at":    now,
		},
		"$setOnInsert": bson.M{
			"_id":        candidate,
			"created_at": now,
		},
	}
}

type inventoryRepo struct {
	col   *mongo.Collection
	newID func() primitive.ObjectID
}

func NewInventoryRepo(db *mongo.Database) repository.InventoryRepository {
	return &inventoryRepo{
		col:   db.Collection(inventoryCollection),
		newID: primitive.NewObjectID,
	}
}

func (r *inventoryRepo) FindAll(ctx context.Context) ([]model.InventoryItem, error) {
	cur, err := r.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("mongostore: find inventory: %w", err)
	}
	var docs []inventoryDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("mongostore: decode inventory: %w", err)
	}
	items := make([]model.InventoryItem, 0, len(docs))
	for _, d := range docs {
		items = append(items, d.toModel())
	}
	return items, nil
}

// UpsertBySKU runs as one findAndModify against the unique sku index, so
// concurrent upserts of the same sku cannot produce duplicates.
func (r *inventoryRepo) UpsertBySKU(ctx context.Context, item *model.InventoryItem) (bool, error) {
	candidate := r.newID()
	now := time.Now().UTC().Truncate(time.Millisecond)

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc inventoryDocument
	err := r.col.FindOneAndUpdate(ctx, bson.M{"sku": item.SKU}, upsertUpdate(item, candidate, now), opts).Decode(&doc)
	if err != nil {
		return false, fmt.Errorf("mongostore: upsert inventory %q: %w", item.SKU, err)
	}

	*item = doc.toModel()
	return doc.ID == candidate, nil
}
