// Package mongostore implements the repositories on a MongoDB database.
// Collections are named after the lowercased entity: staff, menuitem,
// order and inventory.
package mongostore

import (
	"context"
	"fmt"

	"cafeteria-admin/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	staffCollection     = "staff"
	menuCollection      = "menuitem"
	orderCollection     = "order"
	inventoryCollection = "inventory"
)

// New wires every repository to db. Disconnecting client is left to the
// returned store's Close.
func New(client *mongo.Client, db *mongo.Database) *repository.Store {
	return repository.NewStore(
		NewMenuRepo(db),
		NewOrderRepo(db),
		NewInventoryRepo(db),
		NewStaffRepo(db),
		&diagnostics{db: db},
		func(ctx context.Context) error {
			if client == nil {
				return nil
			}
			return client.Disconnect(ctx)
		},
	)
}

// EnsureIndexes creates the unique sku index that makes inventory upserts
// atomic, plus the staff pin lookup index.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(inventoryCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "sku", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_sku"),
	})
	if err != nil {
		return fmt.Errorf("mongostore: inventory index: %w", err)
	}

	_, err = db.Collection(staffCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "pin", Value: 1}, {Key: "is_active", Value: 1}},
		Options: options.Index().SetName("pin_active"),
	})
	if err != nil {
		return fmt.Errorf("mongostore: staff index: %w", err)
	}
	return nil
}

type diagnostics struct {
	db *mongo.Database
}

func (d *diagnostics) DatabaseName() string {
	return d.db.Name()
}

func (d *diagnostics) CollectionNames(ctx context.Context) ([]string, error) {
	return d.db.ListCollectionNames(ctx, bson.D{})
}
