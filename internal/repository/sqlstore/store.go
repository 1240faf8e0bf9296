// Package sqlstore implements the repositories on a relational database
// through gorm. Tables mirror the document collections (staff, menuitem,
// order, inventory); primary keys are ObjectID hex strings so identifiers
// look the same on every backend.
package sqlstore

import (
	"context"
	"fmt"
	"time"

	"cafeteria-admin/internal/model"
	"cafeteria-admin/internal/repository"

	"gorm.io/gorm"
)

func New(db *gorm.DB, dbName string) *repository.Store {
	return repository.NewStore(
		NewMenuRepo(db),
		NewOrderRepo(db),
		NewInventoryRepo(db),
		NewStaffRepo(db),
		&diagnostics{db: db, name: dbName},
		func(context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	)
}

// AutoMigrate creates the tables and the unique sku index.
func AutoMigrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(&staffRow{}, &menuItemRow{}, &orderRow{}, &inventoryRow{}); err != nil {
		return fmt.Errorf("sqlstore: migrate: %w", err)
	}
	return nil
}

type diagnostics struct {
	db   *gorm.DB
	name string
}

func (d *diagnostics) DatabaseName() string {
	return d.name
}

func (d *diagnostics) CollectionNames(ctx context.Context) ([]string, error) {
	sqlDB, err := d.db.DB()
	if err != nil {
		return nil, err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, err
	}
	return d.db.WithContext(ctx).Migrator().GetTables()
}

func stampNew(b *model.BaseModel) {
	if b.ID == "" {
		b.ID = model.NewID()
	}
	now := time.Now().UTC().Truncate(time.Millisecond)
	b.CreatedAt = now
	b.UpdatedAt = now
}
