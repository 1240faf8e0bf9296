package sqlstore

import (
	"context"
	"fmt"
	"time"

	"cafeteria-admin/internal/model"
	"cafeteria-admin/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type inventoryRow struct {
	ID           string   `gorm:"primaryKey;type:varchar(24)"`
	SKU          string   `gorm:"type:varchar(100);uniqueIndex;not null"`
	Quantity     float64  `gorm:"not null"`
	Unit         string   `gorm:"type:varchar(20);not null"`
	ReorderLevel *float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (inventoryRow) TableName() string { return "inventory" }

func (r inventoryRow) toModel() model.InventoryItem {
	return model.InventoryItem{
		BaseModel: model.BaseModel{
			ID:        r.ID,
			CreatedAt: r.CreatedAt.UTC(),
			UpdatedAt: r.UpdatedAt.UTC(),
		},
		SKU:          r.SKU,
		Quantity:     r.Quantity,
		Unit:         r.Unit,
		ReorderLevel: r.ReorderLevel,
	}
}

type inventoryRepo struct {
	db *gorm.DB
}

func NewInventoryRepo(db *gorm.DB) repository.InventoryRepository {
	return &inventoryRepo{db}
}

func (r *inventoryRepo) FindAll(ctx context.Context) ([]model.InventoryItem, error) {
	var rows []inventoryRow
	if err := r.db.WithContext(ctx).Order("created_at").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("sqlstore: find inventory: %w", err)
	}
	items := make([]model.InventoryItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toModel())
	}
	return items, nil
}

// UpsertBySKU relies on the unique sku index: INSERT ... ON CONFLICT (sku)
// DO UPDATE, then reads the surviving row back in the same transaction.
func (r *inventoryRepo) UpsertBySKU(ctx context.Context, item *model.InventoryItem) (bool, error) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	candidate := inventoryRow{
		ID:           model.NewID(),
		SKU:          item.SKU,
		Quantity:     item.Quantity,
		Unit:         item.Unit,
		ReorderLevel: item.ReorderLevel,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	var stored inventoryRow
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "sku"}},
			DoUpdates: clause.AssignmentColumns([]string{"quantity", "unit", "reorder_level", "updated_at"}),
		}).Create(&candidate).Error
		if err != nil {
			return err
		}
		return tx.First(&stored, "sku = ?", item.SKU).Error
	})
	if err != nil {
		return false, fmt.Errorf("sqlstore: upsert inventory %q: %w", item.SKU, err)
	}

	*item = stored.toModel()
	return stored.ID == candidate.ID, nil
}
