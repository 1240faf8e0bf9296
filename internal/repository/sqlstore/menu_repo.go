package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cafeteria-admin/internal/model"
	"cafeteria-admin/internal/repository"

	"gorm.io/gorm"
)

type menuItemRow struct {
	ID          string  `gorm:"primaryKey;type:varchar(24)"`
	Title       string  `gorm:"type:varchar(255);not null"`
	Description *string `gorm:"type:text"`
	Price       float64 `gorm:"not null"`
	Category    *string `gorm:"type:varchar(100);index"`
	Available   bool    `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (menuItemRow) TableName() string { return "menuitem" }

func newMenuItemRow(item *model.MenuItem) menuItemRow {
	return menuItemRow{
		ID:          item.ID,
		Title:       item.Title,
		Description: item.Description,
		Price:       item.Price,
		Category:    item.Category,
		Available:   item.Available,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

func (r menuItemRow) toModel() model.MenuItem {
	return model.MenuItem{
		BaseModel: model.BaseModel{
			ID:        r.ID,
			CreatedAt: r.CreatedAt.UTC(),
			UpdatedAt: r.UpdatedAt.UTC(),
		},
		Title:       r.Title,
		Description: r.Description,
		Price:       r.Price,
		Category:    r.Category,
		Available:   r.Available,
	}
}

type menuRepo struct {
	db *gorm.DB
}

func NewMenuRepo(db *gorm.DB) repository.MenuRepository {
	return &menuRepo{db}
}

func (r *menuRepo) Create(ctx context.Context, item *model.MenuItem) error {
	stampNew(&item.BaseModel)
	row := newMenuItemRow(item)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("sqlstore: insert menu item: %w", err)
	}
	return nil
}

func (r *menuRepo) FindAll(ctx context.Context) ([]model.MenuItem, error) {
	var rows []menuItemRow
	if err := r.db.WithContext(ctx).Order("created_at").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("sqlstore: find menu items: %w", err)
	}
	return menuItemsFromRows(rows), nil
}

func (r *menuRepo) FindByID(ctx context.Context, id string) (*model.MenuItem, error) {
	if !model.ValidID(id) {
		return nil, model.ErrInvalidID
	}
	var row menuItemRow
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("sqlstore: find menu item: %w", err)
	}
	item := row.toModel()
	return &item, nil
}

func (r *menuRepo) FindByIDs(ctx context.Context, ids []string) ([]model.MenuItem, error) {
	for _, id := range ids {
		if !model.ValidID(id) {
			return nil, model.ErrInvalidID
		}
	}
	var rows []menuItemRow
	if len(ids) > 0 {
		if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
			return nil, fmt.Errorf("sqlstore: find menu items by id: %w", err)
		}
	}
	return menuItemsFromRows(rows), nil
}

func menuItemsFromRows(rows []menuItemRow) []model.MenuItem {
	items := make([]model.MenuItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toModel())
	}
	return items
}
