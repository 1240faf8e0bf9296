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

// orderRow keeps the line items as a JSON column, the same embedded shape
// the document store uses.
type orderRow struct {
	ID        string            `gorm:"primaryKey;type:varchar(24)"`
	StaffID   *string           `gorm:"type:varchar(64);index"`
	Items     []model.OrderLine `gorm:"serializer:json;type:text;not null"`
	Subtotal  float64           `gorm:"not null"`
	Tax       float64           `gorm:"not null"`
	Total     float64           `gorm:"not null"`
	Status    string            `gorm:"type:varchar(20);not null"`
	Note      *string           `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (orderRow) TableName() string { return "order" }

func (r orderRow) toModel() model.Order {
	items := r.Items
	if items == nil {
		items = []model.OrderLine{}
	}
	return model.Order{
		BaseModel: model.BaseModel{
			ID:        r.ID,
			CreatedAt: r.CreatedAt.UTC(),
			UpdatedAt: r.UpdatedAt.UTC(),
		},
		StaffID:  r.StaffID,
		Items:    items,
		Subtotal: r.Subtotal,
		Tax:      r.Tax,
		Total:    r.Total,
		Status:   r.Status,
		Note:     r.Note,
	}
}

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepo(db *gorm.DB) repository.OrderRepository {
	return &orderRepo{db}
}

func (r *orderRepo) Create(ctx context.Context, order *model.Order) error {
	stampNew(&order.BaseModel)
	items := order.Items
	if items == nil {
		items = []model.OrderLine{}
	}
	row := orderRow{
		ID:        order.ID,
		StaffID:   order.StaffID,
		Items:     items,
		Subtotal:  order.Subtotal,
		Tax:       order.Tax,
		Total:     order.Total,
		Status:    order.Status,
		Note:      order.Note,
		CreatedAt: order.CreatedAt,
		UpdatedAt: order.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("sqlstore: insert order: %w", err)
	}
	return nil
}

func (r *orderRepo) FindAll(ctx context.Context) ([]model.Order, error) {
	var rows []orderRow
	if err := r.db.WithContext(ctx).Order("created_at").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("sqlstore: find orders: %w", err)
	}
	orders := make([]model.Order, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, row.toModel())
	}
	return orders, nil
}

func (r *orderRepo) FindByID(ctx context.Context, id string) (*model.Order, error) {
	if !model.ValidID(id) {
		return nil, model.ErrInvalidID
	}
	var row orderRow
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("sqlstore: find order: %w", err)
	}
	order := row.toModel()
	return &order, nil
}
