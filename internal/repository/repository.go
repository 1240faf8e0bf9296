package repository

import (
	"context"
	"errors"

	"cafeteria-admin/internal/model"
)

var ErrNotFound = errors.New("record not found")

type MenuRepository interface {
	Create(ctx context.Context, item *model.MenuItem) error
	FindAll(ctx context.Context) ([]model.MenuItem, error)
	FindByID(ctx context.Context, id string) (*model.MenuItem, error)
	// FindByIDs does a single batch lookup. Unknown ids are simply absent
	// from the result.
	FindByIDs(ctx context.Context, ids []string) ([]model.MenuItem, error)
}

type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	FindAll(ctx context.Context) ([]model.Order, error)
	FindByID(ctx context.Context, id string) (*model.Order, error)
}

type InventoryRepository interface {
	FindAll(ctx context.Context) ([]model.InventoryItem, error)
	// UpsertBySKU inserts item or overwrites quantity, unit and reorder level
	// of the record holding the same SKU. On return item.ID holds the id of
	// the stored record; created reports whether it was inserted.
	UpsertBySKU(ctx context.Context, item *model.InventoryItem) (created bool, err error)
}

type StaffRepository interface {
	Create(ctx context.Context, staff *model.Staff) error
	FindActiveByPIN(ctx context.Context, pin string) (*model.Staff, error)
}

// Diagnostics exposes store introspection for the /test endpoint.
type Diagnostics interface {
	DatabaseName() string
	CollectionNames(ctx context.Context) ([]string, error)
}

// Store bundles the repositories of one backend together with its
// lifecycle.
type Store struct {
	Menu        MenuRepository
	Orders      OrderRepository
	Inventory   InventoryRepository
	Staff       StaffRepository
	Diagnostics Diagnostics

	closeFn func(ctx context.Context) error
}

func NewStore(menu MenuRepository, orders OrderRepository, inv InventoryRepository, staff StaffRepository, diag Diagnostics, closeFn func(ctx context.Context) error) *Store {
	return &Store{
		Menu:        menu,
		Orders:      orders,
		Inventory:   inv,
		Staff:       staff,
		Diagnostics: diag,
		closeFn:     closeFn,
	}
}

// Close releases the underlying connection.
func (s *Store) Close(ctx context.Context) error {
	if s.closeFn == nil {
		return nil
	}
	return s.closeFn(ctx)
}
