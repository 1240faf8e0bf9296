package service

import (
	"context"

	"cafeteria-admin/internal/model"
	"cafeteria-admin/internal/repository"
	"cafeteria-admin/pkg/metrics"
)

type UpsertInventoryRequest struct {
	SKU          string   `json:"sku" validate:"required"`
	Quantity     *float64 `json:"quantity" validate:"required"`
	Unit         string   `json:"unit"`
	ReorderLevel *float64 `json:"reorder_level"`
}

type InventoryService interface {
	ListInventory(ctx context.Context) ([]model.InventoryItem, error)
	// UpsertInventory creates the record for req.SKU or overwrites its
	// quantity, unit and reorder level. created is false when an existing
	// record was updated.
	UpsertInventory(ctx context.Context, req *UpsertInventoryRequest) (item *model.InventoryItem, created bool, err error)
}

type inventoryService struct {
	inventoryRepo repository.InventoryRepository
	events        Broadcaster
}

func NewInventoryService(inventoryRepo repository.InventoryRepository, events Broadcaster) InventoryService {
	return &inventoryService{
		inventoryRepo: inventoryRepo,
		events:        orNop(events),
	}
}

func (s *inventoryService) ListInventory(ctx context.Context) ([]model.InventoryItem, error) {
	return s.inventoryRepo.FindAll(ctx)
}

func (s *inventoryService) UpsertInventory(ctx context.Context, req *UpsertInventoryRequest) (*model.InventoryItem, bool, error) {
	if err := validate(req); err != nil {
		return nil, false, err
	}

	unit := req.Unit
	if unit == "" {
		unit = model.DefaultUnit
	}
	item := &model.InventoryItem{
		SKU:          req.SKU,
		Quantity:     *req.Quantity,
		Unit:         unit,
		ReorderLevel: req.ReorderLevel,
	}

	created, err := s.inventoryRepo.UpsertBySKU(ctx, item)
	if err != nil {
		return nil, false, err
	}

	event, result := EventInventoryUpdated, "updated"
	if created {
		event, result = EventInventoryCreated, "created"
	}
	metrics.InventoryUpserts.WithLabelValues(result).Inc()
	s.events.Broadcast(event, item)

	return item, created, nil
}
