package service

import (
	"context"

	"cafeteria-admin/internal/model"
	"cafeteria-admin/internal/repository"
	"cafeteria-admin/pkg/metrics"

	"github.com/rs/zerolog/log"
)

type OrderItemRequest struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   *int   `json:"quantity" validate:"required"`
}

func (r OrderItemRequest) quantity() int {
	if r.Quantity == nil {
		return 0
	}
	return *r.Quantity
}

type CreateOrderRequest struct {
	StaffID *string            `json:"staff_id"`
	Items   []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	Note    *string            `json:"note"`
}

// OrderReceipt is returned to the till after an order is placed.
type OrderReceipt struct {
	ID       string  `json:"id"`
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

type OrderService interface {
	CreateOrder(ctx context.Context, req *CreateOrderRequest) (*OrderReceipt, error)
	ListOrders(ctx context.Context) ([]model.Order, error)
	GetOrder(ctx context.Context, id string) (*model.Order, error)
}

type orderService struct {
	menuRepo  repository.MenuRepository
	orderRepo repository.OrderRepository
	events    Broadcaster
}

func NewOrderService(menuRepo repository.MenuRepository, orderRepo repository.OrderRepository, events Broadcaster) OrderService {
	return &orderService{
		menuRepo:  menuRepo,
		orderRepo: orderRepo,
		events:    orNop(events),
	}
}

// CreateOrder prices the requested lines against the current menu and
// stores an open order. staff_id is recorded as given; nothing checks
// that it names an existing staff member.
func (s *orderService) CreateOrder(ctx context.Context, req *CreateOrderRequest) (*OrderReceipt, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	// Every id must parse before the store is touched. An empty id is
	// malformed like any other.
	ids := make([]string, 0, len(req.Items))
	seen := make(map[string]struct{}, len(req.Items))
	for _, it := range req.Items {
		id, err := canonicalID(it.MenuItemID)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[id]; !dup {
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}

	found, err := s.menuRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	menu := make(map[string]model.MenuItem, len(found))
	for _, m := range found {
		menu[m.ID] = m
	}

	priced, err := PriceOrder(req.Items, menu)
	if err != nil {
		return nil, err
	}

	order := &model.Order{
		StaffID:  req.StaffID,
		Items:    priced.Lines,
		Subtotal: priced.Subtotal,
		Tax:      priced.Tax,
		Total:    priced.Total,
		Status:   model.OrderStatusOpen,
		Note:     req.Note,
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	metrics.OrdersCreated.Inc()
	if order.Total > 0 {
		metrics.OrderRevenue.Add(order.Total)
	}
	log.Ctx(ctx).Info().
		Str("order_id", order.ID).
		Int("lines", len(order.Items)).
		Float64("total", order.Total).
		Msg("order created")

	s.events.Broadcast(EventOrderCreated, order)

	return &OrderReceipt{
		ID:       order.ID,
		Subtotal: order.Subtotal,
		Tax:      order.Tax,
		Total:    order.Total,
	}, nil
}

func (s *orderService) ListOrders(ctx context.Context) ([]model.Order, error) {
	return s.orderRepo.FindAll(ctx)
}

func (s *orderService) GetOrder(ctx context.Context, id string) (*model.Order, error) {
	id, err := canonicalID(id)
	if err != nil {
		return nil, err
	}
	return s.orderRepo.FindByID(ctx, id)
}
