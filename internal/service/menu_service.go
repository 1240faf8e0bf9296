package service

import (
	"context"

	"cafeteria-admin/internal/model"
	"cafeteria-admin/internal/repository"
)

type CreateMenuItemRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Category    *string  `json:"category"`
	Available   *bool    `json:"available"`
}

type MenuService interface {
	ListMenu(ctx context.Context) ([]model.MenuItem, error)
	GetMenuItem(ctx context.Context, id string) (*model.MenuItem, error)
	CreateMenuItem(ctx context.Context, req *CreateMenuItemRequest) (*model.MenuItem, error)
}

type menuService struct {
	menuRepo repository.MenuRepository
	events   Broadcaster
}

func NewMenuService(menuRepo repository.MenuRepository, events Broadcaster) MenuService {
	return &menuService{
		menuRepo: menuRepo,
		events:   orNop(events),
	}
}

func (s *menuService) ListMenu(ctx context.Context) ([]model.MenuItem, error) {
	return s.menuRepo.FindAll(ctx)
}

func (s *menuService) GetMenuItem(ctx context.Context, id string) (*model.MenuItem, error) {
	id, err := canonicalID(id)
	if err != nil {
		return nil, err
	}
	return s.menuRepo.FindByID(ctx, id)
}

func (s *menuService) CreateMenuItem(ctx context.Context, req *CreateMenuItemRequest) (*model.MenuItem, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}
	item := &model.MenuItem{
		Title:       req.Title,
		Description: req.Description,
		Price:       *req.Price,
		Category:    req.Category,
		Available:   available,
	}
	if err := s.menuRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	s.events.Broadcast(EventMenuItemCreated, item)
	return item, nil
}
