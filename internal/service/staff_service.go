package service

import (
	"context"

	"cafeteria-admin/internal/model"
	"cafeteria-admin/internal/repository"

	"github.com/rs/zerolog/log"
)

type CreateStaffRequest struct {
	Name string `json:"name" validate:"required"`
	Role string `json:"role" validate:"required"`
	PIN  string `json:"pin" validate:"required,min=4,max=8"`
}

// LoginRequest carries no validation rules: an empty PIN simply matches
// nobody.
type LoginRequest struct {
	PIN string `json:"pin"`
}

type StaffService interface {
	CreateStaff(ctx context.Context, req *CreateStaffRequest) (*model.Staff, error)
	Login(ctx context.Context, req *LoginRequest) (*model.StaffResponse, error)
}

type staffService struct {
	staffRepo repository.StaffRepository
	auth      Authenticator
}

func NewStaffService(staffRepo repository.StaffRepository, auth Authenticator) StaffService {
	return &staffService{
		staffRepo: staffRepo,
		auth:      auth,
	}
}

func (s *staffService) CreateStaff(ctx context.Context, req *CreateStaffRequest) (*model.Staff, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	staff := &model.Staff{
		Name:     req.Name,
		Role:     req.Role,
		PIN:      req.PIN,
		IsActive: true,
	}
	if err := s.staffRepo.Create(ctx, staff); err != nil {
		return nil, err
	}
	log.Ctx(ctx).Info().Str("staff_id", staff.ID).Str("role", staff.Role).Msg("staff created")
	return staff, nil
}

func (s *staffService) Login(ctx context.Context, req *LoginRequest) (*model.StaffResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	staff, err := s.auth.Authenticate(ctx, req.PIN)
	if err != nil {
		return nil, err
	}
	resp := staff.ToResponse()
	return &resp, nil
}
