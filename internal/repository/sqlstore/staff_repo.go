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

type staffRow struct {
	ID        string `gorm:"primaryKey;type:varchar(24)"`
	Name      string `gorm:"type:varchar(255);not null"`
	Role      string `gorm:"type:varchar(50);not null"`
	PIN       string `gorm:"column:pin;type:varchar(8);not null;index:idx_staff_pin_active"`
	IsActive  bool   `gorm:"not null;index:idx_staff_pin_active"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (staffRow) TableName() string { return "staff" }

func (r staffRow) toModel() model.Staff {
	return model.Staff{
		BaseModel: model.BaseModel{
			ID:        r.ID,
			CreatedAt: r.CreatedAt.UTC(),
			UpdatedAt: r.UpdatedAt.UTC(),
		},
		Name:     r.Name,
		Role:     r.Role,
		PIN:      r.PIN,
		IsActive: r.IsActive,
	}
}

type staffRepo struct {
	db *gorm.DB
}

func NewStaffRepo(db *gorm.DB) repository.StaffRepository {
	return &staffRepo{db}
}

func (r *staffRepo) Create(ctx context.Context, staff *model.Staff) error {
	stampNew(&staff.BaseModel)
	row := staffRow{
		ID:        staff.ID,
		Name:      staff.Name,
		Role:      staff.Role,
		PIN:       staff.PIN,
		IsActive:  staff.IsActive,
		CreatedAt: staff.CreatedAt,
		UpdatedAt: staff.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("sqlstore: insert staff: %w", err)
	}
	return nil
}

func (r *staffRepo) FindActiveByPIN(ctx context.Context, pin string) (*model.Staff, error) {
	var row staffRow
	err := r.db.WithContext(ctx).Where("pin = ? AND is_active = ?", pin, true).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("sqlstore: find staff by pin: %w", err)
	}
	staff := row.toModel()
	return &staff, nil
}
