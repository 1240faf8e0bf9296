package service

import (
	"context"
	"errors"

	"cafeteria-admin/internal/model"
	"cafeteria-admin/internal/repository"
)

// Authenticator resolves a staff credential to an active staff member,
// returning ErrInvalidPIN when nothing matches.
type Authenticator interface {
	Authenticate(ctx context.Context, credential string) (*model.Staff, error)
}

// PINAuthenticator matches the credential against the plaintext PIN of
// active staff records. It is a demo mechanism and must not guard anything
// that needs real security.
type PINAuthenticator struct {
	staffRepo repository.StaffRepository
}

func NewPINAuthenticator(staffRepo repository.StaffRepository) *PINAuthenticator {
	return &PINAuthenticator{staffRepo: staffRepo}
}

func (a *PINAuthenticator) Authenticate(ctx context.Context, pin string) (*model.Staff, error) {
	staff, err := a.staffRepo.FindActiveByPIN(ctx, pin)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidPIN
		}
		return nil, err
	}
	return staff, nil
}
