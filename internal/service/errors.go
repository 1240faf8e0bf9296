package service

import (
	"errors"
	"fmt"

	"cafeteria-admin/internal/model"
	"cafeteria-admin/pkg/validator"
)

var (
	ErrInvalidID  = model.ErrInvalidID
	ErrInvalidPIN = errors.New("invalid PIN")
)

// ValidationError carries field -> rule failures of a request.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

// MenuItemNotFoundError names the menu item an order referenced but the
// store does not hold.
type MenuItemNotFoundError struct {
	ID string
}

func (e *MenuItemNotFoundError) Error() string {
	return "Menu item not found: " + e.ID
}

func validate(req interface{}) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return &ValidationError{Fields: validator.Fields(errs)}
	}
	return nil
}

// canonicalID validates a client supplied id and returns its lowercase hex
// form, the form the store hands back.
func canonicalID(id string) (string, error) {
	oid, err := model.ParseID(id)
	if err != nil {
		return "", ErrInvalidID
	}
	return oid.Hex(), nil
}
