package model

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrInvalidID = errors.New("invalid id")

// BaseModel carries the store-assigned identifier and audit timestamps.
// IDs are 24-char hex ObjectIDs on every backend.
type BaseModel struct {
	ID        string    `json:"_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewID returns a fresh identifier in store format.
func NewID() string {
	return primitive.NewObjectID().Hex()
}

// ParseID validates an identifier taken from client input.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}

// ValidID reports whether id is a well-formed store identifier.
func ValidID(id string) bool {
	_, err := ParseID(id)
	return err == nil
}
