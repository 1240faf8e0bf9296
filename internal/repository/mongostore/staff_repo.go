package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cafeteria-admin/internal/model"
	"cafeteria-admin/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type staffDocument struct {
	ID        primitive.ObjectID `bson:"_id"`
	Name      string             `bson:"name"`
	Role      string             `bson:"role"`
	PIN       string             `bson:"pin"`
	IsActive  bool               `bson:"is_active"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (d staffDocument) toModel() model.Staff {
	return model.Staff{
		BaseModel: model.BaseModel{
			ID:        d.ID.Hex(),
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
		Name:     d.Name,
		Role:     d.Role,
		PIN:      d.PIN,
		IsActive: d.IsActive,
	}
}

type staffRepo struct {
	col *mongo.Collection
}

func NewStaffRepo(db *mongo.Database) repository.StaffRepository {
	return &staffRepo{col: db.Collection(staffCollection)}
}

func (r *staffRepo) Create(ctx context.Context, staff *model.Staff) error {
	stampNew(&staff.BaseModel)
	oid, err := model.ParseID(staff.ID)
	if err != nil {
		return err
	}
	doc := staffDocument{
		ID:        oid,
		Name:      staff.Name,
		Role:      staff.Role,
		PIN:       staff.PIN,
		IsActive:  staff.IsActive,
		CreatedAt: staff.CreatedAt,
		UpdatedAt: staff.UpdatedAt,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("mongostore: insert staff: %w", err)
	}
	return nil
}

func (r *staffRepo) FindActiveByPIN(ctx context.Context, pin string) (*model.Staff, error) {
	var doc staffDocument
	err := r.col.FindOne(ctx, bson.M{"pin": pin, "is_active": true}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("mongostore: find staff by pin: %w", err)
	}
	staff := doc.toModel()
	return &staff, nil
}
