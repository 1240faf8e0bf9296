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

type orderDocument struct {
	ID        primitive.ObjectID `bson:"_id"`
	StaffID   *string            `bson:"staff_id"`
	Items     []model.OrderLine  `bson:"items"`
	Subtotal  float64            `bson:"subtotal"`
	Tax       float64            `bson:"tax"`
	Total     float64            `bson:"total"`
	Status    string             `bson:"status"`
	Note      *string            `bson:"note"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func newOrderDocument(o *model.Order) (orderDocument, error) {
	oid, err := model.ParseID(o.ID)
	if err != nil {
		return orderDocument{}, err
	}
	items := o.Items
	if items == nil {
		items = []model.OrderLine{}
	}
	return orderDocument{
		ID:        oid,
		StaffID:   o.StaffID,
		Items:     items,
		Subtotal:  o.Subtotal,
		Tax:       o.Tax,
		Total:     o.Total,
		Status:    o.Status,
		Note:      o.Note,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}, nil
}

func (d orderDocument) toModel() model.Order {
	items := d.Items
	if items == nil {
		items = []model.OrderLine{}
	}
	return model.Order{
		BaseModel: model.BaseModel{
			ID:        d.ID.Hex(),
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
		StaffID:  d.StaffID,
		Items:    items,
		Subtotal: d.Subtotal,
		Tax:      d.Tax,
		Total:    d.Total,
		Status:   d.Status,
		Note:     d.Note,
	}
}

type orderRepo struct {
	col *mongo.Collection
}

func NewOrderRepo(db *mongo.Database) repository.OrderRepository {
	return &orderRepo{col: db.Collection(orderCollection)}
}

func (r *orderRepo) Create(ctx context.Context, order *model.Order) error {
	stampNew(&order.BaseModel)
	doc, err := newOrderDocument(order)
	if err != nil {
		return err
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("mongostore: insert order: %w", err)
	}
	return nil
}

func (r *orderRepo) FindAll(ctx context.Context) ([]model.Order, error) {
	cur, err := r.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("mongostore: find orders: %w", err)
	}
	var docs []orderDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("mongostore: decode orders: %w", err)
	}
	orders := make([]model.Order, 0, len(docs))
	for _, d := range docs {
		orders = append(orders, d.toModel())
	}
	return orders, nil
}

func (r *orderRepo) FindByID(ctx context.Context, id string) (*model.Order, error) {
	oid, err := model.ParseID(id)
	if err != nil {
		return nil, err
	}
	var doc orderDocument
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("mongostore: find order: %w", err)
	}
	order := doc.toModel()
	return &order, nil
}
