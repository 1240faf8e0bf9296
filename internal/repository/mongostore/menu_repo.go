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

type menuItemDocument struct {
	ID          primitive.ObjectID `bson:"_id"`
	Title       string             `bson:"title"`
	Description *string            `bson:"description"`
	Price       float64            `bson:"price"`
	Category    *string            `bson:"category"`
	Available   bool               `bson:"available"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func newMenuItemDocument(item *model.MenuItem) (menuItemDocument, error) {
	oid, err := model.ParseID(item.ID)
	if err != nil {
		return menuItemDocument{}, err
	}
	return menuItemDocument{
		ID:          oid,
		Title:       item.Title,
		Description: item.Description,
		Price:       item.Price,
		Category:    item.Category,
		Available:   item.Available,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}, nil
}

func (d menuItemDocument) toModel() model.MenuItem {
	return model.MenuItem{
		BaseModel: model.BaseModel{
			ID:        d.ID.Hex(),
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
		Title:       d.Title,
		Description: d.Description,
		Price:       d.Price,
		Category:    d.Category,
		Available:   d.Available,
	}
}

type menuRepo struct {
	col *mongo.Collection
}

func NewMenuRepo(db *mongo.Database) repository.MenuRepository {
	return &menuRepo{col: db.Collection(menuCollection)}
}

func (r *menuRepo) Create(ctx context.Context, item *model.MenuItem) error {
	stampNew(&item.BaseModel)
	doc, err := newMenuItemDocument(item)
	if err != nil {
		return err
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("mongostore: insert menu item: %w", err)
	}
	return nil
}

func (r *menuRepo) FindAll(ctx context.Context) ([]model.MenuItem, error) {
	return r.find(ctx, bson.D{})
}

func (r *menuRepo) FindByID(ctx context.Context, id string) (*model.MenuItem, error) {
	oid, err := model.ParseID(id)
	if err != nil {
		return nil, err
	}
	var doc menuItemDocument
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("mongostore: find menu item: %w", err)
	}
	item := doc.toModel()
	return &item, nil
}

func (r *menuRepo) FindByIDs(ctx context.Context, ids []string) ([]model.MenuItem, error) {
	oids, err := parseIDs(ids)
	if err != nil {
		return nil, err
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": oids}})
}

func (r *menuRepo) find(ctx context.Context, filter interface{}) ([]model.MenuItem, error) {
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("mongostore: find menu items: %w", err)
	}
	var docs []menuItemDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("mongostore: decode menu items: %w", err)
	}
	items := make([]model.MenuItem, 0, len(docs))
	for _, d := range docs {
		items = append(items, d.toModel())
	}
	return items, nil
}
