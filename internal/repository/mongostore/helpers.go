package mongostore

import (
	"time"

	"cafeteria-admin/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// stampNew assigns an id (unless the caller chose one) and the audit
// timestamps of a record about to be inserted.
func stampNew(b *model.BaseModel) {
	if b.ID == "" {
		b.ID = model.NewID()
	}
	now := time.Now().UTC().Truncate(time.Millisecond)
	b.CreatedAt = now
	b.UpdatedAt = now
}

func parseIDs(ids []string) ([]primitive.ObjectID, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := model.ParseID(id)
		if err != nil {
			return nil, err
		}
		oids = append(oids, oid)
	}
	return oids, nil
}
