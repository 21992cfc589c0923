package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"go.pilab.hu/credstore/domain"
)

// ScopeRepository implements domain.ScopeRepository over the append-only
// scope vocabulary.
type ScopeRepository struct {
	coll *mongo.Collection
}

func NewScopeRepository(db *mongo.Database) *ScopeRepository {
	return &ScopeRepository{coll: db.Collection(ScopesCollection)}
}

func (r *ScopeRepository) Register(ctx context.Context, name string) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": name},
		bson.M{"$setOnInsert": bson.M{"created_at": time.Now().UTC()}},
		options.UpdateOne().SetUpsert(true),
	)
	return err
}

func (r *ScopeRepository) Exists(ctx context.Context, name string) (bool, error) {
	err := r.coll.FindOne(ctx, bson.M{"_id": name}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

var _ domain.ScopeRepository = (*ScopeRepository)(nil)
