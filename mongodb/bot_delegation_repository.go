package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"go.pilab.hu/credstore/domain"
	serrors "go.pilab.hu/credstore/errors"
)

// BotDelegationRepository implements domain.BotDelegationRepository. The
// user id is the _id, which gives the at-most-one-bot-per-user rule for
// free and makes Set a plain replace.
type BotDelegationRepository struct {
	coll *mongo.Collection
}

func NewBotDelegationRepository(db *mongo.Database) *BotDelegationRepository {
	return &BotDelegationRepository{coll: db.Collection(BotDelegationsCollection)}
}

func (r *BotDelegationRepository) Set(ctx context.Context, delegation *domain.BotDelegation) error {
	_, err := r.coll.ReplaceOne(ctx,
		bson.M{"_id": delegation.UserID},
		delegation,
		options.Replace().SetUpsert(true),
	)
	return err
}

func (r *BotDelegationRepository) Get(ctx context.Context, userID string) (*domain.BotDelegation, error) {
	var delegation domain.BotDelegation
	err := r.coll.FindOne(ctx, bson.M{"_id": userID}).Decode(&delegation)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, serrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &delegation, nil
}

func (r *BotDelegationRepository) Delete(ctx context.Context, userID string) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": userID})
	return err
}

var _ domain.BotDelegationRepository = (*BotDelegationRepository)(nil)
