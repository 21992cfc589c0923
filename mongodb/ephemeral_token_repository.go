package mongodb

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"go.pilab.hu/credstore/domain"
	serrors "go.pilab.hu/credstore/errors"
)

// EphemeralTokenRepository implements domain.EphemeralTokenRepository.
// Token identifiers are the _id, so identifier uniqueness comes from the
// primary-key constraint rather than application logic.
type EphemeralTokenRepository struct {
	coll *mongo.Collection
}

func NewEphemeralTokenRepository(db *mongo.Database) *EphemeralTokenRepository {
	return &EphemeralTokenRepository{coll: db.Collection(EphemeralTokensCollection)}
}

func (r *EphemeralTokenRepository) Insert(ctx context.Context, token *domain.EphemeralToken) error {
	_, err := r.coll.InsertOne(ctx, token)
	if mongo.IsDuplicateKeyError(err) {
		return serrors.ErrDuplicateToken
	}
	return err
}

func (r *EphemeralTokenRepository) Get(ctx context.Context, id []byte) (*domain.EphemeralToken, error) {
	var token domain.EphemeralToken
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&token)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, serrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &token, nil
}

func (r *EphemeralTokenRepository) DeleteExpired(ctx context.Context, horizon time.Time) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{"expires_at": bson.M{"$lt": horizon}})
	if err != nil {
		return 0, err
	}
	if res.DeletedCount > 0 {
		log.Debug().Int64("deleted", res.DeletedCount).Time("horizon", horizon).
			Msg("swept expired ephemeral tokens")
	}
	return res.DeletedCount, nil
}

var _ domain.EphemeralTokenRepository = (*EphemeralTokenRepository)(nil)
