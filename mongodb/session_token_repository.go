package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"go.pilab.hu/credstore/domain"
	serrors "go.pilab.hu/credstore/errors"
)

// SessionTokenRepository implements domain.SessionTokenRepository. Tokens
// are indexed by the SHA-256 digest of their text form; the raw secret is
// never stored.
type SessionTokenRepository struct {
	coll *mongo.Collection
}

func NewSessionTokenRepository(ctx context.Context, db *mongo.Database) (*SessionTokenRepository, error) {
	repo := &SessionTokenRepository{coll: db.Collection(SessionTokensCollection)}
	if err := repo.createIndexes(ctx); err != nil {
		return nil, fmt.Errorf("creating %s indexes: %w", SessionTokensCollection, err)
	}
	return repo, nil
}

func (r *SessionTokenRepository) createIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "token_hash", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *SessionTokenRepository) Insert(ctx context.Context, token *domain.SessionToken) error {
	_, err := r.coll.InsertOne(ctx, token)
	if mongo.IsDuplicateKeyError(err) {
		return serrors.ErrDuplicateToken
	}
	return err
}

// Touch performs the liveness check and the last_used_at bump as one
// FindOneAndUpdate, so no concurrent reader can observe the token between
// the two. The expiry filter is strict: a token expiring exactly at the
// horizon is still valid.
func (r *SessionTokenRepository) Touch(ctx context.Context, tokenHash string, now, horizon time.Time) (*domain.SessionToken, error) {
	var token domain.SessionToken
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"token_hash": tokenHash, "expires_at": bson.M{"$gte": horizon}},
		bson.M{"$set": bson.M{"last_used_at": now}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&token)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, serrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &token, nil
}

func (r *SessionTokenRepository) DeleteByHash(ctx context.Context, tokenHash string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"token_hash": tokenHash})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return serrors.ErrNotFound
	}
	return nil
}

var _ domain.SessionTokenRepository = (*SessionTokenRepository)(nil)
