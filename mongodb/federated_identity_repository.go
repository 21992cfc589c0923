package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"go.pilab.hu/credstore/domain"
	serrors "go.pilab.hu/credstore/errors"
)

// FederatedIdentityRepository implements domain.FederatedIdentityRepository.
type FederatedIdentityRepository struct {
	coll *mongo.Collection
}

func NewFederatedIdentityRepository(ctx context.Context, db *mongo.Database) (*FederatedIdentityRepository, error) {
	repo := &FederatedIdentityRepository{coll: db.Collection(FederatedIdentitiesCollection)}
	if err := repo.createIndexes(ctx); err != nil {
		return nil, fmt.Errorf("creating %s indexes: %w", FederatedIdentitiesCollection, err)
	}
	return repo, nil
}

func (r *FederatedIdentityRepository) createIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			// A given external identity links to at most one local user.
			Keys:    bson.D{{Key: "provider", Value: 1}, {Key: "subject", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			// A user links at most one identity per provider.
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "provider", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	return err
}

func (r *FederatedIdentityRepository) Create(ctx context.Context, identity *domain.FederatedIdentity) error {
	if identity.ID == "" {
		identity.ID = bson.NewObjectID().Hex()
	}
	_, err := r.coll.InsertOne(ctx, identity)
	if mongo.IsDuplicateKeyError(err) {
		return serrors.ErrDuplicateIdentity
	}
	return err
}

func (r *FederatedIdentityRepository) GetBySubject(ctx context.Context, provider, subject string) (*domain.FederatedIdentity, error) {
	var identity domain.FederatedIdentity
	err := r.coll.FindOne(ctx, bson.M{"provider": provider, "subject": subject}).Decode(&identity)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, serrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &identity, nil
}

func (r *FederatedIdentityRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.FederatedIdentity, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var identities []*domain.FederatedIdentity
	if err := cursor.All(ctx, &identities); err != nil {
		return nil, err
	}
	return identities, nil
}

var _ domain.FederatedIdentityRepository = (*FederatedIdentityRepository)(nil)
