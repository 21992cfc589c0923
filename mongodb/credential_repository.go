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

// CredentialRepository implements domain.CredentialRepository. Each
// (account, token type) slot maps to exactly one document whose _id is
// derived from the slot, with the scope set embedded. Replace therefore
// supersedes the old token and its scopes in a single atomic write: a
// reader sees the old document or the new one, never a token with partial
// scopes. The primary key is the at-most-one-live-credential constraint.
type CredentialRepository struct {
	coll *mongo.Collection
}

func NewCredentialRepository(db *mongo.Database) *CredentialRepository {
	return &CredentialRepository{coll: db.Collection(CredentialsCollection)}
}

func credentialID(accountID, tokenType string) string {
	return accountID + "/" + tokenType
}

func (r *CredentialRepository) Replace(ctx context.Context, cred *domain.ProviderCredential) error {
	cred.ID = credentialID(cred.AccountID, cred.TokenType)
	_, err := r.coll.ReplaceOne(ctx,
		bson.M{"_id": cred.ID},
		cred,
		options.Replace().SetUpsert(true),
	)
	return err
}

func (r *CredentialRepository) Get(ctx context.Context, accountID, tokenType string) (*domain.ProviderCredential, error) {
	var cred domain.ProviderCredential
	err := r.coll.FindOne(ctx, bson.M{"_id": credentialID(accountID, tokenType)}).Decode(&cred)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, serrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cred, nil
}

var _ domain.CredentialRepository = (*CredentialRepository)(nil)
