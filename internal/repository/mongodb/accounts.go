package mongodb

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/byunyourim/BC-Adapter/internal/apperr"
	"github.com/byunyourim/BC-Adapter/internal/model"
)

type accountDocument struct {
	Address   string    `bson:"address"`
	Chain     string    `bson:"chain"`
	Salt      string    `bson:"salt"`
	CreatedAt time.Time `bson:"created_at"`
}

func (d accountDocument) toModel() *model.Account {
	return &model.Account{
		Address:   d.Address,
		Chain:     model.Chain(d.Chain),
		Salt:      d.Salt,
		CreatedAt: d.CreatedAt,
	}
}

// Save inserts a new account. The address is stored lower-cased.
// A salt or address that is already stored yields an error wrapping model.ErrAccountExists.
func (r *Repository) Save(ctx context.Context, account *model.Account) (err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("save_account", err, started)
	}()

	createdAt := account.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	doc := accountDocument{
		Address:   strings.ToLower(account.Address),
		Chain:     string(account.Chain),
		Salt:      account.Salt,
		CreatedAt: createdAt,
	}

	if _, err = r.accounts.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperr.Wrap(apperr.CodeDBSaveFailed, fmt.Errorf("insert account %s: %w", doc.Address, model.ErrAccountExists))
		}
		return apperr.Wrap(apperr.CodeDBSaveFailed, fmt.Errorf("insert account: %w", err))
	}
	return nil
}

// FindByAddress returns nil, nil when no account has address.
func (r *Repository) FindByAddress(ctx context.Context, address string) (account *model.Account, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("find_account_by_address", err, started)
	}()
	return r.findOne(ctx, bson.M{"address": strings.ToLower(address)})
}

// FindBySalt returns nil, nil when no account was derived from salt.
func (r *Repository) FindBySalt(ctx context.Context, salt string) (account *model.Account, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("find_account_by_salt", err, started)
	}()
	return r.findOne(ctx, bson.M{"salt": salt})
}

func (r *Repository) findOne(ctx context.Context, filter bson.M) (*model.Account, error) {
	var doc accountDocument
	err := r.accounts.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeDBQueryFailed, fmt.Errorf("find account: %w", err))
	}
	return doc.toModel(), nil
}
