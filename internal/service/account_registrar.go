package service

import (
	"context"
	"errors"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/byunyourim/BC-Adapter/internal/apperr"
	"github.com/byunyourim/BC-Adapter/internal/chain"
	"github.com/byunyourim/BC-Adapter/internal/model"
)

// AccountRegistrar derives and persists smart wallets, one per salt.
type AccountRegistrar struct {
	repo    AccountRepository
	signer  Signer
	deriver AddressDeriver
	resp    responder
	logger  *zap.Logger
}

// NewAccountRegistrar builds the account creation use case.
func NewAccountRegistrar(
	repo AccountRepository,
	signer Signer,
	deriver AddressDeriver,
	publisher Publisher,
	metrics OrchestratorMetrics,
	logger *zap.Logger,
) (*AccountRegistrar, error) {
	if repo == nil || signer == nil || deriver == nil || publisher == nil || metrics == nil {
		return nil, errors.New("account registrar: missing dependency")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("account_registrar")
	return &AccountRegistrar{
		repo:    repo,
		signer:  signer,
		deriver: deriver,
		resp: responder{
			topic:     model.TopicAccountCreated,
			publisher: publisher,
			metrics:   metrics,
			logger:    logger,
		},
		logger: logger,
	}, nil
}

// Create answers on adapter.account.created. A salt that is already registered
// yields the stored account instead of a new one.
func (s *AccountRegistrar) Create(ctx context.Context, req model.CreateAccountRequest) {
	s.resp.respond(ctx, req.RequestID, nil, func(ctx context.Context) (map[string]any, error) {
		return s.create(ctx, req)
	})
}

func (s *AccountRegistrar) create(ctx context.Context, req model.CreateAccountRequest) (map[string]any, error) {
	c, err := chain.Parse(req.Chain)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.FindBySalt(ctx, req.Salt)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		s.logger.Info("salt already registered, returning existing account",
			zap.String("salt", req.Salt),
			zap.String("address", existing.Address))
		return accountCreated(existing), nil
	}

	if _, err := s.signer.PublicKey(ctx); err != nil {
		return nil, apperr.Wrap(apperr.CodeKMSKeyRetrievalFailed, err)
	}

	account := &model.Account{
		Address:   s.deriver.ComputeAddress(req.Salt).Hex(),
		Chain:     c,
		Salt:      req.Salt,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Save(ctx, account); err != nil {
		if !errors.Is(err, model.ErrAccountExists) {
			return nil, err
		}
		// A concurrent request with the same salt won the insert.
		winner, findErr := s.repo.FindBySalt(ctx, req.Salt)
		if findErr != nil {
			return nil, findErr
		}
		if winner == nil {
			return nil, err
		}
		return accountCreated(winner), nil
	}

	s.logger.Info("account created",
		zap.String("address", account.Address),
		zap.String("chain", string(c)))
	return accountCreated(account), nil
}

func accountCreated(account *model.Account) map[string]any {
	return map[string]any{
		"address": common.HexToAddress(account.Address).Hex(),
		"chain":   string(account.Chain),
		"salt":    account.Salt,
	}
}
