package service

import (
	"context"
	"crypto/ecdsa"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/byunyourim/BC-Adapter/internal/chain"
	"github.com/byunyourim/BC-Adapter/internal/envelope"
	"github.com/byunyourim/BC-Adapter/internal/model"
	"github.com/byunyourim/BC-Adapter/internal/userop"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE
//go:generate mockgen -destination=chain_mocks_test.go -package=$GOPACKAGE github.com/byunyourim/BC-Adapter/internal/chain LedgerClient,BundlerClient

type (
	AccountRepository interface {
		Save(ctx context.Context, account *model.Account) error
		FindByAddress(ctx context.Context, address string) (*model.Account, error)
		FindBySalt(ctx context.Context, salt string) (*model.Account, error)
	}
	Signer interface {
		PublicKey(ctx context.Context) (*ecdsa.PublicKey, error)
		Sign(ctx context.Context, hash common.Hash) ([]byte, error)
	}
	Publisher interface {
		Publish(ctx context.Context, topic model.Topic, env envelope.Envelope) error
	}
	ClientRegistry interface {
		Ledger(ctx context.Context, c model.Chain) (chain.LedgerClient, error)
		Bundler(ctx context.Context, c model.Chain) (chain.BundlerClient, error)
	}
	AddressDeriver interface {
		ComputeAddress(salt string) common.Address
	}
	OperationBuilder interface {
		Build(ctx context.Context, req userop.BuildRequest) (*model.UserOperation, common.Hash, error)
		EntryPoint() common.Address
	}
	DepositRecorder interface {
		Record(ctx context.Context, record model.DepositRecord) error
	}
	JournalRepository interface {
		InsertDepositEvents(ctx context.Context, records []model.DepositRecord) error
	}
	OrchestratorMetrics interface {
		ObserveRequest(code string, started time.Time)
		ObserveRespondFailure()
	}
	DepositMetrics interface {
		OrchestratorMetrics
		ObserveDeposit(chain, outcome string)
	}
	JournalMetrics interface {
		ObserveFlush(err error, size int)
	}
)
