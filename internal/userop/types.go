package userop

import (
	"context"

	"github.com/byunyourim/BC-Adapter/internal/chain"
	"github.com/byunyourim/BC-Adapter/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE
//go:generate mockgen -destination=chain_mocks_test.go -package=$GOPACKAGE github.com/byunyourim/BC-Adapter/internal/chain LedgerClient,BundlerClient

type (
	ClientRegistry interface {
		Ledger(ctx context.Context, c model.Chain) (chain.LedgerClient, error)
		Bundler(ctx context.Context, c model.Chain) (chain.BundlerClient, error)
	}
)
