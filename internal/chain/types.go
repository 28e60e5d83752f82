package chain

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/byunyourim/BC-Adapter/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// LedgerClient is the subset of a node's JSON-RPC surface the adapter uses.
	LedgerClient interface {
		CodeAt(ctx context.Context, account common.Address) ([]byte, error)
		CallContract(ctx context.Context, msg ethereum.CallMsg) ([]byte, error)
		// TransactionReceipt returns nil, nil when the node does not know the hash yet.
		TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
		BlockNumber(ctx context.Context) (uint64, error)
		HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
		SuggestGasTipCap(ctx context.Context) (*big.Int, error)
		SuggestGasPrice(ctx context.Context) (*big.Int, error)
		Close()
	}

	// BundlerClient speaks the ERC-4337 bundler RPC namespace.
	BundlerClient interface {
		EstimateUserOperationGas(ctx context.Context, op *model.UserOperation, entryPoint common.Address) (*model.GasEstimate, error)
		SendUserOperation(ctx context.Context, op *model.UserOperation, entryPoint common.Address) (string, error)
		// UserOperationReceipt returns nil, nil while the operation is not yet included.
		UserOperationReceipt(ctx context.Context, userOpHash string) (*model.UserOperationReceipt, error)
		Close()
	}
)

// LedgerDialer opens a ledger client for chain at url.
type LedgerDialer func(ctx context.Context, chain model.Chain, url string) (LedgerClient, error)

// BundlerDialer opens a bundler client for chain at url.
type BundlerDialer func(ctx context.Context, chain model.Chain, url string) (BundlerClient, error)
