package ethereum

import (
	"context"
	"math/big"
	"time"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}

	ethClient interface {
		CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error)
		CallContract(ctx context.Context, msg geth.CallMsg, blockNumber *big.Int) ([]byte, error)
		TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
		BlockNumber(ctx context.Context) (uint64, error)
		HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
		SuggestGasTipCap(ctx context.Context) (*big.Int, error)
		SuggestGasPrice(ctx context.Context) (*big.Int, error)
		Close()
	}
)
