package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/byunyourim/BC-Adapter/internal/chain"
	"github.com/byunyourim/BC-Adapter/internal/metrics"
	"github.com/byunyourim/BC-Adapter/internal/model"
)

// LedgerClient is a node client that records every call in rpcMetrics.
type LedgerClient struct {
	client     ethClient
	rpcMetrics RPCMetrics
}

func NewLedgerClient(client ethClient, rpcMetrics RPCMetrics) *LedgerClient {
	return &LedgerClient{
		client:     client,
		rpcMetrics: rpcMetrics,
	}
}

// DialLedger connects to a node over url. It satisfies chain.LedgerDialer.
func DialLedger(ctx context.Context, c model.Chain, url string) (chain.LedgerClient, error) {
	client, err := ethclient.DialContext(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("dial ledger %s: %w", c, err)
	}
	return NewLedgerClient(client, metrics.NewRPCClient(string(c), string(chain.RoleLedger))), nil
}

func (r *LedgerClient) CodeAt(ctx context.Context, account common.Address) (code []byte, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_code", err, started)
	}()
	return r.client.CodeAt(ctx, account, nil)
}

func (r *LedgerClient) CallContract(ctx context.Context, msg geth.CallMsg) (out []byte, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("call", err, started)
	}()
	return r.client.CallContract(ctx, msg, nil)
}

// TransactionReceipt returns nil, nil for hashes the node has not seen.
func (r *LedgerClient) TransactionReceipt(ctx context.Context, txHash common.Hash) (receipt *types.Receipt, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_transaction_receipt", err, started)
	}()
	receipt, err = r.client.TransactionReceipt(ctx, txHash)
	if errors.Is(err, geth.NotFound) {
		return nil, nil
	}
	return receipt, err
}

func (r *LedgerClient) BlockNumber(ctx context.Context) (height uint64, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("block_number", err, started)
	}()
	return r.client.BlockNumber(ctx)
}

func (r *LedgerClient) HeaderByNumber(ctx context.Context, number *big.Int) (header *types.Header, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_header", err, started)
	}()
	return r.client.HeaderByNumber(ctx, number)
}

func (r *LedgerClient) SuggestGasTipCap(ctx context.Context) (tip *big.Int, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("max_priority_fee_per_gas", err, started)
	}()
	return r.client.SuggestGasTipCap(ctx)
}

func (r *LedgerClient) SuggestGasPrice(ctx context.Context) (price *big.Int, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("gas_price", err, started)
	}()
	return r.client.SuggestGasPrice(ctx)
}

func (r *LedgerClient) Close() {
	r.client.Close()
}
