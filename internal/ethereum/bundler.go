package ethereum

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/byunyourim/BC-Adapter/internal/chain"
	"github.com/byunyourim/BC-Adapter/internal/metrics"
	"github.com/byunyourim/BC-Adapter/internal/model"
)

// BundlerClient calls the ERC-4337 eth_* bundler methods.
type BundlerClient struct {
	client     *rpc.Client
	rpcMetrics RPCMetrics
}

func NewBundlerClient(client *rpc.Client, rpcMetrics RPCMetrics) *BundlerClient {
	return &BundlerClient{
		client:     client,
		rpcMetrics: rpcMetrics,
	}
}

// DialBundler connects to a bundler over url. It satisfies chain.BundlerDialer.
func DialBundler(ctx context.Context, c model.Chain, url string) (chain.BundlerClient, error) {
	client, err := rpc.DialContext(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("dial bundler %s: %w", c, err)
	}
	return NewBundlerClient(client, metrics.NewRPCClient(string(c), string(chain.RoleBundler))), nil
}

type gasEstimateJSON struct {
	CallGasLimit         quantity `json:"callGasLimit"`
	VerificationGasLimit quantity `json:"verificationGasLimit"`
	PreVerificationGas   quantity `json:"preVerificationGas"`
}

func (r *BundlerClient) EstimateUserOperationGas(ctx context.Context, op *model.UserOperation, entryPoint common.Address) (estimate *model.GasEstimate, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("estimate_user_operation_gas", err, started)
	}()

	var raw gasEstimateJSON
	if err = r.client.CallContext(ctx, &raw, "eth_estimateUserOperationGas", op, entryPoint); err != nil {
		return nil, err
	}
	return &model.GasEstimate{
		CallGasLimit:         raw.CallGasLimit.big(),
		VerificationGasLimit: raw.VerificationGasLimit.big(),
		PreVerificationGas:   raw.PreVerificationGas.big(),
	}, nil
}

func (r *BundlerClient) SendUserOperation(ctx context.Context, op *model.UserOperation, entryPoint common.Address) (hash string, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("send_user_operation", err, started)
	}()

	if err = r.client.CallContext(ctx, &hash, "eth_sendUserOperation", op, entryPoint); err != nil {
		return "", err
	}
	if hash == "" {
		return "", errors.New("bundler returned an empty user operation hash")
	}
	return hash, nil
}

type userOpReceiptJSON struct {
	UserOpHash    string   `json:"userOpHash"`
	ActualGasCost quantity `json:"actualGasCost"`
	ActualGasUsed quantity `json:"actualGasUsed"`
	Receipt       *struct {
		Status          string `json:"status"`
		TransactionHash string `json:"transactionHash"`
	} `json:"receipt"`
}

// UserOperationReceipt returns nil, nil while the bundler has no receipt.
func (r *BundlerClient) UserOperationReceipt(ctx context.Context, userOpHash string) (receipt *model.UserOperationReceipt, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_user_operation_receipt", err, started)
	}()

	var raw *userOpReceiptJSON
	if err = r.client.CallContext(ctx, &raw, "eth_getUserOperationReceipt", userOpHash); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	receipt = &model.UserOperationReceipt{
		UserOpHash:    raw.UserOpHash,
		ActualGasCost: raw.ActualGasCost.big(),
		ActualGasUsed: raw.ActualGasUsed.big(),
	}
	if raw.Receipt != nil {
		receipt.Success = raw.Receipt.Status == "0x1"
		receipt.TxHash = raw.Receipt.TransactionHash
	}
	if receipt.UserOpHash == "" {
		receipt.UserOpHash = userOpHash
	}
	return receipt, nil
}

func (r *BundlerClient) Close() {
	r.client.Close()
}

// quantity accepts 0x-hex strings, decimal strings and bare JSON numbers.
type quantity struct {
	v *big.Int
}

func (q *quantity) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var s string
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
	} else {
		s = string(data)
	}

	if has0xPrefix(s) {
		v, ok := new(big.Int).SetString(s[2:], 16)
		if !ok {
			return fmt.Errorf("decode quantity %q", s)
		}
		q.v = v
		return nil
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return fmt.Errorf("decode quantity %q", s)
	}
	q.v = v
	return nil
}

func (q quantity) big() *big.Int {
	if q.v == nil {
		return new(big.Int)
	}
	return q.v
}

func has0xPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}
