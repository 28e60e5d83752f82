package userop

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/byunyourim/BC-Adapter/internal/apperr"
	"github.com/byunyourim/BC-Adapter/internal/chain"
	"github.com/byunyourim/BC-Adapter/internal/model"
)

// NonceKey is the EntryPoint nonce lane used for every operation.
var NonceKey = big.NewInt(0)

// BuildRequest describes a transfer out of a smart wallet.
type BuildRequest struct {
	Chain  model.Chain
	Sender string
	To     string
	Amount string
	Token  string
	// Owner and Salt are only used when the wallet is not deployed yet.
	Owner common.Address
	Salt  string
}

// Builder assembles unsigned user operations from chain state.
type Builder struct {
	registry   ClientRegistry
	hasher     *Hasher
	factory    common.Address
	entryPoint common.Address
	logger     *zap.Logger
}

func NewBuilder(registry ClientRegistry, factory, entryPoint common.Address, logger *zap.Logger) (*Builder, error) {
	if registry == nil {
		return nil, errors.New("client registry is required")
	}
	if factory == (common.Address{}) {
		return nil, errors.New("account factory address is required")
	}
	if entryPoint == (common.Address{}) {
		return nil, errors.New("entry point address is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{
		registry:   registry,
		hasher:     NewHasher(entryPoint),
		factory:    factory,
		entryPoint: entryPoint,
		logger:     logger.Named("userop_builder"),
	}, nil
}

// EntryPoint returns the address operations are built for.
func (b *Builder) EntryPoint() common.Address {
	return b.entryPoint
}

// Build returns an unsigned operation and its hash.
func (b *Builder) Build(ctx context.Context, req BuildRequest) (*model.UserOperation, common.Hash, error) {
	sender, err := ParseAddress("sender", req.Sender)
	if err != nil {
		return nil, common.Hash{}, err
	}
	to, err := ParseAddress("toAddress", req.To)
	if err != nil {
		return nil, common.Hash{}, err
	}
	amount, err := ParseAmount(req.Amount)
	if err != nil {
		return nil, common.Hash{}, err
	}
	callData, err := TransferCallData(req.Token, to, amount)
	if err != nil {
		return nil, common.Hash{}, apperr.Wrapf(apperr.CodeValidation, err, "encode call data")
	}

	ledger, err := b.registry.Ledger(ctx, req.Chain)
	if err != nil {
		return nil, common.Hash{}, err
	}
	bundler, err := b.registry.Bundler(ctx, req.Chain)
	if err != nil {
		return nil, common.Hash{}, err
	}

	initCode, err := b.initCode(ctx, ledger, sender, req.Owner, req.Salt)
	if err != nil {
		return nil, common.Hash{}, apperr.Wrapf(apperr.CodeBundlerBuildFailed, err, "get code")
	}

	nonce, err := b.nonce(ctx, ledger, sender)
	if err != nil {
		return nil, common.Hash{}, apperr.Wrapf(apperr.CodeBundlerBuildFailed, err, "get nonce")
	}

	op := &model.UserOperation{
		Sender:               sender,
		Nonce:                nonce,
		InitCode:             initCode,
		CallData:             callData,
		CallGasLimit:         new(big.Int),
		VerificationGasLimit: new(big.Int),
		PreVerificationGas:   new(big.Int),
		MaxFeePerGas:         new(big.Int),
		MaxPriorityFeePerGas: new(big.Int),
		PaymasterAndData:     []byte{},
	}

	gas, err := bundler.EstimateUserOperationGas(ctx, op, b.entryPoint)
	if err == nil && gas == nil {
		err = errors.New("empty gas estimate")
	}
	if err != nil {
		return nil, common.Hash{}, apperr.Wrapf(apperr.CodeBundlerBuildFailed, err, "estimate gas")
	}
	op.CallGasLimit = orZero(gas.CallGasLimit)
	op.VerificationGasLimit = orZero(gas.VerificationGasLimit)
	op.PreVerificationGas = orZero(gas.PreVerificationGas)

	maxFee, tip, err := feeData(ctx, ledger)
	if err != nil {
		return nil, common.Hash{}, apperr.Wrapf(apperr.CodeBundlerBuildFailed, err, "fee data")
	}
	op.MaxFeePerGas = maxFee
	op.MaxPriorityFeePerGas = tip

	hash, err := b.hasher.Hash(op, req.Chain)
	if err != nil {
		return nil, common.Hash{}, apperr.Wrapf(apperr.CodeBundlerBuildFailed, err, "hash")
	}

	b.logger.Debug("user operation built",
		zap.String("chain", string(req.Chain)),
		zap.String("sender", sender.Hex()),
		zap.Bool("deploy", len(initCode) > 0),
		zap.String("nonce", nonce.String()),
		zap.String("user_op_hash", hash.Hex()),
	)
	return op, hash, nil
}

func (b *Builder) initCode(ctx context.Context, ledger chain.LedgerClient, sender, owner common.Address, salt string) ([]byte, error) {
	code, err := ledger.CodeAt(ctx, sender)
	if err != nil {
		return nil, err
	}
	if len(code) > 0 {
		return []byte{}, nil
	}
	return InitCode(b.factory, owner, salt)
}

func (b *Builder) nonce(ctx context.Context, ledger chain.LedgerClient, sender common.Address) (*big.Int, error) {
	input, err := walletABI.Pack("getNonce", sender, NonceKey)
	if err != nil {
		return nil, fmt.Errorf("pack getNonce: %w", err)
	}
	to := b.entryPoint
	out, err := ledger.CallContract(ctx, ethereum.CallMsg{To: &to, Data: input})
	if err != nil {
		return nil, err
	}
	values, err := walletABI.Unpack("getNonce", out)
	if err != nil {
		return nil, fmt.Errorf("unpack getNonce: %w", err)
	}
	nonce, ok := values[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("unexpected getNonce result %T", values[0])
	}
	return nonce, nil
}

// feeData returns maxFeePerGas and maxPriorityFeePerGas.
// Chains without a base fee get the legacy gas price for both.
func feeData(ctx context.Context, oracle chain.LedgerClient) (*big.Int, *big.Int, error) {
	head, err := oracle.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("latest header: %w", err)
	}

	if head == nil || head.BaseFee == nil {
		price, err := oracle.SuggestGasPrice(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("gas price: %w", err)
		}
		price = orZero(price)
		return price, new(big.Int).Set(price), nil
	}

	tip, err := oracle.SuggestGasTipCap(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("gas tip cap: %w", err)
	}
	tip = orZero(tip)
	maxFee := new(big.Int).Mul(head.BaseFee, big.NewInt(2))
	maxFee.Add(maxFee, tip)
	return maxFee, tip, nil
}

func orZero(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v
}
