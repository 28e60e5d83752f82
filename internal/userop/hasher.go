package userop

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/byunyourim/BC-Adapter/internal/chain"
	"github.com/byunyourim/BC-Adapter/internal/model"
)

var (
	packedOpArgs = abi.Arguments{
		{Type: mustType("address")},
		{Type: mustType("uint256")},
		{Type: mustType("bytes32")},
		{Type: mustType("bytes32")},
		{Type: mustType("uint256")},
		{Type: mustType("uint256")},
		{Type: mustType("uint256")},
		{Type: mustType("uint256")},
		{Type: mustType("uint256")},
		{Type: mustType("bytes32")},
	}
	domainArgs = abi.Arguments{
		{Type: mustType("bytes32")},
		{Type: mustType("address")},
		{Type: mustType("uint256")},
	}
)

// Hasher computes the EntryPoint v0.6 userOpHash.
type Hasher struct {
	entryPoint common.Address
}

func NewHasher(entryPoint common.Address) *Hasher {
	return &Hasher{entryPoint: entryPoint}
}

// Hash binds op to the entry point and the chain id of c. The signature is not covered.
func (h *Hasher) Hash(op *model.UserOperation, c model.Chain) (common.Hash, error) {
	chainID, err := chain.ID(c)
	if err != nil {
		return common.Hash{}, err
	}

	packed, err := packedOpArgs.Pack(
		op.Sender,
		orZero(op.Nonce),
		crypto.Keccak256Hash(op.InitCode),
		crypto.Keccak256Hash(op.CallData),
		orZero(op.CallGasLimit),
		orZero(op.VerificationGasLimit),
		orZero(op.PreVerificationGas),
		orZero(op.MaxFeePerGas),
		orZero(op.MaxPriorityFeePerGas),
		crypto.Keccak256Hash(op.PaymasterAndData),
	)
	if err != nil {
		return common.Hash{}, fmt.Errorf("pack user operation: %w", err)
	}

	encoded, err := domainArgs.Pack(crypto.Keccak256Hash(packed), h.entryPoint, chainID)
	if err != nil {
		return common.Hash{}, fmt.Errorf("pack hash domain: %w", err)
	}
	return crypto.Keccak256Hash(encoded), nil
}
