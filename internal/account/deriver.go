package account

import (
	"errors"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

var stringArgs = abi.Arguments{{Type: mustType("string")}}

func mustType(t string) abi.Type {
	typ, err := abi.NewType(t, "", nil)
	if err != nil {
		panic(err)
	}
	return typ
}

// SaltDigest is keccak256 over the ABI encoding of salt as a single dynamic string.
func SaltDigest(salt string) [32]byte {
	packed, err := stringArgs.Pack(salt)
	if err != nil {
		// Packing a Go string into a string argument cannot fail.
		panic(err)
	}
	return crypto.Keccak256Hash(packed)
}

// Deriver computes counterfactual wallet addresses for a factory.
type Deriver struct {
	factory      common.Address
	initCodeHash common.Hash
}

func NewDeriver(factory common.Address, initCodeHash common.Hash) (*Deriver, error) {
	if factory == (common.Address{}) {
		return nil, errors.New("create2 factory address is required")
	}
	if initCodeHash == (common.Hash{}) {
		return nil, errors.New("create2 init code hash is required")
	}
	return &Deriver{factory: factory, initCodeHash: initCodeHash}, nil
}

// ComputeAddress returns the CREATE2 address the factory will deploy for salt.
func (d *Deriver) ComputeAddress(salt string) common.Address {
	return crypto.CreateAddress2(d.factory, SaltDigest(salt), d.initCodeHash.Bytes())
}
