package model

import (
	"encoding/json"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

var (
	ErrAlreadySigned  = errors.New("user operation already signed")
	ErrEmptySignature = errors.New("empty signature")
)

// UserOperation is an ERC-4337 v0.6 user operation.
// Signature stays empty until AttachSignature is called.
type UserOperation struct {
	Sender               common.Address
	Nonce                *big.Int
	InitCode             []byte
	CallData             []byte
	CallGasLimit         *big.Int
	VerificationGasLimit *big.Int
	PreVerificationGas   *big.Int
	MaxFeePerGas         *big.Int
	MaxPriorityFeePerGas *big.Int
	PaymasterAndData     []byte
	Signature            []byte
}

// Signed reports whether a signature has been attached.
func (op *UserOperation) Signed() bool {
	return len(op.Signature) > 0
}

// AttachSignature sets the signature exactly once.
func (op *UserOperation) AttachSignature(sig []byte) error {
	if len(sig) == 0 {
		return ErrEmptySignature
	}
	if op.Signed() {
		return ErrAlreadySigned
	}
	op.Signature = append([]byte(nil), sig...)
	return nil
}

type userOperationJSON struct {
	Sender               common.Address `json:"sender"`
	Nonce                *hexutil.Big   `json:"nonce"`
	InitCode             hexutil.Bytes  `json:"initCode"`
	CallData             hexutil.Bytes  `json:"callData"`
	CallGasLimit         *hexutil.Big   `json:"callGasLimit"`
	VerificationGasLimit *hexutil.Big   `json:"verificationGasLimit"`
	PreVerificationGas   *hexutil.Big   `json:"preVerificationGas"`
	MaxFeePerGas         *hexutil.Big   `json:"maxFeePerGas"`
	MaxPriorityFeePerGas *hexutil.Big   `json:"maxPriorityFeePerGas"`
	PaymasterAndData     hexutil.Bytes  `json:"paymasterAndData"`
	Signature            hexutil.Bytes  `json:"signature"`
}

// MarshalJSON encodes the operation in the bundler's hex wire format.
func (op UserOperation) MarshalJSON() ([]byte, error) {
	return json.Marshal(userOperationJSON{
		Sender:               op.Sender,
		Nonce:                hexBig(op.Nonce),
		InitCode:             nonNilBytes(op.InitCode),
		CallData:             nonNilBytes(op.CallData),
		CallGasLimit:         hexBig(op.CallGasLimit),
		VerificationGasLimit: hexBig(op.VerificationGasLimit),
		PreVerificationGas:   hexBig(op.PreVerificationGas),
		MaxFeePerGas:         hexBig(op.MaxFeePerGas),
		MaxPriorityFeePerGas: hexBig(op.MaxPriorityFeePerGas),
		PaymasterAndData:     nonNilBytes(op.PaymasterAndData),
		Signature:            nonNilBytes(op.Signature),
	})
}

// UnmarshalJSON decodes the bundler's hex wire format.
func (op *UserOperation) UnmarshalJSON(data []byte) error {
	var raw userOperationJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*op = UserOperation{
		Sender:               raw.Sender,
		Nonce:                fromHexBig(raw.Nonce),
		InitCode:             raw.InitCode,
		CallData:             raw.CallData,
		CallGasLimit:         fromHexBig(raw.CallGasLimit),
		VerificationGasLimit: fromHexBig(raw.VerificationGasLimit),
		PreVerificationGas:   fromHexBig(raw.PreVerificationGas),
		MaxFeePerGas:         fromHexBig(raw.MaxFeePerGas),
		MaxPriorityFeePerGas: fromHexBig(raw.MaxPriorityFeePerGas),
		PaymasterAndData:     raw.PaymasterAndData,
		Signature:            raw.Signature,
	}
	return nil
}

func hexBig(v *big.Int) *hexutil.Big {
	if v == nil {
		return (*hexutil.Big)(new(big.Int))
	}
	return (*hexutil.Big)(v)
}

func fromHexBig(v *hexutil.Big) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return (*big.Int)(v)
}

func nonNilBytes(b []byte) hexutil.Bytes {
	if b == nil {
		return hexutil.Bytes{}
	}
	return b
}
