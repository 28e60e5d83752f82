package model

import "math/big"

// ConfirmStatus is the confirmation verdict for an on-chain transaction.
type ConfirmStatus string

const (
	ConfirmPending   ConfirmStatus = "pending"
	ConfirmConfirmed ConfirmStatus = "confirmed"
	ConfirmFailed    ConfirmStatus = "failed"
)

// ConfirmResult is recomputed on every query and never persisted.
type ConfirmResult struct {
	TxHash        string
	Status        ConfirmStatus
	Confirmations uint64
	Required      uint64
}

// WithdrawalStatus is the verdict for a submitted UserOperation.
type WithdrawalStatus string

const (
	WithdrawalPending WithdrawalStatus = "pending"
	WithdrawalSuccess WithdrawalStatus = "success"
	WithdrawalFailed  WithdrawalStatus = "failed"
)

// UserOperationReceipt is the bundler's view of an included UserOperation.
type UserOperationReceipt struct {
	UserOpHash    string
	Success       bool
	ActualGasCost *big.Int
	ActualGasUsed *big.Int
	TxHash        string
}

// WithdrawalResult is the classified state of a UserOperation.
type WithdrawalResult struct {
	Status        WithdrawalStatus
	Success       bool
	TxHash        string
	ActualGasCost *big.Int
	ActualGasUsed *big.Int
}

// GasEstimate holds the three limits returned by eth_estimateUserOperationGas.
type GasEstimate struct {
	CallGasLimit         *big.Int
	VerificationGasLimit *big.Int
	PreVerificationGas   *big.Int
}
