package status

import (
	"math/big"

	"github.com/ethereum/go-ethereum/core/types"

	"github.com/byunyourim/BC-Adapter/internal/model"
)

// Confirmation classifies a transaction from its receipt and the current chain height.
// A nil receipt means the node has not seen the transaction.
func Confirmation(txHash string, receipt *types.Receipt, currentHeight, required uint64) model.ConfirmResult {
	result := model.ConfirmResult{
		TxHash:   txHash,
		Status:   model.ConfirmPending,
		Required: required,
	}
	if receipt == nil {
		return result
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		result.Status = model.ConfirmFailed
		return result
	}

	var included uint64
	if receipt.BlockNumber != nil {
		included = receipt.BlockNumber.Uint64()
	}
	// A lagging node can report a height below the receipt's block.
	if currentHeight >= included {
		result.Confirmations = currentHeight - included + 1
	}
	if result.Confirmations >= required {
		result.Status = model.ConfirmConfirmed
	}
	return result
}

// Withdrawal classifies a user operation from its bundler receipt.
func Withdrawal(receipt *model.UserOperationReceipt) model.WithdrawalResult {
	if receipt == nil {
		return model.WithdrawalResult{Status: model.WithdrawalPending}
	}

	result := model.WithdrawalResult{
		Status:        model.WithdrawalFailed,
		Success:       receipt.Success,
		TxHash:        receipt.TxHash,
		ActualGasCost: orZero(receipt.ActualGasCost),
		ActualGasUsed: orZero(receipt.ActualGasUsed),
	}
	if receipt.Success {
		result.Status = model.WithdrawalSuccess
	}
	return result
}

func orZero(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v
}
