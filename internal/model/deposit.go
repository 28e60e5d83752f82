package model

import "time"

// DepositEvent is pushed by the external chain listener over the deposit socket.
type DepositEvent struct {
	TxHash    string `json:"txHash"`
	ToAddress string `json:"toAddress"`
	Amount    string `json:"amount"`
	Chain     string `json:"chain"`
}

// DepositRecord is a journal row describing one observed deposit.
type DepositRecord struct {
	TxHash     string
	ToAddress  string
	Amount     string
	Chain      Chain
	Matched    bool
	ObservedAt time.Time
}
