package model

// CreateAccountRequest is consumed from adapter.account.create.
type CreateAccountRequest struct {
	RequestID string `json:"requestId"`
	Chain     string `json:"chain"`
	Salt      string `json:"salt"`
}

// CheckConfirmRequest is consumed from adapter.deposit.confirm.
type CheckConfirmRequest struct {
	RequestID string `json:"requestId"`
	TxHash    string `json:"txHash"`
	Chain     string `json:"chain"`
}

// WithdrawRequest is consumed from adapter.withdraw.request.
// Token is either "ETH" or an ERC-20 contract address; Amount is in wei.
type WithdrawRequest struct {
	RequestID   string `json:"requestId"`
	Chain       string `json:"chain"`
	FromAddress string `json:"fromAddress"`
	ToAddress   string `json:"toAddress"`
	Amount      string `json:"amount"`
	Token       string `json:"token"`
}

// WithdrawStatusRequest is consumed from adapter.withdraw.status.
type WithdrawStatusRequest struct {
	RequestID  string `json:"requestId"`
	Chain      string `json:"chain"`
	UserOpHash string `json:"userOpHash"`
}
