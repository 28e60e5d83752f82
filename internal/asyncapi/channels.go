package asyncapi

import "github.com/byunyourim/BC-Adapter/internal/model"

type Direction int

const (
	// Inbound messages are consumed by the adapter.
	Inbound Direction = iota
	// Outbound messages are produced by the adapter.
	Outbound
)

type ChannelSpec struct {
	Topic       model.Topic
	Direction   Direction
	OperationID string
	Summary     string
	Description string
	Messages    []MessageSpec
}

type MessageSpec struct {
	Name   string
	Title  string
	Fields []Field
}

type Field struct {
	Name        string
	Type        string
	Required    bool
	Enum        []string
	Description string
	Example     any
}

func (c ChannelSpec) message() Message {
	if len(c.Messages) == 1 {
		return c.Messages[0].message()
	}
	msg := Message{OneOf: make([]Message, 0, len(c.Messages))}
	for _, m := range c.Messages {
		msg.OneOf = append(msg.OneOf, m.message())
	}
	return msg
}

func (m MessageSpec) message() Message {
	schema := &Schema{Type: "object", Properties: make(map[string]Property, len(m.Fields))}
	for _, f := range m.Fields {
		if f.Required {
			schema.Required = append(schema.Required, f.Name)
		}
		schema.Properties[f.Name] = Property{
			Type:        f.Type,
			Enum:        f.Enum,
			Description: f.Description,
			Example:     f.Example,
		}
	}
	return Message{Name: m.Name, Title: m.Title, Payload: schema}
}

var chainEnum = []string{string(model.Ethereum), string(model.Polygon), string(model.Sepolia)}

func requestID(example string, required bool) Field {
	return Field{Name: "requestId", Type: "string", Required: required, Description: "Correlation id echoed in the response", Example: example}
}

func chainField(required bool) Field {
	return Field{Name: "chain", Type: "string", Required: required, Enum: chainEnum, Example: string(model.Sepolia)}
}

func failureFields(errExample, codeExample string) []Field {
	return []Field{
		{Name: "error", Type: "string", Description: "Human readable failure", Example: errExample},
		{Name: "errorCode", Type: "string", Description: "Stable failure code", Example: codeExample},
	}
}

// Channels is the topic table the document is generated from.
var Channels = []ChannelSpec{
	{
		Topic:       model.TopicAccountCreate,
		Direction:   Inbound,
		OperationID: "createAccount",
		Summary:     "Create a smart wallet account",
		Description: "Account creation request",
		Messages: []MessageSpec{{
			Name: "CreateAccountRequest",
			Fields: []Field{
				requestID("req-1", true),
				chainField(true),
				{Name: "salt", Type: "string", Required: true, Description: "Salt the wallet address is derived from", Example: "my-wallet-001"},
			},
		}},
	},
	{
		Topic:       model.TopicAccountCreated,
		Direction:   Outbound,
		OperationID: "onAccountCreated",
		Summary:     "Receive the account creation result",
		Description: "Account creation result",
		Messages: []MessageSpec{
			{
				Name:  "AccountCreatedSuccess",
				Title: "Success",
				Fields: []Field{
					requestID("req-1", false),
					{Name: "address", Type: "string", Description: "Derived wallet address", Example: "0x1234abcd..."},
					chainField(false),
					{Name: "salt", Type: "string", Example: "my-wallet-001"},
				},
			},
			{
				Name:   "AccountCreatedError",
				Title:  "Failure",
				Fields: append([]Field{requestID("req-1", false)}, failureFields("Failed to retrieve signing key from KMS", "KMS_KEY_RETRIEVAL_FAILED")...),
			},
		},
	},
	{
		Topic:       model.TopicDepositDetected,
		Direction:   Outbound,
		OperationID: "onDepositDetected",
		Summary:     "A deposit to a registered address was observed",
		Description: "Deposit notification, published after matching a pushed deposit to a registered address",
		Messages: []MessageSpec{{
			Name: "DepositDetectedEvent",
			Fields: []Field{
				{Name: "txHash", Type: "string", Description: "Transaction hash", Example: "0xabc123..."},
				{Name: "address", Type: "string", Description: "Receiving address", Example: "0x1234abcd..."},
				{Name: "amount", Type: "string", Description: "Amount in wei", Example: "1000000000000000000"},
				chainField(false),
			},
		}},
	},
	{
		Topic:       model.TopicDepositConfirm,
		Direction:   Inbound,
		OperationID: "checkDepositConfirm",
		Summary:     "Check the confirmation depth of a transaction",
		Description: "Deposit confirmation request",
		Messages: []MessageSpec{{
			Name: "CheckConfirmRequest",
			Fields: []Field{
				requestID("req-2", true),
				{Name: "txHash", Type: "string", Required: true, Description: "Transaction hash to check", Example: "0xabc123..."},
				chainField(true),
			},
		}},
	},
	{
		Topic:       model.TopicDepositConfirmed,
		Direction:   Outbound,
		OperationID: "onDepositConfirmed",
		Summary:     "Receive the confirmation check result",
		Description: "Deposit confirmation result",
		Messages: []MessageSpec{
			{
				Name:  "DepositConfirmSuccess",
				Title: "Success",
				Fields: []Field{
					requestID("req-2", false),
					{Name: "txHash", Type: "string", Example: "0xabc123..."},
					{Name: "status", Type: "string", Enum: []string{string(model.ConfirmConfirmed), string(model.ConfirmPending), string(model.ConfirmFailed)}},
					{Name: "confirmations", Type: "number", Description: "Current confirmations", Example: 12},
					{Name: "required", Type: "number", Description: "Confirmations required", Example: 12},
				},
			},
			{
				Name:  "DepositConfirmError",
				Title: "Failure",
				Fields: append([]Field{
					requestID("req-2", false),
					{Name: "txHash", Type: "string", Example: "0xabc123..."},
					{Name: "status", Type: "string", Enum: []string{string(model.ConfirmFailed)}},
				}, failureFields("Blockchain RPC connection failed", "RPC_CONNECTION_FAILED")...),
			},
		},
	},
	{
		Topic:       model.TopicWithdrawRequest,
		Direction:   Inbound,
		OperationID: "withdraw",
		Summary:     "Withdraw through an ERC-4337 UserOperation",
		Description: "Withdrawal request",
		Messages: []MessageSpec{{
			Name: "WithdrawRequest",
			Fields: []Field{
				requestID("req-3", true),
				chainField(true),
				{Name: "fromAddress", Type: "string", Required: true, Description: "Wallet to withdraw from", Example: "0x1234abcd..."},
				{Name: "toAddress", Type: "string", Required: true, Description: "Recipient", Example: "0x5678efgh..."},
				{Name: "amount", Type: "string", Required: true, Description: "Amount in wei", Example: "10000000000000"},
				{Name: "token", Type: "string", Required: true, Description: "ETH or an ERC-20 contract address", Example: "ETH"},
			},
		}},
	},
	{
		Topic:       model.TopicWithdrawSent,
		Direction:   Outbound,
		OperationID: "onWithdrawSent",
		Summary:     "Receive the UserOperation submission result",
		Description: "Withdrawal submission result",
		Messages: []MessageSpec{
			{
				Name:  "WithdrawSentSuccess",
				Title: "Success",
				Fields: []Field{
					requestID("req-3", false),
					chainField(false),
					{Name: "fromAddress", Type: "string", Example: "0x1234abcd..."},
					{Name: "toAddress", Type: "string", Example: "0x5678efgh..."},
					{Name: "amount", Type: "string", Example: "10000000000000"},
					{Name: "token", Type: "string", Example: "ETH"},
					{Name: "userOpHash", Type: "string", Description: "UserOperation hash", Example: "0xdef456..."},
				},
			},
			{
				Name:   "WithdrawSentError",
				Title:  "Failure",
				Fields: append([]Field{requestID("req-3", false)}, failureFields("Account not found: 0x1234abcd...", "ACCOUNT_NOT_FOUND")...),
			},
		},
	},
	{
		Topic:       model.TopicWithdrawStatus,
		Direction:   Inbound,
		OperationID: "checkWithdrawStatus",
		Summary:     "Check the on-chain state of a UserOperation",
		Description: "Withdrawal status request",
		Messages: []MessageSpec{{
			Name: "CheckWithdrawStatusRequest",
			Fields: []Field{
				requestID("req-4", true),
				chainField(true),
				{Name: "userOpHash", Type: "string", Required: true, Description: "UserOperation hash to check", Example: "0xdef456..."},
			},
		}},
	},
	{
		Topic:       model.TopicWithdrawConfirmed,
		Direction:   Outbound,
		OperationID: "onWithdrawConfirmed",
		Summary:     "Receive the final withdrawal result",
		Description: "Withdrawal final result",
		Messages: []MessageSpec{
			{
				Name:  "WithdrawPending",
				Title: "Pending",
				Fields: []Field{
					requestID("req-4", false),
					{Name: "userOpHash", Type: "string", Example: "0xdef456..."},
					{Name: "status", Type: "string", Enum: []string{string(model.WithdrawalPending)}},
				},
			},
			{
				Name:  "WithdrawCompleted",
				Title: "Completed",
				Fields: []Field{
					requestID("req-4", false),
					{Name: "userOpHash", Type: "string", Example: "0xdef456..."},
					{Name: "status", Type: "string", Enum: []string{string(model.WithdrawalSuccess), string(model.WithdrawalFailed)}},
					{Name: "success", Type: "boolean", Example: true},
					{Name: "txHash", Type: "string", Description: "On-chain transaction hash", Example: "0x789ghi..."},
					{Name: "actualGasCost", Type: "string", Description: "Gas cost in wei", Example: "21000"},
					{Name: "actualGasUsed", Type: "string", Example: "21000"},
				},
			},
			{
				Name:  "WithdrawFailed",
				Title: "Failure",
				Fields: append([]Field{
					requestID("req-4", false),
					{Name: "userOpHash", Type: "string", Example: "0xdef456..."},
					{Name: "status", Type: "string", Enum: []string{string(model.WithdrawalFailed)}},
				}, failureFields("Failed to retrieve UserOperation receipt", "BUNDLER_RECEIPT_FAILED")...),
			},
		},
	},
}
