package model

// Topic is an event-bus channel name.
type Topic string

// Inbound topics carry correlated requests.
const (
	TopicAccountCreate   Topic = "adapter.account.create"
	TopicDepositConfirm  Topic = "adapter.deposit.confirm"
	TopicWithdrawRequest Topic = "adapter.withdraw.request"
	TopicWithdrawStatus  Topic = "adapter.withdraw.status"
)

// Outbound topics carry responses and notifications.
const (
	TopicAccountCreated    Topic = "adapter.account.created"
	TopicDepositDetected   Topic = "adapter.deposit.detected"
	TopicDepositConfirmed  Topic = "adapter.deposit.confirmed"
	TopicWithdrawSent      Topic = "adapter.withdraw.sent"
	TopicWithdrawConfirmed Topic = "adapter.withdraw.confirmed"
)
