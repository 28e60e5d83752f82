package kafka

import (
	"context"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/byunyourim/BC-Adapter/internal/envelope"
	"github.com/byunyourim/BC-Adapter/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	messageReader interface {
		FetchMessage(ctx context.Context) (kafkago.Message, error)
		CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
		Close() error
	}
	messageWriter interface {
		WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
		Close() error
	}
	Metrics interface {
		ObservePublish(topic string, err error, started time.Time)
		ObserveConsume(topic, outcome string)
	}
	Replier interface {
		Publish(ctx context.Context, topic model.Topic, env envelope.Envelope) error
	}
	Handler interface {
		Handle(ctx context.Context, topic string, value []byte)
	}
	AccountHandler interface {
		Create(ctx context.Context, req model.CreateAccountRequest)
	}
	DepositHandler interface {
		CheckConfirm(ctx context.Context, req model.CheckConfirmRequest)
	}
	WithdrawalHandler interface {
		Withdraw(ctx context.Context, req model.WithdrawRequest)
		CheckStatus(ctx context.Context, req model.WithdrawStatusRequest)
	}
)
