package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/byunyourim/BC-Adapter/internal/envelope"
	"github.com/byunyourim/BC-Adapter/internal/model"
	"github.com/byunyourim/BC-Adapter/pkg/retry"
)

// MessageIDHeader carries a unique id per published message so consumers can deduplicate.
const MessageIDHeader = "message-id"

// NewWriter returns a writer that keys messages to partitions by hash.
func NewWriter(brokers []string, clientID string) *kafkago.Writer {
	return &kafkago.Writer{
		Addr:                   kafkago.TCP(brokers...),
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireAll,
		MaxAttempts:            1,
		BatchTimeout:           10 * time.Millisecond,
		AllowAutoTopicCreation: true,
		Transport:              &kafkago.Transport{ClientID: clientID},
	}
}

// Publisher writes envelopes as JSON messages.
type Publisher struct {
	writer  messageWriter
	metrics Metrics
	retry   retry.Config
	logger  *zap.Logger
}

func NewPublisher(writer messageWriter, metrics Metrics, retryCfg retry.Config, logger *zap.Logger) (*Publisher, error) {
	if writer == nil {
		return nil, errors.New("publisher: writer is required")
	}
	if metrics == nil {
		return nil, errors.New("publisher: metrics are required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Publisher{
		writer:  writer,
		metrics: metrics,
		retry:   retryCfg,
		logger:  logger.Named("publisher"),
	}, nil
}

// Publish writes env to topic, keyed by its request id.
func (p *Publisher) Publish(ctx context.Context, topic model.Topic, env envelope.Envelope) (err error) {
	started := time.Now()
	defer func() {
		p.metrics.ObservePublish(string(topic), err, started)
	}()

	value, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("encode envelope: %w", err)
	}

	msg := kafkago.Message{
		Topic: string(topic),
		Key:   []byte(messageKey(env)),
		Value: value,
		Headers: []kafkago.Header{
			{Key: MessageIDHeader, Value: []byte(uuid.NewString())},
		},
	}

	err = retry.Do(ctx, p.logger, "publish "+string(topic), p.retry, func(ctx context.Context) error {
		return p.writer.WriteMessages(ctx, msg)
	})
	if err != nil {
		return fmt.Errorf("write message to %s: %w", topic, err)
	}

	p.logger.Debug("envelope published",
		zap.String("topic", string(topic)),
		zap.String("request_id", env.RequestID()))
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

// messageKey keeps every message of one request, or one deposit, on one partition.
func messageKey(env envelope.Envelope) string {
	if id := env.RequestID(); id != "" {
		return id
	}
	txHash, _ := env["txHash"].(string)
	return txHash
}
