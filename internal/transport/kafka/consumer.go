package kafka

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/byunyourim/BC-Adapter/internal/clock"
	"github.com/byunyourim/BC-Adapter/pkg/workerpool"
)

const (
	defaultFetchAttempts = 5
	defaultFetchBackoff  = time.Second
)

// NewReader returns a consumer-group reader subscribed to topics.
func NewReader(brokers []string, groupID string, topics []string) *kafkago.Reader {
	return kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:     brokers,
		GroupID:     groupID,
		GroupTopics: topics,
		MinBytes:    1,
		MaxBytes:    10e6,
		StartOffset: kafkago.LastOffset,
	})
}

// Consumer feeds fetched messages into a bounded pool of handlers and commits
// each message once it has been handled.
type Consumer struct {
	reader  messageReader
	handler Handler
	workers int
	logger  *zap.Logger

	// fetchAttempts consecutive fetch errors stop the consumer.
	fetchAttempts int
	fetchBackoff  time.Duration
}

func NewConsumer(reader messageReader, handler Handler, workers int, logger *zap.Logger) (*Consumer, error) {
	if reader == nil {
		return nil, errors.New("consumer: reader is required")
	}
	if handler == nil {
		return nil, errors.New("consumer: handler is required")
	}
	if workers <= 0 {
		workers = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Consumer{
		reader:  reader,
		handler: handler,
		workers: workers,
		logger:  logger.Named("consumer"),

		fetchAttempts: defaultFetchAttempts,
		fetchBackoff:  defaultFetchBackoff,
	}, nil
}

// Run consumes until ctx is done. It returns nil on cancellation.
func (c *Consumer) Run(ctx context.Context) error {
	messages := make(chan kafkago.Message)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(messages)
		failures := 0
		for {
			msg, err := c.reader.FetchMessage(gctx)
			if err != nil {
				if gctx.Err() != nil || errors.Is(err, io.EOF) {
					return nil
				}
				failures++
				if failures >= c.fetchAttempts {
					return fmt.Errorf("fetch message: %w", err)
				}
				c.logger.Warn("fetch failed, retrying", zap.Int("attempt", failures), zap.Error(err))
				if err := clock.Step(gctx, failures, c.fetchBackoff); err != nil {
					return nil
				}
				continue
			}
			failures = 0
			select {
			case messages <- msg:
			case <-gctx.Done():
				return nil
			}
		}
	})

	g.Go(func() error {
		err := workerpool.Run(gctx, c.workers, messages, c.process, c.onError)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	err := g.Wait()
	if err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

func (c *Consumer) process(ctx context.Context, msg kafkago.Message) error {
	c.logger.Debug("message received",
		zap.String("topic", msg.Topic),
		zap.Int("partition", msg.Partition),
		zap.Int64("offset", msg.Offset))

	c.handler.Handle(ctx, msg.Topic, msg.Value)

	if err := c.reader.CommitMessages(context.WithoutCancel(ctx), msg); err != nil {
		return fmt.Errorf("commit offset %d: %w", msg.Offset, err)
	}
	return nil
}

func (c *Consumer) onError(msg kafkago.Message, err error) {
	c.logger.Error("message not processed",
		zap.String("topic", msg.Topic),
		zap.Int("partition", msg.Partition),
		zap.Int64("offset", msg.Offset),
		zap.Error(err))
}

func (c *Consumer) Close() error {
	return c.reader.Close()
}
