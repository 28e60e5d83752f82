package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/byunyourim/BC-Adapter/internal/apperr"
	"github.com/byunyourim/BC-Adapter/internal/envelope"
	"github.com/byunyourim/BC-Adapter/internal/model"
)

type handleFunc func(ctx context.Context) (map[string]any, error)

// responder publishes exactly one envelope per handled request on a fixed topic.
type responder struct {
	topic     model.Topic
	publisher Publisher
	metrics   OrchestratorMetrics
	logger    *zap.Logger
}

// respond runs handle and publishes its result. Failures, panics included, are
// published on the same topic with extra merged into the envelope.
func (r responder) respond(ctx context.Context, requestID string, extra map[string]any, handle handleFunc) {
	started := time.Now()
	logger := r.logger.With(zap.String("request_id", requestID))

	data, err := r.safeHandle(ctx, handle)

	var (
		env  envelope.Envelope
		code string
	)
	if err != nil {
		typed := apperr.From(err)
		code = string(typed.Code)
		logger.Warn("request failed",
			zap.String("code", code),
			zap.Stringer("kind", typed.Kind),
			zap.Error(err))
		env = envelope.Failure(requestID, err, extra)
	} else {
		env = envelope.Success(requestID, data)
	}
	r.metrics.ObserveRequest(code, started)

	if pubErr := r.publisher.Publish(ctx, r.topic, env); pubErr != nil {
		r.metrics.ObserveRespondFailure()
		logger.Error("response not published",
			zap.String("topic", string(r.topic)),
			zap.Error(pubErr))
	}
}

func (r responder) safeHandle(ctx context.Context, handle handleFunc) (data map[string]any, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("handler panicked", zap.Any("panic", rec), zap.Stack("stack"))
			data, err = nil, fmt.Errorf("panic: %v", rec)
		}
	}()
	return handle(ctx)
}
