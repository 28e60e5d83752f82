package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/byunyourim/BC-Adapter/internal/apperr"
	"github.com/byunyourim/BC-Adapter/internal/envelope"
	"github.com/byunyourim/BC-Adapter/internal/metrics"
	"github.com/byunyourim/BC-Adapter/internal/model"
)

const requestIDField = "requestId"

// Route describes one inbound topic.
type Route struct {
	Topic    model.Topic
	Reply    model.Topic
	Required []string
}

// Routes is the inbound topic table.
var Routes = []Route{
	{
		Topic:    model.TopicAccountCreate,
		Reply:    model.TopicAccountCreated,
		Required: []string{"requestId", "chain", "salt"},
	},
	{
		Topic:    model.TopicDepositConfirm,
		Reply:    model.TopicDepositConfirmed,
		Required: []string{"requestId", "txHash", "chain"},
	},
	{
		Topic:    model.TopicWithdrawRequest,
		Reply:    model.TopicWithdrawSent,
		Required: []string{"requestId", "chain", "fromAddress", "toAddress", "amount", "token"},
	},
	{
		Topic:    model.TopicWithdrawStatus,
		Reply:    model.TopicWithdrawConfirmed,
		Required: []string{"requestId", "chain", "userOpHash"},
	},
}

type dispatchFunc func(ctx context.Context, value []byte) error

type entry struct {
	route    Route
	dispatch dispatchFunc
}

// Router validates inbound requests and hands them to the use cases.
type Router struct {
	entries map[string]entry
	replier Replier
	metrics Metrics
	logger  *zap.Logger
}

func NewRouter(
	accounts AccountHandler,
	deposits DepositHandler,
	withdrawals WithdrawalHandler,
	replier Replier,
	metrics Metrics,
	logger *zap.Logger,
) (*Router, error) {
	if accounts == nil || deposits == nil || withdrawals == nil {
		return nil, errors.New("router: handlers are required")
	}
	if replier == nil || metrics == nil {
		return nil, errors.New("router: replier and metrics are required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	dispatch := map[model.Topic]dispatchFunc{
		model.TopicAccountCreate: func(ctx context.Context, value []byte) error {
			var req model.CreateAccountRequest
			if err := json.Unmarshal(value, &req); err != nil {
				return err
			}
			accounts.Create(ctx, req)
			return nil
		},
		model.TopicDepositConfirm: func(ctx context.Context, value []byte) error {
			var req model.CheckConfirmRequest
			if err := json.Unmarshal(value, &req); err != nil {
				return err
			}
			deposits.CheckConfirm(ctx, req)
			return nil
		},
		model.TopicWithdrawRequest: func(ctx context.Context, value []byte) error {
			var req model.WithdrawRequest
			if err := json.Unmarshal(value, &req); err != nil {
				return err
			}
			withdrawals.Withdraw(ctx, req)
			return nil
		},
		model.TopicWithdrawStatus: func(ctx context.Context, value []byte) error {
			var req model.WithdrawStatusRequest
			if err := json.Unmarshal(value, &req); err != nil {
				return err
			}
			withdrawals.CheckStatus(ctx, req)
			return nil
		},
	}

	entries := make(map[string]entry, len(Routes))
	for _, route := range Routes {
		entries[string(route.Topic)] = entry{route: route, dispatch: dispatch[route.Topic]}
	}

	return &Router{
		entries: entries,
		replier: replier,
		metrics: metrics,
		logger:  logger.Named("router"),
	}, nil
}

// Topics lists the inbound topics to subscribe to.
func (r *Router) Topics() []string {
	topics := make([]string, 0, len(r.entries))
	for topic := range r.entries {
		topics = append(topics, topic)
	}
	sort.Strings(topics)
	return topics
}

// Handle validates one inbound message and dispatches it. Messages without a
// requestId cannot be answered and are dropped.
func (r *Router) Handle(ctx context.Context, topic string, value []byte) {
	logger := r.logger.With(zap.String("topic", topic))

	e, ok := r.entries[topic]
	if !ok {
		logger.Warn("no route for topic")
		r.metrics.ObserveConsume(topic, metrics.OutcomeDropped)
		return
	}

	var fields map[string]any
	if err := json.Unmarshal(value, &fields); err != nil {
		logger.Warn("message is not a JSON object", zap.Error(err))
		r.metrics.ObserveConsume(topic, metrics.OutcomeDropped)
		return
	}

	requestID, _ := fields[requestIDField].(string)
	missing := MissingFields(fields, e.route.Required)
	if requestID == "" {
		logger.Warn("message without requestId", zap.Strings("missing", missing))
		r.metrics.ObserveConsume(topic, metrics.OutcomeDropped)
		return
	}

	if len(missing) > 0 {
		r.reject(ctx, e.route, requestID, apperr.New(apperr.CodeMissingRequiredFields, strings.Join(missing, ", ")))
		return
	}

	if err := e.dispatch(ctx, value); err != nil {
		r.reject(ctx, e.route, requestID, apperr.New(apperr.CodeValidation, err.Error()))
		return
	}
	r.metrics.ObserveConsume(topic, metrics.OutcomeHandled)
}

func (r *Router) reject(ctx context.Context, route Route, requestID string, err *apperr.Error) {
	r.metrics.ObserveConsume(string(route.Topic), metrics.OutcomeRejected)
	r.logger.Warn("request rejected",
		zap.String("topic", string(route.Topic)),
		zap.String("request_id", requestID),
		zap.String("code", string(err.Code)),
		zap.String("error", err.Message))

	if pubErr := r.replier.Publish(ctx, route.Reply, envelope.Failure(requestID, err, nil)); pubErr != nil {
		r.logger.Error("rejection not published",
			zap.String("topic", string(route.Reply)),
			zap.String("request_id", requestID),
			zap.Error(pubErr))
	}
}

// MissingFields returns the required fields that are absent, null or empty strings.
func MissingFields(fields map[string]any, required []string) []string {
	var missing []string
	for _, name := range required {
		v, ok := fields[name]
		if !ok || v == nil {
			missing = append(missing, name)
			continue
		}
		if s, isString := v.(string); isString && s == "" {
			missing = append(missing, name)
		}
	}
	return missing
}
