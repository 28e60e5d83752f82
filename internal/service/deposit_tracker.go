package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/byunyourim/BC-Adapter/internal/apperr"
	"github.com/byunyourim/BC-Adapter/internal/chain"
	"github.com/byunyourim/BC-Adapter/internal/metrics"
	"github.com/byunyourim/BC-Adapter/internal/model"
	"github.com/byunyourim/BC-Adapter/internal/status"
	"github.com/byunyourim/BC-Adapter/internal/userop"
)

// DefaultRequiredConfirmations is the depth at which a deposit counts as final.
const DefaultRequiredConfirmations uint64 = 12

// DepositTracker matches pushed deposits to known wallets and answers confirmation checks.
type DepositTracker struct {
	repo      AccountRepository
	registry  ClientRegistry
	journal   DepositRecorder
	publisher Publisher
	metrics   DepositMetrics
	required  uint64
	resp      responder
	logger    *zap.Logger
}

// NewDepositTracker builds the deposit use cases. journal may be nil, in which
// case observed deposits are only counted.
func NewDepositTracker(
	repo AccountRepository,
	registry ClientRegistry,
	journal DepositRecorder,
	publisher Publisher,
	metrics DepositMetrics,
	requiredConfirmations uint64,
	logger *zap.Logger,
) (*DepositTracker, error) {
	if repo == nil || registry == nil || publisher == nil || metrics == nil {
		return nil, errors.New("deposit tracker: missing dependency")
	}
	if requiredConfirmations == 0 {
		requiredConfirmations = DefaultRequiredConfirmations
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("deposit_tracker")
	return &DepositTracker{
		repo:      repo,
		registry:  registry,
		journal:   journal,
		publisher: publisher,
		metrics:   metrics,
		required:  requiredConfirmations,
		resp: responder{
			topic:     model.TopicDepositConfirmed,
			publisher: publisher,
			metrics:   metrics,
			logger:    logger,
		},
		logger: logger,
	}, nil
}

// OnExternalDeposit publishes adapter.deposit.detected when event pays a known wallet.
// There is no request to answer, so failures and unknown addresses are only logged.
func (s *DepositTracker) OnExternalDeposit(ctx context.Context, event model.DepositEvent) {
	logger := s.logger.With(
		zap.String("tx_hash", event.TxHash),
		zap.String("to_address", event.ToAddress),
		zap.String("chain", event.Chain))

	address := strings.ToLower(event.ToAddress)
	account, err := s.repo.FindByAddress(ctx, address)

	outcome := metrics.DepositMatched
	switch {
	case err != nil:
		outcome = metrics.DepositError
		logger.Error("deposit lookup failed", zap.Error(err))
	case account == nil:
		outcome = metrics.DepositUnmatched
		logger.Info("deposit to unknown address")
	}
	s.metrics.ObserveDeposit(event.Chain, outcome)
	s.record(ctx, event, address, outcome == metrics.DepositMatched)

	if outcome != metrics.DepositMatched {
		return
	}

	logger.Info("deposit matched")
	payload := map[string]any{
		"txHash":  event.TxHash,
		"address": event.ToAddress,
		"amount":  event.Amount,
		"chain":   event.Chain,
	}
	if err := s.publisher.Publish(ctx, model.TopicDepositDetected, payload); err != nil {
		s.metrics.ObserveRespondFailure()
		logger.Error("deposit notification not published", zap.Error(err))
	}
}

func (s *DepositTracker) record(ctx context.Context, event model.DepositEvent, address string, matched bool) {
	if s.journal == nil {
		return
	}
	err := s.journal.Record(ctx, model.DepositRecord{
		TxHash:     event.TxHash,
		ToAddress:  address,
		Amount:     event.Amount,
		Chain:      model.Chain(strings.ToLower(event.Chain)),
		Matched:    matched,
		ObservedAt: time.Now().UTC(),
	})
	if err != nil {
		s.logger.Warn("deposit not journaled", zap.String("tx_hash", event.TxHash), zap.Error(err))
	}
}

// CheckConfirm answers on adapter.deposit.confirmed with the transaction's confirmation depth.
func (s *DepositTracker) CheckConfirm(ctx context.Context, req model.CheckConfirmRequest) {
	extra := map[string]any{
		"txHash": req.TxHash,
		"status": string(model.ConfirmFailed),
	}
	s.resp.respond(ctx, req.RequestID, extra, func(ctx context.Context) (map[string]any, error) {
		return s.checkConfirm(ctx, req)
	})
}

func (s *DepositTracker) checkConfirm(ctx context.Context, req model.CheckConfirmRequest) (map[string]any, error) {
	c, err := chain.Parse(req.Chain)
	if err != nil {
		return nil, err
	}
	txHash, err := userop.ParseHash("txHash", req.TxHash)
	if err != nil {
		return nil, err
	}
	ledger, err := s.registry.Ledger(ctx, c)
	if err != nil {
		return nil, err
	}

	receipt, err := ledger.TransactionReceipt(ctx, txHash)
	if err != nil {
		return nil, apperr.Wrapf(apperr.CodeRPCConnectionFailed, err, "transaction receipt")
	}
	var height uint64
	if receipt != nil {
		height, err = ledger.BlockNumber(ctx)
		if err != nil {
			return nil, apperr.Wrapf(apperr.CodeRPCConnectionFailed, err, "block number")
		}
	}

	result := status.Confirmation(req.TxHash, receipt, height, s.required)
	s.logger.Info("confirmation checked",
		zap.String("tx_hash", req.TxHash),
		zap.String("status", string(result.Status)),
		zap.Uint64("confirmations", result.Confirmations),
		zap.Uint64("required", result.Required))

	return map[string]any{
		"txHash":        result.TxHash,
		"status":        string(result.Status),
		"confirmations": result.Confirmations,
		"required":      result.Required,
	}, nil
}
