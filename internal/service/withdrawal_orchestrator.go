package service

import (
	"context"
	"errors"

	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"

	"github.com/byunyourim/BC-Adapter/internal/apperr"
	"github.com/byunyourim/BC-Adapter/internal/chain"
	"github.com/byunyourim/BC-Adapter/internal/model"
	"github.com/byunyourim/BC-Adapter/internal/status"
	"github.com/byunyourim/BC-Adapter/internal/userop"
)

// WithdrawalOrchestrator submits withdrawals as user operations and reports their outcome.
type WithdrawalOrchestrator struct {
	repo     AccountRepository
	signer   Signer
	builder  OperationBuilder
	registry ClientRegistry
	sent     responder
	status   responder
	logger   *zap.Logger
}

// NewWithdrawalOrchestrator builds the withdrawal use cases. sendMetrics and
// statusMetrics are kept apart so both use cases are reported separately.
func NewWithdrawalOrchestrator(
	repo AccountRepository,
	signer Signer,
	builder OperationBuilder,
	registry ClientRegistry,
	publisher Publisher,
	sendMetrics OrchestratorMetrics,
	statusMetrics OrchestratorMetrics,
	logger *zap.Logger,
) (*WithdrawalOrchestrator, error) {
	if repo == nil || signer == nil || builder == nil || registry == nil || publisher == nil {
		return nil, errors.New("withdrawal orchestrator: missing dependency")
	}
	if sendMetrics == nil || statusMetrics == nil {
		return nil, errors.New("withdrawal orchestrator: missing metrics")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("withdrawal_orchestrator")
	return &WithdrawalOrchestrator{
		repo:     repo,
		signer:   signer,
		builder:  builder,
		registry: registry,
		sent: responder{
			topic:     model.TopicWithdrawSent,
			publisher: publisher,
			metrics:   sendMetrics,
			logger:    logger,
		},
		status: responder{
			topic:     model.TopicWithdrawConfirmed,
			publisher: publisher,
			metrics:   statusMetrics,
			logger:    logger,
		},
		logger: logger,
	}, nil
}

// Withdraw signs and submits a transfer out of a registered wallet and answers
// on adapter.withdraw.sent with the bundler's operation hash.
func (s *WithdrawalOrchestrator) Withdraw(ctx context.Context, req model.WithdrawRequest) {
	s.sent.respond(ctx, req.RequestID, nil, func(ctx context.Context) (map[string]any, error) {
		return s.withdraw(ctx, req)
	})
}

func (s *WithdrawalOrchestrator) withdraw(ctx context.Context, req model.WithdrawRequest) (map[string]any, error) {
	c, err := chain.Parse(req.Chain)
	if err != nil {
		return nil, err
	}

	account, err := s.repo.FindByAddress(ctx, req.FromAddress)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, apperr.AccountNotFound(req.FromAddress)
	}

	pub, err := s.signer.PublicKey(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeKMSKeyRetrievalFailed, err)
	}
	owner := crypto.PubkeyToAddress(*pub)

	op, hash, err := s.builder.Build(ctx, userop.BuildRequest{
		Chain:  c,
		Sender: req.FromAddress,
		To:     req.ToAddress,
		Amount: req.Amount,
		Token:  req.Token,
		Owner:  owner,
		Salt:   account.Salt,
	})
	if err != nil {
		return nil, err
	}

	sig, err := s.signer.Sign(ctx, hash)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeKMSSigningFailed, err)
	}
	if err := op.AttachSignature(sig); err != nil {
		return nil, apperr.Wrap(apperr.CodeBusiness, err)
	}

	bundler, err := s.registry.Bundler(ctx, c)
	if err != nil {
		return nil, err
	}
	userOpHash, err := bundler.SendUserOperation(ctx, op, s.builder.EntryPoint())
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeBundlerSendFailed, err)
	}

	s.logger.Info("user operation sent",
		zap.String("request_id", req.RequestID),
		zap.String("user_op_hash", userOpHash),
		zap.String("chain", string(c)))

	return map[string]any{
		"chain":       req.Chain,
		"fromAddress": req.FromAddress,
		"toAddress":   req.ToAddress,
		"amount":      req.Amount,
		"token":       req.Token,
		"userOpHash":  userOpHash,
	}, nil
}

// CheckStatus answers on adapter.withdraw.confirmed with the operation's inclusion state.
func (s *WithdrawalOrchestrator) CheckStatus(ctx context.Context, req model.WithdrawStatusRequest) {
	extra := map[string]any{
		"userOpHash": req.UserOpHash,
		"status":     string(model.WithdrawalFailed),
	}
	s.status.respond(ctx, req.RequestID, extra, func(ctx context.Context) (map[string]any, error) {
		return s.checkStatus(ctx, req)
	})
}

func (s *WithdrawalOrchestrator) checkStatus(ctx context.Context, req model.WithdrawStatusRequest) (map[string]any, error) {
	c, err := chain.Parse(req.Chain)
	if err != nil {
		return nil, err
	}
	bundler, err := s.registry.Bundler(ctx, c)
	if err != nil {
		return nil, err
	}
	receipt, err := bundler.UserOperationReceipt(ctx, req.UserOpHash)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeBundlerReceiptFailed, err)
	}

	result := status.Withdrawal(receipt)
	s.logger.Info("withdrawal status checked",
		zap.String("user_op_hash", req.UserOpHash),
		zap.String("status", string(result.Status)))

	data := map[string]any{
		"userOpHash": req.UserOpHash,
		"status":     string(result.Status),
	}
	if result.Status == model.WithdrawalPending {
		return data, nil
	}
	data["success"] = result.Success
	data["txHash"] = result.TxHash
	data["actualGasCost"] = result.ActualGasCost.String()
	data["actualGasUsed"] = result.ActualGasUsed.String()
	return data, nil
}
