package chain

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/byunyourim/BC-Adapter/internal/apperr"
	"github.com/byunyourim/BC-Adapter/internal/model"
)

// Role distinguishes the two kinds of endpoint configured per chain.
type Role string

const (
	RoleLedger  Role = "ledger"
	RoleBundler Role = "bundler"
)

// Endpoints holds the configured URLs per chain and role.
type Endpoints struct {
	Ledger  map[model.Chain]string
	Bundler map[model.Chain]string
}

type closer interface {
	Close()
}

// pool caches one client per chain; concurrent first access dials once.
type pool[C closer] struct {
	role        Role
	urls        map[model.Chain]string
	dial        func(ctx context.Context, chain model.Chain, url string) (C, error)
	missingCode apperr.Code

	mu      sync.RWMutex
	clients map[model.Chain]C
	group   singleflight.Group
}

func newPool[C closer](role Role, urls map[model.Chain]string, missing apperr.Code, dial func(context.Context, model.Chain, string) (C, error)) *pool[C] {
	return &pool[C]{
		role:        role,
		urls:        urls,
		dial:        dial,
		missingCode: missing,
		clients:     make(map[model.Chain]C),
	}
}

func (p *pool[C]) get(ctx context.Context, chain model.Chain) (C, error) {
	p.mu.RLock()
	c, ok := p.clients[chain]
	p.mu.RUnlock()
	if ok {
		return c, nil
	}

	url := p.urls[chain]
	if url == "" {
		var zero C
		return zero, apperr.New(p.missingCode, string(chain))
	}

	v, err, _ := p.group.Do(string(chain), func() (any, error) {
		p.mu.RLock()
		existing, ok := p.clients[chain]
		p.mu.RUnlock()
		if ok {
			return existing, nil
		}

		// singleflight shares the result, so one caller's cancellation must not fail the others.
		client, err := p.dial(context.WithoutCancel(ctx), chain, url)
		if err != nil {
			return nil, apperr.Wrapf(apperr.CodeRPCConnectionFailed, err, "%s %s", chain, p.role)
		}

		p.mu.Lock()
		p.clients[chain] = client
		p.mu.Unlock()
		return client, nil
	})
	if err != nil {
		var zero C
		return zero, err
	}
	return v.(C), nil
}

func (p *pool[C]) close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for chain, c := range p.clients {
		c.Close()
		delete(p.clients, chain)
	}
}

// Registry hands out lazily dialed, cached chain clients.
type Registry struct {
	ledgers  *pool[LedgerClient]
	bundlers *pool[BundlerClient]
	logger   *zap.Logger
}

func NewRegistry(endpoints Endpoints, dialLedger LedgerDialer, dialBundler BundlerDialer, logger *zap.Logger) (*Registry, error) {
	if dialLedger == nil {
		return nil, errors.New("ledger dialer is required")
	}
	if dialBundler == nil {
		return nil, errors.New("bundler dialer is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		ledgers:  newPool[LedgerClient](RoleLedger, endpoints.Ledger, apperr.CodeRPCNotConfigured, dialLedger),
		bundlers: newPool[BundlerClient](RoleBundler, endpoints.Bundler, apperr.CodeBundlerNotConfigured, dialBundler),
		logger:   logger.Named("chain_registry"),
	}, nil
}

// Ledger returns the node client for chain.
func (r *Registry) Ledger(ctx context.Context, chain model.Chain) (LedgerClient, error) {
	return r.ledgers.get(ctx, chain)
}

// Bundler returns the bundler client for chain.
func (r *Registry) Bundler(ctx context.Context, chain model.Chain) (BundlerClient, error) {
	return r.bundlers.get(ctx, chain)
}

// Close closes every cached client. The registry may be reused afterwards.
func (r *Registry) Close() {
	r.ledgers.close()
	r.bundlers.close()
	r.logger.Info("chain clients closed")
}
