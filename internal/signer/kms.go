package signer

import (
	"bytes"
	"context"
	"crypto/ecdsa"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	"github.com/byunyourim/BC-Adapter/internal/apperr"
	"github.com/byunyourim/BC-Adapter/pkg/retry"
)

const kmsAPIPrefix = "/keymanager/v1.2/appkey/"

// KMSConfig addresses one key in a hosted key manager.
type KMSConfig struct {
	Endpoint  string
	AppKey    string
	SecretKey string
	KeyID     string
	// RPS caps outgoing requests per second.
	RPS   int
	Retry retry.Config
}

// KMSClient signs through the key manager's REST API.
type KMSClient struct {
	cfg     KMSConfig
	base    *url.URL
	client  httpDoer
	rl      ratelimit.Limiter
	metrics KMSMetrics
	logger  *zap.Logger
}

func NewKMSClient(cfg KMSConfig, client httpDoer, metrics KMSMetrics, logger *zap.Logger) (*KMSClient, error) {
	if cfg.Endpoint == "" || cfg.AppKey == "" || cfg.KeyID == "" {
		return nil, errors.New("kms endpoint, app key and key id are required")
	}
	base, err := url.Parse(strings.TrimRight(cfg.Endpoint, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse kms endpoint: %w", err)
	}
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	if metrics == nil {
		return nil, errors.New("kms metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.RPS <= 0 {
		cfg.RPS = 20
	}
	return &KMSClient{
		cfg:     cfg,
		base:    base,
		client:  client,
		rl:      ratelimit.New(cfg.RPS),
		metrics: metrics,
		logger:  logger.Named("kms"),
	}, nil
}

type kmsHeader struct {
	IsSuccessful  bool   `json:"isSuccessful"`
	ResultCode    int    `json:"resultCode"`
	ResultMessage string `json:"resultMessage"`
}

type secretResponse struct {
	Header *kmsHeader `json:"header"`
	Body   struct {
		Secret string `json:"secret"`
	} `json:"body"`
}

type signResponse struct {
	Header *kmsHeader `json:"header"`
	Body   struct {
		Signature string `json:"signature"`
	} `json:"body"`
}

// PublicKey fetches the stored secret and returns its public half.
// It doubles as a liveness check of the key manager.
func (c *KMSClient) PublicKey(ctx context.Context) (pub *ecdsa.PublicKey, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("get_secret", err, started)
	}()

	var resp secretResponse
	if err = c.call(ctx, http.MethodGet, "secrets/"+url.PathEscape(c.cfg.KeyID), nil, &resp); err != nil {
		return nil, apperr.Wrap(apperr.CodeKMSKeyRetrievalFailed, err)
	}
	if err = headerError(resp.Header); err != nil {
		return nil, apperr.Wrap(apperr.CodeKMSKeyRetrievalFailed, err)
	}
	if resp.Body.Secret == "" {
		err = apperr.New(apperr.CodeKMSKeyRetrievalFailed, "empty secret")
		return nil, err
	}

	pub, keyErr := parseSecret(resp.Body.Secret)
	if keyErr != nil {
		err = apperr.Wrap(apperr.CodeKMSKeyRetrievalFailed, keyErr)
		return nil, err
	}
	return pub, nil
}

// parseSecret accepts a 32-byte private key, a 33-byte compressed public key
// or a 65-byte uncompressed public key, hex encoded with or without 0x.
func parseSecret(secret string) (*ecdsa.PublicKey, error) {
	raw, err := hexutil.Decode("0x" + strings.TrimPrefix(strings.TrimSpace(secret), "0x"))
	if err != nil {
		return nil, fmt.Errorf("secret is not hex: %w", err)
	}
	switch len(raw) {
	case 32:
		key, err := crypto.ToECDSA(raw)
		if err != nil {
			return nil, fmt.Errorf("secret is not a secp256k1 private key: %w", err)
		}
		return &key.PublicKey, nil
	case 33:
		pub, err := crypto.DecompressPubkey(raw)
		if err != nil {
			return nil, fmt.Errorf("secret is not a compressed secp256k1 public key: %w", err)
		}
		return pub, nil
	case 65:
		pub, err := crypto.UnmarshalPubkey(raw)
		if err != nil {
			return nil, fmt.Errorf("secret is not an uncompressed secp256k1 public key: %w", err)
		}
		return pub, nil
	default:
		return nil, fmt.Errorf("secret has unsupported length %d", len(raw))
	}
}

// Sign asks the key manager to sign hash and returns the decoded signature bytes.
func (c *KMSClient) Sign(ctx context.Context, hash common.Hash) (sig []byte, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("sign", err, started)
	}()

	var resp signResponse
	body := map[string]string{"data": hash.Hex()}
	if err = c.call(ctx, http.MethodPost, "keys/"+url.PathEscape(c.cfg.KeyID)+"/sign", body, &resp); err != nil {
		return nil, apperr.Wrap(apperr.CodeKMSSigningFailed, err)
	}
	if err = headerError(resp.Header); err != nil {
		return nil, apperr.Wrap(apperr.CodeKMSSigningFailed, err)
	}
	if resp.Body.Signature == "" {
		err = apperr.New(apperr.CodeKMSSigningFailed, "empty signature")
		return nil, err
	}

	sig, err = hexutil.Decode(resp.Body.Signature)
	if err != nil {
		return nil, apperr.Wrapf(apperr.CodeKMSSigningFailed, err, "decode signature")
	}
	return sig, nil
}

func (c *KMSClient) call(ctx context.Context, method, path string, in, out any) error {
	var payload []byte
	if in != nil {
		var err error
		if payload, err = json.Marshal(in); err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
	}
	target := c.base.JoinPath(kmsAPIPrefix, url.PathEscape(c.cfg.AppKey), path)

	return retry.Do(ctx, c.logger, "kms "+method, c.cfg.Retry, func(ctx context.Context) error {
		c.rl.Take()

		req, err := http.NewRequestWithContext(ctx, method, target.String(), bytes.NewReader(payload))
		if err != nil {
			return retry.Permanent(fmt.Errorf("build request: %w", err))
		}
		req.Header.Set("X-TC-APP-KEY", c.cfg.AppKey)
		req.Header.Set("X-TC-AUTHENTICATION-ID", c.cfg.SecretKey)
		req.Header.Set("Content-Type", "application/json")

		res, err := c.client.Do(req)
		if err != nil {
			return fmt.Errorf("do request: %w", err)
		}
		defer res.Body.Close()

		data, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
		if err != nil {
			return fmt.Errorf("read response: %w", err)
		}
		if res.StatusCode >= http.StatusInternalServerError || res.StatusCode == http.StatusTooManyRequests {
			return fmt.Errorf("kms status %d", res.StatusCode)
		}
		if res.StatusCode >= http.StatusBadRequest {
			return retry.Permanent(fmt.Errorf("kms status %d: %s", res.StatusCode, strings.TrimSpace(string(data))))
		}
		if err := json.Unmarshal(data, out); err != nil {
			return retry.Permanent(fmt.Errorf("decode response: %w", err))
		}
		return nil
	})
}

func headerError(h *kmsHeader) error {
	if h == nil || h.IsSuccessful {
		return nil
	}
	return fmt.Errorf("kms result %d: %s", h.ResultCode, h.ResultMessage)
}
