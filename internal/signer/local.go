package signer

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"
)

// LocalSigner holds a secp256k1 key in memory. It is meant for development only.
type LocalSigner struct {
	key *ecdsa.PrivateKey
}

// NewLocalSigner loads hexKey, or generates a fresh key when hexKey is empty.
func NewLocalSigner(hexKey string, logger *zap.Logger) (*LocalSigner, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var (
		key *ecdsa.PrivateKey
		err error
	)
	if hexKey == "" {
		key, err = crypto.GenerateKey()
		if err != nil {
			return nil, fmt.Errorf("generate key: %w", err)
		}
		logger.Warn("using a random local signing key; signatures will not survive a restart")
	} else {
		key, err = crypto.HexToECDSA(strings.TrimPrefix(hexKey, "0x"))
		if err != nil {
			return nil, fmt.Errorf("parse local signing key: %w", err)
		}
	}

	s := &LocalSigner{key: key}
	logger.Info("local signer ready", zap.String("owner", s.Address().Hex()))
	return s, nil
}

// Address is the owner address of the key.
func (s *LocalSigner) Address() common.Address {
	return crypto.PubkeyToAddress(s.key.PublicKey)
}

func (s *LocalSigner) PublicKey(context.Context) (*ecdsa.PublicKey, error) {
	return &s.key.PublicKey, nil
}

// Sign returns r||s||v over the raw 32-byte hash with v in {27, 28}.
func (s *LocalSigner) Sign(_ context.Context, hash common.Hash) ([]byte, error) {
	sig, err := crypto.Sign(hash.Bytes(), s.key)
	if err != nil {
		return nil, fmt.Errorf("sign hash: %w", err)
	}
	sig[crypto.RecoveryIDOffset] += 27
	return sig, nil
}
