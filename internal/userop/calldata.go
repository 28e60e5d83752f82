package userop

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"

	"github.com/byunyourim/BC-Adapter/internal/account"
	"github.com/byunyourim/BC-Adapter/internal/apperr"
)

// NativeToken selects a plain value transfer instead of an ERC-20 call.
const NativeToken = "ETH"

// ParseAmount parses a non-negative wei amount. Decimal and 0x-prefixed hex are accepted.
func ParseAmount(s string) (*big.Int, error) {
	trimmed := strings.TrimSpace(s)
	v, ok := math.ParseBig256(trimmed)
	if trimmed == "" || !ok || v.Sign() < 0 {
		return nil, apperr.New(apperr.CodeValidation, fmt.Sprintf("invalid amount %q", s))
	}
	return v, nil
}

// ParseAddress validates a 0x-prefixed 20-byte hex address.
func ParseAddress(field, s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, apperr.New(apperr.CodeValidation, fmt.Sprintf("invalid %s %q", field, s))
	}
	return common.HexToAddress(s), nil
}

// ParseHash validates a 0x-prefixed 32-byte hex hash.
func ParseHash(field, s string) (common.Hash, error) {
	raw, err := hexutil.Decode(strings.TrimSpace(s))
	if err != nil || len(raw) != common.HashLength {
		return common.Hash{}, apperr.New(apperr.CodeValidation, fmt.Sprintf("invalid %s %q", field, s))
	}
	return common.BytesToHash(raw), nil
}

// TransferCallData encodes the wallet's execute call moving amount of token to to.
func TransferCallData(token string, to common.Address, amount *big.Int) ([]byte, error) {
	if strings.EqualFold(token, NativeToken) {
		return walletABI.Pack("execute", to, amount, []byte{})
	}

	tokenAddr, err := ParseAddress("token", token)
	if err != nil {
		return nil, err
	}
	transfer, err := walletABI.Pack("transfer", to, amount)
	if err != nil {
		return nil, fmt.Errorf("pack transfer: %w", err)
	}
	return walletABI.Pack("execute", tokenAddr, new(big.Int), transfer)
}

// InitCode is the factory address followed by createAccount(owner, saltDigest).
func InitCode(factory, owner common.Address, salt string) ([]byte, error) {
	digest := account.SaltDigest(salt)
	call, err := walletABI.Pack("createAccount", owner, new(big.Int).SetBytes(digest[:]))
	if err != nil {
		return nil, fmt.Errorf("pack createAccount: %w", err)
	}
	return append(factory.Bytes(), call...), nil
}
