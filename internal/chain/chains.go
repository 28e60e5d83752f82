package chain

import (
	"math/big"
	"strings"

	"github.com/byunyourim/BC-Adapter/internal/apperr"
	"github.com/byunyourim/BC-Adapter/internal/model"
)

var chainIDs = map[model.Chain]int64{
	model.Ethereum: 1,
	model.Polygon:  137,
	model.Sepolia:  11155111,
}

// Supported lists every chain with a known chain id.
func Supported() []model.Chain {
	return []model.Chain{model.Ethereum, model.Polygon, model.Sepolia}
}

// ID returns the EIP-155 chain id of c.
func ID(c model.Chain) (*big.Int, error) {
	id, ok := chainIDs[c]
	if !ok {
		return nil, apperr.New(apperr.CodeUnsupportedChain, string(c))
	}
	return big.NewInt(id), nil
}

// Parse validates a chain name received from a request.
func Parse(name string) (model.Chain, error) {
	c := model.Chain(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := chainIDs[c]; !ok {
		return "", apperr.New(apperr.CodeUnsupportedChain, name)
	}
	return c, nil
}
