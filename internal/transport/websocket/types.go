package websocket

import (
	"context"

	"github.com/byunyourim/BC-Adapter/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	DepositHandler interface {
		OnExternalDeposit(ctx context.Context, event model.DepositEvent)
	}
)
