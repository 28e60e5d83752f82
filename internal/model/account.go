package model

import (
	"errors"
	"time"
)

// ErrAccountExists is returned by persistence when an account with the same salt or address is already stored.
var ErrAccountExists = errors.New("account already exists")

// Account is a smart-contract wallet whose address was derived from Salt.
type Account struct {
	Address   string
	Chain     Chain
	Salt      string
	CreatedAt time.Time
}
