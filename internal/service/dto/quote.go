package dto

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/fleshka4/bonding-curve/internal/notify"
)

// EstimateRequest represents a request to price a buy or a sell without
// executing it.
type EstimateRequest struct {
	Mint   common.Address
	Side   notify.Kind
	Amount uint64
}

// CostRequest represents a request to price buying an exact token amount.
type CostRequest struct {
	Mint   common.Address
	Tokens uint64
}
