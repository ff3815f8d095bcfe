package dto

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/fleshka4/bonding-curve/internal/reserve"
	"github.com/fleshka4/bonding-curve/internal/store"
)

// CreateCurveRequest represents a request to launch a curve for Mint paid
// for by Creator.
type CreateCurveRequest struct {
	Creator common.Address
	Mint    common.Address
}

// CurveInfo is a curve record with its derived lifecycle.
type CurveInfo struct {
	store.Curve
	Status      reserve.Status `json:"status"`
	Circulating uint64         `json:"circulating,string"`
	PoolTokens  uint64         `json:"pool_tokens,string"`
}
