package dto

import "github.com/ethereum/go-ethereum/common"

// DepositRequest represents a request to credit native value to Account.
type DepositRequest struct {
	Account common.Address
	Amount  uint64
}

// BalanceRequest represents a request for the holding of Asset by Account.
// The zero Asset is the native currency.
type BalanceRequest struct {
	Account common.Address
	Asset   common.Address
}
