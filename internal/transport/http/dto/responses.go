package dto

import "github.com/ethereum/go-ethereum/common"

// BalanceResponse reports the holding of Asset by Account. The zero Asset is
// the native currency.
type BalanceResponse struct {
	Account common.Address `json:"account"`
	Asset   common.Address `json:"asset"`
	Balance uint64         `json:"balance,string"`
}
