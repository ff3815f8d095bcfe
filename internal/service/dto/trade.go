package dto

import "github.com/ethereum/go-ethereum/common"

// BuyRequest represents a request to spend Value on tokens of Mint.
type BuyRequest struct {
	Mint      common.Address
	Buyer     common.Address
	Value     uint64
	MinTokens uint64
}

// SellRequest represents a request to sell Tokens of Mint back to its pool.
type SellRequest struct {
	Mint     common.Address
	Seller   common.Address
	Tokens   uint64
	MinValue uint64
}
