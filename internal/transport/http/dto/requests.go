package dto

// Amounts travel as decimal strings so that no JSON decoder rounds them.

// CreateCurveRequest is the body of POST /curves.
type CreateCurveRequest struct {
	Creator string `json:"creator"`
	Mint    string `json:"mint"`
}

// BuyRequest is the body of POST /curves/{mint}/buy.
type BuyRequest struct {
	Buyer     string `json:"buyer"`
	Value     string `json:"value"`
	MinTokens string `json:"min_tokens"`
}

// SellRequest is the body of POST /curves/{mint}/sell.
type SellRequest struct {
	Seller   string `json:"seller"`
	Tokens   string `json:"tokens"`
	MinValue string `json:"min_value"`
}

// DepositRequest is the body of POST /accounts/{account}/deposit.
type DepositRequest struct {
	Amount string `json:"amount"`
}
