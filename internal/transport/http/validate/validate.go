package validate

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"

	"github.com/fleshka4/bonding-curve/internal/config"
	"github.com/fleshka4/bonding-curve/internal/notify"
	sdto "github.com/fleshka4/bonding-curve/internal/service/dto"
	"github.com/fleshka4/bonding-curve/internal/transport/http/dto"
)

const maxBodyBytes = 1 << 20

// EstimateRequestValidate validates /estimate request and returns dto.
func EstimateRequestValidate(r *http.Request) (*sdto.EstimateRequest, int, error) {
	q := r.URL.Query()
	mint, side, amt := q.Get("mint"), q.Get("side"), q.Get("amount")
	if mint == "" || side == "" || amt == "" {
		return nil, http.StatusBadRequest, errors.New("missing params")
	}
	m, err := parseAddress("mint", mint)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	kind := notify.Kind(strings.ToLower(side))
	if kind != notify.KindBuy && kind != notify.KindSell {
		return nil, http.StatusBadRequest, errors.Errorf("bad side %q", side)
	}
	a, err := parseAmount("amount", amt)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	return &sdto.EstimateRequest{Mint: m, Side: kind, Amount: a}, 0, nil
}

// CostRequestValidate validates /cost request and returns dto.
func CostRequestValidate(r *http.Request) (*sdto.CostRequest, int, error) {
	q := r.URL.Query()
	mint, tokens := q.Get("mint"), q.Get("tokens")
	if mint == "" || tokens == "" {
		return nil, http.StatusBadRequest, errors.New("missing params")
	}
	m, err := parseAddress("mint", mint)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	n, err := parseAmount("tokens", tokens)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	return &sdto.CostRequest{Mint: m, Tokens: n}, 0, nil
}

// MintParam returns the {mint} path parameter.
func MintParam(r *http.Request) (common.Address, int, error) {
	m, err := parseAddress("mint", chi.URLParam(r, "mint"))
	if err != nil {
		return common.Address{}, http.StatusBadRequest, err
	}
	return m, 0, nil
}

// CreateCurveRequestValidate validates POST /curves request and returns dto.
func CreateCurveRequestValidate(r *http.Request) (*sdto.CreateCurveRequest, int, error) {
	var body dto.CreateCurveRequest
	if code, err := decode(r, &body); err != nil {
		return nil, code, err
	}
	creator, err := parseAddress("creator", body.Creator)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	mint, err := parseAddress("mint", body.Mint)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	return &sdto.CreateCurveRequest{Creator: creator, Mint: mint}, 0, nil
}

// BuyRequestValidate validates POST /curves/{mint}/buy request and returns dto.
func BuyRequestValidate(r *http.Request) (*sdto.BuyRequest, int, error) {
	mint, code, err := MintParam(r)
	if err != nil {
		return nil, code, err
	}
	var body dto.BuyRequest
	if code, err := decode(r, &body); err != nil {
		return nil, code, err
	}
	buyer, err := parseAddress("buyer", body.Buyer)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	value, err := parseAmount("value", body.Value)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	minTokens, err := parseOptionalAmount("min_tokens", body.MinTokens)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	return &sdto.BuyRequest{Mint: mint, Buyer: buyer, Value: value, MinTokens: minTokens}, 0, nil
}

// SellRequestValidate validates POST /curves/{mint}/sell request and returns dto.
func SellRequestValidate(r *http.Request) (*sdto.SellRequest, int, error) {
	mint, code, err := MintParam(r)
	if err != nil {
		return nil, code, err
	}
	var body dto.SellRequest
	if code, err := decode(r, &body); err != nil {
		return nil, code, err
	}
	seller, err := parseAddress("seller", body.Seller)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	tokens, err := parseAmount("tokens", body.Tokens)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	minValue, err := parseOptionalAmount("min_value", body.MinValue)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	return &sdto.SellRequest{Mint: mint, Seller: seller, Tokens: tokens, MinValue: minValue}, 0, nil
}

// DepositRequestValidate validates POST /accounts/{account}/deposit request
// and returns dto.
func DepositRequestValidate(r *http.Request) (*sdto.DepositRequest, int, error) {
	account, err := parseAddress("account", chi.URLParam(r, "account"))
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	var body dto.DepositRequest
	if code, err := decode(r, &body); err != nil {
		return nil, code, err
	}
	amount, err := parseAmount("amount", body.Amount)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	return &sdto.DepositRequest{Account: account, Amount: amount}, 0, nil
}

// BalanceRequestValidate validates GET /accounts/{account}/balance request
// and returns dto. A missing asset selects the native currency.
func BalanceRequestValidate(r *http.Request) (*sdto.BalanceRequest, int, error) {
	account, err := parseAddress("account", chi.URLParam(r, "account"))
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	req := &sdto.BalanceRequest{Account: account}
	if asset := r.URL.Query().Get("asset"); asset != "" {
		if req.Asset, err = parseAddress("asset", asset); err != nil {
			return nil, http.StatusBadRequest, err
		}
	}
	return req, 0, nil
}

// ConfigUpdateValidate validates PATCH /config request and returns the update.
func ConfigUpdateValidate(r *http.Request) (*config.ParamsUpdate, int, error) {
	var u config.ParamsUpdate
	if code, err := decode(r, &u); err != nil {
		return nil, code, err
	}
	return &u, 0, nil
}

func decode(r *http.Request, v any) (int, error) {
	if ct := r.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "application/json") {
		return http.StatusUnsupportedMediaType, errors.Errorf("unsupported content type %q", ct)
	}
	if r.Body == nil {
		return http.StatusBadRequest, errors.New("empty body")
	}

	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return http.StatusBadRequest, errors.New("empty body")
		}
		return http.StatusBadRequest, errors.Wrap(err, "decode body")
	}
	return 0, nil
}

func parseAddress(name, s string) (common.Address, error) {
	if s == "" {
		return common.Address{}, errors.Errorf("missing %s", name)
	}
	if !common.IsHexAddress(s) {
		return common.Address{}, errors.Errorf("bad %s address format", name)
	}
	return common.HexToAddress(s), nil
}

func parseAmount(name, s string) (uint64, error) {
	if s == "" {
		return 0, errors.Errorf("missing %s", name)
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, errors.Errorf("bad %s", name)
	}
	return n, nil
}

func parseOptionalAmount(name, s string) (uint64, error) {
	if s == "" {
		return 0, nil
	}
	return parseAmount(name, s)
}
