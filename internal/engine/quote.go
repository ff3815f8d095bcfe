package engine

import (
	"math"
	"math/big"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"

	"github.com/fleshka4/bonding-curve/internal/apperrors"
	"github.com/fleshka4/bonding-curve/internal/config"
	"github.com/fleshka4/bonding-curve/internal/curvemath"
	"github.com/fleshka4/bonding-curve/internal/notify"
	"github.com/fleshka4/bonding-curve/internal/reserve"
)

// FeeDenominator is the basis-point denominator of trade fees.
const FeeDenominator = 10_000

// Quote is the outcome of one operation: what moves and what the reserve
// looks like afterwards.
type Quote struct {
	Side        notify.Kind `json:"side"`
	TokenAmount uint64      `json:"token_amount,string"`
	ValueAmount uint64      `json:"value_amount,string"`
	Fee         uint64      `json:"fee,string"`
	// MinAccepted is the slippage guard the quote was checked against,
	// rescaled when a buy was clamped.
	MinAccepted   uint64 `json:"min_accepted,string"`
	Clamped       bool   `json:"clamped"`
	ReserveValue  uint64 `json:"reserve_value,string"`
	ReserveTokens uint64 `json:"reserve_tokens,string"`
}

// QuoteBuy prices spending value on tokens without touching any balance.
//
// A buy quoted past the remaining reserve, or worth at least the rest of the
// curve, is clamped: it receives every remaining token, pays exactly the
// value of those tokens plus one, and minTokens is scaled by the ratio of
// that charge to the offered value. The charge may exceed value by the
// rounding of the forward curve.
func QuoteBuy(s reserve.State, p config.Params, value, minTokens uint64) (Quote, error) {
	if err := s.CheckTrade(); err != nil {
		return Quote{}, err
	}
	if value == 0 {
		return Quote{}, errors.Wrap(apperrors.ErrZeroAmount, "buy value")
	}

	circulating := s.Circulating()
	a := s.CurveCoefficient

	// value of the whole remaining curve, rounded up
	required := curvemath.ValueForTokens(s.ReserveTokens, s.TokenThreshold, a)
	required.Add(required, big.NewInt(1))

	quoted := curvemath.TokensForValue(value, circulating, a)

	q := Quote{Side: notify.KindBuy, MinAccepted: minTokens}
	if quoted.Cmp(new(big.Int).SetUint64(s.ReserveTokens)) > 0 ||
		required.Cmp(new(big.Int).SetUint64(value)) <= 0 {
		charge := curvemath.MustUint64(required)
		q.TokenAmount = s.ReserveTokens
		q.ValueAmount = charge
		q.MinAccepted = rescaleMin(minTokens, charge, value)
		q.Clamped = true
	} else {
		q.TokenAmount = tokensOut(quoted, value, circulating, a)
		q.ValueAmount = value
	}

	if q.TokenAmount < q.MinAccepted {
		return Quote{}, errors.Wrapf(apperrors.ErrBelowMinimum,
			"buy yields %d tokens, minimum %d", q.TokenAmount, q.MinAccepted)
	}
	if q.TokenAmount == 0 {
		return Quote{}, errors.Wrapf(apperrors.ErrZeroAmount, "value %d buys no tokens", value)
	}

	q.Fee = feeOf(q.ValueAmount, p.BuyFeeBps)
	q.ReserveValue = s.ReserveValue + q.ValueAmount
	q.ReserveTokens = s.ReserveTokens - q.TokenAmount
	return q, nil
}

// QuoteSell prices selling tokens back to the pool without touching any
// balance. The payout is rounded one unit down in the pool's favour.
func QuoteSell(s reserve.State, p config.Params, tokens, minValue uint64) (Quote, error) {
	if err := s.CheckTrade(); err != nil {
		return Quote{}, err
	}
	if tokens == 0 {
		return Quote{}, errors.Wrap(apperrors.ErrZeroAmount, "sell tokens")
	}

	circulating := s.Circulating()
	if tokens > circulating {
		return Quote{}, errors.Wrapf(apperrors.ErrExceedsCirculating,
			"sell of %d tokens, %d circulating", tokens, circulating)
	}

	value := curvemath.MustUint64(curvemath.ValueForTokens(tokens, circulating, s.CurveCoefficient))
	if value > 0 {
		value--
	}
	if value < minValue {
		return Quote{}, errors.Wrapf(apperrors.ErrBelowMinimum,
			"sell yields %d value, minimum %d", value, minValue)
	}
	if value > s.ReserveValue {
		return Quote{}, errors.Wrapf(apperrors.ErrReserveInvariant,
			"payout %d exceeds reserve value %d", value, s.ReserveValue)
	}

	return Quote{
		Side:          notify.KindSell,
		TokenAmount:   tokens,
		ValueAmount:   value,
		Fee:           feeOf(value, p.SellFeeBps),
		MinAccepted:   minValue,
		ReserveValue:  s.ReserveValue - value,
		ReserveTokens: s.ReserveTokens + tokens,
	}, nil
}

// QuoteCost prices buying exactly tokens along the curve. An amount that
// reaches the end of the curve is priced like a clamped buy. Rounding in
// the forward curve may make a buy of the quoted value deliver a few
// tokens less than asked.
func QuoteCost(s reserve.State, p config.Params, tokens uint64) (Quote, error) {
	if err := s.CheckTrade(); err != nil {
		return Quote{}, err
	}
	if tokens == 0 {
		return Quote{}, errors.Wrap(apperrors.ErrZeroAmount, "token amount")
	}

	q := Quote{Side: notify.KindBuy, TokenAmount: tokens}
	if tokens >= s.ReserveTokens {
		required := curvemath.ValueForTokens(s.ReserveTokens, s.TokenThreshold, s.CurveCoefficient)
		q.TokenAmount = s.ReserveTokens
		q.ValueAmount = curvemath.MustUint64(required.Add(required, big.NewInt(1)))
		q.Clamped = true
	} else {
		q.ValueAmount = curvemath.MustUint64(curvemath.CostOfTokens(tokens, s.Circulating(), s.CurveCoefficient))
	}

	q.Fee = feeOf(q.ValueAmount, p.BuyFeeBps)
	q.ReserveValue = s.ReserveValue + q.ValueAmount
	q.ReserveTokens = s.ReserveTokens - q.TokenAmount
	return q, nil
}

// tokensOut caps the quoted buy output for value at the given circulation.
// The cap is measured from the circulating supply itself, so the tokens
// never cost less than their sell-back value.
func tokensOut(quoted *big.Int, value, circulating, a uint64) uint64 {
	base := curvemath.CumulativeValue(new(big.Int).SetUint64(circulating), a)
	reach := curvemath.CumulativeTokens(base.Add(base, new(big.Int).SetUint64(value)), a)
	reach.Sub(reach, new(big.Int).SetUint64(circulating))
	if reach.Sign() <= 0 {
		return 0
	}
	if reach.Cmp(quoted) < 0 {
		return curvemath.MustUint64(reach)
	}
	return curvemath.MustUint64(quoted)
}

func feeOf(value uint64, bps uint16) uint64 {
	fee := new(uint256.Int).Mul(uint256.NewInt(value), uint256.NewInt(uint64(bps)))
	return fee.Div(fee, uint256.NewInt(FeeDenominator)).Uint64()
}

// rescaleMin returns minimum * charged / offered, saturating at MaxUint64.
func rescaleMin(minimum, charged, offered uint64) uint64 {
	if offered == 0 {
		panic("engine: rescale against zero offered value")
	}
	z, overflow := new(uint256.Int).MulDivOverflow(
		uint256.NewInt(minimum), uint256.NewInt(charged), uint256.NewInt(offered))
	if overflow || !z.IsUint64() {
		return math.MaxUint64
	}
	return z.Uint64()
}
