package validate

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleshka4/bonding-curve/internal/apperrors"
	"github.com/fleshka4/bonding-curve/internal/notify"
	"github.com/fleshka4/bonding-curve/internal/service/dto"
)

var (
	mint    = common.HexToAddress("0xbeef")
	account = common.HexToAddress("0xa11")
)

func TestEstimateRequestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     dto.EstimateRequest
		wantErr assert.ErrorAssertionFunc
	}{
		{
			name:    "valid buy",
			req:     dto.EstimateRequest{Mint: mint, Side: notify.KindBuy, Amount: 1},
			wantErr: assert.NoError,
		},
		{
			name:    "valid sell",
			req:     dto.EstimateRequest{Mint: mint, Side: notify.KindSell, Amount: 1},
			wantErr: assert.NoError,
		},
		{
			name:    "zero mint",
			req:     dto.EstimateRequest{Side: notify.KindBuy, Amount: 1},
			wantErr: assert.Error,
		},
		{
			name:    "withdraw is not a side",
			req:     dto.EstimateRequest{Mint: mint, Side: notify.KindWithdraw, Amount: 1},
			wantErr: assert.Error,
		},
		{
			name:    "zero amount",
			req:     dto.EstimateRequest{Mint: mint, Side: notify.KindBuy},
			wantErr: assert.Error,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tt.wantErr(t, EstimateRequestValidate(tt.req))
		})
	}
}

func TestCostRequestValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, CostRequestValidate(dto.CostRequest{Mint: mint, Tokens: 5}))
	require.ErrorIs(t, CostRequestValidate(dto.CostRequest{Tokens: 5}), apperrors.ErrInvalidArgument)
	require.ErrorIs(t, CostRequestValidate(dto.CostRequest{Mint: mint}), apperrors.ErrZeroAmount)
}

func TestCreateCurveRequestValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, CreateCurveRequestValidate(dto.CreateCurveRequest{Creator: account, Mint: mint}))
	require.ErrorIs(t, CreateCurveRequestValidate(dto.CreateCurveRequest{Mint: mint}), apperrors.ErrInvalidArgument)
	require.ErrorIs(t, CreateCurveRequestValidate(dto.CreateCurveRequest{Creator: account}), apperrors.ErrInvalidArgument)
	require.ErrorIs(t, CreateCurveRequestValidate(dto.CreateCurveRequest{Creator: mint, Mint: mint}), apperrors.ErrInvalidArgument)
}

func TestTradeRequestValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, BuyRequestValidate(dto.BuyRequest{Mint: mint, Buyer: account, Value: 1}))
	require.ErrorIs(t, BuyRequestValidate(dto.BuyRequest{Mint: mint, Value: 1}), apperrors.ErrInvalidArgument)
	require.NoError(t, SellRequestValidate(dto.SellRequest{Mint: mint, Seller: account, Tokens: 1}))
	require.ErrorIs(t, SellRequestValidate(dto.SellRequest{Seller: account, Tokens: 1}), apperrors.ErrInvalidArgument)
}

func TestAccountRequestValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, DepositRequestValidate(dto.DepositRequest{Account: account, Amount: 1}))
	require.ErrorIs(t, DepositRequestValidate(dto.DepositRequest{Amount: 1}), apperrors.ErrInvalidArgument)
	require.ErrorIs(t, DepositRequestValidate(dto.DepositRequest{Account: account}), apperrors.ErrZeroAmount)
	require.NoError(t, BalanceRequestValidate(dto.BalanceRequest{Account: account}))
	require.ErrorIs(t, BalanceRequestValidate(dto.BalanceRequest{Asset: mint}), apperrors.ErrInvalidArgument)
}
