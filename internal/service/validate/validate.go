package validate

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/fleshka4/bonding-curve/internal/apperrors"
	"github.com/fleshka4/bonding-curve/internal/notify"
	"github.com/fleshka4/bonding-curve/internal/service/dto"
)

var zeroAddress = common.Address{}

// EstimateRequestValidate validates business logic request.
func EstimateRequestValidate(req dto.EstimateRequest) error {
	if req.Mint == zeroAddress {
		return errors.Wrap(apperrors.ErrInvalidArgument, "mint address cannot be empty")
	}
	if req.Side != notify.KindBuy && req.Side != notify.KindSell {
		return errors.Wrapf(apperrors.ErrInvalidArgument, "unknown side %q", req.Side)
	}
	if req.Amount == 0 {
		return errors.Wrap(apperrors.ErrZeroAmount, "amount cannot be zero")
	}
	return nil
}

// CostRequestValidate validates business logic request.
func CostRequestValidate(req dto.CostRequest) error {
	if req.Mint == zeroAddress {
		return errors.Wrap(apperrors.ErrInvalidArgument, "mint address cannot be empty")
	}
	if req.Tokens == 0 {
		return errors.Wrap(apperrors.ErrZeroAmount, "token amount cannot be zero")
	}
	return nil
}

// CreateCurveRequestValidate validates business logic request.
func CreateCurveRequestValidate(req dto.CreateCurveRequest) error {
	if req.Creator == zeroAddress || req.Mint == zeroAddress {
		return errors.Wrap(apperrors.ErrInvalidArgument, "address cannot be empty")
	}
	if req.Creator == req.Mint {
		return errors.Wrap(apperrors.ErrInvalidArgument, "mint address cannot be the same as creator address")
	}
	return nil
}

// BuyRequestValidate validates business logic request.
func BuyRequestValidate(req dto.BuyRequest) error {
	if req.Mint == zeroAddress || req.Buyer == zeroAddress {
		return errors.Wrap(apperrors.ErrInvalidArgument, "address cannot be empty")
	}
	return nil
}

// SellRequestValidate validates business logic request.
func SellRequestValidate(req dto.SellRequest) error {
	if req.Mint == zeroAddress || req.Seller == zeroAddress {
		return errors.Wrap(apperrors.ErrInvalidArgument, "address cannot be empty")
	}
	return nil
}

// DepositRequestValidate validates business logic request.
func DepositRequestValidate(req dto.DepositRequest) error {
	if req.Account == zeroAddress {
		return errors.Wrap(apperrors.ErrInvalidArgument, "account address cannot be empty")
	}
	if req.Amount == 0 {
		return errors.Wrap(apperrors.ErrZeroAmount, "deposit amount cannot be zero")
	}
	return nil
}

// BalanceRequestValidate validates business logic request.
func BalanceRequestValidate(req dto.BalanceRequest) error {
	if req.Account == zeroAddress {
		return errors.Wrap(apperrors.ErrInvalidArgument, "account address cannot be empty")
	}
	return nil
}
