package apperrors

import "github.com/pkg/errors"

var (
	// ErrInvalidArgument is returned when the request parameters are invalid.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrZeroAmount is returned when a trade is requested for a zero amount
	// or would move zero tokens to the buyer.
	ErrZeroAmount = errors.New("trade not allowed for zero amount")

	// ErrCurveCompleted is returned when a trade is attempted after the
	// token threshold has been sold out.
	ErrCurveCompleted = errors.New("trade not allowed after threshold reached")

	// ErrCurveNotComplete is returned when a withdrawal is attempted before
	// the token threshold has been sold out.
	ErrCurveNotComplete = errors.New("withdraw not allowed before threshold reached")

	// ErrBelowMinimum is returned when the computed output is below the
	// caller's slippage guard.
	ErrBelowMinimum = errors.New("amount below minimum accepted")

	// ErrAlreadyWithdrawn is returned when the proceeds of a completed curve
	// have already been handed to the migration recipient.
	ErrAlreadyWithdrawn = errors.New("already withdrawn")

	// ErrExceedsCirculating is returned when more tokens are offered for sale
	// than are circulating.
	ErrExceedsCirculating = errors.New("amount exceeds circulating supply")

	// ErrInsufficientFunds is returned when a transfer source cannot cover
	// the amount.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrUnauthorizedTransfer is returned when a custodial pool account is
	// debited without pool authorization.
	ErrUnauthorizedTransfer = errors.New("unauthorized transfer from custodial account")

	// ErrReserveInvariant is returned when a state change would break a
	// reserve invariant.
	ErrReserveInvariant = errors.New("reserve invariant violation")

	// ErrCurveNotFound is returned when no curve exists for the mint.
	ErrCurveNotFound = errors.New("curve not found")

	// ErrCurveExists is returned when a curve is created twice for the same mint.
	ErrCurveExists = errors.New("curve already exists")

	// ErrReserveRead is returned when reading curve state from an external
	// source fails.
	ErrReserveRead = errors.New("reserve read failed")
)
