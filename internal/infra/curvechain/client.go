package curvechain

import (
	"context"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/fleshka4/bonding-curve/internal/apperrors"
	"github.com/fleshka4/bonding-curve/internal/reserve"
)

const curveABIJSON = `[
	{"inputs":[{"internalType":"address","name":"mint","type":"address"}],"name":"reserves","outputs":[{"internalType":"uint64","name":"reserveValue","type":"uint64"},{"internalType":"uint64","name":"reserveTokens","type":"uint64"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"internalType":"address","name":"mint","type":"address"}],"name":"curveParams","outputs":[{"internalType":"uint64","name":"tokenThreshold","type":"uint64"},{"internalType":"uint64","name":"curveCoefficient","type":"uint64"}],"stateMutability":"view","type":"function"}
]`

const (
	reservesMethod = "reserves"
	paramsMethod   = "curveParams"
)

// Client reads bonding curve reserves from a curve contract.
type Client interface {
	// ReadCurve returns the reserve state of the curve for mint.
	ReadCurve(ctx context.Context, mint common.Address) (reserve.State, error)
}

//go:generate mockgen -source=client.go -destination=mock/client.go -package=mock

// EthCaller represents interface for calling contracts.
type EthCaller interface {
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

type ethClientImpl struct {
	caller   EthCaller
	curveABI abi.ABI
	contract common.Address

	callTimeout time.Duration
}

// NewClient creates a curve Client backed by an Ethereum RPC connection.
func NewClient(rpcURL string, contract common.Address, callTimeout time.Duration) (Client, error) {
	caller, err := ethclient.Dial(rpcURL)
	if err != nil {
		return nil, errors.Wrap(err, "ethclient.Dial")
	}

	return newClientWithCaller(caller, contract, callTimeout)
}

func newClientWithCaller(caller EthCaller, contract common.Address, callTimeout time.Duration) (Client, error) {
	curveABI, err := abi.JSON(strings.NewReader(curveABIJSON))
	if err != nil {
		return nil, errors.Wrap(err, "abi.JSON")
	}

	return &ethClientImpl{
		caller:   caller,
		curveABI: curveABI,
		contract: contract,

		callTimeout: callTimeout,
	}, nil
}

func (c *ethClientImpl) call(ctx context.Context, method string, args ...interface{}) ([]interface{}, error) {
	data, err := c.curveABI.Pack(method, args...)
	if err != nil {
		return nil, errors.Wrap(err, "c.curveABI.Pack")
	}

	res, err := c.caller.CallContract(
		ctx,
		ethereum.CallMsg{
			To:   &c.contract,
			Data: data,
		},
		nil,
	)
	if err != nil {
		return nil, errors.Wrap(err, "c.caller.CallContract")
	}

	out, err := c.curveABI.Unpack(method, res)
	if err != nil {
		return nil, errors.Wrap(err, "c.curveABI.Unpack")
	}

	return out, nil
}

// ReadCurve fetches the reserves and the curve parameters concurrently and
// combines them into one reserve state.
func (c *ethClientImpl) ReadCurve(ctx context.Context, mint common.Address) (reserve.State, error) {
	const numCalls = 2

	type pairResult struct {
		first, second uint64
		err           error
		method        string
	}

	var wg sync.WaitGroup
	ch := make(chan pairResult, numCalls)

	read := func(method string) {
		defer wg.Done()

		ctxCall, cancel := context.WithTimeout(ctx, c.callTimeout)
		defer cancel()

		select {
		case <-ctxCall.Done():
			ch <- pairResult{err: errors.Wrap(ctxCall.Err(), "context cancelled before call")}
			return
		default:
		}

		out, err := c.call(ctxCall, method, mint)
		if err != nil {
			ch <- pairResult{err: errors.Wrapf(err, "failed to call %s", method)}
			return
		}

		const requiredSize = 2
		if len(out) < requiredSize {
			ch <- pairResult{err: errors.Errorf("insufficient outputs from %s call: expected %d, got %d",
				method, requiredSize, len(out))}
			return
		}

		first, ok := out[0].(uint64)
		if !ok {
			ch <- pairResult{err: errors.Errorf("failed to cast first %s output to uint64", method)}
			return
		}
		second, ok := out[1].(uint64)
		if !ok {
			ch <- pairResult{err: errors.Errorf("failed to cast second %s output to uint64", method)}
			return
		}

		ch <- pairResult{first: first, second: second, method: method}
	}

	wg.Add(numCalls)
	go read(reservesMethod)
	go read(paramsMethod)

	go func() {
		wg.Wait()
		close(ch)
	}()

	var (
		state       reserve.State
		combinedErr error
	)

	for result := range ch {
		if result.err != nil {
			combinedErr = multierr.Append(combinedErr, result.err)
			continue
		}

		switch result.method {
		case reservesMethod:
			state.ReserveValue, state.ReserveTokens = result.first, result.second
		case paramsMethod:
			state.TokenThreshold, state.CurveCoefficient = result.first, result.second
		}
	}

	if combinedErr != nil {
		return reserve.State{}, errors.Wrapf(apperrors.ErrReserveRead, "mint %s: %v", mint.Hex(), combinedErr)
	}
	if err := state.Validate(); err != nil {
		return reserve.State{}, errors.Wrapf(apperrors.ErrReserveRead, "mint %s: %v", mint.Hex(), err)
	}

	return state, nil
}
