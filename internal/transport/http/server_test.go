package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fleshka4/bonding-curve/internal/apperrors"
	"github.com/fleshka4/bonding-curve/internal/config"
	"github.com/fleshka4/bonding-curve/internal/engine"
	"github.com/fleshka4/bonding-curve/internal/logging"
	"github.com/fleshka4/bonding-curve/internal/notify"
	"github.com/fleshka4/bonding-curve/internal/reserve"
	"github.com/fleshka4/bonding-curve/internal/service/dto"
	"github.com/fleshka4/bonding-curve/internal/service/mock"
	"github.com/fleshka4/bonding-curve/internal/store"
)

const (
	mintHex   = "0x1234567890123456789012345678901234567890"
	traderHex = "0x1234567890123456789012345678901234567891"
)

var (
	mint   = common.HexToAddress(mintHex)
	trader = common.HexToAddress(traderHex)
)

func newTestServer(t *testing.T) (*Server, *mock.MockService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockService := mock.NewMockService(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewServer(mockService, config.Config{RequestTimeout: time.Second}, logger, prometheus.NewRegistry()), mockService
}

func serve(server *Server, method, target, body string) *http.Response {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	server.mux.ServeHTTP(w, req)
	return w.Result()
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()

	defer func() { require.NoError(t, resp.Body.Close()) }()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestPingHandler(t *testing.T) {
	t.Parallel()

	server, _ := newTestServer(t)
	resp := serve(server, http.MethodGet, "/ping", "")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "pong", readBody(t, resp))
}

func TestMetricsHandler(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	metrics, err := notify.NewMetrics(reg)
	require.NoError(t, err)
	require.NoError(t, metrics.Publish(t.Context(), notify.Record{Kind: notify.KindBuy, Mint: mint}))

	ctrl := gomock.NewController(t)
	server := NewServer(mock.NewMockService(ctrl), config.Config{}, nil, reg)

	resp := serve(server, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, readBody(t, resp), "curve_operations_total")
}

func TestEstimateHandler(t *testing.T) {
	t.Parallel()

	server, mockService := newTestServer(t)

	t.Run("success", func(t *testing.T) {
		quote := engine.Quote{Side: notify.KindBuy, TokenAmount: 86_023_773_031_210, ValueAmount: 1_000_000_000}
		mockService.EXPECT().
			Estimate(gomock.Any(), dto.EstimateRequest{Mint: mint, Side: notify.KindBuy, Amount: 1_000_000_000}).
			Return(quote, nil)

		resp := serve(server, http.MethodGet, "/estimate?mint="+mintHex+"&side=buy&amount=1000000000", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "application/json", resp.Header.Get("Content-Type"))

		var got engine.Quote
		require.NoError(t, json.Unmarshal([]byte(readBody(t, resp)), &got))
		require.Equal(t, quote, got)
	})

	t.Run("validation error - missing params", func(t *testing.T) {
		resp := serve(server, http.MethodGet, "/estimate?mint="+mintHex, "")
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("validation error - bad side", func(t *testing.T) {
		resp := serve(server, http.MethodGet, "/estimate?mint="+mintHex+"&side=swap&amount=1", "")
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("validation error - bad amount", func(t *testing.T) {
		resp := serve(server, http.MethodGet, "/estimate?mint="+mintHex+"&side=sell&amount=-1000", "")
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	testServiceError := func(t *testing.T, serviceError error, expectedStatusCode int) {
		mockService.EXPECT().
			Estimate(gomock.Any(), gomock.Any()).
			Return(engine.Quote{}, serviceError)

		resp := serve(server, http.MethodGet, "/estimate?mint="+mintHex+"&side=sell&amount=1000", "")
		defer resp.Body.Close()

		require.Equal(t, expectedStatusCode, resp.StatusCode)
	}

	t.Run("service error - zero amount", func(t *testing.T) {
		testServiceError(t, apperrors.ErrZeroAmount, http.StatusBadRequest)
	})

	t.Run("service error - curve not found", func(t *testing.T) {
		testServiceError(t, errors.Wrap(apperrors.ErrCurveNotFound, "mint"), http.StatusNotFound)
	})

	t.Run("service error - exceeds circulating", func(t *testing.T) {
		testServiceError(t, apperrors.ErrExceedsCirculating, http.StatusUnprocessableEntity)
	})

	t.Run("service error - reserve read failed", func(t *testing.T) {
		testServiceError(t, apperrors.ErrReserveRead, http.StatusBadGateway)
	})

	t.Run("service error - unknown error", func(t *testing.T) {
		testServiceError(t, errors.New("unknown error"), http.StatusInternalServerError)
	})

	t.Run("wrong http method", func(t *testing.T) {
		resp := serve(server, http.MethodPost, "/estimate", "")
		defer resp.Body.Close()

		require.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	})
}

func TestCostHandler(t *testing.T) {
	t.Parallel()

	server, mockService := newTestServer(t)

	mockService.EXPECT().
		Cost(gomock.Any(), dto.CostRequest{Mint: mint, Tokens: 5_000_000_000}).
		Return(engine.Quote{Side: notify.KindBuy, TokenAmount: 5_000_000_000, ValueAmount: 3}, nil)

	resp := serve(server, http.MethodGet, "/cost?mint="+mintHex+"&tokens=5000000000", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, readBody(t, resp), `"value_amount":"3"`)

	resp = serve(server, http.MethodGet, "/cost?mint="+mintHex, "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCurveHandlers(t *testing.T) {
	t.Parallel()

	server, mockService := newTestServer(t)
	state, err := reserve.New(793_099_999_845_341, 2_720_310_557)
	require.NoError(t, err)
	info := dto.CurveInfo{
		Curve:      store.Curve{Mint: mint, Pool: reserve.PoolAddress(mint), Creator: trader, State: state},
		Status:     reserve.StatusActive,
		PoolTokens: 1_000_000_000_000_000,
	}

	t.Run("create", func(t *testing.T) {
		mockService.EXPECT().
			CreateCurve(gomock.Any(), dto.CreateCurveRequest{Creator: trader, Mint: mint}).
			Return(info, nil)

		resp := serve(server, http.MethodPost, "/curves",
			`{"creator":"`+traderHex+`","mint":"`+mintHex+`"}`)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		body := readBody(t, resp)
		require.Contains(t, body, `"status":"active"`)
		require.Contains(t, body, `"pool_tokens":"1000000000000000"`)
	})

	t.Run("create twice", func(t *testing.T) {
		mockService.EXPECT().
			CreateCurve(gomock.Any(), gomock.Any()).
			Return(dto.CurveInfo{}, apperrors.ErrCurveExists)

		resp := serve(server, http.MethodPost, "/curves",
			`{"creator":"`+traderHex+`","mint":"`+mintHex+`"}`)
		defer resp.Body.Close()
		require.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("create with unknown field", func(t *testing.T) {
		resp := serve(server, http.MethodPost, "/curves", `{"creator":"`+traderHex+`","name":"x"}`)
		defer resp.Body.Close()
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("get", func(t *testing.T) {
		mockService.EXPECT().Curve(gomock.Any(), mint).Return(info, nil)

		resp := serve(server, http.MethodGet, "/curves/"+mintHex, "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Contains(t, readBody(t, resp), `"reserve_tokens":"793099999845341"`)
	})

	t.Run("get bad mint", func(t *testing.T) {
		resp := serve(server, http.MethodGet, "/curves/0x123", "")
		defer resp.Body.Close()
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("list", func(t *testing.T) {
		mockService.EXPECT().Curves(gomock.Any()).Return([]dto.CurveInfo{info}, nil)

		resp := serve(server, http.MethodGet, "/curves", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var got []map[string]any
		require.NoError(t, json.Unmarshal([]byte(readBody(t, resp)), &got))
		require.Len(t, got, 1)
	})
}

func TestTradeHandlers(t *testing.T) {
	t.Parallel()

	server, mockService := newTestServer(t)

	t.Run("buy", func(t *testing.T) {
		mockService.EXPECT().
			Buy(gomock.Any(), dto.BuyRequest{Mint: mint, Buyer: trader, Value: 1_000_000_000, MinTokens: 5}).
			Return(engine.Quote{Side: notify.KindBuy, TokenAmount: 86_023_773_031_210}, nil)

		resp := serve(server, http.MethodPost, "/curves/"+mintHex+"/buy",
			`{"buyer":"`+traderHex+`","value":"1000000000","min_tokens":"5"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Contains(t, readBody(t, resp), `"token_amount":"86023773031210"`)
	})

	t.Run("buy below minimum", func(t *testing.T) {
		mockService.EXPECT().
			Buy(gomock.Any(), gomock.Any()).
			Return(engine.Quote{}, apperrors.ErrBelowMinimum)

		resp := serve(server, http.MethodPost, "/curves/"+mintHex+"/buy",
			`{"buyer":"`+traderHex+`","value":"1000000000"}`)
		defer resp.Body.Close()
		require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run("sell", func(t *testing.T) {
		mockService.EXPECT().
			Sell(gomock.Any(), dto.SellRequest{Mint: mint, Seller: trader, Tokens: 10, MinValue: 0}).
			Return(engine.Quote{Side: notify.KindSell, TokenAmount: 10}, nil)

		resp := serve(server, http.MethodPost, "/curves/"+mintHex+"/sell",
			`{"seller":"`+traderHex+`","tokens":"10"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Contains(t, readBody(t, resp), `"side":"sell"`)
	})

	t.Run("sell after completion", func(t *testing.T) {
		mockService.EXPECT().
			Sell(gomock.Any(), gomock.Any()).
			Return(engine.Quote{}, apperrors.ErrCurveCompleted)

		resp := serve(server, http.MethodPost, "/curves/"+mintHex+"/sell",
			`{"seller":"`+traderHex+`","tokens":"10"}`)
		defer resp.Body.Close()
		require.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("withdraw", func(t *testing.T) {
		mockService.EXPECT().
			Withdraw(gomock.Any(), mint).
			Return(engine.Quote{Side: notify.KindWithdraw, ValueAmount: 85_000_000_001}, nil)

		resp := serve(server, http.MethodPost, "/curves/"+mintHex+"/withdraw", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Contains(t, readBody(t, resp), `"value_amount":"85000000001"`)
	})

	t.Run("unauthorized transfer", func(t *testing.T) {
		mockService.EXPECT().
			Withdraw(gomock.Any(), mint).
			Return(engine.Quote{}, apperrors.ErrUnauthorizedTransfer)

		resp := serve(server, http.MethodPost, "/curves/"+mintHex+"/withdraw", "")
		defer resp.Body.Close()
		require.Equal(t, http.StatusForbidden, resp.StatusCode)
	})
}

func TestAccountHandlers(t *testing.T) {
	t.Parallel()

	server, mockService := newTestServer(t)

	mockService.EXPECT().
		Deposit(gomock.Any(), dto.DepositRequest{Account: trader, Amount: 2_000_000_000}).
		Return(uint64(2_000_000_000), nil)

	resp := serve(server, http.MethodPost, "/accounts/"+traderHex+"/deposit", `{"amount":"2000000000"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, readBody(t, resp), `"balance":"2000000000"`)

	mockService.EXPECT().
		Balance(gomock.Any(), dto.BalanceRequest{Account: trader, Asset: mint}).
		Return(uint64(42), nil)

	resp = serve(server, http.MethodGet, "/accounts/"+traderHex+"/balance?asset="+mintHex, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got map[string]string
	require.NoError(t, json.Unmarshal([]byte(readBody(t, resp)), &got))
	require.Equal(t, "42", got["balance"])
	require.Equal(t, mint.Hex(), got["asset"])
}

func TestConfigHandlers(t *testing.T) {
	t.Parallel()

	server, mockService := newTestServer(t)
	params := config.Params{BuyFeeBps: 100, SellFeeBps: 100, TokenThreshold: 793_099_999_845_341}

	mockService.EXPECT().Config(gomock.Any()).Return(params)

	resp := serve(server, http.MethodGet, "/config", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, readBody(t, resp), `"token_threshold":"793099999845341"`)

	fee := uint16(250)
	updated := params
	updated.SellFeeBps = fee
	mockService.EXPECT().
		UpdateConfig(gomock.Any(), config.ParamsUpdate{SellFeeBps: &fee}).
		Return(updated, nil)

	resp = serve(server, http.MethodPatch, "/config", `{"sell_fee_bps":250}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, readBody(t, resp), `"sell_fee_bps":250`)

	mockService.EXPECT().
		UpdateConfig(gomock.Any(), gomock.Any()).
		Return(config.Params{}, apperrors.ErrInvalidArgument)

	resp = serve(server, http.MethodPatch, "/config", `{"buy_fee_bps":20000}`)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLogMiddleware(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var logOutput bytes.Buffer
	logger := logging.New(&logOutput, "bonding-curve", "test", slog.LevelInfo)
	server := NewServer(mock.NewMockService(ctrl), config.Config{}, logger, prometheus.NewRegistry())

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()
	server.mux.ServeHTTP(w, req)

	logContent := logOutput.String()
	require.Contains(t, logContent, `"method":"GET"`)
	require.Contains(t, logContent, `"url":"/ping"`)
	require.Contains(t, logContent, `"status":200`)
	require.Contains(t, logContent, `"request_id"`)
}

func TestServer_ListenAndServe(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockService(ctrl)
	server := NewServer(mockService, config.Config{
		ReadHeaderTimeout: 5 * time.Second,
		GraceTimeout:      5 * time.Second,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)), prometheus.NewRegistry())

	const addr = "localhost:0"

	errCh := make(chan error, 1)

	go func() {
		errCh <- server.ListenAndServe(addr)
	}()

	time.Sleep(100 * time.Millisecond)

	err := syscall.Kill(syscall.Getpid(), syscall.SIGTERM)
	require.NoError(t, err)

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not shut down in time")
	}
}
