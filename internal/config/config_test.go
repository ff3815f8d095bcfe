package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

const validYAML = `
listen_addr: ":8080"
request_timeout: 2s
db_path: /tmp/curves.db
curve:
  fee_recipient: "0x1111111111111111111111111111111111111111"
  migration_recipient: "0x2222222222222222222222222222222222222222"
  buy_fee_bps: 100
  sell_fee_bps: 50
  token_supply: 1000000000000000
  token_threshold: 793099999845341
  curve_coefficient: 2720310557
  deploy_fee: 20000000
`

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("valid with fallbacks", func(t *testing.T) {
		cfg, err := Parse(strings.NewReader(validYAML))
		require.NoError(t, err)

		require.Equal(t, ":8080", cfg.ListenAddr)
		require.Equal(t, 2*time.Second, cfg.RequestTimeout)
		require.Equal(t, 5*time.Second, cfg.GraceTimeout)
		require.Equal(t, 5*time.Second, cfg.ReadHeaderTimeout)
		require.Equal(t, 5*time.Second, cfg.CallTimeout)
		require.Equal(t, "info", cfg.LogLevel)
		require.Equal(t, "/tmp/curves.db", cfg.DBPath)

		p, err := cfg.Params()
		require.NoError(t, err)
		require.Equal(t, Params{
			FeeRecipient:       common.HexToAddress("0x1111111111111111111111111111111111111111"),
			MigrationRecipient: common.HexToAddress("0x2222222222222222222222222222222222222222"),
			BuyFeeBps:          100,
			SellFeeBps:         50,
			TokenSupply:        1_000_000_000_000_000,
			TokenThreshold:     793_099_999_845_341,
			CurveCoefficient:   2_720_310_557,
			DeployFee:          20_000_000,
		}, p)
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := Parse(strings.NewReader(validYAML + "bogus: 1\n"))
		require.Error(t, err)
	})

	t.Run("rpc url without contract", func(t *testing.T) {
		_, err := Parse(strings.NewReader(validYAML + "rpc_url: http://localhost:8545\n"))
		require.Error(t, err)
	})

	t.Run("bad fee recipient", func(t *testing.T) {
		bad := strings.Replace(validYAML, "0x1111111111111111111111111111111111111111", "nope", 1)
		_, err := Parse(strings.NewReader(bad))
		require.Error(t, err)
	})

	t.Run("threshold above supply", func(t *testing.T) {
		bad := strings.Replace(validYAML, "token_supply: 1000000000000000", "token_supply: 1", 1)
		_, err := Parse(strings.NewReader(bad))
		require.Error(t, err)
	})
}

func TestRead(t *testing.T) {
	t.Parallel()

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(validYAML), 0o600))

		cfg, err := Read(path)
		require.NoError(t, err)
		require.Equal(t, ":8080", cfg.ListenAddr)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Read(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})
}
