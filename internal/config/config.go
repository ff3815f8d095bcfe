package config

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds application configuration loaded from file.
type Config struct {
	ListenAddr        string        `yaml:"listen_addr"`
	GraceTimeout      time.Duration `yaml:"shutdown_timeout"`
	RequestTimeout    time.Duration `yaml:"request_timeout"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
	CallTimeout       time.Duration `yaml:"call_timeout"`

	Env      string `yaml:"env"`
	LogLevel string `yaml:"log_level"`

	// DBPath selects the bbolt store; empty keeps all state in memory.
	DBPath string `yaml:"db_path"`

	// RPCURL and CurveContract enable estimates against a deployed curve
	// factory instead of the local store.
	RPCURL        string `yaml:"rpc_url"`
	CurveContract string `yaml:"curve_contract"`

	Curve CurveConfig `yaml:"curve"`
}

// CurveConfig is the file form of Params.
type CurveConfig struct {
	FeeRecipient       string `yaml:"fee_recipient"`
	MigrationRecipient string `yaml:"migration_recipient"`
	BuyFeeBps          uint16 `yaml:"buy_fee_bps"`
	SellFeeBps         uint16 `yaml:"sell_fee_bps"`
	TokenSupply        uint64 `yaml:"token_supply"`
	TokenThreshold     uint64 `yaml:"token_threshold"`
	CurveCoefficient   uint64 `yaml:"curve_coefficient"`
	DeployFee          uint64 `yaml:"deploy_fee"`
}

// Load reads the config from a YAML file path.
// Fails fatally if config is invalid or file is missing.
func Load(path string) Config {
	cfg, err := Read(path)
	if err != nil {
		log.Fatalf("failed to load config: config.Read: %v", err)
	}
	return cfg
}

// Read reads and validates the config from a YAML file path.
func Read(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "os.Open")
	}
	defer func(f *os.File) {
		err := f.Close()
		if err != nil {
			log.Printf("failed to close config file: f.Close: %v", err)
		}
	}(f)

	return Parse(f)
}

// Parse decodes the config from r, applies fallbacks and validates it.
func Parse(r io.Reader) (Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "decoder.Decode")
	}

	// Fallbacks
	const defaultTimeout = 5 * time.Second
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":1337"
	}
	if cfg.GraceTimeout == 0 {
		cfg.GraceTimeout = defaultTimeout
	}
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = defaultTimeout
	}
	if cfg.ReadHeaderTimeout == 0 {
		cfg.ReadHeaderTimeout = defaultTimeout
	}
	if cfg.CallTimeout == 0 {
		cfg.CallTimeout = defaultTimeout
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	if cfg.RPCURL != "" && cfg.CurveContract == "" {
		return Config{}, errors.New("curve_contract is required when rpc_url is set")
	}
	if _, err := cfg.Params(); err != nil {
		return Config{}, errors.Wrap(err, "curve")
	}

	return cfg, nil
}

// Params converts the curve section into a validated Params snapshot.
func (c Config) Params() (Params, error) {
	feeRecipient, err := parseAddress("fee_recipient", c.Curve.FeeRecipient)
	if err != nil {
		return Params{}, err
	}
	migrationRecipient, err := parseAddress("migration_recipient", c.Curve.MigrationRecipient)
	if err != nil {
		return Params{}, err
	}

	p := Params{
		FeeRecipient:       feeRecipient,
		MigrationRecipient: migrationRecipient,
		BuyFeeBps:          c.Curve.BuyFeeBps,
		SellFeeBps:         c.Curve.SellFeeBps,
		TokenSupply:        c.Curve.TokenSupply,
		TokenThreshold:     c.Curve.TokenThreshold,
		CurveCoefficient:   c.Curve.CurveCoefficient,
		DeployFee:          c.Curve.DeployFee,
	}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}
