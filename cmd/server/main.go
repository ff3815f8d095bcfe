package main

import (
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/common"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/fleshka4/bonding-curve/internal/config"
	"github.com/fleshka4/bonding-curve/internal/infra/curvechain"
	"github.com/fleshka4/bonding-curve/internal/logging"
	"github.com/fleshka4/bonding-curve/internal/notify"
	"github.com/fleshka4/bonding-curve/internal/service"
	"github.com/fleshka4/bonding-curve/internal/store"
	transport "github.com/fleshka4/bonding-curve/internal/transport/http"
)

const serviceName = "bonding-curve"

func main() {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "cfg/config.yaml"
	}

	cfg := config.Load(path)

	logger, err := logging.Setup(serviceName, cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("logging.Setup: %v", err)
	}

	params, err := cfg.Params()
	if err != nil {
		log.Fatalf("cfg.Params: %v", err)
	}
	paramsStore, err := config.NewStore(params)
	if err != nil {
		log.Fatalf("config.NewStore: %v", err)
	}

	st, err := openStore(cfg.DBPath)
	if err != nil {
		log.Fatalf("openStore: %v", err)
	}
	defer func() {
		if err := st.Close(); err != nil {
			logger.Error("close store", slog.Any("error", err))
		}
	}()

	var reader service.CurveReader = store.StateReader{Store: st}
	if cfg.RPCURL != "" {
		reader, err = curvechain.NewClient(cfg.RPCURL, common.HexToAddress(cfg.CurveContract), cfg.CallTimeout)
		if err != nil {
			log.Fatalf("curvechain.NewClient: %v", err)
		}
		logger.Info("estimates read from chain", slog.String("contract", cfg.CurveContract))
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics, err := notify.NewMetrics(reg)
	if err != nil {
		log.Fatalf("notify.NewMetrics: %v", err)
	}

	svc := service.NewCurveService(st, reader, paramsStore, notify.Multi{notify.NewLog(logger), metrics}, logger)
	srv := transport.NewServer(svc, cfg, logger, reg)

	if err = srv.ListenAndServe(cfg.ListenAddr); err != nil {
		logger.Error("srv.ListenAndServe", slog.Any("error", err))
	}
}

func openStore(path string) (store.Store, error) {
	if path == "" {
		return store.NewMemory(), nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, err
	}
	return store.OpenBolt(path, nil)
}
