package notify

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exports records as Prometheus series.
type Metrics struct {
	operations    *prometheus.CounterVec
	valueVolume   *prometheus.CounterVec
	tokenVolume   *prometheus.CounterVec
	fees          *prometheus.CounterVec
	reserveValue  *prometheus.GaugeVec
	reserveTokens *prometheus.GaugeVec
}

// NewMetrics creates Metrics and registers its collectors with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "curve_operations_total",
			Help: "Count of committed curve operations by kind.",
		}, []string{"kind"}),
		valueVolume: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "curve_value_volume_total",
			Help: "Native value moved by curve operations, by kind.",
		}, []string{"kind"}),
		tokenVolume: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "curve_token_volume_total",
			Help: "Tokens moved by curve operations, by kind.",
		}, []string{"kind"}),
		fees: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "curve_fees_total",
			Help: "Fees paid to the fee recipient, by kind.",
		}, []string{"kind"}),
		reserveValue: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "curve_reserve_value",
			Help: "Native value held by the pool after the last operation.",
		}, []string{"mint"}),
		reserveTokens: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "curve_reserve_tokens",
			Help: "Tokens left for sale after the last operation.",
		}, []string{"mint"}),
	}

	for _, c := range []prometheus.Collector{
		m.operations, m.valueVolume, m.tokenVolume, m.fees, m.reserveValue, m.reserveTokens,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Publish implements Sink.
func (m *Metrics) Publish(_ context.Context, r Record) error {
	kind := string(r.Kind)
	if kind == "" {
		kind = "unknown"
	}
	mint := r.Mint.Hex()

	m.operations.WithLabelValues(kind).Inc()
	m.valueVolume.WithLabelValues(kind).Add(float64(r.ValueAmount))
	m.tokenVolume.WithLabelValues(kind).Add(float64(r.TokenAmount))
	m.fees.WithLabelValues(kind).Add(float64(r.Fee))
	m.reserveValue.WithLabelValues(mint).Set(float64(r.ReserveValue))
	m.reserveTokens.WithLabelValues(mint).Set(float64(r.ReserveTokens))
	return nil
}
