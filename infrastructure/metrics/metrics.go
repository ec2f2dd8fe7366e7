// Package metrics exposes the parameters of the active network as prometheus
// metrics.
package metrics

import (
	"net/http"

	"github.com/brickchain/brickd/chaincfg"
	"github.com/brickchain/brickd/version"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "brickd"

// Metrics holds the collectors describing one network.
type Metrics struct {
	registry *prometheus.Registry

	buildInfo    *prometheus.GaugeVec
	networkInfo  *prometheus.GaugeVec
	powLimitBits prometheus.Gauge
	fixedSeeds   prometheus.Gauge
}

// New returns metrics describing params, registered on a registry of their
// own.
func New(params *chaincfg.Params) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		buildInfo: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "build_info",
			Help:      "Always 1, labelled with the brickd version.",
		}, []string{"version"}),
		networkInfo: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "network_info",
			Help:      "Always 1, labelled with the active network.",
		}, []string{"name", "magic", "genesis"}),
		powLimitBits: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pow_limit_bits",
			Help:      "Proof of work limit of the active network in compact form.",
		}),
		fixedSeeds: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "fixed_seeds",
			Help:      "Number of fixed seed addresses of the active network.",
		}),
	}
	m.registry.MustRegister(m.buildInfo, m.networkInfo, m.powLimitBits, m.fixedSeeds)

	m.buildInfo.WithLabelValues(version.Version()).Set(1)
	m.networkInfo.WithLabelValues(params.Name, params.MessageMagic.String(),
		params.GenesisHash.String()).Set(1)
	m.powLimitBits.Set(float64(params.PowLimitBits))
	m.fixedSeeds.Set(float64(len(params.FixedSeeds)))

	return m
}

// Handler returns an http.Handler serving the metrics in the prometheus text
// format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
