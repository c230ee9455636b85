package ntpdiag

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type statistic struct {
	probeCounter *prometheus.CounterVec
	offsetGauge  prometheus.Gauge
	rttGauge     prometheus.Gauge
	stratumGauge prometheus.Gauge
}

func newStatistic(cfg *Config) *statistic {

	probeCounter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ntpdiag",
		Subsystem: "probes",
		Name:      "total",
		Help:      "The total number of probes by result",
	}, []string{"result"})
	prometheus.MustRegister(probeCounter)

	offsetGauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "ntpdiag",
		Subsystem: "last",
		Name:      "offset_sec",
		Help:      "The offset measured by the last probe",
	})
	prometheus.MustRegister(offsetGauge)

	rttGauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "ntpdiag",
		Subsystem: "last",
		Name:      "round_trip_sec",
		Help:      "The round trip delay measured by the last probe",
	})
	prometheus.MustRegister(rttGauge)

	stratumGauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "ntpdiag",
		Subsystem: "last",
		Name:      "stratum",
		Help:      "The stratum reported by the last probed server",
	})
	prometheus.MustRegister(stratumGauge)

	http.Handle("/metrics", promhttp.Handler())
	Info.Printf("listen metric: %s", cfg.Metric)
	go http.ListenAndServe(cfg.Metric, nil)

	return &statistic{
		probeCounter: probeCounter,
		offsetGauge:  offsetGauge,
		rttGauge:     rttGauge,
		stratumGauge: stratumGauge,
	}
}

func (s *statistic) success(r *Result) {
	s.probeCounter.WithLabelValues("ok").Inc()
	s.offsetGauge.Set(float64(r.OffsetMicros) / microPerSec)
	s.rttGauge.Set(float64(r.RoundTripMicros) / microPerSec)
	s.stratumGauge.Set(float64(r.Stratum))
}

func (s *statistic) failure(kind string) {
	s.probeCounter.WithLabelValues(kind).Inc()
}
