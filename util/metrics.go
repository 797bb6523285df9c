package util

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	estimatesRequestedCounter prometheus.Counter
	trialsSimulatedCounter    prometheus.Counter
	equityCacheHitCounter     prometheus.Counter
	dealsAnalyzedCounter      prometheus.Counter
}

func (m *metrics) EstimateRequested() {
	m.estimatesRequestedCounter.Inc()
}

func (m *metrics) TrialsSimulated(numTrials int) {
	m.trialsSimulatedCounter.Add(float64(numTrials))
}

func (m *metrics) EquityCacheHit() {
	m.equityCacheHitCounter.Inc()
}

func (m *metrics) DealsAnalyzed(numDeals int) {
	m.dealsAnalyzedCounter.Add(float64(numDeals))
}

var Metrics = &metrics{
	estimatesRequestedCounter: promauto.NewCounter(prometheus.CounterOpts{
		Name: "equity_estimates_requested_total",
		Help: "Total number of equity estimates requested",
	}),
	trialsSimulatedCounter: promauto.NewCounter(prometheus.CounterOpts{
		Name: "equity_trials_simulated_total",
		Help: "Total number of Monte Carlo trials simulated",
	}),
	equityCacheHitCounter: promauto.NewCounter(prometheus.CounterOpts{
		Name: "equity_cache_hits_total",
		Help: "Total number of estimates served from the preflop cache",
	}),
	dealsAnalyzedCounter: promauto.NewCounter(prometheus.CounterOpts{
		Name: "deals_analyzed_total",
		Help: "Total number of deals analyzed by the deal statistics run",
	}),
}
