package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// FundMetrics holds all Prometheus metrics for the fund module
type FundMetrics struct {
	FundsTotal       prometheus.Counter
	DepositsTotal    *prometheus.CounterVec
	WithdrawalsTotal *prometheus.CounterVec
	SwapsTotal       *prometheus.CounterVec
	SwapVolume       *prometheus.CounterVec
	FeesAccrued      *prometheus.CounterVec
	FeesClaimed      *prometheus.CounterVec
	PositionsMinted  prometheus.Counter
	LiquidityAdded   *prometheus.CounterVec
	LiquidityRemoved *prometheus.CounterVec
}

var (
	fundMetricsOnce sync.Once
	fundMetrics     *FundMetrics
)

// NewFundMetrics creates and registers fund metrics (singleton pattern)
func NewFundMetrics() *FundMetrics {
	fundMetricsOnce.Do(func() {
		fundMetrics = &FundMetrics{
			FundsTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "dotoli",
					Subsystem: "fund",
					Name:      "funds_total",
					Help:      "Total number of funds created",
				},
			),
			DepositsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "dotoli",
					Subsystem: "fund",
					Name:      "deposits_total",
					Help:      "Total number of deposits by token",
				},
				[]string{"token"},
			),
			WithdrawalsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "dotoli",
					Subsystem: "fund",
					Name:      "withdrawals_total",
					Help:      "Total number of withdrawals by token",
				},
				[]string{"token"},
			),
			SwapsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "dotoli",
					Subsystem: "fund",
					Name:      "swaps_total",
					Help:      "Total number of executed trades by kind",
				},
				[]string{"kind"},
			),
			SwapVolume: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "dotoli",
					Subsystem: "fund",
					Name:      "swap_volume",
					Help:      "Cumulative swap input volume by token",
				},
				[]string{"token"},
			),
			FeesAccrued: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "dotoli",
					Subsystem: "fund",
					Name:      "fees_accrued",
					Help:      "Cumulative manager fees skimmed by token",
				},
				[]string{"token"},
			),
			FeesClaimed: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "dotoli",
					Subsystem: "fund",
					Name:      "fees_claimed",
					Help:      "Cumulative manager fees paid out by token",
				},
				[]string{"token"},
			),
			PositionsMinted: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "dotoli",
					Subsystem: "fund",
					Name:      "positions_minted",
					Help:      "Total number of liquidity positions minted",
				},
			),
			LiquidityAdded: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "dotoli",
					Subsystem: "fund",
					Name:      "liquidity_added",
					Help:      "Cumulative liquidity deposited into positions by token",
				},
				[]string{"token"},
			),
			LiquidityRemoved: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "dotoli",
					Subsystem: "fund",
					Name:      "liquidity_removed",
					Help:      "Cumulative liquidity withdrawn from positions by token",
				},
				[]string{"token"},
			),
		}
	})
	return fundMetrics
}
