package domain

import (
	"time"

	perioddomain "node-metrics-dashboard/internal/period/core/domain"
)

// Metric is one step bucket of retrieval traffic.
type Metric struct {
	Timestamp   time.Time
	NumBytes    int64
	NumRequests int64
	Filled      bool // synthesized for a missing bucket
}

// Earning is one day of estimated FIL earnings.
type Earning struct {
	Timestamp time.Time
	FILAmount float64
	Filled    bool
}

type GlobalStats struct {
	TotalEarnings   float64
	TotalBandwidth  int64
	TotalRetrievals int64
}

type NodeStateCount struct {
	State string // active / inactive / down / draining
	Count int
}

type PerNodeMetric struct {
	NodeID       string
	FILAmount    float64
	NumBytes     int64
	NumRequests  int64
	PayoutStatus string // valid / pending / postponed
}

// MetricsResult is what the metrics service returns. GlobalStats, Nodes and
// PerNodeMetrics are only present on address-level queries.
type MetricsResult struct {
	Metrics        []Metric
	Earnings       []Earning
	GlobalStats    *GlobalStats
	Nodes          []NodeStateCount
	PerNodeMetrics []PerNodeMetric
}

type Overview struct {
	Address          string
	TotalEarnings    float64
	TotalBandwidth   int64
	TotalRetrievals  int64
	NumActiveNodes   int
	NumInactiveNodes int
	NumDownNodes     int
}

type Dashboard struct {
	ViewID         string
	Period         string
	FilAddress     string
	NodeID         string
	Resolution     perioddomain.Resolution
	Chart          perioddomain.ChartProps
	Overview       *Overview
	Metrics        []Metric
	Earnings       []Earning
	PerNodeMetrics []PerNodeMetric
	GeneratedAt    time.Time
}
