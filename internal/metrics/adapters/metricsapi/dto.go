package metricsapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

type metricsResponse struct {
	Metrics        []metricDTO        `json:"metrics"`
	Earnings       []earningDTO       `json:"earnings"`
	GlobalStats    *globalStatsDTO    `json:"globalStats"`
	Nodes          []nodeStateDTO     `json:"nodes"`
	PerNodeMetrics []perNodeMetricDTO `json:"perNodeMetrics"`
}

type metricDTO struct {
	TimeStamp   timestamp `json:"timeStamp"`
	NumBytes    int64     `json:"numBytes"`
	NumRequests int64     `json:"numRequests"`
}

type earningDTO struct {
	Timestamp timestamp `json:"timestamp"`
	FILAmount float64   `json:"filAmount"`
}

type globalStatsDTO struct {
	TotalEarnings   float64 `json:"totalEarnings"`
	TotalRetrievals int64   `json:"totalRetrievals"`
	TotalBandwidth  int64   `json:"totalBandwidth"`
}

type nodeStateDTO struct {
	State string `json:"state"`
	Count int    `json:"count"`
}

type perNodeMetricDTO struct {
	NodeID       string  `json:"nodeId"`
	FILAmount    float64 `json:"filAmount"`
	NumBytes     int64   `json:"numBytes"`
	NumRequests  int64   `json:"numRequests"`
	PayoutStatus string  `json:"payoutStatus"`
}

// timestamp accepts an RFC 3339 string or epoch milliseconds, as a number
// or a numeric string.
type timestamp struct {
	time.Time
}

func (t *timestamp) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}

	raw := string(b)
	if len(b) > 0 && b[0] == '"' {
		if err := json.Unmarshal(b, &raw); err != nil {
			return err
		}
		if _, err := strconv.ParseFloat(raw, 64); err != nil {
			parsed, err := time.Parse(time.RFC3339Nano, raw)
			if err != nil {
				return fmt.Errorf("timestamp %q: %w", raw, err)
			}
			t.Time = parsed
			return nil
		}
	}

	ms, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("timestamp %s: %w", raw, err)
	}
	t.Time = time.UnixMilli(int64(ms)).UTC()
	return nil
}
