package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func i64(v int64) *int64 { return &v }

func sampleNode() Node {
	return Node{
		ID:           "8a3b1f2c-1111-2222-3333-444455556666",
		State:        "active",
		Level:        1,
		Version:      "1024_9f8e7d",
		SpeedtestISP: "Speedy Net Inc",
		Geoloc:       Geoloc{City: "Lisbon", Country: "Portugal", CountryCode: "PT", ASNName: "Example, Telecom Operator SA"},
		TTFB: TTFBStats{
			ReqsServed1h:  i64(200),
			Hits1h:        150,
			Errors1h:      10,
			ReqsServed12h: i64(0),
		},
		Memory: MemoryStats{TotalKB: 16_000, AvailableKB: 4_000},
		CPU:    CPUStats{NumCPUs: 4, LoadAvgs: []float64{0.5, 2, 1}},
		HealthFailures: []HealthCheckFailure{
			{Reason: "old", CreatedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
			{Reason: "new", CreatedAt: time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)},
		},
	}
}

func TestEnrich(t *testing.T) {
	n := sampleNode()
	n.Enrich()

	assert.Equal(t, "8a3b1f2c", n.IDShort)
	assert.Equal(t, "1024", n.VersionShort)
	assert.Equal(t, "Example Telecom", n.ISPShort)

	require.NotNil(t, n.CacheRate1h)
	assert.InDelta(t, 0.75, *n.CacheRate1h, 1e-9)
	assert.InDelta(t, 0.05, *n.ErrorRate1h, 1e-9)

	require.NotNil(t, n.CacheRate12h)
	assert.Zero(t, *n.CacheRate12h)
	assert.Zero(t, *n.ErrorRate12h)

	assert.Equal(t, int64(12_000), n.MemoryUsedKB)
	assert.Equal(t, 2.0, n.CPUAvgLoad)

	require.Len(t, n.HealthFailures, 2)
	assert.Equal(t, "new", n.HealthFailures[0].Reason)
}

func TestEnrich_MissingCounters(t *testing.T) {
	n := Node{ID: "abc", Version: "7"}
	n.Enrich()

	assert.Equal(t, "abc", n.IDShort)
	assert.Equal(t, "7", n.VersionShort)
	assert.Equal(t, "Unknown ISP", n.ISPShort)
	assert.Nil(t, n.CacheRate1h)
	assert.Nil(t, n.ErrorRate12h)
	assert.NotNil(t, n.HealthFailures)
	assert.Zero(t, n.CPUAvgLoad)
}

func TestShortISP_FallsBackToSpeedtest(t *testing.T) {
	assert.Equal(t, "Speedy Net", shortISP("", "Speedy Net Inc"))
}
