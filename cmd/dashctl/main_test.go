package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"node-metrics-dashboard/internal/config"
	periodDomain "node-metrics-dashboard/internal/period/core/domain"
)

var testNow = time.Date(2024, 3, 10, 15, 32, 0, 0, time.UTC)

func testConfig(metricsOrigin string) config.Config {
	return config.Config{
		ShutdownTimeout: time.Second,
		MetricsOrigin:   metricsOrigin,
		FetchTimeout:    5 * time.Second,
		EarningsEpoch:   "November 2022",
		DisplayTZ:       "UTC",
		PayoutWeekday:   "Tuesday",
		PayoutNth:       2,
		LogLevel:        "error",
		LogFormat:       "text",
	}
}

func run(t *testing.T, cfg config.Config, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp(cfg, func() time.Time { return testNow })
	app.Writer = &out
	app.ErrWriter = io.Discard
	err := app.Run(append([]string{"dashctl"}, args...))
	return out.String(), err
}

func TestPeriods_JSON(t *testing.T) {
	out, err := run(t, testConfig(config.DefaultMetricsOrigin), "-o", "json", "periods")
	require.NoError(t, err)

	var v catalogView
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.Equal(t, "7d", v.Default)
	assert.Len(t, v.Tokens, len(periodDomain.Tokens))
	assert.Equal(t, "March 2024", v.Earnings[0])
	assert.Equal(t, "November 2022", v.Earnings[len(v.Earnings)-1])
	assert.Equal(t, "2024-03-12", v.PayoutDate)
}

func TestResolve_Table(t *testing.T) {
	out, err := run(t, testConfig(config.DefaultMetricsOrigin), "resolve", "Past", "24", "hours")
	require.NoError(t, err)

	assert.Contains(t, out, "24h")
	assert.Contains(t, out, "2024-03-09T15:32:00Z")
	assert.Contains(t, out, "2024-03-10T15:32:00Z")
	assert.Contains(t, out, "1h0m0s")
}

func TestResolve_YAML(t *testing.T) {
	out, err := run(t, testConfig(config.DefaultMetricsOrigin), "--output", "yaml", "resolve", "February 2024")
	require.NoError(t, err)

	var v resolveView
	require.NoError(t, yaml.Unmarshal([]byte(out), &v))
	assert.Equal(t, "February 2024", v.Period)
	assert.Equal(t, "earnings", v.Kind)
	assert.Equal(t, "2024-03-01T00:00:00Z", v.End)
}

func TestResolve_InvalidRange(t *testing.T) {
	_, err := run(t, testConfig(config.DefaultMetricsOrigin), "resolve", "2024-02-01 2024-01-01")
	assert.True(t, errors.Is(err, periodDomain.ErrInvalidRange))
}

func TestFetch_FillsGaps(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "f1abc", r.URL.Query().Get("filAddress"))
		assert.Equal(t, "day", r.URL.Query().Get("step"))
		_, _ = w.Write([]byte(`{
			"metrics": [{"timeStamp": "2024-03-02T00:00:00Z", "numBytes": 2048, "numRequests": 3}],
			"earnings": [],
			"globalStats": {"totalEarnings": 1.5, "totalBandwidth": 2048, "totalRetrievals": 3}
		}`))
	}))
	defer srv.Close()

	out, err := run(t, testConfig(srv.URL), "-o", "json", "fetch", "--fil-address", "f1abc", "--period", "2024-03-01 2024-03-03")
	require.NoError(t, err)

	var v fetchView
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.Equal(t, "2024-03-01 2024-03-03", v.Period)
	require.Len(t, v.Metrics, 3)
	assert.True(t, v.Metrics[0].Filled)
	assert.False(t, v.Metrics[1].Filled)
	assert.Equal(t, int64(2048), v.Metrics[1].NumBytes)
	assert.True(t, v.Metrics[2].Filled)
	assert.Equal(t, int64(3), v.TotalRetrievals)
}

func TestFetch_UpstreamMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message": "Address not found"}`))
	}))
	defer srv.Close()

	_, err := run(t, testConfig(srv.URL), "fetch", "--fil-address", "f1abc")
	require.Error(t, err)
	assert.Equal(t, "metrics service: Address not found", err.Error())
}

func TestNodes_RequiresStatsOrigin(t *testing.T) {
	_, err := run(t, testConfig(config.DefaultMetricsOrigin), "nodes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "APP_STATS_ORIGIN")
}

func TestUnknownOutputFormat(t *testing.T) {
	_, err := run(t, testConfig(config.DefaultMetricsOrigin), "-o", "xml", "periods")
	assert.Error(t, err)
}

func TestTimeout_FromEnv(t *testing.T) {
	t.Setenv("APP_FETCH_TIMEOUT_SEC", "0")

	_, err := run(t, testConfig(config.DefaultMetricsOrigin), "periods")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "APP_FETCH_TIMEOUT_SEC must be positive")
}

func TestTimeout_FlagOverridesEnv(t *testing.T) {
	t.Setenv("APP_FETCH_TIMEOUT_SEC", "0")

	_, err := run(t, testConfig(config.DefaultMetricsOrigin), "--timeout", "3", "periods")
	assert.NoError(t, err)
}
