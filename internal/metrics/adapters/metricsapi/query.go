package metricsapi

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"node-metrics-dashboard/internal/metrics/core/ports"
)

var ErrInvalidQuery = errors.New("metrics query needs exactly one of filAddress or nodeId")

// EncodeQuery builds the metrics service query string. Dates cross the wire
// as epoch milliseconds.
func EncodeQuery(q ports.MetricsQuery) (url.Values, error) {
	if (q.FilAddress == "") == (q.NodeID == "") {
		return nil, ErrInvalidQuery
	}
	if !q.Step.Valid() {
		return nil, fmt.Errorf("metrics query: invalid step %q", q.Step)
	}
	if q.Start.After(q.End) {
		return nil, fmt.Errorf("metrics query: start %s after end %s", q.Start, q.End)
	}

	v := url.Values{}
	if q.FilAddress != "" {
		v.Set("filAddress", q.FilAddress)
	} else {
		v.Set("nodeId", q.NodeID)
	}
	v.Set("startDate", strconv.FormatInt(q.Start.UnixMilli(), 10))
	v.Set("endDate", strconv.FormatInt(q.End.UnixMilli(), 10))
	v.Set("step", string(q.Step))

	return v, nil
}
