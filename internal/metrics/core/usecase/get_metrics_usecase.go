package usecase

import (
	"context"
	"errors"
	"time"

	"node-metrics-dashboard/internal/metrics/core/domain"
	"node-metrics-dashboard/internal/metrics/core/ports"
	perioddomain "node-metrics-dashboard/internal/period/core/domain"
)

var (
	ErrInvalidMetricsQuery = errors.New("exactly one of filAddress or nodeId is required")
	ErrInvalidTimeRange    = errors.New("invalid time range")
	ErrInvalidStep         = errors.New("invalid step, expected hour or day")
)

type GetMetricsInput struct {
	FilAddress string
	NodeID     string
	From       int64 // epoch ms
	To         int64 // epoch ms
	Step       string
}

type GetMetricsUseCase struct {
	reader ports.MetricsReaderPort
}

func NewGetMetricsUseCase(reader ports.MetricsReaderPort) *GetMetricsUseCase {
	return &GetMetricsUseCase{reader: reader}
}

// Execute validates a raw range query and forwards it to the metrics service.
func (uc *GetMetricsUseCase) Execute(ctx context.Context, in GetMetricsInput) (*domain.MetricsResult, error) {
	if (in.FilAddress == "") == (in.NodeID == "") {
		return nil, ErrInvalidMetricsQuery
	}

	if in.From <= 0 || in.To <= 0 || in.From > in.To {
		return nil, ErrInvalidTimeRange
	}

	step := perioddomain.Step(in.Step)
	if !step.Valid() {
		return nil, ErrInvalidStep
	}

	q := ports.MetricsQuery{
		FilAddress: in.FilAddress,
		NodeID:     in.NodeID,
		Start:      time.UnixMilli(in.From).UTC(),
		End:        time.UnixMilli(in.To).UTC(),
		Step:       step,
	}

	result, err := uc.reader.QueryMetrics(ctx, q)
	if err != nil {
		return nil, err
	}

	return result, nil
}
