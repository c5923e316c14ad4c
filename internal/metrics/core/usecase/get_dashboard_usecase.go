package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"node-metrics-dashboard/internal/metrics/core/domain"
	"node-metrics-dashboard/internal/metrics/core/ports"
	perioddomain "node-metrics-dashboard/internal/period/core/domain"
)

var ErrInvalidDashboardQuery = errors.New("filAddress or nodeId is required")

type GetDashboardInput struct {
	FilAddress string
	NodeID     string
	Period     string
	// ViewID groups requests from one dashboard view. When set, a newer
	// request for the same view cancels this one.
	ViewID string
}

type GetDashboardUseCase struct {
	reader  ports.MetricsReaderPort
	periods ports.PeriodResolverPort
	views   *Supersede[*domain.Dashboard]
	log     logrus.FieldLogger
	now     func() time.Time
}

func NewGetDashboardUseCase(
	reader ports.MetricsReaderPort,
	periods ports.PeriodResolverPort,
	log logrus.FieldLogger,
) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		reader:  reader,
		periods: periods,
		views:   NewSupersede[*domain.Dashboard](),
		log:     log,
		now:     time.Now,
	}
}

// Execute resolves the period, fetches metrics and returns densified series.
// When both an address and a node are given, charts are node-level while the
// overview and per-node table stay address-level; the two fetches run
// concurrently.
func (uc *GetDashboardUseCase) Execute(ctx context.Context, in GetDashboardInput) (*domain.Dashboard, error) {
	if in.FilAddress == "" && in.NodeID == "" {
		return nil, ErrInvalidDashboardQuery
	}

	res, err := uc.periods.Parse(in.Period)
	if err != nil {
		return nil, err
	}
	chart := perioddomain.ResolveChart(res)

	var ticket Ticket
	if in.ViewID != "" {
		ticket = uc.views.Begin(ctx, in.ViewID)
		defer uc.views.Done(ticket)
		ctx = ticket.Context()
	}

	log := uc.log.WithFields(logrus.Fields{
		"view":       in.ViewID,
		"filAddress": in.FilAddress,
		"nodeId":     in.NodeID,
		"kind":       res.Kind,
		"step":       chart.Step,
	})

	var addressRes, chartRes *domain.MetricsResult
	g, gctx := errgroup.WithContext(ctx)

	if in.FilAddress != "" {
		g.Go(func() error {
			r, err := uc.reader.QueryMetrics(gctx, uc.query(in.FilAddress, "", res, chart))
			addressRes = r
			return err
		})
	}
	if in.NodeID != "" {
		g.Go(func() error {
			r, err := uc.reader.QueryMetrics(gctx, uc.query("", in.NodeID, res, chart))
			chartRes = r
			return err
		})
	}

	if err := g.Wait(); err != nil {
		if ctx.Err() != nil {
			log.Debug("dashboard fetch aborted")
			return nil, ErrSuperseded
		}
		log.WithError(err).Warn("dashboard fetch failed")
		return nil, err
	}
	if chartRes == nil {
		chartRes = addressRes
	}

	d := &domain.Dashboard{
		ViewID:      in.ViewID,
		Period:      in.Period,
		FilAddress:  in.FilAddress,
		NodeID:      in.NodeID,
		Resolution:  res,
		Chart:       chart,
		GeneratedAt: uc.now().UTC(),
	}

	stepStart, stepEnd := floorToStep(res.Range.Start, chart.Step), floorToStep(res.Range.End, chart.Step)
	d.Metrics = domain.FillMetrics(perioddomain.Interval(stepStart, stepEnd, chart.Step), chartRes.Metrics)
	d.Earnings = domain.FillEarnings(
		perioddomain.DayInterval(perioddomain.FloorDay(res.Range.Start), perioddomain.FloorDay(res.Range.End)),
		chartRes.Earnings,
	)

	if addressRes != nil {
		d.Overview = domain.Summarize(in.FilAddress, addressRes)
		d.PerNodeMetrics = addressRes.PerNodeMetrics
	}

	if in.ViewID != "" {
		if err := uc.views.Commit(ticket, d); err != nil {
			log.Debug("dashboard result discarded, view moved on")
			return nil, err
		}
	}

	log.WithField("points", len(d.Metrics)).Debug("dashboard built")
	return d, nil
}

// Latest returns the last committed dashboard of a view.
func (uc *GetDashboardUseCase) Latest(viewID string) (*domain.Dashboard, bool) {
	return uc.views.Latest(viewID)
}

func (uc *GetDashboardUseCase) query(address, nodeID string, res perioddomain.Resolution, chart perioddomain.ChartProps) ports.MetricsQuery {
	return ports.MetricsQuery{
		FilAddress: address,
		NodeID:     nodeID,
		Start:      res.Range.Start,
		End:        res.Range.End,
		Step:       chart.Step,
	}
}

func floorToStep(t time.Time, step perioddomain.Step) time.Time {
	if step == perioddomain.StepHour {
		return t.UTC().Truncate(time.Hour)
	}
	return perioddomain.FloorDay(t)
}
