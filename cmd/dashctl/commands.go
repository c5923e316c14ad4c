package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"node-metrics-dashboard/internal/config"
	"node-metrics-dashboard/internal/logging"
	"node-metrics-dashboard/internal/upstream"

	metricsApi "node-metrics-dashboard/internal/metrics/adapters/metricsapi"
	metricsUsecase "node-metrics-dashboard/internal/metrics/core/usecase"

	nodesApi "node-metrics-dashboard/internal/nodes/adapters/statsapi"
	nodesUsecase "node-metrics-dashboard/internal/nodes/core/usecase"

	periodDomain "node-metrics-dashboard/internal/period/core/domain"
	periodUsecase "node-metrics-dashboard/internal/period/core/usecase"
)

type state struct {
	cfg        config.Config
	output     string
	timeoutSec int
	now        func() time.Time

	log     *logrus.Logger
	parser  *periodDomain.Parser
	periods *periodUsecase.PeriodUseCase
}

func (s *state) init(c *cli.Context) error {
	s.cfg.FetchTimeout = time.Duration(s.timeoutSec) * time.Second
	if err := s.cfg.Validate(); err != nil {
		return err
	}
	switch s.output {
	case "table", "json", "yaml":
	default:
		return fmt.Errorf("unknown output format %q", s.output)
	}

	log, err := logging.New(s.cfg.LogLevel, "text", c.App.ErrWriter)
	if err != nil {
		return err
	}
	s.log = log

	epoch, _ := s.cfg.Epoch()
	loc, _ := s.cfg.Location()
	weekday, _ := s.cfg.Weekday()

	s.parser = periodDomain.NewParser(epoch, loc, s.now)
	if err := periodDomain.ValidateTokens(s.parser); err != nil {
		return err
	}
	s.periods = periodUsecase.NewPeriodUseCase(s.parser, weekday, s.cfg.PayoutNth)
	return nil
}

// render writes v as json or yaml, or calls table for the default format.
func (s *state) render(w io.Writer, v any, table func(tw *tabwriter.Writer)) error {
	switch s.output {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(v)
	default:
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		table(tw)
		return tw.Flush()
	}
}

func stamp(t time.Time) string {
	return t.Format(time.RFC3339)
}

// ------------------------------------------------------------
// periods
// ------------------------------------------------------------

type tokenView struct {
	Query string `json:"query" yaml:"query"`
	Label string `json:"label" yaml:"label"`
	Days  int    `json:"days" yaml:"days"`
}

type catalogView struct {
	Default    string      `json:"default" yaml:"default"`
	Tokens     []tokenView `json:"tokens" yaml:"tokens"`
	Earnings   []string    `json:"earnings" yaml:"earnings"`
	PayoutDate string      `json:"payoutDate" yaml:"payoutDate"`
}

func periodsCommand(st *state) *cli.Command {
	return &cli.Command{
		Name:  "periods",
		Usage: "list period tokens, earnings months and this month's payout date",
		Action: func(c *cli.Context) error {
			cat := st.periods.Catalog()

			v := catalogView{Default: cat.Default.Query, PayoutDate: cat.PayoutDate.Format(time.DateOnly)}
			for _, t := range cat.Tokens {
				v.Tokens = append(v.Tokens, tokenView{Query: t.Query, Label: t.Label, Days: t.Days})
			}
			for _, e := range cat.Earnings {
				v.Earnings = append(v.Earnings, e.Label)
			}

			return st.render(c.App.Writer, v, func(tw *tabwriter.Writer) {
				fmt.Fprintln(tw, "QUERY\tLABEL\tDAYS")
				for _, t := range v.Tokens {
					fmt.Fprintf(tw, "%s\t%s\t%d\n", t.Query, t.Label, t.Days)
				}
				fmt.Fprintf(tw, "\nearnings months:\t%s\n", strings.Join(v.Earnings, ", "))
				fmt.Fprintf(tw, "payout date:\t%s\n", v.PayoutDate)
			})
		},
	}
}

// ------------------------------------------------------------
// resolve
// ------------------------------------------------------------

type resolveView struct {
	Period   string `json:"period" yaml:"period"`
	Kind     string `json:"kind" yaml:"kind"`
	Start    string `json:"start" yaml:"start"`
	End      string `json:"end" yaml:"end"`
	Step     string `json:"step" yaml:"step"`
	AxisUnit string `json:"axisUnit" yaml:"axisUnit"`
	SpanGaps string `json:"spanGaps" yaml:"spanGaps"`
}

func resolveCommand(st *state) *cli.Command {
	return &cli.Command{
		Name:      "resolve",
		Usage:     "resolve a period selector into a date range and chart axis",
		ArgsUsage: "<period>",
		Action: func(c *cli.Context) error {
			r, err := st.periods.Resolve(strings.Join(c.Args().Slice(), " "))
			if err != nil {
				return err
			}

			v := resolveView{
				Period:   r.Canonical,
				Kind:     string(r.Resolution.Kind),
				Start:    stamp(r.Resolution.Range.Start),
				End:      stamp(r.Resolution.Range.End),
				Step:     string(r.Chart.Step),
				AxisUnit: string(r.Chart.Axis.Unit),
				SpanGaps: r.Chart.SpanGap.String(),
			}

			return st.render(c.App.Writer, v, func(tw *tabwriter.Writer) {
				fmt.Fprintf(tw, "period\t%s\n", v.Period)
				fmt.Fprintf(tw, "kind\t%s\n", v.Kind)
				fmt.Fprintf(tw, "start\t%s\n", v.Start)
				fmt.Fprintf(tw, "end\t%s\n", v.End)
				fmt.Fprintf(tw, "step\t%s\n", v.Step)
				fmt.Fprintf(tw, "axis unit\t%s\n", v.AxisUnit)
				fmt.Fprintf(tw, "span gaps\t%s\n", v.SpanGaps)
			})
		},
	}
}

// ------------------------------------------------------------
// fetch
// ------------------------------------------------------------

type pointView struct {
	Time        string `json:"time" yaml:"time"`
	NumBytes    int64  `json:"numBytes" yaml:"numBytes"`
	NumRequests int64  `json:"numRequests" yaml:"numRequests"`
	Filled      bool   `json:"filled,omitempty" yaml:"filled,omitempty"`
}

type fetchView struct {
	Period          string      `json:"period" yaml:"period"`
	Step            string      `json:"step" yaml:"step"`
	TotalEarnings   float64     `json:"totalEarnings,omitempty" yaml:"totalEarnings,omitempty"`
	TotalBandwidth  int64       `json:"totalBandwidth,omitempty" yaml:"totalBandwidth,omitempty"`
	TotalRetrievals int64       `json:"totalRetrievals,omitempty" yaml:"totalRetrievals,omitempty"`
	Metrics         []pointView `json:"metrics" yaml:"metrics"`
}

func fetchCommand(st *state) *cli.Command {
	var address, nodeID, period string

	return &cli.Command{
		Name:  "fetch",
		Usage: "fetch gap-filled metrics for an address or node",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "fil-address", Usage: "FIL wallet address", Destination: &address},
			&cli.StringFlag{Name: "node-id", Usage: "node id", Destination: &nodeID},
			&cli.StringFlag{Name: "period", Usage: "period selector (default: past 7 days)", Destination: &period},
		},
		Action: func(c *cli.Context) error {
			client, err := upstream.NewClient("metrics", st.cfg.MetricsOrigin, st.cfg.FetchTimeout, st.log)
			if err != nil {
				return err
			}
			uc := metricsUsecase.NewGetDashboardUseCase(metricsApi.NewMetricsRepository(client), st.parser, st.log)

			ctx, stop := signal.NotifyContext(c.Context, os.Interrupt)
			defer stop()

			d, err := uc.Execute(ctx, metricsUsecase.GetDashboardInput{FilAddress: address, NodeID: nodeID, Period: period})
			if err != nil {
				var fe *upstream.FetchError
				if errors.As(err, &fe) {
					return fmt.Errorf("metrics service: %s", fe.Message)
				}
				return err
			}

			v := fetchView{Period: d.Resolution.Canonical(), Step: string(d.Chart.Step)}
			if o := d.Overview; o != nil {
				v.TotalEarnings = o.TotalEarnings
				v.TotalBandwidth = o.TotalBandwidth
				v.TotalRetrievals = o.TotalRetrievals
			}
			for _, m := range d.Metrics {
				v.Metrics = append(v.Metrics, pointView{
					Time:        stamp(m.Timestamp),
					NumBytes:    m.NumBytes,
					NumRequests: m.NumRequests,
					Filled:      m.Filled,
				})
			}

			return st.render(c.App.Writer, v, func(tw *tabwriter.Writer) {
				if d.Overview != nil {
					fmt.Fprintf(tw, "earnings\t%.4f FIL\n", v.TotalEarnings)
					fmt.Fprintf(tw, "bandwidth\t%s\n", humanize.Bytes(uint64(max(v.TotalBandwidth, 0))))
					fmt.Fprintf(tw, "retrievals\t%s\n\n", humanize.Comma(v.TotalRetrievals))
				}
				fmt.Fprintln(tw, "TIME\tBYTES\tREQUESTS\t")
				for _, p := range v.Metrics {
					mark := ""
					if p.Filled {
						mark = "(no data)"
					}
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
						p.Time, humanize.Bytes(uint64(max(p.NumBytes, 0))), humanize.Comma(p.NumRequests), mark)
				}
			})
		},
	}
}

// ------------------------------------------------------------
// nodes
// ------------------------------------------------------------

type nodesView struct {
	Admin   bool                `json:"admin" yaml:"admin"`
	Columns []string            `json:"columns" yaml:"columns"`
	Rows    []map[string]string `json:"rows" yaml:"rows"`
}

func nodesCommand(st *state) *cli.Command {
	var token, sortCol, filter string
	var desc bool

	return &cli.Command{
		Name:  "nodes",
		Usage: "print the node stats grid",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "token", Usage: "authorization token from the stats service", EnvVars: []string{"APP_STATS_TOKEN"}, Destination: &token},
			&cli.StringFlag{Name: "sort", Usage: "column key to sort by", Value: nodesUsecase.DefaultSortColumn, Destination: &sortCol},
			&cli.BoolFlag{Name: "desc", Usage: "sort descending", Destination: &desc},
			&cli.StringFlag{Name: "filter", Usage: "case-insensitive substring filter", Destination: &filter},
		},
		Action: func(c *cli.Context) error {
			if st.cfg.StatsOrigin == "" {
				return errors.New("--stats-origin or APP_STATS_ORIGIN is required")
			}
			client, err := upstream.NewClient("stats", st.cfg.StatsOrigin, st.cfg.FetchTimeout, st.log)
			if err != nil {
				return err
			}
			uc := nodesUsecase.NewListNodesUseCase(nodesApi.NewStatsRepository(client), st.log)

			g, err := uc.Execute(c.Context, nodesUsecase.ListNodesInput{
				Token:      token,
				SortColumn: sortCol,
				Desc:       desc,
				Filter:     filter,
			})
			if err != nil {
				return err
			}

			v := nodesView{Admin: g.Admin}
			keys := make([]string, 0, len(g.Columns))
			headers := make([]string, 0, len(g.Columns))
			for _, col := range g.Columns {
				if col.Key == "details" {
					continue
				}
				keys = append(keys, col.Key)
				headers = append(headers, strings.ToUpper(col.Key))
			}
			v.Columns = keys
			for _, r := range g.Rows {
				row := make(map[string]string, len(keys))
				for i, col := range g.Columns {
					if col.Key != "details" {
						row[col.Key] = r.Cells[i].Text
					}
				}
				v.Rows = append(v.Rows, row)
			}

			return st.render(c.App.Writer, v, func(tw *tabwriter.Writer) {
				fmt.Fprintln(tw, strings.Join(headers, "\t"))
				for _, row := range v.Rows {
					cells := make([]string, 0, len(keys))
					for _, k := range keys {
						cells = append(cells, row[k])
					}
					fmt.Fprintln(tw, strings.Join(cells, "\t"))
				}
			})
		},
	}
}
