package main

import (
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"node-metrics-dashboard/internal/config"
)

func main() {
	if err := newApp(config.FromEnv(), nil).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newApp builds the CLI. now is nil outside tests.
func newApp(cfg config.Config, now func() time.Time) *cli.App {
	st := &state{cfg: cfg, now: now}

	return &cli.App{
		Name:  "dashctl",
		Usage: "resolve dashboard periods and fetch metrics from the command line",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "metrics-origin",
				Usage:       "metrics service base URL",
				EnvVars:     []string{"APP_METRICS_ORIGIN"},
				Value:       cfg.MetricsOrigin,
				Destination: &st.cfg.MetricsOrigin,
			},
			&cli.StringFlag{
				Name:        "stats-origin",
				Usage:       "node stats service base URL",
				EnvVars:     []string{"APP_STATS_ORIGIN"},
				Value:       cfg.StatsOrigin,
				Destination: &st.cfg.StatsOrigin,
			},
			&cli.StringFlag{
				Name:        "tz",
				Usage:       "display time zone for literal date ranges",
				EnvVars:     []string{"APP_DISPLAY_TZ"},
				Value:       cfg.DisplayTZ,
				Destination: &st.cfg.DisplayTZ,
			},
			&cli.StringFlag{
				Name:        "epoch",
				Usage:       "first earnings month, e.g. \"November 2022\"",
				EnvVars:     []string{"APP_EARNINGS_EPOCH"},
				Value:       cfg.EarningsEpoch,
				Destination: &st.cfg.EarningsEpoch,
			},
			&cli.IntFlag{
				Name:        "timeout",
				Usage:       "upstream request timeout in seconds",
				EnvVars:     []string{"APP_FETCH_TIMEOUT_SEC"},
				Value:       int(cfg.FetchTimeout / time.Second),
				Destination: &st.timeoutSec,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug shows upstream requests)",
				EnvVars:     []string{"APP_LOG_LEVEL"},
				Value:       cfg.LogLevel,
				Destination: &st.cfg.LogLevel,
			},
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "output format: table, json or yaml",
				Value:       "table",
				Destination: &st.output,
			},
		},
		Before: st.init,
		Commands: []*cli.Command{
			periodsCommand(st),
			resolveCommand(st),
			fetchCommand(st),
			nodesCommand(st),
		},
	}
}
