package usecase

import (
	"context"

	"github.com/sirupsen/logrus"

	"node-metrics-dashboard/internal/nodes/core/domain"
	"node-metrics-dashboard/internal/nodes/core/ports"
)

const DefaultSortColumn = "id"

type ListNodesInput struct {
	Token      string
	SortColumn string
	Desc       bool
	Filter     string
}

type ListNodesUseCase struct {
	reader ports.StatsReaderPort
	log    logrus.FieldLogger
}

func NewListNodesUseCase(reader ports.StatsReaderPort, log logrus.FieldLogger) *ListNodesUseCase {
	return &ListNodesUseCase{reader: reader, log: log}
}

// Execute fetches, enriches, filters and sorts the node list. Admin-only
// columns are shown only when the stats service accepted the token.
func (uc *ListNodesUseCase) Execute(ctx context.Context, in ListNodesInput) (*domain.Grid, error) {
	stats, err := uc.reader.FetchStats(ctx, in.Token)
	if err != nil {
		return nil, err
	}
	stats.Enrich()

	if in.Token != "" && !stats.Admin {
		uc.log.Debug("authorization token not accepted by stats service, admin columns hidden")
	}

	cols := domain.VisibleColumns(stats.Admin)
	nodes := domain.FilterNodes(stats.Nodes, cols, in.Filter)

	sortCol := in.SortColumn
	if sortCol == "" {
		sortCol = DefaultSortColumn
	}
	if err := domain.SortNodes(nodes, cols, sortCol, in.Desc); err != nil {
		return nil, err
	}

	g := domain.BuildGrid(nodes, cols, stats.Admin)
	return &g, nil
}
