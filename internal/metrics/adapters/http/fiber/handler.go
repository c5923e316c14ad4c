package fiber

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"node-metrics-dashboard/internal/metrics/core/domain"
	"node-metrics-dashboard/internal/metrics/core/usecase"
	perioddomain "node-metrics-dashboard/internal/period/core/domain"
	"node-metrics-dashboard/internal/upstream"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// ViewHeader identifies the dashboard view a request belongs to. A newer
// request with the same value cancels the older one.
const ViewHeader = "X-View-ID"

type GetMetricsUseCase interface {
	Execute(ctx context.Context, in usecase.GetMetricsInput) (*domain.MetricsResult, error)
}

type GetDashboardUseCase interface {
	Execute(ctx context.Context, in usecase.GetDashboardInput) (*domain.Dashboard, error)
	Latest(viewID string) (*domain.Dashboard, bool)
}

type MetricsHandler struct {
	uc        GetMetricsUseCase
	dashboard GetDashboardUseCase
}

func NewMetricsHandler(uc GetMetricsUseCase, dashboard GetDashboardUseCase) *MetricsHandler {
	return &MetricsHandler{uc: uc, dashboard: dashboard}
}

// GetMetrics godoc
// @Summary Query raw metrics
// @Description Forwards a range query to the metrics service and returns its answer without gap filling
// @Tags Metrics
// @Produce json
// @Param filAddress query string false "FIL wallet address (exclusive with nodeId)"
// @Param nodeId query string false "Node id (exclusive with filAddress)"
// @Param from query int true "Start, epoch ms"
// @Param to query int true "End, epoch ms"
// @Param step query string true "Step: hour | day"
// @Success 200 {object} MetricsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /metrics [get]
func (h *MetricsHandler) GetMetrics(c *fiber.Ctx) error {
	fromStr := c.Query("from", "")
	toStr := c.Query("to", "")
	if fromStr == "" || toStr == "" {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_query",
			Message: "from and to are required",
		})
	}

	from, err := strconv.ParseInt(fromStr, 10, 64)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_query",
			Message: "invalid 'from' parameter",
		})
	}
	to, err := strconv.ParseInt(toStr, 10, 64)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_query",
			Message: "invalid 'to' parameter",
		})
	}

	in := usecase.GetMetricsInput{
		FilAddress: c.Query("filAddress", ""),
		NodeID:     c.Query("nodeId", ""),
		From:       from,
		To:         to,
		Step:       c.Query("step", string(perioddomain.StepDay)),
	}

	res, err := h.uc.Execute(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(toMetricsResponse(res))
}

// GetDashboard godoc
// @Summary Build a dashboard
// @Description Resolves the period, fetches metrics and returns gap-filled series with the chart axis
// @Tags Dashboard
// @Produce json
// @Param filAddress query string false "FIL wallet address"
// @Param nodeId query string false "Node id"
// @Param period query string false "Period token, earnings month or YYYY-MM-DD YYYY-MM-DD range"
// @Param viewId query string false "View id, also accepted as the X-View-ID header"
// @Success 200 {object} DashboardResponse
// @Success 204 "Superseded by a newer request for the same view"
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /dashboard [get]
func (h *MetricsHandler) GetDashboard(c *fiber.Ctx) error {
	viewID := c.Get(ViewHeader)
	if viewID == "" {
		viewID = c.Query("viewId", "")
	}

	// The view keeps these after the request returns, so they must not alias
	// fasthttp's pooled request buffers.
	in := usecase.GetDashboardInput{
		FilAddress: utils.CopyString(c.Query("filAddress", "")),
		NodeID:     utils.CopyString(c.Query("nodeId", "")),
		Period:     utils.CopyString(c.Query("period", "")),
		ViewID:     utils.CopyString(viewID),
	}

	d, err := h.dashboard.Execute(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(toDashboardResponse(d, d.Resolution.Canonical()))
}

// GetLatestDashboard godoc
// @Summary Last dashboard of a view
// @Description Returns the dashboard committed by the most recent request of a view
// @Tags Dashboard
// @Produce json
// @Param id path string true "View id"
// @Success 200 {object} DashboardResponse
// @Failure 404 {object} ErrorResponse
// @Router /dashboard/views/{id} [get]
func (h *MetricsHandler) GetLatestDashboard(c *fiber.Ctx) error {
	d, ok := h.dashboard.Latest(c.Params("id"))
	if !ok {
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Error:   "not_found",
			Message: "no dashboard for this view yet",
		})
	}

	return c.Status(http.StatusOK).JSON(toDashboardResponse(d, d.Resolution.Canonical()))
}

func writeError(c *fiber.Ctx, err error) error {
	var fetchErr *upstream.FetchError

	switch {
	case errors.Is(err, usecase.ErrSuperseded), errors.Is(err, context.Canceled):
		return c.SendStatus(http.StatusNoContent)
	case errors.Is(err, perioddomain.ErrInvalidRange):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_range",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrInvalidMetricsQuery),
		errors.Is(err, usecase.ErrInvalidTimeRange),
		errors.Is(err, usecase.ErrInvalidStep),
		errors.Is(err, usecase.ErrInvalidDashboardQuery):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_query",
			Message: err.Error(),
		})
	case errors.As(err, &fetchErr):
		return c.Status(http.StatusBadGateway).JSON(ErrorResponse{
			Error:   "upstream_error",
			Message: fetchErr.Message,
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}
