package fiber

import (
	"errors"
	"net/http"

	"node-metrics-dashboard/internal/period/core/domain"
	"node-metrics-dashboard/internal/period/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type PeriodUseCase interface {
	Catalog() usecase.Catalog
	Resolve(period string) (*usecase.Resolved, error)
}

type PeriodHandler struct {
	uc PeriodUseCase
}

func NewPeriodHandler(uc PeriodUseCase) *PeriodHandler {
	return &PeriodHandler{uc: uc}
}

// ListPeriods godoc
// @Summary List selectable periods
// @Description Returns past-N-days tokens, earnings months (newest first) and this month's payout date
// @Tags Periods
// @Produce json
// @Success 200 {object} CatalogResponse
// @Router /periods [get]
func (h *PeriodHandler) ListPeriods(c *fiber.Ctx) error {
	cat := h.uc.Catalog()

	resp := CatalogResponse{
		Default:    cat.Default.Query,
		Tokens:     make([]TokenResponse, 0, len(cat.Tokens)),
		Earnings:   make([]EarningsPeriodResponse, 0, len(cat.Earnings)),
		PayoutDate: cat.PayoutDate.UnixMilli(),
	}
	for _, t := range cat.Tokens {
		resp.Tokens = append(resp.Tokens, TokenResponse{Label: t.Label, Query: t.Query, Days: t.Days})
	}
	for _, e := range cat.Earnings {
		resp.Earnings = append(resp.Earnings, EarningsPeriodResponse{Label: e.Label, Month: e.Month.UnixMilli()})
	}

	return c.Status(http.StatusOK).JSON(resp)
}

// ResolvePeriod godoc
// @Summary Resolve a period selector
// @Description Turns a token, earnings month or "YYYY-MM-DD YYYY-MM-DD" range into a date range and chart axis
// @Tags Periods
// @Produce json
// @Param period query string false "Period token, month label or literal range"
// @Success 200 {object} ResolveResponse
// @Failure 400 {object} ErrorResponse
// @Router /periods/resolve [get]
func (h *PeriodHandler) ResolvePeriod(c *fiber.Ctx) error {
	r, err := h.uc.Resolve(c.Query("period", ""))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRange) {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_range",
				Message: err.Error(),
			})
		}
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}

	return c.Status(http.StatusOK).JSON(ToResolveResponse(r.Canonical, r.Resolution, r.Chart))
}

// ToResolveResponse is shared with the dashboard handler so both render
// ranges and axes the same way.
func ToResolveResponse(canonical string, res domain.Resolution, chart domain.ChartProps) ResolveResponse {
	return ResolveResponse{
		Period: canonical,
		Kind:   string(res.Kind),
		DateRange: DateRangeResponse{
			StartDate: res.Range.Start.UnixMilli(),
			EndDate:   res.Range.End.UnixMilli(),
		},
		Chart: ChartResponse{
			Step: string(chart.Step),
			XScale: AxisResponse{
				Unit: string(chart.Axis.Unit),
				Min:  chart.Axis.Min.UnixMilli(),
				Max:  chart.Axis.Max.UnixMilli(),
			},
			SpanGaps: chart.SpanGap.Milliseconds(),
		},
	}
}
