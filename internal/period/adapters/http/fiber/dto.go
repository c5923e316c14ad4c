package fiber

type TokenResponse struct {
	Label string `json:"label" example:"Past 7 days"`
	Query string `json:"query" example:"7d"`
	Days  int    `json:"days" example:"7"`
}

type EarningsPeriodResponse struct {
	Label string `json:"label" example:"March 2024"`
	Month int64  `json:"month"` // epoch ms
}

type CatalogResponse struct {
	Default    string                   `json:"default" example:"7d"`
	Tokens     []TokenResponse          `json:"tokens"`
	Earnings   []EarningsPeriodResponse `json:"earnings"`
	PayoutDate int64                    `json:"payoutDate"`
}

type DateRangeResponse struct {
	StartDate int64 `json:"startDate"`
	EndDate   int64 `json:"endDate"`
}

type AxisResponse struct {
	Unit string `json:"unit" example:"day"`
	Min  int64  `json:"min"`
	Max  int64  `json:"max"`
}

type ChartResponse struct {
	Step     string       `json:"step" example:"hour"`
	XScale   AxisResponse `json:"xScale"`
	SpanGaps int64        `json:"spanGaps" example:"3600000"`
}

type ResolveResponse struct {
	Period    string            `json:"period" example:"7d"`
	Kind      string            `json:"kind" example:"past_n_units"`
	DateRange DateRangeResponse `json:"dateRange"`
	Chart     ChartResponse     `json:"chart"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_range"`
	Message string `json:"message" example:"invalid date range"`
}
