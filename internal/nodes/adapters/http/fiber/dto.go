package fiber

import (
	"node-metrics-dashboard/internal/nodes/core/domain"
)

type ColumnResponse struct {
	Key      string `json:"key" example:"state"`
	Header   string `json:"header" example:"State"`
	Kind     string `json:"kind" example:"status"`
	Sortable bool   `json:"sortable"`
}

type CellResponse struct {
	Text string `json:"text"`
	Href string `json:"href,omitempty"`
}

type HealthFailureResponse struct {
	Reason    string `json:"reason"`
	CreatedAt int64  `json:"createdAt"`
}

type RowResponse struct {
	ID             string                  `json:"id"`
	Cells          []CellResponse          `json:"cells"`
	HealthFailures []HealthFailureResponse `json:"healthCheckFailures"`
}

type GridResponse struct {
	Admin   bool             `json:"admin"`
	Columns []ColumnResponse `json:"columns"`
	Rows    []RowResponse    `json:"rows"`
}

type LoginRequest struct {
	Username string `json:"username" example:"admin"`
	Password string `json:"password" example:"secret"`
}

type LoginResponse struct {
	Token string `json:"token" example:"Basic YWRtaW46c2VjcmV0"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_credentials"`
	Message string `json:"message" example:"authentication failed, invalid username or password"`
}

func toGridResponse(g *domain.Grid) GridResponse {
	resp := GridResponse{
		Admin:   g.Admin,
		Columns: make([]ColumnResponse, 0, len(g.Columns)),
		Rows:    make([]RowResponse, 0, len(g.Rows)),
	}
	for _, c := range g.Columns {
		resp.Columns = append(resp.Columns, ColumnResponse{
			Key:      c.Key,
			Header:   c.Header,
			Kind:     string(c.Kind),
			Sortable: c.Sortable,
		})
	}
	for _, r := range g.Rows {
		row := RowResponse{
			ID:             r.ID,
			Cells:          make([]CellResponse, 0, len(r.Cells)),
			HealthFailures: make([]HealthFailureResponse, 0, len(r.HealthFailures)),
		}
		for _, c := range r.Cells {
			row.Cells = append(row.Cells, CellResponse{Text: c.Text, Href: c.Href})
		}
		for _, f := range r.HealthFailures {
			row.HealthFailures = append(row.HealthFailures, HealthFailureResponse{
				Reason:    f.Reason,
				CreatedAt: f.CreatedAt.UnixMilli(),
			})
		}
		resp.Rows = append(resp.Rows, row)
	}
	return resp
}
