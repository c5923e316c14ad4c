package domain

import (
	"cmp"
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

var (
	ErrUnknownColumn     = errors.New("unknown column")
	ErrColumnNotSortable = errors.New("column is not sortable")
)

// ColumnKind is a closed set; the client picks a renderer per kind.
type ColumnKind string

const (
	KindText    ColumnKind = "text"
	KindStatus  ColumnKind = "status"
	KindBytes   ColumnKind = "bytes"
	KindPercent ColumnKind = "percent"
	KindLink    ColumnKind = "link"
)

type Column struct {
	Key       string
	Header    string
	Kind      ColumnKind
	Sortable  bool
	AdminOnly bool

	get func(n *Node) value
}

// value is what a column extracts from a node. num drives sorting and the
// bytes/percent formatting; text is used otherwise.
type value struct {
	text string
	num  *float64
	href string
}

type Cell struct {
	Text string
	Href string
}

func num(f float64) *float64 { return &f }

var columns = []Column{
	{Key: "details", Header: "", Kind: KindLink, get: func(n *Node) value {
		return value{text: "details", href: "/dashboard?nodeId=" + url.QueryEscape(n.ID)}
	}},
	{Key: "state", Header: "State", Kind: KindStatus, Sortable: true, get: func(n *Node) value {
		return value{text: n.State}
	}},
	{Key: "id", Header: "ID", Kind: KindText, Sortable: true, get: func(n *Node) value {
		return value{text: n.IDShort}
	}},
	{Key: "type", Header: "Type", Kind: KindText, Sortable: true, get: func(n *Node) value {
		return value{text: fmt.Sprintf("L%d v%s", n.Level, n.VersionShort)}
	}},
	{Key: "ip", Header: "IP", Kind: KindText, AdminOnly: true, get: func(n *Node) value {
		return value{text: n.IPAddress}
	}},
	{Key: "isp", Header: "ISP", Kind: KindText, Sortable: true, get: func(n *Node) value {
		return value{text: n.ISPShort}
	}},
	{Key: "location", Header: "Location", Kind: KindText, Sortable: true, get: func(n *Node) value {
		g := n.Geoloc
		return value{text: fmt.Sprintf("%s, %s (%s)", g.City, g.Country, g.CountryCode)}
	}},
	{Key: "disk", Header: "Disk Usage", Kind: KindBytes, Sortable: true, get: func(n *Node) value {
		return value{num: num(n.Disk.UsedGB * humanize.GiByte)}
	}},
	{Key: "memory", Header: "Memory Usage", Kind: KindBytes, Sortable: true, get: func(n *Node) value {
		return value{num: num(float64(n.MemoryUsedKB) * humanize.KiByte)}
	}},
	{Key: "cpu", Header: "CPU", Kind: KindPercent, Sortable: true, get: func(n *Node) value {
		if n.CPU.NumCPUs == 0 {
			return value{}
		}
		return value{num: num(n.CPUAvgLoad / float64(n.CPU.NumCPUs))}
	}},
	{Key: "ttfb", Header: "TTFB p95 1h", Kind: KindText, Sortable: true, get: func(n *Node) value {
		if n.TTFB.P95_1h == nil {
			return value{text: "NA"}
		}
		return value{text: fmt.Sprintf("%.0f ms", *n.TTFB.P95_1h), num: n.TTFB.P95_1h}
	}},
	{Key: "cacheRate", Header: "Cache rate", Kind: KindPercent, Sortable: true, get: func(n *Node) value {
		return value{num: n.CacheRate1h}
	}},
	{Key: "errorRate", Header: "Error rate", Kind: KindPercent, Sortable: true, get: func(n *Node) value {
		return value{num: n.ErrorRate1h}
	}},
	{Key: "upload", Header: "Upload", Kind: KindBytes, Sortable: true, get: func(n *Node) value {
		return value{num: num(float64(n.NIC.BytesSent))}
	}},
	{Key: "download", Header: "Download", Kind: KindBytes, Sortable: true, get: func(n *Node) value {
		return value{num: num(float64(n.NIC.BytesReceived))}
	}},
	{Key: "lastRegistration", Header: "Last Registration", Kind: KindText, Sortable: true, get: func(n *Node) value {
		if n.LastRegistration.IsZero() {
			return value{}
		}
		return value{
			text: n.LastRegistration.UTC().Format(time.DateTime),
			num:  num(float64(n.LastRegistration.Unix())),
		}
	}},
	{Key: "operator", Header: "Operator", Kind: KindLink, Sortable: true, AdminOnly: true, get: func(n *Node) value {
		v := value{text: strings.TrimSpace(n.OperatorEmail + " " + n.FilWalletAddress)}
		if n.OperatorEmail != "" {
			v.href = "mailto:" + n.OperatorEmail
		}
		return v
	}},
}

// VisibleColumns drops admin-only columns unless admin is set.
func VisibleColumns(admin bool) []Column {
	out := make([]Column, 0, len(columns))
	for _, c := range columns {
		if c.AdminOnly && !admin {
			continue
		}
		out = append(out, c)
	}
	return out
}

func findColumn(cols []Column, key string) (Column, bool) {
	for _, c := range cols {
		if c.Key == key {
			return c, true
		}
	}
	return Column{}, false
}

// Format renders the cell of n under c.
func (c Column) Format(n *Node) Cell {
	v := c.get(n)
	switch c.Kind {
	case KindBytes:
		if v.num == nil {
			return Cell{Text: "n/a"}
		}
		return Cell{Text: humanize.IBytes(uint64(max(*v.num, 0)))}
	case KindPercent:
		if v.num == nil || *v.num <= 0 {
			return Cell{Text: "n/a"}
		}
		return Cell{Text: fmt.Sprintf("%.0f%%", *v.num*100)}
	default:
		return Cell{Text: v.text, Href: v.href}
	}
}

// SortNodes orders nodes by the column key among cols. Numeric columns compare
// numerically with missing values last; others compare case-insensitively.
func SortNodes(nodes []Node, cols []Column, key string, desc bool) error {
	col, ok := findColumn(cols, key)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownColumn, key)
	}
	if !col.Sortable {
		return fmt.Errorf("%w: %q", ErrColumnNotSortable, key)
	}

	slices.SortStableFunc(nodes, func(a, b Node) int {
		va, vb := col.get(&a), col.get(&b)
		if va.num != nil || vb.num != nil {
			switch {
			case va.num == nil:
				return 1
			case vb.num == nil:
				return -1
			}
			r := cmp.Compare(*va.num, *vb.num)
			if desc {
				r = -r
			}
			return r
		}
		r := cmp.Compare(strings.ToLower(va.text), strings.ToLower(vb.text))
		if desc {
			r = -r
		}
		return r
	})
	return nil
}

// FilterNodes keeps nodes where any visible cell contains q, ignoring case.
func FilterNodes(nodes []Node, cols []Column, q string) []Node {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return nodes
	}

	out := make([]Node, 0, len(nodes))
	for i := range nodes {
		for _, c := range cols {
			if strings.Contains(strings.ToLower(c.Format(&nodes[i]).Text), q) {
				out = append(out, nodes[i])
				break
			}
		}
	}
	return out
}

type Row struct {
	ID             string
	Cells          []Cell
	HealthFailures []HealthCheckFailure
}

type Grid struct {
	Admin   bool
	Columns []Column
	Rows    []Row
}

func BuildGrid(nodes []Node, cols []Column, admin bool) Grid {
	g := Grid{Admin: admin, Columns: cols, Rows: make([]Row, 0, len(nodes))}
	for i := range nodes {
		n := &nodes[i]
		r := Row{ID: n.ID, Cells: make([]Cell, 0, len(cols)), HealthFailures: n.HealthFailures}
		for _, c := range cols {
			r.Cells = append(r.Cells, c.Format(n))
		}
		g.Rows = append(g.Rows, r)
	}
	return g
}
