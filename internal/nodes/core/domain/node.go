package domain

import (
	"slices"
	"strings"
	"time"
)

const unknownISP = "Unknown ISP"

type Geoloc struct {
	City        string
	Country     string
	CountryCode string
	Region      string
	Org         string
	ASNName     string
}

// TTFBStats counters are pointers because the stats service omits them for
// nodes that have not reported yet; absent is not the same as zero.
type TTFBStats struct {
	P95_1h        *float64
	P95_24h       *float64
	ReqsServed1h  *int64
	Hits1h        int64
	Errors1h      int64
	ReqsServed12h *int64
	Hits12h       int64
	Errors12h     int64
}

type MemoryStats struct {
	TotalKB     int64
	AvailableKB int64
}

type CPUStats struct {
	NumCPUs  int
	LoadAvgs []float64
}

// DiskStats values are in GB as reported by the node.
type DiskStats struct {
	TotalGB     float64
	UsedGB      float64
	AvailableGB float64
}

type NICStats struct {
	BytesSent     int64
	BytesReceived int64
}

type HealthCheckFailure struct {
	Reason    string
	CreatedAt time.Time
}

type Node struct {
	ID               string
	State            string // active / inactive / down / draining
	Level            int
	Version          string
	Sunrise          bool
	Core             bool
	IPAddress        string // admin only
	OperatorEmail    string // admin only
	FilWalletAddress string // admin only
	SpeedtestISP     string
	Geoloc           Geoloc
	TTFB             TTFBStats
	Memory           MemoryStats
	CPU              CPUStats
	Disk             DiskStats
	NIC              NICStats
	LastRegistration time.Time
	HealthFailures   []HealthCheckFailure

	// Derived by Enrich.
	IDShort      string
	VersionShort string
	ISPShort     string
	CacheRate1h  *float64
	ErrorRate1h  *float64
	CacheRate12h *float64
	ErrorRate12h *float64
	MemoryUsedKB int64
	CPUAvgLoad   float64
}

// Stats is one snapshot of the stats service. Admin is true when the
// service accepted the caller's authorization token.
type Stats struct {
	Admin bool
	Nodes []Node
}

// Enrich fills the derived fields of every node in place.
func (s *Stats) Enrich() {
	for i := range s.Nodes {
		s.Nodes[i].Enrich()
	}
}

func (n *Node) Enrich() {
	n.IDShort, _, _ = strings.Cut(n.ID, "-")
	n.VersionShort, _, _ = strings.Cut(n.Version, "_")
	n.ISPShort = shortISP(n.Geoloc.ASNName, n.SpeedtestISP)

	n.CacheRate1h, n.ErrorRate1h = rates(n.TTFB.ReqsServed1h, n.TTFB.Hits1h, n.TTFB.Errors1h)
	n.CacheRate12h, n.ErrorRate12h = rates(n.TTFB.ReqsServed12h, n.TTFB.Hits12h, n.TTFB.Errors12h)

	n.MemoryUsedKB = n.Memory.TotalKB - n.Memory.AvailableKB
	n.CPUAvgLoad = 0
	if len(n.CPU.LoadAvgs) > 1 {
		n.CPUAvgLoad = n.CPU.LoadAvgs[1]
	}

	if n.HealthFailures == nil {
		n.HealthFailures = []HealthCheckFailure{}
	}
	slices.SortStableFunc(n.HealthFailures, func(a, b HealthCheckFailure) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
}

func shortISP(asn, speedtest string) string {
	isp := asn
	if isp == "" {
		isp = speedtest
	}
	if isp == "" {
		isp = unknownISP
	}
	words := strings.Split(strings.ReplaceAll(isp, ", ", " "), " ")
	if len(words) > 2 {
		words = words[:2]
	}
	return strings.Join(words, " ")
}

// rates returns nil for both when reqs is unknown and zero for both when no
// request was served.
func rates(reqs *int64, hits, errs int64) (cache, errRate *float64) {
	if reqs == nil {
		return nil, nil
	}
	if *reqs == 0 {
		c, e := 0.0, 0.0
		return &c, &e
	}
	c := float64(hits) / float64(*reqs)
	e := float64(errs) / float64(*reqs)
	return &c, &e
}
