package statsapi

import (
	"time"

	"node-metrics-dashboard/internal/nodes/core/domain"
)

type statsResponse struct {
	Admin bool      `json:"admin"`
	Nodes []nodeDTO `json:"nodes"`
}

type nodeDTO struct {
	ID               string  `json:"id"`
	State            string  `json:"state"`
	Level            int     `json:"level"`
	Version          string  `json:"version"`
	Sunrise          bool    `json:"sunrise"`
	Core             bool    `json:"core"`
	IPAddress        string  `json:"ipAddress"`
	OperatorEmail    string  `json:"operatorEmail"`
	FilWalletAddress string  `json:"filWalletAddress"`
	LastRegistration *string `json:"lastRegistration"`

	Geoloc struct {
		City        string `json:"city"`
		Country     string `json:"country"`
		CountryCode string `json:"countryCode"`
		Region      string `json:"region"`
		Org         string `json:"org"`
		ASN         *struct {
			Name string `json:"name"`
		} `json:"asn"`
	} `json:"geoloc"`

	Speedtest *struct {
		ISP string `json:"isp"`
	} `json:"speedtest"`

	TTFBStats struct {
		P95_1h        *float64 `json:"p95_1h"`
		P95_24h       *float64 `json:"p95_24h"`
		ReqsServed1h  *int64   `json:"reqs_served_1h"`
		Hits1h        int64    `json:"hits_1h"`
		Errors1h      int64    `json:"errors_1h"`
		ReqsServed12h *int64   `json:"reqs_served_12h"`
		Hits12h       int64    `json:"hits_12h"`
		Errors12h     int64    `json:"errors_12h"`
	} `json:"ttfbStats"`

	MemoryStats struct {
		TotalMemoryKB     int64 `json:"totalMemoryKB"`
		AvailableMemoryKB int64 `json:"availableMemoryKB"`
	} `json:"memoryStats"`

	CPUStats struct {
		NumCPUs  int       `json:"numCPUs"`
		LoadAvgs []float64 `json:"loadAvgs"`
	} `json:"cpuStats"`

	DiskStats struct {
		TotalDisk     float64 `json:"totalDisk"`
		UsedDisk      float64 `json:"usedDisk"`
		AvailableDisk float64 `json:"availableDisk"`
	} `json:"diskStats"`

	NICStats struct {
		BytesSent     int64 `json:"bytesSent"`
		BytesReceived int64 `json:"bytesReceived"`
	} `json:"nicStats"`

	HealthCheckFailures []struct {
		Reason    string    `json:"reason"`
		CreatedAt time.Time `json:"createdAt"`
	} `json:"HealthCheckFailures"`
}

func (r statsResponse) toDomain() *domain.Stats {
	s := &domain.Stats{Admin: r.Admin, Nodes: make([]domain.Node, 0, len(r.Nodes))}
	for _, d := range r.Nodes {
		s.Nodes = append(s.Nodes, d.toDomain())
	}
	return s
}

func (d nodeDTO) toDomain() domain.Node {
	n := domain.Node{
		ID:               d.ID,
		State:            d.State,
		Level:            d.Level,
		Version:          d.Version,
		Sunrise:          d.Sunrise,
		Core:             d.Core,
		IPAddress:        d.IPAddress,
		OperatorEmail:    d.OperatorEmail,
		FilWalletAddress: d.FilWalletAddress,
		Geoloc: domain.Geoloc{
			City:        d.Geoloc.City,
			Country:     d.Geoloc.Country,
			CountryCode: d.Geoloc.CountryCode,
			Region:      d.Geoloc.Region,
			Org:         d.Geoloc.Org,
		},
		TTFB: domain.TTFBStats{
			P95_1h:        d.TTFBStats.P95_1h,
			P95_24h:       d.TTFBStats.P95_24h,
			ReqsServed1h:  d.TTFBStats.ReqsServed1h,
			Hits1h:        d.TTFBStats.Hits1h,
			Errors1h:      d.TTFBStats.Errors1h,
			ReqsServed12h: d.TTFBStats.ReqsServed12h,
			Hits12h:       d.TTFBStats.Hits12h,
			Errors12h:     d.TTFBStats.Errors12h,
		},
		Memory: domain.MemoryStats{
			TotalKB:     d.MemoryStats.TotalMemoryKB,
			AvailableKB: d.MemoryStats.AvailableMemoryKB,
		},
		CPU: domain.CPUStats{NumCPUs: d.CPUStats.NumCPUs, LoadAvgs: d.CPUStats.LoadAvgs},
		Disk: domain.DiskStats{
			TotalGB:     d.DiskStats.TotalDisk,
			UsedGB:      d.DiskStats.UsedDisk,
			AvailableGB: d.DiskStats.AvailableDisk,
		},
		NIC: domain.NICStats{BytesSent: d.NICStats.BytesSent, BytesReceived: d.NICStats.BytesReceived},
	}

	if d.Geoloc.ASN != nil {
		n.Geoloc.ASNName = d.Geoloc.ASN.Name
	}
	if d.Speedtest != nil {
		n.SpeedtestISP = d.Speedtest.ISP
	}
	if d.LastRegistration != nil {
		if t, err := time.Parse(time.RFC3339, *d.LastRegistration); err == nil {
			n.LastRegistration = t.UTC()
		}
	}
	for _, f := range d.HealthCheckFailures {
		n.HealthFailures = append(n.HealthFailures, domain.HealthCheckFailure{Reason: f.Reason, CreatedAt: f.CreatedAt})
	}
	return n
}
