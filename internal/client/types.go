package client

// Payload shapes returned by the netcores analysis API. Fields the service
// may omit keep their zero value; formatting decides how to present those.

type DataStatus struct {
	SnapshotCount int    `json:"snapshot_count"`
	LatestDate    string `json:"latest_date"`
}

type HealthStatus struct {
	Status  string                `json:"status"`
	Version string                `json:"version"`
	Data    map[string]DataStatus `json:"data"`
}

type Summary struct {
	IPVersion     int     `json:"ip_version"`
	SnapshotCount int     `json:"snapshot_count"`
	FirstDate     string  `json:"first_date"`
	LatestDate    string  `json:"latest_date"`
	ASNCount      int     `json:"asn_count"`
	MaxCoreness   int     `json:"max_coreness"`
	AvgCoreness   float64 `json:"avg_coreness"`
}

type TrendPoint struct {
	Date     string `json:"date"`
	Coreness int    `json:"coreness"`
	Rank     int    `json:"rank"`
	Degree   int    `json:"degree"`
}

type TrendSeries struct {
	ASN       int          `json:"asn"`
	Name      string       `json:"as_name"`
	IPVersion int          `json:"ip_version"`
	Points    []TrendPoint `json:"data_points"`
}

// CompareResult is keyed by decimal ASN; callers must not rely on map order.
type CompareResult struct {
	IPVersion int                    `json:"ip_version"`
	Results   map[string]TrendSeries `json:"results"`
}

type Snapshot struct {
	Date        string `json:"date"`
	ASNCount    int    `json:"asn_count"`
	EdgeCount   int    `json:"edge_count"`
	MaxCoreness int    `json:"max_coreness"`
}

type SnapshotList struct {
	IPVersion int        `json:"ip_version"`
	Snapshots []Snapshot `json:"snapshots"`
}

type RefreshResult struct {
	Status     string `json:"status"`
	Message    string `json:"message"`
	IPVersions []int  `json:"ip_versions"`
}

type SchedulerStatus struct {
	Enabled       bool   `json:"enabled"`
	IntervalHours int    `json:"interval_hours"`
	NextRun       string `json:"next_run"`
	LastRun       string `json:"last_run"`
	LastResult    string `json:"last_result"`
}

type UpdateResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ProbeResult is TestConnection's answer; it never carries a Go error.
type ProbeResult struct {
	OK      bool
	Status  string
	Version string
	Reason  string
}
