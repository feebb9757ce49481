package tools

import (
	"context"

	"netcores-mcp/internal/client"
)

// ArgType enumerates the primitive shapes a tool argument may declare.
type ArgType string

const (
	ArgInt     ArgType = "integer"
	ArgString  ArgType = "string"
	ArgIntList ArgType = "integer_list"
)

// ArgSpec is declarative data describing one parameter; the dispatcher is the
// only place that evaluates it.
type ArgSpec struct {
	Name        string
	Type        ArgType
	Description string
	Required    bool
	Default     any      // applied when an optional argument is omitted
	Enum        []string // allowed values for string arguments
	EnumInts    []int    // allowed values for integer arguments and list elements
	Min         *float64
	Max         *float64
	MinItems    int // 0 means unbounded
	MaxItems    int // 0 means unbounded
}

// ToolDefinition is immutable after registration.
type ToolDefinition struct {
	Name        string
	Description string
	Args        []ArgSpec
	Handler     HandlerFunc
}

// HandlerFunc receives schema-normalized arguments and returns the text block
// for the caller. Errors are normalized by the dispatcher, never surfaced raw.
type HandlerFunc func(ctx context.Context, inv Invocation) (string, error)

// Invocation carries everything a handler needs for one call.
type Invocation struct {
	ID   string
	Args map[string]any
}

// Service is the remote-API surface handlers depend on; *client.Client
// satisfies it, tests substitute recording fakes.
type Service interface {
	Health(ctx context.Context) (*client.HealthStatus, error)
	Summary(ctx context.Context, ipVersion int) (*client.Summary, error)
	ASNTrend(ctx context.Context, asn, ipVersion int, startDate, endDate string) (*client.TrendSeries, error)
	CompareASNs(ctx context.Context, asns []int, ipVersion int, startDate, endDate string) (*client.CompareResult, error)
	Snapshots(ctx context.Context, ipVersion int) (*client.SnapshotList, error)
	Refresh(ctx context.Context, ipVersions []int) (*client.RefreshResult, error)
	SchedulerStatus(ctx context.Context) (*client.SchedulerStatus, error)
	TriggerUpdate(ctx context.Context) (*client.UpdateResult, error)
}

var _ Service = (*client.Client)(nil)

func floatPtr(v float64) *float64 {
	return &v
}
