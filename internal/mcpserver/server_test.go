package mcpserver

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"netcores-mcp/internal/client"
	"netcores-mcp/internal/tools"
)

// stubService satisfies tools.Service without a network.
type stubService struct {
	healthErr error
}

func (s *stubService) Health(context.Context) (*client.HealthStatus, error) {
	if s.healthErr != nil {
		return nil, s.healthErr
	}
	return &client.HealthStatus{Status: "healthy", Version: "test"}, nil
}

func (s *stubService) Summary(_ context.Context, ipVersion int) (*client.Summary, error) {
	return &client.Summary{IPVersion: ipVersion}, nil
}

func (s *stubService) ASNTrend(_ context.Context, asn, ipVersion int, _, _ string) (*client.TrendSeries, error) {
	return &client.TrendSeries{ASN: asn, IPVersion: ipVersion}, nil
}

func (s *stubService) CompareASNs(_ context.Context, _ []int, _ int, _, _ string) (*client.CompareResult, error) {
	return &client.CompareResult{Results: map[string]client.TrendSeries{}}, nil
}

func (s *stubService) Snapshots(_ context.Context, ipVersion int) (*client.SnapshotList, error) {
	return &client.SnapshotList{IPVersion: ipVersion}, nil
}

func (s *stubService) Refresh(context.Context, []int) (*client.RefreshResult, error) {
	return &client.RefreshResult{Status: "accepted"}, nil
}

func (s *stubService) SchedulerStatus(context.Context) (*client.SchedulerStatus, error) {
	return &client.SchedulerStatus{Enabled: true}, nil
}

func (s *stubService) TriggerUpdate(context.Context) (*client.UpdateResult, error) {
	return &client.UpdateResult{Status: "started"}, nil
}

func newTestDispatcher(svc tools.Service) *tools.Dispatcher {
	return tools.NewDispatcher(tools.NewRegistry(tools.Catalog(svc)...))
}

func findDefinition(t *testing.T, name string) tools.ToolDefinition {
	t.Helper()
	for _, def := range tools.Catalog(&stubService{}) {
		if def.Name == name {
			return def
		}
	}
	t.Fatalf("tool %s missing from catalog", name)
	return tools.ToolDefinition{}
}

func TestToolSchema_AdvertisesArguments(t *testing.T) {
	tool := toolSchema(findDefinition(t, "netcores_asn_trend"))

	if tool.Name != "netcores_asn_trend" {
		t.Fatalf("tool name = %q", tool.Name)
	}
	if tool.Description == "" {
		t.Fatalf("tool description is empty")
	}

	found := false
	for _, name := range tool.InputSchema.Required {
		if name == "asn" {
			found = true
		}
	}
	if !found {
		t.Fatalf("asn not marked required: %v", tool.InputSchema.Required)
	}

	for _, name := range []string{"asn", "ip_version", "start_date", "end_date", "limit"} {
		if _, ok := tool.InputSchema.Properties[name]; !ok {
			t.Fatalf("property %q missing from schema: %v", name, tool.InputSchema.Properties)
		}
	}

	prop, ok := tool.InputSchema.Properties["asn"].(map[string]any)
	if !ok {
		t.Fatalf("asn property is %T", tool.InputSchema.Properties["asn"])
	}
	if prop["type"] != "number" {
		t.Fatalf("asn advertised as %v, want number", prop["type"])
	}
}

func TestToolSchema_ListArgumentsAreArrays(t *testing.T) {
	tool := toolSchema(findDefinition(t, "netcores_compare_asns"))

	prop, ok := tool.InputSchema.Properties["asns"].(map[string]any)
	if !ok {
		t.Fatalf("asns property is %T", tool.InputSchema.Properties["asns"])
	}
	if prop["type"] != "array" {
		t.Fatalf("asns advertised as %v, want array", prop["type"])
	}
}

func TestToolHandler_ReturnsSingleTextBlock(t *testing.T) {
	disp := newTestDispatcher(&stubService{})
	handler := toolHandler(disp, "netcores_health_check")

	req := mcp.CallToolRequest{}
	req.Params.Name = "netcores_health_check"
	req.Params.Arguments = map[string]any{}

	res, err := handler(context.Background(), req)
	if err != nil {
		t.Fatalf("handler returned protocol error: %v", err)
	}
	if len(res.Content) != 1 {
		t.Fatalf("expected one content block, got %d", len(res.Content))
	}
	text, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content block is %T, want TextContent", res.Content[0])
	}
	if !strings.Contains(text.Text, "netcores service health") {
		t.Fatalf("unexpected text: %q", text.Text)
	}
}

func TestToolHandler_FailuresStayInsideResultText(t *testing.T) {
	disp := newTestDispatcher(&stubService{
		healthErr: &client.ServerError{StatusCode: 503, Message: "warming up"},
	})
	handler := toolHandler(disp, "netcores_health_check")

	req := mcp.CallToolRequest{}
	req.Params.Name = "netcores_health_check"
	req.Params.Arguments = map[string]any{}

	res, err := handler(context.Background(), req)
	if err != nil {
		t.Fatalf("failures must not become protocol errors, got %v", err)
	}
	text, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content block is %T, want TextContent", res.Content[0])
	}
	if !strings.HasPrefix(text.Text, tools.ErrorPrefix) {
		t.Fatalf("expected marked failure text, got %q", text.Text)
	}
	if !strings.Contains(text.Text, "warming up") {
		t.Fatalf("expected remote message in failure text, got %q", text.Text)
	}
}
