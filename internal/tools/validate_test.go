package tools

import (
	"reflect"
	"testing"
)

func trendDef(t *testing.T) ToolDefinition {
	t.Helper()
	for _, def := range Catalog(&fakeService{}) {
		if def.Name == "netcores_asn_trend" {
			return def
		}
	}
	t.Fatalf("trend tool missing from catalog")
	return ToolDefinition{}
}

func TestNormalizeArgs_ExplicitValueBeatsDefault(t *testing.T) {
	args, err := normalizeArgs(trendDef(t), map[string]any{
		"asn":        float64(3356),
		"ip_version": float64(6),
		"limit":      float64(0),
	})
	if err != nil {
		t.Fatalf("normalizeArgs: %v", err)
	}
	if got := intArg(args, "ip_version"); got != 6 {
		t.Fatalf("ip_version = %d, want explicit 6", got)
	}
	if got := intArg(args, "limit"); got != 0 {
		t.Fatalf("limit = %d, want explicit 0, not the default", got)
	}
}

func TestNormalizeArgs_NullTreatedAsOmitted(t *testing.T) {
	args, err := normalizeArgs(trendDef(t), map[string]any{
		"asn":   float64(3356),
		"limit": nil,
	})
	if err != nil {
		t.Fatalf("normalizeArgs: %v", err)
	}
	if got := intArg(args, "limit"); got != 20 {
		t.Fatalf("limit = %d, want default 20 for explicit null", got)
	}
}

func TestNormalizeArgs_OptionalStringStaysAbsent(t *testing.T) {
	args, err := normalizeArgs(trendDef(t), map[string]any{"asn": float64(1)})
	if err != nil {
		t.Fatalf("normalizeArgs: %v", err)
	}
	if _, present := args["start_date"]; present {
		t.Fatalf("start_date without a default must stay absent, got %v", args["start_date"])
	}
	if got := stringArg(args, "start_date"); got != "" {
		t.Fatalf("stringArg on absent key = %q", got)
	}
}

func TestNormalizeValue_CoercesMixedIntegerList(t *testing.T) {
	spec := ArgSpec{Name: "asns", Type: ArgIntList, MinItems: 2, MaxItems: 10, Min: floatPtr(1)}

	got, err := normalizeValue(spec, []any{float64(15169), "3356", 1299})
	if err != nil {
		t.Fatalf("normalizeValue: %v", err)
	}
	if want := []int{15169, 3356, 1299}; !reflect.DeepEqual(got, want) {
		t.Fatalf("normalizeValue = %v, want %v", got, want)
	}

	if _, err := normalizeValue(spec, []any{float64(1), "not-a-number"}); err == nil {
		t.Fatalf("expected failure for non-integer item")
	}
}

func TestNormalizeValue_RejectsFractionalNumbers(t *testing.T) {
	spec := ArgSpec{Name: "asn", Type: ArgInt, Min: floatPtr(1)}
	if _, err := normalizeValue(spec, "12.5"); err == nil {
		t.Fatalf("expected failure for fractional string")
	}
}

func TestIntListArg_ReturnsNilForMissingKey(t *testing.T) {
	if got := intListArg(map[string]any{}, "asns"); got != nil {
		t.Fatalf("intListArg on missing key = %v", got)
	}
}
