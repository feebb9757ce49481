package tools

import (
	"fmt"

	"github.com/spf13/cast"
)

// normalizeArgs evaluates a definition's declarative schema against the raw
// argument object: unknown fields are rejected, values coerced to their
// declared types, bounds and enums enforced, and defaults applied for omitted
// optional arguments. Handlers only ever see the normalized map.
func normalizeArgs(def ToolDefinition, raw map[string]any) (map[string]any, error) {
	known := make(map[string]ArgSpec, len(def.Args))
	for _, spec := range def.Args {
		known[spec.Name] = spec
	}
	for name := range raw {
		if _, ok := known[name]; !ok {
			return nil, fmt.Errorf("unknown argument %q for tool %s", name, def.Name)
		}
	}

	out := make(map[string]any, len(def.Args))
	for _, spec := range def.Args {
		val, present := raw[spec.Name]
		if !present || val == nil {
			if spec.Required {
				return nil, fmt.Errorf("missing required argument %q", spec.Name)
			}
			if spec.Default != nil {
				out[spec.Name] = spec.Default
			}
			continue
		}
		normalized, err := normalizeValue(spec, val)
		if err != nil {
			return nil, err
		}
		out[spec.Name] = normalized
	}
	return out, nil
}

func normalizeValue(spec ArgSpec, val any) (any, error) {
	switch spec.Type {
	case ArgInt:
		n, err := cast.ToIntE(val)
		if err != nil {
			return nil, fmt.Errorf("argument %q must be an integer", spec.Name)
		}
		if err := checkInt(spec, n); err != nil {
			return nil, err
		}
		return n, nil
	case ArgString:
		s, err := cast.ToStringE(val)
		if err != nil {
			return nil, fmt.Errorf("argument %q must be a string", spec.Name)
		}
		if len(spec.Enum) > 0 && !containsString(spec.Enum, s) {
			return nil, fmt.Errorf("argument %q must be one of %v", spec.Name, spec.Enum)
		}
		return s, nil
	case ArgIntList:
		items, err := cast.ToSliceE(val)
		if err != nil {
			return nil, fmt.Errorf("argument %q must be an array of integers", spec.Name)
		}
		list := make([]int, 0, len(items))
		for _, item := range items {
			n, err := cast.ToIntE(item)
			if err != nil {
				return nil, fmt.Errorf("argument %q must contain only integers", spec.Name)
			}
			if err := checkInt(spec, n); err != nil {
				return nil, err
			}
			list = append(list, n)
		}
		if spec.MinItems > 0 && len(list) < spec.MinItems {
			return nil, fmt.Errorf("argument %q needs at least %d items", spec.Name, spec.MinItems)
		}
		if spec.MaxItems > 0 && len(list) > spec.MaxItems {
			return nil, fmt.Errorf("argument %q allows at most %d items", spec.Name, spec.MaxItems)
		}
		return list, nil
	default:
		return nil, fmt.Errorf("argument %q has unsupported type %q", spec.Name, spec.Type)
	}
}

func checkInt(spec ArgSpec, n int) error {
	if len(spec.EnumInts) > 0 && !containsInt(spec.EnumInts, n) {
		return fmt.Errorf("argument %q must be one of %v", spec.Name, spec.EnumInts)
	}
	if spec.Min != nil && float64(n) < *spec.Min {
		return fmt.Errorf("argument %q must be >= %g", spec.Name, *spec.Min)
	}
	if spec.Max != nil && float64(n) > *spec.Max {
		return fmt.Errorf("argument %q must be <= %g", spec.Name, *spec.Max)
	}
	return nil
}

func containsString(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}

func containsInt(values []int, want int) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}

// Typed accessors for normalized arguments. Safe only after normalizeArgs.

func intArg(args map[string]any, name string) int {
	return cast.ToInt(args[name])
}

func stringArg(args map[string]any, name string) string {
	return cast.ToString(args[name])
}

func intListArg(args map[string]any, name string) []int {
	if list, ok := args[name].([]int); ok {
		return list
	}
	return nil
}
