package tools

// Registry holds the static tool catalog. It is read-only after construction
// and safe to share across concurrent invocations.
type Registry struct {
	defs  []ToolDefinition
	index map[string]int
}

func NewRegistry(defs ...ToolDefinition) *Registry {
	r := &Registry{index: make(map[string]int, len(defs))}
	for _, def := range defs {
		if def.Name == "" {
			continue
		}
		if _, dup := r.index[def.Name]; dup {
			continue
		}
		r.index[def.Name] = len(r.defs)
		r.defs = append(r.defs, def)
	}
	return r
}

// List returns the definitions in declaration order.
func (r *Registry) List() []ToolDefinition {
	out := make([]ToolDefinition, len(r.defs))
	copy(out, r.defs)
	return out
}

// Find is an exact, case-sensitive lookup.
func (r *Registry) Find(name string) (ToolDefinition, bool) {
	i, ok := r.index[name]
	if !ok {
		return ToolDefinition{}, false
	}
	return r.defs[i], true
}

// Names returns tool names in declaration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.defs))
	for i, def := range r.defs {
		names[i] = def.Name
	}
	return names
}
