package tools

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sahilm/fuzzy"
)

// ErrorPrefix marks every failure outcome so callers can grep for failures
// without parsing the message language.
const ErrorPrefix = "Error: "

// Dispatcher is the single entry point for tool execution. Every outcome,
// success or failure, is one text block; nothing escapes its boundary.
type Dispatcher struct {
	registry *Registry
}

func NewDispatcher(registry *Registry) *Dispatcher {
	return &Dispatcher{registry: registry}
}

func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// Execute looks the tool up, normalizes arguments against its schema, runs
// the handler, and converts any failure into marked failure text. Unknown
// tools fail fast without touching the network.
func (d *Dispatcher) Execute(ctx context.Context, name string, rawArgs map[string]any) string {
	id := uuid.NewString()
	def, ok := d.registry.Find(name)
	logToolRequest(id, name, ok, rawArgs)

	if !ok {
		msg := fmt.Sprintf("%sunknown tool %q", ErrorPrefix, name)
		if suggestion := d.suggest(name); suggestion != "" {
			msg += fmt.Sprintf(" (did you mean %q?)", suggestion)
		}
		logToolOutcome(id, name, false, msg)
		return msg
	}

	text, err := d.run(ctx, def, id, rawArgs)
	if err != nil {
		msg := ErrorPrefix + err.Error()
		logToolOutcome(id, name, false, msg)
		return msg
	}
	logToolOutcome(id, name, true, text)
	return text
}

func (d *Dispatcher) run(ctx context.Context, def ToolDefinition, id string, rawArgs map[string]any) (text string, err error) {
	// A handler bug must not take the server down mid-session.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("tool %s panicked: %v", def.Name, r)
		}
	}()

	args, err := normalizeArgs(def, rawArgs)
	if err != nil {
		return "", err
	}
	if def.Handler == nil {
		return "", fmt.Errorf("tool %s has no handler bound", def.Name)
	}
	return def.Handler(ctx, Invocation{ID: id, Args: args})
}

// suggest offers the closest catalog name for a typo'd tool.
func (d *Dispatcher) suggest(name string) string {
	matches := fuzzy.Find(name, d.registry.Names())
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Str
}
