// Package mcpserver exposes the tool catalog over the Model Context
// Protocol. Argument validation and failure normalization live in the
// dispatcher; this layer only translates schemas and shuttles text.
package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"netcores-mcp/internal/logger"
	"netcores-mcp/internal/tools"
)

var log = logger.Named("mcp")

// New builds a stdio-ready MCP server with every catalog tool registered.
func New(disp *tools.Dispatcher, name, version string) *server.MCPServer {
	srv := server.NewMCPServer(name, version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	for _, def := range disp.Registry().List() {
		srv.AddTool(toolSchema(def), toolHandler(disp, def.Name))
		log.Infof("registered tool %s", def.Name)
	}
	return srv
}

// Run serves the protocol over stdin/stdout until the client disconnects.
// All logging must go to stderr or files while this runs.
func Run(srv *server.MCPServer) error {
	return server.ServeStdio(srv)
}

// toolHandler routes a call through the dispatcher. Failures come back as
// marked text inside a normal result, never as protocol-level errors, so
// the conversational client always sees one text block per call.
func toolHandler(disp *tools.Dispatcher, name string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text := disp.Execute(ctx, name, req.GetArguments())
		return mcp.NewToolResultText(text), nil
	}
}

func toolSchema(def tools.ToolDefinition) mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(def.Description)}
	for _, arg := range def.Args {
		opts = append(opts, propertyOption(arg))
	}
	return mcp.NewTool(def.Name, opts...)
}

// propertyOption advertises one argument in the tool's input schema. Enum
// and item-count constraints on integer arguments are enforced by the
// dispatcher and described in prose, so clients see them either way.
func propertyOption(arg tools.ArgSpec) mcp.ToolOption {
	props := []mcp.PropertyOption{mcp.Description(arg.Description)}
	if arg.Required {
		props = append(props, mcp.Required())
	}
	switch arg.Type {
	case tools.ArgInt:
		if def, ok := arg.Default.(int); ok {
			props = append(props, mcp.DefaultNumber(float64(def)))
		}
		if arg.Min != nil {
			props = append(props, mcp.Min(*arg.Min))
		}
		if arg.Max != nil {
			props = append(props, mcp.Max(*arg.Max))
		}
		return mcp.WithNumber(arg.Name, props...)
	case tools.ArgIntList:
		props = append(props, mcp.Items(map[string]any{"type": "number"}))
		return mcp.WithArray(arg.Name, props...)
	default:
		if len(arg.Enum) > 0 {
			props = append(props, mcp.Enum(arg.Enum...))
		}
		if def, ok := arg.Default.(string); ok {
			props = append(props, mcp.DefaultString(def))
		}
		return mcp.WithString(arg.Name, props...)
	}
}
