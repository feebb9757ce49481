package tools

import (
	"encoding/json"
	"io"
	"strings"
	"sync"

	"netcores-mcp/internal/logger"
)

// DefaultToolsLogPath is the default tool invocation log.
const DefaultToolsLogPath = "logs/netcores-tools.log"

var (
	toolsLog           = logger.Named("tools")
	toolsLogConfigured bool
	toolsLogMu         sync.Mutex
	toolsLogCloser     io.Closer
)

// SetupToolsLog routes tool invocation logging to its own file. Only the
// first call takes effect.
func SetupToolsLog(logPath string) (io.Closer, string, error) {
	toolsLogMu.Lock()
	defer toolsLogMu.Unlock()

	if toolsLogConfigured {
		return toolsLogCloser, logPath, nil
	}
	if logPath == "" {
		logPath = DefaultToolsLogPath
	}

	entry, closer, resolved, err := logger.SetupComponentFile("tools", logPath)
	toolsLogConfigured = true
	if err != nil {
		return nil, resolved, err
	}
	if entry != nil {
		toolsLog = entry
	}
	toolsLogCloser = closer
	return closer, resolved, nil
}

func logToolRequest(id, name string, recognized bool, args map[string]any) {
	status := "received"
	if !recognized {
		status = "unknown"
	}
	toolsLog.Infof("tool_call id=%s name=%s status=%s args=%s", id, name, status, sanitizeArgs(args))
}

func logToolOutcome(id, name string, ok bool, text string) {
	status := "completed"
	if !ok {
		status = "error"
	}
	toolsLog.Infof("tool_result id=%s name=%s status=%s len=%d", id, name, status, len(text))
}

func sanitizeArgs(args map[string]any) string {
	if len(args) == 0 {
		return "(empty)"
	}
	raw, err := json.Marshal(args)
	if err != nil {
		return "(unencodable)"
	}
	text := strings.ReplaceAll(string(raw), "\n", `\n`)
	return text
}
