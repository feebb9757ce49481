package main

import (
	"fmt"
	"os"

	"netcores-mcp/internal/logger"
	"netcores-mcp/internal/tools"
)

const (
	appName    = "netcores-mcp"
	appVersion = "0.3.0"
)

func main() {
	logger.Configure()
	if logFile, _, err := logger.SetupFile(logger.DefaultLogPath); err != nil {
		log.Warnf("failed to initialize log file: %v", err)
	} else {
		defer logFile.Close()
	}
	if toolsCloser, _, err := tools.SetupToolsLog(tools.DefaultToolsLogPath); err != nil {
		log.Warnf("failed to initialize tools log (%s): %v", tools.DefaultToolsLogPath, err)
	} else if toolsCloser != nil {
		defer toolsCloser.Close()
	}

	root, rest, err := parseRootArgs(os.Args[1:])
	if err != nil {
		log.Fatalf("parse args: %v", err)
	}
	if len(rest) > 0 {
		switch rest[0] {
		case "serve":
			serveMain(root, rest[1:])
			return
		case "ping":
			pingMain(root, rest[1:])
			return
		case "tools":
			toolsMain(rest[1:])
			return
		case "setup":
			setupMain(rest[1:])
			return
		case "config":
			configMain(root, rest[1:])
			return
		case "version":
			fmt.Println(appName + " " + appVersion)
			return
		}
		log.Fatalf("unknown command %q (expected serve, ping, tools, setup, or config)", rest[0])
	}

	// Desktop clients launch the binary with no arguments.
	serveMain(root, nil)
}
