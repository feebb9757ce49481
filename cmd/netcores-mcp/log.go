package main

import "netcores-mcp/internal/logger"

var log = logger.Named("cli")
