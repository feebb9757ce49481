package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	pingOKStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	pingFailStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	pingDimStyle  = lipgloss.NewStyle().Faint(true)
)

func pingMain(root rootArgs, args []string) {
	ok, err := runPing(root, args, os.Stdout)
	if err != nil {
		log.Fatalf("ping failed: %v", err)
	}
	if !ok {
		os.Exit(1)
	}
}

func runPing(root rootArgs, args []string, out io.Writer) (bool, error) {
	fs := flag.NewFlagSet("ping", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var cfgPath string
	var baseURLOverride string
	var timeoutSeconds int
	fs.StringVar(&cfgPath, "config", "", "Path to config file (default ~/.netcores/config.toml)")
	fs.StringVar(&baseURLOverride, "base-url", "", "Override the API base URL (e.g. http://127.0.0.1:8000)")
	fs.IntVar(&timeoutSeconds, "timeout", 0, "Timeout seconds (default from config)")
	if err := fs.Parse(args); err != nil {
		return false, err
	}

	cfg, err := loadConfig(root, cfgPath)
	if err != nil {
		return false, err
	}
	if url := strings.TrimSpace(baseURLOverride); url != "" {
		cfg.APIURL = url
	}
	if timeoutSeconds > 0 {
		cfg.TimeoutSecs = timeoutSeconds
	}

	api, err := buildAPIClient(cfg)
	if err != nil {
		return false, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.TimeoutSecs)*time.Second)
	defer cancel()

	probe := api.TestConnection(ctx)
	if !probe.OK {
		fmt.Fprintf(out, "%s %s\n", pingFailStyle.Render("unreachable:"), probe.Reason)
		fmt.Fprintln(out, pingDimStyle.Render("checked "+api.BaseURL()+"/api/health"))
		return false, nil
	}
	fmt.Fprintf(out, "%s %s (status %s, version %s)\n",
		pingOKStyle.Render("ok:"), api.BaseURL(), probe.Status, probe.Version)
	return true, nil
}
