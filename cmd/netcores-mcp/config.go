package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"netcores-mcp/internal/config"
)

func configMain(root rootArgs, args []string) {
	if err := runConfig(root, args, os.Stdout); err != nil {
		log.Fatalf("config failed: %v", err)
	}
}

// runConfig shows the effective configuration, or persists key=value pairs
// to the config file when invoked as `config set`.
func runConfig(root rootArgs, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var cfgPath string
	fs.StringVar(&cfgPath, "config", "", "Path to config file (default ~/.netcores/config.toml)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	rest := fs.Args()
	if len(rest) > 0 && rest[0] == "set" {
		return setConfig(root, cfgPath, rest[1:], out)
	}
	if len(rest) > 0 {
		return fmt.Errorf("unknown config action %q (expected set, or no action to show)", rest[0])
	}

	cfg, err := loadConfig(root, cfgPath)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "api_url        = %s\n", cfg.APIURL)
	fmt.Fprintf(out, "timeout_secs   = %d\n", cfg.TimeoutSecs)
	fmt.Fprintf(out, "max_attempts   = %d\n", cfg.MaxAttempts)
	fmt.Fprintf(out, "retry_delay_ms = %d\n", cfg.RetryDelayMS)
	fmt.Fprintf(out, "source: %s\n", cfg.Source)
	return nil
}

// setConfig loads the file, applies the overrides, and writes it back, the
// same read-modify-save flow every persisted setting goes through.
func setConfig(root rootArgs, cfgPath string, pairs []string, out io.Writer) error {
	if len(pairs) == 0 {
		return errors.New("config set needs key=value arguments (api_url, timeout_secs, max_attempts, retry_delay_ms)")
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	cfg = config.ApplyKVOverrides(cfg, prependOverrides(root.overrides, pairs))
	if err := config.Save(cfgPath, cfg); err != nil {
		return err
	}
	fmt.Fprintf(out, "wrote %s\n", cfg.Source)
	return nil
}
