package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"
)

var setupBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(0, 1)

func setupMain(args []string) {
	if err := runSetup(args, os.Stdout); err != nil {
		log.Fatalf("setup failed: %v", err)
	}
}

// runSetup registers this binary with Claude Desktop by merging an
// mcpServers entry into its config file. -print and -copy hand the snippet
// to the user instead, for clients with other config locations.
func runSetup(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("setup", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var printOnly bool
	var copySnippet bool
	var targetPath string
	fs.BoolVar(&printOnly, "print", false, "Print the client config snippet instead of writing it")
	fs.BoolVar(&copySnippet, "copy", false, "Copy the snippet to the clipboard instead of writing it")
	fs.StringVar(&targetPath, "target", "", "Claude Desktop config path (default depends on OS)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	binPath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("locate binary: %w", err)
	}
	snippet, err := serverSnippet(binPath)
	if err != nil {
		return err
	}

	if printOnly {
		fmt.Fprintln(out, string(snippet))
		return nil
	}
	if copySnippet {
		if err := clipboard.WriteAll(string(snippet)); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		fmt.Fprintln(out, "Config snippet copied to clipboard. Paste it into your MCP client's config.")
		return nil
	}

	if targetPath == "" {
		targetPath, err = claudeDesktopConfigPath()
		if err != nil {
			return err
		}
	}

	existing, err := os.ReadFile(targetPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	merged, err := mergeServerEntry(existing, binPath)
	if err != nil {
		return fmt.Errorf("merge %s: %w", targetPath, err)
	}
	if err := os.MkdirAll(filepath.Dir(targetPath), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(targetPath, merged, 0o600); err != nil {
		return err
	}

	fmt.Fprintln(out, setupBoxStyle.Render(
		"Registered netcores with Claude Desktop\n"+
			"Config: "+targetPath+"\n"+
			"Restart Claude Desktop to pick up the new tools."))
	return nil
}

// serverSnippet is the standalone JSON a user would paste into any MCP
// client config.
func serverSnippet(binPath string) ([]byte, error) {
	doc := map[string]any{
		"mcpServers": map[string]any{
			"netcores": serverEntry(binPath),
		},
	}
	return json.MarshalIndent(doc, "", "  ")
}

func serverEntry(binPath string) map[string]any {
	return map[string]any{
		"command": binPath,
		"args":    []string{"serve"},
	}
}

// mergeServerEntry rewrites the netcores entry inside an existing Claude
// Desktop config without touching other registered servers.
func mergeServerEntry(existing []byte, binPath string) ([]byte, error) {
	doc := map[string]any{}
	if len(existing) > 0 {
		if err := json.Unmarshal(existing, &doc); err != nil {
			return nil, fmt.Errorf("existing config is not valid JSON: %w", err)
		}
	}
	servers, ok := doc["mcpServers"].(map[string]any)
	if !ok {
		servers = map[string]any{}
	}
	servers["netcores"] = serverEntry(binPath)
	doc["mcpServers"] = servers
	return json.MarshalIndent(doc, "", "  ")
}

func claudeDesktopConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "Claude", "claude_desktop_config.json"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "Claude", "claude_desktop_config.json"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "Claude", "claude_desktop_config.json"), nil
	default:
		return filepath.Join(home, ".config", "Claude", "claude_desktop_config.json"), nil
	}
}
