package config

import (
	"strconv"
	"strings"
)

// ApplyKVOverrides applies free-form -c key=value overrides.
func ApplyKVOverrides(cfg Config, overrides []string) Config {
	if len(overrides) == 0 {
		return cfg
	}
	for _, raw := range overrides {
		parts := strings.SplitN(raw, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		val := strings.TrimSpace(parts[1])
		switch key {
		case "api_url":
			cfg.APIURL = val
		case "timeout_secs":
			if n, err := strconv.Atoi(val); err == nil && n > 0 {
				cfg.TimeoutSecs = n
			}
		case "max_attempts":
			if n, err := strconv.Atoi(val); err == nil && n > 0 {
				cfg.MaxAttempts = n
			}
		case "retry_delay_ms":
			if n, err := strconv.Atoi(val); err == nil && n >= 0 {
				cfg.RetryDelayMS = n
			}
		}
	}
	return cfg
}
