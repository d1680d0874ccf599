package config

import "fmt"

func validate(cfg *RepairConfig) error {
	if cfg.MaxPasses <= 0 {
		return fmt.Errorf("max_passes must be positive, got %d", cfg.MaxPasses)
	}

	if cfg.Logging.Enabled && cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}

	if cfg.History.Enabled && cfg.History.Dir == "" {
		return fmt.Errorf("history.dir is required when history.enabled is true")
	}

	if cfg.Script.Enabled {
		if cfg.Script.Timeout <= 0 {
			return fmt.Errorf("script.timeout must be positive when script.enabled is true")
		}
		if len(cfg.Script.Files) == 0 {
			return fmt.Errorf("script.files must list at least one script when script.enabled is true")
		}
	}

	return nil
}
