package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default is the configuration a caller gets when no config file is
// present — repairs still run (MaxPasses has a sane value), and every
// opt-in ambient/domain layer stays off until an operator turns it on.
var Default = RepairConfig{
	MaxPasses: 6,
	Logging:   LoggingConfig{Enabled: false, Level: "info", JSON: true},
	History:   HistoryConfig{Enabled: false, Dir: "./jsonmend-history"},
	Script:    ScriptConfig{Enabled: false, Timeout: 2},
}

// LoadFile reads and validates a RepairConfig from a YAML file. A missing
// file is not an error: Default is written to filename and returned, the
// same bootstrap behavior as the rest of this module's ambient stack.
func LoadFile(filename string) (*RepairConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			if err := writeDefault(filename); err != nil {
				return nil, fmt.Errorf("config: generate default file: %w", err)
			}
			cfg := Default
			return &cfg, nil
		}
		return nil, fmt.Errorf("config: read file: %w", err)
	}

	cfg := Default
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse file: %w", err)
	}
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config: invalid configuration: %w", err)
	}
	return &cfg, nil
}

func writeDefault(filename string) error {
	data, err := yaml.Marshal(&Default)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0o644)
}
