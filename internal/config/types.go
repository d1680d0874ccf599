package config

// RepairConfig is the YAML-loadable shape of operator defaults for an
// embedding application. It configures the ambient and domain layers
// around the pure Repair core — none of its fields are read by Repair
// itself, which only ever sees the Option values a caller derives from
// this struct.
type RepairConfig struct {
	MaxPasses int           `yaml:"max_passes"`
	Logging   LoggingConfig `yaml:"logging"`
	History   HistoryConfig `yaml:"history"`
	Script    ScriptConfig  `yaml:"script"`
}

// LoggingConfig controls the opt-in operational logger (internal/telemetry).
type LoggingConfig struct {
	Enabled bool   `yaml:"enabled"`
	Level   string `yaml:"level"`
	JSON    bool   `yaml:"json"`
}

// HistoryConfig controls the opt-in repair-invocation store (internal/history).
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"`
}

// ScriptConfig controls the opt-in Starlark custom-transform extension
// point (internal/script).
type ScriptConfig struct {
	Enabled bool          `yaml:"enabled"`
	Files   []string      `yaml:"files"`
	Timeout DurationField `yaml:"timeout"`
}

// DurationField is a plain seconds count rather than time.Duration so the
// YAML surface stays a bare integer (`timeout: 2`) instead of requiring
// Go duration syntax from an operator's config file.
type DurationField int
