package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultCoverageThreshold is the minimum coverage percentage required by the
// coverage validator when no config file or environment override is present.
const DefaultCoverageThreshold = 80

// Config holds user-tunable settings loaded from config.yaml.
// Every field has a working default; the file is optional.
type Config struct {
	Coverage  CoverageConfig  `yaml:"coverage"`
	Lint      LintConfig      `yaml:"lint"`
	Typecheck TypecheckConfig `yaml:"typecheck"`
}

// CoverageConfig configures the coverage validator.
type CoverageConfig struct {
	// Threshold is the minimum acceptable coverage percentage
	Threshold int `yaml:"threshold"`

	// Commands are tried in order until one produces parseable output
	Commands [][]string `yaml:"commands"`
}

// LintConfig configures the lint validator.
type LintConfig struct {
	// Command is the lint invocation; the target file is appended
	Command []string `yaml:"command"`
}

// TypecheckConfig configures the type-check validator.
type TypecheckConfig struct {
	// Command is the full type-check invocation
	Command []string `yaml:"command"`
}

// DefaultConfig returns the built-in settings used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Coverage: CoverageConfig{
			Threshold: DefaultCoverageThreshold,
			Commands: [][]string{
				{"pnpm", "test:coverage"},
				{"pnpm", "run", "test:coverage"},
				{"npm", "run", "test:coverage"},
				{"pnpm", "vitest", "run", "--coverage"},
				{"npx", "vitest", "run", "--coverage"},
			},
		},
		Lint: LintConfig{
			Command: []string{"pnpm", "exec", "oxlint"},
		},
		Typecheck: TypecheckConfig{
			Command: []string{"npx", "tsc", "--noEmit"},
		},
	}
}

// Load reads the config file at path, falling back to defaults for any
// missing fields. A missing or unparseable file yields the defaults; the
// validators follow the same fail-soft policy as the session store.
func Load(path string) *Config {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return cfg
	}

	if fileCfg.Coverage.Threshold > 0 {
		cfg.Coverage.Threshold = fileCfg.Coverage.Threshold
	}
	if len(fileCfg.Coverage.Commands) > 0 {
		cfg.Coverage.Commands = fileCfg.Coverage.Commands
	}
	if len(fileCfg.Lint.Command) > 0 {
		cfg.Lint.Command = fileCfg.Lint.Command
	}
	if len(fileCfg.Typecheck.Command) > 0 {
		cfg.Typecheck.Command = fileCfg.Typecheck.Command
	}

	return cfg
}

// CoverageThreshold resolves the effective coverage threshold: the
// COVERAGE_THRESHOLD environment variable wins over the config file value.
func (c *Config) CoverageThreshold() int {
	if env := os.Getenv("COVERAGE_THRESHOLD"); env != "" {
		if v, err := strconv.Atoi(env); err == nil && v > 0 {
			return v
		}
	}
	return c.Coverage.Threshold
}
