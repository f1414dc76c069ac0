package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const EnvConfigPath = "FCN_CONFIG"

type Config struct {
	Log    LogConfig    `toml:"log" yaml:"log"`
	Repl   ReplConfig   `toml:"repl" yaml:"repl"`
	Lexer  LexerConfig  `toml:"lexer" yaml:"lexer"`
	Server ServerConfig `toml:"server" yaml:"server"`
}

type LogConfig struct {
	Dir   string `toml:"dir" yaml:"dir"`
	Level string `toml:"level" yaml:"level"`
}

type ReplConfig struct {
	Prompt             string `toml:"prompt" yaml:"prompt"`
	ContinuationPrompt string `toml:"continuation_prompt" yaml:"continuation_prompt"`
	// History is the SQLite file for submitted input. Empty disables it.
	History string `toml:"history" yaml:"history"`
}

type LexerConfig struct {
	// Strict rejects characters the tokenizer has no rule for.
	Strict bool `toml:"strict" yaml:"strict"`
}

type ServerConfig struct {
	Addr string `toml:"addr" yaml:"addr"`
}

func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads a TOML or YAML file, chosen by extension, and fills in defaults.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case ".toml", "":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s", filepath.Ext(path))
	}

	cfg.applyDefaults()
	cfg.expandEnvVars()

	return &cfg, nil
}

// Resolve loads path if given, then FCN_CONFIG, then ./fcn.toml, and falls
// back to defaults when none exists.
func Resolve(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}
	if env := os.Getenv(EnvConfigPath); env != "" {
		return Load(env)
	}
	for _, candidate := range []string{"fcn.toml", "fcn.yaml"} {
		if _, err := os.Stat(candidate); err == nil {
			return Load(candidate)
		}
	}
	return Default(), nil
}

func (c *Config) applyDefaults() {
	if c.Log.Dir == "" {
		c.Log.Dir = "logs"
	}
	if c.Log.Level == "" {
		c.Log.Level = "error"
	}
	if c.Repl.Prompt == "" {
		c.Repl.Prompt = "→ "
	}
	if c.Repl.ContinuationPrompt == "" {
		c.Repl.ContinuationPrompt = "... "
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
}

func (c *Config) expandEnvVars() {
	c.Log.Dir = os.ExpandEnv(c.Log.Dir)
	c.Repl.History = os.ExpandEnv(c.Repl.History)
}
