package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	koanfyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Config represents the docqa configuration.
type Config struct {
	Provider      string        `koanf:"provider" yaml:"provider"`
	Model         string        `koanf:"model" yaml:"model"`
	Format        string        `koanf:"format" yaml:"format"`
	FailBelow     int           `koanf:"fail_below" yaml:"fail_below"`
	MaxChars      int           `koanf:"max_chars" yaml:"max_chars"`
	Compare       []string      `koanf:"compare" yaml:"compare,omitempty"`
	DisabledRules []string      `koanf:"disabled_rules" yaml:"disabled_rules,omitempty"`
	Cache         CacheConfig   `koanf:"cache" yaml:"cache"`
	Privacy       PrivacyConfig `koanf:"privacy" yaml:"privacy"`
	Server        ServerConfig  `koanf:"server" yaml:"server"`
}

// CacheConfig controls caching behavior.
type CacheConfig struct {
	Enabled    bool   `koanf:"enabled" yaml:"enabled"`
	Dir        string `koanf:"dir" yaml:"dir,omitempty"`
	TTLSeconds int    `koanf:"ttl_seconds" yaml:"ttl_seconds"`
}

// PrivacyConfig controls privacy/redaction behavior.
type PrivacyConfig struct {
	RedactSecrets bool `koanf:"redact_secrets" yaml:"redact_secrets"`
}

// ServerConfig controls the docqa serve command.
type ServerConfig struct {
	Addr string `koanf:"addr" yaml:"addr"`
}

// defaults is the base configuration layer.
func defaults() map[string]interface{} {
	return map[string]interface{}{
		"provider":               "openai",
		"model":                  "",
		"format":                 "text",
		"fail_below":             0,
		"max_chars":              30000,
		"compare":                []string{"openai", "anthropic"},
		"cache.enabled":          true,
		"cache.ttl_seconds":      86400,
		"privacy.redact_secrets": true,
		"server.addr":            ":8085",
	}
}

// Default returns a Config with all defaults applied.
func Default() Config {
	cfg, _ := Load("", nil)
	return cfg
}

// ConfigDir returns the platform-appropriate config directory for docqa.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "docqa"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "docqa"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "docqa"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "docqa"), nil
	default:
		return filepath.Join(home, ".config", "docqa"), nil
	}
}

// ConfigPath returns the full path to the saved config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// findConfigFile finds the config file to use.
// Priority: explicit path > ./docqa.yaml > ./docqa.yml > saved config.
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{"docqa.yaml", "docqa.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	if saved, err := ConfigPath(); err == nil {
		if _, err := os.Stat(saved); err == nil {
			return saved
		}
	}
	return ""
}

// envKeyMap maps DOCQA_* environment variables to config keys. Nested keys
// cannot be derived from the variable name alone (underscores are ambiguous)
// so the mapping is explicit.
var envKeyMap = map[string]string{
	"DOCQA_PROVIDER":       "provider",
	"DOCQA_MODEL":          "model",
	"DOCQA_FORMAT":         "format",
	"DOCQA_FAIL_BELOW":     "fail_below",
	"DOCQA_MAX_CHARS":      "max_chars",
	"DOCQA_DISABLED_RULES": "disabled_rules",
	"DOCQA_CACHE_DIR":      "cache.dir",
	"DOCQA_CACHE_TTL":      "cache.ttl_seconds",
	"DOCQA_SERVER_ADDR":    "server.addr",
}

// Load builds the effective config: defaults <- config file <- DOCQA_* env
// vars <- explicitly set CLI flags.
func Load(cfgFile string, flags *pflag.FlagSet) (Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return Config{}, fmt.Errorf("loading defaults: %w", err)
	}

	if path := findConfigFile(cfgFile); path != "" {
		if err := k.Load(file.Provider(path), koanfyaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("DOCQA_", ".", func(s string) string {
		if key, ok := envKeyMap[s]; ok {
			return key
		}
		return strings.ToLower(strings.TrimPrefix(s, "DOCQA_"))
	}), nil); err != nil {
		return Config{}, fmt.Errorf("loading env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			key := strings.ReplaceAll(f.Name, "-", "_")
			switch key {
			case "disable":
				key = "disabled_rules"
			case "addr":
				key = "server.addr"
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return Config{}, fmt.Errorf("loading flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unable to decode config: %w", err)
	}
	return cfg, nil
}

// Save writes the config to the saved config file as YAML.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// SetField sets a single config field by key name. Returns error if key is
// unknown.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "provider":
		cfg.Provider = value
	case "model":
		cfg.Model = value
	case "format":
		cfg.Format = value
	case "fail_below":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("fail_below must be an integer: %w", err)
		}
		cfg.FailBelow = n
	case "max_chars":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("max_chars must be an integer: %w", err)
		}
		cfg.MaxChars = n
	case "compare":
		cfg.Compare = splitList(value)
	case "disabled_rules":
		cfg.DisabledRules = splitList(value)
	case "cache.enabled":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("cache.enabled must be a boolean: %w", err)
		}
		cfg.Cache.Enabled = b
	case "cache.dir":
		cfg.Cache.Dir = value
	case "cache.ttl_seconds":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("cache.ttl_seconds must be an integer: %w", err)
		}
		cfg.Cache.TTLSeconds = n
	case "privacy.redact_secrets":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("privacy.redact_secrets must be a boolean: %w", err)
		}
		cfg.Privacy.RedactSecrets = b
	case "server.addr":
		cfg.Server.Addr = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}

// Field is one key/value pair for config listing.
type Field struct {
	Key   string
	Value string
}

// Fields returns the settable config keys with their current values, in
// stable order.
func Fields(cfg Config) []Field {
	return []Field{
		{"provider", cfg.Provider},
		{"model", cfg.Model},
		{"format", cfg.Format},
		{"fail_below", strconv.Itoa(cfg.FailBelow)},
		{"max_chars", strconv.Itoa(cfg.MaxChars)},
		{"compare", strings.Join(cfg.Compare, ",")},
		{"disabled_rules", strings.Join(cfg.DisabledRules, ",")},
		{"cache.enabled", strconv.FormatBool(cfg.Cache.Enabled)},
		{"cache.dir", cfg.Cache.Dir},
		{"cache.ttl_seconds", strconv.Itoa(cfg.Cache.TTLSeconds)},
		{"privacy.redact_secrets", strconv.FormatBool(cfg.Privacy.RedactSecrets)},
		{"server.addr", cfg.Server.Addr},
	}
}

// GetField returns the current value of a settable config key.
func GetField(cfg Config, key string) (string, error) {
	for _, f := range Fields(cfg) {
		if f.Key == key {
			return f.Value, nil
		}
	}
	return "", fmt.Errorf("unknown config key: %s", key)
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
