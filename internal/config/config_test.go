package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points config discovery at empty temp directories.
func isolate(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, 0, cfg.FailBelow)
	assert.Equal(t, 30000, cfg.MaxChars)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, 86400, cfg.Cache.TTLSeconds)
	assert.True(t, cfg.Privacy.RedactSecrets)
	assert.Equal(t, ":8085", cfg.Server.Addr)
}

func TestLoad_ConfigFile(t *testing.T) {
	isolate(t)

	yml := `provider: anthropic
model: claude-3-5-haiku-20241022
fail_below: 70
disabled_rules:
  - tab-characters
cache:
  enabled: false
`
	require.NoError(t, os.WriteFile("docqa.yaml", []byte(yml), 0o644))

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "anthropic", cfg.Provider)
	assert.Equal(t, "claude-3-5-haiku-20241022", cfg.Model)
	assert.Equal(t, 70, cfg.FailBelow)
	assert.Equal(t, []string{"tab-characters"}, cfg.DisabledRules)
	assert.False(t, cfg.Cache.Enabled)
	// Unset keys keep their defaults.
	assert.Equal(t, "text", cfg.Format)
}

func TestLoad_ExplicitFile(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("provider: gemini\n"), 0o644))

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "gemini", cfg.Provider)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	isolate(t)

	require.NoError(t, os.WriteFile("docqa.yaml", []byte("provider: anthropic\n"), 0o644))
	t.Setenv("DOCQA_PROVIDER", "ollama")
	t.Setenv("DOCQA_FAIL_BELOW", "50")
	t.Setenv("DOCQA_CACHE_TTL", "3600")
	t.Setenv("DOCQA_SERVER_ADDR", ":9000")

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "ollama", cfg.Provider)
	assert.Equal(t, 50, cfg.FailBelow)
	assert.Equal(t, 3600, cfg.Cache.TTLSeconds)
	assert.Equal(t, ":9000", cfg.Server.Addr)
}

func TestLoad_FlagsOverrideEverything(t *testing.T) {
	isolate(t)

	t.Setenv("DOCQA_PROVIDER", "ollama")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("provider", "", "")
	flags.Int("fail-below", 0, "")
	flags.StringSlice("disable", nil, "")
	require.NoError(t, flags.Parse([]string{
		"--provider", "anthropic",
		"--fail-below", "80",
		"--disable", "tab-characters,double-spaces",
	}))

	cfg, err := Load("", flags)
	require.NoError(t, err)

	assert.Equal(t, "anthropic", cfg.Provider)
	assert.Equal(t, 80, cfg.FailBelow)
	assert.Equal(t, []string{"tab-characters", "double-spaces"}, cfg.DisabledRules)
}

func TestLoad_UnchangedFlagsIgnored(t *testing.T) {
	isolate(t)

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("provider", "flag-default", "")
	require.NoError(t, flags.Parse(nil))

	cfg, err := Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, "openai", cfg.Provider, "unset flag must not mask the default")
}

func TestSaveAndReload(t *testing.T) {
	isolate(t)

	cfg := Default()
	cfg.Provider = "anthropic"
	cfg.FailBelow = 65
	cfg.DisabledRules = []string{"tab-characters"}
	require.NoError(t, Save(cfg))

	path, err := ConfigPath()
	require.NoError(t, err)
	assert.FileExists(t, path)

	reloaded, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "anthropic", reloaded.Provider)
	assert.Equal(t, 65, reloaded.FailBelow)
	assert.Equal(t, []string{"tab-characters"}, reloaded.DisabledRules)
}

func TestSetField(t *testing.T) {
	cfg := Default()

	require.NoError(t, SetField(&cfg, "provider", "gemini"))
	assert.Equal(t, "gemini", cfg.Provider)

	require.NoError(t, SetField(&cfg, "fail_below", "75"))
	assert.Equal(t, 75, cfg.FailBelow)

	require.NoError(t, SetField(&cfg, "disabled_rules", "a, b"))
	assert.Equal(t, []string{"a", "b"}, cfg.DisabledRules)

	require.NoError(t, SetField(&cfg, "cache.enabled", "false"))
	assert.False(t, cfg.Cache.Enabled)

	assert.Error(t, SetField(&cfg, "fail_below", "not-a-number"))
	assert.Error(t, SetField(&cfg, "no.such.key", "x"))
}

func TestGetFieldAndFields(t *testing.T) {
	cfg := Default()
	cfg.Model = "gpt-4o-mini"

	v, err := GetField(cfg, "model")
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", v)

	_, err = GetField(cfg, "bogus")
	assert.Error(t, err)

	// Every listed field can be read back by key.
	for _, f := range Fields(cfg) {
		got, err := GetField(cfg, f.Key)
		require.NoError(t, err)
		assert.Equal(t, f.Value, got)
	}
}
