package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thatsimonsguy/thermoshade/internal/scale"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg := Load("", "debug")

	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
	assert.Equal(t, "celsius", cfg.DefaultScale)
	assert.Equal(t, scale.Celsius, cfg.Scale())
	assert.Equal(t, 0.0, cfg.DefaultValue)
	assert.False(t, cfg.EnableDatadog)
	assert.Equal(t, "127.0.0.1:8125", cfg.DDAgentAddr)
	assert.Equal(t, "thermoshade.", cfg.DDNamespace)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `{
		"default_scale": "F",
		"default_value": 98.6,
		"enable_datadog": true,
		"dd_agent_addr": "statsd:8125",
		"dd_tags": ["env:test"]
	}`)

	cfg := Load(path, "warn")

	assert.Equal(t, path, cfg.ConfigFile)
	assert.Equal(t, zerolog.WarnLevel, cfg.LogLevel)
	assert.Equal(t, scale.Fahrenheit, cfg.Scale())
	assert.Equal(t, 98.6, cfg.DefaultValue)
	assert.True(t, cfg.EnableDatadog)
	assert.Equal(t, "statsd:8125", cfg.DDAgentAddr)
	assert.Equal(t, []string{"env:test"}, cfg.DDTags)
}

func TestLoad_MissingFile(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic for missing config file, but got none")
		}
	}()

	Load(filepath.Join(t.TempDir(), "nope.json"), "info")
}

func TestLoad_BadJSON(t *testing.T) {
	path := writeConfig(t, `{"default_scale": `)

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic for malformed config, but got none")
		}
	}()

	Load(path, "info")
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLogLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, parseLogLevel("warn"))
	assert.Equal(t, zerolog.ErrorLevel, parseLogLevel("error"))
	assert.Equal(t, zerolog.InfoLevel, parseLogLevel("loud"))
}

func TestValidate_UnknownScale(t *testing.T) {
	cfg := Config{DefaultScale: "delisle", DDAgentAddr: "127.0.0.1:8125"}

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic due to unknown default scale, but got none")
		}
	}()

	cfg.validate()
}

func TestValidate_NonFiniteValue(t *testing.T) {
	cfg := Config{DefaultScale: "kelvin", DefaultValue: math.Inf(1)}

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic due to non-finite default value, but got none")
		}
	}()

	cfg.validate()
}

func TestValidate_DatadogWithoutAddr(t *testing.T) {
	cfg := Config{DefaultScale: "celsius", EnableDatadog: true, DDAgentAddr: " "}

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic due to missing agent address, but got none")
		}
	}()

	cfg.validate()
}

func TestValidate_Valid(t *testing.T) {
	cfg := Config{DefaultScale: "rankine", DefaultValue: -10}
	cfg.validate() // should not panic
}
