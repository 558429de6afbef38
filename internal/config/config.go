package config

import (
	"encoding/json"
	"math"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/thatsimonsguy/thermoshade/internal/scale"
)

type Config struct {
	ConfigFile string
	LogLevel   zerolog.Level

	LogFile      string  `json:"log_file"`
	DefaultScale string  `json:"default_scale"`
	DefaultValue float64 `json:"default_value"`

	EnableDatadog bool     `json:"enable_datadog"`
	DDAgentAddr   string   `json:"dd_agent_addr"`
	DDNamespace   string   `json:"dd_namespace"`
	DDTags        []string `json:"dd_tags"`
}

// Load reads the optional JSON config file and applies defaults. An empty
// configFile means defaults only. Any problem with the file is fatal.
func Load(configFile, logLevel string) Config {
	cfg := Config{
		ConfigFile: configFile,
		LogLevel:   parseLogLevel(logLevel),
	}

	if configFile != "" {
		file, err := os.Open(configFile)
		if err != nil {
			panic("Failed to load config file: " + err.Error())
		}
		defer file.Close()

		if err := json.NewDecoder(file).Decode(&cfg); err != nil {
			panic("Failed to parse config file: " + err.Error())
		}
	}

	cfg.applyDefaults()
	cfg.validate()
	return cfg
}

func (cfg *Config) applyDefaults() {
	if cfg.DefaultScale == "" {
		cfg.DefaultScale = string(scale.Celsius)
	}
	if cfg.DDAgentAddr == "" {
		cfg.DDAgentAddr = "127.0.0.1:8125"
	}
	if cfg.DDNamespace == "" {
		cfg.DDNamespace = "thermoshade."
	}
}

// Scale returns the parsed default scale. validate guarantees it parses.
func (cfg *Config) Scale() scale.Scale {
	s, _ := scale.Parse(cfg.DefaultScale)
	return s
}

func parseLogLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func (cfg *Config) validate() {
	var problems []string

	if _, err := scale.Parse(cfg.DefaultScale); err != nil {
		problems = append(problems, "default_scale: "+err.Error())
	}
	if math.IsNaN(cfg.DefaultValue) || math.IsInf(cfg.DefaultValue, 0) {
		problems = append(problems, "default_value must be finite")
	}
	if cfg.EnableDatadog && strings.TrimSpace(cfg.DDAgentAddr) == "" {
		problems = append(problems, "dd_agent_addr is required when enable_datadog is set")
	}

	if len(problems) > 0 {
		panic("Invalid config: " + strings.Join(problems, ", "))
	}
}
