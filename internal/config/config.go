package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/kensei0527/likelihood-plot/internal/emotion"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Model   ModelConfig   `yaml:"model"`
	Sweep   SweepConfig   `yaml:"sweep"`
	Logging LoggingConfig `yaml:"logging"`
}

type ServerConfig struct {
	Port        int `yaml:"port"`
	MetricsPort int `yaml:"metrics_port"`
	RateLimit   int `yaml:"rate_limit_per_minute"`
}

type ModelConfig struct {
	Totals           []int     `yaml:"totals"`
	WMax             float64   `yaml:"w_max"`
	IntegerWeights   bool      `yaml:"integer_weights"`
	Beta             float64   `yaml:"beta"`
	Tau1             float64   `yaml:"tau1"`
	Tau2             float64   `yaml:"tau2"`
	SadBand          float64   `yaml:"sad_band"`
	Epsilon          float64   `yaml:"epsilon"`
	UtilityFloor     float64   `yaml:"utility_floor"`
	FloorEnabled     bool      `yaml:"floor_enabled"`
	CandidateCeiling int       `yaml:"candidate_ceiling"`
	WSelf            []float64 `yaml:"w_self"`
	WOther           []float64 `yaml:"w_other"`
}

type SweepConfig struct {
	ThetaMin  float64 `yaml:"theta_min"`
	ThetaMax  float64 `yaml:"theta_max"`
	ThetaStep float64 `yaml:"theta_step"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Params converts the model section into the evaluator parameter set.
func (c *Config) Params() emotion.Params {
	return emotion.Params{
		Totals:  emotion.Totals(c.Model.Totals),
		WMax:    c.Model.WMax,
		Beta:    c.Model.Beta,
		Tau1:    c.Model.Tau1,
		Tau2:    c.Model.Tau2,
		SadBand: c.Model.SadBand,
		Epsilon: c.Model.Epsilon,
		Floor:   c.Model.UtilityFloor,
		FloorOn: c.Model.FloorEnabled,
		Ceiling: c.Model.CandidateCeiling,
	}
}

func Load(path string) (*Config, error) {
	defaults := emotion.DefaultParams()
	cfg := &Config{
		Server: ServerConfig{
			Port:        8700,
			MetricsPort: 8701,
			RateLimit:   120,
		},
		Model: ModelConfig{
			Totals:           defaults.Totals,
			WMax:             defaults.WMax,
			Beta:             defaults.Beta,
			Tau1:             defaults.Tau1,
			Tau2:             defaults.Tau2,
			SadBand:          defaults.SadBand,
			Epsilon:          defaults.Epsilon,
			CandidateCeiling: defaults.Ceiling,
			WSelf:            []float64{0.6, 0.2, 0.1, 0.1},
			WOther:           []float64{0.5, -0.2, 0.3, 0.1},
		},
		Sweep: SweepConfig{
			ThetaMin:  -90,
			ThetaMax:  90,
			ThetaStep: 1,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)

	if err := cfg.Params().Validate(); err != nil {
		return nil, fmt.Errorf("model config: %w", err)
	}
	if cfg.Sweep.ThetaStep <= 0 {
		return nil, fmt.Errorf("sweep config: theta_step %f must be > 0", cfg.Sweep.ThetaStep)
	}
	if cfg.Sweep.ThetaMin > cfg.Sweep.ThetaMax {
		return nil, fmt.Errorf("sweep config: range [%f, %f] is inverted", cfg.Sweep.ThetaMin, cfg.Sweep.ThetaMax)
	}
	n := len(cfg.Model.Totals)
	if len(cfg.Model.WSelf) != n || len(cfg.Model.WOther) != n {
		return nil, fmt.Errorf("model config: default weights must have %d issues", n)
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("LIKELIHOOD_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = n
		}
	}
	if v := os.Getenv("LIKELIHOOD_METRICS_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.MetricsPort = n
		}
	}
	if v := os.Getenv("LIKELIHOOD_BETA"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Model.Beta = f
		}
	}
	if v := os.Getenv("LIKELIHOOD_W_MAX"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Model.WMax = f
		}
	}
	if v := os.Getenv("LIKELIHOOD_CANDIDATE_CEILING"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Model.CandidateCeiling = n
		}
	}
	if v := os.Getenv("LIKELIHOOD_INTEGER_WEIGHTS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Model.IntegerWeights = b
		}
	}
	if v := os.Getenv("LIKELIHOOD_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}
