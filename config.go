package bytepair

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadTrainConfig reads a YAML training configuration. Absent fields keep
// their defaults, so a config file only needs to name what it changes.
func LoadTrainConfig(path string) (TrainConfig, error) {
	cfg := DefaultTrainConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Merges <= 0 {
		return cfg, fmt.Errorf("config %s: merges must be positive", path)
	}
	return cfg, nil
}
