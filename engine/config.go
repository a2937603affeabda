package engine

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"klondike/meta"
)

// Config tunes the coordinator. The animation durations gate input only;
// they never affect rules outcomes, and zero means no suspension window.
type Config struct {
	MoveMillis int    `yaml:"move_millis"` // move-transition window
	FlipMillis int    `yaml:"flip_millis"` // flip/reveal window
	MaxUndo    int    `yaml:"max_undo"`
	Seed       uint64 `yaml:"seed"` // 0 seeds from the clock
	Games      int    `yaml:"games"`
}

func DefaultConfig() Config {
	return Config{
		MaxUndo: meta.MAX_UNDO_DEPTH,
		Games:   meta.SIM_GAMES,
	}
}

// LoadConfig reads a YAML config file. A missing file is not an error: the
// defaults apply.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if cfg.MaxUndo <= 0 {
		cfg.MaxUndo = meta.MAX_UNDO_DEPTH
	}
	if cfg.Games <= 0 {
		cfg.Games = meta.SIM_GAMES
	}
	return cfg, nil
}

func (c Config) MoveDuration() time.Duration {
	return time.Duration(c.MoveMillis) * time.Millisecond
}

func (c Config) FlipDuration() time.Duration {
	return time.Duration(c.FlipMillis) * time.Millisecond
}
