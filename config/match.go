package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/lixenwraith/tide-fighter/constants"
	"github.com/lixenwraith/tide-fighter/input"
	"gopkg.in/yaml.v3"
)

// Match holds the tunables of one match
// Durations accept Go duration strings in YAML ("500ms", "30s")
type Match struct {
	StartAmmo          int           `yaml:"start_ammo"`
	MaxAmmo            int           `yaml:"max_ammo"`
	AmmoRegenInterval  time.Duration `yaml:"ammo_regen_interval"`
	EnemySpawnInterval time.Duration `yaml:"enemy_spawn_interval"`
	MatchTimeLimit     time.Duration `yaml:"match_time_limit"`
	PowerUpDuration    time.Duration `yaml:"power_up_duration"`
	WinningScore       int           `yaml:"winning_score"`
	GameSpeed          float64       `yaml:"game_speed"`

	// ScoreEveryHit awards the enemy's score on every landed hit instead of only on kills
	ScoreEveryHit bool `yaml:"score_every_hit"`

	// Seed drives every random draw of the match; 0 picks a time-based seed
	Seed int64 `yaml:"seed"`

	Debug bool `yaml:"debug"`
	Mute  bool `yaml:"mute"`

	// Keys overrides bindings: action name -> key names; the "none" action unbinds
	Keys map[string][]string `yaml:"keys"`
}

// Default returns the stock match configuration
func Default() Match {
	return Match{
		StartAmmo:          constants.StartAmmo,
		MaxAmmo:            constants.MaxAmmo,
		AmmoRegenInterval:  constants.AmmoRegenInterval,
		EnemySpawnInterval: constants.EnemySpawnInterval,
		MatchTimeLimit:     constants.MatchTimeLimit,
		PowerUpDuration:    constants.PowerUpDuration,
		WinningScore:       constants.WinningScore,
		GameSpeed:          constants.GameSpeed,
		ScoreEveryHit:      true,
	}
}

// Load reads a YAML file over the defaults; fields absent from the file keep their default
func Load(path string) (Match, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every invalid field
func (m Match) Validate() error {
	var errs []error
	if m.MaxAmmo <= 0 {
		errs = append(errs, fmt.Errorf("max_ammo must be positive, got %d", m.MaxAmmo))
	}
	if m.StartAmmo < 0 || m.StartAmmo > m.MaxAmmo {
		errs = append(errs, fmt.Errorf("start_ammo must be in [0, %d], got %d", m.MaxAmmo, m.StartAmmo))
	}
	if m.AmmoRegenInterval <= 0 {
		errs = append(errs, errors.New("ammo_regen_interval must be positive"))
	}
	if m.EnemySpawnInterval <= 0 {
		errs = append(errs, errors.New("enemy_spawn_interval must be positive"))
	}
	if m.MatchTimeLimit <= 0 {
		errs = append(errs, errors.New("match_time_limit must be positive"))
	}
	if m.PowerUpDuration <= 0 {
		errs = append(errs, errors.New("power_up_duration must be positive"))
	}
	if m.GameSpeed < 0 {
		errs = append(errs, fmt.Errorf("game_speed must not be negative, got %v", m.GameSpeed))
	}
	if _, err := input.LoadKeyBindings(m.Keys); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// KeyTable returns the default bindings with the configured overrides applied
func (m Match) KeyTable() (*input.KeyTable, error) {
	overrides, err := input.LoadKeyBindings(m.Keys)
	if err != nil {
		return nil, err
	}
	table := input.DefaultKeyTable()
	table.Merge(overrides)
	return table, nil
}
