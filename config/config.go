// Package config loads game settings from an optional TOML file and
// ZUTOPIA_* environment variables, then validates them.
package config

import (
	"io"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/lixenwraith/zutopia/audio"
	"github.com/lixenwraith/zutopia/constants"
	"github.com/lixenwraith/zutopia/engine"
	"github.com/lixenwraith/zutopia/physics"
)

// ErrInvalidConfig marks values that parse but are out of range or unknown
var ErrInvalidConfig = errors.New("invalid config")

// Config is the full settings tree, one TOML table per section
type Config struct {
	Game  GameConfig  `toml:"game"`
	Audio AudioConfig `toml:"audio"`
	Log   LogConfig   `toml:"log"`
}

// GameConfig holds the rule tunables
type GameConfig struct {
	MissLimit     int     `toml:"miss_limit"`
	SpeedStep     float64 `toml:"speed_step"`
	CollisionRule string  `toml:"collision_rule"`
	Seed          uint64  `toml:"seed"` // 0 picks a random seed per run
}

// AudioConfig holds playback settings; Effects maps effect names to volume
type AudioConfig struct {
	Enabled      bool               `toml:"enabled"`
	MasterVolume float64            `toml:"master_volume"`
	SampleRate   int                `toml:"sample_rate"`
	Effects      map[string]float64 `toml:"effects"`
}

// LogConfig controls the debug log file
type LogConfig struct {
	Debug bool   `toml:"debug"`
	Dir   string `toml:"dir"`
}

// Default returns the built-in settings
func Default() Config {
	effects := make(map[string]float64)
	for _, st := range audio.SoundTypes() {
		effects[st.String()] = audio.DefaultEffectVolume(st)
	}

	return Config{
		Game: GameConfig{
			MissLimit:     constants.DefaultMissLimit,
			SpeedStep:     constants.DefaultSpeedStep,
			CollisionRule: physics.CollisionVertical.String(),
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: constants.DefaultMasterVolume,
			SampleRate:   constants.DefaultSampleRate,
			Effects:      effects,
		},
		Log: LogConfig{
			Dir: "logs",
		},
	}
}

// Load builds the effective config: defaults, then the file at path (skipped
// when path is empty), then environment overrides, then validation
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := decodeFile(path, &cfg); err != nil {
			return cfg, err
		}
	}

	ApplyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func decodeFile(path string, cfg *Config) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return errors.Wrapf(err, "load config %s", path)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return errors.Wrapf(ErrInvalidConfig, "%s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return nil
}

// ApplyEnv overlays ZUTOPIA_* variables; unparsable values are logged and ignored
func ApplyEnv(cfg *Config) {
	if v := os.Getenv("ZUTOPIA_MISS_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Game.MissLimit = n
		} else {
			log.Printf("Ignoring ZUTOPIA_MISS_LIMIT=%q: %v", v, err)
		}
	}

	if v := os.Getenv("ZUTOPIA_SPEED_STEP"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Game.SpeedStep = f
		} else {
			log.Printf("Ignoring ZUTOPIA_SPEED_STEP=%q: %v", v, err)
		}
	}

	if v := os.Getenv("ZUTOPIA_COLLISION_RULE"); v != "" {
		cfg.Game.CollisionRule = v
	}

	if v := os.Getenv("ZUTOPIA_SEED"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.Game.Seed = n
		} else {
			log.Printf("Ignoring ZUTOPIA_SEED=%q: %v", v, err)
		}
	}

	if v := os.Getenv("ZUTOPIA_AUDIO_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Audio.Enabled = b
		} else {
			log.Printf("Ignoring ZUTOPIA_AUDIO_ENABLED=%q: %v", v, err)
		}
	}

	// Master volume is 0-100, converted to 0.0-1.0 and clamped
	if v := os.Getenv("ZUTOPIA_MASTER_VOLUME"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Audio.MasterVolume = min(max(float64(n)/100.0, 0), 1)
		} else {
			log.Printf("Ignoring ZUTOPIA_MASTER_VOLUME=%q: %v", v, err)
		}
	}

	if v := os.Getenv("ZUTOPIA_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Log.Debug = b
		} else {
			log.Printf("Ignoring ZUTOPIA_DEBUG=%q: %v", v, err)
		}
	}
}

// Validate checks ranges and names, errors wrap ErrInvalidConfig
func (c Config) Validate() error {
	if c.Game.MissLimit < 1 {
		return errors.Wrapf(ErrInvalidConfig, "game.miss_limit must be at least 1, got %d", c.Game.MissLimit)
	}
	if c.Game.SpeedStep < 0 {
		return errors.Wrapf(ErrInvalidConfig, "game.speed_step must not be negative, got %v", c.Game.SpeedStep)
	}
	if _, err := physics.ParseCollisionRule(c.Game.CollisionRule); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "game.collision_rule: %v", err)
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		return errors.Wrapf(ErrInvalidConfig, "audio.master_volume must be in [0, 1], got %v", c.Audio.MasterVolume)
	}
	if c.Audio.SampleRate <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "audio.sample_rate must be positive, got %d", c.Audio.SampleRate)
	}
	for name, vol := range c.Audio.Effects {
		if _, ok := audio.ParseSoundType(name); !ok {
			return errors.Wrapf(ErrInvalidConfig, "audio.effects: unknown effect %q", name)
		}
		if vol < 0 || vol > 1 {
			return errors.Wrapf(ErrInvalidConfig, "audio.effects.%s must be in [0, 1], got %v", name, vol)
		}
	}
	if c.Log.Dir == "" {
		return errors.Wrap(ErrInvalidConfig, "log.dir must not be empty")
	}
	return nil
}

// Engine converts the game section; the config must be valid
func (c Config) Engine() engine.Config {
	rule, _ := physics.ParseCollisionRule(c.Game.CollisionRule)
	return engine.Config{
		MissLimit: c.Game.MissLimit,
		SpeedStep: c.Game.SpeedStep,
		Rule:      rule,
		Seed:      c.Game.Seed,
	}
}

// AudioSettings converts the audio section; effects missing from the file keep their defaults
func (c Config) AudioSettings() *audio.AudioConfig {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = c.Audio.Enabled
	ac.MasterVolume = c.Audio.MasterVolume
	ac.SampleRate = c.Audio.SampleRate
	for name, vol := range c.Audio.Effects {
		if st, ok := audio.ParseSoundType(name); ok {
			ac.EffectVolumes[st] = vol
		}
	}
	return ac
}

// Encode writes cfg as TOML
func Encode(w io.Writer, cfg Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return errors.Wrap(err, "encode config")
	}
	return nil
}
