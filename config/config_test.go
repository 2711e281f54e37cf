package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/lixenwraith/zutopia/audio"
	"github.com/lixenwraith/zutopia/constants"
	"github.com/lixenwraith/zutopia/physics"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "zutopia.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") = %v", err)
	}

	if cfg.Game.MissLimit != constants.DefaultMissLimit || cfg.Game.SpeedStep != constants.DefaultSpeedStep {
		t.Errorf("game = %+v", cfg.Game)
	}
	if cfg.Game.CollisionRule != "vertical" || cfg.Game.Seed != 0 {
		t.Errorf("rule = %q seed = %d", cfg.Game.CollisionRule, cfg.Game.Seed)
	}
	if !cfg.Audio.Enabled || cfg.Audio.SampleRate != constants.DefaultSampleRate {
		t.Errorf("audio = %+v", cfg.Audio)
	}
	if cfg.Log.Debug || cfg.Log.Dir != "logs" {
		t.Errorf("log = %+v", cfg.Log)
	}

	ec := cfg.Engine()
	if ec.MissLimit != 5 || ec.Rule != physics.CollisionVertical {
		t.Errorf("engine config = %+v", ec)
	}
}

func TestLoadFileOverrides(t *testing.T) {
	path := writeConfig(t, `
[game]
miss_limit = 3
collision_rule = "nearest-axis"
seed = 42

[audio]
master_volume = 0.25

[audio.effects]
break = 0.1

[log]
debug = true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load = %v", err)
	}

	if cfg.Game.MissLimit != 3 || cfg.Game.Seed != 42 {
		t.Errorf("game = %+v", cfg.Game)
	}
	// Keys absent from the file keep their defaults
	if cfg.Game.SpeedStep != constants.DefaultSpeedStep || !cfg.Audio.Enabled {
		t.Errorf("defaults lost: %+v %+v", cfg.Game, cfg.Audio)
	}
	if !cfg.Log.Debug {
		t.Error("log.debug not applied")
	}
	if cfg.Engine().Rule != physics.CollisionNearestAxis {
		t.Errorf("rule = %v", cfg.Engine().Rule)
	}

	ac := cfg.AudioSettings()
	if ac.MasterVolume != 0.25 || ac.EffectVolumes[audio.SoundBreak] != 0.1 {
		t.Errorf("audio settings = %+v", ac)
	}
	if ac.EffectVolumes[audio.SoundWin] != audio.DefaultEffectVolume(audio.SoundWin) {
		t.Error("unlisted effect volume lost its default")
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		invalid bool // wraps ErrInvalidConfig
	}{
		{"Syntax", "[game\nmiss_limit = 3", false},
		{"Wrong type", "[game]\nmiss_limit = \"five\"", false},
		{"Unknown key", "[game]\nlives = 3", true},
		{"Unknown section", "[network]\nport = 1", true},
		{"Miss limit", "[game]\nmiss_limit = 0", true},
		{"Negative step", "[game]\nspeed_step = -0.5", true},
		{"Rule", "[game]\ncollision_rule = \"diagonal\"", true},
		{"Volume", "[audio]\nmaster_volume = 1.5", true},
		{"Sample rate", "[audio]\nsample_rate = 0", true},
		{"Effect name", "[audio.effects]\ncoin = 0.5", true},
		{"Effect volume", "[audio.effects]\nbounce = 2.0", true},
		{"Log dir", "[log]\ndir = \"\"", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("expected error")
			}
			if got := errors.Is(err, ErrInvalidConfig); got != tt.invalid {
				t.Errorf("errors.Is(ErrInvalidConfig) = %v, want %v (err: %v)", got, tt.invalid, err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Fatal("missing file accepted")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want not-exist cause", err)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("ZUTOPIA_MISS_LIMIT", "7")
	t.Setenv("ZUTOPIA_SPEED_STEP", "0.5")
	t.Setenv("ZUTOPIA_COLLISION_RULE", "nearest-axis")
	t.Setenv("ZUTOPIA_SEED", "99")
	t.Setenv("ZUTOPIA_AUDIO_ENABLED", "false")
	t.Setenv("ZUTOPIA_MASTER_VOLUME", "150")
	t.Setenv("ZUTOPIA_DEBUG", "1")

	path := writeConfig(t, "[game]\nmiss_limit = 3\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load = %v", err)
	}

	if cfg.Game.MissLimit != 7 {
		t.Errorf("env did not override file: miss_limit = %d", cfg.Game.MissLimit)
	}
	if cfg.Game.SpeedStep != 0.5 || cfg.Game.CollisionRule != "nearest-axis" || cfg.Game.Seed != 99 {
		t.Errorf("game = %+v", cfg.Game)
	}
	if cfg.Audio.Enabled || cfg.Audio.MasterVolume != 1 {
		t.Errorf("audio = %+v, want disabled with clamped volume", cfg.Audio)
	}
	if !cfg.Log.Debug {
		t.Error("ZUTOPIA_DEBUG not applied")
	}
}

func TestEnvInvalidIgnored(t *testing.T) {
	t.Setenv("ZUTOPIA_MISS_LIMIT", "many")
	t.Setenv("ZUTOPIA_AUDIO_ENABLED", "perhaps")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load = %v", err)
	}
	if cfg.Game.MissLimit != constants.DefaultMissLimit || !cfg.Audio.Enabled {
		t.Errorf("unparsable env changed config: %+v %+v", cfg.Game, cfg.Audio)
	}
}

// TestEncodeRoundTrip verifies the written config loads back unchanged
func TestEncodeRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Game.MissLimit = 9
	cfg.Game.CollisionRule = "nearest-axis"

	var buf bytes.Buffer
	if err := Encode(&buf, cfg); err != nil {
		t.Fatalf("Encode = %v", err)
	}
	if !strings.Contains(buf.String(), "miss_limit = 9") {
		t.Errorf("encoded config missing miss_limit:\n%s", buf.String())
	}

	loaded, err := Load(writeConfig(t, buf.String()))
	if err != nil {
		t.Fatalf("Load(encoded) = %v", err)
	}
	if loaded.Game != cfg.Game || loaded.Log != cfg.Log {
		t.Errorf("round trip = %+v, want %+v", loaded, cfg)
	}
	if len(loaded.Audio.Effects) != len(cfg.Audio.Effects) {
		t.Errorf("effects = %v", loaded.Audio.Effects)
	}
}
