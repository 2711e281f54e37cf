package audio

import "time"

// SoundType represents different sound effects
type SoundType int

const (
	SoundBounce SoundType = iota // Paddle and wall reflection
	SoundBreak                   // Target destroyed
	SoundMiss                    // Bottom wall hit
	SoundWin                     // All targets destroyed
	SoundLose                    // Miss limit reached
	soundTypeCount
)

var soundNames = [soundTypeCount]string{"bounce", "break", "miss", "win", "lose"}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// ParseSoundType maps a config key to a sound type
func ParseSoundType(name string) (SoundType, bool) {
	for i, n := range soundNames {
		if n == name {
			return SoundType(i), true
		}
	}
	return 0, false
}

// SoundTypes lists every sound type in declaration order
func SoundTypes() []SoundType {
	out := make([]SoundType, soundTypeCount)
	for i := range out {
		out[i] = SoundType(i)
	}
	return out
}

// AudioConfig holds audio system configuration
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	EffectVolumes map[SoundType]float64
	MinSoundGap   time.Duration // repeats of one effect closer than this are dropped
	SampleRate    int
}
