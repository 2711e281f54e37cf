package audio

import "github.com/lixenwraith/zutopia/constants"

var defaultEffectVolumes = [soundTypeCount]float64{
	SoundBounce: 0.4,
	SoundBreak:  0.7,
	SoundMiss:   0.6,
	SoundWin:    0.8,
	SoundLose:   0.8,
}

// DefaultEffectVolume returns the stock volume of one effect
func DefaultEffectVolume(st SoundType) float64 {
	if st < 0 || st >= soundTypeCount {
		return 0
	}
	return defaultEffectVolumes[st]
}

// DefaultAudioConfig returns the stock audio settings
func DefaultAudioConfig() *AudioConfig {
	vols := make(map[SoundType]float64, soundTypeCount)
	for _, st := range SoundTypes() {
		vols[st] = defaultEffectVolumes[st]
	}
	return &AudioConfig{
		Enabled:       true,
		MasterVolume:  constants.DefaultMasterVolume,
		EffectVolumes: vols,
		MinSoundGap:   constants.MinSoundGap,
		SampleRate:    constants.DefaultSampleRate,
	}
}
