package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/zutopia/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves for a fixed duration
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack, flat sustain and linear release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly
// math.Log2(0) is -Inf, so 0 volume is made silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func effectVolume(cfg *AudioConfig, st SoundType) float64 {
	return cfg.EffectVolumes[st] * cfg.MasterVolume
}

// jingleNote is one shaped note of the win/lose jingles
func jingleNote(freq float64, wave WaveType, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(freq, constants.JingleNoteDuration, wave, rate)
	return NewEnvelope(osc, constants.JingleNoteDuration, constants.JingleNoteAttack, constants.JingleNoteRelease, rate)
}

// Sound effect generators

// CreateBounceSound generates a short blip for paddle and wall reflections
func CreateBounceSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	var tone beep.Streamer
	if sine, err := generators.SineTone(rate, 660); err == nil {
		tone = beep.Take(rate.N(constants.BounceSoundDuration), sine)
	} else {
		tone = NewOscillator(660, constants.BounceSoundDuration, WaveSine, rate)
	}
	shaped := NewEnvelope(tone, constants.BounceSoundDuration, constants.BounceSoundAttack, constants.BounceSoundRelease, rate)

	return newVolume(shaped, effectVolume(cfg, SoundBounce))
}

// CreateBreakSound generates a crunchy pop for a destroyed target
func CreateBreakSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := NewOscillator(0, constants.BreakSoundDuration, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, constants.BreakSoundDuration, constants.BreakSoundAttack, constants.BreakSoundRelease, rate)

	body := NewOscillator(330, constants.BreakSoundDuration, WaveSquare, rate)
	bodyShaped := NewEnvelope(body, constants.BreakSoundDuration, constants.BreakSoundAttack, constants.BreakSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(noiseShaped, 0.5),
		newVolume(bodyShaped, 0.3),
	)
	return newVolume(mixed, effectVolume(cfg, SoundBreak))
}

// CreateMissSound generates a falling two-note buzz for a bottom wall hit
func CreateMissSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	half := constants.MissSoundDuration / 2

	hi := NewEnvelope(NewOscillator(220, half, WaveSaw, rate), half, constants.MissSoundAttack, constants.MissSoundRelease, rate)
	lo := NewEnvelope(NewOscillator(147, half, WaveSaw, rate), half, constants.MissSoundAttack, constants.MissSoundRelease, rate)

	return newVolume(beep.Seq(hi, lo), effectVolume(cfg, SoundMiss))
}

// CreateWinSound generates a rising arpeggio (C5 E5 G5 C6)
func CreateWinSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	seq := beep.Seq(
		jingleNote(523.25, WaveSquare, rate),
		jingleNote(659.25, WaveSquare, rate),
		jingleNote(783.99, WaveSquare, rate),
		jingleNote(1046.50, WaveSquare, rate),
	)
	return newVolume(seq, effectVolume(cfg, SoundWin))
}

// CreateLoseSound generates a falling triad (G4 E4 C4)
func CreateLoseSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	seq := beep.Seq(
		jingleNote(392.00, WaveSaw, rate),
		jingleNote(329.63, WaveSaw, rate),
		jingleNote(261.63, WaveSaw, rate),
	)
	return newVolume(seq, effectVolume(cfg, SoundLose))
}

// GetSoundEffect returns the streamer for the given type, nil when unknown
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundBounce:
		return CreateBounceSound(cfg)
	case SoundBreak:
		return CreateBreakSound(cfg)
	case SoundMiss:
		return CreateMissSound(cfg)
	case SoundWin:
		return CreateWinSound(cfg)
	case SoundLose:
		return CreateLoseSound(cfg)
	default:
		return nil
	}
}
