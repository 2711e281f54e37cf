package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/zutopia/constants"
)

// drain streams s to the end and returns the sample count and peak amplitude
func drain(s beep.Streamer) (total int, peak float64) {
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

// TestOscillatorRange verifies every wave stays within [-1, 1]
func TestOscillatorRange(t *testing.T) {
	rate := beep.SampleRate(44100)

	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(440, 20*time.Millisecond, wave, rate)
		samples := make([][2]float64, 200)
		n, ok := osc.Stream(samples)
		if !ok || n != 200 {
			t.Fatalf("wave %d: Stream = %d, %v", wave, n, ok)
		}
		for i := 0; i < n; i++ {
			if samples[i][0] < -1 || samples[i][0] > 1 || samples[i][0] != samples[i][1] {
				t.Fatalf("wave %d: sample %d = %v", wave, i, samples[i])
			}
		}
		if osc.Err() != nil {
			t.Errorf("wave %d: Err = %v", wave, osc.Err())
		}
	}
}

// TestOscillatorDuration verifies the oscillator stops after its duration
func TestOscillatorDuration(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 10 * time.Millisecond
	expected := rate.N(duration)

	osc := NewOscillator(440, duration, WaveSine, rate)
	samples := make([][2]float64, expected*2)
	n, ok := osc.Stream(samples)
	if n != expected || !ok {
		t.Errorf("first Stream = %d, %v, want %d, true", n, ok, expected)
	}

	n2, ok2 := osc.Stream(samples)
	if n2 != 0 || ok2 {
		t.Errorf("drained Stream = %d, %v, want 0, false", n2, ok2)
	}
}

// TestEnvelopeAttackPhase verifies the attack ramps up from silence
func TestEnvelopeAttackPhase(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 100 * time.Millisecond
	attack := 50 * time.Millisecond

	// Square wave for constant amplitude
	osc := NewOscillator(100, duration, WaveSquare, rate)
	env := NewEnvelope(osc, duration, attack, 10*time.Millisecond, rate)

	samples := make([][2]float64, rate.N(attack))
	n, _ := env.Stream(samples)

	if first, last := math.Abs(samples[0][0]), math.Abs(samples[n-1][0]); first >= last {
		t.Errorf("attack does not ramp: first=%f last=%f", first, last)
	}
}

func TestEnvelopeRelease(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 50 * time.Millisecond

	osc := NewOscillator(100, duration, WaveSquare, rate)
	env := NewEnvelope(osc, duration, 0, 20*time.Millisecond, rate)

	samples := make([][2]float64, rate.N(duration))
	n, _ := env.Stream(samples)
	if n != len(samples) {
		t.Fatalf("streamed %d, want %d", n, len(samples))
	}
	if math.Abs(samples[0][0]) != 1 {
		t.Errorf("no attack configured, first sample = %v", samples[0][0])
	}
	if tail := math.Abs(samples[n-1][0]); tail > 0.01 {
		t.Errorf("release tail = %v, want near zero", tail)
	}
}

// TestSoundEffectLengths verifies each effect ends after its configured timing
func TestSoundEffectLengths(t *testing.T) {
	cfg := DefaultAudioConfig()
	rate := beep.SampleRate(cfg.SampleRate)

	tests := []struct {
		st   SoundType
		want int
	}{
		{SoundBounce, rate.N(constants.BounceSoundDuration)},
		{SoundBreak, rate.N(constants.BreakSoundDuration)},
		{SoundMiss, 2 * rate.N(constants.MissSoundDuration/2)},
		{SoundWin, 4 * rate.N(constants.JingleNoteDuration)},
		{SoundLose, 3 * rate.N(constants.JingleNoteDuration)},
	}

	for _, tt := range tests {
		t.Run(tt.st.String(), func(t *testing.T) {
			s := GetSoundEffect(tt.st, cfg)
			if s == nil {
				t.Fatal("nil streamer")
			}
			total, peak := drain(s)
			// Mixed streams may round up to the mixing buffer
			if total < tt.want || total > tt.want+512 {
				t.Errorf("length = %d samples, want %d", total, tt.want)
			}
			if peak == 0 {
				t.Error("effect is silent")
			}
			if peak > 1 {
				t.Errorf("peak %v clips", peak)
			}
		})
	}
}

func TestGetSoundEffectInvalid(t *testing.T) {
	if s := GetSoundEffect(SoundType(999), DefaultAudioConfig()); s != nil {
		t.Error("Expected nil for invalid sound type")
	}
}

// TestSoundEffectVolume verifies master volume scales the output
func TestSoundEffectVolume(t *testing.T) {
	cfg := DefaultAudioConfig()

	cfg.MasterVolume = 0
	if _, peak := drain(CreateBreakSound(cfg)); peak != 0 {
		t.Errorf("zero volume peak = %v", peak)
	}

	cfg.MasterVolume = 1
	_, loud := drain(CreateMissSound(cfg))
	cfg.MasterVolume = 0.25
	_, quiet := drain(CreateMissSound(cfg))
	if quiet >= loud {
		t.Errorf("quarter volume peak %v not below full %v", quiet, loud)
	}
}

func TestNewVolumeZero(t *testing.T) {
	rate := beep.SampleRate(44100)
	vol := newVolume(NewOscillator(440, 50*time.Millisecond, WaveSine, rate), 0)

	samples := make([][2]float64, 100)
	n, ok := vol.Stream(samples)
	if !ok || n == 0 {
		t.Fatalf("Stream = %d, %v", n, ok)
	}
	for i := 0; i < n; i++ {
		if samples[i][0] != 0 {
			t.Fatalf("sample %d = %v, want silence", i, samples[i][0])
		}
	}
}
