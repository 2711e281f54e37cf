package constants

import "time"

// Audio defaults
const (
	DefaultSampleRate   = 44100
	DefaultMasterVolume = 0.6

	// SpeakerBufferDuration sizes the speaker buffer
	SpeakerBufferDuration = 100 * time.Millisecond

	// MinSoundGap suppresses repeats of the same effect within one frame burst
	MinSoundGap = 30 * time.Millisecond
)

// Bounce Sound Timing (paddle and walls)
const (
	BounceSoundDuration = 60 * time.Millisecond
	BounceSoundAttack   = 2 * time.Millisecond
	BounceSoundRelease  = 40 * time.Millisecond
)

// Break Sound Timing (target destroyed)
const (
	BreakSoundDuration = 180 * time.Millisecond
	BreakSoundAttack   = 2 * time.Millisecond
	BreakSoundRelease  = 150 * time.Millisecond
)

// Miss Sound Timing
const (
	MissSoundDuration = 220 * time.Millisecond
	MissSoundAttack   = 5 * time.Millisecond
	MissSoundRelease  = 80 * time.Millisecond
)

// Win/Lose Jingle Timing (per note)
const (
	JingleNoteDuration = 120 * time.Millisecond
	JingleNoteAttack   = 5 * time.Millisecond
	JingleNoteRelease  = 60 * time.Millisecond
)
