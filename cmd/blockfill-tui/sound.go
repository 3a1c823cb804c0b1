package main

import (
	"bytes"
	"math"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

type SoundEvent int

const (
	SoundSelect SoundEvent = iota
	SoundPlace
	SoundInvalid
	SoundClear1
	SoundClear2
	SoundClear3
	SoundCombo
	SoundGameOver
)

const (
	sampleRate     = 44100
	bytesPerSample = 4
	toneGap        = 10 * time.Millisecond
	fadeSeconds    = 0.003
)

// SoundEngine synthesizes short sine tone sequences for game events. It is
// silent when disabled, muted, or when no audio device could be opened.
type SoundEngine struct {
	mu      sync.RWMutex
	ctx     *oto.Context
	enabled bool
	muted   bool
	volume  float64
}

// NewSoundEngine opens an audio context when enabled is true. Failure to open
// one leaves the engine silent and is returned for logging.
func NewSoundEngine(enabled bool, volume float64) (*SoundEngine, error) {
	s := &SoundEngine{volume: clampVolume(volume)}
	if !enabled {
		return s, nil
	}
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return s, err
	}
	<-ready
	s.ctx = ctx
	s.enabled = true
	return s, nil
}

// ToggleMute flips the mute flag and returns the new value.
func (s *SoundEngine) ToggleMute() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.muted = !s.muted
	return s.muted
}

func (s *SoundEngine) Muted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.muted
}

// Available reports whether an audio device is open.
func (s *SoundEngine) Available() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.enabled
}

// Play renders and plays the tones for event on a background goroutine.
func (s *SoundEngine) Play(event SoundEvent) {
	s.mu.RLock()
	ctx, enabled, muted, volume := s.ctx, s.enabled, s.muted, s.volume
	s.mu.RUnlock()
	if !enabled || muted || ctx == nil {
		return
	}
	sequence := tonesForEvent(event)
	if len(sequence) == 0 {
		return
	}
	go func() {
		player := ctx.NewPlayer(bytes.NewReader(renderToneSequence(sequence, sampleRate, volume)))
		player.Play()
		for player.IsPlaying() {
			time.Sleep(5 * time.Millisecond)
		}
		_ = player.Close()
	}()
}

type toneSpec struct {
	frequency float64
	duration  time.Duration
	volume    float64
}

func tonesForEvent(event SoundEvent) []toneSpec {
	switch event {
	case SoundSelect:
		return []toneSpec{{frequency: 520, duration: 30 * time.Millisecond, volume: 0.16}}
	case SoundPlace:
		return []toneSpec{{frequency: 240, duration: 60 * time.Millisecond, volume: 0.25}}
	case SoundInvalid:
		return []toneSpec{{frequency: 140, duration: 80 * time.Millisecond, volume: 0.22}}
	case SoundClear1:
		return []toneSpec{{frequency: 440, duration: 90 * time.Millisecond, volume: 0.3}}
	case SoundClear2:
		return []toneSpec{
			{frequency: 440, duration: 70 * time.Millisecond, volume: 0.3},
			{frequency: 660, duration: 90 * time.Millisecond, volume: 0.3},
		}
	case SoundClear3:
		return []toneSpec{
			{frequency: 440, duration: 70 * time.Millisecond, volume: 0.3},
			{frequency: 660, duration: 70 * time.Millisecond, volume: 0.3},
			{frequency: 880, duration: 90 * time.Millisecond, volume: 0.3},
		}
	case SoundCombo:
		return []toneSpec{
			{frequency: 660, duration: 80 * time.Millisecond, volume: 0.3},
			{frequency: 880, duration: 80 * time.Millisecond, volume: 0.3},
			{frequency: 990, duration: 120 * time.Millisecond, volume: 0.3},
		}
	case SoundGameOver:
		return []toneSpec{
			{frequency: 330, duration: 120 * time.Millisecond, volume: 0.28},
			{frequency: 180, duration: 200 * time.Millisecond, volume: 0.28},
		}
	default:
		return nil
	}
}

// soundForPlacement picks the cue for a successful placement.
func soundForPlacement(lines int, combo, gameOver bool) SoundEvent {
	switch {
	case gameOver:
		return SoundGameOver
	case combo:
		return SoundCombo
	case lines >= 3:
		return SoundClear3
	case lines == 2:
		return SoundClear2
	case lines == 1:
		return SoundClear1
	}
	return SoundPlace
}

func samplesFor(d time.Duration, rate int) int {
	return int(float64(rate) * d.Seconds())
}

// renderToneSequence produces interleaved stereo signed 16-bit little endian
// samples with a short gap between tones.
func renderToneSequence(sequence []toneSpec, rate int, masterVolume float64) []byte {
	gapSamples := samplesFor(toneGap, rate)
	total := 0
	for i, spec := range sequence {
		total += samplesFor(spec.duration, rate)
		if i < len(sequence)-1 {
			total += gapSamples
		}
	}

	buffer := make([]byte, total*bytesPerSample)
	index := 0
	for _, spec := range sequence {
		renderTone(buffer, index, spec, rate, spec.volume*clampVolume(masterVolume))
		index += (samplesFor(spec.duration, rate) + gapSamples) * bytesPerSample
	}
	return buffer
}

func renderTone(buffer []byte, start int, spec toneSpec, rate int, volume float64) {
	const maxInt16 = 1<<15 - 1
	samples := samplesFor(spec.duration, rate)
	fade := int(float64(rate) * fadeSeconds)
	for i := range samples {
		env := 1.0
		if fade > 0 {
			if i < fade {
				env = float64(i) / float64(fade)
			} else if i > samples-fade {
				env = max(float64(samples-i)/float64(fade), 0)
			}
		}
		sample := math.Sin(2 * math.Pi * spec.frequency * float64(i) / float64(rate))
		value := int16(sample * volume * env * maxInt16)
		at := start + i*bytesPerSample
		buffer[at] = byte(value)
		buffer[at+1] = byte(value >> 8)
		buffer[at+2] = byte(value)
		buffer[at+3] = byte(value >> 8)
	}
}

func clampVolume(value float64) float64 {
	return min(max(value, 0), 1)
}
