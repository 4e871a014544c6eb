package ui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SoundType represents different sound effects.
type SoundType int

const (
	SoundMove SoundType = iota
	SoundCapture
	SoundReply
	SoundPass
	SoundStalled
	SoundNewGame
)

const (
	sampleRate = 44100
)

// AudioManager handles sound effect playback.
type AudioManager struct {
	context *audio.Context
	sounds  map[SoundType][]byte
	enabled bool
	volume  float64
}

// NewAudioManager creates an audio manager. The audio context is shared by
// the whole process, so only one manager may exist.
func NewAudioManager(enabled bool, volume float64) *AudioManager {
	am := &AudioManager{
		context: audio.NewContext(sampleRate),
		sounds:  make(map[SoundType][]byte),
		enabled: enabled,
	}
	am.SetVolume(volume)
	am.generateSounds()
	return am
}

// generateSounds creates procedural sounds for each event type.
func (am *AudioManager) generateSounds() {
	// Player move: short click (wood on wood)
	am.sounds[SoundMove] = am.generateClick(440, 0.08, 0.3)
	am.sounds[SoundCapture] = am.generateClick(330, 0.12, 0.5)

	// Black's reply: softer, lower, after a 150ms pause
	am.sounds[SoundReply] = am.generateDelayedClick(370, 0.08, 0.25)

	am.sounds[SoundPass] = am.generateTone(660, 0.15, 0.3)
	am.sounds[SoundStalled] = am.generateBuzz(150, 0.2, 0.3)
	am.sounds[SoundNewGame] = am.generateChord(0.4, 0.4)
}

// synth renders duration seconds of 16-bit stereo PCM. wave returns the
// sample value in [-1, 1] for sample index i at time t, where progress runs
// from 0 to 1 over the clip.
func synth(duration float64, wave func(i int, t, progress float64) float64) []byte {
	samples := int(sampleRate * duration)
	data := make([]byte, samples*4)

	for i := 0; i < samples; i++ {
		t := float64(i) / sampleRate
		val := int16(wave(i, t, t/duration) * 32767)
		data[i*4] = byte(val)
		data[i*4+1] = byte(val >> 8)
		data[i*4+2] = byte(val)
		data[i*4+3] = byte(val >> 8)
	}
	return data
}

// generateClick creates a short percussive click sound.
func (am *AudioManager) generateClick(freq float64, duration float64, amplitude float64) []byte {
	return synth(duration, func(i int, t, _ float64) float64 {
		envelope := math.Exp(-t * 30)
		// wood texture
		noise := (math.Sin(float64(i)*0.3) + math.Sin(float64(i)*0.7)) * 0.3
		return (math.Sin(2*math.Pi*freq*t) + noise) * envelope * amplitude
	})
}

// generateDelayedClick creates a click preceded by 150ms of silence.
func (am *AudioManager) generateDelayedClick(freq float64, duration float64, amplitude float64) []byte {
	silence := make([]byte, int(sampleRate*0.15)*4)
	return append(silence, am.generateClick(freq, duration, amplitude)...)
}

// generateTone creates a simple tone with attack and decay.
func (am *AudioManager) generateTone(freq float64, duration float64, amplitude float64) []byte {
	return synth(duration, func(_ int, t, progress float64) float64 {
		envelope := 1.0 - (progress-0.1)/0.9
		if progress < 0.1 {
			envelope = progress / 0.1
		}
		return math.Sin(2*math.Pi*freq*t) * envelope * amplitude
	})
}

// generateBuzz creates a low buzz with a linear decay.
func (am *AudioManager) generateBuzz(freq float64, duration float64, amplitude float64) []byte {
	return synth(duration, func(_ int, t, progress float64) float64 {
		wave := math.Sin(2*math.Pi*freq*t) + 0.3*math.Sin(4*math.Pi*freq*t)
		return wave * (1.0 - progress) * amplitude * 0.5
	})
}

// generateChord creates a C major chord that fades in and out.
func (am *AudioManager) generateChord(duration float64, amplitude float64) []byte {
	freqs := []float64{261.63, 329.63, 392.00}

	return synth(duration, func(_ int, t, progress float64) float64 {
		envelope := 1.0
		switch {
		case progress < 0.1:
			envelope = progress / 0.1
		case progress > 0.7:
			envelope = (1.0 - progress) / 0.3
		}

		sample := 0.0
		for _, freq := range freqs {
			sample += math.Sin(2 * math.Pi * freq * t)
		}
		return sample / float64(len(freqs)) * envelope * amplitude
	})
}

// Play plays a sound effect.
func (am *AudioManager) Play(sound SoundType) {
	if !am.enabled {
		return
	}

	data, ok := am.sounds[sound]
	if !ok {
		return
	}

	// Create a new player for each play (allows overlapping sounds)
	player := am.context.NewPlayerFromBytes(data)
	player.SetVolume(am.volume)
	player.Play()
}

// SetVolume sets the audio volume (0.0 to 1.0).
func (am *AudioManager) SetVolume(volume float64) {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	am.volume = volume
}

// Toggle flips the enabled flag and returns the new value.
func (am *AudioManager) Toggle() bool {
	am.enabled = !am.enabled
	return am.enabled
}
