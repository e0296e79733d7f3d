package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/AidanMaskelyne/invaders/constant"
	"github.com/AidanMaskelyne/invaders/core"
)

const sampleRate = beep.SampleRate(constant.AudioSampleRate)

// Manager owns the speaker and plays pre-generated sound effects
// It satisfies the engine's AudioPlayer interface
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	sounds      [core.SoundTypeCount]floatBuffer
	volume      float64
	muted       bool
	initialized bool
}

// NewManager creates an uninitialized sound manager
func NewManager(volume float64) *Manager {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	return &Manager{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize opens the speaker and pre-generates all effect buffers
// Speaker init grabs the audio device; failure means no audio backend
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(constant.SpeakerBufferDuration)); err != nil {
		return err
	}

	for st := core.SoundType(0); st < core.SoundTypeCount; st++ {
		m.sounds[st] = generateSound(st)
	}

	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Cleanup silences and detaches everything from the speaker
func (m *Manager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	m.initialized = false
}

// Play schedules a sound effect and reports whether it was accepted
// Unknown types, a muted manager, and an uninitialized speaker all drop the
// sound without error
func (m *Manager) Play(st core.SoundType) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized || m.muted {
		return false
	}
	if st < 0 || st >= core.SoundTypeCount || m.sounds[st] == nil {
		return false
	}

	streamer := newBufferStreamer(m.sounds[st], m.volume)
	speaker.Lock()
	m.mixer.Add(streamer)
	speaker.Unlock()
	return true
}

// ToggleMute flips the mute state and returns the new value
func (m *Manager) ToggleMute() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = !m.muted
	return m.muted
}

// IsMuted reports the mute state
func (m *Manager) IsMuted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.muted
}

// bufferStreamer streams a mono buffer into both channels once, then ends
type bufferStreamer struct {
	buf  floatBuffer
	gain float64
	pos  int
}

func newBufferStreamer(buf floatBuffer, gain float64) *bufferStreamer {
	return &bufferStreamer{buf: buf, gain: gain}
}

func (bs *bufferStreamer) Stream(samples [][2]float64) (int, bool) {
	if bs.pos >= len(bs.buf) {
		return 0, false
	}
	n := 0
	for i := range samples {
		if bs.pos >= len(bs.buf) {
			break
		}
		v := bs.buf[bs.pos] * bs.gain
		samples[i][0] = v
		samples[i][1] = v
		bs.pos++
		n++
	}
	return n, true
}

func (bs *bufferStreamer) Err() error {
	return nil
}
