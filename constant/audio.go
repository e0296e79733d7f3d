package constant

import "time"

// Audio constants
const (
	// AudioSampleRate is the playback sample rate in Hz
	AudioSampleRate = 48000

	// SpeakerBufferDuration sizes the speaker ring buffer
	SpeakerBufferDuration = 100 * time.Millisecond
)
