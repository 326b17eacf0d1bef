// Package mimic3 drives the Mimic3 TTS engine, either as a local subprocess
// or over the mimic3-server HTTP API.
package mimic3

import (
	"fmt"

	"github.com/petrzlen/mimic3-golang/pkg/audio_utils"
)

// AudioResult is one synthesized segment: raw little-endian PCM plus the
// format needed to containerize or play it.
type AudioResult struct {
	SampleRateHz     int
	SampleWidthBytes int
	NumChannels      int
	AudioBytes       []byte
}

// Engine is the long-lived handle onto one Mimic3 instance.
//
// Voice and Speaker are the engine defaults used when an utterance does not
// carry its own; a caller that changes them temporarily is expected to restore
// the previous values afterwards. Implementations do no locking, access is
// serialized by the owner.
//
// A plain-text utterance is composed with BeginUtterance / SpeakText /
// EndUtterance; SSML goes through SpeakSSML in one call. Both yield the
// synthesized segments in order.
type Engine interface {
	Voice() string
	SetVoice(voice string)
	Speaker() string
	SetSpeaker(speaker string)

	PreloadVoice(voiceID string) error

	BeginUtterance()
	SpeakText(text string)
	EndUtterance() ([]AudioResult, error)
	SpeakSSML(ssml string) ([]AudioResult, error)
}

// decodeWavResult converts one WAV payload from the engine into an AudioResult.
func decodeWavResult(wavBytes []byte) (AudioResult, error) {
	decoded, err := audio_utils.DecodeWav(wavBytes)
	if err != nil {
		return AudioResult{}, fmt.Errorf("cannot decode engine output %w", err)
	}
	sampleWidthBytes := decoded.SourceBitDepth / 8
	if sampleWidthBytes == 0 {
		sampleWidthBytes = 2
	}
	pcm, err := audio_utils.IntsToPCMBytes(decoded.Data, sampleWidthBytes)
	if err != nil {
		return AudioResult{}, err
	}
	return AudioResult{
		SampleRateHz:     decoded.Format.SampleRate,
		SampleWidthBytes: sampleWidthBytes,
		NumChannels:      decoded.Format.NumChannels,
		AudioBytes:       pcm,
	}, nil
}

// voiceWithSpeaker composes the "voice#speaker" selector both engine flavors use.
func voiceWithSpeaker(voice string, speaker string) string {
	if voice == "" || speaker == "" {
		return voice
	}
	return voice + "#" + speaker
}
