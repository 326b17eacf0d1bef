// Package synthesizer turns utterances into playable WAV audio via Mimic3.
package synthesizer

import "github.com/petrzlen/mimic3-golang/pkg/models"

type Synthesizer interface {
	// Synthesize renders one utterance and returns the full WAV container bytes.
	Synthesize(request models.SynthesisRequest) (wavBytes []byte, err error)
	// SynthesizeToFile renders and persists one utterance, returning the path
	// written. This is the call shape host frameworks expect from a TTS plugin.
	SynthesizeToFile(request models.SynthesisRequest, wavPath string) (writtenPath string, err error)
}
