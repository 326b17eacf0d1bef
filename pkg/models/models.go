package models

import (
	"time"

	"github.com/rs/zerolog/log"
)

type Trace struct {
	CreatedAt time.Time
	Creator   string

	SynthesisStartedAt time.Time
	SynthesizedAt      time.Time

	PlaybackStartedAt time.Time
	// TODO(devx): Add some extra metadata as it evolves
}

func (t Trace) Log() {
	log.Trace().Time("created_at", t.CreatedAt).Str("creator", t.Creator).Dur("dur_to_synthesize", t.SynthesizedAt.Sub(t.SynthesisStartedAt)).Dur("dur_to_playback", t.PlaybackStartedAt.Sub(t.CreatedAt)).Msgf("tracing")
}

func NewTrace(creator string) Trace {
	return Trace{
		CreatedAt: time.Now(),
		Creator:   creator,
	}
}

// SynthesisRequest is one utterance worth of work. Language, Voice and Speaker
// are optional per-request overrides; empty means "keep the instance default".
type SynthesisRequest struct {
	Text     string
	Language string
	Voice    string
	Speaker  string
}

// AudioData is the unit flowing through the playback / streaming pipelines.
type AudioData struct {
	ByteData []byte
	Format   string
	Length   time.Duration
	Text     string // text representation
	Trace    Trace
}
