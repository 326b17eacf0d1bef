package audio_utils

import (
	"fmt"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// WavBuilder accumulates raw PCM segments into an in-memory WAV container.
// The container starts with no format; SetFormat fixes it once (normally from
// the first segment's metadata), AppendPCM adds segments, Close finalizes the
// RIFF headers and Bytes hands back the whole file.
type WavBuilder struct {
	fs       afero.Fs
	filename string
	file     afero.File
	encoder  *wav.Encoder

	sampleRateHz     int
	sampleWidthBytes int
	numChannels      int

	headerWritten bool
}

func NewWavBuilder() (*WavBuilder, error) {
	// An in-memory file supplies the io.WriteSeeker that wav.NewEncoder needs
	// for finalizing headers.
	fs := afero.NewMemMapFs()
	inMemoryFilename := "in-memory-output.wav"
	inMemoryFile, err := fs.Create(inMemoryFilename)
	if err != nil {
		return nil, fmt.Errorf("cannot create in-memory wav file %w", err)
	}
	return &WavBuilder{fs: fs, filename: inMemoryFilename, file: inMemoryFile}, nil
}

// HasFormat reports whether the container format is fixed yet.
func (b *WavBuilder) HasFormat() bool {
	return b.encoder != nil
}

// SetFormat fixes sample rate, sample width and channel count. Only the first
// call takes effect; all appended segments must share this format.
func (b *WavBuilder) SetFormat(sampleRateHz int, sampleWidthBytes int, numChannels int) {
	if b.encoder != nil {
		return
	}
	b.sampleRateHz = sampleRateHz
	b.sampleWidthBytes = sampleWidthBytes
	b.numChannels = numChannels

	audioFormat := 1 // plain PCM
	b.encoder = wav.NewEncoder(b.file, sampleRateHz, sampleWidthBytes*8, numChannels, audioFormat)
	log.Debug().Int("sample_rate", sampleRateHz).Int("sample_width_bytes", sampleWidthBytes).Int("num_channels", numChannels).Msg("wav container format fixed")
}

// AppendPCM writes one segment of raw little-endian PCM in the fixed format.
func (b *WavBuilder) AppendPCM(raw []byte) error {
	if b.encoder == nil {
		return fmt.Errorf("wav format not set before appending %d pcm bytes", len(raw))
	}
	intData, err := pcmBytesToInts(raw, b.sampleWidthBytes)
	if err != nil {
		return err
	}
	segment := &audio.IntBuffer{
		Data: intData,
		Format: &audio.Format{
			SampleRate:  b.sampleRateHz,
			NumChannels: b.numChannels,
		},
		SourceBitDepth: b.sampleWidthBytes * 8,
	}
	if err = b.encoder.Write(segment); err != nil {
		return fmt.Errorf("cannot append pcm segment to wav %w", err)
	}
	b.headerWritten = true
	return nil
}

// Close flushes and finalizes the container headers. A builder whose format
// was never set closes as an empty file; callers that want a well-formed
// container on error paths should SetFormat a fallback before closing.
func (b *WavBuilder) Close() error {
	if b.encoder != nil {
		// The encoder emits the RIFF/fmt headers on Write, not on Close; an
		// appendless container needs one empty write to finalize valid.
		if !b.headerWritten {
			if err := b.AppendPCM(nil); err != nil {
				return err
			}
		}
		if err := b.encoder.Close(); err != nil {
			return fmt.Errorf("cannot finish wav encoding %w", err)
		}
	}
	// Close so Bytes can re-open and read the full contents.
	dbg(b.file.Close())
	return nil
}

// Bytes returns the finalized container content. Call after Close.
func (b *WavBuilder) Bytes() (result []byte, err error) {
	reopened, err := b.fs.Open(b.filename)
	if err != nil {
		err = fmt.Errorf("cannot reopen in-memory wav file %w", err)
		return
	}
	defer func() { dbg(reopened.Close()) }()
	result, err = io.ReadAll(reopened)
	if err != nil {
		err = fmt.Errorf("cannot read in-memory wav file %w", err)
		return
	}
	return
}
