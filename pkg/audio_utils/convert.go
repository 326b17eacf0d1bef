package audio_utils

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/rs/zerolog/log"
)

func dbg(err error) {
	if err != nil {
		log.Debug().Err(err).Msg("sth non-essential failed")
	}
}

// DecodeWav parses a whole WAV payload into an int buffer. The buffer carries
// SampleRate and NumChannels in its Format and the source width in SourceBitDepth.
func DecodeWav(wavBytes []byte) (result *audio.IntBuffer, err error) {
	decoder := wav.NewDecoder(bytes.NewReader(wavBytes))
	result, err = decoder.FullPCMBuffer()
	if err != nil {
		err = fmt.Errorf("cannot decode wav payload %w", err)
		return
	}
	log.Debug().Int("int_data_length", len(result.Data)).Int("sample_rate", result.Format.SampleRate).Int("num_channels", result.Format.NumChannels).Int("source_bit_depth", result.SourceBitDepth).Msg("wav payload decoded")
	return
}

// pcmBytesToInts widens raw little-endian PCM to one int per sample value.
// Width 1 is unsigned 8-bit (WAV convention), width 2 is signed 16-bit.
func pcmBytesToInts(raw []byte, sampleWidthBytes int) ([]int, error) {
	switch sampleWidthBytes {
	case 1:
		intData := make([]int, len(raw))
		for i, b := range raw {
			intData[i] = int(b)
		}
		return intData, nil
	case 2:
		if len(raw)%2 != 0 {
			return nil, fmt.Errorf("odd pcm byte count %d for 16-bit samples", len(raw))
		}
		intData := make([]int, len(raw)/2)
		for i := 0; i < len(raw); i += 2 {
			intData[i/2] = int(int16(binary.LittleEndian.Uint16(raw[i : i+2])))
		}
		return intData, nil
	default:
		return nil, fmt.Errorf("unsupported sample width of %d bytes", sampleWidthBytes)
	}
}

// IntsToPCMBytes is the inverse of pcmBytesToInts, flattening decoded sample
// values back into raw little-endian PCM.
func IntsToPCMBytes(data []int, sampleWidthBytes int) ([]byte, error) {
	switch sampleWidthBytes {
	case 1:
		out := make([]byte, len(data))
		for i, v := range data {
			out[i] = byte(v)
		}
		return out, nil
	case 2:
		out := make([]byte, len(data)*2)
		for i, v := range data {
			binary.LittleEndian.PutUint16(out[i*2:], uint16(int16(v)))
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported sample width of %d bytes", sampleWidthBytes)
	}
}
