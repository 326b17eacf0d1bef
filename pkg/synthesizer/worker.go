package synthesizer

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/petrzlen/mimic3-golang/pkg/models"
)

// SynthesizeLinesRoutine consumes utterance lines and emits WAV chunks for
// playback. A failed line is logged and skipped so the pipeline keeps going;
// the output channel closes once the input is drained.
func SynthesizeLinesRoutine(tts Synthesizer, language string, textChan <-chan string, audioOutputChan chan<- models.AudioData) {
	log.Info().Msgf("SynthesizeLinesRoutine started")

	i := 0
	for text := range textChan {
		if text == "" {
			continue
		}
		i++

		trace := models.NewTrace("synthesizer")
		trace.SynthesisStartedAt = time.Now()
		wavBytes, err := tts.Synthesize(models.SynthesisRequest{Text: text, Language: language})
		if err != nil {
			log.Error().Msgf("cannot synthesize %q cause %v", text, err)
			continue
		}
		trace.SynthesizedAt = time.Now()

		// TODO(prod, P1): Gate the debug dumps behind a flag.
		debugFilename := fmt.Sprintf("output/tts-%d.wav", i)
		dbg(os.WriteFile(debugFilename, wavBytes, 0644))

		audioOutputChan <- models.AudioData{
			ByteData: wavBytes,
			Format:   "wav",
			Text:     text,
			Trace:    trace,
		}
	}
	close(audioOutputChan)
	log.Info().Msgf("SynthesizeLinesRoutine finished")
}

func dbg(err error) {
	if err != nil {
		log.Debug().Err(err).Msg("sth non-essential failed")
	}
}
