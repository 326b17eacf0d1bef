package audioio

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/petrzlen/mimic3-golang/pkg/audio_utils"
	"github.com/petrzlen/mimic3-golang/pkg/models"
)

// PlayAudioChunksRoutine plays synthesized utterances in arrival order,
// blocking on each one until it finished sounding. Returns when
// audioDataChan is closed.
func PlayAudioChunksRoutine(outputDevice OutputDevice, audioDataChan <-chan models.AudioData) {
	log.Info().Msgf("PlayAudioChunksRoutine started")

	i := 0
	for audioData := range audioDataChan {
		i++
		if audioData.Format != "wav" {
			log.Error().Msgf("unknown format for audio chunk %d: %s", i, audioData.Format)
			continue
		}

		intBuffer, err := audio_utils.DecodeWav(audioData.ByteData)
		if err != nil {
			log.Error().Err(err).Msg("cannot decode wav chunk, skipping")
			continue
		}

		startTime := time.Now()
		waitTilDone, err := outputDevice.Play(intBuffer) // Sub-millisecond.
		if err != nil {
			log.Error().Err(err).Msg("cannot play decoded wav, skipping")
			continue
		}
		audioData.Trace.PlaybackStartedAt = time.Now()
		audioData.Trace.Log()
		if waitTilDone != nil {
			waitTilDone.Wait()
		}

		log.Debug().Dur("duration", time.Since(startTime)).Int("chunk", i).Msg("playback done")
	}
	log.Info().Msgf("PlayAudioChunksRoutine finished")
}
