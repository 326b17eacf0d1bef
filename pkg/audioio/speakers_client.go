package audioio

import (
	"bytes"
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/go-audio/audio"
	"github.com/rs/zerolog/log"

	"github.com/petrzlen/mimic3-golang/pkg/audio_utils"
)

// speakers drives the default audio output through oto. One playback at a
// time:
//  1. currentPlayer == nil => nothing going on
//  2. Play grabs the mutex => starting to play
//  3. Stop (or the buffer draining) interrupts the device and waits until it stops.
//  4. Before another Play, either wait on currentDone or call Stop().
//
// Invariant: there is at most one playerMonitorRoutine running at the same time.
type speakers struct {
	otoContext *oto.Context

	sampleWidthBytes int

	currentPlayer *oto.Player
	currentDone   *sync.WaitGroup

	mutex    sync.Mutex // Protects currentPlayer, currentDone and stopFlag
	stopFlag bool       // Indicates if playback should be stopped early
}

// NewSpeakers initializes the audio device. oto allows one context per
// process, so create it once and share.
func NewSpeakers(sampleRateHz int, sampleWidthBytes int, numChannels int) (OutputDevice, error) {
	if sampleWidthBytes != 2 {
		return nil, fmt.Errorf("only 16-bit playback is supported, got %d byte samples", sampleWidthBytes)
	}
	op := &oto.NewContextOptions{
		SampleRate:   sampleRateHz,
		ChannelCount: numChannels,
		Format:       oto.FormatSignedInt16LE,
	}

	log.Info().Msgf("NewSpeakers - will wait until the audio hardware is ready")
	otoCtx, readyChan, err := oto.NewContext(op)
	if err != nil {
		return nil, err
	}
	<-readyChan // Takes about 200ms empirically.
	log.Info().Msgf("NewSpeakers - context ready")

	return &speakers{
		otoContext:       otoCtx,
		sampleWidthBytes: sampleWidthBytes,
	}, nil
}

// Play starts playing the entire buffer and returns a WaitGroup for callers
// that want to block until done.
func (s *speakers) Play(buffer *audio.IntBuffer) (waitTilDone *sync.WaitGroup, err error) {
	pcmBytes, err := audio_utils.IntsToPCMBytes(buffer.Data, s.sampleWidthBytes)
	if err != nil {
		return nil, err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.currentPlayer != nil {
		return nil, fmt.Errorf("previous playback still running, you need to call Stop first")
	}

	s.currentDone = &sync.WaitGroup{}
	s.currentDone.Add(1)

	s.currentPlayer = s.otoContext.NewPlayer(bytes.NewReader(pcmBytes))
	s.currentPlayer.Play()

	// Closes the player when the buffer drains or Stop is requested.
	go s.playerMonitorRoutine()

	return s.currentDone, nil
}

// Stop interrupts the current playback and blocks until the player is closed.
func (s *speakers) Stop() error {
	s.mutex.Lock()

	if s.stopFlag {
		s.mutex.Unlock()
		// Can only really happen if multiple callers request Stop in a very brief period.
		return fmt.Errorf("double-stop called, the player is already being stopped")
	}

	if s.currentPlayer == nil {
		log.Debug().Msg("nothing is playing")
		s.mutex.Unlock()
		return nil
	}

	log.Debug().Msg("current playback is stopping ...")
	s.stopFlag = true
	s.currentPlayer.Pause()
	untilStopped := s.currentDone // copy it over, the field gets nil-ed by the monitor
	s.mutex.Unlock()

	untilStopped.Wait()
	return nil
}

// playerMonitorRoutine polls the device until the buffer has drained or a
// Stop was requested, then closes the player and resets for the next Play.
func (s *speakers) playerMonitorRoutine() {
	// Signal that the current playback has finished and we are ready for the next one.
	defer s.currentDone.Done()

	startTime := time.Now()
	for {
		s.mutex.Lock()
		playing := s.currentPlayer.IsPlaying()
		stop := s.stopFlag
		s.mutex.Unlock()

		if !playing || stop {
			break
		}

		time.Sleep(time.Millisecond)
	}

	s.mutex.Lock()
	if err := s.currentPlayer.Close(); err != nil {
		log.Error().Err(err).Msg("player.Close failed")
	}
	s.currentPlayer = nil
	s.currentDone = nil
	s.stopFlag = false
	s.mutex.Unlock()

	log.Debug().Dur("playback_duration", time.Since(startTime)).Msg("playerMonitorRoutine done")
}
