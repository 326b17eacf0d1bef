package mimic3

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// ProcessEngine shells out to the mimic3 CLI, one fresh process per utterance.
type ProcessEngine struct {
	binary   string
	settings Settings

	voice   string
	speaker string

	pending []string
}

func NewProcessEngine(settings Settings) *ProcessEngine {
	settings = settings.withDefaults()
	return &ProcessEngine{
		binary:   "mimic3",
		settings: settings,
		voice:    settings.Voice,
		speaker:  settings.Speaker,
	}
}

func (e *ProcessEngine) Voice() string {
	return e.voice
}

func (e *ProcessEngine) SetVoice(voice string) {
	e.voice = voice
}

func (e *ProcessEngine) Speaker() string {
	return e.speaker
}

func (e *ProcessEngine) SetSpeaker(speaker string) {
	e.speaker = speaker
}

// PreloadVoice verifies the voice model is present in one of the voices
// directories. Fetching models is mimic3-download's job, not ours.
func (e *ProcessEngine) PreloadVoice(voiceID string) error {
	for _, dir := range e.settings.VoicesDirectories {
		if _, err := os.Stat(filepath.Join(dir, voiceID)); err == nil {
			log.Debug().Str("voice", voiceID).Str("dir", dir).Msg("voice model present")
			return nil
		}
	}
	return fmt.Errorf("voice %q not found under %v", voiceID, e.settings.VoicesDirectories)
}

func (e *ProcessEngine) BeginUtterance() {
	e.pending = e.pending[:0]
}

func (e *ProcessEngine) SpeakText(text string) {
	e.pending = append(e.pending, text)
}

func (e *ProcessEngine) EndUtterance() ([]AudioResult, error) {
	text := strings.Join(e.pending, "\n")
	e.pending = e.pending[:0]
	return e.run(text, false)
}

func (e *ProcessEngine) SpeakSSML(ssml string) ([]AudioResult, error) {
	return e.run(ssml, true)
}

func (e *ProcessEngine) run(text string, ssml bool) ([]AudioResult, error) {
	args := e.buildArgs(ssml)
	log.Debug().Str("binary", e.binary).Strs("args", args).Int("text_length", len(text)).Msg("running mimic3")
	startTime := time.Now()

	cmd := exec.Command(e.binary, args...)
	cmd.Stdin = bytes.NewBufferString(text)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("mimic3 failed: %w: %s", err, stderr.String())
	}
	log.Debug().Dur("duration", time.Since(startTime)).Int("wav_byte_size", stdout.Len()).Msg("mimic3 done")

	result, err := decodeWavResult(stdout.Bytes())
	if err != nil {
		return nil, err
	}
	return []AudioResult{result}, nil
}

// buildArgs assembles the CLI flags for one synthesis run.
func (e *ProcessEngine) buildArgs(ssml bool) []string {
	args := []string{"--stdout"}
	if voice := voiceWithSpeaker(e.voice, e.speaker); voice != "" {
		args = append(args, "--voice", voice)
	}
	if ssml {
		args = append(args, "--ssml")
	}
	if e.settings.LengthScale != 0 {
		args = append(args, "--length-scale", formatScale(e.settings.LengthScale))
	}
	if e.settings.NoiseScale != 0 {
		args = append(args, "--noise-scale", formatScale(e.settings.NoiseScale))
	}
	if e.settings.NoiseW != 0 {
		args = append(args, "--noise-w", formatScale(e.settings.NoiseW))
	}
	if e.settings.UseDeterministicCompute {
		args = append(args, "--deterministic")
	}
	for _, dir := range e.settings.VoicesDirectories {
		args = append(args, "--voices-dir", dir)
	}
	return args
}

func formatScale(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
