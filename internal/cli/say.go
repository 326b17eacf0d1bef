package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/petrzlen/mimic3-golang/pkg/audio_utils"
	"github.com/petrzlen/mimic3-golang/pkg/audioio"
	"github.com/petrzlen/mimic3-golang/pkg/models"
	"github.com/petrzlen/mimic3-golang/pkg/synthesizer"
)

type SayCMD struct {
	Text []string `arg:"" optional:"" help:"Text to speak; reads stdin when empty."`

	Voice   string `short:"v" help:"Voice key for this utterance, overrides the default."`
	Lang    string `short:"l" help:"Language tag for this utterance."`
	Speaker string `short:"s" help:"Speaker id for this utterance."`
	Output  string `short:"o" type:"path" default:"output/say.wav" help:"Path to write the wav file to."`
	Play    bool   `short:"p" help:"Also play the result on the default audio output."`
}

func (s *SayCMD) Run(flags *EngineFlags) error {
	text := strings.Join(s.Text, " ")
	if text == "" {
		stdin, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("cannot read text from stdin %w", err)
		}
		text = string(stdin)
	}

	tts, err := synthesizer.NewMimic3TTS(flags.ToConfig())
	if err != nil {
		return err
	}

	if err = os.MkdirAll(filepath.Dir(s.Output), 0o755); err != nil {
		return fmt.Errorf("cannot create output directory %w", err)
	}

	request := models.SynthesisRequest{
		Text:     text,
		Language: s.Lang,
		Voice:    s.Voice,
		Speaker:  s.Speaker,
	}
	wavPath, err := tts.SynthesizeToFile(request, s.Output)
	if err != nil {
		return err
	}
	fmt.Printf("Generated file %q\n", wavPath)

	if s.Play {
		wavBytes, err := os.ReadFile(wavPath)
		if err != nil {
			return err
		}
		return playWav(wavBytes)
	}
	return nil
}

// playWav blocks until the whole file finished sounding.
func playWav(wavBytes []byte) error {
	intBuffer, err := audio_utils.DecodeWav(wavBytes)
	if err != nil {
		return err
	}
	sampleWidthBytes := intBuffer.SourceBitDepth / 8
	if sampleWidthBytes == 0 {
		sampleWidthBytes = 2
	}

	speakers, err := audioio.NewSpeakers(intBuffer.Format.SampleRate, sampleWidthBytes, intBuffer.Format.NumChannels)
	if err != nil {
		return err
	}
	waitTilDone, err := speakers.Play(intBuffer)
	if err != nil {
		return err
	}
	waitTilDone.Wait()
	return nil
}
