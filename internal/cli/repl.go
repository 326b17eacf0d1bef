package cli

import (
	"bufio"
	"fmt"
	"os"

	"github.com/petrzlen/mimic3-golang/pkg/audioio"
	"github.com/petrzlen/mimic3-golang/pkg/models"
	"github.com/petrzlen/mimic3-golang/pkg/synthesizer"
)

// All of the standard *_low Mimic3 voices emit 22050 Hz 16-bit mono.
const lowQualitySampleRateHz = 22050

type ReplCMD struct {
	Lang string `short:"l" help:"Language tag for all lines; defaults to the engine language."`
}

func (r *ReplCMD) Run(flags *EngineFlags) error {
	tts, err := synthesizer.NewMimic3TTS(flags.ToConfig())
	if err != nil {
		return err
	}
	speakers, err := audioio.NewSpeakers(lowQualitySampleRateHz, 2, 1)
	if err != nil {
		return err
	}

	lang := r.Lang
	if lang == "" {
		lang = flags.Lang
	}

	textChan := make(chan string, 100)
	audioDataChan := make(chan models.AudioData, 100)

	go synthesizer.SynthesizeLinesRoutine(tts, lang, textChan, audioDataChan)
	playbackDone := make(chan struct{})
	go func() {
		audioio.PlayAudioChunksRoutine(speakers, audioDataChan)
		close(playbackDone)
	}()

	fmt.Println("Type a line to hear it spoken, Ctrl-D to quit.")
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		textChan <- scanner.Text()
	}
	close(textChan)
	<-playbackDone

	return scanner.Err()
}
