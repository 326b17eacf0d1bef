package synthesizer

import (
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/petrzlen/mimic3-golang/pkg/audio_utils"
	"github.com/petrzlen/mimic3-golang/pkg/mimic3"
	"github.com/petrzlen/mimic3-golang/pkg/models"
	"github.com/petrzlen/mimic3-golang/pkg/voices"
)

const defaultLanguage = "en-us"

// Config is resolved once at construction. The embedded engine settings pass
// through to Mimic3 verbatim.
type Config struct {
	mimic3.Settings

	// ServerURL switches from the local mimic3 CLI to a running mimic3-server.
	ServerURL string
	// Directory resolves languages to voices and records the Voice override
	// as the default for Language. Optional; built fresh when nil.
	Directory *voices.Directory
	// PreloadVoices load eagerly at construction; any failure aborts it.
	PreloadVoices []string
	// PreloadLangs resolve through the voice directory before preloading;
	// languages without a default voice are skipped, failed loads abort.
	// Defaults to the instance language.
	PreloadLangs []string
}

func (c Config) withDefaults() Config {
	if c.Language == "" {
		c.Language = defaultLanguage
	}
	if c.Directory == nil {
		c.Directory = voices.NewDirectory()
	}
	if len(c.PreloadLangs) == 0 {
		c.PreloadLangs = []string{c.Language}
	}
	return c
}

// mimic3TTS owns the engine handle. Per-request voice/speaker mutation happens
// under the lock and is restored before the lock is released, so no request
// can leak its selection into the next one.
type mimic3TTS struct {
	lock      sync.Mutex
	engine    mimic3.Engine
	directory *voices.Directory
}

// NewMimic3TTS builds the engine handle (subprocess, or HTTP when
// cfg.ServerURL is set) and preloads voices eagerly. A configured Voice is
// registered in the voice directory as the default for cfg.Language.
func NewMimic3TTS(cfg Config) (Synthesizer, error) {
	cfg = cfg.withDefaults()

	var engine mimic3.Engine
	if cfg.ServerURL != "" {
		engine = mimic3.NewServerEngine(cfg.ServerURL, cfg.Settings)
	} else {
		engine = mimic3.NewProcessEngine(cfg.Settings)
	}
	return newMimic3TTS(cfg, engine)
}

func newMimic3TTS(cfg Config, engine mimic3.Engine) (*mimic3TTS, error) {
	cfg = cfg.withDefaults()

	t := &mimic3TTS{
		engine:    engine,
		directory: cfg.Directory,
	}
	if cfg.Voice != "" {
		// Lands in the directory itself, so a listing backed by the same
		// directory reports the override as the default too.
		t.directory.SetDefaultVoice(cfg.Language, cfg.Voice)
	}

	for _, voice := range cfg.PreloadVoices {
		if err := engine.PreloadVoice(voice); err != nil {
			return nil, fmt.Errorf("cannot preload voice %s %w", voice, err)
		}
	}
	for _, lang := range cfg.PreloadLangs {
		voice, ok := t.directory.DefaultVoice(lang)
		if !ok {
			log.Debug().Str("lang", lang).Msg("no default voice to preload")
			continue
		}
		if err := engine.PreloadVoice(voice); err != nil {
			return nil, fmt.Errorf("cannot preload voice %s for lang %s %w", voice, lang, err)
		}
	}
	return t, nil
}

// Synthesize renders one utterance to WAV bytes. Requests are fully
// serialized: the engine handle is borrowed, mutated, used and restored while
// holding the lock.
func (t *mimic3TTS) Synthesize(request models.SynthesisRequest) ([]byte, error) {
	t.lock.Lock()
	defer t.lock.Unlock()

	defVoice := t.engine.Voice()
	defSpeaker := t.engine.Speaker()
	// Restore runs on every exit path, before the lock is released.
	defer func() {
		t.engine.SetVoice(defVoice)
		t.engine.SetSpeaker(defSpeaker)
	}()

	if request.Voice != "" {
		t.engine.SetVoice(request.Voice)
	} else if request.Language != "" {
		if voice, ok := t.directory.DefaultVoice(request.Language); ok {
			t.engine.SetVoice(voice)
		} else {
			// Unknown language keeps the instance default.
			log.Debug().Str("lang", request.Language).Msg("no voice for language, keeping default")
		}
	}
	if request.Speaker != "" {
		t.engine.SetSpeaker(request.Speaker)
	}

	text, ssml := applyTextHacks(request.Text)
	log.Debug().Str("voice", t.engine.Voice()).Str("speaker", t.engine.Speaker()).Bool("ssml", ssml).Int("text_length", len(text)).Msg("synthesis start")
	return t.render(text, ssml)
}

// SynthesizeToFile persists the rendered WAV and returns the path written.
func (t *mimic3TTS) SynthesizeToFile(request models.SynthesisRequest, wavPath string) (string, error) {
	wavBytes, err := t.Synthesize(request)
	if err != nil {
		return "", err
	}
	if err = os.WriteFile(wavPath, wavBytes, 0o644); err != nil {
		return "", fmt.Errorf("cannot write wav to %s %w", wavPath, err)
	}
	log.Debug().Str("path", wavPath).Int("wav_byte_size", len(wavBytes)).Msg("wav written")
	return wavPath, nil
}

// render runs the engine and assembles its segments into one WAV container.
// The container format is fixed from the first segment (all segments are
// expected to share it). On any failure the container is still finalized,
// with a 22050 Hz / 16-bit / mono fallback when no segment made it that far,
// and only the error comes back; a partial WAV is never returned.
func (t *mimic3TTS) render(text string, ssml bool) ([]byte, error) {
	builder, err := audio_utils.NewWavBuilder()
	if err != nil {
		return nil, err
	}

	results, err := t.speak(text, ssml)
	if err == nil {
		for _, segment := range results {
			if !builder.HasFormat() {
				builder.SetFormat(segment.SampleRateHz, segment.SampleWidthBytes, segment.NumChannels)
			}
			if err = builder.AppendPCM(segment.AudioBytes); err != nil {
				break
			}
		}
		if err == nil && !builder.HasFormat() {
			err = fmt.Errorf("engine produced no audio segments")
		}
	}
	if err != nil {
		if !builder.HasFormat() {
			// Fallback parameters so the container finalizes cleanly before
			// the error propagates.
			builder.SetFormat(22050, 2, 1)
		}
		dbg(builder.Close())
		return nil, fmt.Errorf("synthesis failed %w", err)
	}

	if err = builder.Close(); err != nil {
		return nil, err
	}
	return builder.Bytes()
}

func (t *mimic3TTS) speak(text string, ssml bool) ([]mimic3.AudioResult, error) {
	if ssml {
		return t.engine.SpeakSSML(text)
	}
	t.engine.BeginUtterance()
	t.engine.SpeakText(text)
	return t.engine.EndUtterance()
}
