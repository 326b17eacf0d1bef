// Package cli holds the kong command structs shared by the binaries under cmd/.
package cli

import (
	"github.com/petrzlen/mimic3-golang/pkg/mimic3"
	"github.com/petrzlen/mimic3-golang/pkg/synthesizer"
)

// CLI is the root command of the mimic3-tts binary.
var CLI struct {
	EngineFlags `embed:""`

	Say    SayCMD    `cmd:"" help:"Synthesize one utterance into a wav file."`
	Repl   ReplCMD   `cmd:"" help:"Read lines from stdin and speak them as they come."`
	Voices VoicesCMD `cmd:"" help:"List the known voices and speakers."`
}

// EngineFlags configures the underlying Mimic3 engine. Shared by every binary,
// each flag also binds to a MIMIC3_* environment variable.
type EngineFlags struct {
	URL     string `env:"MIMIC3_URL" help:"Base URL of a running mimic3-server, e.g. http://localhost:59125; empty runs the local mimic3 CLI."`
	Voice   string `env:"MIMIC3_VOICE" help:"Default voice key, e.g. en_US/cmu-arctic_low."`
	Lang    string `env:"MIMIC3_LANG" default:"en-us" help:"Default language tag."`
	Speaker string `env:"MIMIC3_SPEAKER" help:"Default speaker id for multi-speaker voices."`

	VoicesDir       []string `env:"MIMIC3_VOICES_DIR" help:"Directories to look up voice models in (repeatable)."`
	VoicesDownload  string   `env:"MIMIC3_VOICES_DOWNLOAD_DIR" help:"Where downloaded voice models live; defaults to the mycroft XDG data dir."`
	VoicesURLFormat string   `env:"MIMIC3_VOICES_URL_FORMAT" help:"URL template for fetching voice models."`
	PreloadVoice    []string `env:"MIMIC3_PRELOAD_VOICE" help:"Voice keys to preload at startup (repeatable)."`
	PreloadLang     []string `env:"MIMIC3_PRELOAD_LANG" help:"Languages whose default voice to preload (repeatable)."`

	LengthScale   float64 `env:"MIMIC3_LENGTH_SCALE" help:"Phoneme length scale, <1 speaks faster."`
	NoiseScale    float64 `env:"MIMIC3_NOISE_SCALE" help:"Generator noise."`
	NoiseW        float64 `env:"MIMIC3_NOISE_W" help:"Phoneme duration noise."`
	Deterministic bool    `env:"MIMIC3_DETERMINISTIC" help:"Disable noise for reproducible audio."`
}

// ToConfig maps the flags onto the synthesizer configuration.
func (e *EngineFlags) ToConfig() synthesizer.Config {
	return synthesizer.Config{
		Settings: mimic3.Settings{
			Voice:                   e.Voice,
			Language:                e.Lang,
			VoicesDirectories:       e.VoicesDir,
			VoicesURLFormat:         e.VoicesURLFormat,
			Speaker:                 e.Speaker,
			LengthScale:             e.LengthScale,
			NoiseScale:              e.NoiseScale,
			NoiseW:                  e.NoiseW,
			VoicesDownloadDir:       e.VoicesDownload,
			UseDeterministicCompute: e.Deterministic,
		},
		ServerURL:     e.URL,
		PreloadVoices: e.PreloadVoice,
		PreloadLangs:  e.PreloadLang,
	}
}
