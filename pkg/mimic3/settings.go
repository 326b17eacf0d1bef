package mimic3

import (
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

// Settings is handed to the engine verbatim. Zero values mean "engine default";
// nothing here is validated.
type Settings struct {
	Voice                   string
	Language                string
	VoicesDirectories       []string
	VoicesURLFormat         string
	Speaker                 string
	LengthScale             float64
	NoiseScale              float64
	NoiseW                  float64
	VoicesDownloadDir       string
	UseDeterministicCompute bool
}

// DefaultVoicesDownloadDir is where voice models land when nothing is
// configured: $XDG_DATA_HOME/mycroft/mimic3/voices, with the usual
// ~/.local/share fallback.
func DefaultVoicesDownloadDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := homedir.Dir()
		if err != nil {
			home = "."
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "mycroft", "mimic3", "voices")
}

// withDefaults fills the directory fallbacks the adapters rely on.
func (s Settings) withDefaults() Settings {
	if s.VoicesDownloadDir == "" {
		s.VoicesDownloadDir = DefaultVoicesDownloadDir()
	}
	if len(s.VoicesDirectories) == 0 {
		s.VoicesDirectories = []string{s.VoicesDownloadDir}
	}
	return s
}
