package mimic3

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestBuildArgs(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		voice    string
		speaker  string
		ssml     bool
		want     []string
	}{
		{
			name:     "voice only",
			settings: Settings{VoicesDirectories: []string{"/voices"}},
			voice:    "en_US/cmu-arctic_low",
			want:     []string{"--stdout", "--voice", "en_US/cmu-arctic_low", "--voices-dir", "/voices"},
		},
		{
			name:     "voice with speaker and ssml",
			settings: Settings{VoicesDirectories: []string{"/voices"}},
			voice:    "en_US/vctk_low",
			speaker:  "p239",
			ssml:     true,
			want:     []string{"--stdout", "--voice", "en_US/vctk_low#p239", "--ssml", "--voices-dir", "/voices"},
		},
		{
			name: "tuning flags",
			settings: Settings{
				LengthScale:             1.5,
				NoiseScale:              0.667,
				NoiseW:                  0.8,
				UseDeterministicCompute: true,
				VoicesDirectories:       []string{"/a", "/b"},
			},
			voice: "de_DE/thorsten_low",
			want: []string{
				"--stdout", "--voice", "de_DE/thorsten_low",
				"--length-scale", "1.5", "--noise-scale", "0.667", "--noise-w", "0.8",
				"--deterministic", "--voices-dir", "/a", "--voices-dir", "/b",
			},
		},
		{
			name:     "no voice selected",
			settings: Settings{VoicesDirectories: []string{"/voices"}},
			want:     []string{"--stdout", "--voices-dir", "/voices"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewProcessEngine(tt.settings)
			e.SetVoice(tt.voice)
			e.SetSpeaker(tt.speaker)
			if got := e.buildArgs(tt.ssml); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("buildArgs() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVoiceWithSpeaker(t *testing.T) {
	if got := voiceWithSpeaker("en_US/vctk_low", "p239"); got != "en_US/vctk_low#p239" {
		t.Errorf("voiceWithSpeaker = %q", got)
	}
	if got := voiceWithSpeaker("en_US/vctk_low", ""); got != "en_US/vctk_low" {
		t.Errorf("voiceWithSpeaker without speaker = %q", got)
	}
	if got := voiceWithSpeaker("", "p239"); got != "" {
		t.Errorf("voiceWithSpeaker without voice = %q", got)
	}
}

func TestProcessPreloadVoice(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "en_US", "cmu-arctic_low"), 0o755); err != nil {
		t.Fatal(err)
	}

	e := NewProcessEngine(Settings{VoicesDirectories: []string{dir}})
	if err := e.PreloadVoice("en_US/cmu-arctic_low"); err != nil {
		t.Fatalf("PreloadVoice for a present model: %v", err)
	}
	if err := e.PreloadVoice("en_US/missing_low"); err == nil {
		t.Fatal("PreloadVoice for a missing model should fail")
	}
}

func TestUtteranceBufferReset(t *testing.T) {
	e := NewProcessEngine(Settings{VoicesDirectories: []string{"/nowhere"}})

	e.BeginUtterance()
	e.SpeakText("one")
	e.SpeakText("two")
	if got := strings.Join(e.pending, "\n"); got != "one\ntwo" {
		t.Errorf("pending text = %q", got)
	}

	e.BeginUtterance()
	if len(e.pending) != 0 {
		t.Errorf("BeginUtterance should reset the buffer, still has %v", e.pending)
	}
}
