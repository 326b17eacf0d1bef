package networking

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/petrzlen/mimic3-golang/pkg/models"
	"github.com/petrzlen/mimic3-golang/pkg/synthesizer"
	"github.com/petrzlen/mimic3-golang/pkg/voices"
)

// NewTTSHandlerFunc serves POST /api/tts. The request body is the text to
// speak, voice / lang / speaker come as query parameters and the response is
// one WAV file. Mirrors the upstream mimic3-server endpoint, so existing
// clients can point here unchanged.
func NewTTSHandlerFunc(tts synthesizer.Synthesizer) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "use POST with the text to speak as the request body", http.StatusMethodNotAllowed)
			return
		}
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "cannot read request body", http.StatusBadRequest)
			return
		}

		query := r.URL.Query()
		wavBytes, err := tts.Synthesize(models.SynthesisRequest{
			Text:     string(body),
			Language: query.Get("lang"),
			Voice:    query.Get("voice"),
			Speaker:  query.Get("speaker"),
		})
		if err != nil {
			log.Error().Err(err).Msg("cannot synthesize http request")
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "audio/wav")
		if _, err = w.Write(wavBytes); err != nil {
			log.Error().Err(err).Msg("cannot write wav response")
		}
	}
}

// VoiceInfo is one row of the /api/voices listing.
type VoiceInfo struct {
	Key      string   `json:"key"`
	Language string   `json:"language"`
	Default  bool     `json:"default,omitempty"`
	Speakers []string `json:"speakers,omitempty"`
}

// NewVoicesHandlerFunc serves GET /api/voices as a JSON listing of voice
// models, optionally filtered with ?lang=.
func NewVoicesHandlerFunc(directory *voices.Directory) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		listing := voiceListing(directory, r.URL.Query().Get("lang"))
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(listing); err != nil {
			log.Error().Err(err).Msg("cannot write voices response")
		}
	}
}

// voiceListing flattens the directory into per-voice rows, ordered by
// language and then roster order. The single-speaker placeholder id
// "default" is not worth listing.
func voiceListing(directory *voices.Directory, lang string) []VoiceInfo {
	languages := directory.Languages()
	if lang != "" {
		languages = []string{lang}
	}

	listing := make([]VoiceInfo, 0)
	for _, language := range languages {
		roster, ok := directory.Speakers(language)
		if !ok {
			continue
		}
		defaultVoice, _ := directory.DefaultVoice(language)

		var current *VoiceInfo
		for _, speaker := range roster {
			if current == nil || current.Key != speaker.Voice {
				listing = append(listing, VoiceInfo{
					Key:      speaker.Voice,
					Language: language,
					Default:  speaker.Voice == defaultVoice,
				})
				current = &listing[len(listing)-1]
			}
			if speaker.ID != "" && speaker.ID != "default" {
				current.Speakers = append(current.Speakers, speaker.ID)
			}
		}
	}
	return listing
}
