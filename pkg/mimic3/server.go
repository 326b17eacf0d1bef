package mimic3

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

var httpClient = &http.Client{}

// ServerEngine talks to a running mimic3-server instance over its HTTP API.
// Useful when the models live on another machine or a shared daemon.
type ServerEngine struct {
	baseURL  string
	settings Settings

	voice   string
	speaker string

	pending []string
}

func NewServerEngine(baseURL string, settings Settings) *ServerEngine {
	settings = settings.withDefaults()
	return &ServerEngine{
		baseURL:  strings.TrimRight(baseURL, "/"),
		settings: settings,
		voice:    settings.Voice,
		speaker:  settings.Speaker,
	}
}

func (e *ServerEngine) Voice() string {
	return e.voice
}

func (e *ServerEngine) SetVoice(voice string) {
	e.voice = voice
}

func (e *ServerEngine) Speaker() string {
	return e.speaker
}

func (e *ServerEngine) SetSpeaker(speaker string) {
	e.speaker = speaker
}

// PreloadVoice checks the server's voice inventory lists voiceID. The server
// itself loads models lazily on first synthesis, so listed is good enough.
func (e *ServerEngine) PreloadVoice(voiceID string) error {
	body, err := e.sendRequest("GET", "/api/voices", "", nil)
	if err != nil {
		return err
	}
	var listed []struct {
		Key string `json:"key"`
	}
	if err = json.Unmarshal(body, &listed); err != nil {
		return errors.Wrap(err, "cannot parse voice listing")
	}
	for _, v := range listed {
		if v.Key == voiceID {
			return nil
		}
	}
	return errors.Errorf("voice %q not available on %s", voiceID, e.baseURL)
}

func (e *ServerEngine) BeginUtterance() {
	e.pending = e.pending[:0]
}

func (e *ServerEngine) SpeakText(text string) {
	e.pending = append(e.pending, text)
}

func (e *ServerEngine) EndUtterance() ([]AudioResult, error) {
	text := strings.Join(e.pending, "\n")
	e.pending = e.pending[:0]
	return e.speak(text, false)
}

func (e *ServerEngine) SpeakSSML(ssml string) ([]AudioResult, error) {
	return e.speak(ssml, true)
}

func (e *ServerEngine) speak(text string, ssml bool) ([]AudioResult, error) {
	query := url.Values{}
	if voice := voiceWithSpeaker(e.voice, e.speaker); voice != "" {
		query.Set("voice", voice)
	}
	if ssml {
		query.Set("ssml", "true")
	}
	if e.settings.LengthScale != 0 {
		query.Set("lengthScale", formatScale(e.settings.LengthScale))
	}
	if e.settings.NoiseScale != 0 {
		query.Set("noiseScale", formatScale(e.settings.NoiseScale))
	}
	if e.settings.NoiseW != 0 {
		query.Set("noiseW", formatScale(e.settings.NoiseW))
	}

	wavBytes, err := e.sendRequest("POST", "/api/tts", query.Encode(), strings.NewReader(text))
	if err != nil {
		return nil, err
	}
	result, err := decodeWavResult(wavBytes)
	if err != nil {
		return nil, err
	}
	return []AudioResult{result}, nil
}

func (e *ServerEngine) sendRequest(method string, endpoint string, rawQuery string, body io.Reader) (result []byte, err error) {
	requestStart := time.Now()

	requestURL := e.baseURL + endpoint
	if rawQuery != "" {
		requestURL += "?" + rawQuery
	}
	req, err := http.NewRequest(method, requestURL, body)
	if err != nil {
		return
	}
	req.Header.Add("Content-Type", "text/plain")

	resp, err := httpClient.Do(req)
	if err != nil {
		err = errors.Wrapf(err, "cannot reach mimic3-server at %s", requestURL)
		return
	}
	defer func() { _ = resp.Body.Close() }()

	log.Debug().Dur("request_time", time.Since(requestStart)).Str("method", method).Str("endpoint", endpoint).Int("status_code", resp.StatusCode).Msg("mimic3-server request done")

	if resp.StatusCode != http.StatusOK {
		errMsg, _ := io.ReadAll(resp.Body)
		err = errors.Errorf("received non-200 status %d from %s: %s", resp.StatusCode, endpoint, errMsg)
		return
	}
	result, err = io.ReadAll(resp.Body)
	if err != nil {
		err = errors.Wrap(err, "cannot read mimic3-server response")
		return
	}
	return
}
