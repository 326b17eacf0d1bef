package mimic3

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/petrzlen/mimic3-golang/pkg/audio_utils"
)

func buildTestWav(t *testing.T, samples []int) []byte {
	t.Helper()
	raw, err := audio_utils.IntsToPCMBytes(samples, 2)
	if err != nil {
		t.Fatal(err)
	}
	b, err := audio_utils.NewWavBuilder()
	if err != nil {
		t.Fatal(err)
	}
	b.SetFormat(22050, 2, 1)
	if err = b.AppendPCM(raw); err != nil {
		t.Fatal(err)
	}
	if err = b.Close(); err != nil {
		t.Fatal(err)
	}
	wavBytes, err := b.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	return wavBytes
}

func newFakeMimic3Server(t *testing.T, wavBytes []byte, lastRequest *http.Request, lastBody *string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/tts":
			body, _ := io.ReadAll(r.Body)
			*lastRequest = *r
			*lastBody = string(body)
			_, _ = w.Write(wavBytes)
		case "/api/voices":
			_, _ = w.Write([]byte(`[{"key":"en_US/cmu-arctic_low"},{"key":"de_DE/thorsten_low"}]`))
		default:
			http.NotFound(w, r)
		}
	}))
}

func TestServerEngineEndUtterance(t *testing.T) {
	samples := []int{0, 100, -100, 5000, -5000}
	wavBytes := buildTestWav(t, samples)

	var lastRequest http.Request
	var lastBody string
	srv := newFakeMimic3Server(t, wavBytes, &lastRequest, &lastBody)
	defer srv.Close()

	e := NewServerEngine(srv.URL, Settings{VoicesDirectories: []string{"/x"}})
	e.SetVoice("en_US/vctk_low")
	e.SetSpeaker("p239")

	e.BeginUtterance()
	e.SpeakText("hello there")
	results, err := e.EndUtterance()
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d segments, want 1", len(results))
	}
	seg := results[0]
	if seg.SampleRateHz != 22050 || seg.SampleWidthBytes != 2 || seg.NumChannels != 1 {
		t.Errorf("segment format = %d Hz, %d bytes, %d ch", seg.SampleRateHz, seg.SampleWidthBytes, seg.NumChannels)
	}
	if len(seg.AudioBytes) != 2*len(samples) {
		t.Errorf("segment has %d pcm bytes, want %d", len(seg.AudioBytes), 2*len(samples))
	}

	if lastBody != "hello there" {
		t.Errorf("server received body %q", lastBody)
	}
	query, err := url.ParseQuery(lastRequest.URL.RawQuery)
	if err != nil {
		t.Fatal(err)
	}
	if got := query.Get("voice"); got != "en_US/vctk_low#p239" {
		t.Errorf("voice param = %q", got)
	}
	if query.Has("ssml") {
		t.Error("plain text request should not carry the ssml param")
	}
}

func TestServerEngineSpeakSSML(t *testing.T) {
	wavBytes := buildTestWav(t, []int{1, 2, 3})

	var lastRequest http.Request
	var lastBody string
	srv := newFakeMimic3Server(t, wavBytes, &lastRequest, &lastBody)
	defer srv.Close()

	e := NewServerEngine(srv.URL, Settings{
		LengthScale:       1.2,
		VoicesDirectories: []string{"/x"},
	})
	e.SetVoice("de_DE/thorsten_low")

	ssml := `<speak>hallo</speak>`
	if _, err := e.SpeakSSML(ssml); err != nil {
		t.Fatal(err)
	}
	if lastBody != ssml {
		t.Errorf("server received body %q", lastBody)
	}
	query, _ := url.ParseQuery(lastRequest.URL.RawQuery)
	if query.Get("ssml") != "true" {
		t.Errorf("ssml param = %q, want true", query.Get("ssml"))
	}
	if query.Get("lengthScale") != "1.2" {
		t.Errorf("lengthScale param = %q, want 1.2", query.Get("lengthScale"))
	}
}

func TestServerEnginePreloadVoice(t *testing.T) {
	var lastRequest http.Request
	var lastBody string
	srv := newFakeMimic3Server(t, nil, &lastRequest, &lastBody)
	defer srv.Close()

	e := NewServerEngine(srv.URL, Settings{VoicesDirectories: []string{"/x"}})
	if err := e.PreloadVoice("de_DE/thorsten_low"); err != nil {
		t.Fatalf("PreloadVoice for a listed voice: %v", err)
	}
	if err := e.PreloadVoice("sw/lanfrica_low"); err == nil {
		t.Fatal("PreloadVoice for an unlisted voice should fail")
	}
}

func TestServerEngineErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model exploded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	e := NewServerEngine(srv.URL, Settings{VoicesDirectories: []string{"/x"}})
	e.BeginUtterance()
	e.SpeakText("boom")
	results, err := e.EndUtterance()
	if err == nil {
		t.Fatal("expected an error from a 500 response")
	}
	if results != nil {
		t.Errorf("got %d segments alongside the error", len(results))
	}
	if !strings.Contains(err.Error(), "non-200") || !strings.Contains(err.Error(), "model exploded") {
		t.Errorf("error should carry status and body, got %q", err.Error())
	}
}
