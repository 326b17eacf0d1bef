package networking

import (
	"fmt"
	"regexp"
)

// StreamMessage is the envelope for all websocket events of the TTS stream,
// both directions. Exactly one payload pointer is set, matching Event.
type StreamMessage struct {
	// Event is either of "synthesize", "audio" or "error".
	Event string `json:"event"`
	// ID is an opaque client-chosen correlation id, echoed back in responses.
	ID string `json:"id,omitempty"`

	Synthesize *SynthesizePayload `json:"synthesize,omitempty"`
	Audio      *AudioPayload      `json:"audio,omitempty"`
	Error      *ErrorPayload      `json:"error,omitempty"`
}

// SynthesizePayload is one utterance to render. Language, Voice and Speaker
// are optional; empty means the server-side default.
type SynthesizePayload struct {
	Text     string `json:"text"`
	Language string `json:"lang,omitempty"`
	Voice    string `json:"voice,omitempty"`
	Speaker  string `json:"speaker,omitempty"`
}

// AudioPayload carries one rendered utterance back to the client.
type AudioPayload struct {
	Format string `json:"format"`
	// Payload is the base64 encoded WAV file.
	Payload string `json:"payload"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

// truncatePayload shortens the "payload" field in a JSON string to the first
// 100 characters, for logging. A base64 WAV easily runs to hundreds of KBs.
func truncatePayload(jsonStr string) string {
	re := regexp.MustCompile(`"payload":\s*"(.*?)"`)
	return re.ReplaceAllStringFunc(jsonStr, func(m string) string {
		matches := re.FindStringSubmatch(m)
		if len(matches) > 1 {
			payload := matches[1]
			if len(payload) > 100 {
				return fmt.Sprintf(`"payload": "%.100s ... (truncated)"`, payload)
			}
		}
		return m
	})
}
