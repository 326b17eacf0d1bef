package networking

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/petrzlen/mimic3-golang/pkg/models"
	"github.com/petrzlen/mimic3-golang/pkg/synthesizer"
)

// ttsStreamHandler answers "synthesize" events with "audio" (or "error")
// events over one websocket connection. Messages are handled in order, one at
// a time, which also matches the engine doing one utterance at a time.
type ttsStreamHandler struct {
	tts synthesizer.Synthesizer

	readChan  chan []byte
	writeChan chan []byte
}

func NewTTSStreamHandler(tts synthesizer.Synthesizer) *ttsStreamHandler {
	result := &ttsStreamHandler{
		tts:       tts,
		readChan:  make(chan []byte, 100),
		writeChan: make(chan []byte, 100),
	}
	go result.readMessagesUntilChanClosed()
	return result
}

func (th *ttsStreamHandler) GetReader() chan<- []byte {
	return th.readChan
}

func (th *ttsStreamHandler) GetWriter() <-chan []byte {
	return th.writeChan
}

func (th *ttsStreamHandler) readMessagesUntilChanClosed() {
	for msg := range th.readChan {
		th.handleMessage(msg)
	}

	// A closed reader means the connection is gone; closing the writer lets
	// the transport shut the websocket down gracefully.
	close(th.writeChan)
	log.Info().Msg("tts stream finished")
}

func (th *ttsStreamHandler) handleMessage(msg []byte) {
	var message StreamMessage
	err := json.Unmarshal(msg, &message)
	if err != nil {
		// Maybe the client just wrongfully implemented it, or the protocol drifted.
		log.Error().Err(err).Msgf("couldn't decode message from websocket: %s", string(msg))
		th.sendError("", fmt.Sprintf("cannot decode message: %v", err))
		return
	}

	log.Debug().Msgf("received message: %s", string(msg))

	switch message.Event {
	case "synthesize":
		if message.Synthesize == nil {
			th.sendError(message.ID, "synthesize event without a synthesize payload")
			return
		}
		th.handleSynthesizeMessage(message.ID, *message.Synthesize)
	default:
		log.Error().Err(fmt.Errorf("unknown message.Event %s", message.Event)).Msg("")
		th.sendError(message.ID, fmt.Sprintf("unknown event %q", message.Event))
	}
}

func (th *ttsStreamHandler) handleSynthesizeMessage(id string, payload SynthesizePayload) {
	wavBytes, err := th.tts.Synthesize(models.SynthesisRequest{
		Text:     payload.Text,
		Language: payload.Language,
		Voice:    payload.Voice,
		Speaker:  payload.Speaker,
	})
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("cannot synthesize websocket request")
		th.sendError(id, err.Error())
		return
	}

	th.send(StreamMessage{
		Event: "audio",
		ID:    id,
		Audio: &AudioPayload{
			Format:  "wav",
			Payload: base64.StdEncoding.EncodeToString(wavBytes),
		},
	})
}

func (th *ttsStreamHandler) sendError(id string, message string) {
	th.send(StreamMessage{
		Event: "error",
		ID:    id,
		Error: &ErrorPayload{Message: message},
	})
}

func (th *ttsStreamHandler) send(message StreamMessage) {
	raw, err := json.Marshal(message)
	if err != nil {
		log.Error().Err(err).Msg("cannot marshal outgoing stream message")
		return
	}
	log.Debug().Msgf("sending message: %s", truncatePayload(string(raw)))
	th.writeChan <- raw
}
