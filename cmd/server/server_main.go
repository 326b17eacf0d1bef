package main

import (
	"net/http"
	"runtime/debug"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/petrzlen/mimic3-golang/internal/cli"
	"github.com/petrzlen/mimic3-golang/internal/networking"
	"github.com/petrzlen/mimic3-golang/internal/utils"
	"github.com/petrzlen/mimic3-golang/pkg/synthesizer"
	"github.com/petrzlen/mimic3-golang/pkg/voices"
)

var args struct {
	cli.EngineFlags `embed:""`

	Addr string `env:"MIMIC3_ADDR" default:":8081" help:"Address to listen on."`
}

func main() {
	utils.SetupZerolog()

	// Load the .env file
	if err := godotenv.Load(); err != nil {
		log.Warn().Msgf("Cannot load .env file")
	}
	kong.Parse(&args,
		kong.Description("HTTP and WebSocket front for Mimic3 synthesis."),
		kong.UsageOnError(),
	)

	// One directory for both the synthesizer and the voices listing, so a
	// --voice override shows up as the default in /api/voices as well.
	directory := voices.NewDirectory()
	cfg := args.ToConfig()
	cfg.Directory = directory
	tts, err := synthesizer.NewMimic3TTS(cfg)
	ftl(err)

	ttsHandlerFactory := func() networking.WebsocketMessageHandler {
		return networking.NewTTSStreamHandler(tts)
	}

	http.HandleFunc("/api/tts", networking.NewTTSHandlerFunc(tts))
	http.HandleFunc("/api/voices", networking.NewVoicesHandlerFunc(directory))
	http.HandleFunc("/ws", networking.NewWebsocketHandlerFunc(ttsHandlerFactory))

	log.Info().Str("addr", args.Addr).Msg("mimic3 synthesis server listening")
	ftl(http.ListenAndServe(args.Addr, nil))
}

func ftl(err error) {
	if err != nil {
		log.Fatal().Err(err).Msg("sth essential failed")
		debug.PrintStack()
	}
}
