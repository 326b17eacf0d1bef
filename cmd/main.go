package main

import (
	"runtime/debug"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/petrzlen/mimic3-golang/internal/cli"
	"github.com/petrzlen/mimic3-golang/internal/utils"
)

func main() {
	utils.SetupZerolog()

	// Load the .env file
	if err := godotenv.Load(); err != nil {
		log.Warn().Msgf("Cannot load .env file")
	}

	ctx := kong.Parse(&cli.CLI,
		kong.Description("Mimic3 text-to-speech from the command line."),
		kong.UsageOnError(),
	)
	ftl(ctx.Run(&cli.CLI.EngineFlags))
}

func ftl(err error) {
	if err != nil {
		log.Fatal().Err(err).Msg("sth essential failed")
		debug.PrintStack()
	}
}
