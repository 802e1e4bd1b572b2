package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	version = "dev"
	cli     struct {
		Build   BuildCmd `cmd:"" help:"Generate a precache manifest"`
		Debug   bool     `help:"Enable debug logging."`
		Version kong.VersionFlag
	}
)

func main() {
	cmd := kong.Parse(&cli,
		kong.Name("precache"),
		kong.Description("Build-time precache manifest generator."),
		kong.Vars{
			"version": version,
		})
	setupLogging(cli.Debug)
	err := cmd.Run()
	cmd.FatalIfErrorf(err)
}

func setupLogging(debug bool) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}
