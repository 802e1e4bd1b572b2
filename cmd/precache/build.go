package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"

	"github.com/gophersatwork/precache"
)

type BuildCmd struct {
	Config string `help:"Path to the build configuration file." default:"precache.yaml" type:"existingfile"`
	Output string `help:"Manifest destination, - for stdout." default:"precache-manifest.json"`
}

func (b *BuildCmd) Run() error {
	fileConfig, err := loadConfig(b.Config)
	if err != nil {
		return err
	}

	config, err := fileConfig.toConfig()
	if err != nil {
		return err
	}

	log.Debug().Str("config", b.Config).Str("globDirectory", config.GlobDirectory).Msg("Building manifest")

	result, err := precache.NewBuilder().Build(config)
	if err != nil {
		return err
	}

	for _, warning := range result.Warnings {
		log.Warn().
			Str("url", warning.URL).
			Int64("size", warning.Size).
			Int64("maxSize", warning.MaxSize).
			Msg("Asset skipped, above size limit")
	}

	if b.Output == "-" {
		if err := result.WriteJSON(os.Stdout); err != nil {
			return err
		}
	} else if err := result.WriteFile(afero.NewOsFs(), b.Output); err != nil {
		return err
	}

	log.Info().
		Int("count", result.Count).
		Int64("size", result.Size).
		Str("output", b.Output).
		Msg("Manifest written")
	return nil
}
