package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/vasalvit/sprite"
)

var (
	// Flags override the environment configuration.
	iconsDir = flag.String("in", "", "Icons source directory")
	output   = flag.String("out", "", "Sprite output file")
)

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()

	flag.Parse()

	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("sprite generation failed")
	}
}

func run() error {
	cfg, err := sprite.LoadConfig()
	if err != nil {
		return err
	}
	if *iconsDir != "" {
		cfg.IconsDir = *iconsDir
	}
	if *output != "" {
		cfg.Output = *output
	}

	gen := sprite.NewGenerator(cfg.IconsDir, cfg.Output, log.Logger)
	stats, err := gen.Run()
	if err != nil {
		return err
	}

	log.Info().
		Int("icons", stats.Packed).
		Int("skipped", stats.Skipped).
		Int("failed", stats.Failed).
		Str("output", cfg.Output).
		Str("size", fmt.Sprintf("%.2f KB", float64(stats.Bytes)/1024)).
		Msg("sprite written")

	fmt.Printf("\nUsage example:\n  <svg width=\"24\" height=\"24\">\n    <use href=\"%s#icon-name\"/>\n  </svg>\n", cfg.Output)
	return nil
}
