package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-dotenv-flow/internal/app"
	"github.com/MKhiriev/go-dotenv-flow/internal/config"
	"github.com/MKhiriev/go-dotenv-flow/internal/logger"
	"github.com/MKhiriev/go-dotenv-flow/internal/notify"
	"github.com/MKhiriev/go-dotenv-flow/internal/utils"
	"github.com/MKhiriev/go-dotenv-flow/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "dotenv-flow: error getting configs: %v\n", err)
		os.Exit(2)
	}

	mode := cfg.Notify.Mode()
	log := logger.NewLogger("dotenv-flow", logger.Options{
		Level: logLevel(mode),
		JSON:  cfg.Notify.LogJSON,
	}).WithRunID(utils.NewRunIDGenerator().Generate())

	log.Debug().Object("build", models.NewBuildInfo(buildVersion, buildDate, buildCommit)).Msg("build info")

	var clipboard app.Clipboard
	if cfg.Output.Copy {
		clipboard = app.SystemClipboard()
	}

	if err = app.NewApp(cfg, log, os.Stdout, os.Environ(), clipboard).Run(); err != nil {
		// hard failures are reported in every mode
		log.Error().Err(err).Msg("dotenv-flow run error")
		os.Exit(1)
	}
}

func logLevel(mode notify.Mode) zerolog.Level {
	switch mode {
	case notify.Diagnostic:
		return zerolog.DebugLevel
	case notify.Silent:
		return zerolog.ErrorLevel
	default:
		return zerolog.WarnLevel
	}
}
