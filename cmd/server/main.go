package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	clilib "github.com/urfave/cli/v2"

	"codefolio.dev/internal/config"
	"codefolio.dev/internal/handlers"
)

func main() {
	// Best effort; a missing .env is fine.
	_ = godotenv.Load()

	app := &clilib.App{
		Name:  "codefolio",
		Usage: "Personal portfolio server with a project catalog and source viewer",
		Flags: []clilib.Flag{
			&clilib.IntFlag{
				Name:    "port",
				Usage:   "port to listen on",
				Value:   8080,
				EnvVars: []string{"PORT"},
			},
			&clilib.BoolFlag{
				Name:    "debug",
				Usage:   "enable debug logging and live reload",
				EnvVars: []string{"DEBUG"},
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *clilib.Context) error {
	debug := c.Bool("debug")
	logger := newLogger(debug)

	cfg := config.Load(c.Int("port"), debug)
	router := handlers.SetupRoutes(cfg, &logger)

	logger.Info().
		Str("addr", cfg.Addr).
		Int("projects", len(cfg.Projects.Projects)).
		Bool("debug", debug).
		Msg("starting portfolio server")

	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		logger.Error().Err(err).Msg("server stopped")
		return err
	}

	return nil
}

// newLogger builds the process logger: pretty console output in debug mode,
// JSON lines otherwise.
func newLogger(debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	var logger zerolog.Logger
	if debug {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		logger = zerolog.New(os.Stderr)
	}

	return logger.Level(level).With().Timestamp().Logger()
}
