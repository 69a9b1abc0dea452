// fincoach-report prints the financial health report for a CSV file of
// transactions without running the server.
package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var cli reportCmd

func main() {
	kong.Parse(&cli,
		kong.Name("fincoach-report"),
		kong.Description("Categorize a CSV file of transactions and report on budget and financial health."),
		kong.UsageOnError(),
	)

	output := io.Writer(os.Stderr)
	if cli.LogFormat == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stderr}
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	if err := cli.run(os.Stdout); err != nil {
		log.Fatal().Err(err).Str("file", cli.File).Msg("Report")
	}
}
