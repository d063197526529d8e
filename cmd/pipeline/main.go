package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	godotenv.Load()

	if err := Execute(context.Background()); err != nil {
		log.Error().Err(err).Msg("pipeline failed")
		os.Exit(1)
	}
}

// Execute builds the CLI tree and runs it.
func Execute(ctx context.Context) error {
	root := &cobra.Command{
		Use:   "pipeline",
		Short: "TaxDeedFlow deal analysis pipeline",
	}
	root.AddCommand(analyzeCmd(ctx))
	root.AddCommand(thresholdsCmd())
	return root.ExecuteContext(ctx)
}
