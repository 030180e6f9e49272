package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/jmo-jr/bereia"
)

func init() {
	cmd := &cobra.Command{
		Use:   "translit <file.html>",
		Short: "Refresh the transliterations of an interlinear HTML file",
		Long: "Recompute the Latin transliteration of every Greek word group in an interlinear " +
			"HTML page and rewrite the anchor titles and texts in place.",
		Args: cobra.ExactArgs(1),
		Run:  runTranslit,
	}
	RootCmd.AddCommand(cmd)
}

func runTranslit(cmd *cobra.Command, args []string) {
	changed, err := bereia.PatchInterlinear(args[0])
	if err != nil {
		log.Fatal().Err(err).Str("file", args[0]).Msg("failed to patch interlinear file")
	}
	log.Info().Int("updates", changed).Str("file", args[0]).Msg("interlinear file processed")
}
