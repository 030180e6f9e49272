package cli

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/jmo-jr/bereia"
)

var (
	conjugateInput  string
	conjugateOutput string
	conjugateDryRun bool
	conjugateLimit  int
)

func init() {
	cmd := &cobra.Command{
		Use:   "conjugate",
		Short: "Recompute the inflected traducao field of the dictionary",
		Long: "Read the Greek dictionary JSON, derive the inflected Portuguese gloss of every " +
			"verbal entry from its desgram tag, and write the result to the output file.",
		Run: runConjugate,
	}
	cmd.Flags().StringVar(&conjugateInput, "input", "src/_data/nt_greek_dict.json", "Source dictionary JSON")
	cmd.Flags().StringVar(&conjugateOutput, "output", "src/_data/nt_greek-pt_dict.json", "Destination dictionary JSON")
	cmd.Flags().BoolVar(&conjugateDryRun, "dry-run", false, "Print example results instead of writing the destination")
	cmd.Flags().IntVar(&conjugateLimit, "limit", 5, "Number of examples shown in dry-run mode")

	RootCmd.AddCommand(cmd)
}

func runConjugate(cmd *cobra.Command, args []string) {
	dict, err := bereia.LoadDictionary(conjugateInput)
	if err != nil {
		log.Fatal().Err(err).Str("input", conjugateInput).Msg("failed to load dictionary")
	}
	log.Debug().Int("entries", dict.Len()).Msg("dictionary loaded")

	bereia.Transform(dict, bereia.New())

	if conjugateDryRun {
		count := 0
		for _, key := range dict.Keys() {
			entry := dict.Entry(key)
			if !strings.HasPrefix(entry.GetString("classegram"), "V") {
				continue
			}
			fmt.Printf("%s: %s\n", key, entry.GetString("traducao"))
			count++
			if count >= conjugateLimit {
				break
			}
		}
		return
	}

	if err := dict.Save(conjugateOutput); err != nil {
		log.Fatal().Err(err).Str("output", conjugateOutput).Msg("failed to write dictionary")
	}
	log.Info().Int("entries", dict.Len()).Str("output", conjugateOutput).Msg("dictionary written")
}
