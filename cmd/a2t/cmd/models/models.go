package models

import (
	"fmt"

	"github.com/spf13/cobra"

	"audio2text/internal/app/model"
)

// Cmd lists the known whisper model tiers. Informational only: transcription
// always runs on the default tier.
var Cmd = &cobra.Command{
	Use:   "models",
	Short: "List known whisper model tiers",
	Long: `List known whisper model tiers from smallest to largest.

Transcription always uses the default tier; the tier cannot be selected on
the command line.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, tier := range model.AllTiers() {
			if tier == model.DefaultModelTier {
				fmt.Fprintf(out, "* %s (default, %s)\n", tier, tier.GGMLFileName())
				continue
			}
			fmt.Fprintf(out, "  %s (%s)\n", tier, tier.GGMLFileName())
		}
		return nil
	},
}
