package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"audio2text/cmd/a2t/cmd/models"
	"audio2text/cmd/a2t/cmd/version"
	"audio2text/internal/app"
)

var Verbose bool

// rootCmd carries the transcription run itself: one positional audio file
// path, transcript on stdout.
var rootCmd = &cobra.Command{
	Use:   "a2t <audio_file_path>",
	Short: "Transcribe a single audio file to text",
	Long: `Transcribe a single audio file to text.

- Checks that the audio file exists
- Hands it to the configured speech-recognition provider (whisper.cpp binary,
  OpenAI API, or a whisper-server instance, selected via A2T_PROVIDER)
- Prints the trimmed transcript to standard output

The model tier is fixed to "base"; see 'a2t models'.`,
	Args:                  cobra.ArbitraryArgs,
	DisableFlagsInUseLine: true,
	SilenceUsage:          true,
	SilenceErrors:         true,
	Run: func(cmd *cobra.Command, args []string) {
		runner := app.InitializeRunner(cmd.OutOrStdout(), Verbose)
		if status := runner.Run("a2t", args); status != 0 {
			os.Exit(status)
		}
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(version.Cmd)
	rootCmd.AddCommand(models.Cmd)

	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "V", false, "verbose output")
}
