package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "vocab",
	Short: "Vocabulary learning tracker for kids",
	Long: `A spaced-repetition vocabulary tracker: pick books, learn a daily
batch of new words, review on the forgetting curve, and quiz what stuck.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
