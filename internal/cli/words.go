package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rjhall/hangman/internal/words"
)

var wordsAll bool

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Show word list statistics",
	Long: `Prints statistics about the embedded word list the game draws from.
With --all, lists every candidate word (spoilers).`,
	RunE: runWords,
}

func init() {
	wordsCmd.Flags().BoolVar(&wordsAll, "all", false, "list every word")

	rootCmd.AddCommand(wordsCmd)
}

func runWords(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	minLen, maxLen := words.Lengths()
	fmt.Fprintf(out, "words:   %d\n", words.Count())
	fmt.Fprintf(out, "lengths: %d-%d letters\n", minLen, maxLen)

	if wordsAll {
		fmt.Fprintln(out)
		for _, w := range words.List() {
			fmt.Fprintln(out, w)
		}
	}
	return nil
}
