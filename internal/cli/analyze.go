package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yumeno/kokoro/internal/emotion"
	"github.com/yumeno/kokoro/internal/output"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [text]",
	Short: "Score a text across the five emotion categories",
	Long: `Score a text with the active lexicon and print per-category results.

Reads the text from the argument, or from stdin when no argument is given.

Examples:
  kokoro analyze "会いたいなあ"
  echo "今日はすごく楽しかった！" | kokoro analyze
  kokoro analyze --save "寂しい夜"        # commit the result to history
  kokoro analyze --csv "好きだよ" > out.csv`,
	RunE: runAnalyze,
}

var (
	analyzeSave bool
	analyzeCSV  bool
)

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().BoolVar(&analyzeSave, "save", false, "Commit the result to history")
	analyzeCmd.Flags().BoolVar(&analyzeCSV, "csv", false, "Write scores as CSV (UTF-8 BOM, spreadsheet-compatible)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	text, err := readText(args)
	if err != nil {
		return err
	}

	app, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	res := app.analyze(text)

	if analyzeSave {
		item, dup, err := app.commit(ctx, strings.TrimSpace(text), res)
		if err != nil {
			return fmt.Errorf("failed to commit analysis: %w", err)
		}
		if dup {
			fmt.Fprintln(os.Stderr, "Already in history, not saved again.")
		} else {
			fmt.Fprintf(os.Stderr, "Saved as %s\n", item.ID)
		}
	}

	if analyzeCSV {
		return output.ScoresCSV(os.Stdout, res)
	}

	if err := output.Output(outputFmt, res); err != nil {
		return err
	}

	if outputFmt == "table" || outputFmt == "" {
		printComments(text, res)
	}
	return nil
}

// printComments prints one template comment per leader category.
func printComments(text string, res *emotion.Result) {
	for _, c := range res.Leaders {
		if comment := emotion.Comment(c, res.Normalized[c], text); comment != "" {
			fmt.Printf("%s: %s\n", c.Label(), comment)
		}
	}
}

// readText joins arguments, or reads stdin when none are given.
func readText(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}
