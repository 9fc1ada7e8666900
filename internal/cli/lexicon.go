package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yumeno/kokoro/internal/emotion"
)

var lexiconCmd = &cobra.Command{
	Use:   "lexicon",
	Short: "Manage the scoring lexicon",
}

var lexiconShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the active lexicon in the exchange format",
	RunE:  runLexiconShow,
}

var lexiconExportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write the active lexicon to a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE:  runLexiconExport,
}

var lexiconImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the active lexicon from a JSON file",
	Long: `Replace the active lexicon with the contents of a JSON file.

The file must be an object with exactly the five category keys
(affection, longing, joy, loneliness, anxiety), each mapping to an
array of {term, weight?, categories?} entries. Anything else is
rejected wholesale and the current lexicon stays active.`,
	Args: cobra.ExactArgs(1),
	RunE: runLexiconImport,
}

var lexiconResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the built-in default lexicon",
	RunE:  runLexiconReset,
}

func init() {
	rootCmd.AddCommand(lexiconCmd)
	lexiconCmd.AddCommand(lexiconShowCmd)
	lexiconCmd.AddCommand(lexiconExportCmd)
	lexiconCmd.AddCommand(lexiconImportCmd)
	lexiconCmd.AddCommand(lexiconResetCmd)
}

func runLexiconShow(cmd *cobra.Command, args []string) error {
	app, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer app.Close()

	data, err := app.lexicon.Encode()
	if err != nil {
		return fmt.Errorf("failed to encode lexicon: %w", err)
	}
	fmt.Printf("# lexicon %s\n", app.lexicon.Fingerprint())
	_, err = os.Stdout.Write(append(data, '\n'))
	return err
}

func runLexiconExport(cmd *cobra.Command, args []string) error {
	app, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer app.Close()

	data, err := app.lexicon.Encode()
	if err != nil {
		return fmt.Errorf("failed to encode lexicon: %w", err)
	}
	if err := os.WriteFile(args[0], data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", args[0], err)
	}
	fmt.Printf("Exported lexicon %s to %s\n", app.lexicon.Fingerprint(), args[0])
	return nil
}

func runLexiconImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	app, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	lx, err := emotion.DecodeLexicon(data)
	if err != nil {
		return fmt.Errorf("import rejected, lexicon unchanged: %w", err)
	}
	if err := app.db.SaveLexicon(ctx, lx); err != nil {
		return err
	}
	fmt.Printf("Imported lexicon %s\n", lx.Fingerprint())
	return nil
}

func runLexiconReset(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	app, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	if err := app.db.ResetLexicon(ctx); err != nil {
		return err
	}
	fmt.Printf("Restored built-in lexicon %s\n", emotion.DefaultLexicon().Fingerprint())
	return nil
}
