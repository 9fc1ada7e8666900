package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yumeno/kokoro/internal/history"
	"github.com/yumeno/kokoro/internal/output"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage the analysis history",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored analyses",
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one stored analysis in detail",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyPinCmd = &cobra.Command{
	Use:   "pin <id>",
	Short: "Protect an item from eviction and bulk clear",
	Args:  cobra.ExactArgs(1),
	RunE:  func(cmd *cobra.Command, args []string) error { return runHistoryPin(cmd, args[0], true) },
}

var historyUnpinCmd = &cobra.Command{
	Use:   "unpin <id>",
	Short: "Remove an item's pin",
	Args:  cobra.ExactArgs(1),
	RunE:  func(cmd *cobra.Command, args []string) error { return runHistoryPin(cmd, args[0], false) },
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete one stored analysis",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryDelete,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every unpinned analysis",
	RunE:  runHistoryClear,
}

var historyExportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export the history as a JSON array",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHistoryExport,
}

var historyImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the history from a JSON array",
	Long: `Replace the whole history with the contents of a JSON array file.

Import is all-or-nothing: if any element is missing string-typed id, ts
or fullText fields, the payload is rejected and the current history is
left unchanged.`,
	Args: cobra.ExactArgs(1),
	RunE: runHistoryImport,
}

var historyListLimit int

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyPinCmd)
	historyCmd.AddCommand(historyUnpinCmd)
	historyCmd.AddCommand(historyDeleteCmd)
	historyCmd.AddCommand(historyClearCmd)
	historyCmd.AddCommand(historyExportCmd)
	historyCmd.AddCommand(historyImportCmd)

	historyListCmd.Flags().IntVar(&historyListLimit, "limit", 0, "Maximum number of results (newest kept)")
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	app, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer app.Close()

	items := app.history.Items()
	if historyListLimit > 0 && len(items) > historyListLimit {
		items = items[len(items)-historyListLimit:]
	}
	return output.Output(outputFmt, items)
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	app, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer app.Close()

	item, err := app.history.Get(args[0])
	if err != nil {
		return fmt.Errorf("history item %s: %w", args[0], err)
	}
	return output.Output(outputFmt, &item)
}

func runHistoryPin(cmd *cobra.Command, id string, pinned bool) error {
	ctx := cmd.Context()
	app, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	if err := app.history.SetPinned(id, pinned); err != nil {
		return fmt.Errorf("history item %s: %w", id, err)
	}
	if err := app.saveHistory(ctx); err != nil {
		return err
	}
	if pinned {
		fmt.Printf("Pinned %s\n", id)
	} else {
		fmt.Printf("Unpinned %s\n", id)
	}
	return nil
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	app, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	if err := app.history.Delete(args[0]); err != nil {
		if errors.Is(err, history.ErrPinned) {
			return fmt.Errorf("item %s is pinned; unpin it before deleting", args[0])
		}
		return fmt.Errorf("history item %s: %w", args[0], err)
	}
	if err := app.saveHistory(ctx); err != nil {
		return err
	}
	fmt.Printf("Deleted %s\n", args[0])
	return nil
}

func runHistoryClear(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	app, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	removed := app.history.Clear()
	if err := app.saveHistory(ctx); err != nil {
		return err
	}
	fmt.Printf("Removed %d items (%d pinned kept)\n", removed, app.history.Len())
	return nil
}

func runHistoryExport(cmd *cobra.Command, args []string) error {
	app, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer app.Close()

	data, err := app.history.Export()
	if err != nil {
		return fmt.Errorf("failed to export history: %w", err)
	}
	if len(args) == 0 {
		_, err = os.Stdout.Write(append(data, '\n'))
		return err
	}
	if err := os.WriteFile(args[0], data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", args[0], err)
	}
	fmt.Printf("Exported %d items to %s\n", app.history.Len(), args[0])
	return nil
}

func runHistoryImport(cmd *cobra.Command, args []string) error {
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
	if err := app.history.Import(data); err != nil {
		return fmt.Errorf("import rejected, history unchanged: %w", err)
	}
	if err := app.saveHistory(ctx); err != nil {
		return err
	}
	fmt.Printf("Imported %d items\n", app.history.Len())
	return nil
}
