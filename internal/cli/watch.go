package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Interactive session with debounced auto-commit",
	Long: `Read drafts line by line and commit them to history automatically.

Each entered line replaces the current draft and restarts the debounce
timer; a draft left untouched for the debounce interval is committed.
An empty line or end of input commits the pending draft immediately,
the way leaving a text field would.

Example:
  kokoro watch`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	app, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close()

	committer := app.newCommitter(ctx)
	fmt.Fprintf(os.Stderr, "Session %s - type drafts, empty line commits, Ctrl-D ends\n", committer.Session())

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			committer.Flush()
			continue
		}
		committer.Input(line)
	}
	committer.Flush()

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}
