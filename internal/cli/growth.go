package cli

import (
	"github.com/spf13/cobra"

	"github.com/yumeno/kokoro/internal/output"
)

var growthCmd = &cobra.Command{
	Use:   "growth",
	Short: "Show the pet growth level",
	Long: `Show the pet growth level fed by committed analyses.

Every saved analysis awards points proportional to its total normalized
score; levels advance linearly with accumulated points.`,
	RunE: runGrowth,
}

func init() {
	rootCmd.AddCommand(growthCmd)
}

func runGrowth(cmd *cobra.Command, args []string) error {
	app, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer app.Close()

	into, step := app.growth.Progress()
	status := &output.GrowthStatus{
		Level:   app.growth.Level(),
		Points:  app.growth.State().Points,
		Into:    into,
		Step:    step,
		Commits: app.growth.State().Commits,
	}
	return output.Output(outputFmt, status)
}
