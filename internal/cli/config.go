package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default configuration file",
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	RunE:  runConfigShow,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(home, ".config", "kokoro")
	dataDir := filepath.Join(home, ".local", "share", "kokoro")

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	configFile := filepath.Join(configDir, "config.toml")

	if _, err := os.Stat(configFile); err == nil {
		fmt.Printf("Config file already exists at %s\n", configFile)
		fmt.Println("Use 'kokoro config show' to view current configuration")
		return nil
	}

	if err := os.WriteFile(configFile, []byte(defaultConfig), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Created config file at %s\n", configFile)
	fmt.Println()
	fmt.Println("Try it out:")
	fmt.Println("  kokoro analyze \"会いたいなあ\"")
	fmt.Println("  kokoro analyze --save \"今日はすごく楽しかった！\"")
	fmt.Println("  kokoro history list")
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Println("No config file found. Run 'kokoro config init' to create one.")
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}

	fmt.Printf("# Config file: %s\n\n", configPath)
	fmt.Println(string(data))
	return nil
}

const defaultConfig = `# kokoro configuration

[database]
path = "~/.local/share/kokoro/kokoro.db"

[analysis]
relation_boost = false   # Bonus for relationship-signaling words (feeds affection)
cache_ttl_seconds = 300  # Analysis result cache TTL

[history]
max_retained = 500       # Retention cap; pinned items are never evicted
min_commit_chars = 5     # Minimum trimmed length for an auto-commit
debounce_ms = 600        # Idle time before a draft is committed in watch mode

[growth]
points_per_level = 100   # Points needed per pet growth level
`
