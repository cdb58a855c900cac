package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/aligo-labs/aligo-install/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage persistent install defaults",
	Long: `Read and write defaults stored at ~/.aligo-install/config.yaml.
Recognized keys: ` + strings.Join(config.KnownKeys(), ", ") + `.`,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		key, value := args[0], args[1]
		if !config.IsKnownKey(key) {
			fmt.Fprintf(os.Stderr, "warning: %q is not a recognized key (known: %s)\n", key, strings.Join(config.KnownKeys(), ", "))
		}
		if err := config.Set(key, value); err != nil {
			return fail(fmt.Errorf("setting config key %q: %w", key, err))
		}
		fmt.Printf("Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		fmt.Println(config.Get(args[0]))
		return nil
	},
}
