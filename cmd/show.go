package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// configCmd represents the config command.
var configCmd = newConfigCmd()

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long:  "Print the merged configuration (defaults, gradekit.yaml, environment, flags) as YAML.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := yaml.Marshal(viper.AllSettings())
			if err != nil {
				return fmt.Errorf("marshal configuration: %w", err)
			}

			cmd.Print(string(data))

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(configCmd)
}
