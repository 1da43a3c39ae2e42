// Package cmd provides the root command and CLI setup for gradekit.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gradekit.dev/pkg/gradekit/internal/adapter"
)

var commandRunner adapter.CommandRunner
var builder adapter.Builder
var launcher adapter.TestLauncher

// libPathFlag is a root-level flag shared by the build and run steps.
var libPathFlag string

// resultPathFlag selects the sink target file; empty means stdout.
var resultPathFlag string

// noTUIFlag disables the interactive progress display.
var noTUIFlag bool

// verboseFlag raises the log level to debug.
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	commandRunner = adapter.NewLocalCommandRunner()
	builder = adapter.NewJavacBuilder(commandRunner)
	launcher = adapter.NewJUnitLauncher(commandRunner)
}

const rootLongDescription = `Gradekit compiles a student submission, runs a JUnit test suite against
it, and turns the runner's textual report into a scored, structured
grading result for the configured result sink.

Configuration is read from gradekit.yaml in the working directory and
from GRADEKIT_* environment variables; flags override both.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gradekit",
		Short: "JUnit submission grading harness",
		Long:  rootLongDescription,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&libPathFlag, libFlagName, "l",
			viper.GetString(libPathKey),
			"directory with jars for the compile and run classpath",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(libFlagName), libPathKey)

	cmd.PersistentFlags().StringVarP(&resultPathFlag, resultFlagName, "o", viper.GetString(resultPathKey), "file for the encoded result payload (default stdout)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(resultFlagName), resultPathKey)

	cmd.PersistentFlags().BoolVar(&noTUIFlag, noTUIFlagName, false, "disable the interactive progress display")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "enable debug logging")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
