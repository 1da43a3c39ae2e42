package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gradekit.dev/pkg/gradekit/internal/adapter"
	"gradekit.dev/pkg/gradekit/internal/controller"
	"gradekit.dev/pkg/gradekit/internal/domain"
	m "gradekit.dev/pkg/gradekit/internal/model"
)

var nameFlag string
var classesFlag string
var setupFlag string
var timeoutFlag int
var maxScoreFlag float64
var partialCreditFlag bool

// gradeCmd represents the grade command.
var gradeCmd = newGradeCmd()

const gradeLongDescription = `Grade a submission directory (default: current directory).

The submission is compiled with javac, the configured JUnit test classes
are run with the console runner, and the textual report is parsed,
scored and published to the result sink as one encoded payload.`

func newGradeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grade [dir]",
		Short: "Compile, run and score a submission",
		Long:  gradeLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configureLogger("", viper.GetBool(logVerboseKey))

			workDir := "."
			if len(args) == 1 {
				workDir = args[0]
			}

			cfg := m.GradeConfig{
				Name:          viper.GetString(testNameKey),
				Classes:       m.ParseClasses(viper.GetString(testClassesKey)),
				SetupCommand:  viper.GetString(setupCommandKey),
				WorkDir:       workDir,
				LibDir:        viper.GetString(libPathKey),
				Timeout:       time.Duration(viper.GetInt(runTimeoutKey)) * time.Minute,
				MaxScore:      viper.GetFloat64(scoreMaxKey),
				PartialCredit: viper.GetBool(scorePartialKey),
				ResultPath:    viper.GetString(resultPathKey),
			}

			if len(cfg.Classes) == 0 {
				return fmt.Errorf("no test classes configured (set %s or --%s)", testClassesKey, classesFlagName)
			}

			sink, closeSink, err := adapter.NewSink(cfg.ResultPath)
			if err != nil {
				return err
			}
			defer func() {
				_ = closeSink()
			}()

			// Progress goes to stderr so a stdout sink stays machine-readable.
			interactive := !noTUIFlag && controller.IsTTY(os.Stderr)
			ui := controller.NewUI(cmd.ErrOrStderr(), interactive)

			workflow := domain.NewWorkflow(builder, launcher, sink, ui)

			return workflow.Grade(cmd.Context(), cfg)
		},
	}

	configureGradeFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(gradeCmd)
}

func configureGradeFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&nameFlag, nameFlagName, "n", viper.GetString(testNameKey), "display name for the graded suite")
	bindFlagToConfig(cmd.Flags().Lookup(nameFlagName), testNameKey)

	cmd.Flags().StringVarP(&classesFlag, classesFlagName, "c", viper.GetString(testClassesKey), "comma-separated JUnit test class names")
	bindFlagToConfig(cmd.Flags().Lookup(classesFlagName), testClassesKey)

	cmd.Flags().StringVar(&setupFlag, setupFlagName, viper.GetString(setupCommandKey), "shell command to run before the build")
	bindFlagToConfig(cmd.Flags().Lookup(setupFlagName), setupCommandKey)

	cmd.Flags().IntVarP(&timeoutFlag, timeoutFlagName, "t", viper.GetInt(runTimeoutKey), "timeout in minutes for each external step")
	bindFlagToConfig(cmd.Flags().Lookup(timeoutFlagName), runTimeoutKey)

	cmd.Flags().Float64VarP(&maxScoreFlag, maxFlagName, "m", viper.GetFloat64(scoreMaxKey), "score ceiling for the suite")
	bindFlagToConfig(cmd.Flags().Lookup(maxFlagName), scoreMaxKey)

	cmd.Flags().BoolVarP(&partialCreditFlag, partialFlagName, "p", viper.GetBool(scorePartialKey), "award proportional credit for partially passing suites")
	bindFlagToConfig(cmd.Flags().Lookup(partialFlagName), scorePartialKey)
}
