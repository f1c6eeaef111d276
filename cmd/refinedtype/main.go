package main

import (
	"fmt"
	"os"

	"github.com/funvibe/refinedtype/internal/classify"
	"github.com/funvibe/refinedtype/internal/harness"
	"github.com/funvibe/refinedtype/internal/value"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose bool
	noColor bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "refinedtype",
	Short: "Refined runtime type classification",
	Long: `refinedtype labels values with refined types (NaN, Infinity, array, date,
map, set, promise, regexp, null, ...) and summarises collections of them.

Values are written as YAML literals, e.g. '.nan', '[1, 2]', '!regexp /a/g'.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// checkCmd runs the built-in scenario suite
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run the built-in scenario suite",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		suite, err := harness.DefaultSuite()
		if err != nil {
			return err
		}
		colorize := !noColor && harness.ColorEnabled(os.Stdout)
		runner := harness.NewRunner(harness.NewConsoleReporter(cmd.OutOrStdout(), colorize), harness.WithLogger(logger))
		_, err = runner.Run(suite)
		return err
	},
}

// classifyCmd labels each argument
var classifyCmd = &cobra.Command{
	Use:   "classify [value...]",
	Short: "Print the refined type label of each YAML literal",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		vs, err := parseArgs(args)
		if err != nil {
			return err
		}
		for i, l := range classify.ClassifyAll(vs) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", value.Inspect(vs[i]), l)
		}
		return nil
	},
}

// countCmd summarises the arguments as one collection
var countCmd = &cobra.Command{
	Use:   "count [value...]",
	Short: "Group YAML literals by refined type and report homogeneity and uniqueness",
	RunE: func(cmd *cobra.Command, args []string) error {
		vs, err := parseArgs(args)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		table, ok := classify.CountByRefinedType(vs)
		if ok {
			fmt.Fprintln(out, table)
		} else {
			fmt.Fprintln(out, "no values")
		}
		fmt.Fprintf(out, "same native type: %t\n", classify.AllSameNativeType(vs))
		fmt.Fprintf(out, "unique refined types: %t\n", classify.AllUniqueRefinedTypes(vs))
		return nil
	},
}

func parseArgs(args []string) ([]value.Value, error) {
	vs := make([]value.Value, len(args))
	for i, arg := range args {
		v, err := value.FromYAML([]byte(arg))
		if err != nil {
			return nil, fmt.Errorf("argument %d (%q): %w", i+1, arg, err)
		}
		logger.Debug("parsed argument", zap.String("literal", arg), zap.String("value", v.Inspect()))
		vs[i] = v
	}
	return vs, nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable coloured output")
	rootCmd.AddCommand(checkCmd, classifyCmd, countCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
