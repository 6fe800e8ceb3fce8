package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/geoproof"
	"github.com/npillmayer/geoproof/parse"
	"github.com/npillmayer/geoproof/solver"
	"github.com/npillmayer/geoproof/statement"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "geoproof",
	Short: "A DD+AR solver for plane geometry problems",
	Long: `Welcome to geoproof

geoproof reads plane-geometry problems (points with coordinates,
hypotheses, goals) and tries to derive the goals by forward saturation,
interleaving a catalog of deduction rules with four algebraic-reasoning
tables (lengths, squared lengths, ratios, angles).

Problems are read from the input files, or from standard input when no
file is given.

`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called exactly once by geoproof.main().
func Execute() {
	if rootCmd.Execute() != nil {
		geoproof.Exit(1)
	}
}

func init() {
	rootCmd.Run = runGeoproofCmd
	cobra.OnInitialize(loadConfig)
	// persistent flags which will be global for the application
	rootCmd.PersistentFlags().String("mode", "ddar", "Operation mode, one of `ddar`, `match`")
	rootCmd.PersistentFlags().Bool("use-json", false, "Use JSON for output")
	rootCmd.PersistentFlags().Bool("err-on-failure", false,
		"Exit with nonzero return code if failed to solve the problem")
	rootCmd.PersistentFlags().Bool("disable-ar-dist", false, "Disable AR table for length chasing")
	rootCmd.PersistentFlags().Bool("disable-ar-squared", false,
		"Disable AR table for squared length chasing")
	rootCmd.PersistentFlags().Bool("enable-ar-sin", false, "Enable use of sines")
	rootCmd.PersistentFlags().Bool("disable-eqn-statements", false,
		"Disable theorems with equations as hypotheses/conclusions")
	rootCmd.PersistentFlags().String("logfile", "stderr", "URL of log output location")
	rootCmd.PersistentFlags().String("log-level", "Info", "Minimum logging severity")
}

func solverConfig() *solver.Config {
	config := solver.DefaultConfig()
	flags := rootCmd.PersistentFlags()
	if b, err := flags.GetBool("disable-ar-dist"); err == nil && b {
		config.ARDist = false
	}
	if b, err := flags.GetBool("disable-ar-squared"); err == nil && b {
		config.ARSquared = false
	}
	if b, err := flags.GetBool("enable-ar-sin"); err == nil && b {
		config.ARSin = true
	}
	if b, err := flags.GetBool("disable-eqn-statements"); err == nil && b {
		config.EqnStatements = false
	}
	if b, err := flags.GetBool("err-on-failure"); err == nil {
		config.ErrOnFailure = b
	}
	if b, err := flags.GetBool("use-json"); err == nil {
		config.UseJSON = b
	}
	if m, err := flags.GetString("mode"); err == nil {
		switch m {
		case "ddar":
			config.Mode = solver.ModeDDAR
		case "match":
			config.Mode = solver.ModeMatch
		default:
			fmt.Fprintf(os.Stderr, "unknown mode %q\n", m)
			geoproof.Exit(1)
		}
	}
	return config
}

func runGeoproofCmd(cmd *cobra.Command, args []string) {
	config := solverConfig()
	tracer().Infof("operating in mode %s", config.Mode)

	if len(args) == 0 {
		tracer().Infof("parsing stdin")
		geoproof.Exit(runFile(config, os.Stdin))
	}
	for _, file := range args {
		tracer().Infof("parsing file %s", file)
		input, err := os.Open(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cannot open %s: %v\n", file, err)
			geoproof.Exit(1)
		}
		ret := runFile(config, input)
		input.Close()
		if ret != 0 {
			geoproof.Exit(ret)
		}
	}
	geoproof.Exit(0)
}

func runFile(config *solver.Config, input io.Reader) int {
	prob, err := parse.Problem(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse error: %v\n", err)
		return 1
	}
	switch config.Mode {
	case solver.ModeDDAR:
		return runDDAR(prob, config)
	case solver.ModeMatch:
		return matchTheorems(prob, config)
	}
	return 0
}

func runDDAR(prob *solver.Problem, config *solver.Config) int {
	tracer().Infof("start initialization")
	for _, goal := range prob.Goals {
		if !statement.CheckNumerically(goal) {
			fmt.Fprintf(os.Stderr, "%s failed numerical checks, aborting\n", goal)
			return 1
		}
	}
	s, err := solver.NewSolver(prob, config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "solver error: %v\n", err)
		return 1
	}
	tracer().Infof("matched %d theorems", s.NumTheorems())
	tracer().Infof("running DD+AR")
	solved, err := s.Run(solver.MaxLevels)
	if err != nil {
		fmt.Fprintf(os.Stderr, "solver error: %v\n", err)
		return 1
	}
	if config.UseJSON {
		if err := s.PrintJSON(os.Stdout); err != nil {
			return 1
		}
	} else {
		if err := s.PrintProof(os.Stdout); err != nil {
			return 1
		}
	}
	if !solved {
		tracer().Infof("failed to solve the problem")
		if config.ErrOnFailure {
			return 2
		}
	}
	return 0
}

func matchTheorems(prob *solver.Problem, config *solver.Config) int {
	theorems := solver.MatchTheorems(prob.Geometry, config)
	tracer().Infof("matched %d theorems", len(theorems))
	if err := solver.PrintTheorems(os.Stdout, theorems, config.UseJSON); err != nil {
		return 1
	}
	return 0
}
