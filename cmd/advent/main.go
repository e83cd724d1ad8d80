// Command advent runs the daily puzzle solvers.
//
//	advent day7                     # solve day 7 against ./input.txt
//	advent day7 --input path.txt    # solve day 7 against a given file
//	advent all --dir inputs         # solve every day from inputs/dayN.txt
//	advent all --dir inputs --answers answers.yaml
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/adventkit/solve"
)

var (
	// Global flags
	verbose   bool
	inputPath string
	inputDir  string
	answers   string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "advent",
	Short: "advent - daily puzzle runner",
	Long: `advent runs the daily puzzle solvers.

Each day reads one small text input and prints two answers:

  Part 1: <answer>
  Part 2: <answer>

Use "advent dayN" for a single day, or "advent all" to sweep a
directory of inputs and optionally check them against an answers file.`,
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

// allCmd sweeps a directory of inputs across every registered day.
var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Run every day against --dir, optionally checking --answers",
	Long: `Runs every registered day against <dir>/dayN.txt. Days whose input
file is missing are skipped.

With --answers, results are compared against a YAML map:

  day1:
    part1: "1030"
    part2: "4174"

and the command exits nonzero on any mismatch.`,
	RunE: runAll,
}

// runDay solves one day and prints the two answers.
func runDay(day solve.Day, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	logger.Debug("solving", zap.Int("day", day.N), zap.String("name", day.Name), zap.String("input", path))
	sol, err := day.Run(f)
	if err != nil {
		return fmt.Errorf("day %d (%s): %w", day.N, day.Name, err)
	}
	fmt.Printf("Part 1: %s\n", sol.Part1)
	fmt.Printf("Part 2: %s\n", sol.Part2)
	return nil
}

// runAll implements the sweep: solve each day, then check answers.
func runAll(cmd *cobra.Command, args []string) error {
	var expected map[string]solve.Solution
	if answers != "" {
		raw, err := os.ReadFile(answers)
		if err != nil {
			return fmt.Errorf("read answers: %w", err)
		}
		if err := yaml.Unmarshal(raw, &expected); err != nil {
			return fmt.Errorf("parse answers: %w", err)
		}
	}

	mismatches := 0
	for _, day := range solve.Days() {
		path := filepath.Join(inputDir, fmt.Sprintf("day%d.txt", day.N))
		f, err := os.Open(path)
		if errors.Is(err, os.ErrNotExist) {
			logger.Debug("no input, skipping", zap.Int("day", day.N), zap.String("path", path))
			continue
		}
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}

		sol, err := day.Run(f)
		_ = f.Close()
		if err != nil {
			return fmt.Errorf("day %d (%s): %w", day.N, day.Name, err)
		}
		fmt.Printf("day %d (%s): Part 1: %s, Part 2: %s\n", day.N, day.Name, sol.Part1, sol.Part2)

		if expected == nil {
			continue
		}
		want, ok := expected[fmt.Sprintf("day%d", day.N)]
		if !ok {
			continue
		}
		if want != sol {
			mismatches++
			fmt.Printf("day %d (%s): MISMATCH: want Part 1: %s, Part 2: %s\n",
				day.N, day.Name, want.Part1, want.Part2)
		}
	}
	if mismatches > 0 {
		return fmt.Errorf("%d day(s) mismatched the answers file", mismatches)
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	// One subcommand per registered day, all sharing the --input flag.
	for _, day := range solve.Days() {
		day := day
		dayCmd := &cobra.Command{
			Use:   fmt.Sprintf("day%d", day.N),
			Short: fmt.Sprintf("Solve day %d (%s)", day.N, day.Name),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runDay(day, inputPath)
			},
		}
		dayCmd.Flags().StringVar(&inputPath, "input", "input.txt", "Input file to solve")
		rootCmd.AddCommand(dayCmd)
	}

	allCmd.Flags().StringVar(&inputDir, "dir", ".", "Directory holding dayN.txt inputs")
	allCmd.Flags().StringVar(&answers, "answers", "", "YAML file of expected answers")
	rootCmd.AddCommand(allCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
