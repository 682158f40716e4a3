// Command knapsack is a thin console front-end for the bnb solver: it parses
// two parallel number lists and a capacity, runs the search, and reports the
// best value plus the selected labels. All algorithm logic lives in bnb.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/knapsack/bnb"
)

var (
	valuesCSV  string
	weightsCSV string
	labelsCSV  string
	capacity   float64
	timeLimit  time.Duration
	useArena   bool
)

var rootCmd = &cobra.Command{
	Use:   "knapsack",
	Short: "Exact 0-1 knapsack solver (best-first branch-and-bound)",
	Long: `Selects the subset of items with maximum total value whose total weight
stays within --capacity. Values and weights are comma-separated parallel
lists; optional --labels names each item in the report.`,
	Example: `  knapsack --values 15,20,5,25,22,17 --weights 51,60,35,60,53,10 --capacity 150
  knapsack --values 15,20,5 --weights 51,60,35 --capacity 100 --labels api,etl,docs`,
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVar(&valuesCSV, "values", "", "comma-separated item values")
	rootCmd.Flags().StringVar(&weightsCSV, "weights", "", "comma-separated item weights")
	rootCmd.Flags().Float64Var(&capacity, "capacity", 0, "total weight budget")
	rootCmd.Flags().StringVar(&labelsCSV, "labels", "", "optional comma-separated item labels (default: 1..n)")
	rootCmd.Flags().DurationVar(&timeLimit, "time-limit", 0, "soft search budget, e.g. 500ms (0 = unlimited)")
	rootCmd.Flags().BoolVar(&useArena, "arena", false, "use arena decision storage (lower memory on deep trees)")
	_ = rootCmd.MarkFlagRequired("values")
	_ = rootCmd.MarkFlagRequired("weights")
	_ = rootCmd.MarkFlagRequired("capacity")
}

// parseFloats splits a comma-separated list into float64s, trimming spaces.
func parseFloats(csv string) ([]float64, error) {
	parts := strings.Split(csv, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		x, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("bad number %q: %w", p, err)
		}
		out = append(out, x)
	}

	return out, nil
}

// itemLabels returns the label per item: the parsed --labels list, or the
// 1-based index as a string.
func itemLabels(csv string, n int) ([]string, error) {
	if csv == "" {
		labels := make([]string, n)
		for i := range labels {
			labels[i] = strconv.Itoa(i + 1)
		}

		return labels, nil
	}

	labels := strings.Split(csv, ",")
	if len(labels) != n {
		return nil, fmt.Errorf("got %d labels for %d items", len(labels), n)
	}
	for i := range labels {
		labels[i] = strings.TrimSpace(labels[i])
	}

	return labels, nil
}

// pickLabels maps a selection mask back to the labels of included items.
func pickLabels(labels []string, selection []bool) []string {
	picked := make([]string, 0, len(labels))
	for i, taken := range selection {
		if taken {
			picked = append(picked, labels[i])
		}
	}

	return picked
}

func run(cmd *cobra.Command, _ []string) error {
	values, err := parseFloats(valuesCSV)
	if err != nil {
		return fmt.Errorf("--values: %w", err)
	}
	weights, err := parseFloats(weightsCSV)
	if err != nil {
		return fmt.Errorf("--weights: %w", err)
	}
	labels, err := itemLabels(labelsCSV, len(values))
	if err != nil {
		return fmt.Errorf("--labels: %w", err)
	}

	opts := make([]bnb.Option, 0, 2)
	if timeLimit > 0 {
		opts = append(opts, bnb.WithTimeLimit(timeLimit))
	}
	if useArena {
		opts = append(opts, bnb.WithMemoryMode(bnb.SelectionArena))
	}

	res, err := bnb.Solve(values, weights, capacity, opts...)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "best value: %v\n", res.Value)
	fmt.Fprintf(cmd.OutOrStdout(), "items to take: %s\n", strings.Join(pickLabels(labels, res.Selection), ", "))

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
