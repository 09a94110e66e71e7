// Command spseqbench runs timing benchmarks for the spseq library's core
// operations.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/brave-experiments/go-sps-eq/internal/bench"
)

func main() {
	name := flag.String("name", "default", "name of the benchmark run")
	capacity := flag.Int("capacity", 10, "signature capacity (message vector length)")
	iterations := flag.Int("iterations", 100, "number of iterations per operation")
	output := flag.String("output", "", "output file path (empty for stdout; required for png)")
	format := flag.String("format", "text", "output format: text, json, csv, png")

	flag.Parse()

	config := bench.Config{
		Name:       *name,
		Capacity:   *capacity,
		Iterations: *iterations,
	}

	if config.Capacity < 1 {
		fmt.Fprintln(os.Stderr, "error: -capacity must be at least 1")
		os.Exit(1)
	}
	if config.Iterations < 1 {
		fmt.Fprintln(os.Stderr, "error: -iterations must be at least 1")
		os.Exit(1)
	}

	runner := bench.NewRunner(config)

	fmt.Println("Running spseq benchmarks...")
	result, err := runner.RunAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error running benchmarks: %v\n", err)
		os.Exit(1)
	}

	reporter := bench.NewReporter(bench.OutputFormat(strings.ToLower(*format)), *output)
	if err := reporter.Report(result); err != nil {
		fmt.Fprintf(os.Stderr, "error reporting results: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Benchmarks completed.")
}
