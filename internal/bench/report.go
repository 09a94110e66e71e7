package bench

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	chart "github.com/wcharczuk/go-chart/v2"
)

// OutputFormat selects how a Reporter renders a Result.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatCSV  OutputFormat = "csv"
	FormatPNG  OutputFormat = "png"
)

// Reporter writes a benchmark Result to a destination in one of the
// supported formats.
type Reporter struct {
	format OutputFormat
	output string
}

// NewReporter builds a Reporter. output is a file path; an empty string
// means stdout (not valid for FormatPNG, which always needs a file).
func NewReporter(format OutputFormat, output string) *Reporter {
	return &Reporter{format: format, output: output}
}

// Report renders result according to r's configured format.
func (r *Reporter) Report(result *Result) error {
	switch r.format {
	case FormatJSON:
		return r.reportJSON(result)
	case FormatCSV:
		return r.reportCSV(result)
	case FormatPNG:
		return r.reportPNG(result)
	default:
		return r.reportText(result)
	}
}

func (r *Reporter) writer() (io.Writer, func() error, error) {
	if r.output == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(r.output)
	if err != nil {
		return nil, nil, fmt.Errorf("bench: creating %s: %w", r.output, err)
	}
	return f, f.Close, nil
}

func (r *Reporter) reportText(result *Result) error {
	w, closeFn, err := r.writer()
	if err != nil {
		return err
	}
	defer closeFn()

	fmt.Fprintf(w, "Benchmark: %s (capacity=%d, iterations=%d)\n",
		result.Config.Name, result.Config.Capacity, result.Config.Iterations)
	for _, op := range result.Ops {
		fmt.Fprintf(w, "  %-12s mean=%-12s min=%-12s max=%-12s\n",
			op.Operation, op.Mean, op.Min, op.Max)
	}
	return nil
}

func (r *Reporter) reportJSON(result *Result) error {
	w, closeFn, err := r.writer()
	if err != nil {
		return err
	}
	defer closeFn()

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func (r *Reporter) reportCSV(result *Result) error {
	w, closeFn, err := r.writer()
	if err != nil {
		return err
	}
	defer closeFn()

	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"operation", "mean_ns", "min_ns", "max_ns", "n"}); err != nil {
		return err
	}
	for _, op := range result.Ops {
		row := []string{
			op.Operation,
			strconv.FormatInt(op.Mean.Nanoseconds(), 10),
			strconv.FormatInt(op.Min.Nanoseconds(), 10),
			strconv.FormatInt(op.Max.Nanoseconds(), 10),
			strconv.Itoa(op.N),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// reportPNG renders a bar chart of mean operation latency using go-chart.
// An empty output path is rejected: a chart has to land somewhere on disk.
func (r *Reporter) reportPNG(result *Result) error {
	if r.output == "" {
		return fmt.Errorf("bench: png output requires a file path")
	}

	bars := make([]chart.Value, len(result.Ops))
	for i, op := range result.Ops {
		bars[i] = chart.Value{
			Label: op.Operation,
			Value: float64(op.Mean.Microseconds()),
		}
	}

	graph := chart.BarChart{
		Title:      fmt.Sprintf("%s (capacity=%d)", result.Config.Name, result.Config.Capacity),
		TitleStyle: chart.Style{FontSize: 14},
		Height:     512,
		Width:      768,
		YAxis: chart.YAxis{
			Name: "mean latency (us)",
		},
		Bars: bars,
	}

	f, err := os.Create(r.output)
	if err != nil {
		return fmt.Errorf("bench: creating %s: %w", r.output, err)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("bench: rendering chart: %w", err)
	}
	return nil
}
