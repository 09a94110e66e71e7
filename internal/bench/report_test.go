package bench

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func sampleResult() *Result {
	return &Result{
		Config: Config{Name: "sample", Capacity: 2, Iterations: 5},
		Ops: []OpResult{
			{Operation: "KeyGen", Total: 5 * time.Millisecond, Mean: time.Millisecond, Min: 800 * time.Microsecond, Max: 1200 * time.Microsecond, N: 5},
			{Operation: "Sign", Total: 10 * time.Millisecond, Mean: 2 * time.Millisecond, Min: 1800 * time.Microsecond, Max: 2200 * time.Microsecond, N: 5},
		},
	}
}

func TestReportJSONRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")

	reporter := NewReporter(FormatJSON, path)
	if err := reporter.Report(sampleResult()); err != nil {
		t.Fatalf("Report: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	var decoded Result
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(decoded.Ops) != 2 {
		t.Fatalf("expected 2 ops, got %d", len(decoded.Ops))
	}
}

func TestReportCSVHasHeaderAndRows(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.csv")

	reporter := NewReporter(FormatCSV, path)
	if err := reporter.Report(sampleResult()); err != nil {
		t.Fatalf("Report: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !bytes.Contains(data, []byte("operation,mean_ns")) {
		t.Fatalf("expected CSV header, got: %s", data)
	}
	if !bytes.Contains(data, []byte("KeyGen")) {
		t.Fatalf("expected KeyGen row, got: %s", data)
	}
}

func TestReportPNGRejectsEmptyOutput(t *testing.T) {
	reporter := NewReporter(FormatPNG, "")
	if err := reporter.Report(sampleResult()); err == nil {
		t.Fatalf("expected error for empty png output path")
	}
}

func TestReportPNGWritesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.png")

	reporter := NewReporter(FormatPNG, path)
	if err := reporter.Report(sampleResult()); err != nil {
		t.Fatalf("Report: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("expected non-empty png file")
	}
}
