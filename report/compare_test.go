package report

import (
	"bytes"
	"strings"
	"testing"
)

func scenarioWith(files int, cmds map[string]Timing) Scenario {
	return Scenario{Files: files, Commands: cmds}
}

func TestCompareArithmetic(t *testing.T) {
	baseline := Results{
		"small": scenarioWith(301, map[string]Timing{
			"deps": {Mean: 100.0, Sigma: 2.0},
		}),
	}
	candidate := Results{
		"small": scenarioWith(301, map[string]Timing{
			"deps": {Mean: 50.0, Sigma: 1.0},
		}),
	}

	var buf bytes.Buffer
	Compare(&buf, "base.txt", "cand.txt", baseline, candidate)

	output := buf.String()

	if !strings.Contains(output, "-50.0%") {
		t.Errorf("expected -50.0%% change, output:\n%s", output)
	}
	if !strings.Contains(output, "2.00x") {
		t.Errorf("expected 2.00x speedup, output:\n%s", output)
	}
	if !strings.Contains(output, "small (301 files)") {
		t.Errorf("expected scenario header, output:\n%s", output)
	}
}

func TestCompareRegression(t *testing.T) {
	baseline := Results{
		"small": scenarioWith(301, map[string]Timing{
			"lint": {Mean: 50.0},
		}),
	}
	candidate := Results{
		"small": scenarioWith(301, map[string]Timing{
			"lint": {Mean: 100.0},
		}),
	}

	var buf bytes.Buffer
	Compare(&buf, "base.txt", "cand.txt", baseline, candidate)

	output := buf.String()

	if !strings.Contains(output, "+100.0%") {
		t.Errorf("expected +100.0%% change, output:\n%s", output)
	}
	if !strings.Contains(output, "0.50x") {
		t.Errorf("expected 0.50x speedup, output:\n%s", output)
	}
}

func TestCompareZeroCandidate(t *testing.T) {
	baseline := Results{
		"small": scenarioWith(301, map[string]Timing{"deps": {Mean: 10.0}}),
	}
	candidate := Results{
		"small": scenarioWith(301, map[string]Timing{"deps": {Mean: 0.0}}),
	}

	var buf bytes.Buffer
	Compare(&buf, "b", "c", baseline, candidate)

	if !strings.Contains(buf.String(), "0.00x") {
		t.Errorf("expected 0.00x for zero candidate, output:\n%s", buf.String())
	}
}

func TestCompareMissingSide(t *testing.T) {
	baseline := Results{
		"small": scenarioWith(301, map[string]Timing{
			"deps": {Mean: 42.5},
		}),
	}
	candidate := Results{
		"small": scenarioWith(301, map[string]Timing{}),
	}

	var buf bytes.Buffer
	Compare(&buf, "b", "c", baseline, candidate)

	var row string
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.Contains(line, "deps") {
			row = line

			break
		}
	}

	if row == "" {
		t.Fatalf("no deps row in output:\n%s", buf.String())
	}

	fields := strings.Fields(row)
	if len(fields) != 5 {
		t.Fatalf("row fields = %v, want 5 columns", fields)
	}

	if fields[1] != "42.5ms" {
		t.Errorf("baseline cell = %q, want 42.5ms", fields[1])
	}
	for i, cell := range fields[2:] {
		if cell != "-" {
			t.Errorf("cell %d = %q, want placeholder", i+2, cell)
		}
	}
}

func TestCompareScenarioOrdering(t *testing.T) {
	timing := map[string]Timing{"deps": {Mean: 1.0}}

	baseline := Results{
		"aardvark": scenarioWith(10, timing),
		"large":    scenarioWith(3001, timing),
		"small":    scenarioWith(301, timing),
	}
	candidate := Results{
		"medium": scenarioWith(1001, timing),
	}

	var buf bytes.Buffer
	Compare(&buf, "b", "c", baseline, candidate)

	output := buf.String()

	positions := make([]int, 0, 4)
	for _, name := range []string{"small (", "medium (", "large (", "aardvark ("} {
		idx := strings.Index(output, name)
		if idx < 0 {
			t.Fatalf("scenario %q missing from output", name)
		}

		positions = append(positions, idx)
	}

	for i := 1; i < len(positions); i++ {
		if positions[i] < positions[i-1] {
			t.Fatalf("scenario order wrong:\n%s", output)
		}
	}
}

func TestCompareCommandOrdering(t *testing.T) {
	baseline := Results{
		"small": scenarioWith(301, map[string]Timing{
			"zz-custom": {Mean: 1.0},
			"lint":      {Mean: 1.0},
			"deps":      {Mean: 1.0},
			"an-extra":  {Mean: 1.0},
		}),
	}

	var buf bytes.Buffer
	Compare(&buf, "b", "c", baseline, Results{})

	output := buf.String()

	// Preferred commands first, then unknowns alphabetically.
	prev := -1
	for _, cmd := range []string{"deps", "lint", "an-extra", "zz-custom"} {
		idx := strings.Index(output, cmd)
		if idx < 0 {
			t.Fatalf("command %q missing from output", cmd)
		}
		if idx < prev {
			t.Fatalf("command %q out of order:\n%s", cmd, output)
		}

		prev = idx
	}
}

func TestCompareEmptyReports(t *testing.T) {
	var buf bytes.Buffer
	Compare(&buf, "b", "c", Results{}, Results{})

	output := buf.String()

	if !strings.Contains(output, "Benchmark Comparison") {
		t.Error("expected banner even with no data")
	}
	if !strings.Contains(output, "regression") {
		t.Error("expected trailing legend")
	}
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{0.42, "0.42ms"},
		{1.0, "1.0ms"},
		{30.14, "30.1ms"},
		{99.99, "100.0ms"},
		{100.0, "100ms"},
		{1500.4, "1500ms"},
	}

	for _, tt := range tests {
		got := formatTime(tt.input)
		if got != tt.want {
			t.Errorf("formatTime(%v) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
