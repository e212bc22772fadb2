package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// commandOrder fixes the display order for known statik commands.
// Unrecognized commands sort alphabetically after these.
var commandOrder = []string{
	"index (cold)",
	"deps",
	"deps --transitive",
	"dead-code",
	"cycles",
	"impact",
	"summary",
	"lint",
	"exports",
}

// scenarioRank orders the standard project sizes; other scenario names
// sort alphabetically after them.
var scenarioRank = map[string]int{"small": 0, "medium": 1, "large": 2}

// Compare writes a per-scenario comparison table for two parsed
// reports. Rows missing data on either side render as placeholders
// with change and speedup left uncomputed.
func Compare(w io.Writer, baselinePath, candidatePath string, baseline, candidate Results) {
	rule := strings.Repeat("=", 90)

	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "Benchmark Comparison")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "  Baseline:  %s\n", baselinePath)
	fmt.Fprintf(w, "  Candidate: %s\n", candidatePath)
	fmt.Fprintln(w)

	for _, name := range scenarioNames(baseline, candidate) {
		b := baseline[name]
		c := candidate[name]

		files := "?"
		switch {
		case b.Files > 0:
			files = strconv.Itoa(b.Files)
		case c.Files > 0:
			files = strconv.Itoa(c.Files)
		}

		fmt.Fprintf(w, "  %s (%s files)\n", name, files)
		fmt.Fprintf(w, "  %-22s %12s %12s %12s %10s\n",
			"Command", "Baseline", "Candidate", "Change", "Speedup")
		fmt.Fprintf(w, "  %s\n", strings.Repeat("-", 70))

		for _, cmd := range commandNames(b, c) {
			bt, bok := b.Commands[cmd]
			ct, cok := c.Commands[cmd]

			bStr, cStr := "-", "-"
			changeStr, speedupStr := "-", "-"

			if bok {
				bStr = formatTime(bt.Mean)
			}
			if cok {
				cStr = formatTime(ct.Mean)
			}

			if bok && cok {
				pct := (ct.Mean - bt.Mean) / bt.Mean * 100

				ratio := 0.0
				if ct.Mean > 0 {
					ratio = bt.Mean / ct.Mean
				}

				changeStr = fmt.Sprintf("%+.1f%%", pct)
				speedupStr = fmt.Sprintf("%.2fx", ratio)
			}

			fmt.Fprintf(w, "  %-22s %12s %12s %12s %10s\n",
				cmd, bStr, cStr, changeStr, speedupStr)
		}

		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "  Speedup > 1.0x means the candidate is faster.")
	fmt.Fprintln(w, "  Speedup < 1.0x means the candidate is slower (regression).")
	fmt.Fprintln(w, rule)
}

// scenarioNames returns the union of scenario names in display order:
// small, medium, large, then any others alphabetically.
func scenarioNames(baseline, candidate Results) []string {
	seen := make(map[string]bool)

	var names []string

	for name := range baseline {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	for name := range candidate {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}

	sort.Slice(names, func(i, j int) bool {
		ri := rankScenario(names[i])
		rj := rankScenario(names[j])
		if ri != rj {
			return ri < rj
		}

		return names[i] < names[j]
	})

	return names
}

func rankScenario(name string) int {
	if r, ok := scenarioRank[name]; ok {
		return r
	}

	return len(scenarioRank)
}

// commandNames returns the union of command names from both sides, in
// the fixed preferred order followed by unknowns alphabetically.
func commandNames(b, c Scenario) []string {
	present := make(map[string]bool)

	for cmd := range b.Commands {
		present[cmd] = true
	}
	for cmd := range c.Commands {
		present[cmd] = true
	}

	names := make([]string, 0, len(present))

	for _, cmd := range commandOrder {
		if present[cmd] {
			names = append(names, cmd)
			delete(present, cmd)
		}
	}

	rest := make([]string, 0, len(present))
	for cmd := range present {
		rest = append(rest, cmd)
	}
	sort.Strings(rest)

	return append(names, rest...)
}

// formatTime renders a millisecond duration with precision scaled to
// its magnitude.
func formatTime(ms float64) string {
	switch {
	case ms < 1:
		return fmt.Sprintf("%.2fms", ms)
	case ms < 100:
		return fmt.Sprintf("%.1fms", ms)
	default:
		return fmt.Sprintf("%.0fms", ms)
	}
}
