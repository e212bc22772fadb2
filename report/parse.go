// Package report parses hyperfine-style timing reports and renders
// baseline/candidate comparison tables.
package report

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// Timing is one measured command, normalized to milliseconds.
type Timing struct {
	Mean  float64
	Sigma float64
}

// Scenario groups the timings recorded under one project header.
type Scenario struct {
	Files    int
	Commands map[string]Timing
}

// Results maps scenario names to their recorded timings.
type Results map[string]Scenario

var (
	// "Project: small (301 files)"
	scenarioRe = regexp.MustCompile(`Project:\s+(\w+)\s+\((\d+)\s+files\)`)
	// "--- deps ---"
	commandRe = regexp.MustCompile(`^---\s+(.+?)\s+---$`)
	// "Time (mean +/- s):  30.1 ms +/- 1.2 ms". The separator may be
	// ASCII +/- or a Unicode plus-minus glyph, including the mangled
	// two-byte form some terminals log.
	timingRe = regexp.MustCompile(
		`Time\s+\(mean\s*.*?\):\s+(\d+\.?\d*)\s*(ms|s)\s*(?:\+/?-|Â?±)\s*(\d+\.?\d*)\s*(ms|s)`)
)

type lineKind int

const (
	lineOther lineKind = iota
	lineScenario
	lineCommand
	lineTiming
)

// lineEvent is the classified form of one report line.
type lineEvent struct {
	kind   lineKind
	name   string
	files  int
	timing Timing
}

// Parse reads a timing report into Results. The parser tracks the most
// recently seen scenario and command headers; a timing line is recorded
// only when both are set, and the command resets after each recorded
// timing so a repeated header cannot claim a later measurement. Lines
// matching no known pattern are skipped.
func Parse(r io.Reader) Results {
	results := Results{}

	var scenario, command string

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		ev := classify(strings.TrimSpace(sc.Text()))

		switch ev.kind {
		case lineScenario:
			scenario = ev.name
			if _, ok := results[scenario]; !ok {
				results[scenario] = Scenario{
					Files:    ev.files,
					Commands: make(map[string]Timing),
				}
			}

		case lineCommand:
			command = ev.name

		case lineTiming:
			if scenario == "" || command == "" {
				continue
			}

			results[scenario].Commands[command] = ev.timing
			command = ""
		}
	}

	return results
}

// ParseFile parses the report at path. A missing or unreadable file is
// treated the same as an empty report: benchmark logs are frequently
// partial, and absent data renders as placeholders downstream.
func ParseFile(path string) Results {
	f, err := os.Open(path)
	if err != nil {
		return Results{}
	}
	defer f.Close()

	return Parse(f)
}

func classify(line string) lineEvent {
	if m := scenarioRe.FindStringSubmatch(line); m != nil {
		files, _ := strconv.Atoi(m[2])

		return lineEvent{kind: lineScenario, name: m[1], files: files}
	}

	if m := commandRe.FindStringSubmatch(line); m != nil {
		return lineEvent{kind: lineCommand, name: m[1]}
	}

	if m := timingRe.FindStringSubmatch(line); m != nil {
		mean, _ := strconv.ParseFloat(m[1], 64)
		sigma, _ := strconv.ParseFloat(m[3], 64)

		if m[2] == "s" {
			mean *= 1000
		}
		if m[4] == "s" {
			sigma *= 1000
		}

		return lineEvent{kind: lineTiming, timing: Timing{Mean: mean, Sigma: sigma}}
	}

	return lineEvent{kind: lineOther}
}
