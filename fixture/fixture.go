// Package fixture generates synthetic TypeScript projects used as input
// fixtures for statik benchmarks. Each project is a directory tree of
// source units wired together by a randomized import/export graph, plus
// a fixed lint-rule configuration file.
package fixture

import (
	"fmt"
	mrand "math/rand"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// dirs is the fixed directory catalog units are distributed across,
// emulating a layered frontend application.
var dirs = []string{
	"src/components", "src/hooks", "src/utils", "src/services", "src/models",
	"src/api", "src/types", "src/pages", "src/middleware", "src/config",
	"src/lib", "src/helpers", "src/store", "src/actions", "src/reducers",
	"src/features/auth", "src/features/dashboard", "src/features/settings",
	"src/features/profile", "src/features/analytics", "src/shared/ui",
	"src/shared/hooks", "src/shared/utils", "src/shared/types",
	"src/core", "src/core/auth", "src/core/api", "src/core/storage",
}

// exts weights .ts over .tsx 3:1.
var exts = []string{".ts", ".ts", ".ts", ".tsx"}

var exportKinds = []string{"function", "const", "class", "interface", "type"}

const (
	entryPath = "src/index.ts"
	rulesPath = ".statik/rules.toml"

	// typeOnlyProb is the chance an import is emitted as import type.
	typeOnlyProb = 0.3

	// maxImportsPerUnit caps the fan-out of any single unit.
	maxImportsPerUnit = 10
)

// lintRules is the fixed policy artifact written to every project. It
// is identical across projects and sizes.
const lintRules = `[[rules]]
id = "no-api-to-ui"
severity = "error"
description = "API layer must not import from UI layer"

[rules.boundary]
from = ["src/api/**"]
deny = ["src/components/**"]

[[rules]]
id = "no-god-modules"
severity = "warning"
description = "Files should not have too many dependencies"

[rules.fan_limit]
pattern = ["src/**"]
max_fan_out = 10
`

// Config controls project generation parameters.
type Config struct {
	NumFiles int
	Seed     int64
}

// Summary contains statistics about a generated project.
type Summary struct {
	UnitsWritten      int
	ReferencesCreated int
	ExportsCreated    int
}

// Generator produces deterministic synthetic projects from a Config.
// Output depends only on the seed and file count, so repeated runs
// yield byte-identical trees.
type Generator struct {
	cfg Config
	rng *mrand.Rand
}

// NewGenerator creates a Generator from the given Config.
func NewGenerator(cfg Config) *Generator {
	return &Generator{
		cfg: cfg,
		rng: mrand.New(mrand.NewSource(cfg.Seed)),
	}
}

// Generate writes a synthetic project under root and returns a Summary.
// The tree contains NumFiles units distributed across the directory
// catalog, one entry unit, and the lint-rule artifact. Filesystem
// errors abort generation and propagate to the caller.
func (g *Generator) Generate(root string) (Summary, error) {
	var summary Summary

	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(root, filepath.FromSlash(d)), 0o755); err != nil {
			return summary, fmt.Errorf("create dir %s: %w", d, err)
		}
	}

	numFiles := max(g.cfg.NumFiles, 0)

	files := make([]string, numFiles)
	for i := range files {
		d := dirs[g.rng.Intn(len(dirs))]
		ext := exts[g.rng.Intn(len(exts))]
		files[i] = path.Join(d, fmt.Sprintf("module%d%s", i, ext))
	}

	maxImports := min(maxImportsPerUnit, numFiles-1)

	for i, fpath := range files {
		var lines []string

		numImports := 0
		if maxImports > 0 {
			numImports = g.rng.Intn(maxImports + 1)
		}

		for _, t := range g.sample(numFiles, numImports, i) {
			spec := importPath(path.Dir(fpath), files[t])
			sym := fmt.Sprintf("thing%d", t)

			if g.rng.Float64() < typeOnlyProb {
				lines = append(lines,
					fmt.Sprintf("import type { %s } from '%s';", sym, spec))
			} else {
				lines = append(lines,
					fmt.Sprintf("import { %s } from '%s';", sym, spec))
			}

			summary.ReferencesCreated++
		}

		numExports := 1 + g.rng.Intn(5)
		for e := 0; e < numExports; e++ {
			lines = append(lines, g.exportLine(i, e))
			summary.ExportsCreated++
		}

		content := strings.Join(lines, "\n") + "\n"
		full := filepath.Join(root, filepath.FromSlash(fpath))

		if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
			return summary, fmt.Errorf("write %s: %w", fpath, err)
		}

		summary.UnitsWritten++
	}

	if err := g.writeEntry(root, files); err != nil {
		return summary, err
	}

	summary.UnitsWritten++

	if err := writeRules(root); err != nil {
		return summary, err
	}

	return summary, nil
}

// writeEntry writes the entry unit, which imports a size-scaled sample
// of all units and exports nothing.
func (g *Generator) writeEntry(root string, files []string) error {
	count := max(20, len(files)/50)

	var b strings.Builder

	for _, t := range g.sample(len(files), count, -1) {
		spec := importPath("src", files[t])
		fmt.Fprintf(&b, "import { thing%d } from '%s';\n", t, spec)
	}

	b.WriteString("console.log('entry');\n")

	full := filepath.Join(root, filepath.FromSlash(entryPath))
	if err := os.WriteFile(full, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", entryPath, err)
	}

	return nil
}

func writeRules(root string) error {
	dir := filepath.Join(root, filepath.Dir(filepath.FromSlash(rulesPath)))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create rules dir: %w", err)
	}

	full := filepath.Join(root, filepath.FromSlash(rulesPath))
	if err := os.WriteFile(full, []byte(lintRules), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", rulesPath, err)
	}

	return nil
}

// sample picks count distinct indices from [0, n), never returning
// skip (pass -1 to allow all). Count clamps to the pool size. The
// selection is a partial Fisher-Yates over an index set, with picked
// values shifted past skip so the excluded index is free.
func (g *Generator) sample(n, count, skip int) []int {
	pool := n
	if skip >= 0 {
		pool--
	}

	count = min(count, pool)
	if count <= 0 {
		return nil
	}

	idx := make([]int, pool)
	for i := range idx {
		idx[i] = i
	}

	for i := 0; i < count; i++ {
		j := i + g.rng.Intn(pool-i)
		idx[i], idx[j] = idx[j], idx[i]
	}

	picked := idx[:count]

	if skip >= 0 {
		for i, v := range picked {
			if v >= skip {
				picked[i] = v + 1
			}
		}
	}

	return picked
}

// exportLine renders one exported symbol. The first export of a unit
// always uses the canonical thing<i> name so imports elsewhere resolve;
// later exports use disambiguated helper names.
func (g *Generator) exportLine(idx, e int) string {
	name := fmt.Sprintf("thing%d", idx)
	if e > 0 {
		name = fmt.Sprintf("helper%d_%d", idx, e)
	}

	switch exportKinds[g.rng.Intn(len(exportKinds))] {
	case "function":
		return fmt.Sprintf("export function %s() { return %d; }", name, idx)
	case "const":
		return fmt.Sprintf("export const %s = %d;", name, idx)
	case "class":
		return fmt.Sprintf("export class %s { value = %d; }", name, idx)
	case "interface":
		return fmt.Sprintf("export interface %s { id: number; }", name)
	default:
		return fmt.Sprintf("export type %s = { id: number };", name)
	}
}

// importPath resolves target relative to fromDir as an import
// specifier: slash-separated, source extension stripped, with an
// explicit ./ prefix when the path does not already start with one.
func importPath(fromDir, target string) string {
	rel, err := filepath.Rel(filepath.FromSlash(fromDir), filepath.FromSlash(target))
	if err != nil {
		rel = target
	}

	rel = filepath.ToSlash(rel)
	rel = strings.TrimSuffix(rel, ".tsx")
	rel = strings.TrimSuffix(rel, ".ts")

	if !strings.HasPrefix(rel, ".") {
		rel = "./" + rel
	}

	return rel
}
