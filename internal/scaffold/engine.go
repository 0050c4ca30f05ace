// Package scaffold materializes runnable hardhat project directories from
// registry definitions. Generation is deliberately always-refresh: directory
// creation is idempotent, but file contents are rewritten on every call so
// generated output stays in sync with the registry. Repeated generation is
// the normal workflow, not an error.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cinderworks/solgen/internal/registry"
)

// Engine generates example projects under OutputDir from Registry entries.
type Engine struct {
	Registry  *registry.Registry
	OutputDir string
	Renderer  TemplateRenderer
}

// New returns an Engine with the default textual renderer.
func New(reg *registry.Registry, outputDir string) *Engine {
	return &Engine{Registry: reg, OutputDir: outputDir, Renderer: NewTextRenderer()}
}

// Failure records one item that could not be generated during a batch sweep.
type Failure struct {
	Item string
	Err  error
}

// Result reports the paths written by a generation call and, for batch
// operations, the items that failed.
type Result struct {
	CreatedPaths []string
	Failures     []Failure
}

// GenerateExample scaffolds a single example project from its full registry
// definition. The name must resolve via the registry; unknown names return
// the registry's *UnknownExampleError unchanged.
//
// Existing files are overwritten; see the package comment for why.
func (e *Engine) GenerateExample(name string) (*Result, error) {
	def, err := e.Registry.Example(name)
	if err != nil {
		return nil, err
	}

	paths, err := e.generateProject(e.OutputDir, specFromDefinition(def))
	if err != nil {
		return nil, err
	}
	return &Result{CreatedPaths: paths}, nil
}

// GenerateCategory scaffolds every example the category references, in the
// category's declared order, then writes the category README.md and INDEX.md.
// Refs without a full definition get a synthesized skeleton project. The
// first filesystem error aborts the call; batch tolerance lives one level up
// in GenerateAll.
func (e *Engine) GenerateCategory(name string) (*Result, error) {
	cat, err := e.Registry.Category(name)
	if err != nil {
		return nil, err
	}

	catDir := filepath.Join(e.OutputDir, cat.Name)
	var created []string
	for _, ref := range cat.Examples {
		spec := e.specForRef(cat.Name, ref)
		paths, err := e.generateProject(catDir, spec)
		if err != nil {
			return nil, fmt.Errorf("example %q: %w", ref.Name, err)
		}
		created = append(created, paths...)
	}

	readme := filepath.Join(catDir, "README.md")
	if err := writeFile(readme, renderCategoryReadme(cat)); err != nil {
		return nil, err
	}
	created = append(created, readme)

	index := filepath.Join(catDir, "INDEX.md")
	if err := writeFile(index, renderCategoryIndex(cat)); err != nil {
		return nil, err
	}
	created = append(created, index)

	return &Result{CreatedPaths: created}, nil
}

// GenerateAll sweeps every category in registry order. A failing category is
// recorded and skipped rather than aborting the sweep, so one bad example
// cannot block generation of the rest. The root EXAMPLES_INDEX.md is written
// regardless, covering the categories that succeeded.
func (e *Engine) GenerateAll() (*Result, error) {
	if err := os.MkdirAll(e.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", e.OutputDir, err)
	}

	result := &Result{}
	generated := make(map[string]bool)

	for _, name := range e.Registry.CategoryNames() {
		catResult, err := e.GenerateCategory(name)
		if err != nil {
			result.Failures = append(result.Failures, Failure{Item: name, Err: err})
			continue
		}
		result.CreatedPaths = append(result.CreatedPaths, catResult.CreatedPaths...)
		generated[name] = true
	}

	index := filepath.Join(e.OutputDir, "EXAMPLES_INDEX.md")
	if err := writeFile(index, e.renderRootIndex(generated)); err != nil {
		return nil, err
	}
	result.CreatedPaths = append(result.CreatedPaths, index)

	return result, nil
}

// specFromDefinition builds a ProjectSpec carrying a full definition's
// payloads.
func specFromDefinition(def registry.ExampleDefinition) ProjectSpec {
	return ProjectSpec{
		Name:            def.Name,
		Pascal:          PascalName(def.Name),
		Title:           def.Title,
		Description:     def.Description,
		Category:        def.Category,
		ContractContent: def.ContractContent,
		TestContent:     def.TestContent,
		DocContent:      def.DocumentationContent,
	}
}

// specForRef resolves a category ref to a spec: the full definition when one
// exists, otherwise a skeleton spec that the renderer fills with minimal
// contract and test bodies.
func (e *Engine) specForRef(category string, ref registry.CategoryExampleRef) ProjectSpec {
	if def, err := e.Registry.Example(ref.Name); err == nil {
		return specFromDefinition(def)
	}
	return ProjectSpec{
		Name:        ref.Name,
		Pascal:      PascalName(ref.Name),
		Title:       ref.Title,
		Description: ref.Description,
		Category:    category,
	}
}

// generateProject writes one complete project directory under baseDir.
// Returned paths are in a fixed order: contract, test, config, package,
// tsconfig, deploy script, README.
func (e *Engine) generateProject(baseDir string, spec ProjectSpec) ([]string, error) {
	projectDir := filepath.Join(baseDir, spec.Name)
	for _, dir := range []string{
		projectDir,
		filepath.Join(projectDir, "contracts"),
		filepath.Join(projectDir, "test"),
		filepath.Join(projectDir, "scripts"),
	} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	files := []struct {
		path    string
		content string
	}{
		{filepath.Join(projectDir, "contracts", spec.Pascal+".sol"), e.Renderer.Contract(spec)},
		{filepath.Join(projectDir, "test", spec.Pascal+".test.ts"), e.Renderer.Test(spec)},
		{filepath.Join(projectDir, "hardhat.config.ts"), e.Renderer.HardhatConfig(spec)},
		{filepath.Join(projectDir, "package.json"), e.Renderer.PackageJSON(spec)},
		{filepath.Join(projectDir, "tsconfig.json"), e.Renderer.TSConfig(spec)},
		{filepath.Join(projectDir, "scripts", "deploy.ts"), e.Renderer.DeployScript(spec)},
		{filepath.Join(projectDir, "README.md"), e.Renderer.Readme(spec)},
	}

	paths := make([]string, 0, len(files))
	for _, f := range files {
		if err := writeFile(f.path, f.content); err != nil {
			return nil, err
		}
		paths = append(paths, f.path)
	}
	return paths, nil
}

// renderCategoryReadme produces the category-level README: description,
// examples in declared order, and the fixed learning path.
func renderCategoryReadme(cat registry.CategoryDefinition) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", cat.Title)
	if cat.Description != "" {
		b.WriteString(cat.Description)
		b.WriteString("\n\n")
	}

	b.WriteString("## Examples\n\n")
	for _, ref := range cat.Examples {
		fmt.Fprintf(&b, "### %s\n\n", ref.Title)
		if ref.Description != "" {
			b.WriteString(ref.Description)
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "See [`%s/`](./%s/).\n\n", ref.Name, ref.Name)
	}

	b.WriteString(`## Learning path

1. Read each example's README before touching the code.
2. Study the contract in ` + "`contracts/`" + ` and map every encrypted operation.
3. Run the test suite with ` + "`npx hardhat test`" + ` and read the assertions.
4. Modify a test expectation, rerun, and confirm you understand the failure.
5. Extend the contract with one new encrypted operation of your own.
`)
	return b.String()
}

// renderCategoryIndex produces INDEX.md: a table of examples in declared
// order with relative links.
func renderCategoryIndex(cat registry.CategoryDefinition) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s — Index\n\n", cat.Title)
	b.WriteString("| Example | Description | Link |\n")
	b.WriteString("|---------|-------------|------|\n")
	for _, ref := range cat.Examples {
		fmt.Fprintf(&b, "| %s | %s | [%s](./%s/) |\n", ref.Title, ref.Description, ref.Name, ref.Name)
	}
	return b.String()
}

// renderRootIndex summarizes every category with its example count.
// Categories that failed to generate are marked rather than omitted.
func (e *Engine) renderRootIndex(generated map[string]bool) string {
	var b strings.Builder
	b.WriteString("# FHEVM Examples\n\n")
	b.WriteString("Generated example projects, grouped by category.\n\n")
	for _, name := range e.Registry.CategoryNames() {
		cat, err := e.Registry.Category(name)
		if err != nil {
			continue
		}
		count := len(cat.Examples)
		noun := "examples"
		if count == 1 {
			noun = "example"
		}
		fmt.Fprintf(&b, "- [%s](./%s/README.md) — %d %s", cat.Title, cat.Name, count, noun)
		if !generated[name] {
			b.WriteString(" (generation failed)")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// writeFile writes content, always overwriting. Errors carry the attempted
// path via *fs.PathError from os.WriteFile.
func writeFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
