// Package registry holds the static catalog of FHE Solidity examples and the
// categories that group them into learning paths. The catalog is built once at
// startup and never mutated afterwards, so a Registry is safe to share across
// goroutines without synchronization.
package registry

// ExampleDefinition bundles everything needed to scaffold one runnable example
// project: a Solidity contract, its hardhat test suite, and prose
// documentation. The three payloads are opaque text; the registry and the
// scaffolding engine copy them verbatim without validating their syntax.
type ExampleDefinition struct {
	// Name is the unique kebab-case key, e.g. "encrypted-counter".
	Name string `toml:"name"`

	// Title is the human-readable display name.
	Title string `toml:"title"`

	// Description is a one-or-two sentence summary used in index files.
	Description string `toml:"description"`

	// Category names the CategoryDefinition this example belongs to.
	// An example may be uncategorized (empty string).
	Category string `toml:"category"`

	// Chapter is the documentation grouping key; it may differ from Category.
	Chapter string `toml:"chapter"`

	// ContractContent is the full Solidity source, copied verbatim.
	ContractContent string `toml:"contract"`

	// TestContent is the full TypeScript test source, copied verbatim.
	TestContent string `toml:"test"`

	// DocumentationContent is the README body for the generated project.
	DocumentationContent string `toml:"documentation"`
}

// CategoryExampleRef points at an example from within a category. The ref may
// name an example with no full ExampleDefinition; the scaffolding engine
// synthesizes a skeleton project for such refs.
type CategoryExampleRef struct {
	Name        string `toml:"name"`
	Title       string `toml:"title"`
	Description string `toml:"description"`
}

// CategoryDefinition is a named, ordered grouping of examples. The order of
// Examples is significant: it determines index ordering and the suggested
// learning path.
type CategoryDefinition struct {
	Name        string               `toml:"name"`
	Title       string               `toml:"title"`
	Description string               `toml:"description"`
	Examples    []CategoryExampleRef `toml:"examples"`
}
