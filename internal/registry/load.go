package registry

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// overlayFile is the on-disk shape of a registry overlay: extra examples and
// categories merged on top of the built-in catalog.
type overlayFile struct {
	Examples   []ExampleDefinition  `toml:"examples"`
	Categories []CategoryDefinition `toml:"categories"`
}

// LoadFile merges definitions from a TOML overlay file into the registry.
// Names colliding with already-registered definitions are rejected under the
// same duplicate rules as Register; the registry is left partially merged in
// that case, so callers should treat any error as fatal to the load.
func (r *Registry) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading registry overlay %s: %w", path, err)
	}

	var overlay overlayFile
	if err := toml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing registry overlay %s: %w", path, err)
	}

	for _, def := range overlay.Examples {
		if err := r.Register(def); err != nil {
			return fmt.Errorf("overlay example %q: %w", def.Name, err)
		}
	}
	for _, def := range overlay.Categories {
		if err := r.RegisterCategory(def); err != nil {
			return fmt.Errorf("overlay category %q: %w", def.Name, err)
		}
	}
	return nil
}
