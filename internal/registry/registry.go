package registry

// Registry is the static catalog of examples and categories. Lookups are pure:
// they never mutate state and never fall back to a default on a bad key.
//
// Insertion order is preserved for both examples and categories and is the
// only ordering guarantee callers may rely on.
type Registry struct {
	examples      map[string]ExampleDefinition
	categories    map[string]CategoryDefinition
	exampleOrder  []string
	categoryOrder []string
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{
		examples:   make(map[string]ExampleDefinition),
		categories: make(map[string]CategoryDefinition),
	}
}

// Register adds an example definition. Re-registering an existing name is
// rejected with ErrDuplicateExample rather than overwriting; a catalog with
// colliding names is a build error, not a runtime preference.
func (r *Registry) Register(def ExampleDefinition) error {
	if def.Name == "" {
		return ErrEmptyName
	}
	if _, exists := r.examples[def.Name]; exists {
		return &duplicateError{name: def.Name, sentinel: ErrDuplicateExample}
	}
	r.examples[def.Name] = def
	r.exampleOrder = append(r.exampleOrder, def.Name)
	return nil
}

// RegisterCategory adds a category definition under the same duplicate rules
// as Register.
func (r *Registry) RegisterCategory(def CategoryDefinition) error {
	if def.Name == "" {
		return ErrEmptyName
	}
	if _, exists := r.categories[def.Name]; exists {
		return &duplicateError{name: def.Name, sentinel: ErrDuplicateCategory}
	}
	r.categories[def.Name] = def
	r.categoryOrder = append(r.categoryOrder, def.Name)
	return nil
}

// Example returns the definition for name, or an *UnknownExampleError listing
// the valid names.
func (r *Registry) Example(name string) (ExampleDefinition, error) {
	def, ok := r.examples[name]
	if !ok {
		return ExampleDefinition{}, &UnknownExampleError{Name: name, Known: r.ExampleNames()}
	}
	return def, nil
}

// Category returns the definition for name, or an *UnknownCategoryError
// listing the valid names.
func (r *Registry) Category(name string) (CategoryDefinition, error) {
	def, ok := r.categories[name]
	if !ok {
		return CategoryDefinition{}, &UnknownCategoryError{Name: name, Known: r.CategoryNames()}
	}
	return def, nil
}

// ExampleNames returns example names in registration order. The returned
// slice is a copy; callers may not reorder the registry through it.
func (r *Registry) ExampleNames() []string {
	names := make([]string, len(r.exampleOrder))
	copy(names, r.exampleOrder)
	return names
}

// CategoryNames returns category names in registration order.
func (r *Registry) CategoryNames() []string {
	names := make([]string, len(r.categoryOrder))
	copy(names, r.categoryOrder)
	return names
}

// duplicateError wraps a duplicate-name sentinel with the offending name.
type duplicateError struct {
	name     string
	sentinel error
}

func (e *duplicateError) Error() string {
	return e.sentinel.Error() + ": " + e.name
}

func (e *duplicateError) Unwrap() error {
	return e.sentinel
}
