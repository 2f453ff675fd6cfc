package descriptor

import "sort"

// Registry holds every descriptor of one catalog build, keyed by type name.
// It is populated once and read-only afterwards.
type Registry struct {
	types map[string]*TypeDescriptor
}

func NewRegistry() *Registry {
	return &Registry{types: make(map[string]*TypeDescriptor)}
}

// Add registers a descriptor. A later Add with the same type name replaces
// the earlier one; catalog files are expected to keep names unique.
func (r *Registry) Add(d *TypeDescriptor) {
	if d == nil || d.TypeName == "" {
		return
	}
	r.types[d.TypeName] = d
}

// Resolve looks up a descriptor by type name. The second return value is
// false when the catalog has no such type; callers render a not-found page
// in that case instead of treating absence as an error.
func (r *Registry) Resolve(name string) (*TypeDescriptor, bool) {
	d, ok := r.types[name]
	return d, ok
}

// Len returns the number of registered types.
func (r *Registry) Len() int {
	return len(r.types)
}

// Names returns all registered type names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LinkChildren wires each descriptor's Children from the direct-base
// relation recorded in BaseChain. Children are references into the shared
// registry, not copies, and are appended in sorted child-name order so
// repeated builds over the same catalog produce identical graphs.
func (r *Registry) LinkChildren() {
	names := r.Names()
	for _, name := range names {
		d := r.types[name]
		if len(d.BaseChain) == 0 {
			continue
		}
		parent, ok := r.types[d.BaseChain[0]]
		if !ok {
			continue
		}
		parent.Children = append(parent.Children, d)
	}
}
