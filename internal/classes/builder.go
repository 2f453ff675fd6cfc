package classes

// Builder accumulates fragments fluently for callers that assemble a class
// list across several helpers before composing it once.
type Builder struct {
	fragments []Fragment
}

func New() *Builder {
	return &Builder{}
}

// Add appends unconditional class strings.
func (b *Builder) Add(class ...string) *Builder {
	for _, c := range class {
		b.fragments = append(b.fragments, Always(c))
	}
	return b
}

// AddIf appends a class string gated by cond.
func (b *Builder) AddIf(cond bool, class string) *Builder {
	b.fragments = append(b.fragments, If(cond, class))
	return b
}

// Merge appends already-built fragments, preserving their conditions.
func (b *Builder) Merge(fragments ...Fragment) *Builder {
	b.fragments = append(b.fragments, fragments...)
	return b
}

// String composes the accumulated fragments. The builder stays usable;
// further Adds extend the same list.
func (b *Builder) String() string {
	return Compose(b.fragments...)
}
