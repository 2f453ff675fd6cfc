package descriptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_ResolveAbsent(t *testing.T) {
	reg := NewRegistry()
	d, ok := reg.Resolve("Button")
	assert.False(t, ok)
	assert.Nil(t, d)
}

func TestRegistry_AddAndResolve(t *testing.T) {
	reg := NewRegistry()
	reg.Add(&TypeDescriptor{TypeName: "Button"})
	reg.Add(nil)
	reg.Add(&TypeDescriptor{})

	assert.Equal(t, 1, reg.Len())
	d, ok := reg.Resolve("Button")
	require.True(t, ok)
	assert.Equal(t, "Button", d.TypeName)
}

func TestRegistry_NamesSorted(t *testing.T) {
	reg := NewRegistry()
	reg.Add(&TypeDescriptor{TypeName: "Input"})
	reg.Add(&TypeDescriptor{TypeName: "Button"})
	reg.Add(&TypeDescriptor{TypeName: "Card"})

	assert.Equal(t, []string{"Button", "Card", "Input"}, reg.Names())
}

func TestRegistry_LinkChildren(t *testing.T) {
	reg := NewRegistry()
	reg.Add(&TypeDescriptor{TypeName: "ComponentBase"})
	reg.Add(&TypeDescriptor{TypeName: "Button", BaseChain: []string{"ComponentBase"}})
	reg.Add(&TypeDescriptor{TypeName: "Anchor", BaseChain: []string{"ComponentBase"}})
	reg.Add(&TypeDescriptor{TypeName: "IconButton", BaseChain: []string{"Button", "ComponentBase"}})
	reg.Add(&TypeDescriptor{TypeName: "Orphan", BaseChain: []string{"Missing"}})
	reg.LinkChildren()

	base, _ := reg.Resolve("ComponentBase")
	require.Len(t, base.Children, 2)
	// sorted child-name order
	assert.Equal(t, "Anchor", base.Children[0].TypeName)
	assert.Equal(t, "Button", base.Children[1].TypeName)

	button, _ := reg.Resolve("Button")
	require.Len(t, button.Children, 1)
	assert.Equal(t, "IconButton", button.Children[0].TypeName)
	assert.True(t, button.HasInheritance())

	orphan, _ := reg.Resolve("Orphan")
	assert.Empty(t, orphan.Children)
}

func TestHasInheritance(t *testing.T) {
	assert.False(t, (&TypeDescriptor{TypeName: "Spacer"}).HasInheritance())
	assert.True(t, (&TypeDescriptor{TypeName: "A", BaseChain: []string{"B"}}).HasInheritance())
	assert.True(t, (&TypeDescriptor{TypeName: "A", Children: []*TypeDescriptor{{TypeName: "B"}}}).HasInheritance())
}
