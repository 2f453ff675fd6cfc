package assembler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uikit/internal/descriptor"
)

func kinds(sections []Section) []SectionKind {
	out := make([]SectionKind, 0, len(sections))
	for _, s := range sections {
		out = append(out, s.Kind)
	}
	return out
}

func TestAssemble_EmptyDescriptor(t *testing.T) {
	assert.Empty(t, Assemble(&descriptor.TypeDescriptor{TypeName: "Widget"}))
	assert.Empty(t, Assemble(nil))
}

func TestAssemble_OnlyNonEmptySections(t *testing.T) {
	d := &descriptor.TypeDescriptor{
		TypeName:   "Button",
		Properties: []descriptor.Member{{Name: "Variant", Kind: descriptor.KindProperty}},
	}

	sections := Assemble(d)
	require.Len(t, sections, 1)
	assert.Equal(t, SectionProperties, sections[0].Kind)
	assert.Equal(t, d.Properties, sections[0].Members)
}

func TestAssemble_FixedSectionOrder(t *testing.T) {
	// Events declared "before" properties in the struct literal; output order
	// must still be properties first.
	d := &descriptor.TypeDescriptor{
		TypeName:   "Input",
		Events:     []descriptor.Member{{Name: "Change", Kind: descriptor.KindEvent}},
		Properties: []descriptor.Member{{Name: "Value", Kind: descriptor.KindProperty}},
	}

	assert.Equal(t,
		[]SectionKind{SectionProperties, SectionEvents},
		kinds(Assemble(d)))
}

func TestAssemble_AllSections(t *testing.T) {
	child := &descriptor.TypeDescriptor{TypeName: "IconButton"}
	d := &descriptor.TypeDescriptor{
		TypeName:       "Button",
		Properties:     []descriptor.Member{{Name: "Variant"}},
		Methods:        []descriptor.Member{{Name: "Focus"}},
		Fields:         []descriptor.Member{{Name: "Element"}},
		Events:         []descriptor.Member{{Name: "Click"}},
		GlobalSettings: []descriptor.Member{{Name: "Defaults"}},
		Children:       []*descriptor.TypeDescriptor{child},
		Links:          []descriptor.SeeAlsoLink{{Target: "ButtonGroup"}},
		BaseChain:      []string{"ComponentBase"},
	}

	assert.Equal(t, []SectionKind{
		SectionProperties,
		SectionMethods,
		SectionFields,
		SectionEvents,
		SectionDerivedTypes,
		SectionSeeAlso,
		SectionGlobalSettings,
		SectionInheritance,
	}, kinds(Assemble(d)))
}

func TestAssemble_MemberOrderPreserved(t *testing.T) {
	d := &descriptor.TypeDescriptor{
		TypeName: "Dialog",
		Methods: []descriptor.Member{
			{Name: "Show"}, {Name: "Close"}, {Name: "Focus"},
		},
	}

	sections := Assemble(d)
	require.Len(t, sections, 1)
	assert.Equal(t, "Show", sections[0].Members[0].Name)
	assert.Equal(t, "Close", sections[0].Members[1].Name)
	assert.Equal(t, "Focus", sections[0].Members[2].Name)
}

func TestAssemble_InheritanceParticipation(t *testing.T) {
	leaf := &descriptor.TypeDescriptor{TypeName: "Spacer"}
	assert.Empty(t, Assemble(leaf))

	withChild := &descriptor.TypeDescriptor{
		TypeName: "ButtonBase",
		Children: []*descriptor.TypeDescriptor{{TypeName: "Button"}},
	}
	got := kinds(Assemble(withChild))
	assert.Contains(t, got, SectionInheritance)
	assert.Contains(t, got, SectionDerivedTypes)

	withBase := &descriptor.TypeDescriptor{
		TypeName:  "Button",
		BaseChain: []string{"ButtonBase", "ComponentBase"},
	}
	assert.Equal(t, []SectionKind{SectionInheritance}, kinds(Assemble(withBase)))
}

func TestAssemble_SeeAlsoDuplicatesPreserved(t *testing.T) {
	d := &descriptor.TypeDescriptor{
		TypeName: "Card",
		Links: []descriptor.SeeAlsoLink{
			{Target: "CardHeader"},
			{Target: "CardHeader", Label: "header styling"},
		},
	}

	sections := Assemble(d)
	require.Len(t, sections, 1)
	assert.Len(t, sections[0].Links, 2)
}

func TestAssemble_SeeAlsoOnly(t *testing.T) {
	d := &descriptor.TypeDescriptor{
		TypeName: "Widget",
		Links:    []descriptor.SeeAlsoLink{{Target: "Button"}},
	}
	assert.Equal(t, []SectionKind{SectionSeeAlso}, kinds(Assemble(d)))
}

func TestGroupByCategory_FirstAppearanceOrder(t *testing.T) {
	members := []descriptor.Member{
		{Name: "Shadow", Category: "Appearance"},
		{Name: "Disabled", Category: "Behavior"},
		{Name: "Color", Category: "Appearance"},
	}

	groups := GroupByCategory(members)
	require.Len(t, groups, 2)
	assert.Equal(t, "Appearance", groups[0].Category)
	assert.Len(t, groups[0].Members, 2)
	assert.Equal(t, "Behavior", groups[1].Category)
}

func TestGroupByCategory_UncategorizedTrailing(t *testing.T) {
	members := []descriptor.Member{
		{Name: "Id"},
		{Name: "Disabled", Category: "Behavior"},
		{Name: "Class"},
	}

	groups := GroupByCategory(members)
	require.Len(t, groups, 2)
	assert.Equal(t, "Behavior", groups[0].Category)
	assert.Equal(t, "", groups[1].Category)
	assert.Equal(t, "Id", groups[1].Members[0].Name)
	assert.Equal(t, "Class", groups[1].Members[1].Name)
}

func TestGroupByCategory_Empty(t *testing.T) {
	assert.Empty(t, GroupByCategory(nil))
}
