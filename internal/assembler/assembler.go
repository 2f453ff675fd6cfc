// Package assembler turns a type descriptor into the ordered list of
// documentation sections its API-reference page shows. Only sections with
// content are included; the relative order of sections is a presentation
// contract (navigation anchors, TOC generation) and never depends on the
// input data.
package assembler

import "uikit/internal/descriptor"

// SectionKind identifies one independently includable block of a page.
type SectionKind string

const (
	SectionProperties     SectionKind = "properties"
	SectionMethods        SectionKind = "methods"
	SectionFields         SectionKind = "fields"
	SectionEvents         SectionKind = "events"
	SectionDerivedTypes   SectionKind = "derived-types"
	SectionSeeAlso        SectionKind = "see-also"
	SectionGlobalSettings SectionKind = "global-settings"
	SectionInheritance    SectionKind = "inheritance"
)

// canonicalSectionOrder is the fixed order sections appear in on every page.
var canonicalSectionOrder = []SectionKind{
	SectionProperties,
	SectionMethods,
	SectionFields,
	SectionEvents,
	SectionDerivedTypes,
	SectionSeeAlso,
	SectionGlobalSettings,
	SectionInheritance,
}

// Section is one assembled block. Exactly one payload field is populated,
// matching the kind: Members for the member-backed kinds, Children for
// derived types, Links for see-also, BaseChain for inheritance.
type Section struct {
	Kind      SectionKind
	Members   []descriptor.Member
	Children  []*descriptor.TypeDescriptor
	Links     []descriptor.SeeAlsoLink
	BaseChain []string
}

// Assemble computes the non-empty sections of d in canonical order.
//
// Member sections carry their member slices unmodified; source order is
// curated upstream and authoritative. See-also links keep duplicates, since
// the same target may appear twice with different framing. The inheritance
// section exists iff the type has ancestors or known subtypes; a lone leaf
// type gets none. A nil descriptor assembles to nothing.
func Assemble(d *descriptor.TypeDescriptor) []Section {
	if d == nil {
		return nil
	}

	var out []Section
	for _, kind := range canonicalSectionOrder {
		if s, ok := buildSection(d, kind); ok {
			out = append(out, s)
		}
	}
	return out
}

func buildSection(d *descriptor.TypeDescriptor, kind SectionKind) (Section, bool) {
	switch kind {
	case SectionProperties:
		return memberSection(kind, d.Properties)
	case SectionMethods:
		return memberSection(kind, d.Methods)
	case SectionFields:
		return memberSection(kind, d.Fields)
	case SectionEvents:
		return memberSection(kind, d.Events)
	case SectionDerivedTypes:
		if len(d.Children) == 0 {
			return Section{}, false
		}
		return Section{Kind: kind, Children: d.Children}, true
	case SectionSeeAlso:
		if len(d.Links) == 0 {
			return Section{}, false
		}
		return Section{Kind: kind, Links: d.Links}, true
	case SectionGlobalSettings:
		return memberSection(kind, d.GlobalSettings)
	case SectionInheritance:
		if !d.HasInheritance() {
			return Section{}, false
		}
		return Section{Kind: kind, BaseChain: d.BaseChain}, true
	}
	return Section{}, false
}

func memberSection(kind SectionKind, members []descriptor.Member) (Section, bool) {
	if len(members) == 0 {
		return Section{}, false
	}
	return Section{Kind: kind, Members: members}, true
}
