// Package page renders an assembled API reference as Markdown. It is the
// data-to-text edge of the docs pipeline; everything it shows is decided by
// the assembler.
package page

import (
	"fmt"
	"strings"

	"uikit/internal/assembler"
	"uikit/internal/descriptor"
)

var sectionTitles = map[assembler.SectionKind]string{
	assembler.SectionProperties:     "Properties",
	assembler.SectionMethods:        "Methods",
	assembler.SectionFields:         "Fields",
	assembler.SectionEvents:         "Events",
	assembler.SectionDerivedTypes:   "Derived Types",
	assembler.SectionSeeAlso:        "See Also",
	assembler.SectionGlobalSettings: "Global Settings",
	assembler.SectionInheritance:    "Inheritance",
}

// RenderPage writes the API-reference page for d. Section headings carry
// stable anchors (the section kind), so tables of contents can link into
// pages without inspecting their content.
func RenderPage(d *descriptor.TypeDescriptor) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", d.TypeName)
	if s := strings.TrimSpace(d.Summary); s != "" {
		sb.WriteString(s)
		sb.WriteString("\n\n")
	}

	for _, section := range assembler.Assemble(d) {
		writeSection(&sb, d, section)
	}
	return sb.String()
}

// RenderNotFound is the page shown when no descriptor exists for the
// requested name. Absence is an expected outcome, not an error.
func RenderNotFound(name string) string {
	return fmt.Sprintf("# %s\n\nNo API reference is available for `%s`.\n", name, name)
}

func writeSection(sb *strings.Builder, d *descriptor.TypeDescriptor, s assembler.Section) {
	fmt.Fprintf(sb, "## %s {#%s}\n\n", sectionTitles[s.Kind], s.Kind)

	switch s.Kind {
	case assembler.SectionDerivedTypes:
		writeDerivedTypes(sb, s.Children)
	case assembler.SectionSeeAlso:
		writeLinks(sb, s.Links)
	case assembler.SectionGlobalSettings:
		// Global settings are never category-grouped.
		writeMemberTable(sb, s.Members)
	case assembler.SectionInheritance:
		writeInheritance(sb, d, s.BaseChain)
	default:
		writeGroupedMembers(sb, s.Members)
	}
	sb.WriteString("\n")
}

func writeGroupedMembers(sb *strings.Builder, members []descriptor.Member) {
	groups := assembler.GroupByCategory(members)
	if len(groups) == 1 && groups[0].Category == "" {
		writeMemberTable(sb, groups[0].Members)
		return
	}
	for _, g := range groups {
		title := g.Category
		if title == "" {
			title = "Other"
		}
		fmt.Fprintf(sb, "### %s\n\n", title)
		writeMemberTable(sb, g.Members)
	}
}

func writeMemberTable(sb *strings.Builder, members []descriptor.Member) {
	sb.WriteString("| Name | Type | Description |\n")
	sb.WriteString("| --- | --- | --- |\n")
	for _, m := range members {
		desc := m.Summary
		if m.Default != "" {
			desc = strings.TrimSpace(desc + " Default: `" + m.Default + "`.")
		}
		fmt.Fprintf(sb, "| `%s` | %s | %s |\n", m.Name, m.Type, desc)
	}
	sb.WriteString("\n")
}

func writeDerivedTypes(sb *strings.Builder, children []*descriptor.TypeDescriptor) {
	sb.WriteString("| Type | Summary |\n")
	sb.WriteString("| --- | --- |\n")
	for _, c := range children {
		fmt.Fprintf(sb, "| [%s](%s) | %s |\n", c.TypeName, c.TypeName, c.Summary)
	}
	sb.WriteString("\n")
}

func writeLinks(sb *strings.Builder, links []descriptor.SeeAlsoLink) {
	for _, l := range links {
		if l.Label != "" {
			fmt.Fprintf(sb, "- [%s](%s): %s\n", l.Target, l.Target, l.Label)
			continue
		}
		fmt.Fprintf(sb, "- [%s](%s)\n", l.Target, l.Target)
	}
	sb.WriteString("\n")
}

// writeInheritance prints the chain root-most first. BaseChain is stored
// nearest-ancestor-first, so it is walked in reverse; the documented type
// closes the chain.
func writeInheritance(sb *strings.Builder, d *descriptor.TypeDescriptor, chain []string) {
	parts := make([]string, 0, len(chain)+1)
	for i := len(chain) - 1; i >= 0; i-- {
		parts = append(parts, chain[i])
	}
	parts = append(parts, "**"+d.TypeName+"**")
	sb.WriteString(strings.Join(parts, " → "))
	sb.WriteString("\n")
}
