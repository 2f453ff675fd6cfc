package page

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"uikit/internal/descriptor"
)

func TestRenderPage_SectionOrderAndAnchors(t *testing.T) {
	d := &descriptor.TypeDescriptor{
		TypeName: "Button",
		Summary:  "A clickable button.",
		Properties: []descriptor.Member{
			{Name: "Variant", Type: "ButtonVariant", Category: "Appearance"},
			{Name: "Disabled", Type: "bool", Category: "Behavior"},
		},
		Events:    []descriptor.Member{{Name: "Click"}},
		BaseChain: []string{"ButtonBase", "ComponentBase"},
	}

	out := RenderPage(d)

	props := strings.Index(out, "{#properties}")
	events := strings.Index(out, "{#events}")
	inherit := strings.Index(out, "{#inheritance}")
	assert.True(t, props >= 0 && events > props && inherit > events,
		"sections out of order:\n%s", out)
	assert.NotContains(t, out, "{#methods}")
	assert.NotContains(t, out, "{#see-also}")
}

func TestRenderPage_CategoryHeadings(t *testing.T) {
	d := &descriptor.TypeDescriptor{
		TypeName: "Button",
		Properties: []descriptor.Member{
			{Name: "Shadow", Category: "Appearance"},
			{Name: "Disabled", Category: "Behavior"},
			{Name: "Id"},
		},
	}

	out := RenderPage(d)
	appearance := strings.Index(out, "### Appearance")
	behavior := strings.Index(out, "### Behavior")
	other := strings.Index(out, "### Other")
	assert.True(t, appearance >= 0 && behavior > appearance && other > behavior,
		"category groups out of order:\n%s", out)
}

func TestRenderPage_NoCategoryHeadingsWhenUngrouped(t *testing.T) {
	d := &descriptor.TypeDescriptor{
		TypeName:   "Spacer",
		Properties: []descriptor.Member{{Name: "Size"}},
	}
	assert.NotContains(t, RenderPage(d), "###")
}

func TestRenderPage_InheritanceRootFirst(t *testing.T) {
	d := &descriptor.TypeDescriptor{
		TypeName:  "Button",
		BaseChain: []string{"ButtonBase", "ComponentBase"},
	}

	out := RenderPage(d)
	assert.Contains(t, out, "ComponentBase → ButtonBase → **Button**")
}

func TestRenderPage_SeeAlsoKeepsDuplicates(t *testing.T) {
	d := &descriptor.TypeDescriptor{
		TypeName: "Card",
		Links: []descriptor.SeeAlsoLink{
			{Target: "CardHeader"},
			{Target: "CardHeader", Label: "header styling"},
		},
	}

	out := RenderPage(d)
	assert.Equal(t, 2, strings.Count(out, "[CardHeader](CardHeader)"))
	assert.Contains(t, out, "header styling")
}

func TestRenderNotFound(t *testing.T) {
	out := RenderNotFound("Tooltip")
	assert.Contains(t, out, "# Tooltip")
	assert.Contains(t, out, "No API reference is available")
}
