package components

import (
	"strings"

	"uikit/internal/classes"
)

type ButtonVariant string

const (
	ButtonVariantDefault     ButtonVariant = "default"
	ButtonVariantPrimary     ButtonVariant = "primary"
	ButtonVariantSecondary   ButtonVariant = "secondary"
	ButtonVariantDestructive ButtonVariant = "destructive"
	ButtonVariantOutline     ButtonVariant = "outline"
	ButtonVariantGhost       ButtonVariant = "ghost"
	ButtonVariantLink        ButtonVariant = "link"
)

type ButtonSize string

const (
	ButtonSizeDefault ButtonSize = "default"
	ButtonSizeSm      ButtonSize = "sm"
	ButtonSizeLg      ButtonSize = "lg"
	ButtonSizeIcon    ButtonSize = "icon"
)

// ButtonConfig is the styling state of one button instance.
type ButtonConfig struct {
	BaseConfig
	Variant   ButtonVariant
	Size      ButtonSize
	Loading   bool
	FullWidth bool
}

func (c *ButtonConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type ButtonOption = Option[*ButtonConfig]

func Variant(v ButtonVariant) ButtonOption {
	return func(c *ButtonConfig) { c.Variant = v }
}

func Size(s ButtonSize) ButtonOption {
	return func(c *ButtonConfig) { c.Size = s }
}

func Loading(on bool) ButtonOption {
	return func(c *ButtonConfig) { c.Loading = on }
}

// FullWidth sets the button's own full-width flag, independent of any group.
func FullWidth(on bool) ButtonOption {
	return func(c *ButtonConfig) { c.FullWidth = on }
}

// Button is a button's styling state plus its optional group membership.
type Button struct {
	cfg   ButtonConfig
	group *ButtonGroup
}

// NewButton builds a button from options; defaults match the kit's base
// appearance.
func NewButton(opts ...ButtonOption) *Button {
	b := &Button{cfg: ButtonConfig{
		Variant: ButtonVariantDefault,
		Size:    ButtonSizeDefault,
	}}
	for _, opt := range opts {
		opt(&b.cfg)
	}
	return b
}

// IsFullWidth reports the button's own flag, before group rules apply.
func (b *Button) IsFullWidth() bool { return b.cfg.FullWidth }

// EffectiveFullWidth resolves the full-width rule: the button's own flag
// wins; otherwise a full-width group stretches its members only when none of
// them is individually full width. Group membership changes at runtime, so
// this is computed fresh on every call, never cached.
func (b *Button) EffectiveFullWidth() bool {
	if b.cfg.FullWidth {
		return true
	}
	g := b.group
	if g == nil || !g.FullWidth() {
		return false
	}
	return !g.anyMemberFullWidth()
}

// Classes derives the button's final class string.
func (b *Button) Classes() string {
	return classes.Compose(
		classes.Always("inline-flex items-center justify-center whitespace-nowrap rounded-md text-sm font-medium transition-colors disabled:pointer-events-none disabled:opacity-50"),
		classes.Always(buttonVariantClasses(b.cfg.Variant)),
		classes.Always(buttonSizeClasses(b.cfg.Size)),
		classes.If(b.cfg.Loading, "pointer-events-none opacity-70"),
		classes.If(b.EffectiveFullWidth(), "w-full"),
		classes.Always(strings.Join(b.cfg.Classes, " ")),
	)
}

func buttonVariantClasses(v ButtonVariant) string {
	switch v {
	case ButtonVariantDefault, ButtonVariantPrimary:
		return "bg-primary text-primary-foreground hover:bg-primary/90"
	case ButtonVariantSecondary:
		return "bg-secondary text-secondary-foreground hover:bg-secondary/80"
	case ButtonVariantDestructive:
		return "bg-destructive text-destructive-foreground hover:bg-destructive/90"
	case ButtonVariantOutline:
		return "border border-input bg-background hover:bg-accent hover:text-accent-foreground"
	case ButtonVariantGhost:
		return "hover:bg-accent hover:text-accent-foreground"
	case ButtonVariantLink:
		return "text-primary underline-offset-4 hover:underline"
	}
	return ""
}

func buttonSizeClasses(s ButtonSize) string {
	switch s {
	case ButtonSizeDefault:
		return "h-10 px-4 py-2"
	case ButtonSizeSm:
		return "h-9 rounded-md px-3"
	case ButtonSizeLg:
		return "h-11 rounded-md px-8"
	case ButtonSizeIcon:
		return "h-10 w-10"
	}
	return ""
}
