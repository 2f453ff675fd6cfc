package components

import (
	"strings"

	"uikit/internal/classes"
)

type BadgeColor string

const (
	BadgeColorDefault BadgeColor = "default"
	BadgeColorInfo    BadgeColor = "info"
	BadgeColorSuccess BadgeColor = "success"
	BadgeColorWarning BadgeColor = "warning"
	BadgeColorDanger  BadgeColor = "danger"
)

type BadgeConfig struct {
	BaseConfig
	Color BadgeColor
	Pill  bool
}

func (c *BadgeConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type BadgeOption = Option[*BadgeConfig]

func Color(c BadgeColor) BadgeOption {
	return func(cfg *BadgeConfig) { cfg.Color = c }
}

func Pill(on bool) BadgeOption {
	return func(cfg *BadgeConfig) { cfg.Pill = on }
}

// BadgeClasses derives a badge's class string from its options.
func BadgeClasses(opts ...BadgeOption) string {
	cfg := &BadgeConfig{Color: BadgeColorDefault}
	for _, opt := range opts {
		opt(cfg)
	}

	return classes.Compose(
		classes.Always("inline-flex items-center border px-2.5 py-0.5 text-xs font-semibold"),
		classes.If(!cfg.Pill, "rounded-md"),
		classes.If(cfg.Pill, "rounded-full"),
		classes.Always(badgeColorClasses(cfg.Color)),
		classes.Always(strings.Join(cfg.Classes, " ")),
	)
}

func badgeColorClasses(c BadgeColor) string {
	switch c {
	case BadgeColorInfo:
		return "border-transparent bg-info text-info-foreground"
	case BadgeColorSuccess:
		return "border-transparent bg-success text-success-foreground"
	case BadgeColorWarning:
		return "border-transparent bg-warning text-warning-foreground"
	case BadgeColorDanger:
		return "border-transparent bg-destructive text-destructive-foreground"
	}
	return "border-transparent bg-secondary text-secondary-foreground"
}
