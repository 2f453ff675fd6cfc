// Package components holds the styling state of the kit's visual components
// and derives their final class strings through the classes composer. The
// markup layer that applies those strings lives outside this package.
package components

// BaseConfig is embedded in every component config.
type BaseConfig struct {
	// Classes are caller-supplied override classes, merged after the
	// component's own fragments.
	Classes []string
}

// ConfigProvider lets generic options reach the embedded base of any config.
type ConfigProvider interface {
	GetBase() *BaseConfig
}

// Option mutates a component config during construction.
type Option[T ConfigProvider] func(T)

// Class appends caller utility classes, merged via the composer later.
func Class[T ConfigProvider](c string) Option[T] {
	return func(cfg T) {
		base := cfg.GetBase()
		base.Classes = append(base.Classes, c)
	}
}
