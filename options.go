package formstate

import "log/slog"

// CSSConfig drives the binding adapter's presentation classes. UseValid and
// UseInvalid gate whether each class is ever applied, even when Enabled.
type CSSConfig struct {
	Enabled      bool
	ValidClass   string
	InvalidClass string
	UseValid     bool
	UseInvalid   bool
}

// DefaultCSS returns the configuration bindings assume when nothing else is
// supplied.
func DefaultCSS() CSSConfig {
	return CSSConfig{
		Enabled:      true,
		ValidClass:   "is-valid",
		InvalidClass: "is-invalid",
		UseValid:     true,
		UseInvalid:   true,
	}
}

// Option customizes a Form at construction time.
type Option func(*Form)

// WithSchema attaches the validation capability. Schemas that also
// implement ShapedSchema drive the state-tree layout, so declared fields
// missing from the data still get metadata nodes.
func WithSchema(s Schema) Option { return func(f *Form) { f.schema = s } }

// WithCSS overrides the presentation class configuration.
func WithCSS(c CSSConfig) Option { return func(f *Form) { f.css = c } }

// WithValidateOnChange toggles validation on change events. Default: on.
func WithValidateOnChange(on bool) Option { return func(f *Form) { f.validateOnChange = on } }

// WithValidateOnBlur toggles validation on blur events. Default: on.
func WithValidateOnBlur(on bool) Option { return func(f *Form) { f.validateOnBlur = on } }

// WithLogger installs a logger for diagnostics such as dropped violation
// paths. Logging is off by default.
func WithLogger(l *slog.Logger) Option {
	return func(f *Form) {
		if l != nil {
			f.log = l
		}
	}
}
