// Package binding is the control-side glue between a Form and a rendered
// input: it feeds change/blur events into the engine per the form's
// configured triggers and derives the three-state presentation for the
// control.
package binding

import (
	formstate "github.com/dhyeymoliya/formstate"
)

// State is a control's presentation state.
type State int

const (
	Untouched State = iota
	Valid
	Invalid
)

func (s State) String() string {
	switch s {
	case Valid:
		return "valid"
	case Invalid:
		return "invalid"
	default:
		return "untouched"
	}
}

// Binding wires one named field to its form.
type Binding struct {
	form *formstate.Form
	path string
}

// Bind attaches a control for the field at path.
func Bind(f *formstate.Form, path string) *Binding {
	return &Binding{form: f, path: path}
}

// Path returns the bound field path.
func (b *Binding) Path() string { return b.path }

// Change records a new control value. When the form validates on change the
// field is also marked touched and a validation pass runs.
func (b *Binding) Change(v any) error {
	if err := b.form.Set(b.path, v); err != nil {
		return err
	}
	if b.form.ValidateOnChange() {
		b.form.MarkTouched(b.path)
		b.form.Validate(formstate.HighlightNone)
	}
	return nil
}

// Blur records focus leaving the control.
func (b *Binding) Blur() {
	if b.form.ValidateOnBlur() {
		b.form.MarkTouched(b.path)
		b.form.Validate(formstate.HighlightNone)
	}
}

// State derives the three-state presentation from the field's metadata.
// Fields without metadata, and fields the user has not touched, present as
// Untouched.
func (b *Binding) State() State {
	n := b.form.Field(b.path)
	if n == nil || !n.Touched {
		return Untouched
	}
	if len(n.Errors) > 0 {
		return Invalid
	}
	return Valid
}

// Errors returns the field's current validation messages.
func (b *Binding) Errors() []string {
	n := b.form.Field(b.path)
	if n == nil {
		return nil
	}
	return n.Errors
}

// Class resolves the CSS class for the current state, honoring the form's
// CSS configuration: a disabled config and the UseValid/UseInvalid gates
// yield an empty class.
func (b *Binding) Class() string {
	css := b.form.CSS()
	if !css.Enabled {
		return ""
	}
	switch b.State() {
	case Valid:
		if css.UseValid {
			return css.ValidClass
		}
	case Invalid:
		if css.UseInvalid {
			return css.InvalidClass
		}
	}
	return ""
}
