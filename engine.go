package formstate

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// Form owns one form's data tree and its metadata tree and keeps the two in
// lockstep. Every operation runs under the form's lock, so observers always
// see a fully updated pair of trees and at most one validation pass is in
// flight per form.
type Form struct {
	mu sync.Mutex

	values map[string]any
	state  *StateNode

	schema Schema
	shape  []FieldShape

	css              CSSConfig
	validateOnChange bool
	validateOnBlur   bool
	log              *slog.Logger

	valid   bool
	touched bool
}

// New builds a form around the caller's initial values. The values are
// deep-copied, so the form owns both trees exclusively afterwards. The
// metadata tree is created immediately: errors empty, touched false
// everywhere.
func New(initial map[string]any, opts ...Option) *Form {
	f := &Form{
		values:           cloneValues(initial),
		css:              DefaultCSS(),
		validateOnChange: true,
		validateOnBlur:   true,
		log:              slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, o := range opts {
		o(f)
	}
	if f.values == nil {
		f.values = map[string]any{}
	}
	if ss, ok := f.schema.(ShapedSchema); ok {
		f.shape = ss.Shape()
	}
	f.state = BuildState(f.values, f.shape, nil)
	return f
}

// Values returns a deep copy of the current data tree.
func (f *Form) Values() map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return cloneValues(f.values)
}

// Value resolves a field path within the data tree. ok is false when the
// path does not resolve (or resolves to an explicit nil).
func (f *Form) Value(path string) (v any, ok bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r := Resolve(f.values, ParsePath(path))
	if r == nil {
		return nil, false
	}
	return cloneValue(r), true
}

// State returns a deep copy of the metadata tree.
func (f *Form) State() *StateNode {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.Clone()
}

// Field returns a copy of the metadata node for a field path, or nil when
// no such node exists.
func (f *Form) Field(path string) *StateNode {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.at(ParsePath(path)).Clone()
}

// IsValid reports the verdict of the most recent validation pass. It is
// false before the first pass and after every reset.
func (f *Form) IsValid() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.valid
}

// IsTouched reports whether any tracked change event has marked a field
// since construction or the last reset.
func (f *Form) IsTouched() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.touched
}

// Validate runs one full validation pass and merges the violations into the
// metadata tree. highlight controls which fields get force-marked touched:
// HighlightAll touches every field, HighlightErrors only invalid ones,
// HighlightNone leaves the flags as they were. Without a schema the pass
// only applies the touch policy and reports true.
func (f *Form) Validate(highlight Highlight) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.validateLocked(highlight)
}

func (f *Form) validateLocked(highlight Highlight) bool {
	if f.schema == nil {
		touchValid, _ := highlight.policy()
		work := f.state.Clone()
		work.resetErrors(touchValid)
		f.state = work
		f.valid = true
		return true
	}
	next, ok := runValidation(f.state, f.values, f.schema, highlight, f.log)
	f.state = next
	f.valid = ok
	return ok
}

// Update reconciles the metadata tree with the data tree's current shape,
// preserving touched flags for surviving paths, then revalidates. Call it
// after any structural change the engine could not observe (Append,
// RemoveAt, optional fields added or dropped).
func (f *Form) Update() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = BuildState(f.values, f.shape, f.state)
	if f.schema != nil {
		f.validateLocked(HighlightNone)
	}
}

// MarkTouched marks the leaf at path touched and raises the form-level
// touched flag. Paths that do not resolve to a leaf are ignored.
func (f *Form) MarkTouched(path string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := f.state.at(ParsePath(path))
	if n == nil || n.Kind != StateLeaf {
		return
	}
	n.Touched = true
	f.touched = true
}

// Reset replaces the data tree when newValues is non-nil (keeping the
// current one otherwise) and rebuilds the metadata tree from scratch:
// every touched flag false, every error list empty, both derived flags
// false.
func (f *Form) Reset(newValues map[string]any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if newValues != nil {
		f.values = cloneValues(newValues)
	}
	f.state = BuildState(f.values, f.shape, nil)
	f.valid = false
	f.touched = false
}

// Set writes a scalar value at path, creating missing intermediate
// containers along the way. When a schema is configured the form
// revalidates immediately; structural edits still require Update.
func (f *Form) Set(path string, v any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	segs := ParsePath(path)
	if len(segs) == 0 {
		return errors.New("formstate: empty field path")
	}
	if segs[0].IsIndex {
		return fmt.Errorf("formstate: top-level segment of %q cannot be an index", path)
	}
	f.values = setAt(f.values, segs, cloneValue(v)).(map[string]any)
	if f.schema != nil {
		f.validateLocked(HighlightNone)
	}
	return nil
}

// Append adds one entry to the array at path, creating the array when it
// does not exist yet. This is a structural edit: the metadata tree is not
// rebuilt until Update is called.
func (f *Form) Append(path string, v any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	segs := ParsePath(path)
	if len(segs) == 0 || segs[0].IsIndex {
		return fmt.Errorf("formstate: invalid array path %q", path)
	}
	arr, err := f.arrayAt(path, segs)
	if err != nil {
		return err
	}
	arr = append(arr, cloneValue(v))
	f.values = setAt(f.values, segs, arr).(map[string]any)
	return nil
}

// RemoveAt removes the array entry at index i together with its metadata
// entry, so no touched state leaks from the removed entry onto its
// successors. The caller still owes an Update for the rebuild and
// revalidation.
func (f *Form) RemoveAt(path string, i int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	segs := ParsePath(path)
	if len(segs) == 0 || segs[0].IsIndex {
		return fmt.Errorf("formstate: invalid array path %q", path)
	}
	arr, err := f.arrayAt(path, segs)
	if err != nil {
		return err
	}
	if i < 0 || i >= len(arr) {
		return fmt.Errorf("formstate: index %d out of range for %q", i, path)
	}
	arr = append(arr[:i:i], arr[i+1:]...)
	f.values = setAt(f.values, segs, arr).(map[string]any)
	if n := f.state.at(segs); n != nil && n.Kind == StateArray && i < len(n.Items) {
		n.Items = append(n.Items[:i], n.Items[i+1:]...)
	}
	return nil
}

func (f *Form) arrayAt(path string, segs []Segment) ([]any, error) {
	switch t := Resolve(f.values, segs).(type) {
	case nil:
		return nil, nil
	case []any:
		return t, nil
	default:
		return nil, fmt.Errorf("formstate: %q is not an array", path)
	}
}

// CSS returns the presentation class configuration bindings consume.
func (f *Form) CSS() CSSConfig { return f.css }

// ValidateOnChange reports whether change events should trigger validation.
func (f *Form) ValidateOnChange() bool { return f.validateOnChange }

// ValidateOnBlur reports whether blur events should trigger validation.
func (f *Form) ValidateOnBlur() bool { return f.validateOnBlur }

func cloneValues(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneValues(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}
