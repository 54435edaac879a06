package formstate

import "log/slog"

// Highlight selects which fields a validation pass force-marks touched.
type Highlight int

const (
	HighlightNone   Highlight = iota // leave touched flags as they are
	HighlightErrors                  // force-touch invalid fields only
	HighlightAll                     // force-touch every field
)

func (h Highlight) policy() (touchValid, touchInvalid bool) {
	switch h {
	case HighlightAll:
		return true, true
	case HighlightErrors:
		return false, true
	default:
		return false, false
	}
}

// runValidation executes one full pass: reset every Errors list, apply the
// touch policy, run the capability against the whole data tree, and merge
// the violations back in. The incoming tree is never mutated; when error
// application fails midway the original tree is returned so no partially
// mutated state escapes.
func runValidation(state *StateNode, data map[string]any, s Schema, h Highlight, log *slog.Logger) (next *StateNode, valid bool) {
	touchValid, touchInvalid := h.policy()
	work := state.Clone()
	work.resetErrors(touchValid)

	err := s.Validate(data)
	if err == nil {
		return work, true
	}
	errs, ok := AsFieldErrors(err)
	if !ok {
		log.Debug("validation capability failed without field errors", "err", err)
		return work, false
	}
	if !applyFieldErrors(work, errs, touchInvalid, log) {
		return state, false
	}
	return work, false
}

// applyFieldErrors merges violations into the tree. It reports false when
// application failed midway, in which case the tree must be discarded.
func applyFieldErrors(root *StateNode, errs FieldErrors, touchInvalid bool, log *slog.Logger) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Debug("error application failed, keeping previous state", "panic", r)
			ok = false
		}
	}()
	for _, fe := range errs {
		applyFieldError(root, fe, touchInvalid, log)
	}
	return true
}

func applyFieldError(root *StateNode, fe FieldError, touchInvalid bool, log *slog.Logger) {
	segs := ParsePath(fe.Path)
	if len(segs) == 0 {
		// whole-form message, held at the root container
		root.Errors = append(root.Errors, fe.Message)
		return
	}
	node := root
	for _, seg := range segs[:len(segs)-1] {
		node = node.child(seg)
		if node == nil {
			// stale or partial schema: tolerated, the violation is dropped
			log.Debug("dropping violation for unresolvable path", "path", fe.Path)
			return
		}
	}
	last := segs[len(segs)-1]
	target := node.child(last)
	if target == nil {
		// a missing record key gets a default leaf; a missing array index
		// would break the shape mirror, so the violation is dropped
		if node.Kind != StateObject || last.IsIndex {
			log.Debug("dropping violation for unresolvable path", "path", fe.Path)
			return
		}
		target = newLeaf()
		node.Fields[last.Key] = target
	}
	target.Errors = append(target.Errors, fe.Message)
	if target.Kind == StateLeaf && touchInvalid {
		target.Touched = true
	}
}
