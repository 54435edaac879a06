package formstate

// BuildState produces a metadata tree mirroring data. When shape is non-nil
// the schema's declarations drive the walk, so declared fields missing from
// the data still receive metadata nodes; otherwise the walk follows the
// data's own keys and infers node kinds from runtime value types.
//
// prev, when non-nil, seeds each surviving leaf's touched flag from the node
// at the same key/index. Errors are never carried over: every node starts
// with an empty list and is repopulated by the validation pass that follows.
func BuildState(data map[string]any, shape []FieldShape, prev *StateNode) *StateNode {
	if shape != nil {
		return buildFromShape(data, shape, prev)
	}
	return buildFromData(data, prev)
}

func buildFromShape(data map[string]any, fields []FieldShape, prev *StateNode) *StateNode {
	out := newObjectNode()
	for _, f := range fields {
		var pc *StateNode
		if prev != nil {
			pc = prev.child(Segment{Key: f.Name})
		}
		switch f.Kind {
		case KindArrayOfObject:
			arr := newArrayNode()
			items, _ := data[f.Name].([]any)
			for i := range items {
				inner, _ := items[i].(map[string]any)
				var pi *StateNode
				if pc != nil {
					pi = pc.child(Segment{Index: i, IsIndex: true})
				}
				arr.Items = append(arr.Items, buildFromShape(inner, f.Fields, pi))
			}
			out.Fields[f.Name] = arr
		case KindObject:
			inner, _ := data[f.Name].(map[string]any)
			out.Fields[f.Name] = buildFromShape(inner, f.Fields, pc)
		default:
			out.Fields[f.Name] = leafFrom(pc)
		}
	}
	return out
}

func buildFromData(v any, prev *StateNode) *StateNode {
	switch t := v.(type) {
	case map[string]any:
		out := newObjectNode()
		for k, cv := range t {
			var pc *StateNode
			if prev != nil {
				pc = prev.child(Segment{Key: k})
			}
			out.Fields[k] = buildFromData(cv, pc)
		}
		return out
	case []any:
		out := newArrayNode()
		for i, cv := range t {
			var pc *StateNode
			if prev != nil {
				pc = prev.child(Segment{Index: i, IsIndex: true})
			}
			out.Items = append(out.Items, buildFromData(cv, pc))
		}
		return out
	default:
		return leafFrom(prev)
	}
}

// leafFrom creates a fresh leaf, seeding touched from the previous leaf at
// the same position when one exists.
func leafFrom(prev *StateNode) *StateNode {
	l := newLeaf()
	if prev != nil && prev.Kind == StateLeaf {
		l.Touched = prev.Touched
	}
	return l
}
