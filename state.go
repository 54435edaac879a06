package formstate

// StateKind discriminates metadata nodes.
type StateKind int

const (
	StateLeaf StateKind = iota
	StateObject
	StateArray
)

// StateNode is one node of the metadata tree mirroring the data tree.
// Leaves carry the touched flag and the field's validation messages.
// Container nodes carry their children plus an Errors list of their own for
// object/array level messages; their Touched flag stays false.
type StateNode struct {
	Kind    StateKind
	Touched bool
	Errors  []string
	Fields  map[string]*StateNode
	Items   []*StateNode
}

func newLeaf() *StateNode { return &StateNode{Kind: StateLeaf, Errors: []string{}} }

func newObjectNode() *StateNode {
	return &StateNode{Kind: StateObject, Errors: []string{}, Fields: map[string]*StateNode{}}
}

func newArrayNode() *StateNode { return &StateNode{Kind: StateArray, Errors: []string{}} }

// Clone returns a deep copy sharing no mutable state with the receiver.
func (n *StateNode) Clone() *StateNode {
	if n == nil {
		return nil
	}
	out := &StateNode{Kind: n.Kind, Touched: n.Touched}
	out.Errors = append([]string{}, n.Errors...)
	if n.Fields != nil {
		out.Fields = make(map[string]*StateNode, len(n.Fields))
		for k, c := range n.Fields {
			out.Fields[k] = c.Clone()
		}
	}
	if n.Items != nil {
		out.Items = make([]*StateNode, len(n.Items))
		for i, c := range n.Items {
			out.Items[i] = c.Clone()
		}
	}
	return out
}

// child returns the node addressed by one segment, nil when absent or when
// the segment kind does not match the container kind.
func (n *StateNode) child(seg Segment) *StateNode {
	if n == nil {
		return nil
	}
	if seg.IsIndex {
		if n.Kind != StateArray || seg.Index < 0 || seg.Index >= len(n.Items) {
			return nil
		}
		return n.Items[seg.Index]
	}
	if n.Kind != StateObject {
		return nil
	}
	return n.Fields[seg.Key]
}

// Lookup resolves a field path within the metadata tree, nil when absent.
func (n *StateNode) Lookup(path string) *StateNode { return n.at(ParsePath(path)) }

func (n *StateNode) at(segs []Segment) *StateNode {
	cur := n
	for _, seg := range segs {
		cur = cur.child(seg)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// Valid reports whether this node carries no validation messages of its own.
func (n *StateNode) Valid() bool { return n != nil && len(n.Errors) == 0 }

// HasErrors reports whether any node in the subtree carries a message.
func (n *StateNode) HasErrors() bool {
	if n == nil {
		return false
	}
	if len(n.Errors) > 0 {
		return true
	}
	for _, c := range n.Fields {
		if c.HasErrors() {
			return true
		}
	}
	for _, c := range n.Items {
		if c.HasErrors() {
			return true
		}
	}
	return false
}

// resetErrors empties every Errors list in the subtree and, when touch is
// set, force-marks every leaf touched. Touched is monotonic: this never
// resets it to false.
func (n *StateNode) resetErrors(touch bool) {
	if n == nil {
		return
	}
	n.Errors = []string{}
	if n.Kind == StateLeaf {
		if touch {
			n.Touched = true
		}
		return
	}
	for _, c := range n.Fields {
		c.resetErrors(touch)
	}
	for _, c := range n.Items {
		c.resetErrors(touch)
	}
}
