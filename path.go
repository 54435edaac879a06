package formstate

import (
	"fmt"
	"strconv"
	"strings"
)

// Segment is one step of a parsed field path: a record key or an array index.
type Segment struct {
	Key     string
	Index   int
	IsIndex bool
}

func (s Segment) String() string {
	if s.IsIndex {
		return "[" + strconv.Itoa(s.Index) + "]"
	}
	return s.Key
}

// ParsePath splits a dotted/bracketed field path such as
// "users[0].address.city" into segments. Empty segments are ignored, so
// "a..b" parses the same as "a.b". Bracket contents that are not a
// non-negative integer are treated as record keys.
func ParsePath(path string) []Segment {
	var segs []Segment
	var cur strings.Builder
	flush := func() {
		if cur.Len() == 0 {
			return
		}
		segs = append(segs, Segment{Key: cur.String()})
		cur.Reset()
	}
	for i := 0; i < len(path); i++ {
		switch c := path[i]; c {
		case '.':
			flush()
		case '[':
			flush()
			j := strings.IndexByte(path[i:], ']')
			if j < 0 {
				// unterminated bracket: take the rest as a key
				cur.WriteString(path[i+1:])
				i = len(path)
				continue
			}
			inner := path[i+1 : i+j]
			if n, err := strconv.Atoi(inner); err == nil && n >= 0 {
				segs = append(segs, Segment{Index: n, IsIndex: true})
			} else if inner != "" {
				segs = append(segs, Segment{Key: inner})
			}
			i += j
		case ']':
			flush()
		default:
			cur.WriteByte(c)
		}
	}
	flush()
	return segs
}

// Resolve walks segs from root and returns the node found, or nil when any
// segment is absent along the way. A nil result means "no such field yet",
// not a fault.
func Resolve(root any, segs []Segment) any {
	cur := root
	for _, seg := range segs {
		switch c := cur.(type) {
		case map[string]any:
			if seg.IsIndex {
				return nil
			}
			v, ok := c[seg.Key]
			if !ok {
				return nil
			}
			cur = v
		case []any:
			if !seg.IsIndex || seg.Index < 0 || seg.Index >= len(c) {
				return nil
			}
			cur = c[seg.Index]
		default:
			return nil
		}
	}
	return cur
}

// ResolveParent walks to the next-to-last segment and returns the container
// owning the final one. ok is false when an intermediate is missing or segs
// is empty, with the same null-propagation rule as Resolve.
func ResolveParent(root any, segs []Segment) (parent any, last Segment, ok bool) {
	if len(segs) == 0 {
		return nil, Segment{}, false
	}
	p := Resolve(root, segs[:len(segs)-1])
	if p == nil {
		return nil, Segment{}, false
	}
	return p, segs[len(segs)-1], true
}

// setAt writes v at segs under cur, creating missing records and extending
// arrays with nil slots as needed. It returns the (possibly replaced)
// container, so callers must reassign.
func setAt(cur any, segs []Segment, v any) any {
	if len(segs) == 0 {
		return v
	}
	seg := segs[0]
	if seg.IsIndex {
		arr, _ := cur.([]any)
		for len(arr) <= seg.Index {
			arr = append(arr, nil)
		}
		arr[seg.Index] = setAt(arr[seg.Index], segs[1:], v)
		return arr
	}
	m, ok := cur.(map[string]any)
	if !ok {
		m = map[string]any{}
	}
	m[seg.Key] = setAt(m[seg.Key], segs[1:], v)
	return m
}

// Path builds dotted/bracketed field paths chain-safely so that schema
// implementations emit exactly the grammar ParsePath understands.
type Path struct {
	s string
}

// At starts a Path from an already rendered path string.
func At(path string) Path { return Path{s: path} }

// Field appends a record key.
func (p Path) Field(name string) Path {
	if name == "" {
		return p
	}
	if p.s == "" {
		return Path{s: name}
	}
	return Path{s: p.s + "." + name}
}

// Index appends an array index.
func (p Path) Index(i int) Path {
	return Path{s: p.s + "[" + strconv.Itoa(i) + "]"}
}

func (p Path) String() string { return p.s }

// Err builds a FieldError at this path. kv lists alternating parameter
// names and values.
func (p Path) Err(code, msg string, kv ...any) FieldError {
	var params map[string]any
	if len(kv) > 1 {
		params = make(map[string]any, len(kv)/2)
		for i := 0; i+1 < len(kv); i += 2 {
			params[fmt.Sprint(kv[i])] = kv[i+1]
		}
	}
	return FieldError{Path: p.s, Code: code, Message: msg, Params: params}
}
