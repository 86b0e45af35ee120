package contentpath

import (
	"strconv"
	"strings"
)

// Segment is one dot-separated part of a content path.
type Segment struct {
	Name     string
	Index    int
	HasIndex bool
}

// ParseSegment splits "name[3]" into its name and index.
// A bracket that does not hold a non-negative integer is kept as part of the name.
func ParseSegment(s string) Segment {
	open := strings.IndexByte(s, '[')
	if open < 0 || !strings.HasSuffix(s, "]") {
		return Segment{Name: s}
	}
	idx, err := strconv.Atoi(s[open+1 : len(s)-1])
	if err != nil || idx < 0 {
		return Segment{Name: s}
	}
	return Segment{Name: s[:open], Index: idx, HasIndex: true}
}

// Parse splits a path into segments. It returns false for an empty path or
// an empty segment.
func Parse(path string) ([]Segment, bool) {
	if path == "" {
		return nil, false
	}
	parts := strings.Split(path, ".")
	segs := make([]Segment, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			return nil, false
		}
		seg := ParseSegment(p)
		if seg.Name == "" && !seg.HasIndex {
			return nil, false
		}
		segs = append(segs, seg)
	}
	return segs, true
}

// HasIndex reports whether any segment of path addresses an array element.
func HasIndex(path string) bool {
	segs, ok := Parse(path)
	if !ok {
		return false
	}
	for _, s := range segs {
		if s.HasIndex {
			return true
		}
	}
	return false
}

// Set writes value into root at path and reports whether the write happened.
//
// Paths with an index segment are a no-op: array writes are unsupported and
// the tree is left exactly as it was. Validation runs over the whole path
// before anything is created, so a rejected path never leaves partial maps.
func Set(root map[string]any, path string, value any) bool {
	if root == nil {
		return false
	}
	segs, ok := Parse(path)
	if !ok {
		return false
	}
	for _, s := range segs {
		if s.HasIndex {
			return false
		}
	}

	node := root
	for _, s := range segs[:len(segs)-1] {
		next, ok := node[s.Name].(map[string]any)
		if !ok {
			next = make(map[string]any)
			node[s.Name] = next
		}
		node = next
	}
	node[segs[len(segs)-1].Name] = value
	return true
}

// Get reads the value stored at path. Index segments are not traversed.
func Get(root map[string]any, path string) (any, bool) {
	segs, ok := Parse(path)
	if !ok {
		return nil, false
	}
	var cur any = root
	for _, s := range segs {
		if s.HasIndex {
			return nil, false
		}
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		if cur, ok = m[s.Name]; !ok {
			return nil, false
		}
	}
	return cur, true
}
