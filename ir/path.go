package ir

import (
	"fmt"
	"strings"
)

// Property paths name a node inside an object's content tree:
// mapping keys joined with '.', sequence positions as "[i]", e.g.
// "m_LocalPosition.x" or "m_Component[0].component". They appear in
// validator issues and merge conflicts.

func JoinPath(base, key string) string {
	if base == "" {
		return key
	}
	return base + "." + key
}

func IndexPath(base string, i int) string {
	return fmt.Sprintf("%s[%d]", base, i)
}

// GetPath navigates a property path from a mapping node. It supports
// the same syntax JoinPath and IndexPath produce.
func GetPath(n *Node, path string) *Node {
	if path == "" {
		return n
	}
	for _, seg := range strings.Split(path, ".") {
		for {
			br := strings.IndexByte(seg, '[')
			key := seg
			if br >= 0 {
				key = seg[:br]
			}
			if key != "" {
				n = Get(n, key)
				if n == nil {
					return nil
				}
			}
			if br < 0 {
				break
			}
			end := strings.IndexByte(seg[br:], ']')
			if end < 0 {
				return nil
			}
			var i int
			if _, err := fmt.Sscanf(seg[br:br+end+1], "[%d]", &i); err != nil {
				return nil
			}
			if n.Type != SequenceType || i < 0 || i >= len(n.Values) {
				return nil
			}
			n = n.Values[i]
			seg = seg[br+end+1:]
			if seg == "" {
				break
			}
		}
	}
	return n
}
