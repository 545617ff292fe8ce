package decor

import "testing"

// checkInvariants walks s's tree and fails t if any of the documented node
// invariants (see the comment on node in set.go) are violated.
func checkInvariants(t *testing.T, s DecorationSet) {
	t.Helper()
	checkNode(t, s.root, s.root.length)
}

func checkNode(t *testing.T, n *node, length int) {
	t.Helper()

	size := len(n.local)
	for _, c := range n.children {
		size += c.size
	}
	if size != n.size {
		t.Errorf("node.size = %d, want %d (len(local)=%d + sum(child.size)=%d)", n.size, size, len(n.local), size-len(n.local))
	}

	for i, d := range n.local {
		if d.From < 0 || d.From > d.To || d.To > n.length {
			t.Errorf("local[%d] = [%d, %d) out of bounds for node of length %d", i, d.From, d.To, n.length)
		}
		if i > 0 && less(d, n.local[i-1]) {
			t.Errorf("local is not sorted by (From, startBias) at index %d", i)
		}
	}

	total := 0
	for _, c := range n.children {
		total += c.length
		checkNode(t, c, c.length)
	}
	if total > n.length {
		t.Errorf("sum(child.length) = %d exceeds node.length = %d", total, n.length)
	}
}

func rangeAt(t *testing.T, from, to int) Decoration {
	t.Helper()
	return mustRange(t, from, to, RangeSpec{Attributes: map[string]string{"class": "x"}})
}
