package decor

// BaseNodeSize is the maximum decoration count a node may hold before it is
// split into children; a node at or under this size is collapsed to a flat
// leaf (no children).
const BaseNodeSize = 32

// node is one immutable level of the decoration tree. Local decorations are
// stored in node-local coordinates (relative to the node's own start);
// children cover disjoint, adjacent sub-intervals starting at offset 0
// within this node and are ordered by start position.
//
// Invariants (checked by the tests in set_test.go, not at construction
// time — a node is only ever built by the functions in this package):
//
//  1. size == len(local) + sum(child.size for child in children)
//  2. local is sorted by (From, startBias)
//  3. every d in local satisfies 0 <= d.From <= d.To <= length
//  4. children are disjoint, adjacent, and sum(child.length) <= length
//  5. the empty node has length == 0, size == 0, local == nil, children == nil
type node struct {
	length int
	size   int

	local    []Decoration
	children []*node
}

// emptyNode is the shared singleton backing DecorationSet's zero value.
var emptyNode = &node{}

// DecorationSet is an immutable, persistent index of decorations over a
// span of [0, Length()) opaque integer positions. The zero value is not
// meaningful; use Empty.
type DecorationSet struct {
	root *node
}

// Empty is the sentinel zero-length, zero-size decoration set every other
// set is built from.
var Empty = DecorationSet{root: emptyNode}

// Of builds a set from a batch of decorations (order does not matter).
func Of(decorations ...Decoration) DecorationSet {
	return Empty.Update(decorations)
}

// Length returns the span of text this set covers.
func (s DecorationSet) Length() int { return s.root.length }

// Size returns the total number of decorations in the set.
func (s DecorationSet) Size() int { return s.root.size }

// IsEmpty reports whether the set has no decorations.
func (s DecorationSet) IsEmpty() bool { return s.root.size == 0 }

// Grow returns a set whose Length is increased by delta, with the same
// decorations. Used to absorb length from a sibling that collapsed away
// during a rebalance.
func (s DecorationSet) Grow(delta int) DecorationSet {
	if delta == 0 {
		return s
	}
	return DecorationSet{root: &node{
		length:   s.root.length + delta,
		size:     s.root.size,
		local:    s.root.local,
		children: s.root.children,
	}}
}

// childTargetSize is the size a child subtree should aim for once a node
// has outgrown a single flat leaf.
func childTargetSize(totalSize int) int {
	target := totalSize / BaseNodeSize
	if target < BaseNodeSize {
		target = BaseNodeSize
	}
	return target
}

// grow returns a node with length increased by delta, sharing local and
// children with n.
func (n *node) grow(delta int) *node {
	if delta == 0 {
		return n
	}
	return &node{length: n.length + delta, size: n.size, local: n.local, children: n.children}
}

// dropEmptyChildren removes children with no decorations, donating their
// length to the previous sibling so the remaining children stay adjacent. A
// leading empty child with no length to donate is dropped outright; one with
// length but no previous sibling is kept as a placeholder so the parent's
// span stays covered.
func dropEmptyChildren(children []*node) []*node {
	pruned := make([]*node, 0, len(children))
	for _, c := range children {
		if c.size == 0 {
			if len(pruned) > 0 {
				pruned[len(pruned)-1] = pruned[len(pruned)-1].grow(c.length)
				continue
			}
			if c.length == 0 {
				continue
			}
		}
		pruned = append(pruned, c)
	}
	return pruned
}

// collect appends every decoration in this subtree to target, translated
// by offset (the subtree's absolute start) plus each descendant's own
// cumulative local offset.
func (n *node) collect(target []Decoration, offset int) []Decoration {
	for _, d := range n.local {
		target = append(target, d.Move(offset))
	}
	childOffset := offset
	for _, c := range n.children {
		target = c.collect(target, childOffset)
		childOffset += c.length
	}
	return target
}
