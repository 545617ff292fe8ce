package decor

import "sort"

// Update returns a new set with additions inserted and, if WithFilter is
// given, every existing decoration intersecting the filter window (default
// the whole set) for which the filter returns false removed. Decorations
// outside the window are preserved without the filter being consulted.
//
// If additions is empty and no decoration is dropped, Update returns the
// receiver unchanged (the new and old set share the same root).
func (s DecorationSet) Update(additions []Decoration, opts ...UpdateOption) DecorationSet {
	o := updateOptions{filterFrom: 0, filterTo: s.Length()}
	for _, opt := range opts {
		opt(&o)
	}

	sorted := append([]Decoration(nil), additions...)
	sortDecorations(sorted)

	maxTo := s.root.length
	for _, d := range sorted {
		if d.To > maxTo {
			maxTo = d.To
		}
	}

	root := s.root
	if maxTo > root.length {
		root = &node{length: maxTo, size: root.size, local: root.local, children: root.children}
	}

	newRoot := updateInner(root, sorted, o.filter, o.filterFrom, o.filterTo, 0)
	if newRoot == root && root == s.root {
		return s
	}
	return DecorationSet{root: newRoot}
}

// updateInner applies additions (already in n's local coordinate frame,
// sorted by (From, startBias)) and the filter window to n, returning a new
// node. base is n's absolute start, used only to translate n.local into
// document coordinates before calling filter: the window and the additions
// stay in n's own local frame throughout. It returns n itself, unmodified,
// when nothing would change.
func updateInner(n *node, additions []Decoration, filter FilterFunc, filterFrom, filterTo, base int) *node {
	// Step 1: local filter pass.
	newLocal := n.local
	if filter != nil {
		var kept []Decoration
		changed := false
		for _, d := range n.local {
			if intersectsWindow(d, filterFrom, filterTo) && !filter(d.Move(base)) {
				changed = true
				continue
			}
			kept = append(kept, d)
		}
		if changed {
			newLocal = kept
		}
	}

	// Step 2: distribute additions across existing children.
	newChildren := make([]*node, 0, len(n.children))
	var extraLocal []Decoration
	childrenChanged := false
	ai, offset := 0, 0
	for _, child := range n.children {
		childEnd := offset + child.length
		var childAdds []Decoration
		for ai < len(additions) && additions[ai].From < childEnd {
			a := additions[ai]
			if a.To > childEnd {
				extraLocal = append(extraLocal, a)
			} else {
				childAdds = append(childAdds, a.moveTo(a.From-offset, a.To-offset))
			}
			ai++
		}
		newChild := child
		if len(childAdds) > 0 || (filter != nil && windowTouches(filterFrom, filterTo, offset, childEnd)) {
			newChild = updateInner(child, childAdds, filter, filterFrom-offset, filterTo-offset, base+offset)
			if newChild != child {
				childrenChanged = true
			}
		}
		newChildren = append(newChildren, newChild)
		offset = childEnd
	}

	// Step 3: tail additions, past the last child, become fresh subtrees.
	if ai < len(additions) {
		tail := additions[ai:]
		childSize := childTargetSize(n.size + len(additions))
		tailChildren, escaped := appendDecorations(tail, childSize, offset)
		newChildren = append(newChildren, tailChildren...)
		extraLocal = append(extraLocal, escaped...)
		childrenChanged = true
	}

	if len(extraLocal) > 0 {
		combined := append([]Decoration{}, newLocal...)
		combined = append(combined, extraLocal...)
		sortDecorations(combined)
		newLocal = combined
	}

	if !childrenChanged && len(newLocal) == len(n.local) {
		isSameSlice := true
		for i := range newLocal {
			if newLocal[i] != n.local[i] {
				isSameSlice = false
				break
			}
		}
		if isSameSlice {
			return n
		}
	}

	size := len(newLocal)
	for _, c := range newChildren {
		size += c.size
	}

	// Step 4: leaf collapse.
	if size <= BaseNodeSize {
		tmp := &node{length: n.length, size: size, local: newLocal, children: newChildren}
		flat := tmp.collect(make([]Decoration, 0, size), 0)
		sortDecorations(flat)
		return &node{length: n.length, size: size, local: flat}
	}

	// Step 5: rebalance.
	newLocal, newChildren = rebalanceChildren(newLocal, newChildren, childTargetSize(size))
	return &node{length: n.length, size: size, local: newLocal, children: newChildren}
}

// intersectsWindow reports whether d's interval intersects [from, to),
// treating a point decoration as touching the window if its position falls
// within it (inclusive, since a point has no interior to overlap with).
func intersectsWindow(d Decoration, from, to int) bool {
	if d.IsPoint() {
		return d.From >= from && d.From <= to
	}
	return d.From < to && d.To > from
}

// windowTouches reports whether the filter window overlaps a child's
// [start, end) span. Inclusive on both sides so a zero-width window at a
// boundary is not silently skipped.
func windowTouches(filterFrom, filterTo, start, end int) bool {
	return filterFrom <= end && filterTo >= start
}

func sortDecorations(ds []Decoration) {
	sort.SliceStable(ds, func(i, j int) bool { return less(ds[i], ds[j]) })
}

// appendDecorations chunks a sorted, contiguous run of additions into new
// leaf subtrees of at most childSize decorations each, placed back to back
// starting at startOffset in the parent's local coordinate frame. A
// decoration that starts before the span of the chunk it falls in is
// returned in escaped, unchanged, for the parent to keep in its own local.
func appendDecorations(decorations []Decoration, childSize int, startOffset int) (children []*node, escaped []Decoration) {
	cursor := startOffset
	for i := 0; i < len(decorations); i += childSize {
		end := i + childSize
		if end > len(decorations) {
			end = len(decorations)
		}

		maxTo := cursor
		var local []Decoration
		for _, d := range decorations[i:end] {
			if d.From < cursor {
				escaped = append(escaped, d)
				continue
			}
			if d.To > maxTo {
				maxTo = d.To
			}
			local = append(local, d.moveTo(d.From-cursor, d.To-cursor))
		}
		if len(local) == 0 {
			continue
		}
		length := maxTo - cursor

		children = append(children, &node{length: length, size: len(local), local: local})
		cursor += length
	}
	return children, escaped
}

// rebalanceChildren drops emptied children (donating their length to the
// previous sibling), unwraps children that have outgrown 2*childSize while
// holding little of their own content directly, and merges runs of small
// siblings back into a single subtree when they fit within childSize.
func rebalanceChildren(local []Decoration, children []*node, childSize int) ([]Decoration, []*node) {
	pruned := dropEmptyChildren(children)

	unwrapped := make([]*node, 0, len(pruned))
	offset := 0
	for _, c := range pruned {
		if c.size > 2*childSize && len(c.children) > 0 && len(c.local)*2 < c.length {
			for _, d := range c.local {
				local = append(local, d.moveTo(d.From+offset, d.To+offset))
			}
			promoted := append([]*node(nil), c.children...)
			covered := 0
			for _, cc := range promoted {
				covered += cc.length
			}
			last := len(promoted) - 1
			promoted[last] = promoted[last].grow(c.length - covered)
			unwrapped = append(unwrapped, promoted...)
		} else {
			unwrapped = append(unwrapped, c)
		}
		offset += c.length
	}

	grouped := groupSmallSiblings(unwrapped, childSize)
	sortDecorations(local)
	return local, grouped
}

// groupSmallSiblings merges runs of adjacent leaf children whose combined
// size fits within childSize into a single flat subtree.
func groupSmallSiblings(children []*node, childSize int) []*node {
	var out []*node
	i := 0
	for i < len(children) {
		runSize := children[i].size
		runLength := children[i].length
		j := i + 1
		for j < len(children) &&
			len(children[j-1].children) == 0 && len(children[j].children) == 0 &&
			runSize+children[j].size <= childSize {
			runSize += children[j].size
			runLength += children[j].length
			j++
		}
		if j == i+1 {
			out = append(out, children[i])
			i++
			continue
		}

		merged := make([]Decoration, 0, runSize)
		childOffset := 0
		for _, c := range children[i:j] {
			merged = c.collect(merged, childOffset)
			childOffset += c.length
		}
		sortDecorations(merged)
		out = append(out, &node{length: runLength, size: runSize, local: merged})
		i = j
	}
	return out
}
