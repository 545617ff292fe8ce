package decor

// Map returns a new set with every decoration's position passed through
// changes. A decoration that maps to a span no longer inside the node that
// owns it escapes upward and is re-homed in the nearest ancestor whose new
// span contains it; a range decoration that collapses to empty is dropped.
func (s DecorationSet) Map(changes []Change) DecorationSet {
	if len(changes) == 0 {
		return s
	}
	newEnd := MapPos(s.root.length, changes, 1)
	newRoot, _ := mapNode(s.root, 0, 0, newEnd, changes)
	return DecorationSet{root: newRoot}
}

// mapNode remaps one node, given its old absolute start and the new
// absolute [newStart, newEnd) span it must now occupy. It returns the
// rebuilt node plus any decorations that no longer fit inside that span, in
// absolute coordinates, for the caller to re-home or bubble further.
func mapNode(n *node, oldStart, newStart, newEnd int, changes []Change) (*node, []Decoration) {
	newLocal := make([]Decoration, 0, len(n.local))
	var escaped []Decoration

	for _, d := range n.local {
		newFrom, newTo, ok := mapDecoration(d, oldStart, changes)
		if !ok {
			continue
		}
		if newFrom >= newStart && newTo <= newEnd {
			newLocal = append(newLocal, d.moveTo(newFrom-newStart, newTo-newStart))
		} else {
			escaped = append(escaped, d.moveTo(newFrom, newTo))
		}
	}

	newChildren := make([]*node, 0, len(n.children))
	oldOffset, newOffset := 0, 0
	for i, c := range n.children {
		childOldStart := oldStart + oldOffset
		childOldEnd := childOldStart + c.length
		childNewStart := newStart + newOffset

		// A subtree no change touches shifts by a constant amount: its
		// decorations are stored in node-local coordinates, so the subtree
		// itself is unchanged and can be shared as-is.
		if !touchesChange(childOldStart, childOldEnd, changes) {
			newChildren = append(newChildren, c)
			oldOffset += c.length
			newOffset += c.length
			continue
		}

		var childNewEnd int
		if i == len(n.children)-1 {
			childNewEnd = newEnd
		} else {
			childNewEnd = MapPos(childOldEnd, changes, 1)
		}
		if childNewEnd < childNewStart {
			childNewEnd = childNewStart
		}

		childNode, childEscaped := mapNode(c, childOldStart, childNewStart, childNewEnd, changes)
		newChildren = append(newChildren, childNode)
		for _, d := range childEscaped {
			if d.From >= newStart && d.To <= newEnd {
				newLocal = append(newLocal, d.moveTo(d.From-newStart, d.To-newStart))
			} else {
				escaped = append(escaped, d)
			}
		}

		oldOffset += c.length
		newOffset = childNewEnd - newStart
	}

	newChildren = dropEmptyChildren(newChildren)
	if len(newLocal) > 0 {
		sortDecorations(newLocal)
	}

	size := len(newLocal)
	for _, c := range newChildren {
		size += c.size
	}
	length := newEnd - newStart

	if size <= BaseNodeSize {
		tmp := &node{length: length, size: size, local: newLocal, children: newChildren}
		flat := tmp.collect(make([]Decoration, 0, size), 0)
		sortDecorations(flat)
		return &node{length: length, size: size, local: flat}, escaped
	}
	return &node{length: length, size: size, local: newLocal, children: newChildren}, escaped
}

// mapDecoration maps a single decoration, stored at oldStart's node-local
// coordinates, through changes. ok is false when a range decoration
// collapses to empty and should be dropped.
func mapDecoration(d Decoration, oldStart int, changes []Change) (newFrom, newTo int, ok bool) {
	absFrom := oldStart + d.From
	newFrom = MapPos(absFrom, changes, d.startBias())
	if d.IsPoint() {
		return newFrom, newFrom, true
	}
	absTo := oldStart + d.To
	newTo = MapPos(absTo, changes, d.endBias())
	if newTo <= newFrom {
		return 0, 0, false
	}
	return newFrom, newTo, true
}
