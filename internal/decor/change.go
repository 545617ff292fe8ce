package decor

// Change is the boundary the core consumes from an external change model:
// one text edit, expressed in the coordinate frame that results from
// applying every change before it in the same batch.
//
// decor never constructs a Change itself; callers adapt their own edit
// representation (see the sibling change package for the concrete
// implementation used by this module's demo) to satisfy this interface.
type Change interface {
	// MapPos maps a single position through this change with the given
	// association: assoc < 0 sticks to the content before the change,
	// assoc >= 0 sticks to the content after it.
	MapPos(pos, assoc int) int

	// OldFrom and OldTo delimit the affected range before this change was
	// applied, in the coordinate frame described above.
	OldFrom() int
	OldTo() int

	// Delta is the net length change this edit introduces: len(new) - len(old).
	Delta() int
}

// MapPos folds changes left to right, applying each one's MapPos in turn.
func MapPos(pos int, changes []Change, assoc int) int {
	for _, c := range changes {
		pos = c.MapPos(pos, assoc)
	}
	return pos
}

// touchesChange reports whether any change's old range intersects [from, to].
// from/to are given in the coordinate frame before any change in changes has
// been applied; as changes are walked, the window is advanced by the net
// length delta of every change already considered so that each comparison
// happens in that change's own frame.
func touchesChange(from, to int, changes []Change) bool {
	curFrom, curTo := from, to
	for _, c := range changes {
		if c.OldFrom() <= curTo && curFrom <= c.OldTo() {
			return true
		}
		delta := c.Delta()
		curFrom += delta
		curTo += delta
	}
	return false
}
