package decor

// Decoration is an immutable annotation over [From, To) (range) or a single
// position where From == To (point), paired with the descriptor distilled
// from the spec it was built from.
type Decoration struct {
	From, To int
	desc     *desc
}

// Range constructs a range decoration over [from, to). It fails if
// from >= to: an empty range is not a valid annotation.
func Range(from, to int, spec RangeSpec) (Decoration, error) {
	if from >= to {
		return Decoration{}, ErrEmptyRange
	}
	return Decoration{From: from, To: to, desc: newRangeDesc(spec)}, nil
}

// Point constructs a point decoration at pos. Unlike Range, this always
// succeeds.
func Point(pos int, spec PointSpec) Decoration {
	return Decoration{From: pos, To: pos, desc: newPointDesc(spec)}
}

// IsPoint reports whether this decoration is a point (From == To).
func (d Decoration) IsPoint() bool { return d.From == d.To }

// RangeSpec returns the spec this decoration was built from, if it is a
// range decoration.
func (d Decoration) RangeSpec() (RangeSpec, bool) {
	if d.desc == nil || !d.desc.IsRange() {
		return RangeSpec{}, false
	}
	return d.desc.rangeSpec, true
}

// PointSpec returns the spec this decoration was built from, if it is a
// point decoration.
func (d Decoration) PointSpec() (PointSpec, bool) {
	if d.desc == nil || !d.desc.IsPoint() {
		return PointSpec{}, false
	}
	return d.desc.pointSpec, true
}

// AffectsSpans reports whether this decoration contributes to the merged
// span output of DecoratedSpansInRange: it has attributes, a tag name, or
// is collapsed. Points never affect spans.
func (d Decoration) AffectsSpans() bool {
	return d.desc != nil && d.desc.IsRange() && d.desc.affectsSpans
}

// Move returns an equivalent decoration shifted by offset.
func (d Decoration) Move(offset int) Decoration {
	return Decoration{From: d.From + offset, To: d.To + offset, desc: d.desc}
}

// moveTo returns an equivalent decoration relocated to [from, to).
func (d Decoration) moveTo(from, to int) Decoration {
	return Decoration{From: from, To: to, desc: d.desc}
}

// heapPos is the position used to order this decoration as an "active"
// item in the spans-builder heap: its absolute end.
func (d Decoration) heapPos() int { return d.To }

// startBias is the sort/stick key for this decoration's From: its
// descriptor's bias for ranges, side for points.
func (d Decoration) startBias() int { return d.desc.bias }

// endBias is the stick key for this decoration's To (range decorations
// only; points never use it since From == To).
func (d Decoration) endBias() int { return d.desc.endBias }

// less orders decorations by (From, startBias) ascending, the sort key
// DecorationSet.local is required to maintain.
func less(a, b Decoration) bool {
	if a.From != b.From {
		return a.From < b.From
	}
	return a.startBias() < b.startBias()
}
