package decor

// big dominates any realistic side value so that a point's signed side and
// a range endpoint's inclusive/exclusive bias can share one comparison key
// without colliding. See desc.bias / desc.endBias below.
const big = 2_000_000_000

// RangeSpec describes an annotation over a half-open interval [from, to).
type RangeSpec struct {
	// InclusiveStart makes an insertion exactly at the start absorbed into
	// the range when the set is remapped across an edit. Default false.
	InclusiveStart bool

	// InclusiveEnd makes an insertion exactly at the end absorbed into the
	// range when the set is remapped across an edit. Default false.
	InclusiveEnd bool

	// Attributes are merged into the styled output of DecoratedSpansInRange.
	Attributes map[string]string

	// LineAttributes are attributes applied to whole lines the range
	// touches, rather than the inline span itself.
	LineAttributes map[string]string

	// TagName names the element/widget kind a renderer should produce.
	TagName string

	// Collapsed marks the range as collapsed: every span of the merged span
	// output that it covers has Collapsed set. The output still covers the
	// range's interior with ordinary spans; it does not replace it with a
	// single placeholder.
	Collapsed bool
}

// affectsSpans reports whether this spec contributes to the merged span
// output of DecoratedSpansInRange.
func (s RangeSpec) affectsSpans() bool {
	return len(s.Attributes) > 0 || s.TagName != "" || s.Collapsed
}

// PointSpec describes an annotation at a single position.
type PointSpec struct {
	// Side controls which side of an adjacent insertion the point sticks
	// to when the set is remapped: negative sticks left, non-negative
	// sticks right (and doubles as the local sort-tie bias). Default 0.
	Side int

	// LineAttributes are attributes applied to the line the point sits on.
	LineAttributes map[string]string
}

// descKind distinguishes the two closed variants of a decoration
// descriptor. Dispatch is always on this tag, never on an interface method
// set, per the range/point sum type the rest of the package builds on.
type descKind uint8

const (
	descRange descKind = iota
	descPoint
)

// desc is the immutable, derived-once specification for one class of
// decoration: either a RangeSpec or a PointSpec plus the bias values that
// control stickiness across edits and tie-breaking during sorts.
type desc struct {
	kind descKind

	rangeSpec RangeSpec
	pointSpec PointSpec

	bias    int // start bias (range) or side (point)
	endBias int // end bias (range only)

	affectsSpans bool
}

func newRangeDesc(spec RangeSpec) *desc {
	d := &desc{kind: descRange, rangeSpec: spec, affectsSpans: spec.affectsSpans()}
	if spec.InclusiveStart {
		d.bias = -big
	} else {
		d.bias = big
	}
	if spec.InclusiveEnd {
		d.endBias = big
	} else {
		d.endBias = -big
	}
	return d
}

func newPointDesc(spec PointSpec) *desc {
	return &desc{kind: descPoint, pointSpec: spec, bias: spec.Side}
}

// IsRange reports whether this descriptor was derived from a RangeSpec.
func (d *desc) IsRange() bool { return d.kind == descRange }

// IsPoint reports whether this descriptor was derived from a PointSpec.
func (d *desc) IsPoint() bool { return d.kind == descPoint }
