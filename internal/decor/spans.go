package decor

import "sort"

// DecoratedRange is one maximal run within a query window over which the
// same merged set of range-decoration attributes applies.
type DecoratedRange struct {
	From, To       int
	Attributes     map[string]string
	LineAttributes map[string]string
	TagName        string
	Collapsed      bool
}

// DecoratedSpansInRange merges every range decoration that affects spans
// (see Decoration.AffectsSpans) across sets and overlaps [from, to) into
// maximal runs sharing the same merged attributes. The returned spans
// always cover [from, to) exactly with no gaps: a stretch touched by no
// decoration comes back as a span with empty Attributes and TagName rather
// than being omitted. Contributors are merged in set order (and, within a
// set, in the set's own traversal order): sets later in the slice take
// precedence on TagName, Collapsed is set if any contributor is collapsed,
// style values from every contributing decoration are joined with ";",
// class values with a space, and any other attribute key is overwritten
// by the last contributor.
func DecoratedSpansInRange(sets []DecorationSet, from, to int) []DecoratedRange {
	if from >= to {
		return nil
	}

	var candidates []Decoration
	rank := make(map[Decoration]int)
	for _, s := range sets {
		all := s.root.collect(make([]Decoration, 0, s.root.size), 0)
		for _, d := range all {
			if d.AffectsSpans() && d.From < to && d.To > from {
				rank[d] = len(candidates)
				candidates = append(candidates, d)
			}
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool { return less(candidates[i], candidates[j]) })

	boundarySet := map[int]struct{}{from: {}, to: {}}
	for _, d := range candidates {
		if d.From > from && d.From < to {
			boundarySet[d.From] = struct{}{}
		}
		if d.To > from && d.To < to {
			boundarySet[d.To] = struct{}{}
		}
	}
	boundaries := make([]int, 0, len(boundarySet))
	for p := range boundarySet {
		boundaries = append(boundaries, p)
	}
	sort.Ints(boundaries)

	var active activeHeap
	ci := 0
	var out []DecoratedRange
	for i := 0; i+1 < len(boundaries); i++ {
		segFrom, segTo := boundaries[i], boundaries[i+1]

		for ci < len(candidates) && candidates[ci].From <= segFrom {
			active.push(candidates[ci])
			ci++
		}
		for active.Len() > 0 && active.peekEnd() <= segFrom {
			active.pop()
		}

		merged := mergeSpans(active, rank)
		if n := len(out); n > 0 && out[n-1].To == segFrom && sameSpan(out[n-1], merged) {
			out[n-1].To = segTo
			continue
		}
		merged.From, merged.To = segFrom, segTo
		out = append(out, merged)
	}
	return out
}

func mergeSpans(active activeHeap, rank map[Decoration]int) DecoratedRange {
	ordered := append([]Decoration(nil), active...)
	sort.SliceStable(ordered, func(i, j int) bool { return rank[ordered[i]] < rank[ordered[j]] })

	var out DecoratedRange
	for _, d := range ordered {
		spec, _ := d.RangeSpec()
		if spec.Collapsed {
			out.Collapsed = true
		}
		if spec.TagName != "" {
			out.TagName = spec.TagName
		}
		for k, v := range spec.Attributes {
			if out.Attributes == nil {
				out.Attributes = make(map[string]string)
			}
			switch k {
			case "style":
				if existing, ok := out.Attributes["style"]; ok {
					out.Attributes["style"] = existing + ";" + v
					continue
				}
				out.Attributes["style"] = v
			case "class":
				if existing, ok := out.Attributes["class"]; ok {
					out.Attributes["class"] = existing + " " + v
					continue
				}
				out.Attributes["class"] = v
			default:
				out.Attributes[k] = v
			}
		}
		for k, v := range spec.LineAttributes {
			if out.LineAttributes == nil {
				out.LineAttributes = make(map[string]string)
			}
			out.LineAttributes[k] = v
		}
	}
	return out
}

func sameSpan(a, b DecoratedRange) bool {
	return a.TagName == b.TagName && a.Collapsed == b.Collapsed &&
		mapsEqual(a.Attributes, b.Attributes) && mapsEqual(a.LineAttributes, b.LineAttributes)
}

func mapsEqual(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	return true
}
