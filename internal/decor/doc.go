// Package decor implements a positional decoration index: an immutable,
// persistent tree that stores range and point annotations over a linear
// text buffer identified only by integer offsets.
//
// The package provides:
//
//   - [RangeSpec] / [PointSpec] / [Decoration]: the annotation shapes a caller attaches
//     to a range or a single position.
//   - [DecorationSet]: an immutable B-tree-shaped index of decorations,
//     updated and remapped without ever mutating a prior snapshot.
//   - [DecorationSet.Update]: bulk insertion and filtered removal.
//   - [DecorationSet.Map]: remapping an entire set across a batch of text
//     edits, re-homing decorations that outgrow the node they used to live in.
//   - [DecoratedSpansInRange]: merging overlapping range decorations from one
//     or more sets into a flat, non-overlapping, styled span list.
//
// # Basic usage
//
//	set := decor.Empty
//	d, _ := decor.Range(5, 10, decor.RangeSpec{Attributes: map[string]string{"class": "warn"}})
//	set = set.Update([]decor.Decoration{d})
//
//	spans := decor.DecoratedSpansInRange([]decor.DecorationSet{set}, 0, set.Length())
//
// # Immutability
//
// Every operation returns a new DecorationSet; the receiver is never
// modified. Unchanged subtrees are shared by reference between the old and
// new root, so holding on to an older set remains safe and cheap.
package decor
