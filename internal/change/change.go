// Package change adapts a document's edit history into the decor.Change
// boundary: single edits batched into a Set whose Changes method yields the
// slice decor.DecorationSet.Map consumes.
package change

import (
	"fmt"
	"strings"

	"github.com/dshills/decorset/internal/decor"
)

// Type categorizes an Edit.
type Type uint8

const (
	// Insert indicates text was inserted (OldText is empty).
	Insert Type = iota

	// Delete indicates text was deleted (NewText is empty).
	Delete

	// Replace indicates text was replaced (both OldText and NewText present).
	Replace
)

// String returns a human-readable representation of the edit type.
func (t Type) String() string {
	switch t {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	case Replace:
		return "replace"
	default:
		return "unknown"
	}
}

// Edit is a single text change, expressed in the coordinate frame produced
// by every edit before it in the same Set. It satisfies decor.Change
// directly.
type Edit struct {
	Type             Type
	From, To         int
	OldText, NewText string
}

// NewInsert creates an edit representing a pure insertion.
func NewInsert(at int, text string) Edit {
	return Edit{Type: Insert, From: at, To: at, NewText: text}
}

// NewDelete creates an edit representing a pure deletion.
func NewDelete(from, to int, oldText string) Edit {
	return Edit{Type: Delete, From: from, To: to, OldText: oldText}
}

// NewReplace creates an edit representing a replacement.
func NewReplace(from, to int, oldText, newText string) Edit {
	return Edit{Type: Replace, From: from, To: to, OldText: oldText, NewText: newText}
}

// OldFrom and OldTo implement decor.Change.
func (e Edit) OldFrom() int { return e.From }
func (e Edit) OldTo() int   { return e.To }

// Delta implements decor.Change: the net length change this edit introduces.
func (e Edit) Delta() int { return len(e.NewText) - len(e.OldText) }

// MapPos implements decor.Change. A position before the edit is untouched;
// one after it shifts by Delta; one within [From, To] sticks to the edit's
// start when assoc < 0, or to its end when assoc >= 0.
func (e Edit) MapPos(pos, assoc int) int {
	switch {
	case pos < e.From:
		return pos
	case pos > e.To:
		return pos + e.Delta()
	default:
		if assoc < 0 {
			return e.From
		}
		return e.From + len(e.NewText)
	}
}

// String returns a human-readable representation of the edit.
func (e Edit) String() string {
	switch e.Type {
	case Insert:
		return fmt.Sprintf("insert %q at %d", truncate(e.NewText), e.From)
	case Delete:
		return fmt.Sprintf("delete %q at [%d, %d)", truncate(e.OldText), e.From, e.To)
	case Replace:
		return fmt.Sprintf("replace %q with %q at [%d, %d)", truncate(e.OldText), truncate(e.NewText), e.From, e.To)
	default:
		return "unknown edit"
	}
}

func truncate(s string) string {
	if len(s) > 20 {
		return s[:17] + "..."
	}
	return s
}

// Set is an ordered batch of edits to apply together, each already
// expressed in the coordinate frame produced by the ones before it.
type Set struct {
	Edits []Edit
}

// Add appends an edit to the set.
func (s *Set) Add(e Edit) { s.Edits = append(s.Edits, e) }

// Len returns the number of edits in the set.
func (s *Set) Len() int { return len(s.Edits) }

// IsEmpty reports whether the set has no edits.
func (s *Set) IsEmpty() bool { return len(s.Edits) == 0 }

// TotalDelta returns the net length change of every edit in the set.
func (s *Set) TotalDelta() int {
	var total int
	for _, e := range s.Edits {
		total += e.Delta()
	}
	return total
}

// Changes returns the edits as decor.Change values, ready for
// decor.DecorationSet.Map.
func (s *Set) Changes() []decor.Change {
	out := make([]decor.Change, len(s.Edits))
	for i, e := range s.Edits {
		out[i] = e
	}
	return out
}

// Summary returns a human-readable summary of the set's edits.
func (s *Set) Summary() string {
	if s.IsEmpty() {
		return "no changes"
	}

	var inserts, deletes, replaces int
	var inserted, deleted int

	for _, e := range s.Edits {
		switch e.Type {
		case Insert:
			inserts++
			inserted += len(e.NewText)
		case Delete:
			deletes++
			deleted += len(e.OldText)
		case Replace:
			replaces++
			inserted += len(e.NewText)
			deleted += len(e.OldText)
		}
	}

	var parts []string
	if inserts > 0 {
		parts = append(parts, fmt.Sprintf("%d inserts (+%d bytes)", inserts, inserted))
	}
	if deletes > 0 {
		parts = append(parts, fmt.Sprintf("%d deletes (-%d bytes)", deletes, deleted))
	}
	if replaces > 0 {
		parts = append(parts, fmt.Sprintf("%d replaces", replaces))
	}
	return strings.Join(parts, ", ")
}

var _ decor.Change = Edit{}
