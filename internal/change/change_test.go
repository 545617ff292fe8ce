package change

import "testing"

func TestEditTypes(t *testing.T) {
	t.Run("insert edit", func(t *testing.T) {
		e := NewInsert(10, "hello")
		if e.Type != Insert {
			t.Errorf("Type = %v, want Insert", e.Type)
		}
		if e.Delta() != 5 {
			t.Errorf("Delta() = %d, want 5", e.Delta())
		}
	})

	t.Run("delete edit", func(t *testing.T) {
		e := NewDelete(5, 10, "world")
		if e.Type != Delete {
			t.Errorf("Type = %v, want Delete", e.Type)
		}
		if e.Delta() != -5 {
			t.Errorf("Delta() = %d, want -5", e.Delta())
		}
	})

	t.Run("replace edit", func(t *testing.T) {
		e := NewReplace(0, 3, "foo", "barbaz")
		if e.Type != Replace {
			t.Errorf("Type = %v, want Replace", e.Type)
		}
		if e.Delta() != 3 {
			t.Errorf("Delta() = %d, want 3", e.Delta())
		}
	})
}

func TestEditMapPos(t *testing.T) {
	e := NewReplace(5, 8, "abc", "xy")
	tests := []struct {
		name  string
		pos   int
		assoc int
		want  int
	}{
		{"before the edit", 2, 1, 2},
		{"after the edit, shifted by delta", 10, 1, 9},
		{"inside the edit, sticks to the end when assoc >= 0", 6, 1, 7},
		{"inside the edit, sticks to the start when assoc < 0", 6, -1, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.MapPos(tt.pos, tt.assoc); got != tt.want {
				t.Errorf("MapPos(%d, %d) = %d, want %d", tt.pos, tt.assoc, got, tt.want)
			}
		})
	}
}

func TestSet(t *testing.T) {
	t.Run("basic operations", func(t *testing.T) {
		var s Set
		if !s.IsEmpty() {
			t.Error("new Set should be empty")
		}

		s.Add(NewInsert(0, "hi"))
		s.Add(NewDelete(5, 7, "xy"))

		if s.Len() != 2 {
			t.Errorf("Len() = %d, want 2", s.Len())
		}
		if want := 0; s.TotalDelta() != want {
			t.Errorf("TotalDelta() = %d, want %d", s.TotalDelta(), want)
		}
		if len(s.Changes()) != 2 {
			t.Errorf("Changes() returned %d entries, want 2", len(s.Changes()))
		}
	})

	t.Run("summary", func(t *testing.T) {
		var s Set
		if got := s.Summary(); got != "no changes" {
			t.Errorf("Summary() on empty set = %q, want %q", got, "no changes")
		}

		s.Add(NewInsert(0, "hello"))
		s.Add(NewDelete(10, 13, "foo"))
		if got := s.Summary(); got == "" || got == "no changes" {
			t.Errorf("Summary() = %q, want a non-empty description", got)
		}
	})
}
