package decor

import "testing"

func TestRangeRejectsEmpty(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
	}{
		{"equal", 5, 5},
		{"reversed", 8, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Range(tt.from, tt.to, RangeSpec{}); err != ErrEmptyRange {
				t.Errorf("Range(%d, %d) error = %v, want ErrEmptyRange", tt.from, tt.to, err)
			}
		})
	}
}

func TestPointAlwaysSucceeds(t *testing.T) {
	d := Point(10, PointSpec{Side: 1})
	if !d.IsPoint() {
		t.Error("Point decoration should report IsPoint() == true")
	}
	if d.From != 10 || d.To != 10 {
		t.Errorf("Point(10, ...) = [%d, %d), want [10, 10)", d.From, d.To)
	}
}

func TestAffectsSpans(t *testing.T) {
	tests := []struct {
		name string
		d    Decoration
		want bool
	}{
		{"point", Point(1, PointSpec{}), false},
		{"bare range", mustRange(t, 0, 5, RangeSpec{}), false},
		{"range with attributes", mustRange(t, 0, 5, RangeSpec{Attributes: map[string]string{"class": "x"}}), true},
		{"range with tag", mustRange(t, 0, 5, RangeSpec{TagName: "mark"}), true},
		{"collapsed range", mustRange(t, 0, 5, RangeSpec{Collapsed: true}), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.d.AffectsSpans(); got != tt.want {
				t.Errorf("AffectsSpans() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMoveShiftsBothEnds(t *testing.T) {
	d := mustRange(t, 10, 20, RangeSpec{})
	moved := d.Move(5)
	if moved.From != 15 || moved.To != 25 {
		t.Errorf("Move(5) = [%d, %d), want [15, 25)", moved.From, moved.To)
	}
}

func TestLessOrdersByFromThenBias(t *testing.T) {
	exclusiveStart := mustRange(t, 5, 10, RangeSpec{})                        // bias = +big
	inclusiveStart := mustRange(t, 5, 10, RangeSpec{InclusiveStart: true})    // bias = -big
	if !less(inclusiveStart, exclusiveStart) {
		t.Error("an inclusive-start range should sort before an exclusive-start range at the same From")
	}
	later := mustRange(t, 6, 10, RangeSpec{})
	if !less(exclusiveStart, later) {
		t.Error("a smaller From should always sort first regardless of bias")
	}
}

func mustRange(t *testing.T, from, to int, spec RangeSpec) Decoration {
	t.Helper()
	d, err := Range(from, to, spec)
	if err != nil {
		t.Fatalf("Range(%d, %d, %+v) failed: %v", from, to, spec, err)
	}
	return d
}
