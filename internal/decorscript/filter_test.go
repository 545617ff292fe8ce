package decorscript

import (
	"testing"

	"github.com/dshills/decorset/internal/decor"
)

func TestNewRejectsMissingFilterFunction(t *testing.T) {
	_, err := New(`x = 1`)
	if err != ErrFilterNotCallable {
		t.Errorf("error = %v, want ErrFilterNotCallable", err)
	}
}

func TestNewRejectsInvalidScript(t *testing.T) {
	_, err := New(`this is not lua (`)
	if err == nil {
		t.Error("New() with invalid Lua should return an error")
	}
}

func TestFuncCallsScript(t *testing.T) {
	f, err := New(`
		function filter(from, to, isPoint, tagName, collapsed)
			return from >= 10
		end
	`)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer f.Close()

	fn := f.Func()
	if fn == nil {
		t.Fatal("Func() returned nil")
	}

	point := decor.Point(5, decor.PointSpec{})
	if fn(point) {
		t.Error("filter(5, ...) should return false since 5 < 10")
	}

	d, err := decor.Range(15, 20, decor.RangeSpec{})
	if err != nil {
		t.Fatalf("decor.Range() error = %v", err)
	}
	if !fn(d) {
		t.Error("filter(15, ...) should return true since 15 >= 10")
	}
}

func TestSandboxRemovesDangerousGlobals(t *testing.T) {
	f, err := New(`
		function filter(from, to, isPoint, tagName, collapsed)
			return dofile == nil and loadfile == nil and load == nil
		end
	`)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer f.Close()

	if !f.Func()(decor.Point(0, decor.PointSpec{})) {
		t.Error("dofile/loadfile/load should have been removed from the sandboxed state")
	}
}
