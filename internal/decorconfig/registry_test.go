package decorconfig

import "testing"

const sampleDoc = `{
	"presets": [
		{
			"name": "go-todo",
			"filePattern": "*.go",
			"tagName": "mark",
			"attributes": {"class": "todo"}
		},
		{
			"name": "collapsed-block",
			"collapsed": true,
			"inclusiveStart": true
		}
	]
}`

func TestLoadJSON(t *testing.T) {
	r := NewRegistry()
	if err := r.LoadJSON(sampleDoc); err != nil {
		t.Fatalf("LoadJSON() error = %v", err)
	}

	if names := r.Names(); len(names) != 2 {
		t.Fatalf("Names() = %v, want 2 entries", names)
	}

	p, ok := r.Get("go-todo")
	if !ok {
		t.Fatal("Get(\"go-todo\") not found")
	}
	if p.FilePattern != "*.go" {
		t.Errorf("FilePattern = %q, want %q", p.FilePattern, "*.go")
	}
	if p.Spec.TagName != "mark" {
		t.Errorf("Spec.TagName = %q, want %q", p.Spec.TagName, "mark")
	}
	if p.Spec.Attributes["class"] != "todo" {
		t.Errorf("Spec.Attributes[class] = %q, want %q", p.Spec.Attributes["class"], "todo")
	}

	collapsed, ok := r.Get("collapsed-block")
	if !ok {
		t.Fatal("Get(\"collapsed-block\") not found")
	}
	if !collapsed.Spec.Collapsed || !collapsed.Spec.InclusiveStart {
		t.Errorf("collapsed-block spec = %+v, want Collapsed and InclusiveStart set", collapsed.Spec)
	}
}

func TestLoadJSONRejectsMissingName(t *testing.T) {
	r := NewRegistry()
	err := r.LoadJSON(`{"presets": [{"tagName": "mark"}]}`)
	if err != ErrPresetMissingName {
		t.Errorf("error = %v, want ErrPresetMissingName", err)
	}
}

func TestLoadJSONRejectsInvalidDocument(t *testing.T) {
	r := NewRegistry()
	if err := r.LoadJSON("not json"); err != ErrInvalidDocument {
		t.Errorf("error = %v, want ErrInvalidDocument", err)
	}
}

func TestForFileMatchesGlob(t *testing.T) {
	r := NewRegistry()
	if err := r.LoadJSON(sampleDoc); err != nil {
		t.Fatalf("LoadJSON() error = %v", err)
	}

	tests := []struct {
		name     string
		file     string
		wantName string
		wantOK   bool
	}{
		{"matches go pattern", "main.go", "go-todo", true},
		{"no pattern matches", "notes.txt", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := r.ForFile(tt.file)
			if ok != tt.wantOK {
				t.Fatalf("ForFile(%q) ok = %v, want %v", tt.file, ok, tt.wantOK)
			}
			if ok && p.Name != tt.wantName {
				t.Errorf("ForFile(%q) = %q, want %q", tt.file, p.Name, tt.wantName)
			}
		})
	}
}

func TestPatch(t *testing.T) {
	r := NewRegistry()
	if err := r.LoadJSON(sampleDoc); err != nil {
		t.Fatalf("LoadJSON() error = %v", err)
	}

	if err := r.Patch("go-todo", "tagName", "span"); err != nil {
		t.Fatalf("Patch() error = %v", err)
	}
	p, _ := r.Get("go-todo")
	if p.Spec.TagName != "span" {
		t.Errorf("Spec.TagName after Patch = %q, want %q", p.Spec.TagName, "span")
	}
}

func TestPatchUnknownPreset(t *testing.T) {
	r := NewRegistry()
	if err := r.Patch("missing", "tagName", "span"); err != ErrPresetNotFound {
		t.Errorf("error = %v, want ErrPresetNotFound", err)
	}
}

func TestPretty(t *testing.T) {
	r := NewRegistry()
	if err := r.LoadJSON(sampleDoc); err != nil {
		t.Fatalf("LoadJSON() error = %v", err)
	}
	out, ok := r.Pretty("go-todo")
	if !ok {
		t.Fatal("Pretty(\"go-todo\") not found")
	}
	if out == "" {
		t.Error("Pretty() returned an empty string")
	}
}
