// Package decorconfig loads named decoration presets from JSON documents,
// the way the rest of this module's ambient stack prefers a JSON-backed
// registry over hand-rolled parsing for anything resembling user config.
package decorconfig

import (
	"errors"

	"github.com/tidwall/gjson"
	"github.com/tidwall/match"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/dshills/decorset/internal/decor"
)

// Errors returned by decorconfig operations.
var (
	// ErrPresetNotFound indicates an operation referenced a preset name that
	// has not been registered.
	ErrPresetNotFound = errors.New("decorconfig: preset not found")

	// ErrPresetMissingName indicates a JSON preset entry had no "name" field.
	ErrPresetMissingName = errors.New("decorconfig: preset missing a name")

	// ErrInvalidDocument indicates the JSON document passed to LoadJSON
	// could not be parsed.
	ErrInvalidDocument = errors.New("decorconfig: invalid JSON document")
)

// Preset is a named, reusable decoration style: a RangeSpec plus the glob
// pattern of file names it applies to.
type Preset struct {
	Name        string
	FilePattern string
	Spec        decor.RangeSpec
}

// Registry holds named presets loaded from JSON. The zero value is not
// usable; use NewRegistry.
type Registry struct {
	presets map[string]Preset
	raw     map[string]string
	order   []string
}

// NewRegistry returns an empty preset registry.
func NewRegistry() *Registry {
	return &Registry{presets: make(map[string]Preset), raw: make(map[string]string)}
}

// Register adds or replaces a preset directly, without going through JSON.
func (r *Registry) Register(p Preset) {
	if _, exists := r.presets[p.Name]; !exists {
		r.order = append(r.order, p.Name)
	}
	r.presets[p.Name] = p
}

// Get returns the named preset.
func (r *Registry) Get(name string) (Preset, bool) {
	p, ok := r.presets[name]
	return p, ok
}

// Names returns every registered preset name, in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// ForFile returns the first registered preset whose FilePattern matches
// name, following registration order.
func (r *Registry) ForFile(name string) (Preset, bool) {
	for _, n := range r.order {
		p := r.presets[n]
		if p.FilePattern != "" && match.Match(name, p.FilePattern) {
			return p, true
		}
	}
	return Preset{}, false
}

// LoadJSON parses a document shaped like:
//
//	{"presets": [{"name": "...", "filePattern": "*.go",
//	              "tagName": "mark", "collapsed": false,
//	              "attributes": {"class": "..."},
//	              "lineAttributes": {"class": "..."},
//	              "inclusiveStart": false, "inclusiveEnd": false}, ...]}
//
// and registers every preset it describes.
func (r *Registry) LoadJSON(doc string) error {
	if !gjson.Valid(doc) {
		return ErrInvalidDocument
	}
	presets := gjson.Get(doc, "presets")
	if !presets.Exists() {
		return nil
	}

	var loadErr error
	presets.ForEach(func(_, value gjson.Result) bool {
		p, err := parsePreset(value)
		if err != nil {
			loadErr = err
			return false
		}
		r.Register(p)
		r.raw[p.Name] = value.Raw
		return true
	})
	return loadErr
}

// Patch applies an sjson path/value update to the named preset's raw JSON
// and re-registers the result, leaving the registry unchanged on error.
func (r *Registry) Patch(name, path string, value any) error {
	doc, ok := r.raw[name]
	if !ok {
		return ErrPresetNotFound
	}
	patched, err := sjson.Set(doc, path, value)
	if err != nil {
		return err
	}
	p, err := parsePreset(gjson.Parse(patched))
	if err != nil {
		return err
	}
	r.Register(p)
	r.raw[p.Name] = patched
	return nil
}

// Pretty returns the named preset's raw JSON, reformatted for saving back
// to disk.
func (r *Registry) Pretty(name string) (string, bool) {
	doc, ok := r.raw[name]
	if !ok {
		return "", false
	}
	return string(pretty.Pretty([]byte(doc))), true
}

func parsePreset(value gjson.Result) (Preset, error) {
	name := value.Get("name").String()
	if name == "" {
		return Preset{}, ErrPresetMissingName
	}
	return Preset{
		Name:        name,
		FilePattern: value.Get("filePattern").String(),
		Spec: decor.RangeSpec{
			InclusiveStart: value.Get("inclusiveStart").Bool(),
			InclusiveEnd:   value.Get("inclusiveEnd").Bool(),
			TagName:        value.Get("tagName").String(),
			Collapsed:      value.Get("collapsed").Bool(),
			Attributes:     stringMap(value.Get("attributes")),
			LineAttributes: stringMap(value.Get("lineAttributes")),
		},
	}, nil
}

func stringMap(r gjson.Result) map[string]string {
	if !r.Exists() {
		return nil
	}
	out := make(map[string]string)
	r.ForEach(func(key, value gjson.Result) bool {
		out[key.String()] = value.String()
		return true
	})
	return out
}
