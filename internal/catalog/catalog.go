package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/token"
)

//go:embed schema.cue
var schemaSource []byte

//go:embed catalog.cue
var defaultSource []byte

var defaultCatalog = sync.OnceValues(func() (*Catalog, error) {
	return Parse("catalog.cue", defaultSource)
})

// Default returns the bundled catalog. The result is shared; do not modify it.
func Default() (*Catalog, error) {
	return defaultCatalog()
}

// LoadFile reads and validates a catalog from a CUE file.
func LoadFile(path string) (*Catalog, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(path, src)
}

// Parse validates src against the catalog schema and decodes it.
//
// src must define a top-level "catalog" field. filename is used only in
// error positions. Schema violations and cross-reference failures are
// returned as *Error.
func Parse(filename string, src []byte) (*Catalog, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileBytes(schemaSource, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("compile catalog schema: %w", fromCUE(err))
	}
	def := schema.LookupPath(cue.ParsePath("#Catalog"))

	data := ctx.CompileBytes(src, cue.Filename(filename))
	if err := data.Err(); err != nil {
		return nil, fromCUE(err)
	}

	raw := data.LookupPath(cue.ParsePath("catalog"))
	if !raw.Exists() {
		return nil, &Error{Field: "catalog", Message: "catalog is required", Pos: data.Pos()}
	}

	v := def.Unify(raw)
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, fromCUE(err)
	}

	var c Catalog
	if err := v.Decode(&c); err != nil {
		return nil, fromCUE(err)
	}
	if err := check(&c, raw); err != nil {
		return nil, err
	}
	return &c, nil
}

// check enforces the cross references the schema cannot express.
// v is consulted only for error positions.
func check(c *Catalog, v cue.Value) error {
	datasets := make(map[string]bool, len(c.Datasets))
	for i, d := range c.Datasets {
		if datasets[d.Key] {
			return &Error{
				Field:   fmt.Sprintf("datasets[%d].key", i),
				Message: fmt.Sprintf("duplicate dataset key %q", d.Key),
				Pos:     pos(v, cue.Str("datasets"), cue.Index(i)),
			}
		}
		datasets[d.Key] = true
	}

	properties := make(map[string]bool, len(c.Properties))
	for i, p := range c.Properties {
		if properties[p.Name] {
			return &Error{
				Field:   fmt.Sprintf("properties[%d].name", i),
				Message: fmt.Sprintf("duplicate property %q", p.Name),
				Pos:     pos(v, cue.Str("properties"), cue.Index(i)),
			}
		}
		properties[p.Name] = true

		for j, s := range p.Sources {
			if !datasets[s.Dataset] {
				return &Error{
					Field:   fmt.Sprintf("properties[%d].sources[%d].dataset", i, j),
					Message: fmt.Sprintf("property %s: unknown dataset %q", p.Name, s.Dataset),
					Pos:     pos(v, cue.Str("properties"), cue.Index(i), cue.Str("sources"), cue.Index(j)),
				}
			}
		}

		methods := make(map[string]bool)
		for _, m := range p.Methods() {
			if methods[m] {
				return &Error{
					Field:   fmt.Sprintf("properties[%d]", i),
					Message: fmt.Sprintf("property %s: duplicate method %q", p.Name, m),
					Pos:     pos(v, cue.Str("properties"), cue.Index(i)),
				}
			}
			methods[m] = true
		}
	}
	return nil
}

func pos(v cue.Value, selectors ...cue.Selector) token.Pos {
	return v.LookupPath(cue.MakePath(selectors...)).Pos()
}
