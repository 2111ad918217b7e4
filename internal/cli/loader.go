package cli

import (
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"

	"github.com/roach88/termwire/internal/term"
)

// Script entry kinds, matching the wire value kinds.
const (
	KindInt32 = "int32"
	KindAtom  = "atom"
	KindFloat = "float"
)

// ScriptEntry is one value in an encode script. Scripts are YAML lists:
//
//	- kind: int32
//	  value: 42
//	- kind: atom
//	  value: hello
//	- kind: float
//	  value: 1.5
type ScriptEntry struct {
	Kind  string `yaml:"kind" json:"kind"`
	Value any    `yaml:"value" json:"value"`
}

// scriptSchema is the CUE schema every script must satisfy. Validation
// happens before any encoding so a bad entry fails the whole script.
const scriptSchema = `
#Entry: {
	kind:  "int32"
	value: int & >=-2147483648 & <=2147483647
} | {
	kind:  "atom"
	value: string
} | {
	kind:  "float"
	value: number
}

#Script: [...#Entry]
`

// LoadScript parses and validates an encode script.
func LoadScript(path string) ([]ScriptEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return ParseScript(data)
}

// ParseScript parses script bytes, validates them against the schema, and
// returns the entries in document order.
func ParseScript(data []byte) ([]ScriptEntry, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}

	if err := validateScript(doc); err != nil {
		return nil, err
	}

	var entries []ScriptEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	return entries, nil
}

// validateScript checks the decoded document against scriptSchema.
func validateScript(doc any) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(scriptSchema)
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile script schema: %w", err)
	}

	unified := schema.LookupPath(cue.ParsePath("#Script")).Unify(ctx.Encode(doc))
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("script does not match schema: %w", err)
	}
	return nil
}

// Term converts a script entry to its term.
func (e ScriptEntry) Term() (term.Value, error) {
	switch e.Kind {
	case KindInt32:
		n, ok := asInt64(e.Value)
		if !ok {
			return nil, fmt.Errorf("entry kind %s: value %v is not an integer", e.Kind, e.Value)
		}
		return term.Int(n), nil
	case KindAtom:
		s, ok := e.Value.(string)
		if !ok {
			return nil, fmt.Errorf("entry kind %s: value %v is not text", e.Kind, e.Value)
		}
		return term.Atom(s), nil
	case KindFloat:
		switch f := e.Value.(type) {
		case float64:
			return term.Float(f), nil
		default:
			if n, ok := asInt64(e.Value); ok {
				return term.Float(n), nil
			}
			return nil, fmt.Errorf("entry kind %s: value %v is not a number", e.Kind, e.Value)
		}
	default:
		return nil, fmt.Errorf("unknown entry kind %q", e.Kind)
	}
}

// asInt64 normalizes the integer types yaml.v3 may produce.
func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case uint64:
		return int64(n), true
	default:
		return 0, false
	}
}
