// pkg/templates/table.go

package templates

import (
	_ "embed"
	"io"
	"os"
	"strings"
	"sync"

	cerr "github.com/cockroachdb/errors"
	goversion "github.com/hashicorp/go-version"
	"gopkg.in/yaml.v3"
)

// SupportedVersions is the constraint a table's version must satisfy
// before this engine will expand it.
const SupportedVersions = ">= 1.0.0, < 2.0.0"

//go:embed templates.yaml
var defaultTableYAML []byte

// Table is the versioned pattern list the expander consumes. Tables are
// data; the engine never hard-codes pattern strings.
type Table struct {
	Version  string   `yaml:"version"`
	Patterns []string `yaml:"patterns"`
}

var (
	defaultOnce  sync.Once
	defaultTable Table
)

// DefaultTable returns the embedded pattern table. The embed is
// validated on first use; a corrupt build asset is a programmer error
// and panics.
func DefaultTable() Table {
	defaultOnce.Do(func() {
		t, err := LoadTable(strings.NewReader(string(defaultTableYAML)))
		if err != nil {
			panic("templates: embedded table invalid: " + err.Error())
		}
		defaultTable = t
	})
	return defaultTable
}

// LoadTable decodes and validates a pattern table: the version must
// satisfy SupportedVersions, and every pattern must parse with only
// known slot names.
func LoadTable(r io.Reader) (Table, error) {
	var t Table
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil {
		return Table{}, cerr.Wrap(err, "decode pattern table")
	}

	if t.Version == "" {
		return Table{}, cerr.New("pattern table missing version")
	}
	v, err := goversion.NewVersion(t.Version)
	if err != nil {
		return Table{}, cerr.Wrapf(err, "pattern table version %q", t.Version)
	}
	constraint, err := goversion.NewConstraint(SupportedVersions)
	if err != nil {
		return Table{}, cerr.Wrap(err, "parse version constraint")
	}
	if !constraint.Check(v) {
		return Table{}, cerr.Newf("pattern table version %s outside supported range %s", t.Version, SupportedVersions)
	}

	if len(t.Patterns) == 0 {
		return Table{}, cerr.New("pattern table has no patterns")
	}
	for _, p := range t.Patterns {
		if _, err := referencedSlots(p); err != nil {
			return Table{}, cerr.Wrapf(err, "pattern %q", p)
		}
	}
	return t, nil
}

// LoadTableFile reads a user-supplied table from disk.
func LoadTableFile(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, cerr.Wrap(err, "open pattern table")
	}
	defer f.Close()
	return LoadTable(f)
}

// referencedSlots parses a pattern and returns the slots it references.
// Unknown slot names and unbalanced braces are errors.
func referencedSlots(pattern string) ([]Slot, error) {
	var slots []Slot
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '{':
			end := strings.IndexByte(pattern[i+1:], '}')
			if end < 0 {
				return nil, cerr.Newf("unclosed placeholder at offset %d", i)
			}
			name := pattern[i+1 : i+1+end]
			slot, ok := ParseSlot(name)
			if !ok {
				return nil, cerr.Newf("unknown slot %q", name)
			}
			slots = append(slots, slot)
			i += end + 1
		case '}':
			return nil, cerr.Newf("unmatched '}' at offset %d", i)
		}
	}
	return slots, nil
}
