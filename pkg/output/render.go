// pkg/output/render.go

package output

import (
	"encoding/json"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	cerr "github.com/cockroachdb/errors"
)

// JSONTo writes v as indented JSON to w. Inspect commands use this for
// machine-readable output.
func JSONTo(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return cerr.Wrap(enc.Encode(v), "encode json")
}

// JSONToStdout writes v as indented JSON to stdout.
func JSONToStdout(v any) error {
	return JSONTo(os.Stdout, v)
}

// Table accumulates rows and renders them as aligned columns. Inspect
// commands use it for template and option listings.
type Table struct {
	w       *tabwriter.Writer
	headers []string
	rows    [][]string
}

// NewTable returns a table writing to w.
func NewTable(w io.Writer) *Table {
	return &Table{w: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

// Headers sets the column headers.
func (t *Table) Headers(cols ...string) *Table {
	t.headers = cols
	return t
}

// Row appends one row of cells.
func (t *Table) Row(cells ...string) *Table {
	t.rows = append(t.rows, cells)
	return t
}

// Render writes the headers, an underline per column, and every row,
// then flushes the column alignment.
func (t *Table) Render() error {
	if len(t.headers) > 0 {
		if _, err := io.WriteString(t.w, strings.Join(t.headers, "\t")+"\n"); err != nil {
			return cerr.Wrap(err, "render table")
		}
		underlines := make([]string, len(t.headers))
		for i, h := range t.headers {
			underlines[i] = strings.Repeat("-", len(h))
		}
		if _, err := io.WriteString(t.w, strings.Join(underlines, "\t")+"\n"); err != nil {
			return cerr.Wrap(err, "render table")
		}
	}
	for _, row := range t.rows {
		if _, err := io.WriteString(t.w, strings.Join(row, "\t")+"\n"); err != nil {
			return cerr.Wrap(err, "render table")
		}
	}
	return cerr.Wrap(t.w.Flush(), "flush table")
}
