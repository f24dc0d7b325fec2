package display

import (
	"bufio"
	"io"
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
)

// Table collects rows of text and writes them in aligned columns.
// Column widths are measured in terminal columns, not in runes.
type Table struct {
	ctx    *Context
	rows   *arraylist.List
	widths []int
	Gap    int // number of spaces between columns
}

// NewTable creates an empty table for output in context ctx.
func NewTable(ctx *Context) *Table {
	return &Table{
		ctx:  ctx,
		rows: arraylist.New(),
		Gap:  2,
	}
}

// AddRow appends a row of cells.
func (t *Table) AddRow(cells ...string) {
	for i, c := range cells {
		w := StringWidth(c, t.ctx)
		if i >= len(t.widths) {
			t.widths = append(t.widths, w)
		} else if w > t.widths[i] {
			t.widths[i] = w
		}
	}
	t.rows.Add(cells)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return t.rows.Size()
}

// WriteTo writes the table to w, one line per row. The last cell of a row
// is not padded.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: bufio.NewWriter(w)}
	gap := strings.Repeat(" ", t.Gap)
	it := t.rows.Iterator()
	for it.Next() {
		cells := it.Value().([]string)
		for i, c := range cells {
			cw.WriteString(c)
			if i == len(cells)-1 {
				break
			}
			pad := t.widths[i] - StringWidth(c, t.ctx)
			cw.WriteString(strings.Repeat(" ", pad))
			cw.WriteString(gap)
		}
		cw.WriteString("\n")
	}
	if cw.err == nil {
		cw.err = cw.w.Flush()
	}
	return cw.n, cw.err
}

type countingWriter struct {
	w   *bufio.Writer
	n   int64
	err error
}

func (cw *countingWriter) WriteString(s string) {
	if cw.err != nil {
		return
	}
	n, err := cw.w.WriteString(s)
	cw.n += int64(n)
	cw.err = err
}
