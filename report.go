package ohash

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// showCells is the number of slots String prints at either end of the table.
const showCells = 40

// String renders the first and last slots of the table, one per line, with
// key and value for occupied ones. The format is for people, not parsers.
func (t *Table[V]) String() string {
	var b strings.Builder
	n := len(t.slots)
	fmt.Fprintf(&b, "<Table of %d items", t.items)

	for i := 0; i < min(showCells, n); i++ {
		t.writeCell(&b, i)
	}
	if n > 2*showCells {
		b.WriteString("\n  ...")
	}
	for i := max(n-showCells, showCells); i < n; i++ {
		t.writeCell(&b, i)
	}
	b.WriteString(" >")
	return b.String()
}

func (t *Table[V]) writeCell(b *strings.Builder, i int) {
	fmt.Fprintf(b, "\n  %4d-", i)
	switch s := t.slots[i]; s.State {
	case SlotOccupied:
		fmt.Fprintf(b, "%s: %v", s.Entry.Key, s.Entry.Value)
	case SlotTombstone:
		b.WriteString("ø")
	}
}

// Layout renders the key of every slot in order: a blank for empty slots and
// ø for deleted ones.
func (t *Table[V]) Layout() string {
	cells := make([]string, len(t.slots))
	for i, s := range t.slots {
		switch s.State {
		case SlotEmpty:
			cells[i] = " "
		case SlotTombstone:
			cells[i] = "ø"
		default:
			cells[i] = s.Entry.Key.String()
		}
	}
	return "[" + strings.Join(cells, ",") + "]"
}

// WriteReport writes a header with the number of entries followed by the
// value and count of each live entry in slot order. noun names what the
// entries are, such as "unique words".
func (t *Table[V]) WriteReport(w io.Writer, noun string) error {
	if _, err := fmt.Fprintf(w, "<Table of %d %s>\n", t.items, noun); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "VALUE\tCOUNT")
	for e := range t.Traverse() {
		fmt.Fprintf(tw, "%v\t%d\n", e.Value, e.Count)
	}
	return tw.Flush()
}
