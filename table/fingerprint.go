package table

import (
	"fmt"
	"strings"

	"github.com/zeebo/xxh3"
)

// Fingerprint returns a stable 64-bit hash of the table's full contents:
// index labels, column keys, and cells, each with its dynamic type. Two
// tables with identical contents fingerprint identically, so the value can
// key caches of derived results (validation is deterministic over contents).
//
// The encoding is positional and type-qualified; it is not a wire format and
// must not be persisted across releases.
func (t *Table) Fingerprint() uint64 {
	var sb strings.Builder

	for _, label := range t.index.Labels() {
		fmt.Fprintf(&sb, "%T:%v\x1e", label, label)
	}

	sb.WriteByte('\x1d')

	for _, col := range t.columns {
		sb.WriteString(col.Key().canonical())
		sb.WriteByte('\x1e')

		for i := 0; i < col.Len(); i++ {
			cell := col.Cell(i)
			fmt.Fprintf(&sb, "%T:%v\x1f", cell, cell)
		}

		sb.WriteByte('\x1d')
	}

	return xxh3.HashString(sb.String())
}
