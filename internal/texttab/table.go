// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texttab lays out aligned plain-text tables.
package texttab

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Table does layout of text-based tables.
//
// Many of its methods return the Table so callers can easily chain
// them to build up a row at once.
type Table struct {
	rows [][]textCell
	cols int
}

type textCell struct {
	value     string
	alignment align
}

type CellOption func(c *textCell)

var (
	Left  CellOption = func(c *textCell) { c.alignment = alignLeft }
	Right CellOption = func(c *textCell) { c.alignment = alignRight }
)

type align int

const (
	alignLeft align = iota
	alignRight
)

// colSep separates adjacent columns.
const colSep = "  "

// Row starts a new row in table t.
func (t *Table) Row() *Table {
	t.rows = append(t.rows, nil)
	return t
}

// Cell adds a cell after the last cell of the current row.
func (t *Table) Cell(value string, opts ...CellOption) *Table {
	if len(t.rows) == 0 {
		t.Row()
	}
	c := textCell{value: value}
	for _, o := range opts {
		o(&c)
	}
	row := &t.rows[len(t.rows)-1]
	*row = append(*row, c)
	if len(*row) > t.cols {
		t.cols = len(*row)
	}
	return t
}

// Format lays out table t and writes it to w. Each column is as wide
// as its widest cell. Left-aligned cells at the end of a row are not
// padded, so lines carry no trailing spaces.
func (t *Table) Format(w io.Writer) error {
	ws := make([]int, t.cols)
	for _, row := range t.rows {
		for col, cell := range row {
			if n := utf8.RuneCountInString(cell.value); n > ws[col] {
				ws[col] = n
			}
		}
	}

	var line strings.Builder
	for _, row := range t.rows {
		line.Reset()
		for col, cell := range row {
			if col > 0 {
				line.WriteString(colSep)
			}
			pad := ws[col] - utf8.RuneCountInString(cell.value)
			switch {
			case cell.alignment == alignRight:
				fmt.Fprintf(&line, "%*s%s", pad, "", cell.value)
			case col == len(row)-1:
				line.WriteString(cell.value)
			default:
				fmt.Fprintf(&line, "%s%*s", cell.value, pad, "")
			}
		}
		line.WriteByte('\n')
		if _, err := io.WriteString(w, line.String()); err != nil {
			return err
		}
	}
	return nil
}
