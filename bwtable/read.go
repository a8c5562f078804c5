// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bwtable

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// A SyntaxError reports a malformed header or row in a benchmark
// results file.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
}

func (e *SyntaxError) Pos() (fileName string, line int) {
	return e.FileName, e.Line
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Msg)
}

// Column names, matched case-sensitively against the header row.
const (
	colSize  = "size"
	colRead  = "read"
	colWrite = "write"
)

// Load reads the benchmark results file at path.
//
// If path does not exist, the error is the one returned by os.Open,
// so errors.Is(err, fs.ErrNotExist) reports true.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, path)
}

// Read parses a benchmark results table from r. fileName is used in
// error messages; it is purely diagnostic.
//
// The header must contain the columns "size", "read" and "write", in
// any order. Other columns are ignored. A header with no data rows
// yields an empty Table.
func Read(r io.Reader, fileName string) (*Table, error) {
	if fileName == "" {
		fileName = "<unknown>"
	}
	cr := csv.NewReader(r)
	cr.ReuseRecord = true

	newSyntaxError := func(msg string) *SyntaxError {
		line, _ := cr.FieldPos(0)
		return &SyntaxError{fileName, line, msg}
	}
	read := func() ([]string, error) {
		rec, err := cr.Read()
		var pe *csv.ParseError
		if errors.As(err, &pe) {
			return nil, &SyntaxError{fileName, pe.Line, pe.Err.Error()}
		}
		return rec, err
	}

	header, err := read()
	if err == io.EOF {
		return nil, &SyntaxError{fileName, 1, "missing header"}
	} else if err != nil {
		return nil, err
	}
	pos := map[string]int{colSize: -1, colRead: -1, colWrite: -1}
	for i, name := range header {
		p, ok := pos[name]
		if !ok {
			continue
		}
		if p >= 0 {
			return nil, newSyntaxError(fmt.Sprintf("duplicate column %q", name))
		}
		pos[name] = i
	}
	for _, name := range []string{colSize, colRead, colWrite} {
		if pos[name] < 0 {
			return nil, newSyntaxError(fmt.Sprintf("missing column %q", name))
		}
	}

	t := new(Table)
	for {
		rec, err := read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}

		var row Row
		field := rec[pos[colSize]]
		row.Size, err = strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, newSyntaxError(fmt.Sprintf("%s: invalid integer %q", colSize, field))
		}
		for _, c := range []struct {
			name string
			dst  *float64
		}{{colRead, &row.Read}, {colWrite, &row.Write}} {
			field := rec[pos[c.name]]
			*c.dst, err = strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, newSyntaxError(fmt.Sprintf("%s: invalid number %q", c.name, field))
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}
