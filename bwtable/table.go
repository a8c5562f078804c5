// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bwtable reads memory bandwidth benchmark results and
// derives bandwidth from the measured latencies.
//
// The input is a comma-separated table with a header row naming the
// columns "size" (bytes), "read" and "write" (microseconds):
//
//	size,read,write
//	512,10,6
//	576,11,7
//
// Rows are kept in file order. Nothing is re-sorted or filtered, so
// a chart connects points in the order the benchmark produced them.
package bwtable

// A Row is one benchmark sample: the array size in bytes and the
// time taken to read and write it.
type Row struct {
	Size  int64
	Read  float64
	Write float64
}

// A Table is a sequence of benchmark rows in source order.
type Table struct {
	Rows []Row
}

// A Bandwidth is one derived row. Read and Write are in GB/s.
type Bandwidth struct {
	Size  int64
	Read  float64
	Write float64
}

// A Derived table holds one Bandwidth for each Row of the Table it
// was derived from, in the same order.
type Derived struct {
	Rows []Bandwidth
}

// Factor converts size/time (bytes per microsecond) into GB/s. It
// also folds in a fixed calibration for the benchmark's timer.
const Factor = 2.1

// Derive computes the bandwidth of every row of t.
//
// A zero or negative time is not rejected: the result is whatever
// the division produces (±Inf, NaN or a negative bandwidth), so a
// failed measurement stays visible downstream.
func Derive(t *Table) *Derived {
	d := &Derived{Rows: make([]Bandwidth, len(t.Rows))}
	for i, r := range t.Rows {
		size := float64(r.Size)
		d.Rows[i] = Bandwidth{
			Size:  r.Size,
			Read:  size / r.Read * Factor,
			Write: size / r.Write * Factor,
		}
	}
	return d
}
