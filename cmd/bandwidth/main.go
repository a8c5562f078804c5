// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Bandwidth charts memory bandwidth against array size.
//
// Usage:
//
//	bandwidth [input_file [output_file]]
//
// The input file is the CSV written by the bandwidth benchmark, with
// a header naming the columns "size" (bytes), "read" and "write"
// (microseconds per pass). It defaults to bandwidth.csv.
//
// Each time is converted to a bandwidth in GB/s and both series are
// drawn against a base-2 logarithmic size axis. Dotted vertical lines
// mark the L1 (32 KiB), L2 (1 MiB) and L3 (27.5 MiB) cache capacities.
// The chart is written to output_file, which defaults to bandwidth.png.
// Its extension selects the image format: eps, jpg, pdf, png, svg, tex
// or tiff.
//
// Finally, bandwidth prints the mean and peak bandwidth observed in
// each cache tier:
//
//	$ bandwidth bandwidth.csv bandwidth.svg
//	tier  sizes      rows  read avg  read max  write avg  write max  dropped
//	L1    <=32KiB      96     204.8     231.0      102.4      118.3        0
//	...
//
// Measurements of zero time produce infinite bandwidth. They are
// reported on standard error, left out of the chart, and counted in
// the dropped column.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"

	"github.com/perflab/bandwidth/bwchart"
	"github.com/perflab/bandwidth/bwtable"
	"github.com/perflab/bandwidth/internal/bwunit"
	"github.com/perflab/bandwidth/internal/texttab"
)

var exit = os.Exit // replaced during testing

func usage() {
	fmt.Fprintf(os.Stderr, "usage: bandwidth [input_file [output_file]]\n")
	fmt.Fprintf(os.Stderr, "\tinput_file defaults to %s, output_file to %s\n", defaultInput, defaultOutput)
	exit(2)
}

const (
	defaultInput  = "bandwidth.csv"
	defaultOutput = "bandwidth.png"
)

// A config is one invocation of the pipeline.
type config struct {
	input  string
	output string
}

// parseArgs fills in the default paths for missing arguments.
func parseArgs(args []string) (config, bool) {
	cfg := config{defaultInput, defaultOutput}
	switch len(args) {
	default:
		return cfg, false
	case 2:
		cfg.output = args[1]
		fallthrough
	case 1:
		cfg.input = args[0]
	case 0:
	}
	return cfg, true
}

func main() {
	log.SetPrefix("bandwidth: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()
	cfg, ok := parseArgs(flag.Args())
	if !ok {
		flag.Usage()
	}
	if err := run(cfg, os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

// run loads cfg.input, charts it to cfg.output, and writes the tier
// summary to stdout. Warnings about undrawable points go to stderr.
func run(cfg config, stdout, stderr io.Writer) error {
	t, err := bwtable.Load(cfg.input)
	if err != nil {
		return err
	}
	d := bwtable.Derive(t)

	logger := log.New(stderr, "bandwidth: ", 0)
	if err := bwchart.Write(d, cfg.output, &bwchart.Options{Warn: logger.Printf}); err != nil {
		return err
	}
	return summary(stdout, bwtable.Summarize(d))
}

func summary(w io.Writer, sums []bwtable.TierSummary) error {
	var tab texttab.Table
	tab.Row().Cell("tier").Cell("sizes").Cell("rows", texttab.Right)
	for _, h := range []string{"read avg", "read max", "write avg", "write max", "dropped"} {
		tab.Cell(h, texttab.Right)
	}

	for _, s := range sums {
		sizes := "<=" + bwunit.Bytes(float64(s.Tier.Max))
		if s.Tier.Max == math.MaxInt64 {
			sizes = ">" + bwunit.Bytes(float64(bwtable.L3Size))
		}
		tab.Row().Cell(s.Tier.Name).Cell(sizes).Cell(strconv.Itoa(s.Rows), texttab.Right)
		for _, v := range []struct {
			st   bwtable.Stat
			peak bool
		}{{s.Read, false}, {s.Read, true}, {s.Write, false}, {s.Write, true}} {
			cell := "-"
			if v.st.N > 0 {
				x := v.st.Mean
				if v.peak {
					x = v.st.Peak
				}
				cell = bwunit.Bandwidth(x)
			}
			tab.Cell(cell, texttab.Right)
		}
		tab.Cell(strconv.Itoa(s.Read.Dropped+s.Write.Dropped), texttab.Right)
	}
	return tab.Format(w)
}
