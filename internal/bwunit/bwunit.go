// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bwunit formats byte sizes and bandwidth values for charts
// and summary tables.
package bwunit

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type factor struct {
	factor float64
	prefix string
}

// iecFactors are the binary prefixes, largest first. Sizes render
// using the largest factor that does not exceed them, so 1020 KiB
// stays 1020KiB rather than becoming 0.996MiB.
var iecFactors = []factor{
	{1 << 40, "Ti"},
	{1 << 30, "Gi"},
	{1 << 20, "Mi"},
	{1 << 10, "Ki"},
}

// Bytes formats a size in bytes with a binary prefix, using at most
// two digits after the decimal point and no trailing zeros. For
// example, Bytes(28835840) returns "27.5MiB".
func Bytes(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'f', -1, 64) + "B"
	}
	for _, f := range iecFactors {
		if math.Abs(v) >= f.factor {
			return trimFloat(v/f.factor) + f.prefix + "B"
		}
	}
	return trimFloat(v) + "B"
}

func trimFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}

// thresholds[i] is the smallest magnitude printed with i digits
// after the decimal point.
var thresholds = mkThresholds()

func mkThresholds() []float64 {
	// Build the thresholds by parsing the printed representation
	// so they match exactly how FormatFloat will round: 999.95
	// prints as "1000", not "999.9".
	var ts []float64
	for exp := 2; exp >= -8; exp-- {
		t, _ := strconv.ParseFloat(fmt.Sprintf("9.9995e%d", exp), 64)
		ts = append(ts, t)
	}
	return ts
}

// Bandwidth formats a bandwidth value with at least three
// significant digits and no prefix. Non-finite values format as
// "+Inf", "-Inf" or "NaN".
func Bandwidth(v float64) string {
	a := math.Abs(v)
	if a == 0 || math.IsInf(a, 0) || math.IsNaN(a) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	prec := len(thresholds)
	for i, t := range thresholds {
		if a >= t {
			prec = i
			break
		}
	}
	return strconv.FormatFloat(v, 'f', prec, 64)
}
