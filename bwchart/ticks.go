// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bwchart

import (
	"math"

	"gonum.org/v1/plot"

	"github.com/perflab/bandwidth/internal/bwunit"
)

// maxLabels is the most labeled ticks log2Ticks produces. Powers of
// two beyond that become unlabeled minor ticks.
const maxLabels = 8

// log2Ticks places a tick at every power of two in range, labeled
// with a binary size prefix.
type log2Ticks struct{}

func (log2Ticks) Ticks(min, max float64) []plot.Tick {
	if !(min > 0) || !(max >= min) { // catch NaN also.
		return nil
	}
	lo := int(math.Ceil(math.Log2(min)))
	hi := int(math.Floor(math.Log2(max)))
	n := hi - lo + 1
	if n <= 0 {
		// No power of two in range, so label the ends.
		return []plot.Tick{
			{Value: min, Label: bwunit.Bytes(min)},
			{Value: max, Label: bwunit.Bytes(max)},
		}
	}

	step := (n + maxLabels - 1) / maxLabels
	ticks := make([]plot.Tick, 0, n)
	for e := lo; e <= hi; e++ {
		v := math.Ldexp(1, e)
		t := plot.Tick{Value: v}
		if ((e%step)+step)%step == 0 {
			t.Label = bwunit.Bytes(v)
		}
		ticks = append(ticks, t)
	}
	return ticks
}
