// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bwchart

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot/vg"

	// Canvas backends for every format Save accepts.
	_ "gonum.org/v1/plot/vg/vgeps"
	_ "gonum.org/v1/plot/vg/vgimg"
	_ "gonum.org/v1/plot/vg/vgpdf"
	_ "gonum.org/v1/plot/vg/vgsvg"
	_ "gonum.org/v1/plot/vg/vgtex"

	"github.com/perflab/bandwidth/bwtable"
)

// Size of a saved chart.
const (
	Width  = 6.4 * vg.Inch
	Height = 4.8 * vg.Inch
)

// Save writes the chart to path. The format is chosen by the path's
// extension: eps, jpg, jpeg, pdf, png, svg, tex, tif or tiff.
//
// The chart is written to a temporary file next to path and renamed
// into place once complete. If Save fails, path is left untouched
// and no temporary file remains. The file is created with mode 0666
// before umask, as with os.Create. If path is a symbolic link, the
// link itself is replaced rather than written through.
func (c *Chart) Save(path string) (err error) {
	format := strings.ToLower(filepath.Ext(path))
	if len(format) != 0 {
		format = format[1:]
	}
	// WriterTo draws the whole chart, so an unsupported format
	// fails here, before any file is created.
	w, err := c.Plot.WriterTo(Width, Height, format)
	if err != nil {
		return err
	}

	f, err := createTemp(path)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(f.Name())
		}
	}()

	if _, err = w.WriteTo(f); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), path)
}

// createTemp creates a new, empty file in the directory of path.
// Unlike os.CreateTemp, whose files are 0600, it leaves the mode to
// the umask.
func createTemp(path string) (*os.File, error) {
	dir, base := filepath.Split(path)
	for i := 0; ; i++ {
		name := filepath.Join(dir, fmt.Sprintf(".%s.%d.%d", base, os.Getpid(), i))
		f, err := os.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0666)
		if os.IsExist(err) && i < 10000 {
			continue
		}
		return f, err
	}
}

// Write renders d and saves the chart to path.
func Write(d *bwtable.Derived, path string, opts *Options) error {
	c, err := Render(d, opts)
	if err != nil {
		return err
	}
	return c.Save(path)
}
