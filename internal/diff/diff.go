// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diff reports differences between expected and actual
// text for tests.
package diff

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Diff returns a human-readable description of the differences
// between want and got, or "" if they are equal.
// If the "diff" command is available, the result is a unified diff
// labeled "want" and "got". Otherwise it quotes both strings.
func Diff(want, got string) string {
	if want == got {
		return ""
	}
	cmd := "diff"
	if runtime.GOOS == "plan9" {
		cmd = "/bin/ape/diff"
	}
	if _, err := exec.LookPath(cmd); err != nil {
		return fmt.Sprintf("want:\n%q\ngot:\n%q", want, got)
	}

	dir, err := os.MkdirTemp("", "diff")
	if err != nil {
		return err.Error()
	}
	defer os.RemoveAll(dir)
	for name, s := range map[string]string{"want": want, "got": got} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(s), 0666); err != nil {
			return err.Error()
		}
	}

	c := exec.Command(cmd, "-u", "want", "got")
	c.Dir = dir
	data, err := c.CombinedOutput()
	if len(data) > 0 {
		// diff exits with a non-zero status when the files differ.
		return string(data)
	}
	if err != nil {
		return err.Error()
	}
	// Equal bytes were ruled out above, so diff must have failed
	// silently.
	return fmt.Sprintf("want:\n%q\ngot:\n%q", want, got)
}
