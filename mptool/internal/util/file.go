// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package util

import (
	"bufio"
	"io"
	"os"
)

// CreateFile creates or truncates the named file and calls write with a
// buffered writer to it. The file is always closed. The first error
// encountered is returned.
func CreateFile(name string, write func(w io.Writer) error) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if e := f.Close(); err == nil {
			err = e
		}
	}()
	w := bufio.NewWriter(f)
	if err = write(w); err != nil {
		return err
	}
	err = w.Flush()
	Log.Debug().Str("file", name).Msg("written")
	return err
}
