// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gbk2utf converts text files from GBK to UTF-8 in place.
package gbk2utf

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/embeddedgo/mpytools/mptool/internal/util"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
)

var (
	From encoding.Encoding = simplifiedchinese.GBK
	To   encoding.Encoding = unicode.UTF8
)

// Stats counts the converted and the skipped files.
type Stats struct {
	OK     int
	Failed int
}

// ErrInvalid is returned by Decode for data that is not valid GBK.
var ErrInvalid = errors.New("gbk2utf: invalid GBK data")

// Decode decodes GBK encoded data. The x/text decoder replaces invalid input
// with U+FFFD, which has no GBK encoding, so its presence in the output means
// that data is not valid GBK.
func Decode(data []byte) ([]byte, error) {
	text, err := From.NewDecoder().Bytes(data)
	if err != nil {
		return nil, err
	}
	if bytes.ContainsRune(text, utf8.RuneError) {
		return nil, ErrInvalid
	}
	return text, nil
}

// readFile reads and decodes the named file.
func readFile(name string) (text []byte, perm fs.FileMode, err error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()
	fi, err := f.Stat()
	if err != nil {
		return nil, 0, err
	}
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, 0, err
	}
	text, err = Decode(data)
	return text, fi.Mode().Perm(), err
}

// Convert walks the directory tree rooted at root and rewrites every regular
// file in the target encoding. A file that cannot be read or decoded is
// reported and left untouched. Walk and write errors stop the conversion.
func Convert(root string, report io.Writer) (Stats, error) {
	var st Stats
	enc := To.NewEncoder()
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		text, perm, err := readFile(path)
		if err != nil {
			util.Log.Debug().Err(err).Str("file", path).Msg("skipped")
			st.Failed++
			fmt.Fprintf(report, "%-36s open fail\n", path)
			return nil
		}
		out, err := enc.Bytes(text)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if err := os.WriteFile(path, out, perm); err != nil {
			return err
		}
		st.OK++
		fmt.Fprintf(report, "%-36s ok\n", path)
		return nil
	})
	return st, err
}
