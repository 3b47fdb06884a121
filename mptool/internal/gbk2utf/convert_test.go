// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gbk2utf

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// "中文注释" in GBK.
var gbkText = []byte{0xd6, 0xd0, 0xce, 0xc4, 0xd7, 0xa2, 0xca, 0xcd}

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
		err  error
	}{
		{"ascii", []byte("#define X 1\n"), "#define X 1\n", nil},
		{"gbk", gbkText, "中文注释", nil},
		{"bad lead", []byte{'a', 0xff, 'b'}, "", ErrInvalid},
		{"bad trail", []byte{0x81, 0x20}, "", ErrInvalid},
		{"truncated", []byte{'a', 0xd6}, "", ErrInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.in)
			if !errors.Is(err, tt.err) {
				t.Fatalf("err = %v, want %v", err, tt.err)
			}
			if err == nil && string(got) != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func writeFile(t *testing.T, name string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(name), 0o777); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(name, data, 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestConvert(t *testing.T) {
	root := t.TempDir()
	good := filepath.Join(root, "a.h")
	bad := filepath.Join(root, "b.bin")
	nested := filepath.Join(root, "sub", "c.c")
	badData := []byte{'x', 0xff, 0xfe, 'y'}
	writeFile(t, good, gbkText)
	writeFile(t, bad, badData)
	writeFile(t, nested, []byte("int main;\n"))

	var report bytes.Buffer
	st, err := Convert(root, &report)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if st != (Stats{OK: 2, Failed: 1}) {
		t.Errorf("stats = %+v", st)
	}

	got, err := os.ReadFile(good)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "中文注释" {
		t.Errorf("%s: got %q", good, got)
	}
	got, err = os.ReadFile(bad)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, badData) {
		t.Errorf("%s modified: %q", bad, got)
	}
	got, err = os.ReadFile(nested)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "int main;\n" {
		t.Errorf("%s: got %q", nested, got)
	}

	want := fmt.Sprintf("%-36s ok\n%-36s open fail\n%-36s ok\n", good, bad, nested)
	if report.String() != want {
		t.Errorf("report:\n%s\nwant:\n%s", report.String(), want)
	}
}

func TestConvertKeepsMode(t *testing.T) {
	root := t.TempDir()
	name := filepath.Join(root, "run.sh")
	writeFile(t, name, gbkText)
	if err := os.Chmod(name, 0o755); err != nil {
		t.Fatal(err)
	}
	if _, err := Convert(root, new(bytes.Buffer)); err != nil {
		t.Fatalf("Convert: %v", err)
	}
	fi, err := os.Stat(name)
	if err != nil {
		t.Fatal(err)
	}
	if fi.Mode().Perm() != 0o755 {
		t.Errorf("mode = %v, want 0755", fi.Mode().Perm())
	}
}

func TestConvertMissingRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "chip")
	_, err := Convert(root, new(bytes.Buffer))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want ErrNotExist", err)
	}
}
