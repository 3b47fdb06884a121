// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package util

import (
	"os"

	"github.com/rs/zerolog"
)

// Log is the logger shared by all mptool commands. It writes to the standard
// error and reports only warnings and errors until SetVerbose is called.
var Log = zerolog.New(zerolog.ConsoleWriter{
	Out:          os.Stderr,
	NoColor:      true,
	PartsExclude: []string{zerolog.TimestampFieldName},
}).Level(zerolog.WarnLevel)

// SetVerbose enables debug logging if v is true.
func SetVerbose(v bool) {
	if v {
		Log = Log.Level(zerolog.DebugLevel)
	} else {
		Log = Log.Level(zerolog.WarnLevel)
	}
}

func Warn(f string, args ...any) {
	Log.Warn().Msgf(f, args...)
}

// FatalErr prints an error description and exits the program if the
// err != nil.
func FatalErr(what string, err error) {
	if err == nil {
		return
	}
	if what == "" {
		Log.Fatal().Msg(err.Error())
	}
	Log.Fatal().Err(err).Msg(what)
}
