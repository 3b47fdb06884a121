// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pins

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/embeddedgo/mpytools/mptool/internal/util"
)

// AFLexer splits a line of the alternate function header. Only the beginning
// of the line matters, everything after the GPIO macro name is Rest.
var AFLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Define", Pattern: `#define `},
	{Name: "GPIO", Pattern: `PORT[A-D]_PIN[0-9]+_GPIO`},
	{Name: "Rest", Pattern: `.+`},
})

// gpioDefine is a line of the form: #define PORTA_PIN3_GPIO ...
type gpioDefine struct {
	Macro string `parser:"Define @GPIO Rest?"`
}

// letterNum splits PORTA_PIN3_GPIO into A and 3.
func (d *gpioDefine) letterNum() (letter, num string) {
	m := strings.TrimSuffix(d.Macro, "_GPIO")
	return m[len("PORT") : len("PORT")+1], m[len("PORTA_PIN"):]
}

// Parser extracts pins from an alternate function header.
type Parser struct {
	parser *participle.Parser[gpioDefine]
}

// NewParser creates a new alternate function header parser.
func NewParser() (*Parser, error) {
	parser, err := participle.Build[gpioDefine](participle.Lexer(AFLexer))
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}
	return &Parser{parser: parser}, nil
}

// ParseLine returns the port letter and the pin number defined by the line.
// The ok result is false if the line doesn't define a GPIO pin.
func (p *Parser) ParseLine(line string) (letter, num string, ok bool) {
	d, err := p.parser.ParseString("", line)
	if err != nil {
		return "", "", false
	}
	letter, num = d.letterNum()
	return letter, num, true
}

// Parse scans r line by line and adds the found pins to ps in the order of
// their first occurrence. Lines that don't define a GPIO pin are ignored.
func (p *Parser) Parse(r io.Reader, ps *Pins) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		letter, num, ok := p.ParseLine(sc.Text())
		if !ok {
			continue
		}
		if ps.Add(letter, num) {
			util.Log.Debug().Str("pin", "P"+letter+num).Msg("found")
		}
	}
	return sc.Err()
}

// ParseFile parses the named alternate function header.
func (p *Parser) ParseFile(name string, ps *Pins) error {
	f, err := os.Open(name)
	if err != nil {
		return fmt.Errorf("failed to open af file: %w", err)
	}
	defer f.Close()
	if err := p.Parse(f, ps); err != nil {
		return fmt.Errorf("failed to read af file: %w", err)
	}
	return nil
}
