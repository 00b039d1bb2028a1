package libdiff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/Codeislaw2049/CryptoKey/localepatch/debug"

	"github.com/fatih/color"
)

const DefaultContext = 3

type Colors struct {
	Header func(a ...any) string
	Hunk   func(a ...any) string
	Delete func(a ...any) string
	Insert func(a ...any) string
}

func NewColors() *Colors {
	enable := func(c *color.Color) func(a ...any) string {
		c.EnableColor()
		return c.SprintFunc()
	}
	return &Colors{
		Header: enable(color.New(color.Bold)),
		Hunk:   enable(color.New(color.FgCyan)),
		Delete: enable(color.New(color.FgRed)),
		Insert: enable(color.New(color.FgGreen)),
	}
}

func plain(a ...any) string { return fmt.Sprint(a...) }

var noColors = &Colors{Header: plain, Hunk: plain, Delete: plain, Insert: plain}

// Unified writes the diff of from and to in unified format, naming the two
// sides fromName and toName.  Nothing is written if the texts are equal.
// c may be nil for plain output.
func Unified(w io.Writer, fromName, toName, from, to string, context int, c *Colors) error {
	if c == nil {
		c = noColors
	}
	lines := Lines(from, to)
	if !Changed(lines) {
		return nil
	}
	buf := bytes.NewBuffer(nil)
	fmt.Fprintln(buf, c.Header("--- "+fromName))
	fmt.Fprintln(buf, c.Header("+++ "+toName))
	hunks := Hunks(lines, context)
	if debug.Diff() {
		debug.Logf("diff %s: %d lines in %d hunks\n", toName, len(lines), len(hunks))
	}
	for _, h := range hunks {
		fmt.Fprintln(buf, c.Hunk(fmt.Sprintf("@@ -%s +%s @@", span(h.FromLine, h.FromCount), span(h.ToLine, h.ToCount))))
		for _, ln := range h.Lines {
			text := ln.Op.Prefix() + ln.Text
			switch ln.Op {
			case Delete:
				text = c.Delete(text)
			case Insert:
				text = c.Insert(text)
			}
			fmt.Fprintln(buf, text)
			if ln.NoEOL {
				fmt.Fprintln(buf, `\ No newline at end of file`)
			}
		}
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func span(line, count int) string {
	if count == 1 {
		return fmt.Sprintf("%d", line)
	}
	return fmt.Sprintf("%d,%d", line, count)
}

// String is Unified into a string.
func String(fromName, toName, from, to string, c *Colors) string {
	buf := bytes.NewBuffer(nil)
	Unified(buf, fromName, toName, from, to, DefaultContext, c)
	return buf.String()
}
