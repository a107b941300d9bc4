package main

import (
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/najmus-sakib-hossain/zed-sub048/libdiff"
)

// colorOn reports whether output to w should be colored: -color when
// given, otherwise whether w is a terminal.
func (cfg *MainConfig) colorOn(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name == "color" && opt.Value != nil {
			return false
		}
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

var opColors = map[libdiff.Op]*color.Color{
	libdiff.Insert:  color.New(color.FgGreen),
	libdiff.Delete:  color.New(color.FgRed),
	libdiff.Replace: color.New(color.FgYellow),
}

func paintOp(on bool, op libdiff.Op, s string) string {
	c, ok := opColors[op]
	if !on || !ok {
		return s
	}
	c.EnableColor()
	return c.Sprint(s)
}

// colorDiff paints the lines of a libdiff.Format result by their sign.
func colorDiff(on bool, s string) string {
	if !on {
		return s
	}
	b := &strings.Builder{}
	for _, l := range strings.SplitAfter(s, "\n") {
		if l == "" {
			continue
		}
		op := libdiff.Equal
		switch l[0] {
		case '+':
			op = libdiff.Insert
		case '-':
			op = libdiff.Delete
		}
		b.WriteString(paintOp(true, op, strings.TrimSuffix(l, "\n")))
		b.WriteByte('\n')
	}
	return b.String()
}
