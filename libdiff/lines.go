package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Line struct {
	Op   Op
	Text string
}

// Lines diffs two texts by whole lines. Line texts exclude the newline.
func Lines(from, to string) []Line {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	var res []Line
	for _, d := range diffs {
		op := Equal
		switch d.Type {
		case diffpatch.DiffInsert:
			op = Insert
		case diffpatch.DiffDelete:
			op = Delete
		}
		for _, l := range strings.SplitAfter(d.Text, "\n") {
			if l == "" {
				continue
			}
			res = append(res, Line{Op: op, Text: strings.TrimSuffix(l, "\n")})
		}
	}
	return res
}

// Changed reports whether any line was inserted or deleted.
func Changed(ls []Line) bool {
	for _, l := range ls {
		if l.Op != Equal {
			return true
		}
	}
	return false
}

// Format writes ls one per line, each prefixed by its sign and a space.
// Runs of more than 2*context equal lines are elided to their first and
// last context lines; a negative context keeps them all.
func Format(ls []Line, context int) string {
	b := &strings.Builder{}
	write := func(l Line) {
		b.WriteByte(l.Op.Sign())
		b.WriteByte(' ')
		b.WriteString(l.Text)
		b.WriteByte('\n')
	}
	for i := 0; i < len(ls); {
		if ls[i].Op != Equal || context < 0 {
			write(ls[i])
			i++
			continue
		}
		j := i
		for j < len(ls) && ls[j].Op == Equal {
			j++
		}
		head, tail := context, context
		if i == 0 {
			head = 0
		}
		if j == len(ls) {
			tail = 0
		}
		if j-i <= head+tail {
			for _, l := range ls[i:j] {
				write(l)
			}
		} else {
			for _, l := range ls[i : i+head] {
				write(l)
			}
			b.WriteString("@@\n")
			for _, l := range ls[j-tail : j] {
				write(l)
			}
		}
		i = j
	}
	return b.String()
}
