package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/najmus-sakib-hossain/zed-sub048/ir"
	"github.com/najmus-sakib-hossain/zed-sub048/libdiff"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff needs exactly 2 files", cli.ErrUsage)
	}
	c, err := cfg.converter()
	if err != nil {
		return err
	}
	docs, _, err := cfg.loadDocs(cc, c, args)
	if err != nil {
		return err
	}
	on := cfg.colorOn(cc.Out)
	for _, ch := range libdiff.Documents(docs[0], docs[1]) {
		var line string
		switch ch.Op {
		case libdiff.Insert:
			line = fmt.Sprintf("+ %s: %s", ch.Path, show(ch.To))
		case libdiff.Delete:
			line = fmt.Sprintf("- %s: %s", ch.Path, show(ch.From))
		default:
			line = fmt.Sprintf("~ %s: %s -> %s", ch.Path, show(ch.From), show(ch.To))
		}
		fmt.Fprintln(cc.Out, paintOp(on, ch.Op, line))
	}
	return nil
}

func show(v *ir.Value) string {
	if v.Type.IsLeaf() {
		return v.GoString()
	}
	return fmt.Sprintf("<%s of %d>", v.Type, v.Len())
}
