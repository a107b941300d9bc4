package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/najmus-sakib-hossain/zed-sub048/convert"
	"github.com/najmus-sakib-hossain/zed-sub048/format"
	"github.com/najmus-sakib-hossain/zed-sub048/ir"
	"github.com/najmus-sakib-hossain/zed-sub048/libdiff"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	files, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	c, err := cfg.converter()
	if err != nil {
		return err
	}
	docs, ins, err := cfg.loadDocs(cc, c, files)
	if err != nil {
		return err
	}
	on := cfg.colorOn(cc.Out)
	failed := 0
	for i, doc := range docs {
		ok, err := checkDoc(cfg, c, cc.Out, on, ins[i], doc)
		if err != nil {
			return err
		}
		if !ok {
			failed++
			continue
		}
		fmt.Fprintf(cc.Out, "%s: ok\n", ins[i].name)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed", failed, len(docs))
	}
	return nil
}

func checkDoc(cfg *CheckConfig, c *convert.Converter, w io.Writer, on bool, in input, doc *ir.Document) (bool, error) {
	ok := true
	for _, f := range format.RoundTripFormats() {
		out, err := c.FromDocument(doc, f)
		if err != nil {
			fmt.Fprintf(w, "%s: %s: %v\n", in.name, f, err)
			ok = false
			continue
		}
		back, err := c.ToDocument(out, f)
		if err != nil {
			fmt.Fprintf(w, "%s: %s: does not read back: %v\n", in.name, f, err)
			ok = false
			continue
		}
		changes := libdiff.Documents(doc, back)
		for _, ch := range changes {
			line := fmt.Sprintf("%c %s", ch.Op.Sign(), ch.Path)
			fmt.Fprintf(w, "%s: %s: %s\n", in.name, f, paintOp(on, ch.Op, line))
		}
		if len(changes) > 0 {
			ok = false
		}
		cfg.log.Debug().Str("file", in.name).Stringer("format", f).Int("bytes", len(out)).Msg("round trip")
	}
	if !cfg.Canonical || in.format != format.HumanFormat {
		return ok, nil
	}
	canon, err := c.DocumentToHuman(doc)
	if err != nil {
		return false, err
	}
	lines := libdiff.Lines(string(in.data), string(canon))
	if libdiff.Changed(lines) {
		fmt.Fprintf(w, "%s: not canonical\n", in.name)
		io.WriteString(w, colorDiff(on, libdiff.Format(lines, cfg.Context)))
		ok = false
	}
	return ok, nil
}
