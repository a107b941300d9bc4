package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/najmus-sakib-hossain/zed-sub048/encode"
	"github.com/najmus-sakib-hossain/zed-sub048/format"
	"github.com/najmus-sakib-hossain/zed-sub048/ir"
	"github.com/najmus-sakib-hossain/zed-sub048/query"
)

func selectRows(cfg *SelectConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Select.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: select needs a table path and an expression", cli.ErrUsage)
	}
	path, src, files := args[0], args[1], args[2:]
	segs, err := ir.SplitPath(path)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	var cols []string
	if cfg.Columns != "" {
		for _, col := range strings.Split(cfg.Columns, ",") {
			cols = append(cols, strings.TrimSpace(col))
		}
	}
	c, err := cfg.converter()
	if err != nil {
		return err
	}
	docs, ins, err := cfg.loadDocs(cc, c, files)
	if err != nil {
		return err
	}
	to := cfg.outFormat(format.HumanFormat)
	for i, doc := range docs {
		t, err := query.Where(doc, path, src)
		if err != nil {
			return fmt.Errorf("%s: %w", ins[i].name, err)
		}
		if len(cols) > 0 {
			if t, err = query.Select(t, cols...); err != nil {
				return fmt.Errorf("%s: %w", ins[i].name, err)
			}
		}
		cfg.log.Debug().Str("file", ins[i].name).Int("rows", len(t.Rows)).Msg("selected")
		res := ir.NewObject()
		res.Set(segs[len(segs)-1], ir.FromTable(t))
		out := ir.NewDocument(res)
		if to == format.HumanFormat {
			err = encode.Human(out, cc.Out, cfg.encOpts(cc.Out)...)
		} else {
			var d []byte
			if d, err = c.FromDocument(out, to); err == nil {
				_, err = cc.Out.Write(d)
			}
		}
		if err != nil {
			return err
		}
		if err := writeSep(cc.Out, i, len(docs)); err != nil {
			return err
		}
	}
	return nil
}
