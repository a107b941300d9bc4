package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/najmus-sakib-hossain/zed-sub048/encode"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	files, err := cfg.View.Parse(cc, args)
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
	opts := cfg.encOpts(cc.Out)
	for i, doc := range docs {
		if err := encode.Human(doc, cc.Out, opts...); err != nil {
			return fmt.Errorf("error encoding %s: %w", ins[i].name, err)
		}
		if err := writeSep(cc.Out, i, len(docs)); err != nil {
			return err
		}
	}
	return nil
}
