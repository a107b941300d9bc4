package main

import (
	"fmt"
	"math"

	"github.com/scott-cotton/cli"

	"github.com/najmus-sakib-hossain/zed-sub048/encode"
	"github.com/najmus-sakib-hossain/zed-sub048/ir"
	"github.com/najmus-sakib-hossain/zed-sub048/tokens"
)

// tokenReport prints, per input, a table of estimated tokens of the
// human and llm renderings and the saving of llm over human.
func tokenReport(cfg *TokensConfig, cc *cli.Context, args []string) error {
	files, err := cfg.Tokens.Parse(cc, args)
	if err != nil {
		return err
	}
	models := tokens.Models()
	if cfg.Model != "" {
		m, err := tokens.ParseModel(cfg.Model)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		models = []tokens.Model{m}
	}
	c, err := cfg.converter()
	if err != nil {
		return err
	}
	docs, ins, err := cfg.loadDocs(cc, c, files)
	if err != nil {
		return err
	}
	report := ir.NewObject()
	for i, doc := range docs {
		human, err := c.DocumentToHuman(doc)
		if err != nil {
			return err
		}
		llm, err := c.DocumentToLLM(doc)
		if err != nil {
			return err
		}
		t := ir.NewTable(
			ir.Column{Name: "model", Type: ir.StringColumn},
			ir.Column{Name: "human", Type: ir.IntColumn},
			ir.Column{Name: "llm", Type: ir.IntColumn},
			ir.Column{Name: "savings", Type: ir.FloatColumn},
		)
		for _, m := range models {
			h := tokens.Count(string(human), m)
			l := tokens.Count(string(llm), m)
			row := []*ir.Value{
				ir.FromString(m.String()),
				ir.FromInt(int64(h.Tokens)),
				ir.FromInt(int64(l.Tokens)),
				ir.FromFloat(math.Round(tokens.Savings(h, l)*10) / 10),
			}
			if err := t.AddRow(row); err != nil {
				return err
			}
		}
		report.Set(ins[i].name, ir.FromTable(t))
	}
	return encode.Human(ir.NewDocument(report), cc.Out, cfg.encOpts(cc.Out)...)
}
