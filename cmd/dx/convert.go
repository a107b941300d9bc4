package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/najmus-sakib-hossain/zed-sub048/format"
)

func convertFiles(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	files, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Write && len(files) == 0 {
		return fmt.Errorf("%w: -w needs file arguments", cli.ErrUsage)
	}
	c, err := cfg.converter()
	if err != nil {
		return err
	}
	ins, err := cfg.readInputs(cc, files)
	if err != nil {
		return err
	}
	to := cfg.outFormat(format.LLMFormat)
	outs := make([][]byte, len(ins))
	if from, ok := sameFormat(ins); ok && len(ins) > 1 {
		data := make([][]byte, len(ins))
		for i := range ins {
			data[i] = ins[i].data
		}
		outs, err = c.Batch(context.Background(), data, from, to, cfg.workers(cfg.Workers))
		if err != nil {
			return err
		}
	} else {
		for i, in := range ins {
			outs[i], err = c.Convert(in.data, in.format, to)
			if err != nil {
				return fmt.Errorf("error processing %s: %w", in.name, err)
			}
		}
	}
	for i, in := range ins {
		cfg.log.Debug().Str("file", in.name).Stringer("from", in.format).Stringer("to", to).
			Int("in", len(in.data)).Int("out", len(outs[i])).Msg("converted")
		if cfg.Write {
			dst := strings.TrimSuffix(in.name, filepath.Ext(in.name)) + to.Suffix()
			if dst == in.name {
				return fmt.Errorf("refusing to overwrite %s", in.name)
			}
			if err := os.WriteFile(dst, outs[i], 0644); err != nil {
				return err
			}
			continue
		}
		if _, err := cc.Out.Write(outs[i]); err != nil {
			return err
		}
		if err := writeSep(cc.Out, i, len(ins)); err != nil {
			return err
		}
	}
	return nil
}

func sameFormat(ins []input) (format.Format, bool) {
	if len(ins) == 0 {
		return 0, false
	}
	for _, in := range ins[1:] {
		if in.format != ins[0].format {
			return 0, false
		}
	}
	return ins[0].format, true
}
