package main

import (
	"bytes"
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/najmus-sakib-hossain/zed-sub048/bridge"
	"github.com/najmus-sakib-hossain/zed-sub048/format"
)

func importFiles(cfg *BridgeConfig, cc *cli.Context, args []string) error {
	files, err := cfg.Bridge.Parse(cc, args)
	if err != nil {
		return err
	}
	c, err := cfg.converter()
	if err != nil {
		return err
	}
	ins, err := cfg.readInputs(cc, files)
	if err != nil {
		return err
	}
	to := cfg.outFormat(format.HumanFormat)
	for i, in := range ins {
		from := in.format
		if !from.IsBridge() {
			from = sniffBridge(in.data)
		}
		out, err := c.Convert(in.data, from, to)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", in.name, err)
		}
		if _, err := cc.Out.Write(out); err != nil {
			return err
		}
		if err := writeSep(cc.Out, i, len(ins)); err != nil {
			return err
		}
	}
	return nil
}

// sniffBridge treats input starting with { as JSON and anything else as
// YAML.
func sniffBridge(d []byte) format.Format {
	if t := bytes.TrimSpace(d); len(t) > 0 && t[0] == '{' {
		return format.JSONFormat
	}
	return format.YAMLFormat
}

func exportFiles(cfg *BridgeConfig, cc *cli.Context, args []string) error {
	files, err := cfg.Bridge.Parse(cc, args)
	if err != nil {
		return err
	}
	to := cfg.outFormat(format.JSONFormat)
	if !to.IsBridge() {
		return fmt.Errorf("%w: export writes json or yaml, not %s", cli.ErrUsage, to)
	}
	c, err := cfg.converter()
	if err != nil {
		return err
	}
	if cfg.Indent > 0 {
		c.BridgeOpts = append(c.BridgeOpts, bridge.Indent(cfg.Indent))
	}
	ins, err := cfg.readInputs(cc, files)
	if err != nil {
		return err
	}
	for i, in := range ins {
		out, err := c.Convert(in.data, in.format, to)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", in.name, err)
		}
		if _, err := cc.Out.Write(out); err != nil {
			return err
		}
		if err := writeSep(cc.Out, i, len(ins)); err != nil {
			return err
		}
	}
	return nil
}
