package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/scott-cotton/cli"

	"github.com/najmus-sakib-hossain/zed-sub048/convert"
	"github.com/najmus-sakib-hossain/zed-sub048/debug"
	"github.com/najmus-sakib-hossain/zed-sub048/encode"
	"github.com/najmus-sakib-hossain/zed-sub048/format"
	"github.com/najmus-sakib-hossain/zed-sub048/machine"
	"github.com/najmus-sakib-hossain/zed-sub048/parse"
)

type MainConfig struct {
	Color   bool   `cli:"name=color desc='encode with color'"`
	Strict  bool   `cli:"name=strict desc='reject duplicate keys'"`
	Verbose bool   `cli:"name=v desc='log progress to stderr'"`
	Config  string `cli:"name=config desc='defaults file (default dx.toml when present)'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command

	file *fileConfig
	log  zerolog.Logger
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// setup loads the defaults file and the logger. It runs once the main
// options are parsed.
func (cfg *MainConfig) setup() error {
	level := zerolog.WarnLevel
	if cfg.Verbose {
		level = zerolog.DebugLevel
	}
	cfg.log = debug.NewLogger(os.Stderr, "dx").Level(level)
	debug.SetLogger(cfg.log)
	fc, err := loadFileConfig(cfg.Config)
	if err != nil {
		return err
	}
	cfg.file = fc
	if keys := fc.meta.Keys(); len(keys) > 0 {
		cfg.log.Debug().Int("keys", len(keys)).Msg("loaded defaults")
	}
	return nil
}

// inFormat picks the input format: the -I flag, then the file suffix,
// then the machine magic, then dx.toml, then human.
func (cfg *MainConfig) inFormat(file string, data []byte) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	if file != "" && file != "-" {
		if f, err := format.FromSuffix(filepath.Ext(file)); err == nil {
			return f
		}
	}
	if len(data) >= 2 && data[0] == machine.Magic0 && data[1] == machine.Magic1 {
		return format.MachineFormat
	}
	if cfg.file != nil && cfg.file.defined("input") {
		f, _ := format.ParseFormat(cfg.file.Input)
		return f
	}
	return format.HumanFormat
}

func (cfg *MainConfig) outFormat(def format.Format) format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	if cfg.file != nil && cfg.file.defined("output") {
		f, _ := format.ParseFormat(cfg.file.Output)
		return f
	}
	return def
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	fc := cfg.file
	var res []parse.ParseOption
	if cfg.Strict || (fc != nil && fc.Parse.Strict) {
		res = append(res, parse.Strict(true))
	}
	if fc == nil {
		return res
	}
	if fc.defined("parse", "max_input_size") {
		res = append(res, parse.MaxInputSize(fc.Parse.MaxInputSize))
	}
	if fc.defined("parse", "max_depth") {
		res = append(res, parse.MaxDepth(fc.Parse.MaxDepth))
	}
	if fc.defined("parse", "max_table_rows") {
		res = append(res, parse.MaxTableRows(fc.Parse.MaxTableRows))
	}
	return res
}

// encOpts adds dx.toml alignment and colors when output to w is colored.
func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var res []encode.EncodeOption
	if cfg.file != nil && cfg.file.defined("human", "align") {
		res = append(res, encode.EncodeAlign(cfg.file.Human.Align))
	}
	if cfg.colorOn(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// converter builds a converter from dx.toml and the main flags. Human
// output never carries color here; use encOpts for terminal views.
func (cfg *MainConfig) converter() (*convert.Converter, error) {
	c := convert.New()
	c.ParseOpts = cfg.parseOpts()
	fc := cfg.file
	if fc == nil {
		return c, nil
	}
	if fc.defined("human", "align") {
		c.HumanOpts = append(c.HumanOpts, encode.EncodeAlign(fc.Human.Align))
	}
	if fc.defined("llm", "abbreviate") {
		c.LLM.AbbreviateKeys = fc.LLM.Abbreviate
	}
	if fc.defined("llm", "ditto") {
		c.LLM.DittoCompress = fc.LLM.Ditto
	}
	if fc.defined("llm", "base62") {
		c.LLM.Base62Ints = fc.LLM.Base62
	}
	if fc.defined("llm", "base62_threshold") {
		c.LLM.Base62Threshold = fc.LLM.Base62Threshold
	}
	if fc.defined("llm", "max_text_length") {
		c.LLM.MaxTextLength = fc.LLM.MaxTextLength
	}
	d, err := fc.dict()
	if err != nil {
		return nil, err
	}
	if d != nil {
		// registered, so the #!abbrev pragma finds it on the way back
		c.LLM.Dict = d
	}
	if fc.Machine.Compress {
		c.MachineOpts = append(c.MachineOpts, machine.WithCompression())
	}
	if fc.defined("machine", "max_payload") {
		c.MachineOpts = append(c.MachineOpts, machine.MaxPayload(fc.Machine.MaxPayload))
	}
	return c, nil
}

func (cfg *MainConfig) workers(flag int) int {
	if flag > 0 {
		return flag
	}
	if cfg.file != nil && cfg.file.Workers > 0 {
		return cfg.file.Workers
	}
	return 0
}
