package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/najmus-sakib-hossain/zed-sub048/convert"
	"github.com/najmus-sakib-hossain/zed-sub048/format"
	"github.com/najmus-sakib-hossain/zed-sub048/ir"
)

type input struct {
	name   string
	data   []byte
	format format.Format
}

// readInputs reads each file, or standard input when there are none or
// the name is "-".
func (cfg *MainConfig) readInputs(cc *cli.Context, files []string) ([]input, error) {
	if len(files) == 0 {
		files = []string{"-"}
	}
	res := make([]input, 0, len(files))
	for _, file := range files {
		d, err := readFile(cc, file)
		if err != nil {
			return nil, err
		}
		res = append(res, input{name: file, data: d, format: cfg.inFormat(file, d)})
	}
	return res, nil
}

func readFile(cc *cli.Context, file string) ([]byte, error) {
	var r io.Reader = cc.In
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", file, err)
	}
	return d, nil
}

// loadDocs reads and parses each input.
func (cfg *MainConfig) loadDocs(cc *cli.Context, c *convert.Converter, files []string) ([]*ir.Document, []input, error) {
	ins, err := cfg.readInputs(cc, files)
	if err != nil {
		return nil, nil, err
	}
	docs := make([]*ir.Document, len(ins))
	for i, in := range ins {
		doc, err := c.ToDocument(in.data, in.format)
		if err != nil {
			return nil, nil, fmt.Errorf("error processing %s: %w", in.name, err)
		}
		cfg.log.Debug().Str("file", in.name).Stringer("format", in.format).Int("bytes", len(in.data)).Msg("loaded")
		docs[i] = doc
	}
	return docs, ins, nil
}

func writeSep(w io.Writer, i, n int) error {
	if i == n-1 {
		return nil
	}
	_, err := w.Write([]byte("\n---\n"))
	return err
}
