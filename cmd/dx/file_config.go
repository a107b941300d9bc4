package main

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/najmus-sakib-hossain/zed-sub048/abbrev"
	"github.com/najmus-sakib-hossain/zed-sub048/format"
)

const defaultConfigFile = "dx.toml"

// fileConfig is the optional dx.toml holding defaults. Flags override it.
type fileConfig struct {
	Input   string `toml:"input"`
	Output  string `toml:"output"`
	Workers int    `toml:"workers"`

	Parse struct {
		Strict       bool `toml:"strict"`
		MaxInputSize int  `toml:"max_input_size"`
		MaxDepth     int  `toml:"max_depth"`
		MaxTableRows int  `toml:"max_table_rows"`
	} `toml:"parse"`

	Human struct {
		Align bool `toml:"align"`
	} `toml:"human"`

	LLM struct {
		Abbreviate      bool              `toml:"abbreviate"`
		Ditto           bool              `toml:"ditto"`
		Base62          bool              `toml:"base62"`
		Base62Threshold int64             `toml:"base62_threshold"`
		MaxTextLength   int               `toml:"max_text_length"`
		Dict            string            `toml:"dict"`
		Abbreviations   map[string]string `toml:"abbreviations"`
	} `toml:"llm"`

	Machine struct {
		Compress   bool `toml:"compress"`
		MaxPayload int  `toml:"max_payload"`
	} `toml:"machine"`

	meta toml.MetaData
}

func (fc *fileConfig) defined(key ...string) bool {
	return fc.meta.IsDefined(key...)
}

// loadFileConfig reads path. A missing default file is not an error.
func loadFileConfig(path string) (*fileConfig, error) {
	fc := &fileConfig{}
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}
	meta, err := toml.DecodeFile(path, fc)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return fc, nil
		}
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	fc.meta = meta
	if undec := meta.Undecoded(); len(undec) > 0 {
		return nil, fmt.Errorf("load %s: unknown key %s", path, undec[0])
	}
	if fc.defined("input") {
		if _, err := format.ParseFormat(fc.Input); err != nil {
			return nil, fmt.Errorf("load %s: input: %w", path, err)
		}
	}
	if fc.defined("output") {
		if _, err := format.ParseFormat(fc.Output); err != nil {
			return nil, fmt.Errorf("load %s: output: %w", path, err)
		}
	}
	return fc, nil
}

// dict returns the dictionary named in the file, registering one built
// from the abbreviations table when the name is new.
func (fc *fileConfig) dict() (*abbrev.Dict, error) {
	if !fc.defined("llm", "dict") {
		if len(fc.LLM.Abbreviations) > 0 {
			return nil, errors.New("llm.abbreviations needs llm.dict to name the dictionary")
		}
		return nil, nil
	}
	if d, ok := abbrev.Lookup(fc.LLM.Dict); ok {
		return d, nil
	}
	if len(fc.LLM.Abbreviations) == 0 {
		return nil, fmt.Errorf("unknown dictionary %q", fc.LLM.Dict)
	}
	d := abbrev.New(fc.LLM.Dict)
	longs := make([]string, 0, len(fc.LLM.Abbreviations))
	for long := range fc.LLM.Abbreviations {
		longs = append(longs, long)
	}
	sort.Strings(longs)
	for _, long := range longs {
		if !d.Add(long, fc.LLM.Abbreviations[long]) {
			return nil, fmt.Errorf("dictionary %q: %s=%s collides", fc.LLM.Dict, long, fc.LLM.Abbreviations[long])
		}
	}
	if err := abbrev.Register(d); err != nil {
		return nil, err
	}
	return d, nil
}
