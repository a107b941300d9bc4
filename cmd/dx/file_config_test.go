package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/najmus-sakib-hossain/zed-sub048/format"
	"github.com/najmus-sakib-hossain/zed-sub048/machine"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "dx.toml")
	if err := os.WriteFile(p, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadFileConfig(t *testing.T) {
	p := writeConfig(t, `
input = "llm"
output = "machine"
workers = 3

[parse]
strict = true

[llm]
abbreviate = true
ditto = false
base62 = true
base62_threshold = 500
dict = "dx-cmd-test"

[llm.abbreviations]
temperature = "tmp"
pressure = "prs"

[machine]
compress = true
`)
	fc, err := loadFileConfig(p)
	if err != nil {
		t.Fatal(err)
	}
	cfg := &MainConfig{file: fc}
	c, err := cfg.converter()
	if err != nil {
		t.Fatal(err)
	}
	if !c.LLM.AbbreviateKeys || c.LLM.DittoCompress || !c.LLM.Base62Ints || c.LLM.Base62Threshold != 500 {
		t.Errorf("llm config %+v", c.LLM)
	}
	if c.LLM.Dict == nil || c.LLM.Dict.Abbreviate("temperature") != "tmp" {
		t.Errorf("dict not loaded")
	}
	if len(c.ParseOpts) != 1 || len(c.MachineOpts) != 1 {
		t.Errorf("got %d parse opts, %d machine opts", len(c.ParseOpts), len(c.MachineOpts))
	}
	if cfg.workers(0) != 3 || cfg.workers(5) != 5 {
		t.Errorf("workers %d %d", cfg.workers(0), cfg.workers(5))
	}
	if f := cfg.inFormat("-", []byte("a=1")); f != format.LLMFormat {
		t.Errorf("input format %s", f)
	}
	if f := cfg.outFormat(format.LLMFormat); f != format.MachineFormat {
		t.Errorf("output format %s", f)
	}

	// a second load finds the registered dictionary
	fc2, err := loadFileConfig(p)
	if err != nil {
		t.Fatal(err)
	}
	d, err := fc2.dict()
	if err != nil || d != c.LLM.Dict {
		t.Errorf("got %v %v", d, err)
	}
}

func TestLoadFileConfigErrors(t *testing.T) {
	for name, body := range map[string]string{
		"unknown key":  "colour = true\n",
		"bad format":   "output = \"xml\"\n",
		"syntax":       "input = \n",
		"unnamed dict": "[llm.abbreviations]\nfoo = \"f\"\n",
	} {
		t.Run(name, func(t *testing.T) {
			fc, err := loadFileConfig(writeConfig(t, body))
			if err == nil {
				_, err = fc.dict()
			}
			if err == nil {
				t.Fatal("expected an error")
			}
		})
	}
	if _, err := loadFileConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("explicit missing file should fail")
	}
}

func TestInFormat(t *testing.T) {
	cfg := &MainConfig{file: &fileConfig{}}
	tests := []struct {
		file string
		data []byte
		want format.Format
	}{
		{"a.llm", nil, format.LLMFormat},
		{"a.dxb", nil, format.MachineFormat},
		{"a.yml", nil, format.YAMLFormat},
		{"-", []byte{machine.Magic0, machine.Magic1, 1}, format.MachineFormat},
		{"-", []byte("a:1"), format.HumanFormat},
		{"noext", []byte("a:1"), format.HumanFormat},
	}
	for _, tc := range tests {
		if got := cfg.inFormat(tc.file, tc.data); got != tc.want {
			t.Errorf("%s: got %s want %s", tc.file, got, tc.want)
		}
	}
	llm := format.LLMFormat
	cfg.InFormat = &llm
	if got := cfg.inFormat("a.dxb", nil); got != format.LLMFormat {
		t.Errorf("flag should win, got %s", got)
	}
}

func TestSniffBridge(t *testing.T) {
	if sniffBridge([]byte("  {\"a\":1}")) != format.JSONFormat {
		t.Error("json not sniffed")
	}
	if sniffBridge([]byte("a: 1\n")) != format.YAMLFormat {
		t.Error("yaml not sniffed")
	}
}
