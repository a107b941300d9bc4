// Package debug holds environment controlled diagnostics.
//
// Each flag is read once at startup from a DX_DEBUG_* variable parsed with
// strconv.ParseBool. Output goes to a zerolog console logger on stderr.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse   bool
	Encode  bool
	Machine bool
	Convert bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("DX_DEBUG_PARSE")
	d.Encode = boolEnv("DX_DEBUG_ENCODE")
	d.Machine = boolEnv("DX_DEBUG_MACHINE")
	d.Convert = boolEnv("DX_DEBUG_CONVERT")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Encode() bool {
	return d.Encode
}
func Machine() bool {
	return d.Machine
}
func Convert() bool {
	return d.Convert
}
