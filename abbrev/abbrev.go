// Package abbrev provides reversible key abbreviation dictionaries for the
// LLM format.
//
// A Dict is a bijection between long key names and abbreviations. The LLM
// serializer writes `#!abbrev=<name>` when it abbreviates keys so that the
// parser knows which dictionary to expand with.
package abbrev

import (
	"fmt"
	"sort"
	"sync"
)

// Dict provides bidirectional key abbreviation mapping.
type Dict struct {
	mu         sync.RWMutex
	name       string
	longToAbbr map[string]string
	abbrToLong map[string]string
}

func New(name string) *Dict {
	return &Dict{
		name:       name,
		longToAbbr: make(map[string]string),
		abbrToLong: make(map[string]string),
	}
}

func (d *Dict) Name() string {
	return d.name
}

// Add registers a pair. It returns false, leaving d unchanged, when either
// side is already present or the pair is an identity.
func (d *Dict) Add(long, abbr string) bool {
	if long == abbr || long == "" || abbr == "" {
		return false
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, exists := d.longToAbbr[long]; exists {
		return false
	}
	if _, exists := d.abbrToLong[abbr]; exists {
		return false
	}
	d.longToAbbr[long] = abbr
	d.abbrToLong[abbr] = long
	return true
}

// Abbreviate returns the abbreviation for a key, or the key itself.
func (d *Dict) Abbreviate(key string) string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if abbr, ok := d.longToAbbr[key]; ok {
		return abbr
	}
	return key
}

// Expand returns the full key for an abbreviation, or the key itself.
func (d *Dict) Expand(abbr string) string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if long, ok := d.abbrToLong[abbr]; ok {
		return long
	}
	return abbr
}

func (d *Dict) HasAbbreviation(key string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.longToAbbr[key]
	return ok
}

func (d *Dict) IsAbbreviation(key string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.abbrToLong[key]
	return ok
}

// Collides reports whether key would be misread after abbreviation: it
// has no abbreviation of its own but is the abbreviation of another key.
// Such keys must be written quoted.
func (d *Dict) Collides(key string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if _, ok := d.longToAbbr[key]; ok {
		return false
	}
	_, ok := d.abbrToLong[key]
	return ok
}

func (d *Dict) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.longToAbbr)
}

// Longs returns the long names in sorted order.
func (d *Dict) Longs() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	res := make([]string, 0, len(d.longToAbbr))
	for k := range d.longToAbbr {
		res = append(res, k)
	}
	sort.Strings(res)
	return res
}

// Merge adds the non conflicting entries of other and returns how many
// were added.
func (d *Dict) Merge(other *Dict) int {
	other.mu.RLock()
	defer other.mu.RUnlock()
	added := 0
	for _, long := range sortedKeys(other.longToAbbr) {
		if d.Add(long, other.longToAbbr[long]) {
			added++
		}
	}
	return added
}

func sortedKeys(m map[string]string) []string {
	res := make([]string, 0, len(m))
	for k := range m {
		res = append(res, k)
	}
	sort.Strings(res)
	return res
}

// Std is the standard dictionary, named "std".
var Std = func() *Dict {
	d := New("std")
	for _, p := range stdPairs {
		d.Add(p[0], p[1])
	}
	return d
}()

var (
	regMu    sync.RWMutex
	registry = map[string]*Dict{"std": Std}
)

// Register makes d available to Lookup under its name.
func Register(d *Dict) error {
	regMu.Lock()
	defer regMu.Unlock()
	if _, ok := registry[d.name]; ok {
		return fmt.Errorf("abbreviation dictionary %q already registered", d.name)
	}
	registry[d.name] = d
	return nil
}

// Lookup returns the registered dictionary with the given name.
func Lookup(name string) (*Dict, bool) {
	regMu.RLock()
	defer regMu.RUnlock()
	d, ok := registry[name]
	return d, ok
}
