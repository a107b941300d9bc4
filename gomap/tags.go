package gomap

import (
	"reflect"
	"strings"
	"sync"
)

// fieldInfo is the mapping of one struct field.
type fieldInfo struct {
	index     []int
	name      string
	omitEmpty bool
	table     bool
}

var fieldCache sync.Map // reflect.Type -> []fieldInfo

// fields returns the mapped fields of struct type t in declaration order.
// Embedded structs without a tag name have their fields promoted.
func fields(t reflect.Type) []fieldInfo {
	if fs, ok := fieldCache.Load(t); ok {
		return fs.([]fieldInfo)
	}
	var res []fieldInfo
	for i := range t.NumField() {
		f := t.Field(i)
		tag, hasTag := f.Tag.Lookup("dx")
		if tag == "-" {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")
		if f.Anonymous && name == "" {
			ft := f.Type
			if ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				for _, sub := range fields(ft) {
					sub.index = append([]int{i}, sub.index...)
					res = append(res, sub)
				}
				continue
			}
		}
		if !f.IsExported() {
			continue
		}
		if name == "" {
			name = f.Name
		}
		fi := fieldInfo{index: []int{i}, name: name}
		if hasTag {
			for _, o := range strings.Split(opts, ",") {
				switch o {
				case "omitempty":
					fi.omitEmpty = true
				case "table":
					fi.table = true
				}
			}
		}
		res = append(res, fi)
	}
	fieldCache.Store(t, res)
	return res
}
