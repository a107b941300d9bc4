package libdiff

import (
	"strconv"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/najmus-sakib-hossain/zed-sub048/ir"
)

// Change is a difference at Path. From is nil for inserts and To is nil
// for deletes.
type Change struct {
	Path string
	Op   Op
	From *ir.Value
	To   *ir.Value
}

// Documents returns the changes turning from into to, in document order.
func Documents(from, to *ir.Document) []Change {
	var res []Change
	diffValue("", from.Root, to.Root, &res)
	return res
}

// Values is Documents for arbitrary values; paths are relative to them.
func Values(from, to *ir.Value) []Change {
	var res []Change
	diffValue("", from, to, &res)
	return res
}

func keyPath(prefix, k string) string {
	if prefix == "" {
		return ir.QuoteKey(k)
	}
	return prefix + "." + ir.QuoteKey(k)
}

func indexPath(prefix string, i int) string {
	return prefix + "[" + strconv.Itoa(i) + "]"
}

func diffValue(path string, from, to *ir.Value, res *[]Change) {
	if from.Type != to.Type {
		*res = append(*res, Change{Path: path, Op: Replace, From: from, To: to})
		return
	}
	switch from.Type {
	case ir.ObjectType:
		diffObject(path, from, to, res)
	case ir.ArrayType:
		diffArray(path, from, to, res)
	case ir.TableType:
		diffTable(path, from, to, res)
	default:
		if !ir.Equal(from, to) {
			*res = append(*res, Change{Path: path, Op: Replace, From: from, To: to})
		}
	}
}

func diffObject(path string, from, to *ir.Value, res *[]Change) {
	for i, k := range from.Fields {
		tv, ok := to.Field(k)
		if !ok {
			*res = append(*res, Change{Path: keyPath(path, k), Op: Delete, From: from.Values[i]})
			continue
		}
		diffValue(keyPath(path, k), from.Values[i], tv, res)
	}
	for i, k := range to.Fields {
		if _, ok := from.Field(k); !ok {
			*res = append(*res, Change{Path: keyPath(path, k), Op: Insert, To: to.Values[i]})
		}
	}
}

// summarize maps each element to a rune so that elements which can be
// compared in place share a rune: leaves by value, containers by type.
func summarize(m map[string]rune, vs []*ir.Value) []rune {
	res := make([]rune, len(vs))
	for i, v := range vs {
		k := v.Type.String()
		if v.Type.IsLeaf() {
			k += "-" + v.Scalar()
		}
		r, ok := m[k]
		if !ok {
			r = rune(len(m) + 1)
			m[k] = r
		}
		res[i] = r
	}
	return res
}

func diffArray(path string, from, to *ir.Value, res *[]Change) {
	m := map[string]rune{}
	fr := summarize(m, from.Values)
	tr := summarize(m, to.Values)
	diffs := diffpatch.New().DiffMainRunes(fr, tr, false)
	fi, ti := 0, 0
	// deleted elements not yet paired with an insert
	var pending []Change
	flush := func() {
		*res = append(*res, pending...)
		pending = pending[:0]
	}
	for _, d := range diffs {
		n := len([]rune(d.Text))
		switch d.Type {
		case diffpatch.DiffDelete:
			flush()
			for range n {
				pending = append(pending, Change{Path: indexPath(path, fi), Op: Delete, From: from.Values[fi]})
				fi++
			}
		case diffpatch.DiffInsert:
			for k := range n {
				if k < len(pending) {
					pending[k].Op = Replace
					pending[k].To = to.Values[ti]
				} else {
					*res = append(*res, Change{Path: indexPath(path, fi), Op: Insert, To: to.Values[ti]})
				}
				ti++
			}
			flush()
		case diffpatch.DiffEqual:
			flush()
			for range n {
				diffValue(indexPath(path, fi), from.Values[fi], to.Values[ti], res)
				fi++
				ti++
			}
		}
	}
	flush()
}

func sameSchema(a, b *ir.Table) bool {
	if len(a.Schema) != len(b.Schema) {
		return false
	}
	for i := range a.Schema {
		if a.Schema[i] != b.Schema[i] {
			return false
		}
	}
	return true
}

func diffTable(path string, from, to *ir.Value, res *[]Change) {
	ft, tt := from.Table, to.Table
	if !sameSchema(ft, tt) {
		*res = append(*res, Change{Path: path, Op: Replace, From: from, To: to})
		return
	}
	n := min(len(ft.Rows), len(tt.Rows))
	for i := range n {
		for j, c := range ft.Schema {
			if !ir.Equal(ft.Rows[i][j], tt.Rows[i][j]) {
				*res = append(*res, Change{
					Path: keyPath(indexPath(path, i), c.Name),
					Op:   Replace,
					From: ft.Rows[i][j],
					To:   tt.Rows[i][j],
				})
			}
		}
	}
	for i := n; i < len(ft.Rows); i++ {
		*res = append(*res, Change{Path: indexPath(path, i), Op: Delete, From: ft.RowObject(i)})
	}
	for i := n; i < len(tt.Rows); i++ {
		*res = append(*res, Change{Path: indexPath(path, i), Op: Insert, To: tt.RowObject(i)})
	}
}
