package encode

import (
	"fmt"

	"github.com/najmus-sakib-hossain/zed-sub048/ir"
)

func val(x any) *ir.Value {
	switch y := x.(type) {
	case nil:
		return ir.Null()
	case *ir.Value:
		return y
	case bool:
		return ir.FromBool(y)
	case int:
		return ir.FromInt(int64(y))
	case int64:
		return ir.FromInt(y)
	case float64:
		return ir.FromFloat(y)
	case string:
		return ir.FromString(y)
	case []any:
		vs := make([]*ir.Value, len(y))
		for i := range y {
			vs[i] = val(y[i])
		}
		return ir.FromSlice(vs)
	}
	panic(fmt.Sprintf("val: %T", x))
}

func obj(kvs ...any) *ir.Value {
	res := ir.NewObject()
	for i := 0; i < len(kvs); i += 2 {
		res.Set(kvs[i].(string), val(kvs[i+1]))
	}
	return res
}

func doc(kvs ...any) *ir.Document {
	return ir.NewDocument(obj(kvs...))
}

func table(cols []ir.Column, rows ...[]any) *ir.Value {
	t := ir.NewTable(cols...)
	for _, r := range rows {
		row := make([]*ir.Value, len(r))
		for i := range r {
			row[i] = val(r[i])
		}
		if err := t.AddRow(row); err != nil {
			panic(err)
		}
	}
	return ir.FromTable(t)
}

func col(name string, t ir.ColumnType) ir.Column {
	return ir.Column{Name: name, Type: t}
}
