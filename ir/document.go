package ir

// Document is a parsed or decoded document. Its root is always an object
// and it is not modified after construction.
type Document struct {
	Root *Value
}

// NewDocument wraps root, which must be an object. A nil root yields
// an empty document.
func NewDocument(root *Value) *Document {
	if root == nil {
		root = NewObject()
	}
	if root.Type != ObjectType {
		panic("ir: document root must be an object, got " + root.Type.String())
	}
	return &Document{Root: root}
}

func (d *Document) Get(path string) (*Value, error) {
	return d.Root.Get(path)
}

func (d *Document) Clone() *Document {
	return &Document{Root: d.Root.Clone()}
}

func (d *Document) Hash() uint64 {
	return d.Root.Hash()
}

// Equal reports whether two documents are structurally equal.
func (d *Document) Equal(o *Document) bool {
	if d == nil || o == nil {
		return d == o
	}
	return Equal(d.Root, o.Root)
}

// Tables returns the dotted paths of all tables reachable from the root
// through objects, in document order.
func (d *Document) Tables() []string {
	var res []string
	var walk func(prefix []string, v *Value)
	walk = func(prefix []string, v *Value) {
		for i, f := range v.Fields {
			c := v.Values[i]
			p := append(prefix[:len(prefix):len(prefix)], f)
			switch c.Type {
			case TableType:
				res = append(res, JoinPath(p))
			case ObjectType:
				walk(p, c)
			}
		}
	}
	walk(nil, d.Root)
	return res
}
