package ds

import (
	art "github.com/plar/go-adaptive-radix-tree"
)

// NameIndex is a radix-tree index from names to opaque values, used for the
// by-name grid registry. Not safe for concurrent use on its own; the
// registry serializes access.
type NameIndex struct {
	tree art.Tree
}

func NewNameIndex() *NameIndex {
	return &NameIndex{
		tree: art.New(),
	}
}

func (t *NameIndex) Get(name []byte) (interface{}, bool) {
	return t.tree.Search(name)
}

func (t *NameIndex) Put(name []byte, value interface{}) (oldVal interface{}, replaced bool) {
	return t.tree.Insert(name, value)
}

func (t *NameIndex) Delete(name []byte) (val interface{}, deleted bool) {
	return t.tree.Delete(name)
}

func (t *NameIndex) Len() int {
	return t.tree.Size()
}

// PrefixScan returns names starting with prefix, at most count of them.
// No limit when count is smaller than 0; an empty prefix scans everything.
func (t *NameIndex) PrefixScan(prefix []byte, count int) (names [][]byte) {
	cb := func(node art.Node) bool {
		if node.Kind() != art.Leaf {
			return true
		}
		if count == 0 {
			return false
		}
		names = append(names, node.Key())
		if count > 0 {
			count--
		}
		return true
	}

	if len(prefix) == 0 {
		t.tree.ForEach(cb)
	} else {
		t.tree.ForEachPrefix(prefix, cb)
	}
	return
}
