package gridmap

import (
	"errors"
	"sync"

	"gridmap/ds"
	"gridmap/util"
)

var (
	ErrGridRegistered = errors.New("grid name already registered")
	ErrGridNotFound   = errors.New("grid name not registered")
)

// Descriptor is the geometry view a registry hands out. *Grid[T] satisfies
// it for any T.
type Descriptor interface {
	Rows() int
	Columns() int
	Partitions() int
}

// Registry resolves grids by name, so tasks can share a grid without
// passing the value through every call chain. Names are indexed in a radix
// tree to keep prefix scans cheap.
type Registry struct {
	mu  sync.RWMutex
	idx *ds.NameIndex
}

func NewRegistry() *Registry {
	return &Registry{idx: ds.NewNameIndex()}
}

func (r *Registry) Register(name string, d Descriptor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.idx.Get(util.StringToByte(name)); ok {
		return ErrGridRegistered
	}
	r.idx.Put([]byte(name), d)
	return nil
}

func (r *Registry) Lookup(name string) (Descriptor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.idx.Get(util.StringToByte(name))
	if !ok {
		return nil, ErrGridNotFound
	}
	return v.(Descriptor), nil
}

func (r *Registry) Unregister(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.idx.Delete(util.StringToByte(name)); !ok {
		return ErrGridNotFound
	}
	return nil
}

// Scan returns registered names starting with prefix, at most count of
// them; count < 0 means no limit.
func (r *Registry) Scan(prefix string, count int) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	raw := r.idx.PrefixScan(util.StringToByte(prefix), count)
	names := make([]string, 0, len(raw))
	for _, b := range raw {
		names = append(names, string(b))
	}
	return names
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.idx.Len()
}

// defaultRegistry backs the package-level helpers, mirroring the original
// convenience of importing a shared map by name alone.
var defaultRegistry = NewRegistry()

func Register(name string, d Descriptor) error { return defaultRegistry.Register(name, d) }
func Lookup(name string) (Descriptor, error)   { return defaultRegistry.Lookup(name) }
func Unregister(name string) error             { return defaultRegistry.Unregister(name) }
func Scan(prefix string, count int) []string   { return defaultRegistry.Scan(prefix, count) }
