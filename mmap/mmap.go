package mmap

// Alloc reserves an anonymous, private, read-write mapping of size bytes.
// The region lives outside the Go heap, so it can hold a grid buffer whose
// lifetime matches the process rather than the collector's view of it.
func Alloc(size int) ([]byte, error) {
	return alloc(size)
}

// Free unmaps a region returned by Alloc.
func Free(b []byte) error {
	return free(b)
}

// Advise provides access-pattern advice for the region. If the page
// references are expected to be in random order, set the randomRead flag.
func Advise(b []byte, randomRead bool) error {
	return advise(b, randomRead)
}
