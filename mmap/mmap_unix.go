//go:build linux || darwin

package mmap

import (
	"golang.org/x/sys/unix"
)

func alloc(size int) ([]byte, error) {
	return unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
}

func free(b []byte) error {
	return unix.Munmap(b)
}

func advise(b []byte, randomRead bool) error {
	advice := unix.MADV_NORMAL
	if randomRead {
		advice = unix.MADV_RANDOM
	}
	return unix.Madvise(b, advice)
}
