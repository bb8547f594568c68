package mmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlloc(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"page", 4096},
		{"small", 64},
		{"big", 16 << 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Alloc(tt.size)
			assert.Nil(t, err)
			assert.Equal(t, tt.size, len(b))

			// mapped pages must be writable and readable
			b[0] = 0xAB
			b[tt.size-1] = 0xCD
			assert.Equal(t, byte(0xAB), b[0])
			assert.Equal(t, byte(0xCD), b[tt.size-1])

			assert.Nil(t, Free(b))
		})
	}
}

func TestAdvise(t *testing.T) {
	b, err := Alloc(4096)
	assert.Nil(t, err)
	defer Free(b)

	assert.Nil(t, Advise(b, false))
	assert.Nil(t, Advise(b, true))
}
