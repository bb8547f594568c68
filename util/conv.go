package util

import (
	"reflect"
	"unsafe"
)

// StringToByte converts a string to a byte slice without memory allocation.
// The result aliases the string and must not be mutated; it exists for
// lookup keys that would otherwise copy on every call.
func StringToByte(s string) (b []byte) {
	/* #nosec G103 */
	bh := (*reflect.SliceHeader)(unsafe.Pointer(&b))
	/* #nosec G103 */
	sh := (*reflect.StringHeader)(unsafe.Pointer(&s))
	bh.Data = sh.Data
	bh.Cap = sh.Len
	bh.Len = sh.Len
	return b
}
