package wmi

import (
	"unicode/utf16"
	"unsafe"
)

// bstrToUTF8 converts a NUL-terminated UTF-16 string, as carried by BSTR
// variants, to a UTF-8 Go string. A nil or empty input returns "" without
// walking the string.
func bstrToUTF8(p *uint16) string {
	if p == nil || *p == 0 {
		return ""
	}

	length := 0
	base := unsafe.Pointer(p)
	for *(*uint16)(unsafe.Pointer(uintptr(base) + uintptr(length)*2)) != 0 {
		length++
	}
	return utf16ToUTF8(unsafe.Slice(p, length))
}

// utf16ToUTF8 decodes a UTF-16 code-unit sequence, surrogate pairs included.
func utf16ToUTF8(units []uint16) string {
	if len(units) == 0 {
		return ""
	}
	return string(utf16.Decode(units))
}
