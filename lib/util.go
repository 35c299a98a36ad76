package lib

import "unsafe"

// Bytes2str morph byte slice to a string without copying.
func Bytes2str(bytes []byte) string {
	if bytes == nil {
		return ""
	}
	return *(*string)(unsafe.Pointer(&bytes))
}

// Str2bytes morph string to a byte slice without copying. The return
// value shall not be mutated.
func Str2bytes(str string) []byte {
	if str == "" {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(str), len(str))
}

// AbsInt64 absolute value of an int64 number.
func AbsInt64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}
