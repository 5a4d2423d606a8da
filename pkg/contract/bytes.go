package contract

import (
	"bytes"

	"github.com/pkg/errors"
)

// ErrStringTooLong is returned when a string does not fit in a bytes32 value
var ErrStringTooLong = errors.New("string longer than 32 bytes")

// BytesToString converts a bytes32 value to a string, dropping the zero padding
func BytesToString(b [32]byte) string {
	return string(bytes.TrimRight(b[:], "\x00"))
}

// StringToBytes32 converts a string to a right padded bytes32 value
func StringToBytes32(s string) ([32]byte, error) {
	var b [32]byte
	if len(s) > len(b) {
		return b, errors.Wrapf(ErrStringTooLong, "%q", s)
	}
	copy(b[:], s)
	return b, nil
}
