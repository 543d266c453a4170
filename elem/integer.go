package elem

import (
	"cmp"
	"encoding/binary"
	"strconv"
	"unicode/utf16"

	"github.com/amp-labs/amp-tuple/hashing"
)

// Byte is the semantics of 8-bit signed integers.
type Byte struct{}

func (Byte) Equal(a, b int8) bool  { return a == b }
func (Byte) Hash(v int8) int32     { return int32(v) }
func (Byte) Compare(a, b int8) int { return cmp.Compare(a, b) }
func (Byte) Format(v int8) string  { return strconv.FormatInt(int64(v), 10) }
func (Byte) Name() string          { return "byte" }
func (Byte) AppendKey(dst []byte, v int8) []byte {
	return append(dst, byte(v))
}

// Short is the semantics of 16-bit signed integers.
type Short struct{}

func (Short) Equal(a, b int16) bool  { return a == b }
func (Short) Hash(v int16) int32     { return int32(v) }
func (Short) Compare(a, b int16) int { return cmp.Compare(a, b) }
func (Short) Format(v int16) string  { return strconv.FormatInt(int64(v), 10) }
func (Short) Name() string           { return "short" }
func (Short) AppendKey(dst []byte, v int16) []byte {
	return binary.BigEndian.AppendUint16(dst, uint16(v)) //nolint:gosec
}

// Int is the semantics of 32-bit signed integers.
type Int struct{}

func (Int) Equal(a, b int32) bool  { return a == b }
func (Int) Hash(v int32) int32     { return v }
func (Int) Compare(a, b int32) int { return cmp.Compare(a, b) }
func (Int) Format(v int32) string  { return strconv.FormatInt(int64(v), 10) }
func (Int) Name() string           { return "int" }
func (Int) AppendKey(dst []byte, v int32) []byte {
	return binary.BigEndian.AppendUint32(dst, uint32(v)) //nolint:gosec
}

// Long is the semantics of 64-bit signed integers.
type Long struct{}

func (Long) Equal(a, b int64) bool  { return a == b }
func (Long) Hash(v int64) int32     { return hashing.Int64(v) }
func (Long) Compare(a, b int64) int { return cmp.Compare(a, b) }
func (Long) Format(v int64) string  { return strconv.FormatInt(v, 10) }
func (Long) Name() string           { return "long" }
func (Long) AppendKey(dst []byte, v int64) []byte {
	return binary.BigEndian.AppendUint64(dst, uint64(v)) //nolint:gosec
}

// Char is the semantics of UTF-16 code units.
type Char struct{}

func (Char) Equal(a, b uint16) bool  { return a == b }
func (Char) Hash(v uint16) int32     { return int32(v) }
func (Char) Compare(a, b uint16) int { return cmp.Compare(a, b) }
func (Char) Name() string            { return "char" }
func (Char) AppendKey(dst []byte, v uint16) []byte {
	return binary.BigEndian.AppendUint16(dst, v)
}

// Format prints the character itself. Lone surrogate halves have no
// printable form and are shown as \uXXXX.
func (Char) Format(v uint16) string {
	r := rune(v)
	if utf16.IsSurrogate(r) {
		return `\u` + strconv.FormatUint(uint64(v)|0x10000, 16)[1:]
	}

	return string(r)
}

// Bool is the semantics of booleans. False orders before true.
type Bool struct{}

func (Bool) Equal(a, b bool) bool  { return a == b }
func (Bool) Hash(v bool) int32     { return hashing.Bool(v) }
func (Bool) Format(v bool) string  { return strconv.FormatBool(v) }
func (Bool) Name() string          { return "bool" }
func (Bool) Compare(a, b bool) int { return cmp.Compare(hashing.Bool(a), hashing.Bool(b)) }
func (Bool) AppendKey(dst []byte, v bool) []byte {
	return append(dst, byte(hashing.Bool(v)))
}
