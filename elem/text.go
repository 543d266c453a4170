package elem

import (
	"encoding/binary"
	"strings"

	"github.com/amp-labs/amp-tuple/hashing"
)

// String is the semantics of strings. Ordering is by byte value, which for
// valid UTF-8 is code point order.
type String struct{}

func (String) Equal(a, b string) bool  { return a == b }
func (String) Hash(v string) int32     { return hashing.String(v) }
func (String) Compare(a, b string) int { return strings.Compare(a, b) }
func (String) Format(v string) string  { return v }
func (String) Name() string            { return "string" }

// AppendKey length-prefixes the string so that adjacent components
// cannot run into each other.
func (String) AppendKey(dst []byte, v string) []byte {
	dst = binary.BigEndian.AppendUint32(dst, uint32(len(v))) //nolint:gosec

	return append(dst, v...)
}
