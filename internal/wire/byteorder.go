package wire

import "encoding/binary"

// doubleByteOrder maps wire byte positions to native byte positions for
// 8-byte floats. The canonical wire order is the little-endian layout, so
// the table is the identity on little-endian hosts and the reversal on
// big-endian hosts. The permutation is its own inverse, so encode and
// decode share it.
var doubleByteOrder = computeDoubleByteOrder()

func computeDoubleByteOrder() [8]int {
	if hostBigEndian() {
		return [8]int{7, 6, 5, 4, 3, 2, 1, 0}
	}
	return [8]int{0, 1, 2, 3, 4, 5, 6, 7}
}

// hostBigEndian reports the native byte order, determined once at startup.
func hostBigEndian() bool {
	var buf [2]byte
	binary.NativeEndian.PutUint16(buf[:], 0x0102)
	return buf[0] == 0x01
}
