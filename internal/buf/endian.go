// Package buf contains endian and bounds helpers shared by the strbuf
// core and the stream channels.
package buf

import "encoding/binary"

// U32LE reads a little-endian uint32 from b. Returns 0 when b is too short.
func U32LE(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

// PutU32LE writes v to b in little-endian order. b must hold at least 4 bytes.
func PutU32LE(b []byte, v uint32) {
	binary.LittleEndian.PutUint32(b[:4], v)
}

// Swap32 reverses the byte order of v. Used to correct a length prefix
// written on a machine of the opposite endianness.
func Swap32(v uint32) uint32 {
	return v<<24 | (v&0xff00)<<8 | (v>>8)&0xff00 | v>>24
}
