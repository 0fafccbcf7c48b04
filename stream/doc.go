// Package stream provides the byte channels consumed by the strbuf
// serializer: a file-backed channel over an os.File and an in-memory
// buffer channel with a read cursor.
//
// Both transfer whole buffers: Read and Write move exactly len(p) bytes or
// return an error, and Skip advances the read position without copying.
// Neither channel is safe for concurrent use.
package stream
