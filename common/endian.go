package common

import "encoding/binary"

// Big-endian and little-endian accessors over byte buffers. Block ciphers
// in this kit treat blocks as big-endian machine words; the little-endian
// forms exist for callers that persist counters or lengths the other way.

func Uint16BE(b []byte) uint16 { return binary.BigEndian.Uint16(b) }
func Uint32BE(b []byte) uint32 { return binary.BigEndian.Uint32(b) }
func Uint64BE(b []byte) uint64 { return binary.BigEndian.Uint64(b) }

func PutUint16BE(b []byte, v uint16) { binary.BigEndian.PutUint16(b, v) }
func PutUint32BE(b []byte, v uint32) { binary.BigEndian.PutUint32(b, v) }
func PutUint64BE(b []byte, v uint64) { binary.BigEndian.PutUint64(b, v) }

func Uint16LE(b []byte) uint16 { return binary.LittleEndian.Uint16(b) }
func Uint32LE(b []byte) uint32 { return binary.LittleEndian.Uint32(b) }
func Uint64LE(b []byte) uint64 { return binary.LittleEndian.Uint64(b) }

func PutUint16LE(b []byte, v uint16) { binary.LittleEndian.PutUint16(b, v) }
func PutUint32LE(b []byte, v uint32) { binary.LittleEndian.PutUint32(b, v) }
func PutUint64LE(b []byte, v uint64) { binary.LittleEndian.PutUint64(b, v) }
