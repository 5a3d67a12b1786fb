// Package codec serialises and parses the binary BLOB payloads stored
// in PerformanceData's track-data, beat-data, waveform, quick-cue, and
// loop columns. Every codec is a pure encode/decode pair: no database
// access, no allocation the caller doesn't own.
package codec

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
)

var order = binary.LittleEndian

func writeU8(buf *bytes.Buffer, v uint8)   { buf.WriteByte(v) }
func writeBool(buf *bytes.Buffer, v bool) {
	if v {
		buf.WriteByte(1)
	} else {
		buf.WriteByte(0)
	}
}
func writeU32(buf *bytes.Buffer, v uint32) { binary.Write(buf, order, v) }
func writeI32(buf *bytes.Buffer, v int32)  { binary.Write(buf, order, v) }
func writeI64(buf *bytes.Buffer, v int64)  { binary.Write(buf, order, v) }
func writeF64(buf *bytes.Buffer, v float64) {
	binary.Write(buf, order, math.Float64bits(v))
}

type reader struct {
	b   []byte
	pos int
	err error
}

func newReader(b []byte) *reader { return &reader{b: b} }

func newBuf() *bytes.Buffer { return new(bytes.Buffer) }

func (r *reader) need(n int) []byte {
	if r.err != nil {
		return nil
	}
	if r.pos+n > len(r.b) {
		r.err = fmt.Errorf("codec: unexpected end of blob, need %d bytes at offset %d, have %d", n, r.pos, len(r.b))
		return nil
	}
	out := r.b[r.pos : r.pos+n]
	r.pos += n
	return out
}

func (r *reader) u8() uint8 {
	b := r.need(1)
	if b == nil {
		return 0
	}
	return b[0]
}

func (r *reader) boolean() bool { return r.u8() != 0 }

func (r *reader) u32() uint32 {
	b := r.need(4)
	if b == nil {
		return 0
	}
	return order.Uint32(b)
}

func (r *reader) i32() int32 { return int32(r.u32()) }

func (r *reader) i64() int64 {
	b := r.need(8)
	if b == nil {
		return 0
	}
	return int64(order.Uint64(b))
}

func (r *reader) f64() float64 {
	b := r.need(8)
	if b == nil {
		return 0
	}
	return math.Float64frombits(order.Uint64(b))
}

func (r *reader) str() string {
	n := r.u32()
	b := r.need(int(n))
	if b == nil {
		return ""
	}
	return string(b)
}

func writeStr(buf *bytes.Buffer, s string) {
	writeU32(buf, uint32(len(s)))
	buf.WriteString(s)
}
