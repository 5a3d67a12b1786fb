package codec

import "bytes"

// BeatMarker is one entry in a beat grid: a sample offset, its beat
// number within the bar, the number of beats until the next marker,
// and an unused reserved field carried for round-trip fidelity.
type BeatMarker struct {
	SampleOffset       float64
	BeatNumber         int32
	BeatsUntilNext     int32
	Unused             int32
}

// BeatData is the payload of PerformanceData.beatData: sample rate,
// sample count, a flag distinguishing the vendor-analysed default grid
// from a user-adjusted one, and the default/adjusted marker sequences
// — both always present, per spec.md §4.6.
type BeatData struct {
	SampleRate  float64
	SampleCount int64
	IsAdjusted  bool
	Default     []BeatMarker
	Adjusted    []BeatMarker
}

func (d BeatData) Encode() []byte {
	buf := newBuf()
	writeF64(buf, d.SampleRate)
	writeI64(buf, d.SampleCount)
	writeBool(buf, d.IsAdjusted)
	writeMarkers(buf, d.Default)
	writeMarkers(buf, d.Adjusted)
	return buf.Bytes()
}

func writeMarkers(buf *bytes.Buffer, markers []BeatMarker) {
	writeU32(buf, uint32(len(markers)))
	for _, m := range markers {
		writeF64(buf, m.SampleOffset)
		writeI32(buf, m.BeatNumber)
		writeI32(buf, m.BeatsUntilNext)
		writeI32(buf, m.Unused)
	}
}

func DecodeBeatData(b []byte) (BeatData, error) {
	if len(b) == 0 {
		return BeatData{}, nil
	}
	r := newReader(b)
	d := BeatData{
		SampleRate:  r.f64(),
		SampleCount: r.i64(),
		IsAdjusted:  r.boolean(),
	}
	d.Default = readMarkers(r)
	d.Adjusted = readMarkers(r)
	if r.err != nil {
		return BeatData{}, r.err
	}
	return d, nil
}

func readMarkers(r *reader) []BeatMarker {
	n := r.u32()
	out := make([]BeatMarker, 0, n)
	for i := uint32(0); i < n; i++ {
		out = append(out, BeatMarker{
			SampleOffset:   r.f64(),
			BeatNumber:     r.i32(),
			BeatsUntilNext: r.i32(),
			Unused:         r.i32(),
		})
	}
	return out
}
