package codec

// TrackData is the payload of PerformanceData.trackData: sample rate,
// sample count, whether analysis has run, and three average-loudness
// scalars (low/mid/high band), per spec.md §4.6.
type TrackData struct {
	SampleRate       float64
	SampleCount      int64
	IsAnalyzed       bool
	AverageLoudnessLow  float64
	AverageLoudnessMid  float64
	AverageLoudnessHigh float64
}

func (t TrackData) Encode() []byte {
	buf := newBuf()
	writeF64(buf, t.SampleRate)
	writeI64(buf, t.SampleCount)
	writeBool(buf, t.IsAnalyzed)
	writeF64(buf, t.AverageLoudnessLow)
	writeF64(buf, t.AverageLoudnessMid)
	writeF64(buf, t.AverageLoudnessHigh)
	return buf.Bytes()
}

func DecodeTrackData(b []byte) (TrackData, error) {
	if len(b) == 0 {
		return TrackData{}, nil
	}
	r := newReader(b)
	t := TrackData{
		SampleRate:          r.f64(),
		SampleCount:         r.i64(),
		IsAnalyzed:          r.boolean(),
		AverageLoudnessLow:  r.f64(),
		AverageLoudnessMid:  r.f64(),
		AverageLoudnessHigh: r.f64(),
	}
	if r.err != nil {
		return TrackData{}, r.err
	}
	return t, nil
}
