package codec

// WaveformEntry is one down-sampled waveform sample: a value per band
// (low/mid/high), with an optional per-band opacity carried only by
// v1 libraries (spec.md §4.6: "from v2 onward opacity is dropped").
type WaveformEntry struct {
	Low, Mid, High                   uint8
	LowOpacity, MidOpacity, HighOpacity uint8
	HasOpacity                       bool
}

// OverviewWaveform is the fixed-size (at most 1024 entries) down-
// sampled waveform for the whole track.
type OverviewWaveform struct {
	Entries []WaveformEntry
}

// HighResolutionWaveform is the multi-sample-per-entry waveform whose
// entry count is derived from sample count/rate via
// HighResolutionWaveformExtents.
type HighResolutionWaveform struct {
	Entries []WaveformEntry
}

func encodeWaveform(entries []WaveformEntry) []byte {
	buf := newBuf()
	writeU32(buf, uint32(len(entries)))
	for _, e := range entries {
		writeBool(buf, e.HasOpacity)
		writeU8(buf, e.Low)
		writeU8(buf, e.Mid)
		writeU8(buf, e.High)
		if e.HasOpacity {
			writeU8(buf, e.LowOpacity)
			writeU8(buf, e.MidOpacity)
			writeU8(buf, e.HighOpacity)
		}
	}
	return buf.Bytes()
}

func decodeWaveform(b []byte) ([]WaveformEntry, error) {
	if len(b) == 0 {
		return nil, nil
	}
	r := newReader(b)
	n := r.u32()
	out := make([]WaveformEntry, 0, n)
	for i := uint32(0); i < n; i++ {
		var e WaveformEntry
		e.HasOpacity = r.boolean()
		e.Low = r.u8()
		e.Mid = r.u8()
		e.High = r.u8()
		if e.HasOpacity {
			e.LowOpacity = r.u8()
			e.MidOpacity = r.u8()
			e.HighOpacity = r.u8()
		}
		out = append(out, e)
	}
	if r.err != nil {
		return nil, r.err
	}
	return out, nil
}

func (w OverviewWaveform) Encode() []byte { return encodeWaveform(w.Entries) }

func DecodeOverviewWaveform(b []byte) (OverviewWaveform, error) {
	e, err := decodeWaveform(b)
	if err != nil {
		return OverviewWaveform{}, err
	}
	return OverviewWaveform{Entries: e}, nil
}

func (w HighResolutionWaveform) Encode() []byte { return encodeWaveform(w.Entries) }

func DecodeHighResolutionWaveform(b []byte) (HighResolutionWaveform, error) {
	e, err := decodeWaveform(b)
	if err != nil {
		return HighResolutionWaveform{}, err
	}
	return HighResolutionWaveform{Entries: e}, nil
}

// WaveformExtents is the (entries, samplesPerEntry) pair either extent
// rule produces.
type WaveformExtents struct {
	Entries         int64
	SamplesPerEntry int64
}

// OverviewWaveformExtents implements spec.md §4.6's overview rule: at
// most 1024 entries, samples_per_entry = sample_count/1024 rounding
// down to no less than 1, with both fields 0 when sample_count is 0.
func OverviewWaveformExtents(sampleCount int64, sampleRate float64) WaveformExtents {
	if sampleCount == 0 {
		return WaveformExtents{}
	}
	const maxEntries = 1024
	samplesPerEntry := sampleCount / maxEntries
	if samplesPerEntry >= 1 {
		return WaveformExtents{Entries: maxEntries, SamplesPerEntry: samplesPerEntry}
	}
	return WaveformExtents{Entries: sampleCount, SamplesPerEntry: 1}
}

// HighResolutionWaveformExtents implements spec.md §4.6's high-
// resolution rule: one entry roughly every 9.5ms of audio (~105
// entries/sec — ~420 samples/entry at 44.1kHz, ~456 at 48kHz),
// samples_per_entry = round(sample_rate * 0.0095), entries =
// ceil(sample_count / samples_per_entry).
func HighResolutionWaveformExtents(sampleCount int64, sampleRate float64) WaveformExtents {
	if sampleCount == 0 {
		return WaveformExtents{}
	}
	samplesPerEntry := int64(sampleRate*0.0095 + 0.5)
	if samplesPerEntry < 1 {
		samplesPerEntry = 1
	}
	entries := (sampleCount + samplesPerEntry - 1) / samplesPerEntry
	return WaveformExtents{Entries: entries, SamplesPerEntry: samplesPerEntry}
}
