package codec

// QuickCuesSlotCount is the fixed number of hot-cue slots the vendor
// format carries per track (spec.md §4.6).
const QuickCuesSlotCount = 8

// Color is an RGBA colour tag, as carried by quick cues and loops.
type Color struct {
	Red, Green, Blue, Alpha uint8
}

// QuickCue is one optional hot-cue slot: present reports whether the
// slot is populated at all.
type QuickCue struct {
	Present      bool
	Label        string
	SampleOffset float64
	Color        Color
}

// QuickCues is the payload of PerformanceData.quickCues: the fixed
// array of optional hot cues, the main-cue sample offset and its
// "is set" flag, and the adjusted main-cue offset.
type QuickCues struct {
	Cues                    [QuickCuesSlotCount]QuickCue
	MainCueSampleOffset     float64
	IsMainCueAdjusted       bool
	AdjustedMainCueSampleOffset float64
}

func (q QuickCues) Encode() []byte {
	buf := newBuf()
	for _, c := range q.Cues {
		writeBool(buf, c.Present)
		if c.Present {
			writeStr(buf, c.Label)
			writeF64(buf, c.SampleOffset)
			writeU8(buf, c.Color.Red)
			writeU8(buf, c.Color.Green)
			writeU8(buf, c.Color.Blue)
			writeU8(buf, c.Color.Alpha)
		}
	}
	writeF64(buf, q.MainCueSampleOffset)
	writeBool(buf, q.IsMainCueAdjusted)
	writeF64(buf, q.AdjustedMainCueSampleOffset)
	return buf.Bytes()
}

func DecodeQuickCues(b []byte) (QuickCues, error) {
	if len(b) == 0 {
		return QuickCues{}, nil
	}
	r := newReader(b)
	var q QuickCues
	for i := range q.Cues {
		present := r.boolean()
		q.Cues[i].Present = present
		if present {
			q.Cues[i].Label = r.str()
			q.Cues[i].SampleOffset = r.f64()
			q.Cues[i].Color = Color{r.u8(), r.u8(), r.u8(), r.u8()}
		}
	}
	q.MainCueSampleOffset = r.f64()
	q.IsMainCueAdjusted = r.boolean()
	q.AdjustedMainCueSampleOffset = r.f64()
	if r.err != nil {
		return QuickCues{}, r.err
	}
	return q, nil
}
