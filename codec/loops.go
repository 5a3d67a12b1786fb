package codec

// LoopsSlotCount is the fixed number of loop slots the vendor format
// carries per track (spec.md §4.6).
const LoopsSlotCount = 8

// Loop is one optional loop slot.
type Loop struct {
	Present           bool
	Label             string
	StartSampleOffset float64
	EndSampleOffset   float64
	Color             Color
}

// Loops is the payload of PerformanceData.loops.
type Loops struct {
	Loops [LoopsSlotCount]Loop
}

func (l Loops) Encode() []byte {
	buf := newBuf()
	for _, lp := range l.Loops {
		writeBool(buf, lp.Present)
		if lp.Present {
			writeStr(buf, lp.Label)
			writeF64(buf, lp.StartSampleOffset)
			writeF64(buf, lp.EndSampleOffset)
			writeU8(buf, lp.Color.Red)
			writeU8(buf, lp.Color.Green)
			writeU8(buf, lp.Color.Blue)
			writeU8(buf, lp.Color.Alpha)
		}
	}
	return buf.Bytes()
}

func DecodeLoops(b []byte) (Loops, error) {
	if len(b) == 0 {
		return Loops{}, nil
	}
	r := newReader(b)
	var l Loops
	for i := range l.Loops {
		present := r.boolean()
		l.Loops[i].Present = present
		if present {
			l.Loops[i].Label = r.str()
			l.Loops[i].StartSampleOffset = r.f64()
			l.Loops[i].EndSampleOffset = r.f64()
			l.Loops[i].Color = Color{r.u8(), r.u8(), r.u8(), r.u8()}
		}
	}
	if r.err != nil {
		return Loops{}, r.err
	}
	return l, nil
}
