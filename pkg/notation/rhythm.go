package notation

// The rhythm pass walks a stave's token stream with a small state machine
// and groups notes, dashes and rests into beats. Every beat spans a quarter
// note; its divisions come from counting tokens, so "1-2" is three
// subdivisions and therefore a triplet.
type fsmState int

const (
	stateInitial fsmState = iota
	stateInBeat
	stateCollectingPitch
	stateCollectingRests
	stateHalt
)

type rhythmFSM struct {
	state fsmState
	items []Item
	beat  *Beat

	// extensionChain tracks whether a dash at the start of the next beat
	// continues the previous note as a tie rather than a rest.
	extensionChain bool
	lastPitch      PitchCode
	lastOctave     int

	pendingSlurEnd bool
}

// buildItems converts lexed, spatially annotated tokens into the rhythm
// item stream.
func buildItems(tokens []Token) []Item {
	f := &rhythmFSM{}
	for _, tok := range tokens {
		f.feed(tok)
	}
	f.halt()
	return f.items
}

func (f *rhythmFSM) feed(tok Token) {
	switch tok.Kind {
	case TokenNote:
		f.onNote(tok)
	case TokenDash:
		f.onDash(tok)
	case TokenSpace:
		f.finishBeat()
		f.state = stateInitial
	case TokenBarline:
		f.finishBeat()
		f.items = append(f.items, Item{Kind: ItemBarline, Barline: tok.Barline})
		f.extensionChain = false
		f.state = stateInitial
	case TokenBreath:
		f.finishBeat()
		f.items = append(f.items, Item{Kind: ItemBreath})
		f.extensionChain = false
		f.state = stateInitial
	case TokenUnknown:
		// Garbage inside a beat breaks any extension run but keeps the
		// beat open.
		if f.beat != nil {
			f.state = stateInBeat
		}
	}
}

func (f *rhythmFSM) onNote(tok Token) {
	if f.beat == nil {
		f.beat = &Beat{}
	}
	if tok.SlurStart {
		f.items = append(f.items, Item{Kind: ItemSlurStart})
	}
	if tok.SlurEnd {
		f.pendingSlurEnd = true
	}
	f.beat.Elements = append(f.beat.Elements, BeatElement{
		Subdivisions: 1,
		Pitch:        tok.Pitch,
		Octave:       tok.Octave,
		Value:        tok.Value,
		Pos:          tok.Pos,
		Syllable:     tok.Syllable,
		SlurStart:    tok.SlurStart,
		SlurEnd:      tok.SlurEnd,
		Mordent:      tok.Mordent,
		Ornament:     tok.Ornament,
		Chord:        tok.Chord,
	})
	f.state = stateCollectingPitch
}

func (f *rhythmFSM) onDash(tok Token) {
	switch f.state {
	case stateCollectingPitch, stateCollectingRests:
		last := &f.beat.Elements[len(f.beat.Elements)-1]
		last.Subdivisions++
	case stateInBeat:
		f.beat.Elements = append(f.beat.Elements, BeatElement{Subdivisions: 1, IsRest: true, Value: tok.Value, Pos: tok.Pos})
		f.state = stateCollectingRests
	default:
		// Leading dash. With a live extension chain it continues the
		// previous note across the beat boundary as a tie; otherwise it
		// is a rest.
		f.beat = &Beat{}
		if f.extensionChain {
			f.beat.TiedToPrevious = true
			f.beat.Elements = append(f.beat.Elements, BeatElement{
				Subdivisions: 1,
				Pitch:        f.lastPitch,
				Octave:       f.lastOctave,
				Value:        tok.Value,
				Pos:          tok.Pos,
			})
			f.state = stateCollectingPitch
		} else {
			f.beat.Elements = append(f.beat.Elements, BeatElement{Subdivisions: 1, IsRest: true, Value: tok.Value, Pos: tok.Pos})
			f.state = stateCollectingRests
		}
	}
}

func (f *rhythmFSM) finishBeat() {
	if f.beat == nil {
		return
	}
	b := f.beat
	f.beat = nil

	for _, el := range b.Elements {
		b.Divisions += el.Subdivisions
	}
	if b.Divisions > 1 && !powerOfTwo(b.Divisions) {
		b.IsTuplet = true
		b.TupletNum = b.Divisions
		b.TupletDen = largestPowerOfTwoAtMost(b.Divisions)
	}
	for i := range b.Elements {
		el := &b.Elements[i]
		el.Duration = NewRational(el.Subdivisions, b.Divisions*4)
		if b.IsTuplet {
			el.TupletDuration = NewRational(el.Subdivisions, b.TupletDen*4)
		} else {
			el.TupletDuration = el.Duration
		}
	}

	last := b.Elements[len(b.Elements)-1]
	if !last.IsRest {
		f.extensionChain = true
		f.lastPitch = last.Pitch
		f.lastOctave = last.Octave
	} else {
		f.extensionChain = false
	}

	f.items = append(f.items, Item{Kind: ItemBeat, Beat: b})
	if f.pendingSlurEnd {
		f.items = append(f.items, Item{Kind: ItemSlurEnd})
		f.pendingSlurEnd = false
	}
}

func (f *rhythmFSM) halt() {
	f.finishBeat()
	f.state = stateHalt
}

func powerOfTwo(n int) bool { return n > 0 && n&(n-1) == 0 }

func largestPowerOfTwoAtMost(n int) int {
	p := 1
	for p*2 <= n {
		p *= 2
	}
	return p
}
