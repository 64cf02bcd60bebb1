package notation

// TransposedNote is a concrete staff pitch: Step 0-6 for C-B, Alter -2..2,
// Octave relative to the middle octave.
type TransposedNote struct {
	Step   int `json:"step"`
	Alter  int `json:"alter"`
	Octave int `json:"octave"`
}

var majorScaleSemitones = [7]int{0, 2, 4, 5, 7, 9, 11}

// pitchClassSpelling prefers the common key spellings: sharps for classes 1
// and 6 (C#, F#), flats for 3, 8 and 10 (Eb, Ab, Bb).
var pitchClassSpelling = [12]TransposedNote{
	{Step: 0, Alter: 0},  // C
	{Step: 0, Alter: 1},  // C#
	{Step: 1, Alter: 0},  // D
	{Step: 2, Alter: -1}, // Eb
	{Step: 2, Alter: 0},  // E
	{Step: 3, Alter: 0},  // F
	{Step: 3, Alter: 1},  // F#
	{Step: 4, Alter: 0},  // G
	{Step: 5, Alter: -1}, // Ab
	{Step: 5, Alter: 0},  // A
	{Step: 6, Alter: -1}, // Bb
	{Step: 6, Alter: 0},  // B
}

// TransposePitch maps a movable-do pitch to a concrete staff note in the
// given key. The tonic is a western-space PitchCode, so N2 means D major.
// With tonic C the mapping is the identity on naturals.
func TransposePitch(pc PitchCode, octave int, tonic PitchCode) TransposedNote {
	tonicSemi := majorScaleSemitones[tonic.Degree()-1] + tonic.Alter()
	noteSemi := majorScaleSemitones[pc.Degree()-1] + pc.Alter()
	total := tonicSemi + noteSemi
	carry := total / 12
	class := total % 12
	if class < 0 {
		class += 12
		carry--
	}
	out := pitchClassSpelling[class]
	out.Octave = octave + carry
	return out
}

// Letters for the seven steps.
var stepNames = [7]string{"C", "D", "E", "F", "G", "A", "B"}

// StepName returns "C".."B" for a step index.
func StepName(step int) string { return stepNames[step%7] }

// keySignatures gives the per-letter alteration of every supported major
// key, indexed by step. Sharps apply in the order F C G D A E B, flats in
// the reverse.
var (
	sharpSteps = [7]int{3, 0, 4, 1, 5, 2, 6}
	flatSteps  = [7]int{6, 2, 5, 1, 4, 0, 3}
	keyCounts  = map[string]int{
		"C": 0, "G": 1, "D": 2, "A": 3, "E": 4, "B": 5, "F#": 6, "C#": 7,
		"F": -1, "Bb": -2, "Eb": -3, "Ab": -4, "Db": -5, "Gb": -6, "Cb": -7,
	}
)

// KeySignature returns the accidental each letter carries in the key of the
// given tonic, indexed by step. Unsupported tonics fall back to C.
func KeySignature(tonic PitchCode) [7]int {
	name := StepName(tonic.Degree()-1) + alterSuffix[tonic.Alter()]
	count, ok := keyCounts[name]
	var sig [7]int
	if !ok {
		return sig
	}
	for i := 0; i < count; i++ {
		sig[sharpSteps[i]] = 1
	}
	for i := 0; i < -count; i++ {
		sig[flatSteps[i]] = -1
	}
	return sig
}

// AccidentalTable tracks the accidental in force for each letter within a
// measure, so emitters only print accidentals that change something.
type AccidentalTable struct {
	signature [7]int
	state     [7]int
}

// NewAccidentalTable starts a table from a key's signature.
func NewAccidentalTable(tonic PitchCode) *AccidentalTable {
	t := &AccidentalTable{signature: KeySignature(tonic)}
	t.Reset()
	return t
}

// Reset restores the key signature; call it at every barline.
func (t *AccidentalTable) Reset() {
	t.state = t.signature
}

// Apply records a sounding note and reports whether it needs a printed
// accidental (including a natural sign cancelling an earlier one).
func (t *AccidentalTable) Apply(step, alter int) bool {
	step = ((step % 7) + 7) % 7
	if t.state[step] == alter {
		return false
	}
	t.state[step] = alter
	return true
}
