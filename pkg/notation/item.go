package notation

// ItemKind discriminates rhythm-stream items.
type ItemKind string

const (
	ItemBeat      ItemKind = "beat"
	ItemBarline   ItemKind = "barline"
	ItemBreath    ItemKind = "breath"
	ItemSlurStart ItemKind = "slur_start"
	ItemSlurEnd   ItemKind = "slur_end"
	ItemTonic     ItemKind = "tonic"
)

// Item is one element of a stave's rhythm stream.
type Item struct {
	Kind    ItemKind     `json:"kind"`
	Beat    *Beat        `json:"beat,omitempty"`
	Barline BarlineStyle `json:"barline,omitempty"`
	Tonic   PitchCode    `json:"tonic,omitempty"`
}

// Beat is a run of notes, dashes and rests between spaces or barlines. The
// number of subdivisions its elements occupy sums to Divisions, and every
// beat spans a quarter note regardless of how many subdivisions it holds.
type Beat struct {
	Divisions      int           `json:"divisions"`
	Elements       []BeatElement `json:"elements"`
	TiedToPrevious bool          `json:"tied_to_previous,omitempty"`
	IsTuplet       bool          `json:"is_tuplet,omitempty"`
	// TupletNum/TupletDen form the tuplet ratio: TupletNum divisions in
	// the time of TupletDen, the largest power of two not above it.
	TupletNum int `json:"tuplet_num,omitempty"`
	TupletDen int `json:"tuplet_den,omitempty"`
}

// BeatElement is one sounding note or rest inside a beat. Subdivisions
// counts the element's own slot plus any dash extensions that follow it.
type BeatElement struct {
	Subdivisions int       `json:"subdivisions"`
	IsRest       bool      `json:"is_rest,omitempty"`
	Pitch        PitchCode `json:"pitch"`
	Octave       int       `json:"octave,omitempty"`
	Value        string    `json:"value"`
	Pos          Position  `json:"pos"`
	// Duration is the element's real length in whole notes.
	Duration Rational `json:"duration"`
	// TupletDuration is the display length inside a tuplet bracket; equal
	// to Duration outside tuplets.
	TupletDuration Rational `json:"tuplet_duration"`

	Syllable  string      `json:"syllable,omitempty"`
	SlurStart bool        `json:"slur_start,omitempty"`
	SlurEnd   bool        `json:"slur_end,omitempty"`
	Mordent   bool        `json:"mordent,omitempty"`
	Ornament  []PitchCode `json:"ornament,omitempty"`
	Chord     string      `json:"chord,omitempty"`
}
