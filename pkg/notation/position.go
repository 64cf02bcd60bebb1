package notation

// Position locates a token in the source text. Line and Column are 1-based
// for diagnostics; IndexInLine and IndexInDoc are 0-based rune offsets.
type Position struct {
	Line        int `json:"line"`
	Column      int `json:"column"`
	IndexInLine int `json:"index_in_line"`
	IndexInDoc  int `json:"index_in_doc"`
}
