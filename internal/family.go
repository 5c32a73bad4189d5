package internal

// Family identifies a sketch layout in a persisted record's preamble.
type Family struct {
	Id          int
	MaxPreLongs int
}

type families struct {
	Histogram Family
}

// FamilyEnum is the single entry this repository's persistence format
// needs: the exponent-indexed log-bucket histogram.
var FamilyEnum = &families{
	Histogram: Family{
		Id:          20,
		MaxPreLongs: 1,
	},
}
