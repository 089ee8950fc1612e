package lookup

// Pair holds two positions into the scanned sequence, with I < J.
type Pair struct {
	I, J int
}
