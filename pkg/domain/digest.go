package domain

// Digest is the ranked, truncated and formatted view of one run's records.
type Digest struct {
	// Total is the number of merged records before truncation.
	Total int
	// Records holds the ranked records kept after truncation.
	Records []StaleRecord
	// Lines holds one formatted line per entry of Records, in the same order.
	Lines []string
}

// Empty reports whether the run found no stale records at all.
func (d Digest) Empty() bool {
	return d.Total == 0
}
