package domain

// StaleRecord is a pull request that has gone DaysStale days without review
// activity. Records are produced by an upstream step and never mutated here.
type StaleRecord struct {
	// Title is the pull request title.
	Title string `json:"title"`
	// URL links to the pull request.
	URL string `json:"url"`
	// DaysStale is the number of days without reviews.
	DaysStale int `json:"daysStale"`
}
