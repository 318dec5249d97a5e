package models

// Common listing types shared by the repository and the HTTP layer

// DefaultPageSize is used when a listing does not ask for a limit
const DefaultPageSize = 50

// MaxPageSize caps the number of rows a single listing returns
const MaxPageSize = 500

// JournalPage is one page of a reverse chronological journal listing
type JournalPage struct {
	Entries []JournalEntry `json:"entries"`
	Total   int            `json:"total"`
	Limit   int            `json:"limit"`
	Offset  int            `json:"offset"`
}

// Normalize clamps the paging parameters of the filter
func (f JournalFilter) Normalize() JournalFilter {
	if f.Limit <= 0 {
		f.Limit = DefaultPageSize
	}
	if f.Limit > MaxPageSize {
		f.Limit = MaxPageSize
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return f
}
