package trips

// Trip is a recorded journey with its diary entries. Dates are opaque
// display strings; no calendar semantics are enforced.
type Trip struct {
	ID        string       `json:"id"`
	Location  string       `json:"location"`
	Image     string       `json:"image"`
	StartDate string       `json:"startDate"`
	EndDate   string       `json:"endDate"`
	Entries   []DiaryEntry `json:"entries"`
}

// DiaryEntry is immutable once created; entries keep insertion order.
type DiaryEntry struct {
	EntryID string `json:"entryId"`
	Date    string `json:"date"`
	Text    string `json:"text"`
}
