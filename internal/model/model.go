package model

// Entry is a timeline record as supplied by a caller. Dates are raw strings
// in the YYYY-MM-DD or -YYYY-MM-DD shape and are passed to the calendar
// engine untouched.
type Entry struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	StartDate   string `json:"startDate"`
	// EndDate is empty for single-point or ongoing records.
	EndDate string `json:"endDate,omitempty"`
}

// Row is the display view of an Entry.
type Row struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`

	Start    string `json:"start"`
	End      string `json:"end,omitempty"`
	Duration string `json:"duration,omitempty"`

	// Error is set when the duration could not be computed; the display
	// fields are still filled in.
	Error string `json:"error,omitempty"`
}
