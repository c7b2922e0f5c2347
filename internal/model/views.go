package model

import "time"

// Page names, used by the base template to pick navigation and titles.
const (
	PageForm    = "form"
	PageLoading = "loading"
	PageResult  = "result"
	PageHistory = "history"
)

// FormPageData holds data for rendering the editable form.
type FormPageData struct {
	Page           string    // "form"
	Form           FormInput // Last edited values
	Genders        []Gender  // Selectable genders
	Alert          string    // Failure notice shown once, empty otherwise
	HistoryEnabled bool      // Show link to /history
}

// LoadingPageData holds data for the page shown while a request is in flight.
type LoadingPageData struct {
	Page           string // "loading"
	RefreshSeconds int    // Meta refresh interval
}

// ResultPageData holds data for the result page.
type ResultPageData struct {
	Page   string    // "result"
	Result   string    // Opaque text from the suggestion service
	Form     FormInput // Criteria the result was generated for
	Markdown bool      // Render Result as markdown instead of plain text
}

// HistoryEntry is one stored suggestion.
type HistoryEntry struct {
	ID        int64
	Form      FormInput
	Result    string
	CreatedAt time.Time
}

// HistoryPageData holds data for the history page.
type HistoryPageData struct {
	Page     string // "history"
	Entries  []HistoryEntry
	Markdown bool
}
