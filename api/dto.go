/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  JSON structures for the API surface. These decouple the academic domain
  types from the wire contract: terms and weekdays travel as full names,
  calendar dates as DD/MM/YYYY strings matching the dataset format.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

VALIDATION:
  Done in handlers, not here. DTOs are pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

import "github.com/warp/term-engine/academic"

// AcademicDateDTO is a converted or parsed academic date.
type AcademicDateDTO struct {
	Weekday  string `json:"weekday"`
	Week     int    `json:"week"`
	Term     string `json:"term"`
	Year     int    `json:"year"`
	Rendered string `json:"rendered"`
}

// CalendarDateDTO is an inverse-conversion result.
type CalendarDateDTO struct {
	Date string `json:"date"` // DD/MM/YYYY
}

// TermKeyDTO identifies a term instance.
type TermKeyDTO struct {
	Term string `json:"term"`
	Year int    `json:"year"`
}

// TermRecordDTO is one prescribed term start.
type TermRecordDTO struct {
	Term        string `json:"term"`
	Year        int    `json:"year"`
	Start       string `json:"start"`         // DD/MM/YYYY, the week-1 Sunday
	FullTermEnd string `json:"full_term_end"` // DD/MM/YYYY, last day of week 8
	Provisional bool   `json:"provisional"`
}

// ParseRequest is a free-text parse query.
type ParseRequest struct {
	Text string `json:"text"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

func toAcademicDateDTO(d academic.Date) AcademicDateDTO {
	return AcademicDateDTO{
		Weekday:  d.Weekday.String(),
		Week:     d.Week,
		Term:     d.Term.String(),
		Year:     d.Year,
		Rendered: d.String(),
	}
}

func toTermRecordDTO(r academic.Record) TermRecordDTO {
	return TermRecordDTO{
		Term:        r.Key.Term.String(),
		Year:        r.Key.Year,
		Start:       r.Start.Format(dateLayout),
		FullTermEnd: r.FullTermEnd().AddDate(0, 0, 6).Format(dateLayout),
		Provisional: r.Provisional,
	}
}
