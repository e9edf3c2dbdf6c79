/*
handlers.go - HTTP API handlers for the academic date engine

PURPOSE:
  Exposes the date <-> academic-date converter via REST. Handles HTTP
  request/response and JSON serialization, delegating everything
  interesting to the academic package.

ENDPOINTS:
  Conversion:
    GET  /api/academic-date?date=DD/MM/YYYY&mode=&confirmed=
                                       Forward conversion
    GET  /api/calendar-date?year=&term=&week=&day=
                                       Inverse conversion
  Terms:
    GET  /api/terms                    Prescribed term starts
    GET  /api/terms/current?date=      Statutory term containing a date
    GET  /api/terms/next?date=         The term that follows a date

  Parsing:
    POST /api/parse                    Free-text academic date parsing

ERROR HANDLING:
  - 400: malformed input (bad date string, unknown term or weekday, bad mode)
  - 404: the normal "not applicable" outcomes - date not in term for the
         requested mode, text that doesn't parse, no current term
  - 422: the query falls outside term database coverage (OutOfRange)
  - 500: anything else

QUERY DEFAULTS:
  date defaults to today; mode defaults to "nearest"; confirmed defaults
  to false.

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/warp/term-engine/academic"
)

// dateLayout is the wire form of calendar dates, matching the dataset.
const dateLayout = "02/01/2006"

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Converter *academic.Converter

	// now is the clock used for date query defaults; overridden in tests.
	now func() time.Time
}

// NewHandler creates a handler over a term database.
func NewHandler(db *academic.Database) *Handler {
	return &Handler{
		Converter: academic.NewConverter(db),
		now:       time.Now,
	}
}

// =============================================================================
// CONVERSION HANDLERS
// =============================================================================

// GetAcademicDate converts a calendar date to its academic form.
func (h *Handler) GetAcademicDate(w http.ResponseWriter, r *http.Request) {
	date, err := h.queryDate(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date (use DD/MM/YYYY)", err)
		return
	}

	opts := academic.Options{}
	switch mode := r.URL.Query().Get("mode"); mode {
	case "", "nearest":
		opts.Mode = academic.ModeNearest
	case "full_term":
		opts.Mode = academic.ModeFullTerm
	case "ext_term":
		opts.Mode = academic.ModeExtendedTerm
	default:
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Unknown mode %q", mode), nil)
		return
	}
	opts.ConfirmedOnly = r.URL.Query().Get("confirmed") == "true"

	result, err := h.Converter.ToAcademic(date, opts)
	if err != nil {
		h.writeConversionError(w, err)
		return
	}
	if result == nil {
		writeError(w, http.StatusNotFound, "Date does not fall in term for the requested mode", nil)
		return
	}
	writeJSON(w, http.StatusOK, toAcademicDateDTO(*result))
}

// GetCalendarDate converts an academic date back to the calendar.
func (h *Handler) GetCalendarDate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	term, ok := academic.ParseTerm(q.Get("term"))
	if !ok {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Unknown term %q", q.Get("term")), nil)
		return
	}
	day, ok := academic.ParseWeekday(q.Get("day"))
	if !ok {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Unknown weekday %q", q.Get("day")), nil)
		return
	}
	year, err := strconv.Atoi(q.Get("year"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid year", err)
		return
	}
	week, err := strconv.Atoi(q.Get("week"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid week", err)
		return
	}

	date, err := h.Converter.FromAcademic(year, term, week, day)
	if err != nil {
		h.writeConversionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, CalendarDateDTO{Date: date.Format(dateLayout)})
}

// =============================================================================
// TERM HANDLERS
// =============================================================================

// ListTerms returns every prescribed term start.
func (h *Handler) ListTerms(w http.ResponseWriter, r *http.Request) {
	records := h.Converter.Database().Records()
	dtos := make([]TermRecordDTO, len(records))
	for i, rec := range records {
		dtos[i] = toTermRecordDTO(rec)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetCurrentTerm returns the statutory term containing the query date.
func (h *Handler) GetCurrentTerm(w http.ResponseWriter, r *http.Request) {
	date, err := h.queryDate(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date (use DD/MM/YYYY)", err)
		return
	}
	key, ok := academic.ThisTerm(date)
	if !ok {
		writeError(w, http.StatusNotFound, "Date does not fall in a statutory term", nil)
		return
	}
	writeJSON(w, http.StatusOK, TermKeyDTO{Term: key.Term.String(), Year: key.Year})
}

// GetNextTerm returns the term following the query date.
func (h *Handler) GetNextTerm(w http.ResponseWriter, r *http.Request) {
	date, err := h.queryDate(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date (use DD/MM/YYYY)", err)
		return
	}
	key := academic.NextTerm(date)
	writeJSON(w, http.StatusOK, TermKeyDTO{Term: key.Term.String(), Year: key.Year})
}

// =============================================================================
// PARSE HANDLER
// =============================================================================

// ParseText extracts an academic date from free text.
func (h *Handler) ParseText(w http.ResponseWriter, r *http.Request) {
	var req ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	result, err := h.Converter.ParseAt(req.Text, h.now())
	if err != nil {
		h.writeConversionError(w, err)
		return
	}
	if result == nil {
		writeError(w, http.StatusNotFound, "Text did not yield an academic date", nil)
		return
	}
	writeJSON(w, http.StatusOK, toAcademicDateDTO(*result))
}

// =============================================================================
// HELPERS
// =============================================================================

// queryDate reads the "date" query parameter, defaulting to today.
func (h *Handler) queryDate(r *http.Request) (time.Time, error) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		return h.now(), nil
	}
	return time.Parse(dateLayout, raw)
}

func (h *Handler) writeConversionError(w http.ResponseWriter, err error) {
	if errors.Is(err, academic.ErrOutOfRange) {
		writeError(w, http.StatusUnprocessableEntity, "Outside term database coverage", err)
		return
	}
	writeError(w, http.StatusInternalServerError, "Conversion failed", err)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
