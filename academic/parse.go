/*
parse.go - Free-text academic date parsing

PURPOSE:
  Best-effort extraction of (year, term, week, weekday) from strings like
  "fri 3rd week hilary" or "Monday, 2nd week Michaelmas 2024".

PIPELINE (order matters; matched tokens are consumed and never re-match):
  1. Tokenize case-insensitively into words and signed number runs,
     dropping the literal word "week" and ordinal suffixes glued to digits.
  2. Numbers: values over 50 set the year (two-digit style years under
     1900 get 1900 added - intentional legacy behavior); anything else
     sets the week, last match winning.
  3. Combined pass over weekday and term vocabularies, longest name
     first: the first word abbreviating either vocabulary is consumed,
     setting the weekday or the term.
  4. Weekday-only pass if the weekday is still unset, then a term-only
     pass if the term is still unset.
  5. Remaining defaults: term of today's date (nearest mode), current
     calendar year.
  6. The parse succeeds only if both week and weekday were found.

  Words match a vocabulary name by prefix, so "fri" means Friday and "mich"
  means Michaelmas. With longest-name-first ordering a bare "t" reads as
  Thursday, not Trinity.

RESULTS:
  nil Date, nil error  - the text did not parse (normal outcome)
  non-nil error        - today's-term defaulting hit a database gap
*/
package academic

import (
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// =============================================================================
// VOCABULARIES
// =============================================================================

var (
	weekdayVocab  []string
	termVocab     []string
	combinedVocab []string
)

func init() {
	for d := time.Sunday; d <= time.Saturday; d++ {
		weekdayVocab = append(weekdayVocab, strings.ToLower(d.String()))
	}
	for _, name := range termNames {
		termVocab = append(termVocab, strings.ToLower(name))
	}
	sortVocab(weekdayVocab)
	sortVocab(termVocab)
	combinedVocab = append(append([]string{}, weekdayVocab...), termVocab...)
	sortVocab(combinedVocab)
}

// sortVocab orders names longest first so greedy prefix matching prefers
// the longest candidate; equal lengths tie-break alphabetically for
// determinism.
func sortVocab(names []string) {
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})
}

// matchVocab returns the first vocabulary name the word abbreviates.
func matchVocab(word string, vocab []string) (string, bool) {
	for _, name := range vocab {
		if strings.HasPrefix(name, word) {
			return name, true
		}
	}
	return "", false
}

// =============================================================================
// TOKENIZER
// =============================================================================

type token struct {
	word   string
	number int
	isNum  bool
	used   bool
}

// tokenize splits text into word and signed-number tokens. The literal word
// "week" is dropped, and an ordinal suffix (st/nd/rd/th) glued to a digit
// run is stripped.
func tokenize(text string) []token {
	rs := []rune(strings.ToLower(text))
	var toks []token
	for i := 0; i < len(rs); {
		r := rs[i]
		switch {
		case unicode.IsLetter(r):
			j := i
			for j < len(rs) && unicode.IsLetter(rs[j]) {
				j++
			}
			if w := string(rs[i:j]); w != "week" {
				toks = append(toks, token{word: w})
			}
			i = j

		case unicode.IsDigit(r) || (r == '-' && i+1 < len(rs) && unicode.IsDigit(rs[i+1])):
			j := i + 1
			for j < len(rs) && unicode.IsDigit(rs[j]) {
				j++
			}
			if n, err := strconv.Atoi(string(rs[i:j])); err == nil {
				toks = append(toks, token{number: n, isNum: true})
			}
			if j+2 <= len(rs) {
				switch string(rs[j : j+2]) {
				case "st", "nd", "rd", "th":
					j += 2
				}
			}
			i = j

		default:
			i++
		}
	}
	return toks
}

// =============================================================================
// PARSER
// =============================================================================

// Parse extracts an academic date from free text, defaulting missing fields
// against the current moment.
func (c *Converter) Parse(text string) (*Date, error) {
	return c.ParseAt(text, time.Now())
}

// ParseAt is Parse with an explicit "now", for deterministic defaulting.
func (c *Converter) ParseAt(text string, now time.Time) (*Date, error) {
	toks := tokenize(text)

	var (
		week, year       int
		hasWeek, hasYear bool
		weekday          time.Weekday
		hasDay           bool
		term             Term
		hasTerm          bool
	)

	// Numeric tokens: years over 50, weeks otherwise, last match wins.
	for i := range toks {
		t := &toks[i]
		if !t.isNum {
			continue
		}
		t.used = true
		if t.number > 50 {
			year = t.number
			if year < 1900 {
				year += 1900
			}
			hasYear = true
		} else {
			week = t.number
			hasWeek = true
		}
	}

	// Combined pass: the first word abbreviating either vocabulary.
	for i := range toks {
		t := &toks[i]
		if t.isNum || t.used {
			continue
		}
		name, ok := matchVocab(t.word, combinedVocab)
		if !ok {
			continue
		}
		t.used = true
		if wd, isDay := ParseWeekday(name); isDay {
			weekday, hasDay = wd, true
		} else if tm, isTerm := ParseTerm(name); isTerm {
			term, hasTerm = tm, true
		}
		break
	}

	// Restricted passes for whichever field the combined pass missed.
	if !hasDay {
		for i := range toks {
			t := &toks[i]
			if t.isNum || t.used {
				continue
			}
			if name, ok := matchVocab(t.word, weekdayVocab); ok {
				if wd, isDay := ParseWeekday(name); isDay {
					weekday, hasDay = wd, true
					t.used = true
					break
				}
			}
		}
	}
	if !hasTerm {
		for i := range toks {
			t := &toks[i]
			if t.isNum || t.used {
				continue
			}
			if name, ok := matchVocab(t.word, termVocab); ok {
				if tm, isTerm := ParseTerm(name); isTerm {
					term, hasTerm = tm, true
					t.used = true
					break
				}
			}
		}
	}

	// Default the term from today's academic date.
	if !hasTerm {
		today, err := c.ToAcademic(now, Options{})
		if err != nil {
			return nil, err
		}
		if today == nil {
			return nil, nil
		}
		term = today.Term
	}
	if !hasYear {
		year = now.Year()
	}

	if !hasWeek || !hasDay {
		return nil, nil
	}
	return &Date{Weekday: weekday, Week: week, Term: term, Year: year}, nil
}
