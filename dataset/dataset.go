/*
Package dataset provides term-record sources for the academic engine.

PURPOSE:
  Implements academic.Source over the structured-text dataset format, a
  compiled-in default, and a static in-memory set for tests and seeding.

DATASET FORMAT (YAML, one mapping entry per term instance):

  michaelmas 2007:
    start: 07/10/2007
    provisional: 0    # optional, default 0

  The mapping key is "<term name> <calendar year>", the start date is the
  Sunday beginning week 1 of full term in DD/MM/YYYY form.

ERROR MODEL:
  A missing, unreadable, or malformed dataset surfaces as an error wrapping
  academic.ErrDataUnavailable. Validation of the records themselves (Sunday
  starts, unique keys) happens in academic.Open.

SEE ALSO:
  - default.go: compiled-in dataset and the process-wide Default database
  - store/sqlite: persistent source
*/
package dataset

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/warp/term-engine/academic"
	"github.com/warp/term-engine/datemath"
)

// startLayout is the dataset's date form, DD/MM/YYYY.
const startLayout = "02/01/2006"

// =============================================================================
// YAML PARSING
// =============================================================================

type yamlRecord struct {
	Start       string `yaml:"start"`
	Provisional int    `yaml:"provisional"`
}

// Parse decodes the dataset format into term records.
func Parse(data []byte) ([]academic.Record, error) {
	var raw map[string]yamlRecord
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("malformed term dataset: %v: %w", err, academic.ErrDataUnavailable)
	}

	records := make([]academic.Record, 0, len(raw))
	for key, entry := range raw {
		fields := strings.Fields(key)
		if len(fields) != 2 {
			return nil, fmt.Errorf("bad dataset key %q (want \"<term> <year>\"): %w",
				key, academic.ErrDataUnavailable)
		}
		term, ok := academic.ParseTerm(fields[0])
		if !ok {
			return nil, fmt.Errorf("unknown term name in dataset key %q: %w",
				key, academic.ErrDataUnavailable)
		}
		year, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("bad year in dataset key %q: %w", key, academic.ErrDataUnavailable)
		}
		start, err := time.Parse(startLayout, entry.Start)
		if err != nil {
			return nil, fmt.Errorf("%s: bad start date %q (want DD/MM/YYYY): %w",
				key, entry.Start, academic.ErrDataUnavailable)
		}
		records = append(records, academic.Record{
			Key:         academic.TermKey{Term: term, Year: year},
			Start:       datemath.DayOf(start),
			Provisional: entry.Provisional != 0,
		})
	}
	return records, nil
}

// =============================================================================
// SOURCES
// =============================================================================

// FileSource loads the dataset format from a file on disk.
type FileSource struct {
	Path string
}

func (f FileSource) Load() ([]academic.Record, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("term dataset %s: %v: %w", f.Path, err, academic.ErrDataUnavailable)
	}
	return Parse(data)
}

// Static is a fixed in-memory record set, mainly for tests and seeding.
type Static []academic.Record

func (s Static) Load() ([]academic.Record, error) {
	out := make([]academic.Record, len(s))
	copy(out, s)
	return out, nil
}
