/*
default.go - Compiled-in term dataset

The embedded dataset covers calendar years 2004-2032; the trailing years
carry the provisional flag because the governing body has not finalized
them. Default() exposes a process-wide database over it, built exactly
once behind a sync.Once so concurrent first callers never observe a
partially built mapping. The build error, if any, is cached and
re-reported to every caller.
*/
package dataset

import (
	_ "embed"
	"sync"

	"github.com/warp/term-engine/academic"
)

//go:embed terms.yaml
var embeddedData []byte

// Embedded is the compiled-in dataset as a Source.
type Embedded struct{}

func (Embedded) Load() ([]academic.Record, error) {
	return Parse(embeddedData)
}

var (
	defaultOnce sync.Once
	defaultDB   *academic.Database
	defaultErr  error
)

// Default returns the process-wide database over the compiled-in dataset.
func Default() (*academic.Database, error) {
	defaultOnce.Do(func() {
		defaultDB, defaultErr = academic.Open(Embedded{})
	})
	return defaultDB, defaultErr
}
