package idgen

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// NewFunc produces identifiers. Tests may replace it for deterministic ids.
var NewFunc = func() string { return uuid.New().String() }

func New() string { return NewFunc() }

// Sequence hands out increasing identifiers: "1", "2", ... It never reuses a value.
type Sequence struct {
	last atomic.Uint64
}

func (s *Sequence) Next() string {
	return strconv.FormatUint(s.last.Add(1), 10)
}
