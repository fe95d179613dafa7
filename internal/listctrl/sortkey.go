package listctrl

import (
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type keyKind int

const (
	keyString keyKind = iota
	keyNumber
	keyTime
)

// SortKey is a tagged comparison key. Screens declare an explicit accessor
// table returning these, so sorting a salary or date column compares
// numerically instead of silently keeping the original order.
type SortKey struct {
	kind keyKind
	str  string
	num  float64
	ts   time.Time
}

func StringKey(s string) SortKey {
	return SortKey{kind: keyString, str: s}
}

func NumberKey(n float64) SortKey {
	return SortKey{kind: keyNumber, num: n}
}

func TimeKey(t time.Time) SortKey {
	return SortKey{kind: keyTime, ts: t}
}

// DateKey parses an ISO date column; an unparsable value falls back to
// string ordering so a ragged dataset still sorts deterministically.
func DateKey(s string) SortKey {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return TimeKey(t)
	}
	return StringKey(s)
}

func newCollator() *collate.Collator {
	return collate.New(language.Und, collate.IgnoreCase)
}

// compare returns <0, 0, >0. Keys of different kinds do not reorder.
func (k SortKey) compare(other SortKey, col *collate.Collator) int {
	if k.kind != other.kind {
		return 0
	}
	switch k.kind {
	case keyNumber:
		switch {
		case k.num < other.num:
			return -1
		case k.num > other.num:
			return 1
		}
		return 0
	case keyTime:
		switch {
		case k.ts.Before(other.ts):
			return -1
		case k.ts.After(other.ts):
			return 1
		}
		return 0
	default:
		return col.CompareString(k.str, other.str)
	}
}
