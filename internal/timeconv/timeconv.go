package timeconv

import (
	"errors"
	"fmt"
	"time"
)

// NaiveLayout renders a wall-clock time with no zone indicator.
const NaiveLayout = "2006-01-02 15:04:05"

var ErrInvalidTimestamp = errors.New("invalid timestamp")

// Normalizer converts API timestamps (RFC 3339, UTC) to wall-clock time in a
// fixed target zone.
type Normalizer struct {
	loc *time.Location
}

func NewNormalizer(loc *time.Location) *Normalizer {
	if loc == nil {
		loc = time.UTC
	}
	return &Normalizer{loc: loc}
}

// LoadNormalizer resolves an IANA zone name such as "Asia/Seoul".
func LoadNormalizer(zone string) (*Normalizer, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("error while loading timezone %q: %w", zone, err)
	}
	return NewNormalizer(loc), nil
}

// ToLocal parses ts and returns the same instant in the target zone.
func (n *Normalizer) ToLocal(ts string) (time.Time, error) {
	parsed, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: %v", ErrInvalidTimestamp, ts, err)
	}
	return parsed.In(n.loc), nil
}

// Naive converts ts and formats it without any zone marker.
func (n *Normalizer) Naive(ts string) (string, error) {
	local, err := n.ToLocal(ts)
	if err != nil {
		return "", err
	}
	return local.Format(NaiveLayout), nil
}

// ZoneAbbreviation is the short name of the target zone at instant t, e.g. "KST".
func (n *Normalizer) ZoneAbbreviation(t time.Time) string {
	name, _ := t.In(n.loc).Zone()
	return name
}

func (n *Normalizer) Location() *time.Location {
	return n.loc
}
