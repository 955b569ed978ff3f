// Package srt parses and serializes SubRip (.srt) subtitle text.
//
// Parsing never fails: malformed fragments are absorbed by recovery rules
// instead of producing errors. ParseReport exposes what was recovered.
package srt

import (
	"fmt"
	"time"
)

// TimeCode is an elapsed playback time split into its SRT fields. Fields are
// stored exactly as parsed, without carrying: 90 minutes or 1500 milliseconds
// stay that way.
type TimeCode struct {
	Hours        int
	Minutes      int
	Seconds      int
	Milliseconds int
}

// Duration converts the time code to a time.Duration.
func (t TimeCode) Duration() time.Duration {
	return time.Duration(t.Hours)*time.Hour +
		time.Duration(t.Minutes)*time.Minute +
		time.Duration(t.Seconds)*time.Second +
		time.Duration(t.Milliseconds)*time.Millisecond
}

// String renders the time code in SRT notation, e.g. "01:52:45,000".
func (t TimeCode) String() string {
	return fmt.Sprintf("%02d:%02d:%02d,%03d", t.Hours, t.Minutes, t.Seconds, t.Milliseconds)
}

// Coordinates is the optional on-screen caption box from a time line's
// "X1:.. X2:.. Y1:.. Y2:.." tag. The all-zero value doubles as "no
// coordinates given"; a caption genuinely positioned at the origin is
// indistinguishable from one with no tag at all.
type Coordinates struct {
	X1 int
	X2 int
	Y1 int
	Y2 int
}

// IsZero reports whether all four fields are zero, the shared sentinel for
// an absent or unparsable coordinate tag.
func (c Coordinates) IsZero() bool {
	return c == Coordinates{}
}

// String renders the coordinate tag without a leading space, e.g.
// "X1:100 X2:200 Y1:100 Y2:200".
func (c Coordinates) String() string {
	return fmt.Sprintf("X1:%d X2:%d Y1:%d Y2:%d", c.X1, c.X2, c.Y1, c.Y2)
}

// Subtitle is a single caption block.
type Subtitle struct {
	Number      int // sequence number as declared in the source, not necessarily unique
	StartTime   TimeCode
	EndTime     TimeCode
	Coordinates Coordinates
	Text        string // caption text, may span lines, may be empty
}

// Document is an ordered list of subtitles in source order. Numbers are
// whatever the source declared; no relation to slice position is enforced.
type Document struct {
	Subtitles []Subtitle
}

// AnomalyKind classifies a recovered parse irregularity.
type AnomalyKind int

const (
	// AnomalyOrphanBlock is a leading block with no subtitle number and no
	// previous subtitle to attach to; the block is dropped.
	AnomalyOrphanBlock AnomalyKind = iota
	// AnomalyContinuation is a block with no subtitle number that was folded
	// into the previous subtitle's text.
	AnomalyContinuation
	// AnomalyBadTimeRange is a time line that did not match
	// "H:MM:SS,mmm --> H:MM:SS,mmm"; both times default to zero.
	AnomalyBadTimeRange
	// AnomalyBadCoordinates is a time line containing " X1:" whose tag did
	// not scan as four integers; coordinates default to zero.
	AnomalyBadCoordinates
)

func (k AnomalyKind) String() string {
	switch k {
	case AnomalyOrphanBlock:
		return "orphan_block"
	case AnomalyContinuation:
		return "continuation"
	case AnomalyBadTimeRange:
		return "bad_time_range"
	case AnomalyBadCoordinates:
		return "bad_coordinates"
	default:
		return "unknown"
	}
}

// Anomaly records one recovered irregularity. Block is the zero-based index
// of the source block the anomaly was found in.
type Anomaly struct {
	Kind   AnomalyKind
	Block  int
	Detail string
}

func (a Anomaly) String() string {
	return fmt.Sprintf("[%s] block %d: %s", a.Kind, a.Block, a.Detail)
}
