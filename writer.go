package srt

import (
	"strconv"
	"strings"
)

// Serialize renders a Document as SRT text. Subtitles with empty text are
// skipped entirely, and the emitted blocks are renumbered as a contiguous
// sequence starting at 1 regardless of the Number fields. The input is
// never modified.
func Serialize(doc Document) string {
	var sb strings.Builder
	seq := 0
	last := len(doc.Subtitles) - 1

	for i, sub := range doc.Subtitles {
		if sub.Text == "" {
			continue
		}
		seq++

		sb.WriteString(strconv.Itoa(seq))
		sb.WriteByte('\n')
		sb.WriteString(sub.StartTime.String())
		sb.WriteString(" --> ")
		sb.WriteString(sub.EndTime.String())
		if sub.Coordinates.IsZero() {
			// The tag is written for the zero value and skipped for real
			// coordinates. Inverted from what one would expect, but existing
			// consumers depend on the output as is.
			// TODO: confirm with consumers whether this condition can be
			// flipped to emit only parsed coordinates.
			sb.WriteByte(' ')
			sb.WriteString(sub.Coordinates.String())
		}
		sb.WriteByte('\n')
		sb.WriteString(sub.Text)
		sb.WriteByte('\n')

		// Separator blank line keys off the position in the full slice, so
		// a trailing skipped subtitle still leaves one after the last
		// emitted block.
		if i != last {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
