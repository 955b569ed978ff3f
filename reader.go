package srt

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// SRT time line: 00:02:16,612 --> 00:02:19,376, with unconstrained field
// widths and anything after the second time ignored.
var timeRangePattern = regexp.MustCompile(`(\d+):(\d+):(\d+),(\d+) --> (\d+):(\d+):(\d+),(\d+)`)

// Parse reads SRT text into a Document. It never fails: blocks without a
// leading sequence number are folded into the previous subtitle's text (or
// dropped when there is none), unparsable time lines yield zero times, and
// absent or broken coordinate tags yield zero coordinates.
func Parse(text string) Document {
	doc, _ := parseDocument(text)
	return doc
}

// ParseReport is Parse plus a list of the irregularities that were recovered
// along the way. The Document is identical to what Parse returns.
func ParseReport(text string) (Document, []Anomaly) {
	return parseDocument(text)
}

func parseDocument(text string) (Document, []Anomaly) {
	var subs []Subtitle
	var anomalies []Anomaly

	for i, block := range splitBlocks(text) {
		lines := strings.Split(block, "\n")

		first := lines[0]
		if i == 0 {
			// A BOM or stray symbol may precede the first number; skip to
			// the first digit. Later blocks get no such leniency.
			if d := strings.IndexAny(first, "0123456789"); d > 0 {
				first = first[d:]
			}
		}

		if !isDigits(first) {
			if len(subs) == 0 {
				anomalies = append(anomalies, Anomaly{
					Kind:   AnomalyOrphanBlock,
					Block:  i,
					Detail: fmt.Sprintf("no subtitle number and nothing to attach to: %q", lines[0]),
				})
				continue
			}
			// Recovery for captions that contain a blank line: the block
			// after the blank is a continuation of the previous text.
			prev := &subs[len(subs)-1]
			if prev.Text == "" {
				prev.Text = block
			} else {
				prev.Text += "\n" + block
			}
			anomalies = append(anomalies, Anomaly{
				Kind:   AnomalyContinuation,
				Block:  i,
				Detail: fmt.Sprintf("merged into subtitle %d", prev.Number),
			})
			continue
		}

		number, _ := strconv.Atoi(first)

		var timeLine string
		if len(lines) > 1 {
			timeLine = lines[1]
		}
		start, end, ok := parseTimeRange(timeLine)
		if !ok {
			anomalies = append(anomalies, Anomaly{
				Kind:   AnomalyBadTimeRange,
				Block:  i,
				Detail: fmt.Sprintf("unparsable time line: %q", timeLine),
			})
		}
		coords, ok := parseCoordinates(timeLine)
		if !ok {
			anomalies = append(anomalies, Anomaly{
				Kind:   AnomalyBadCoordinates,
				Block:  i,
				Detail: fmt.Sprintf("malformed coordinate tag: %q", timeLine),
			})
		}

		var body string
		if len(lines) > 2 {
			body = strings.Join(lines[2:], "\n")
		}

		subs = append(subs, Subtitle{
			Number:      number,
			StartTime:   start,
			EndTime:     end,
			Coordinates: coords,
			Text:        body,
		})
	}

	return Document{Subtitles: subs}, anomalies
}

// splitBlocks normalizes line endings, trims the document, and splits it on
// blank lines. Whitespace-only input yields no blocks.
func splitBlocks(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n\n")
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// parseTimeRange extracts the start and end time codes from a time line.
// Field values are kept as matched, without bounds checks or carrying. A
// line that does not match at all yields two zero time codes and ok=false.
func parseTimeRange(line string) (start, end TimeCode, ok bool) {
	m := timeRangePattern.FindStringSubmatch(line)
	if m == nil {
		return TimeCode{}, TimeCode{}, false
	}
	num := func(s string) int {
		n, _ := strconv.Atoi(s)
		return n
	}
	start = TimeCode{Hours: num(m[1]), Minutes: num(m[2]), Seconds: num(m[3]), Milliseconds: num(m[4])}
	end = TimeCode{Hours: num(m[5]), Minutes: num(m[6]), Seconds: num(m[7]), Milliseconds: num(m[8])}
	return start, end, true
}

// parseCoordinates extracts the optional caption-box tag from a time line.
// Either all four fields scan or the zero value is returned; there is no
// partial population. A line without " X1:" is normal and reports ok=true.
func parseCoordinates(line string) (Coordinates, bool) {
	at := strings.Index(line, " X1:")
	if at < 0 {
		return Coordinates{}, true
	}
	var c Coordinates
	n, err := fmt.Sscanf(line[at:], " X1:%d X2:%d Y1:%d Y2:%d", &c.X1, &c.X2, &c.Y1, &c.Y2)
	if err != nil || n != 4 {
		return Coordinates{}, false
	}
	return c, true
}
