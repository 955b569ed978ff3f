package srt

import (
	"testing"
	"time"
)

func TestTimeCodeString(t *testing.T) {
	tc := TimeCode{Hours: 0, Minutes: 2, Seconds: 13, Milliseconds: 100}
	if got := tc.String(); got != "00:02:13,100" {
		t.Errorf("expected 00:02:13,100, got %s", got)
	}

	// Fields are rendered as stored; overflow values are not carried.
	tc = TimeCode{Minutes: 90, Milliseconds: 1500}
	if got := tc.String(); got != "00:90:00,1500" {
		t.Errorf("expected 00:90:00,1500, got %s", got)
	}
}

func TestTimeCodeDuration(t *testing.T) {
	tc := TimeCode{Hours: 1, Minutes: 52, Seconds: 45, Milliseconds: 250}
	want := time.Hour + 52*time.Minute + 45*time.Second + 250*time.Millisecond
	if got := tc.Duration(); got != want {
		t.Errorf("expected %v, got %v", want, got)
	}

	if got := (TimeCode{Minutes: 90}).Duration(); got != 90*time.Minute {
		t.Errorf("expected 90m, got %v", got)
	}
}

func TestCoordinatesString(t *testing.T) {
	c := Coordinates{X1: 100, X2: 200, Y1: 100, Y2: 200}
	if got := c.String(); got != "X1:100 X2:200 Y1:100 Y2:200" {
		t.Errorf("unexpected tag: %s", got)
	}
}

func TestAnomalyString(t *testing.T) {
	a := Anomaly{Kind: AnomalyContinuation, Block: 2, Detail: "merged into subtitle 1"}
	if got := a.String(); got != "[continuation] block 2: merged into subtitle 1" {
		t.Errorf("unexpected anomaly string: %s", got)
	}
}
