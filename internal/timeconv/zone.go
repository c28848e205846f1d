package timeconv

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/samber/lo"
)

// atZone places the wall-clock value wall in loc. A wall time skipped by a
// forward transition is read with the offset in force before the transition,
// which moves it forward by the length of the gap. A wall time that occurs
// twice resolves to the earlier instant. Out-of-range fields normalize the
// way time.Date does.
func atZone(wall civil.DateTime, loc *time.Location) time.Time {
	naive := wall.In(time.UTC)
	wall = civil.DateTimeOf(naive)

	t := wall.In(loc)
	start, end := t.ZoneBounds()

	offsets := []int{offsetOf(t)}
	if !start.IsZero() {
		offsets = append(offsets, offsetOf(start.Add(-time.Nanosecond)))
	}
	if !end.IsZero() {
		offsets = append(offsets, offsetOf(end))
	}

	valid := lo.FilterMap(offsets, func(off int, _ int) (time.Time, bool) {
		c := withOffset(naive, off, loc)
		return c, civil.DateTimeOf(c) == wall
	})
	if len(valid) > 0 {
		return lo.MinBy(valid, func(a, b time.Time) bool { return a.Before(b) })
	}

	// In a gap t lies on one side of the transition. Its wall clock is past
	// wall when it is on the later side.
	before := offsetOf(t)
	if wall.Before(civil.DateTimeOf(t)) && !start.IsZero() {
		before = offsetOf(start.Add(-time.Nanosecond))
	}
	return withOffset(naive, before, loc)
}

func offsetOf(t time.Time) int {
	_, off := t.Zone()
	return off
}

// withOffset reads naive, a wall clock stored as UTC, at a fixed offset in seconds.
func withOffset(naive time.Time, off int, loc *time.Location) time.Time {
	return naive.Add(-time.Duration(off) * time.Second).In(loc)
}
