package gpx

import (
	"fmt"
	"time"
)

// Result summarizes one Prune call.
type Result struct {
	// Removed is the number of track points deleted from the document.
	Removed int

	// Shifted is the number of later track points whose timestamps were
	// rewritten.
	Shifted int

	// Effective is the window actually removed: the timestamps of the first
	// and last points observed inside the requested window. Zero when no
	// point matched.
	Effective Window

	// Offset is the span of the effective window, subtracted from every
	// point after it.
	Offset time.Duration

	// Warnings collects non-fatal observations (emptied segments, documents
	// without tracks) for the caller to log.
	Warnings *WarningAggregator
}

// Prune removes every track point recorded inside [start, end] and shifts
// every later point earlier by the span of the effective window, editing
// the document in place.
//
// The scan runs over all points of all segments of all tracks in document
// order. The effective window and offset accumulate across segment and
// track boundaries: a pause that straddles a segment split is spliced out
// as one gap. Points before the window are untouched. Points after it are
// rewritten to canonical YYYY-MM-DDTHH:MM:SSZ form once an offset exists.
//
// An inverted window (start after end) matches nothing and the call is a
// no-op. A track point with a missing or unparseable timestamp aborts the
// scan with an ErrParse-kind error; edits made to earlier points are kept.
func Prune(doc *Document, start, end time.Time) (*Result, error) {
	win := Window{Start: start, End: end}
	res := &Result{Warnings: NewWarningAggregator()}

	if len(doc.Tracks) == 0 {
		res.Warnings.Add(WarningNoTracks, "document")
		return res, nil
	}

	// Running state for the whole document, never reset per segment.
	var windowStart time.Time
	var offset time.Duration
	seen := false

	for ti, trk := range doc.Tracks {
		removedInTrack := 0
		for si, seg := range trk.Segments {
			pts := seg.Points
			kept := pts[:0]
			for pi, pt := range pts {
				t, err := ParseTime(pt.Time)
				if err != nil {
					return nil, fmt.Errorf("track %d segment %d point %d: %w", ti, si, pi, err)
				}
				if t.After(win.End) {
					if seen {
						pt.Time = FormatTime(t.Add(-offset))
						res.Shifted++
					}
					kept = append(kept, pt)
					continue
				}
				if win.Contains(t) {
					if !seen {
						windowStart = t
						seen = true
					}
					offset = t.Sub(windowStart)
					res.Removed++
					removedInTrack++
					continue
				}
				kept = append(kept, pt)
			}
			seg.Points = kept
			if len(pts) > 0 && len(kept) == 0 {
				res.Warnings.Add(WarningEmptySegment, fmt.Sprintf("track %d segment %d", ti, si))
			}
		}
		if trackEmptied(trk, removedInTrack) {
			res.Warnings.Add(WarningEmptyTrack, trackLabel(ti, trk))
		}
	}

	if seen {
		res.Effective = Window{Start: windowStart, End: windowStart.Add(offset)}
		res.Offset = offset
	}
	return res, nil
}

func trackEmptied(trk *Track, removed int) bool {
	if removed == 0 {
		return false
	}
	hadSegments := false
	for _, seg := range trk.Segments {
		hadSegments = true
		if len(seg.Points) > 0 {
			return false
		}
	}
	return hadSegments
}

func trackLabel(i int, trk *Track) string {
	if trk.Name != "" {
		return trk.Name
	}
	return fmt.Sprintf("track %d", i)
}
