// Package gpx edits GPX (GPS Exchange Format) track files.
//
// The core operation is Prune: given a document and a local-time window, it
// removes every track point recorded inside the window and shifts every
// later point earlier by the span of the removed window, splicing a pause
// (a break during a hike, a stopped recording) out of the timeline.
//
// # Usage
//
//	doc, err := gpx.Load("ride-*.gpx")
//	if err != nil {
//	    // no matching file, or malformed XML
//	}
//
//	res, err := gpx.Prune(doc, start, end)
//	if err != nil {
//	    // a track point had a missing or unparseable timestamp
//	}
//	res.Warnings.LogAll("ride-2024.gpx")
//
//	err = formatter.Save(doc, "ride-2024.gpx", formatter.Options{
//	    Encoding: formatter.EncodingUTF8,
//	    Indent:   true,
//	})
//
// # Behavior
//
// The window actually removed is the effective window: the timestamps of the
// first and last points observed inside [start, end]. The offset applied to
// later points is effective end minus effective start, so a window that
// matches a single point removes it without shifting anything.
//
// The effective window and offset accumulate across segment and track
// boundaries within one call. A pause that straddles a segment split is
// spliced out as one gap, and points in a later track shift by an offset
// established in an earlier one.
//
// Prune mutates the document it is given. Callers that need the original
// intact should work on a copy from Document.Clone.
//
// All fields other than the rewritten timestamps are stored as the raw text
// decoded from the file and round-trip byte-identically, including unknown
// content under <extensions> elements.
package gpx
