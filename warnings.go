package gpx

import (
	"fmt"
	"log"
	"strings"
)

// Warning type constants
const (
	WarningEmptySegment = "empty_segment"
	WarningEmptyTrack   = "empty_track"
	WarningNoTracks     = "no_tracks"
)

// warningInfo holds aggregated information about a specific warning type
type warningInfo struct {
	count    int
	examples []string
}

// WarningAggregator collects non-fatal observations during an edit and
// outputs consolidated summaries instead of one log line per point.
type WarningAggregator struct {
	warnings map[string]*warningInfo
}

// NewWarningAggregator creates a new warning aggregator
func NewWarningAggregator() *WarningAggregator {
	return &WarningAggregator{
		warnings: make(map[string]*warningInfo),
	}
}

// Add records a warning occurrence with an example ID
func (w *WarningAggregator) Add(warningType, exampleID string) {
	if w.warnings[warningType] == nil {
		w.warnings[warningType] = &warningInfo{
			examples: make([]string, 0, 3),
		}
	}

	info := w.warnings[warningType]
	info.count++

	// Store up to 3 examples
	if len(info.examples) < 3 {
		info.examples = append(info.examples, exampleID)
	}
}

// Empty reports whether nothing was recorded.
func (w *WarningAggregator) Empty() bool {
	return len(w.warnings) == 0
}

// LogAll outputs all collected warnings in consolidated format
func (w *WarningAggregator) LogAll(source string) {
	if len(w.warnings) == 0 {
		return
	}

	for warningType, info := range w.warnings {
		message := w.formatWarningMessage(warningType, source, info)
		log.Printf("%s", message)
	}
}

// formatWarningMessage creates a human-readable warning message
func (w *WarningAggregator) formatWarningMessage(warningType, source string, info *warningInfo) string {
	var description, action string

	switch warningType {
	case WarningEmptySegment:
		description = "segments with every point inside the removal window"
		action = "Keeping the empty trkseg elements in the output"
	case WarningEmptyTrack:
		description = "tracks left with no points at all"
		action = "Keeping the empty trk elements in the output"
	case WarningNoTracks:
		description = "no trk elements"
		action = "Writing the document back unchanged"
	default:
		description = "unknown issue"
		action = "Continuing with fallback behavior"
	}

	examplesStr := strings.Join(info.examples, ", ")

	return fmt.Sprintf("File %s has %s (%d occurrences). %s. Examples: %s",
		source, description, info.count, action, examplesStr)
}
