package gpx

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const sampleGPX = `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="unit" xmlns="http://www.topografix.com/GPX/1/1">
  <metadata>
    <name>Morning ride</name>
  </metadata>
  <trk>
    <name>Loop</name>
    <trkseg>
      <trkpt lat="52.500" lon="13.400">
        <ele>34.50</ele>
        <time>2023-07-01T10:00:00Z</time>
        <extensions><hr>120</hr></extensions>
      </trkpt>
      <trkpt lat="52.501" lon="13.401">
        <time>2023-07-01T10:01:00Z</time>
      </trkpt>
    </trkseg>
  </trk>
</gpx>
`

func writeTempGPX(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestResolveFirstMatchWins(t *testing.T) {
	dir := t.TempDir()
	writeTempGPX(t, dir, "b.gpx", sampleGPX)
	first := writeTempGPX(t, dir, "a.gpx", sampleGPX)

	got, err := Resolve(filepath.Join(dir, "*.gpx"))
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got != first {
		t.Errorf("expected %s, got %s", first, got)
	}
}

func TestResolvePlainPath(t *testing.T) {
	dir := t.TempDir()
	path := writeTempGPX(t, dir, "ride.gpx", sampleGPX)

	got, err := Resolve(path)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got != path {
		t.Errorf("expected %s, got %s", path, got)
	}
}

func TestResolveNoMatch(t *testing.T) {
	dir := t.TempDir()
	_, err := Resolve(filepath.Join(dir, "*.gpx"))
	if err == nil {
		t.Fatal("expected an error")
	}
	if !errors.Is(err, ErrNoInput) {
		t.Errorf("expected ErrNoInput kind, got %v", err)
	}
}

func TestLoadDecodesDocument(t *testing.T) {
	dir := t.TempDir()
	writeTempGPX(t, dir, "ride.gpx", sampleGPX)

	doc, err := Load(filepath.Join(dir, "ride.gpx"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if doc.Version != "1.1" || doc.Creator != "unit" {
		t.Errorf("gpx attributes: got version=%q creator=%q", doc.Version, doc.Creator)
	}
	if doc.Metadata == nil || doc.Metadata.Name != "Morning ride" {
		t.Errorf("metadata not decoded: %+v", doc.Metadata)
	}
	if len(doc.Tracks) != 1 || len(doc.Tracks[0].Segments) != 1 {
		t.Fatalf("track structure not decoded: %+v", doc.Tracks)
	}

	pts := doc.Tracks[0].Segments[0].Points
	if len(pts) != 2 {
		t.Fatalf("expected 2 points, got %d", len(pts))
	}
	if pts[0].Lat != "52.500" || pts[0].Lon != "13.400" {
		t.Errorf("position kept as raw text: got lat=%q lon=%q", pts[0].Lat, pts[0].Lon)
	}
	if pts[0].Elevation != "34.50" {
		t.Errorf("elevation kept as raw text: got %q", pts[0].Elevation)
	}
	if pts[0].Time != "2023-07-01T10:00:00Z" {
		t.Errorf("time kept as raw text: got %q", pts[0].Time)
	}
	if pts[0].Extensions == nil || pts[0].Extensions.Raw != "<hr>120</hr>" {
		t.Errorf("extensions not captured verbatim: %+v", pts[0].Extensions)
	}
	if pts[1].Extensions != nil {
		t.Errorf("absent extensions should stay nil: %+v", pts[1].Extensions)
	}
}

func TestLoadMalformedXML(t *testing.T) {
	dir := t.TempDir()
	writeTempGPX(t, dir, "broken.gpx", "<gpx><trk><trkseg>")

	_, err := Load(filepath.Join(dir, "broken.gpx"))
	if err == nil {
		t.Fatal("expected an error")
	}
	if !errors.Is(err, ErrParse) {
		t.Errorf("expected ErrParse kind, got %v", err)
	}
}
