package formatter

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/heaths/gpx"
)

func TestSaveWritesEncodedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.gpx")

	err := Save(sampleDocument(), path, Options{Encoding: EncodingUTF8, Indent: true})
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	text := string(data)
	if !strings.HasPrefix(text, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>") {
		t.Errorf("missing XML declaration: %q", text[:40])
	}
	if !strings.Contains(text, "<time>2023-07-01T10:00:00Z</time>") {
		t.Error("point timestamp missing from output")
	}
}

func TestSaveUnwritableDestination(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "missing", "out.gpx")

	err := Save(sampleDocument(), path, Options{Encoding: EncodingUTF8})
	if err == nil {
		t.Fatal("expected an error")
	}
	if !errors.Is(err, gpx.ErrWrite) {
		t.Errorf("expected ErrWrite kind, got %v", err)
	}
}

func TestSaveUnsupportedEncodingWritesNothing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.gpx")

	if err := Save(sampleDocument(), path, Options{Encoding: EncodingUTF7}); err == nil {
		t.Fatal("expected an error")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("no file should be written on encoding failure")
	}
}
