package formatter

import (
	"fmt"
	"os"

	"github.com/heaths/gpx"
)

// Save serializes the document and writes it to path. I/O failures carry
// the gpx.ErrWrite kind.
func Save(doc *gpx.Document, path string, opts Options) error {
	data, err := Encode(BuildXML(doc, opts), opts.Encoding)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("%w: %s: %v", gpx.ErrWrite, path, err)
	}
	return nil
}
