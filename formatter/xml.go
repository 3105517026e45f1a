package formatter

import (
	"strings"

	"github.com/heaths/gpx"
)

const gpxNamespace = "http://www.topografix.com/GPX/1/1"

// Options control serialization of a GPX document.
type Options struct {
	Encoding Encoding
	Indent   bool
}

// BuildXML serializes a document to GPX XML, without the XML declaration;
// Encode prepends it together with the byte-encoding stage.
func BuildXML(doc *gpx.Document, opts Options) []byte {
	w := &xmlWriter{indent: opts.Indent}

	version := doc.Version
	if version == "" {
		version = "1.1"
	}
	creator := doc.Creator
	if creator == "" {
		creator = "gpxprune"
	}
	w.open("gpx", "version", version, "creator", creator, "xmlns", gpxNamespace)

	if doc.Metadata != nil {
		writeMetadata(w, doc.Metadata)
	}
	for _, pt := range doc.Waypoints {
		writeWaypoint(w, "wpt", pt)
	}
	for _, rte := range doc.Routes {
		writeRoute(w, rte)
	}
	for _, trk := range doc.Tracks {
		writeTrack(w, trk)
	}

	w.close("gpx")
	if opts.Indent {
		w.b.WriteByte('\n')
	}
	return []byte(w.b.String())
}

func writeMetadata(w *xmlWriter, m *gpx.Metadata) {
	w.open("metadata")
	w.text("name", m.Name)
	w.text("desc", m.Desc)
	if m.Author != nil {
		writeAuthor(w, m.Author)
	}
	if m.Copyright != nil {
		w.open("copyright", "author", m.Copyright.Author)
		w.text("year", m.Copyright.Year)
		w.text("license", m.Copyright.License)
		w.close("copyright")
	}
	writeLinks(w, m.Links)
	w.text("time", m.Time)
	w.text("keywords", m.Keywords)
	if m.Bounds != nil {
		w.empty("bounds",
			"minlat", m.Bounds.MinLat,
			"minlon", m.Bounds.MinLon,
			"maxlat", m.Bounds.MaxLat,
			"maxlon", m.Bounds.MaxLon)
	}
	writeExtensions(w, m.Extensions)
	w.close("metadata")
}

func writeTrack(w *xmlWriter, trk *gpx.Track) {
	w.open("trk")
	w.text("name", trk.Name)
	w.text("cmt", trk.Cmt)
	w.text("desc", trk.Desc)
	w.text("src", trk.Src)
	writeLinks(w, trk.Links)
	w.text("number", trk.Number)
	w.text("type", trk.Type)
	writeExtensions(w, trk.Extensions)
	for _, seg := range trk.Segments {
		w.open("trkseg")
		for _, pt := range seg.Points {
			writeWaypoint(w, "trkpt", pt)
		}
		writeExtensions(w, seg.Extensions)
		w.close("trkseg")
	}
	w.close("trk")
}

func writeRoute(w *xmlWriter, rte *gpx.Route) {
	w.open("rte")
	w.text("name", rte.Name)
	w.text("cmt", rte.Cmt)
	w.text("desc", rte.Desc)
	w.text("src", rte.Src)
	writeLinks(w, rte.Links)
	w.text("number", rte.Number)
	w.text("type", rte.Type)
	writeExtensions(w, rte.Extensions)
	for _, pt := range rte.Points {
		writeWaypoint(w, "rtept", pt)
	}
	w.close("rte")
}

// writeWaypoint emits a point element in GPX 1.1 child order.
func writeWaypoint(w *xmlWriter, name string, pt *gpx.Waypoint) {
	w.open(name, "lat", pt.Lat, "lon", pt.Lon)
	w.text("ele", pt.Elevation)
	w.text("time", pt.Time)
	w.text("magvar", pt.MagVar)
	w.text("geoidheight", pt.GeoidHeight)
	w.text("name", pt.Name)
	w.text("cmt", pt.Cmt)
	w.text("desc", pt.Desc)
	w.text("src", pt.Src)
	writeLinks(w, pt.Links)
	w.text("sym", pt.Sym)
	w.text("type", pt.Type)
	w.text("fix", pt.Fix)
	w.text("sat", pt.Sat)
	w.text("hdop", pt.HDOP)
	w.text("vdop", pt.VDOP)
	w.text("pdop", pt.PDOP)
	w.text("ageofdgpsdata", pt.AgeOfDGPSData)
	w.text("dgpsid", pt.DGPSID)
	writeExtensions(w, pt.Extensions)
	w.close(name)
}

func writeAuthor(w *xmlWriter, a *gpx.Person) {
	w.open("author")
	w.text("name", a.Name)
	if a.Email != nil {
		w.empty("email", "id", a.Email.ID, "domain", a.Email.Domain)
	}
	if a.Link != nil {
		writeLink(w, a.Link)
	}
	w.close("author")
}

func writeLinks(w *xmlWriter, links []*gpx.Link) {
	for _, l := range links {
		writeLink(w, l)
	}
}

func writeLink(w *xmlWriter, l *gpx.Link) {
	if l.Text == "" && l.Type == "" {
		w.empty("link", "href", l.Href)
		return
	}
	w.open("link", "href", l.Href)
	w.text("text", l.Text)
	w.text("type", l.Type)
	w.close("link")
}

func writeExtensions(w *xmlWriter, ext *gpx.Extensions) {
	if ext == nil {
		return
	}
	// Inner XML passes through verbatim; it was captured raw at load time.
	w.raw("extensions", ext.Raw)
}

// xmlWriter writes elements on a strings.Builder with optional indentation.
type xmlWriter struct {
	b      strings.Builder
	indent bool
	depth  int
}

func (w *xmlWriter) line() {
	if !w.indent {
		return
	}
	if w.b.Len() > 0 {
		w.b.WriteByte('\n')
	}
	for i := 0; i < w.depth; i++ {
		w.b.WriteString("  ")
	}
}

// open writes a start tag; attrs are name/value pairs.
func (w *xmlWriter) open(name string, attrs ...string) {
	w.line()
	w.b.WriteByte('<')
	w.b.WriteString(name)
	w.writeAttrs(attrs)
	w.b.WriteByte('>')
	w.depth++
}

func (w *xmlWriter) close(name string) {
	w.depth--
	w.line()
	w.b.WriteString("</")
	w.b.WriteString(name)
	w.b.WriteByte('>')
}

// empty writes a self-closing element.
func (w *xmlWriter) empty(name string, attrs ...string) {
	w.line()
	w.b.WriteByte('<')
	w.b.WriteString(name)
	w.writeAttrs(attrs)
	w.b.WriteString("/>")
}

// text writes a leaf element on a single line, skipped when value is empty.
func (w *xmlWriter) text(name, value string) {
	if value == "" {
		return
	}
	w.line()
	w.b.WriteByte('<')
	w.b.WriteString(name)
	w.b.WriteByte('>')
	w.b.WriteString(xmlEscape(value))
	w.b.WriteString("</")
	w.b.WriteString(name)
	w.b.WriteByte('>')
}

// raw writes an element whose inner XML is emitted verbatim.
func (w *xmlWriter) raw(name, inner string) {
	w.line()
	w.b.WriteByte('<')
	w.b.WriteString(name)
	w.b.WriteByte('>')
	w.b.WriteString(inner)
	w.b.WriteString("</")
	w.b.WriteString(name)
	w.b.WriteByte('>')
}

func (w *xmlWriter) writeAttrs(attrs []string) {
	for i := 0; i+1 < len(attrs); i += 2 {
		if attrs[i+1] == "" {
			continue
		}
		w.b.WriteByte(' ')
		w.b.WriteString(attrs[i])
		w.b.WriteString("=\"")
		w.b.WriteString(xmlEscape(attrs[i+1]))
		w.b.WriteByte('"')
	}
}

func xmlEscape(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		"\"", "&quot;",
		"'", "&apos;",
	)
	return replacer.Replace(s)
}
