package gpx

// Document is the root of a parsed GPX file.
//
// Every field except Waypoint timestamps is kept as the raw text decoded
// from the file, so values the pruner never touches round-trip exactly as
// they were recorded (no float re-formatting, no whitespace changes).
type Document struct {
	Version   string      `xml:"version,attr"`
	Creator   string      `xml:"creator,attr"`
	Metadata  *Metadata   `xml:"metadata"`
	Waypoints []*Waypoint `xml:"wpt"`
	Routes    []*Route    `xml:"rte"`
	Tracks    []*Track    `xml:"trk"`
}

// Metadata holds the file-level <metadata> block.
type Metadata struct {
	Name       string      `xml:"name"`
	Desc       string      `xml:"desc"`
	Author     *Person     `xml:"author"`
	Copyright  *Copyright  `xml:"copyright"`
	Links      []*Link     `xml:"link"`
	Time       string      `xml:"time"`
	Keywords   string      `xml:"keywords"`
	Bounds     *Bounds     `xml:"bounds"`
	Extensions *Extensions `xml:"extensions"`
}

// Person is the <author> element.
type Person struct {
	Name  string `xml:"name"`
	Email *Email `xml:"email"`
	Link  *Link  `xml:"link"`
}

// Email is split across id and domain attributes in GPX 1.1.
type Email struct {
	ID     string `xml:"id,attr"`
	Domain string `xml:"domain,attr"`
}

// Copyright is the <copyright> element.
type Copyright struct {
	Author  string `xml:"author,attr"`
	Year    string `xml:"year"`
	License string `xml:"license"`
}

// Link is an external reference, used on metadata, tracks, routes and
// points.
type Link struct {
	Href string `xml:"href,attr"`
	Text string `xml:"text"`
	Type string `xml:"type"`
}

// Bounds is the bounding box from <metadata>, kept as raw attribute text.
type Bounds struct {
	MinLat string `xml:"minlat,attr"`
	MinLon string `xml:"minlon,attr"`
	MaxLat string `xml:"maxlat,attr"`
	MaxLon string `xml:"maxlon,attr"`
}

// Track is a <trk> element: an ordered sequence of segments.
type Track struct {
	Name       string      `xml:"name"`
	Cmt        string      `xml:"cmt"`
	Desc       string      `xml:"desc"`
	Src        string      `xml:"src"`
	Links      []*Link     `xml:"link"`
	Number     string      `xml:"number"`
	Type       string      `xml:"type"`
	Extensions *Extensions `xml:"extensions"`
	Segments   []*Segment  `xml:"trkseg"`
}

// Segment is a <trkseg> element: an ordered sequence of track points.
// Pruning may leave a segment empty; empty segments are never removed.
type Segment struct {
	Points     []*Waypoint `xml:"trkpt"`
	Extensions *Extensions `xml:"extensions"`
}

// Route is a <rte> element. Routes are carried through untouched; the
// pruner only edits track points.
type Route struct {
	Name       string      `xml:"name"`
	Cmt        string      `xml:"cmt"`
	Desc       string      `xml:"desc"`
	Src        string      `xml:"src"`
	Links      []*Link     `xml:"link"`
	Number     string      `xml:"number"`
	Type       string      `xml:"type"`
	Extensions *Extensions `xml:"extensions"`
	Points     []*Waypoint `xml:"rtept"`
}

// Waypoint is the shared point shape behind <wpt>, <rtept> and <trkpt>.
//
// Time is the raw timestamp text from the file ("" when absent). Track
// points must carry one; standalone waypoints and route points may not.
type Waypoint struct {
	Lat           string      `xml:"lat,attr"`
	Lon           string      `xml:"lon,attr"`
	Elevation     string      `xml:"ele"`
	Time          string      `xml:"time"`
	MagVar        string      `xml:"magvar"`
	GeoidHeight   string      `xml:"geoidheight"`
	Name          string      `xml:"name"`
	Cmt           string      `xml:"cmt"`
	Desc          string      `xml:"desc"`
	Src           string      `xml:"src"`
	Links         []*Link     `xml:"link"`
	Sym           string      `xml:"sym"`
	Type          string      `xml:"type"`
	Fix           string      `xml:"fix"`
	Sat           string      `xml:"sat"`
	HDOP          string      `xml:"hdop"`
	VDOP          string      `xml:"vdop"`
	PDOP          string      `xml:"pdop"`
	AgeOfDGPSData string      `xml:"ageofdgpsdata"`
	DGPSID        string      `xml:"dgpsid"`
	Extensions    *Extensions `xml:"extensions"`
}

// Extensions captures the verbatim inner XML of an <extensions> element so
// schema extensions from recording devices survive a round trip.
type Extensions struct {
	Raw string `xml:",innerxml"`
}

// PointCount returns the number of track points across all tracks.
func (d *Document) PointCount() int {
	n := 0
	for _, trk := range d.Tracks {
		for _, seg := range trk.Segments {
			n += len(seg.Points)
		}
	}
	return n
}

// Clone returns a deep copy of the document. Prune edits in place; clone
// first when the original must stay intact.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	out := *d
	out.Metadata = d.Metadata.clone()
	out.Waypoints = cloneWaypoints(d.Waypoints)
	out.Routes = make([]*Route, len(d.Routes))
	for i, r := range d.Routes {
		rc := *r
		rc.Links = cloneLinks(r.Links)
		rc.Extensions = r.Extensions.clone()
		rc.Points = cloneWaypoints(r.Points)
		out.Routes[i] = &rc
	}
	out.Tracks = make([]*Track, len(d.Tracks))
	for i, t := range d.Tracks {
		tc := *t
		tc.Links = cloneLinks(t.Links)
		tc.Extensions = t.Extensions.clone()
		tc.Segments = make([]*Segment, len(t.Segments))
		for j, s := range t.Segments {
			sc := &Segment{Extensions: s.Extensions.clone()}
			sc.Points = cloneWaypoints(s.Points)
			tc.Segments[j] = sc
		}
		out.Tracks[i] = &tc
	}
	return &out
}

func (m *Metadata) clone() *Metadata {
	if m == nil {
		return nil
	}
	mc := *m
	if m.Author != nil {
		a := *m.Author
		if m.Author.Email != nil {
			e := *m.Author.Email
			a.Email = &e
		}
		if m.Author.Link != nil {
			l := *m.Author.Link
			a.Link = &l
		}
		mc.Author = &a
	}
	if m.Copyright != nil {
		c := *m.Copyright
		mc.Copyright = &c
	}
	mc.Links = cloneLinks(m.Links)
	if m.Bounds != nil {
		b := *m.Bounds
		mc.Bounds = &b
	}
	mc.Extensions = m.Extensions.clone()
	return &mc
}

func cloneLinks(links []*Link) []*Link {
	if links == nil {
		return nil
	}
	out := make([]*Link, len(links))
	for i, l := range links {
		lc := *l
		out[i] = &lc
	}
	return out
}

func (e *Extensions) clone() *Extensions {
	if e == nil {
		return nil
	}
	ec := *e
	return &ec
}

func cloneWaypoints(pts []*Waypoint) []*Waypoint {
	if pts == nil {
		return nil
	}
	out := make([]*Waypoint, len(pts))
	for i, p := range pts {
		pc := *p
		pc.Links = cloneLinks(p.Links)
		pc.Extensions = p.Extensions.clone()
		out[i] = &pc
	}
	return out
}
