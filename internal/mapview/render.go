package mapview

import (
	"html/template"

	"github.com/wilbanksalexis/Powering/internal/dataset"
)

// FilterAll is the filter value that selects every location.
const FilterAll = "all"

// Variant is the visual style of a marker.
type Variant string

const (
	// VariantCommentary marks a location whose city has commentary.
	VariantCommentary Variant = "commentary"
	// VariantPlain marks a location without commentary.
	VariantPlain Variant = "plain"
)

// ViewportMode says how the map should position itself.
type ViewportMode string

const (
	ViewportDefault ViewportMode = "default"
	ViewportFit     ViewportMode = "fit"
)

// LatLng is a geographic point.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Bounds is the smallest box containing a set of points.
type Bounds struct {
	SouthWest LatLng `json:"south_west"`
	NorthEast LatLng `json:"north_east"`
}

// Center returns the midpoint of the box.
func (b Bounds) Center() LatLng {
	return LatLng{
		Lat: (b.SouthWest.Lat + b.NorthEast.Lat) / 2,
		Lng: (b.SouthWest.Lng + b.NorthEast.Lng) / 2,
	}
}

// Viewport is either the fixed default view or a fit to Bounds with Padding
// pixels on each side.
type Viewport struct {
	Mode    ViewportMode `json:"mode"`
	Center  LatLng       `json:"center"`
	Zoom    int          `json:"zoom,omitempty"`
	Bounds  *Bounds      `json:"bounds,omitempty"`
	Padding [2]int       `json:"padding"`
}

// Marker is the transient view of one location.
type Marker struct {
	Index    int              `json:"index"`
	Location dataset.Location `json:"location"`
	Position LatLng           `json:"position"`
	Variant  Variant          `json:"variant"`
	Popup    template.HTML    `json:"popup"`
}

// View is one complete render: it replaces the previous one as a whole.
type View struct {
	Filter   string   `json:"filter"`
	Count    int      `json:"count"`
	Markers  []Marker `json:"markers"`
	Viewport Viewport `json:"viewport"`
}

// Options are the fixed map parameters.
type Options struct {
	Center     LatLng
	Zoom       int
	FitPadding int
}

// DefaultOptions centers the contiguous United States.
func DefaultOptions() Options {
	return Options{
		Center:     LatLng{Lat: 39.8283, Lng: -98.5795},
		Zoom:       4,
		FitPadding: 50,
	}
}

// DefaultViewport returns the fixed center and zoom.
func (o Options) DefaultViewport() Viewport {
	return Viewport{Mode: ViewportDefault, Center: o.Center, Zoom: o.Zoom}
}

// Render selects the locations matching filter and builds one marker per
// match, in input order. FilterAll selects everything; any other value must
// equal Company exactly. The viewport fits the markers only for a non-empty
// company selection and falls back to the default view otherwise.
func Render(locations []dataset.Location, filter string, lookup dataset.Lookup, opts Options) View {
	view := View{
		Filter:  filter,
		Markers: make([]Marker, 0),
	}

	for i, loc := range locations {
		if filter != FilterAll && loc.Company != filter {
			continue
		}
		view.Markers = append(view.Markers, newMarker(i, loc, lookup))
	}
	view.Count = len(view.Markers)

	if filter != FilterAll && view.Count > 0 {
		b := boundsOf(view.Markers)
		view.Viewport = Viewport{
			Mode:    ViewportFit,
			Center:  b.Center(),
			Bounds:  &b,
			Padding: [2]int{opts.FitPadding, opts.FitPadding},
		}
	} else {
		view.Viewport = opts.DefaultViewport()
	}

	return view
}

func newMarker(index int, loc dataset.Location, lookup dataset.Lookup) Marker {
	model := PopupModel{
		Company: loc.Company,
		Site:    loc.Site,
		City:    loc.City,
		State:   loc.State,
	}
	variant := VariantPlain
	if c, ok := lookup.For(loc); ok {
		variant = VariantCommentary
		model.Commentary = &c.Tooltips
	}

	popup, err := Popup(model)
	if err != nil {
		// Keep the marker clickable even if the commentary failed to render.
		popup = template.HTML("<div class=\"popup-content\"><h3>" + template.HTMLEscapeString(loc.Company) + "</h3></div>")
	}

	return Marker{
		Index:    index,
		Location: loc,
		Position: LatLng{Lat: loc.Latitude, Lng: loc.Longitude},
		Variant:  variant,
		Popup:    popup,
	}
}

func boundsOf(markers []Marker) Bounds {
	first := markers[0].Position
	b := Bounds{SouthWest: first, NorthEast: first}
	for _, m := range markers[1:] {
		p := m.Position
		b.SouthWest.Lat = min(b.SouthWest.Lat, p.Lat)
		b.SouthWest.Lng = min(b.SouthWest.Lng, p.Lng)
		b.NorthEast.Lat = max(b.NorthEast.Lat, p.Lat)
		b.NorthEast.Lng = max(b.NorthEast.Lng, p.Lng)
	}
	return b
}
