package mapview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wilbanksalexis/Powering/internal/dataset"
)

func testLocations() []dataset.Location {
	return []dataset.Location{
		{Company: "Amazon Web Services", Site: "IAD-55", City: "Ashburn", State: "VA", Latitude: 39.0438, Longitude: -77.4874},
		{Company: "Microsoft", Site: "Goodyear Campus", City: "Goodyear", State: "AZ", Latitude: 33.4353, Longitude: -112.3577},
		{Company: "Google", Site: "Council Bluffs", City: "Council Bluffs", State: "IA", Latitude: 41.2619, Longitude: -95.8608},
		{Company: "Amazon Web Services", Site: "IAD-12", City: "Sterling", State: "VA", Latitude: 39.0062, Longitude: -77.4286},
		{Company: "Equinix", Site: "CH1", City: "Chicago", State: "IL", Latitude: 41.8781, Longitude: -87.6298},
		{Company: "Amazon Web Services", Site: "PDX-1", City: "Ashburn", State: "OR", Latitude: 45.8399, Longitude: -119.7006},
	}
}

func testLookup() dataset.Lookup {
	return dataset.BuildLookup([]dataset.Commentary{
		{City: "Ashburn", Tooltips: dataset.Tooltips{Environmental: "Water use.", Policy: "Zoning.", Community: "Noise."}},
		{City: "Chicago", Tooltips: dataset.Tooltips{Environmental: "Grid.", Policy: "Incentives.", Community: "Transparency."}},
	})
}

func TestRenderAll(t *testing.T) {
	locs := testLocations()
	opts := DefaultOptions()

	view := Render(locs, FilterAll, testLookup(), opts)

	assert.Equal(t, len(locs), view.Count)
	require.Len(t, view.Markers, len(locs))
	for i, m := range view.Markers {
		assert.Equal(t, i, m.Index, "markers keep input order")
	}
	assert.Equal(t, opts.DefaultViewport(), view.Viewport)
	assert.Equal(t, ViewportDefault, view.Viewport.Mode)
	assert.Equal(t, 4, view.Viewport.Zoom)
	assert.Equal(t, LatLng{Lat: 39.8283, Lng: -98.5795}, view.Viewport.Center)
}

func TestRenderCompanyMatchesRecordCount(t *testing.T) {
	locs := testLocations()
	counts := dataset.CountByCompany(locs)

	for company, want := range counts {
		view := Render(locs, company, testLookup(), DefaultOptions())
		assert.Equal(t, want, view.Count, company)
		assert.Len(t, view.Markers, want, company)
		for _, m := range view.Markers {
			assert.Equal(t, company, m.Location.Company)
		}
		assert.Equal(t, ViewportFit, view.Viewport.Mode, company)
	}
}

func TestRenderFitBounds(t *testing.T) {
	view := Render(testLocations(), "Amazon Web Services", testLookup(), DefaultOptions())

	require.Equal(t, 3, view.Count)
	require.NotNil(t, view.Viewport.Bounds)
	b := *view.Viewport.Bounds
	assert.InDelta(t, 39.0062, b.SouthWest.Lat, 1e-9)
	assert.InDelta(t, -119.7006, b.SouthWest.Lng, 1e-9)
	assert.InDelta(t, 45.8399, b.NorthEast.Lat, 1e-9)
	assert.InDelta(t, -77.4286, b.NorthEast.Lng, 1e-9)
	assert.Equal(t, [2]int{50, 50}, view.Viewport.Padding)
	assert.Equal(t, b.Center(), view.Viewport.Center)
}

func TestRenderSingleMarkerFit(t *testing.T) {
	view := Render(testLocations(), "Google", testLookup(), DefaultOptions())

	require.Equal(t, 1, view.Count)
	require.NotNil(t, view.Viewport.Bounds)
	assert.Equal(t, view.Viewport.Bounds.SouthWest, view.Viewport.Bounds.NorthEast)
}

func TestRenderUnknownFilter(t *testing.T) {
	opts := DefaultOptions()
	view := Render(testLocations(), "Nonexistent Corp", testLookup(), opts)

	assert.Equal(t, 0, view.Count)
	assert.NotNil(t, view.Markers)
	assert.Empty(t, view.Markers)
	assert.Equal(t, opts.DefaultViewport(), view.Viewport, "empty sets fall back to the default view")
	assert.Nil(t, view.Viewport.Bounds)
}

func TestRenderFilterIsCaseSensitive(t *testing.T) {
	view := Render(testLocations(), "google", testLookup(), DefaultOptions())
	assert.Equal(t, 0, view.Count)
}

func TestRenderEmptyDataset(t *testing.T) {
	view := Render(nil, FilterAll, nil, DefaultOptions())
	assert.Equal(t, 0, view.Count)
	assert.Equal(t, ViewportDefault, view.Viewport.Mode)
}

func TestMarkerVariant(t *testing.T) {
	lookup := testLookup()
	view := Render(testLocations(), FilterAll, lookup, DefaultOptions())

	for _, m := range view.Markers {
		_, has := lookup[m.Location.City]
		if has {
			assert.Equal(t, VariantCommentary, m.Variant, m.Location.Site)
		} else {
			assert.Equal(t, VariantPlain, m.Variant, m.Location.Site)
		}
	}

	// Ashburn, OR shares the Virginia city's commentary.
	assert.Equal(t, VariantCommentary, view.Markers[5].Variant)
	assert.Contains(t, string(view.Markers[5].Popup), HeadingEnvironmental)
}

func TestRenderRebuildsMarkers(t *testing.T) {
	locs := testLocations()
	lookup := testLookup()

	first := Render(locs, "Microsoft", lookup, DefaultOptions())
	second := Render(locs, "Equinix", lookup, DefaultOptions())

	require.Equal(t, 1, second.Count)
	assert.Equal(t, "Equinix", second.Markers[0].Location.Company)
	assert.Equal(t, "Microsoft", first.Markers[0].Location.Company, "earlier views are untouched")
}

func TestCustomOptions(t *testing.T) {
	opts := Options{Center: LatLng{Lat: 10, Lng: 20}, Zoom: 7, FitPadding: 12}

	view := Render(testLocations(), FilterAll, nil, opts)
	assert.Equal(t, LatLng{Lat: 10, Lng: 20}, view.Viewport.Center)
	assert.Equal(t, 7, view.Viewport.Zoom)

	view = Render(testLocations(), "Equinix", nil, opts)
	assert.Equal(t, [2]int{12, 12}, view.Viewport.Padding)
}
