package mapview

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/wilbanksalexis/Powering/internal/dataset"
	"github.com/wilbanksalexis/Powering/internal/metrics"
)

// Legend messages.
const (
	LegendLoading = "Loading data centers..."
	LegendReady   = "Click markers to see data center details"
)

// AllCompaniesLabel is the label of the default filter option.
const AllCompaniesLabel = "All Companies"

// Fetcher supplies the dataset. dataset.Loader implements it.
type Fetcher interface {
	Fetch(ctx context.Context) (*dataset.Dataset, error)
}

// Legend is the status line under the map. Error is set when Message
// describes a load failure.
type Legend struct {
	Message string `json:"message"`
	Error   bool   `json:"error"`
}

// FilterOption is one entry of the company select.
type FilterOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// State is the application state, created once at startup and shared by
// reference. The dataset is written by Load and only read afterwards.
type State struct {
	mu     sync.RWMutex
	opts   Options
	log    *zap.Logger
	data   *dataset.Dataset
	view   View // view.Filter is the active filter
	legend Legend
}

// NewState creates an empty State. The map is usable before Load: it shows
// the default viewport and no markers.
func NewState(opts Options, log *zap.Logger) *State {
	if log == nil {
		log = zap.NewNop()
	}
	return &State{
		opts:   opts,
		log:    log,
		view:   emptyView(opts),
		legend: Legend{Message: LegendLoading},
	}
}

func emptyView(opts Options) View {
	return View{
		Filter:   FilterAll,
		Markers:  make([]Marker, 0),
		Viewport: opts.DefaultViewport(),
	}
}

// Load fetches the dataset and applies it as a unit. On failure nothing from
// the attempt is kept: the legend shows the error, the count drops to zero,
// and the error is returned.
func (s *State) Load(ctx context.Context, f Fetcher) error {
	ds, err := f.Fetch(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		metrics.DatasetLoads.WithLabelValues("error").Inc()
		metrics.LocationsLoaded.Set(0)
		s.data = nil
		s.view = emptyView(s.opts)
		s.legend = Legend{Message: "Error: " + err.Error(), Error: true}
		s.log.Error("loading data centers", zap.Error(err))
		return err
	}

	metrics.DatasetLoads.WithLabelValues("ok").Inc()
	metrics.LocationsLoaded.Set(float64(len(ds.Locations)))
	s.data = ds
	s.view = s.render(FilterAll)
	s.legend = Legend{Message: LegendReady}
	s.log.Info("data centers loaded",
		zap.Int("locations", len(ds.Locations)),
		zap.Int("commentary_cities", len(ds.Lookup)),
		zap.Int("companies", len(ds.Companies)),
	)
	return nil
}

// SetFilter makes filter the active filter and replaces the current view.
func (s *State) SetFilter(filter string) View {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.view = s.render(filter)
	return s.view
}

// Render builds a view for filter without changing the active one. HTTP
// requests use this so clients do not share a filter.
func (s *State) Render(filter string) View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.render(filter)
}

// render must be called with s.mu held.
func (s *State) render(filter string) View {
	if s.data == nil {
		v := emptyView(s.opts)
		v.Filter = filter
		return v
	}

	view := Render(s.data.Locations, filter, s.data.Lookup, s.opts)

	kind := "company"
	switch {
	case filter == FilterAll:
		kind = "all"
	case view.Count == 0:
		kind = "unknown"
	}
	metrics.Renders.WithLabelValues(kind).Inc()
	s.log.Debug("rendered markers", zap.String("filter", filter), zap.Int("count", view.Count))

	return view
}

// View returns the current view.
func (s *State) View() View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view
}

// Legend returns the status line.
func (s *State) Legend() Legend {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.legend
}

// Loaded reports whether a dataset is resident.
func (s *State) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data != nil
}

// Options returns the map parameters.
func (s *State) Options() Options {
	return s.opts
}

// Companies returns the sorted distinct companies, or nil before a
// successful load.
func (s *State) Companies() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.data == nil {
		return nil
	}
	return s.data.Companies
}

// Locations returns the full location list, or nil before a successful load.
func (s *State) Locations() []dataset.Location {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.data == nil {
		return nil
	}
	return s.data.Locations
}

// FilterOptions returns the select entries: the "all" default followed by
// one option per company in sorted order.
func (s *State) FilterOptions() []FilterOption {
	companies := s.Companies()
	opts := make([]FilterOption, 0, len(companies)+1)
	opts = append(opts, FilterOption{Value: FilterAll, Label: AllCompaniesLabel})
	for _, c := range companies {
		opts = append(opts, FilterOption{Value: c, Label: c})
	}
	return opts
}
