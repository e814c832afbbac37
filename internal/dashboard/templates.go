package dashboard

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/wilbanksalexis/Powering/internal/chat"
	"github.com/wilbanksalexis/Powering/internal/mapview"
)

//go:embed index.html
var indexHTML string

var pageTmpl = template.Must(template.New("index").Parse(indexHTML))

// PageConfig holds the presentation settings of the map page.
type PageConfig struct {
	Title       string
	TileURL     string
	Attribution string
	MaxZoom     int
}

// Page is everything the map page template needs. In static mode the chat
// widget is hidden and the filter select navigates between pre-rendered
// pages listed in Links.
type Page struct {
	PageConfig
	Center   mapview.LatLng
	Zoom     int
	View     mapview.View
	Options  []mapview.FilterOption
	Legend   mapview.Legend
	Examples []string
	Static   bool
	Links    map[string]string
}

// WritePage renders the map page to w.
func WritePage(w io.Writer, p Page) error {
	if p.Examples == nil {
		p.Examples = chat.ExamplePrompts
	}
	if err := pageTmpl.Execute(w, p); err != nil {
		return fmt.Errorf("executing page template: %w", err)
	}
	return nil
}

// page builds the live page for the current state.
func (d *Dashboard) page() Page {
	opts := d.state.Options()
	return Page{
		PageConfig: d.pageCfg,
		Center:     opts.Center,
		Zoom:       opts.Zoom,
		View:       d.state.View(),
		Options:    d.state.FilterOptions(),
		Legend:     d.state.Legend(),
	}
}

// ServeIndex serves the map and chat page.
func (d *Dashboard) ServeIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := WritePage(w, d.page()); err != nil {
		d.log.Error("rendering index", zap.Error(err))
	}
}
