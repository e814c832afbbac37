package site

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/wilbanksalexis/Powering/internal/dashboard"
	"github.com/wilbanksalexis/Powering/internal/dataset"
	"github.com/wilbanksalexis/Powering/internal/mapview"
	"github.com/wilbanksalexis/Powering/internal/progress"
)

// ErrNotLoaded is returned when the export is attempted without a dataset.
var ErrNotLoaded = errors.New("no dataset loaded")

// Generator exports the map as static HTML: index.html with every location
// and one pre-filtered page per company under companies/.
type Generator struct {
	OutputDir string
	Page      dashboard.PageConfig
	Reporter  progress.Reporter
}

// NewGenerator creates a Generator writing into outputDir.
func NewGenerator(outputDir string, page dashboard.PageConfig, reporter progress.Reporter) *Generator {
	if reporter == nil {
		reporter = progress.Nop{}
	}
	return &Generator{
		OutputDir: outputDir,
		Page:      page,
		Reporter:  reporter,
	}
}

// CompanyEntry describes one exported company page.
type CompanyEntry struct {
	Company string `json:"company"`
	Slug    string `json:"slug"`
	Count   int    `json:"count"`
	Href    string `json:"href"`
}

// Generate writes the site and returns the number of HTML pages written.
func (g *Generator) Generate(state *mapview.State) (int, error) {
	if !state.Loaded() {
		return 0, fmt.Errorf("%w: %s", ErrNotLoaded, state.Legend().Message)
	}

	companies := state.Companies()
	slugs := companySlugs(companies)
	counts := dataset.CountByCompany(state.Locations())

	if err := os.MkdirAll(filepath.Join(g.OutputDir, "companies"), 0o755); err != nil {
		return 0, fmt.Errorf("creating output directory: %w", err)
	}

	total := len(companies) + 1
	g.Reporter.Start(total)
	defer g.Reporter.Finish()

	if err := g.writePage(state, mapview.FilterAll, "index.html", slugs); err != nil {
		return 0, err
	}
	g.Reporter.Update(1, "index.html")

	entries := make([]CompanyEntry, 0, len(companies))
	for i, c := range companies {
		rel := path.Join("companies", slugs[c]+".html")
		if err := g.writePage(state, c, rel, slugs); err != nil {
			return 0, err
		}
		entries = append(entries, CompanyEntry{Company: c, Slug: slugs[c], Count: counts[c], Href: rel})
		g.Reporter.Update(i+2, rel)
	}

	if err := writeCompanyIndex(entries, filepath.Join(g.OutputDir, "companies.json")); err != nil {
		return 0, fmt.Errorf("writing company index: %w", err)
	}

	return total, nil
}

// writePage renders the map for filter into rel, a slash-separated path
// under the output directory.
func (g *Generator) writePage(state *mapview.State, filter, rel string, slugs map[string]string) error {
	opts := state.Options()
	page := dashboard.Page{
		PageConfig: g.Page,
		Center:     opts.Center,
		Zoom:       opts.Zoom,
		View:       state.Render(filter),
		Options:    state.FilterOptions(),
		Legend:     state.Legend(),
		Static:     true,
		Links:      pageLinks(rel, slugs),
	}

	out := filepath.Join(g.OutputDir, filepath.FromSlash(rel))
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating %s: %w", rel, err)
	}
	defer f.Close()

	if err := dashboard.WritePage(f, page); err != nil {
		return fmt.Errorf("rendering %s: %w", rel, err)
	}
	return f.Close()
}

// pageLinks maps every filter value to its page, relative to the page at rel.
func pageLinks(rel string, slugs map[string]string) map[string]string {
	base := strings.Repeat("../", strings.Count(rel, "/"))
	links := make(map[string]string, len(slugs)+1)
	links[mapview.FilterAll] = base + "index.html"
	for company, slug := range slugs {
		links[company] = base + "companies/" + slug + ".html"
	}
	return links
}

// companySlugs assigns each company a unique file-safe slug. Companies are
// visited in the given order, so collisions get -2, -3, ... suffixes in
// sorted order.
func companySlugs(companies []string) map[string]string {
	slugs := make(map[string]string, len(companies))
	used := make(map[string]bool, len(companies))
	for _, c := range companies {
		base := slugify(c)
		s := base
		for n := 2; used[s]; n++ {
			s = base + "-" + strconv.Itoa(n)
		}
		used[s] = true
		slugs[c] = s
	}
	return slugs
}

func slugify(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	s := strings.TrimSuffix(b.String(), "-")
	if s == "" {
		return "company"
	}
	return s
}

func writeCompanyIndex(entries []CompanyEntry, outputPath string) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, data, 0o644)
}
