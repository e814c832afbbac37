package mapview

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	gmtext "github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/wilbanksalexis/Powering/internal/dataset"
)

// Section headings, in display order.
const (
	HeadingEnvironmental = "Environmental Impact"
	HeadingPolicy        = "Policy Response"
	HeadingCommunity     = "Community Voice"
)

// PopupModel is the typed input of the popup template. Commentary is nil when
// the city has no entry.
type PopupModel struct {
	Company    string
	Site       string
	City       string
	State      string
	Commentary *dataset.Tooltips
}

type popupSection struct {
	Heading string
	Body    template.HTML
}

type popupData struct {
	Company  string
	Site     string
	City     string
	State    string
	Sections []popupSection
}

const popupTemplate = `<div class="popup-content">
<h3>{{.Company}}</h3>
<p><strong>{{.Site}}</strong></p>
<p>{{.City}}, {{.State}}</p>
{{- if .Sections}}
<div class="popup-details">
{{- range .Sections}}
<div class="tooltip-section">
<h4>{{.Heading}}</h4>
{{.Body}}</div>
{{- end}}
</div>
{{- end}}
</div>`

var popupTmpl = template.Must(template.New("popup").Parse(popupTemplate))

// commentaryParser only knows paragraphs and emphasis. Everything else in a
// commentary field, markup and list or heading markers included, stays
// literal text.
var commentaryParser = parser.NewParser(
	parser.WithBlockParsers(util.Prioritized(parser.NewParagraphParser(), 1000)),
	parser.WithInlineParsers(util.Prioritized(parser.NewEmphasisParser(), 100)),
)

// Popup renders the marker popup. Location fields are escaped by
// html/template; commentary fields keep *emphasis* and are escaped otherwise.
func Popup(m PopupModel) (template.HTML, error) {
	data := popupData{
		Company: m.Company,
		Site:    m.Site,
		City:    m.City,
		State:   m.State,
	}

	if m.Commentary != nil {
		fields := []struct {
			heading string
			text    string
		}{
			{HeadingEnvironmental, m.Commentary.Environmental},
			{HeadingPolicy, m.Commentary.Policy},
			{HeadingCommunity, m.Commentary.Community},
		}
		for _, f := range fields {
			body, err := renderCommentary(f.text)
			if err != nil {
				return "", fmt.Errorf("rendering %s: %w", f.heading, err)
			}
			data.Sections = append(data.Sections, popupSection{Heading: f.heading, Body: body})
		}
	}

	var buf bytes.Buffer
	if err := popupTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing popup template: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// renderCommentary writes one <p> per paragraph. Text segments are copied
// from the source verbatim and HTML-escaped.
func renderCommentary(text string) (template.HTML, error) {
	src := []byte(text)
	doc := commentaryParser.Parse(gmtext.NewReader(src))

	var buf bytes.Buffer
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch n := n.(type) {
		case *ast.Paragraph:
			if entering {
				buf.WriteString("<p>")
			} else {
				buf.WriteString("</p>\n")
			}
		case *ast.Emphasis:
			tag := "em"
			if n.Level == 2 {
				tag = "strong"
			}
			if entering {
				buf.WriteString("<" + tag + ">")
			} else {
				buf.WriteString("</" + tag + ">")
			}
		case *ast.Text:
			if !entering {
				break
			}
			buf.WriteString(template.HTMLEscapeString(string(n.Segment.Value(src))))
			switch {
			case n.HardLineBreak():
				buf.WriteString("<br>\n")
			case n.SoftLineBreak():
				buf.WriteString("\n")
			}
		case *ast.String:
			if entering {
				buf.WriteString(template.HTMLEscapeString(string(n.Value)))
			}
		case *parser.Delimiter:
			// Unmatched * or _ run.
			if entering {
				buf.WriteString(template.HTMLEscapeString(string(n.Segment.Value(src))))
			}
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
