package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

//go:embed templates/*.html templates/*.css
var templateFS embed.FS

// Page names a tab of the UI
type Page string

const (
	PageToday   Page = "today"
	PageSearch  Page = "search"
	PageChat    Page = "chat"
	PageWeather Page = "weather"
)

// Pages lists the tabs in display order
var Pages = []Page{PageToday, PageSearch, PageChat, PageWeather}

// SiteInfo is shown in every page header and footer
type SiteInfo struct {
	CurrentUser string
	Version     string
	StartedAt   time.Time
}

// PageBuilder renders the UI tabs with html/template and converts markdown with goldmark
type PageBuilder struct {
	site      SiteInfo
	markdown  goldmark.Markdown
	templates map[Page]*template.Template
	css       template.CSS
}

// NewPageBuilder parses the embedded templates
func NewPageBuilder(site SiteInfo) (*PageBuilder, error) {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
		),
	)

	css, err := templateFS.ReadFile("templates/styles.css")
	if err != nil {
		return nil, fmt.Errorf("failed to load CSS: %w", err)
	}

	layout, err := template.New("layout.html").Funcs(template.FuncMap{
		"tabLabel": tabLabel,
		"utc": func(t time.Time) string {
			return t.UTC().Format("2006-01-02 15:04:05")
		},
	}).ParseFS(templateFS, "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}

	templates := make(map[Page]*template.Template, len(Pages))
	for _, page := range Pages {
		clone, err := layout.Clone()
		if err != nil {
			return nil, err
		}
		tmpl, err := clone.ParseFS(templateFS, "templates/"+string(page)+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", page, err)
		}
		templates[page] = tmpl
	}

	return &PageBuilder{
		site:      site,
		markdown:  md,
		templates: templates,
		css:       template.CSS(css),
	}, nil
}

// Render executes the template for page into w
func (b *PageBuilder) Render(w io.Writer, page Page, data PageData) error {
	tmpl, ok := b.templates[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}

	data.Site = b.site
	data.Active = page
	data.Tabs = Pages
	data.CSS = b.css

	// A template error must not write a partial page
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		return fmt.Errorf("failed to render %s page: %w", page, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// MarkdownToHTML converts markdown; raw HTML in the input is not passed through
func (b *PageBuilder) MarkdownToHTML(markdown string) template.HTML {
	var buf bytes.Buffer
	if err := b.markdown.Convert([]byte(markdown), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(markdown))
	}
	return template.HTML(buf.String())
}

func tabLabel(p Page) string {
	switch p {
	case PageToday:
		return "✨ Today's Space Wonder"
	case PageSearch:
		return "🔍 Space Image Search"
	case PageChat:
		return "💫 Space Chat"
	case PageWeather:
		return "🌤️ Space Weather"
	default:
		return string(p)
	}
}
