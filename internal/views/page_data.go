package views

import (
	"html/template"
	"strings"

	"spaceexplorer/internal/models"
)

// PageData is the template input shared by every tab
type PageData struct {
	Site   SiteInfo
	Active Page
	Tabs   []Page
	CSS    template.CSS

	// Error is shown inline in the active tab
	Error string

	Today   *ImageView
	Gallery []ImageView

	Query   string
	Results []ImageView

	Chat *ChatView

	Weather *WeatherView
}

// ImageView is an image prepared for display
type ImageView struct {
	URL         string
	Title       string
	Date        string
	Source      string
	MediaType   string
	Description template.HTML
}

// IsVideo reports whether URL points at a video player rather than an image
func (v ImageView) IsVideo() bool {
	return strings.EqualFold(v.MediaType, "video")
}

// ChatView is one rendered question and answer
type ChatView struct {
	Question string
	Answer   template.HTML
	Fallback bool
}

// WeatherView is a snapshot prepared for display
type WeatherView struct {
	Status      string
	Description template.HTML
	Updated     string
	Conditions  []Condition
	Gauge       template.HTML
	HasChart    bool
}

// Condition is one row of the conditions table
type Condition struct {
	Label string
	Value string
}

var messageTypeEmoji = map[string]string{
	"Report":  "🛸",
	"Watch":   "⚠️",
	"Warning": "🚨",
	"Alert":   "⚡",
}

// ImageView converts an image result; descriptions are rendered as markdown
func (b *PageBuilder) ImageView(r models.ImageResult) ImageView {
	return ImageView{
		URL:         r.URL,
		Title:       r.Title,
		Date:        r.DateString(),
		Source:      r.Source,
		MediaType:   r.MediaType,
		Description: b.MarkdownToHTML(r.Description),
	}
}

// ImageViews converts a list of image results
func (b *PageBuilder) ImageViews(results []models.ImageResult) []ImageView {
	views := make([]ImageView, 0, len(results))
	for _, r := range results {
		views = append(views, b.ImageView(r))
	}
	return views
}

// ChatView converts a chat turn; the model's markdown is rendered to HTML
func (b *PageBuilder) ChatView(turn models.ChatTurn) *ChatView {
	return &ChatView{
		Question: turn.UserText,
		Answer:   b.MarkdownToHTML(turn.Message()),
		Fallback: turn.Fallback,
	}
}

// WeatherView converts a weather snapshot
func (b *PageBuilder) WeatherView(w models.WeatherSnapshot, gauge template.HTML, hasChart bool) *WeatherView {
	status := "🛸 Space Weather"
	if w.MessageType != "" {
		emoji, ok := messageTypeEmoji[w.MessageType]
		if !ok {
			emoji = "🛸"
		}
		status = emoji + " Space Weather " + w.MessageType
	}

	description := strings.TrimSpace(w.Description)
	if description == "" {
		description = "No notification text in the lookback window."
	}

	return &WeatherView{
		Status:      status,
		Description: b.MarkdownToHTML(description),
		Updated:     w.Timestamp.UTC().Format("2006-01-02 15:04 UTC"),
		Conditions: []Condition{
			{Label: "🌞 Solar Activity", Value: w.SolarStatus},
			{Label: "☄️ CME Activity", Value: w.CMEActivity},
			{Label: "🌌 Aurora Forecast", Value: w.AuroraForecast},
		},
		Gauge:    gauge,
		HasChart: hasChart,
	}
}
