package models

import (
	"fmt"
	"time"
)

// ImageResult is a single space image returned to the presentation layer
type ImageResult struct {
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`       // Calendar date, UTC midnight
	MediaType   string    `json:"media_type"` // image/video as reported upstream
	Source      string    `json:"source"`     // APOD/NASA Image Library/NASA IOTD
}

// DateString returns the image date in YYYY-MM-DD form, or "" when unknown
func (r ImageResult) DateString() string {
	if r.Date.IsZero() {
		return ""
	}
	return r.Date.Format(DateLayout)
}

// WeatherSnapshot is the latest space weather picture assembled from DONKI and NOAA
type WeatherSnapshot struct {
	CMEActivity    string    `json:"cme_activity"`
	SolarStatus    string    `json:"solar_status"`
	AuroraForecast string    `json:"aurora_forecast"`
	MessageType    string    `json:"message_type,omitempty"` // Latest DONKI notification type
	Description    string    `json:"description,omitempty"`  // Latest DONKI notification body, verbatim
	KpIndex        float64   `json:"kp_index"`
	Timestamp      time.Time `json:"timestamp"`
}

// Complete reports whether all display fields are populated
func (w WeatherSnapshot) Complete() bool {
	return w.CMEActivity != "" && w.SolarStatus != "" && w.AuroraForecast != ""
}

// KpPoint is one planetary K-index reading
type KpPoint struct {
	TimeTag time.Time `json:"time_tag"`
	Kp      float64   `json:"kp"`
}

// KpLevel classifies a planetary K-index value. Storm starts at Kp 5 (NOAA G1).
func KpLevel(kp float64) string {
	switch {
	case kp <= 2:
		return "Quiet"
	case kp <= 3:
		return "Unsettled"
	case kp < 5:
		return "Active"
	default:
		return "Storm"
	}
}

// ChatTurn is one question/answer round-trip with the space expert
type ChatTurn struct {
	ID        string    `json:"id"`
	UserText  string    `json:"user_text"`
	ModelText string    `json:"model_text"`
	FunFact   string    `json:"fun_fact,omitempty"`
	Fallback  bool      `json:"fallback,omitempty"` // True when the model was not consulted
	CreatedAt time.Time `json:"created_at"`
}

// Message renders the turn as shown in the chat tab
func (c ChatTurn) Message() string {
	if c.Fallback || c.FunFact == "" {
		return c.ModelText
	}
	return fmt.Sprintf("🚀 %s\n\n✨ Fun Fact: %s", c.ModelText, c.FunFact)
}

// DateLayout is the calendar date format used by NASA APIs
const DateLayout = "2006-01-02"
