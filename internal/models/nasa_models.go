package models

// APODResponse represents the Astronomy Picture of the Day JSON response
type APODResponse struct {
	Copyright      string `json:"copyright"`
	Date           string `json:"date"`
	Explanation    string `json:"explanation"`
	HDURL          string `json:"hdurl"`
	MediaType      string `json:"media_type"`
	ServiceVersion string `json:"service_version"`
	Title          string `json:"title"`
	URL            string `json:"url"`
}

// ImageSearchResponse represents the NASA Image and Video Library search response
type ImageSearchResponse struct {
	Collection struct {
		Href     string            `json:"href"`
		Items    []ImageSearchItem `json:"items"`
		Metadata struct {
			TotalHits int `json:"total_hits"`
		} `json:"metadata"`
	} `json:"collection"`
}

// ImageSearchItem is one asset in the image library collection
type ImageSearchItem struct {
	Href string `json:"href"`
	Data []struct {
		NASAID      string `json:"nasa_id"`
		Title       string `json:"title"`
		Description string `json:"description"`
		DateCreated string `json:"date_created"`
		MediaType   string `json:"media_type"`
		Center      string `json:"center"`
	} `json:"data"`
	Links []struct {
		Href   string `json:"href"`
		Rel    string `json:"rel"`
		Render string `json:"render"`
	} `json:"links"`
}

// DONKINotification represents one DONKI space weather notification
type DONKINotification struct {
	MessageType      string `json:"messageType"` // Report/Watch/Warning/Alert/FLR/CME/...
	MessageID        string `json:"messageID"`
	MessageURL       string `json:"messageURL"`
	MessageIssueTime string `json:"messageIssueTime"`
	MessageBody      string `json:"messageBody"`
}

// DONKICME represents one coronal mass ejection record from DONKI
type DONKICME struct {
	ActivityID      string `json:"activityID"`
	Catalog         string `json:"catalog"`
	StartTime       string `json:"startTime"`
	SourceLocation  string `json:"sourceLocation"`
	ActiveRegionNum *int   `json:"activeRegionNum"`
	Link            string `json:"link"`
	Note            string `json:"note"`
}
