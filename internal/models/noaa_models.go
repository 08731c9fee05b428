package models

// NOAAKIndexResponse represents one parsed row of the NOAA planetary K-index product
type NOAAKIndexResponse struct {
	TimeTag      string  `json:"time_tag"`
	KpIndex      float64 `json:"kp_index"`
	ARunning     float64 `json:"a_running"`
	StationCount int     `json:"station_count"`
	Source       string  `json:"source"`
}
