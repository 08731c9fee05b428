package fetchers

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

// fixtureServer serves body with status and counts requests
func fixtureServer(t *testing.T, status int, contentType, body string) (*httptest.Server, *int32) {
	t.Helper()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

// slowServer blocks until the client gives up
func slowServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

const apodFixture = `{
  "copyright": "Jane Doe",
  "date": "2025-02-09",
  "explanation": "The Crab Nebula is the remnant of a supernova.",
  "hdurl": "https://apod.nasa.gov/apod/image/2502/crab_hd.jpg",
  "media_type": "image",
  "service_version": "v1",
  "title": "The Crab Nebula",
  "url": "https://apod.nasa.gov/apod/image/2502/crab.jpg"
}`

const searchFixture = `{
  "collection": {
    "href": "https://images-api.nasa.gov/search?q=nebula",
    "items": [
      {
        "href": "https://images-assets.nasa.gov/image/a/collection.json",
        "data": [{"nasa_id": "a", "title": "Hubble Deep Field", "description": "Galaxies behind a nebula", "date_created": "2012-03-06T00:00:00Z", "media_type": "image"}],
        "links": [{"href": "https://images-assets.nasa.gov/image/a/a~thumb.jpg", "rel": "preview", "render": "image"}]
      },
      {
        "href": "https://images-assets.nasa.gov/image/b/collection.json",
        "data": [{"nasa_id": "b", "title": "Orion Nebula", "description": "Star nursery", "date_created": "2006-01-11T00:00:00Z", "media_type": "image"}],
        "links": [{"href": "https://images-assets.nasa.gov/image/b/b~thumb.jpg", "rel": "preview", "render": "image"}]
      },
      {
        "href": "https://images-assets.nasa.gov/image/c/collection.json",
        "data": [{"nasa_id": "c", "title": "No preview", "description": "Missing links", "date_created": "2001-01-01T00:00:00Z", "media_type": "image"}]
      },
      {
        "href": "https://images-assets.nasa.gov/image/d/collection.json",
        "data": [{"nasa_id": "d", "title": "Carina NEBULA", "description": "", "date_created": "2010-04-22T00:00:00Z", "media_type": "image"}],
        "links": [{"href": "https://images-assets.nasa.gov/image/d/d~thumb.jpg", "rel": "preview", "render": "image"}]
      }
    ],
    "metadata": {"total_hits": 4}
  }
}`

const emptySearchFixture = `{"collection": {"items": [], "metadata": {"total_hits": 0}}}`

const iotdFixture = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>NASA Image of the Day</title>
    <link>https://www.nasa.gov/image-of-the-day/</link>
    <description>Images</description>
    <item>
      <title>Aurora Over the ISS</title>
      <link>https://www.nasa.gov/image-detail/aurora/</link>
      <description>An aurora seen from orbit.</description>
      <pubDate>Sun, 09 Feb 2025 14:30:00 +0000</pubDate>
      <enclosure url="https://www.nasa.gov/wp-content/uploads/aurora.jpg" length="1000" type="image/jpeg"/>
    </item>
    <item>
      <title>Text only post</title>
      <link>https://www.nasa.gov/text/</link>
      <description>No image here.</description>
      <pubDate>Sat, 08 Feb 2025 14:30:00 +0000</pubDate>
    </item>
  </channel>
</rss>`

const notificationsFixture = `[
  {"messageType": "FLR", "messageID": "20250207-AL-001", "messageURL": "https://kauai.ccmc.gsfc.nasa.gov/DONKI/view/Alert/1/1", "messageIssueTime": "2025-02-07T10:00Z", "messageBody": "An M2.1 flare was detected."},
  {"messageType": "Report", "messageID": "20250209-7D-001", "messageURL": "https://kauai.ccmc.gsfc.nasa.gov/DONKI/view/WeeklyReport/2/1", "messageIssueTime": "2025-02-09T18:12Z", "messageBody": "Weekly summary: a C-class flare occurred. Aurora possible at high latitudes."}
]`

const cmeFixture = `[
  {"activityID": "2025-02-05T09:00:00-CME-001", "startTime": "2025-02-05T09:00Z", "note": "Faint CME to the west."},
  {"activityID": "2025-02-08T12:36:00-CME-001", "startTime": "2025-02-08T12:36Z", "note": "Halo CME seen in SOHO LASCO C2."}
]`

const kIndexTableFixture = `[
  ["time_tag","Kp","a_running","station_count"],
  ["2025-02-06 00:00:00.000","1.33","5","8"],
  ["2025-02-09 09:00:00.000","2.67","12","8"],
  ["2025-02-09 12:00:00.000","3.33","18","8"]
]`

const kIndexObjectFixture = `[
  {"time_tag": "2025-02-09T09:00:00", "Kp": 4.67, "a_running": 39, "station_count": 8},
  {"time_tag": "2025-02-09T12:00:00", "Kp": 5.33, "a_running": 56, "station_count": 8}
]`

// newRecordingServer passes every request to record before answering with body
func newRecordingServer(t *testing.T, record func(*http.Request), body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		record(r)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}
