// Package youtube provides a client for the YouTube Data API v3.
//
// This package enables trendfinder to:
// - Search videos matching a keyword within a trailing publication window
// - Batch-fetch statistics and content details for the search hits
// - Map API payloads into typed records with sane defaults
package youtube

import "time"

// Video represents a YouTube video assembled from a search hit and its
// statistics/contentDetails lookup.
type Video struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	ChannelTitle string    `json:"channel_title"`
	PublishedAt  time.Time `json:"published_at"`
	ViewCount    int64     `json:"view_count"`
	LikeCount    int64     `json:"like_count"`
	Duration     string    `json:"duration"`
	URL          string    `json:"url"`
}
