package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	defaultBaseURL        = "https://www.googleapis.com"
	defaultTrendingWindow = 14 * 24 * time.Hour

	watchURLFormat = "https://www.youtube.com/watch?v=%s"
)

// QueryError reports a failed YouTube Data API call. Status is the HTTP
// status code, or 0 for transport-level failures.
type QueryError struct {
	Op     string
	Status int
	Err    error
}

func (e *QueryError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("youtube %s: %v (status %d)", e.Op, e.Err, e.Status)
	}
	return fmt.Sprintf("youtube %s: %v", e.Op, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

// HTTPClient interface for making HTTP requests (allows injection for testing).
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient HTTPClient) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithBaseURL sets a custom base URL (useful for testing).
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithTrendingWindow sets how far back the search reaches for candidate
// videos, in days.
func WithTrendingWindow(days int) ClientOption {
	return func(c *Client) {
		c.window = time.Duration(days) * 24 * time.Hour
	}
}

// Client is a YouTube Data API client authenticated with a static API key.
type Client struct {
	apiKey     string
	baseURL    string
	window     time.Duration
	httpClient HTTPClient
	now        func() time.Time
}

// NewClient creates a new YouTube API client with the given API key.
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		window:     defaultTrendingWindow,
		httpClient: &http.Client{},
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// SearchVideos finds up to maxResults videos matching keyword that were
// published within the trending window, ordered by relevance, and resolves
// their statistics and duration in a single batch call.
func (c *Client) SearchVideos(ctx context.Context, keyword string, maxResults int) ([]Video, error) {
	publishedAfter := c.now().UTC().Add(-c.window).Format(time.RFC3339)

	params := url.Values{}
	params.Set("q", keyword)
	params.Set("part", "id,snippet")
	params.Set("type", "video")
	params.Set("maxResults", strconv.Itoa(maxResults))
	params.Set("order", "relevance")
	params.Set("publishedAfter", publishedAfter)
	params.Set("key", c.apiKey)

	searchURL := fmt.Sprintf("%s/youtube/v3/search?%s", c.baseURL, params.Encode())

	body, err := c.doRequest(ctx, "search", searchURL)
	if err != nil {
		return nil, err
	}

	var searchResp searchResponse
	if err := json.Unmarshal(body, &searchResp); err != nil {
		return nil, &QueryError{Op: "search", Err: fmt.Errorf("failed to parse search response: %w", err)}
	}

	videoIDs := make([]string, 0, len(searchResp.Items))
	for _, item := range searchResp.Items {
		if item.ID.VideoID != "" {
			videoIDs = append(videoIDs, item.ID.VideoID)
		}
	}

	if len(videoIDs) == 0 {
		log.Debug().Str("keyword", keyword).Msg("search returned no candidates")
		return []Video{}, nil
	}

	detailParams := url.Values{}
	detailParams.Set("part", "snippet,statistics,contentDetails")
	detailParams.Set("id", strings.Join(videoIDs, ","))
	detailParams.Set("key", c.apiKey)

	videosURL := fmt.Sprintf("%s/youtube/v3/videos?%s", c.baseURL, detailParams.Encode())

	body, err = c.doRequest(ctx, "videos", videosURL)
	if err != nil {
		return nil, err
	}

	var videosResp videosResponse
	if err := json.Unmarshal(body, &videosResp); err != nil {
		return nil, &QueryError{Op: "videos", Err: fmt.Errorf("failed to parse videos response: %w", err)}
	}

	videos := make([]Video, 0, len(videosResp.Items))
	for _, item := range videosResp.Items {
		if item.ID == "" {
			return nil, &QueryError{Op: "videos", Err: fmt.Errorf("detail item missing video id")}
		}

		// Statistics are string-encoded; absent or unparsable counts
		// default to 0.
		viewCount, _ := strconv.ParseInt(item.Statistics.ViewCount, 10, 64)
		likeCount, _ := strconv.ParseInt(item.Statistics.LikeCount, 10, 64)
		publishedAt, _ := time.Parse(time.RFC3339, item.Snippet.PublishedAt)

		videos = append(videos, Video{
			ID:           item.ID,
			Title:        item.Snippet.Title,
			ChannelTitle: item.Snippet.ChannelTitle,
			PublishedAt:  publishedAt,
			ViewCount:    viewCount,
			LikeCount:    likeCount,
			Duration:     item.ContentDetails.Duration,
			URL:          fmt.Sprintf(watchURLFormat, item.ID),
		})
	}

	log.Debug().Str("keyword", keyword).Int("candidates", len(videos)).Msg("search completed")
	return videos, nil
}

func (c *Client) doRequest(ctx context.Context, op, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &QueryError{Op: op, Err: fmt.Errorf("failed to create request: %w", err)}
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &QueryError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &QueryError{Op: op, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &QueryError{Op: op, Status: resp.StatusCode, Err: apiError(resp.StatusCode)}
	}

	return body, nil
}

func apiError(statusCode int) error {
	switch statusCode {
	case http.StatusBadRequest:
		return fmt.Errorf("YouTube API rejected the request - check query parameters")
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("YouTube API access denied - check your API key and quota")
	case http.StatusTooManyRequests:
		return fmt.Errorf("YouTube API rate limit exceeded - please try again later")
	case http.StatusServiceUnavailable:
		return fmt.Errorf("YouTube API temporarily unavailable - please try again in a few minutes")
	case http.StatusInternalServerError, http.StatusBadGateway, http.StatusGatewayTimeout:
		return fmt.Errorf("YouTube API server error - please try again later")
	default:
		return fmt.Errorf("YouTube API error - please try again")
	}
}

// API response types (private - implementation detail)

type searchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
	} `json:"items"`
}

type videosResponse struct {
	Items []struct {
		ID      string `json:"id"`
		Snippet struct {
			Title        string `json:"title"`
			ChannelTitle string `json:"channelTitle"`
			PublishedAt  string `json:"publishedAt"`
		} `json:"snippet"`
		Statistics struct {
			ViewCount string `json:"viewCount"`
			LikeCount string `json:"likeCount"`
		} `json:"statistics"`
		ContentDetails struct {
			Duration string `json:"duration"`
		} `json:"contentDetails"`
	} `json:"items"`
}
