package googlebooks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

// Search modes accepted by the volumes endpoint.
const (
	ModeTitle  = "title"
	ModeAuthor = "author"
)

const defaultBaseURL = "https://www.googleapis.com/books/v1"

type Client struct {
	httpClient *http.Client
	userAgent  string
	baseURL    string
	limiter    *rate.Limiter
}

// NewClient builds a client for the Google Books volumes API. baseURL
// may be empty, in which case the public endpoint is used.
func NewClient(baseURL, userAgent string, rps int) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if rps <= 0 {
		rps = 1
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		userAgent: userAgent,
		baseURL:   baseURL,
		limiter:   rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), 1),
	}
}

// SearchResponse matches the volumes list payload.
type SearchResponse struct {
	TotalItems int      `json:"totalItems"`
	Items      []Volume `json:"items"`
}

type Volume struct {
	Key        string     `json:"id"`
	VolumeInfo VolumeInfo `json:"volumeInfo"`
}

// VolumeInfo carries the metadata fields the app reads. Every field is
// optional in the upstream payload.
type VolumeInfo struct {
	Title               string               `json:"title"`
	Authors             []string             `json:"authors"`
	IndustryIdentifiers []IndustryIdentifier `json:"industryIdentifiers"`
	ImageLinks          *ImageLinks          `json:"imageLinks"`
	Description         string               `json:"description"`
}

type IndustryIdentifier struct {
	Type       string `json:"type"`
	Identifier string `json:"identifier"`
}

type ImageLinks struct {
	SmallThumbnail string `json:"smallThumbnail"`
	Thumbnail      string `json:"thumbnail"`
}

// Search issues one lookup for the given term, scoped to titles or
// authors. No retries: a failed call surfaces to the caller as-is.
func (c *Client) Search(ctx context.Context, term, mode string) ([]Volume, error) {
	var field string
	switch mode {
	case ModeTitle:
		field = "intitle"
	case ModeAuthor:
		field = "inauthor"
	default:
		return nil, fmt.Errorf("unsupported search mode: %q", mode)
	}

	u := fmt.Sprintf("%s/volumes?q=%s", c.baseURL, url.QueryEscape("+"+field+":"+term))

	var res SearchResponse
	if err := c.get(ctx, u, &res); err != nil {
		return nil, fmt.Errorf("search google books: %w", err)
	}
	return res.Items, nil
}

func (c *Client) get(ctx context.Context, url string, target interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(target)
}
