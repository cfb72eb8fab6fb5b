package infra

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Vovarama1992/studyhall/internal/domain"
	"github.com/Vovarama1992/studyhall/internal/ports"
	"golang.org/x/time/rate"
)

const (
	defaultYouTubeBaseURL = "https://www.googleapis.com/youtube/v3"

	// provider-imposed maximum page size for playlistItems
	playlistPageSize = 50
)

// YouTubeClient talks to the YouTube Data API v3. Calls are rate-limited
// because the provider is not safe for unbounded concurrent calls per key,
// and each request carries its own timeout so a stalled provider cannot
// hang an ingestion request.
type YouTubeClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
}

func NewYouTubeClient(apiKey, baseURL string) *YouTubeClient {
	if baseURL == "" {
		baseURL = defaultYouTubeBaseURL
	}
	return &YouTubeClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
		limiter: rate.NewLimiter(rate.Limit(10), 1),
	}
}

type ytListResponse struct {
	Items []struct {
		Snippet struct {
			Title string `json:"title"`
		} `json:"snippet"`
		ContentDetails struct {
			VideoID  string `json:"videoId"`
			Duration string `json:"duration"`
		} `json:"contentDetails"`
	} `json:"items"`
	NextPageToken string `json:"nextPageToken"`
}

func (c *YouTubeClient) PlaylistPage(ctx context.Context, playlistID, pageToken string) (*ports.PlaylistPage, error) {
	params := url.Values{}
	params.Set("playlistId", playlistID)
	params.Set("part", "snippet,contentDetails")
	params.Set("maxResults", strconv.Itoa(playlistPageSize))
	if pageToken != "" {
		params.Set("pageToken", pageToken)
	}

	var out ytListResponse
	if err := c.get(ctx, "/playlistItems", params, &out); err != nil {
		return nil, err
	}

	page := &ports.PlaylistPage{NextPageToken: out.NextPageToken}
	for _, it := range out.Items {
		page.Items = append(page.Items, ports.PlaylistItem{
			VideoID: it.ContentDetails.VideoID,
			Title:   it.Snippet.Title,
		})
	}
	return page, nil
}

func (c *YouTubeClient) VideoTitle(ctx context.Context, videoID string) (string, error) {
	params := url.Values{}
	params.Set("id", videoID)
	params.Set("part", "snippet")

	var out ytListResponse
	if err := c.get(ctx, "/videos", params, &out); err != nil {
		return "", err
	}
	if len(out.Items) == 0 {
		return "", domain.ErrVideoNotFound
	}
	return out.Items[0].Snippet.Title, nil
}

func (c *YouTubeClient) VideoDuration(ctx context.Context, videoID string) (string, error) {
	params := url.Values{}
	params.Set("id", videoID)
	params.Set("part", "contentDetails")

	var out ytListResponse
	if err := c.get(ctx, "/videos", params, &out); err != nil {
		return "", err
	}
	if len(out.Items) == 0 {
		return "", domain.ErrVideoNotFound
	}
	return out.Items[0].ContentDetails.Duration, nil
}

func (c *YouTubeClient) get(ctx context.Context, endpoint string, params url.Values, result any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	params.Set("key", c.apiKey)
	reqURL := c.baseURL + endpoint + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("youtube api request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Error.Message != "" {
			return fmt.Errorf("youtube api error (status %d): %s", resp.StatusCode, errResp.Error.Message)
		}
		return fmt.Errorf("youtube api error: status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
