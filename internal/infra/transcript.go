package infra

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Vovarama1992/studyhall/internal/ports"
)

const defaultTimedTextBaseURL = "https://video.google.com/timedtext"

// TimedTextClient fetches a video's caption track from the timedtext
// endpoint and flattens it into one transcript string.
type TimedTextClient struct {
	baseURL string
	lang    string
	client  *http.Client
}

func NewTimedTextClient(baseURL string) ports.TranscriptService {
	if baseURL == "" {
		baseURL = defaultTimedTextBaseURL
	}
	return &TimedTextClient{
		baseURL: baseURL,
		lang:    "en",
		client:  &http.Client{Timeout: 20 * time.Second},
	}
}

type timedText struct {
	Lines []struct {
		Text string `xml:",chardata"`
	} `xml:"text"`
}

func (c *TimedTextClient) FetchTranscript(ctx context.Context, videoID string) (string, error) {
	params := url.Values{}
	params.Set("v", videoID)
	params.Set("lang", c.lang)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("timedtext request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("timedtext: status %d", resp.StatusCode)
	}

	var tt timedText
	if err := xml.NewDecoder(resp.Body).Decode(&tt); err != nil {
		return "", fmt.Errorf("decode timedtext: %w", err)
	}

	var sb strings.Builder
	for _, line := range tt.Lines {
		txt := strings.TrimSpace(line.Text)
		if txt == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(txt)
	}

	if sb.Len() == 0 {
		return "", fmt.Errorf("no transcript available for video %s", videoID)
	}
	return sb.String(), nil
}
