package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/Vovarama1992/studyhall/internal/ports"
)

const geminiEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/gemini-1.5-flash:generateContent"

type GeminiClient struct {
	apiKey string
	client *http.Client
}

func NewGeminiClient() ports.GenerativeModel {
	return &GeminiClient{
		apiKey: os.Getenv("GEMINI_API_KEY"),
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

// sanitize: strip broken UTF-8 before shipping the transcript out
func sanitize(s string) string {
	return strings.ToValidUTF8(s, "")
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func (g *GeminiClient) GenerateSummary(ctx context.Context, transcript string) (string, error) {
	if g.apiKey == "" {
		return "", fmt.Errorf("no GEMINI_API_KEY")
	}

	prompt := "Summarize the following transcript: " + sanitize(transcript)

	body := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
	}

	j, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	for attempt := 1; attempt <= 3; attempt++ {
		req, err := http.NewRequestWithContext(
			ctx,
			"POST",
			geminiEndpoint+"?key="+g.apiKey,
			bytes.NewReader(j),
		)
		if err != nil {
			continue
		}

		req.Header.Set("Content-Type", "application/json")

		resp, err := g.client.Do(req)
		if err != nil {
			continue
		}

		raw, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if len(raw) == 0 {
			continue
		}

		var out geminiResponse
		if err := json.Unmarshal(raw, &out); err != nil {
			continue
		}

		if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
			continue
		}

		return out.Candidates[0].Content.Parts[0].Text, nil
	}

	return "", fmt.Errorf("summary generation failed after retries")
}
