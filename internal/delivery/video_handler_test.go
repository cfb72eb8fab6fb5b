package delivery

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/studyhall/internal/domain"
	"github.com/Vovarama1992/studyhall/internal/models"
	"github.com/Vovarama1992/studyhall/internal/ports"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeIngestor struct {
	result     *ports.IngestResult
	err        error
	gotSession int
	gotURL     string
}

func (f *fakeIngestor) Ingest(_ context.Context, sessionID int, youtubeURL string) (*ports.IngestResult, error) {
	f.gotSession = sessionID
	f.gotURL = youtubeURL
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func newTestVideoHandler(ingest ports.VideoIngestor) *VideoHandler {
	zl := logger.NewZapLogger(zap.NewNop().Sugar())
	return NewVideoHandler(nil, ingest, nil, zl)
}

func createRequest(sessionID, url string) *http.Request {
	target := "/api/videos/create"
	q := make([]string, 0, 2)
	if sessionID != "" {
		q = append(q, "sessionId="+sessionID)
	}
	if url != "" {
		q = append(q, "youtubeUrl="+url)
	}
	if len(q) > 0 {
		target += "?" + strings.Join(q, "&")
	}
	return httptest.NewRequest(http.MethodPost, target, nil)
}

func TestCreateVideoMissingParameters(t *testing.T) {
	h := newTestVideoHandler(&fakeIngestor{})

	for _, req := range []*http.Request{
		createRequest("", ""),
		createRequest("1", ""),
		createRequest("", "https://youtube.com/watch?v=abc"),
	} {
		rec := httptest.NewRecorder()
		h.Create(rec, req)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "Session ID and YouTube URL are required.")
	}
}

func TestCreateVideoSingle(t *testing.T) {
	ingest := &fakeIngestor{
		result: &ports.IngestResult{
			Created: 1,
			Video:   &models.Video{ID: 9, SessionID: 2, Title: "My Lecture"},
		},
	}
	h := newTestVideoHandler(ingest)

	rec := httptest.NewRecorder()
	h.Create(rec, createRequest("2", "https%3A%2F%2Fyoutube.com%2Fwatch%3Fv%3Dabc"))

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, 2, ingest.gotSession)

	var body struct {
		Message string       `json:"message"`
		Video   models.Video `json:"video"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "Video created successfully", body.Message)
	require.Equal(t, "My Lecture", body.Video.Title)
}

func TestCreateVideoPlaylist(t *testing.T) {
	ingest := &fakeIngestor{
		result: &ports.IngestResult{Created: 42},
	}
	h := newTestVideoHandler(ingest)

	rec := httptest.NewRecorder()
	h.Create(rec, createRequest("2", "playlist"))

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Contains(t, rec.Body.String(), "42 playlist videos created successfully")
}

func TestCreateVideoErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"unsupported url", domain.ErrUnsupportedURL, http.StatusBadRequest},
		{"empty playlist", domain.ErrEmptyPlaylist, http.StatusBadRequest},
		{"video not found", domain.ErrVideoNotFound, http.StatusInternalServerError},
		{"provider failure", fmt.Errorf("youtube api error: status 500"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestVideoHandler(&fakeIngestor{err: tt.err})

			rec := httptest.NewRecorder()
			h.Create(rec, createRequest("1", "whatever"))
			require.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestCreateVideoInvalidSessionID(t *testing.T) {
	h := newTestVideoHandler(&fakeIngestor{})

	rec := httptest.NewRecorder()
	h.Create(rec, createRequest("not-a-number", "url"))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
