package infra

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Vovarama1992/studyhall/internal/domain"
	"github.com/stretchr/testify/require"
)

func newYouTubeTestServer(t *testing.T) (*httptest.Server, *int) {
	t.Helper()
	calls := 0

	mux := http.NewServeMux()

	mux.HandleFunc("/videos", func(w http.ResponseWriter, r *http.Request) {
		calls++
		require.Equal(t, "test-key", r.URL.Query().Get("key"))

		id := r.URL.Query().Get("id")
		part := r.URL.Query().Get("part")

		if id == "missing" {
			_ = json.NewEncoder(w).Encode(map[string]any{"items": []any{}})
			return
		}

		switch part {
		case "snippet":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"items": []map[string]any{
					{"snippet": map[string]any{"title": "Title of " + id}},
				},
			})
		case "contentDetails":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"items": []map[string]any{
					{"contentDetails": map[string]any{"duration": "PT4M13S"}},
				},
			})
		default:
			t.Errorf("unexpected part %q", part)
		}
	})

	mux.HandleFunc("/playlistItems", func(w http.ResponseWriter, r *http.Request) {
		calls++
		require.Equal(t, "50", r.URL.Query().Get("maxResults"))
		require.Equal(t, "snippet,contentDetails", r.URL.Query().Get("part"))

		switch r.URL.Query().Get("pageToken") {
		case "":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"items": []map[string]any{
					{
						"snippet":        map[string]any{"title": "First"},
						"contentDetails": map[string]any{"videoId": "v1"},
					},
					{
						"snippet":        map[string]any{"title": "Second"},
						"contentDetails": map[string]any{"videoId": "v2"},
					},
				},
				"nextPageToken": "tok-2",
			})
		case "tok-2":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"items": []map[string]any{
					{
						"snippet":        map[string]any{"title": "Third"},
						"contentDetails": map[string]any{"videoId": "v3"},
					},
				},
			})
		default:
			t.Errorf("unexpected pageToken %q", r.URL.Query().Get("pageToken"))
		}
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &calls
}

func TestYouTubeClientVideoMetadata(t *testing.T) {
	srv, _ := newYouTubeTestServer(t)
	client := NewYouTubeClient("test-key", srv.URL)

	title, err := client.VideoTitle(context.Background(), "abc")
	require.NoError(t, err)
	require.Equal(t, "Title of abc", title)

	raw, err := client.VideoDuration(context.Background(), "abc")
	require.NoError(t, err)
	require.Equal(t, "PT4M13S", raw)
}

func TestYouTubeClientVideoNotFound(t *testing.T) {
	srv, _ := newYouTubeTestServer(t)
	client := NewYouTubeClient("test-key", srv.URL)

	_, err := client.VideoTitle(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrVideoNotFound)

	_, err = client.VideoDuration(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrVideoNotFound)
}

func TestYouTubeClientPlaylistPagination(t *testing.T) {
	srv, calls := newYouTubeTestServer(t)
	client := NewYouTubeClient("test-key", srv.URL)

	page1, err := client.PlaylistPage(context.Background(), "PL123", "")
	require.NoError(t, err)
	require.Len(t, page1.Items, 2)
	require.Equal(t, "v1", page1.Items[0].VideoID)
	require.Equal(t, "First", page1.Items[0].Title)
	require.Equal(t, "tok-2", page1.NextPageToken)

	page2, err := client.PlaylistPage(context.Background(), "PL123", page1.NextPageToken)
	require.NoError(t, err)
	require.Len(t, page2.Items, 1)
	require.Equal(t, "", page2.NextPageToken)

	require.Equal(t, 2, *calls)
}

func TestYouTubeClientAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "quota exceeded"},
		})
	}))
	t.Cleanup(srv.Close)

	client := NewYouTubeClient("test-key", srv.URL)
	_, err := client.VideoTitle(context.Background(), "abc")
	require.Error(t, err)
	require.Contains(t, err.Error(), "quota exceeded")
}
