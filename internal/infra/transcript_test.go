package infra

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTimedTextClientFetchTranscript(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "abc", r.URL.Query().Get("v"))
		require.Equal(t, "en", r.URL.Query().Get("lang"))

		w.Header().Set("Content-Type", "text/xml")
		_, _ = w.Write([]byte(`<?xml version="1.0" encoding="utf-8"?>
<transcript>
  <text start="0" dur="2.5">hello there</text>
  <text start="2.5" dur="3">this is the &amp; transcript</text>
  <text start="5.5" dur="1"> </text>
</transcript>`))
	}))
	t.Cleanup(srv.Close)

	client := NewTimedTextClient(srv.URL)

	text, err := client.FetchTranscript(context.Background(), "abc")
	require.NoError(t, err)
	require.Equal(t, "hello there this is the & transcript", text)
}

func TestTimedTextClientEmptyTranscript(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/xml")
		_, _ = w.Write([]byte(`<transcript></transcript>`))
	}))
	t.Cleanup(srv.Close)

	client := NewTimedTextClient(srv.URL)

	_, err := client.FetchTranscript(context.Background(), "abc")
	require.Error(t, err)
	require.Contains(t, err.Error(), "no transcript")
}
