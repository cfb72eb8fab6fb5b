package domain

import (
	"context"
	"strings"
	"testing"

	"github.com/Vovarama1992/studyhall/internal/models"
	"github.com/Vovarama1992/studyhall/internal/ports"
	"github.com/stretchr/testify/require"
)

type fakeTranscript struct {
	text string
	err  error
}

func (f *fakeTranscript) FetchTranscript(_ context.Context, _ string) (string, error) {
	return f.text, f.err
}

type fakeModel struct {
	summary string
	gotText string
}

func (f *fakeModel) GenerateSummary(_ context.Context, transcript string) (string, error) {
	f.gotText = transcript
	return f.summary, nil
}

func TestSummarizeStreamsChunks(t *testing.T) {
	repo := &fakeVideoRepo{}
	_, err := repo.InsertVideo(context.Background(), &models.Video{
		SessionID:  1,
		YoutubeURL: "https://youtube.com/watch?v=abc",
		Title:      "Lecture",
	})
	require.NoError(t, err)

	summary := strings.Repeat("word ", 100) // 100 words, 3 chunks of 40
	model := &fakeModel{summary: strings.TrimSpace(summary)}
	svc := NewSummaryService(repo, &fakeTranscript{text: "the transcript"}, model)

	got, err := svc.Summarize(context.Background(), 1, "room-1")
	require.NoError(t, err)
	require.Equal(t, model.summary, got)
	require.Equal(t, "the transcript", model.gotText)

	var events []ports.SummaryEvent
	for len(svc.Events()) > 0 {
		events = append(events, <-svc.Events())
	}
	require.Len(t, events, 3)

	var rebuilt []string
	for i, ev := range events {
		require.Equal(t, "room-1", ev.RoomID)
		require.Equal(t, 1, ev.VideoID)
		require.Equal(t, i+1, ev.Seq)
		rebuilt = append(rebuilt, ev.Text)
	}
	require.Equal(t, model.summary, strings.Join(rebuilt, " "))
}

func TestSummarizeUnknownVideo(t *testing.T) {
	svc := NewSummaryService(&fakeVideoRepo{}, &fakeTranscript{}, &fakeModel{})

	_, err := svc.Summarize(context.Background(), 42, "room-1")
	require.ErrorIs(t, err, ErrVideoNotFound)
	require.Empty(t, svc.Events())
}
