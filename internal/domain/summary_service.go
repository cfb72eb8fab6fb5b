package domain

import (
	"context"
	"strings"

	"github.com/Vovarama1992/studyhall/internal/ports"
)

// summaryChunkWords is how many words of generated text go into one
// websocket event, so the frontend can render the summary as it types.
const summaryChunkWords = 40

// SummaryService fetches a video transcript, asks the generative model
// for a summary and streams the result in chunks to the caller's
// websocket room.
type SummaryService struct {
	videos     ports.VideoRepository
	transcript ports.TranscriptService
	model      ports.GenerativeModel
	events     chan ports.SummaryEvent
}

func NewSummaryService(
	videos ports.VideoRepository,
	transcript ports.TranscriptService,
	model ports.GenerativeModel,
) *SummaryService {
	return &SummaryService{
		videos:     videos,
		transcript: transcript,
		model:      model,
		events:     make(chan ports.SummaryEvent, 100),
	}
}

func (s *SummaryService) Events() <-chan ports.SummaryEvent { return s.events }

func (s *SummaryService) Summarize(ctx context.Context, videoID int, roomID string) (string, error) {
	video, err := s.videos.GetVideoByID(ctx, videoID)
	if err != nil {
		return "", err
	}
	if video == nil {
		return "", ErrVideoNotFound
	}

	cls, err := ClassifyURL(video.YoutubeURL)
	if err != nil {
		return "", err
	}

	text, err := s.transcript.FetchTranscript(ctx, cls.ID)
	if err != nil {
		return "", err
	}

	summary, err := s.model.GenerateSummary(ctx, text)
	if err != nil {
		return "", err
	}

	for i, chunk := range splitWords(summary, summaryChunkWords) {
		s.events <- ports.SummaryEvent{
			RoomID:  roomID,
			VideoID: videoID,
			Seq:     i + 1,
			Text:    chunk,
		}
	}

	return summary, nil
}

// splitWords cuts text into groups of at most n words, keeping word
// boundaries intact.
func splitWords(text string, n int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var chunks []string
	for start := 0; start < len(words); start += n {
		end := start + n
		if end > len(words) {
			end = len(words)
		}
		chunks = append(chunks, strings.Join(words[start:end], " "))
	}
	return chunks
}
