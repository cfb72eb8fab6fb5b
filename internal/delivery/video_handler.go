package delivery

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/studyhall/internal/domain"
	"github.com/Vovarama1992/studyhall/internal/ports"
	"github.com/go-chi/chi/v5"
)

type VideoHandler struct {
	videos     ports.VideoRepository
	ingest     ports.VideoIngestor
	summarizer ports.VideoSummarizer
	log        *logger.ZapLogger
}

func NewVideoHandler(
	videos ports.VideoRepository,
	ingest ports.VideoIngestor,
	summarizer ports.VideoSummarizer,
	log *logger.ZapLogger,
) *VideoHandler {
	return &VideoHandler{
		videos:     videos,
		ingest:     ingest,
		summarizer: summarizer,
		log:        log,
	}
}

// POST /api/videos/create?sessionId=&youtubeUrl=
func (h *VideoHandler) Create(w http.ResponseWriter, r *http.Request) {
	sessionIDStr := r.URL.Query().Get("sessionId")
	youtubeURL := r.URL.Query().Get("youtubeUrl")

	if sessionIDStr == "" || youtubeURL == "" {
		http.Error(w, "Session ID and YouTube URL are required.", http.StatusBadRequest)
		return
	}

	sessionID, err := strconv.Atoi(sessionIDStr)
	if err != nil {
		http.Error(w, "invalid session id", http.StatusBadRequest)
		return
	}

	result, err := h.ingest.Ingest(r.Context(), sessionID, youtubeURL)
	if err != nil {
		h.log.Log(logger.LogEntry{
			Level:   "error",
			Message: "ingestion failed",
			Error:   err,
			Fields:  map[string]any{"sessionID": sessionID, "youtubeURL": youtubeURL},
		})
		http.Error(w, err.Error(), ingestStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if result.Video != nil {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"message": "Video created successfully",
			"video":   result.Video,
		})
		return
	}

	_ = json.NewEncoder(w).Encode(map[string]string{
		"message": fmt.Sprintf("%d playlist videos created successfully", result.Created),
	})
}

// ingestStatus maps the error taxonomy onto HTTP: input and
// classification problems are the caller's fault, everything else is a
// provider or store failure.
func ingestStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrMissingParameter),
		errors.Is(err, domain.ErrUnsupportedURL),
		errors.Is(err, domain.ErrEmptyPlaylist):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// GET /api/videos?sessionId=
func (h *VideoHandler) List(w http.ResponseWriter, r *http.Request) {
	sessionIDStr := r.URL.Query().Get("sessionId")
	if sessionIDStr == "" {
		http.Error(w, "missing session id", http.StatusBadRequest)
		return
	}

	sessionID, err := strconv.Atoi(sessionIDStr)
	if err != nil {
		http.Error(w, "invalid session id", http.StatusBadRequest)
		return
	}

	videos, err := h.videos.GetVideosBySession(r.Context(), sessionID)
	if err != nil {
		http.Error(w, "failed fetch videos: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"videos": videos,
	})
}

// POST /api/videos/{videoId}/notes
func (h *VideoHandler) SaveNotes(w http.ResponseWriter, r *http.Request) {
	id, ok := videoIDParam(w, r)
	if !ok {
		return
	}

	var req struct {
		Notes string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.videos.UpdateVideoNotes(r.Context(), id, req.Notes); err != nil {
		http.Error(w, "failed save notes: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"message": "Notes saved successfully",
	})
}

// POST /api/videos/{videoId}/summarize?roomID=
func (h *VideoHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	id, ok := videoIDParam(w, r)
	if !ok {
		return
	}

	roomID := r.URL.Query().Get("roomID")

	summary, err := h.summarizer.Summarize(r.Context(), id, roomID)
	if err != nil {
		if errors.Is(err, domain.ErrVideoNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, "failed summarize: "+err.Error(), http.StatusInternalServerError)
		return
	}

	h.log.Log(logger.LogEntry{
		Level:   "info",
		Message: "summary generated",
		Fields:  map[string]any{"videoID": id, "length": len(summary)},
	})

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"summary": summary,
	})
}

func videoIDParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	idStr := chi.URLParam(r, "videoId")
	if idStr == "" {
		http.Error(w, "missing video id", http.StatusBadRequest)
		return 0, false
	}

	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "invalid video id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
