package delivery

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/studyhall/internal/models"
	"github.com/Vovarama1992/studyhall/internal/ports"
	"github.com/go-chi/chi/v5"
)

type SessionHandler struct {
	sessions ports.SessionRepository
	log      *logger.ZapLogger
}

func NewSessionHandler(sessions ports.SessionRepository, log *logger.ZapLogger) *SessionHandler {
	return &SessionHandler{
		sessions: sessions,
		log:      log,
	}
}

// POST /api/sessions/create
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		http.Error(w, "Please log in or sign up first.", http.StatusUnauthorized)
		return
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "Session name is required.", http.StatusBadRequest)
		return
	}

	session, err := h.sessions.InsertSession(r.Context(), &models.Session{
		UserID: user.ID.String(),
		Name:   req.Name,
	})
	if err != nil {
		http.Error(w, "failed create session: "+err.Error(), http.StatusInternalServerError)
		return
	}

	h.log.Log(logger.LogEntry{
		Level:   "info",
		Message: "session created",
		Fields:  map[string]any{"sessionID": session.ID, "userID": user.ID.String()},
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"message": "Session created successfully",
		"session": session,
	})
}

// GET /api/sessions/sessions
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		http.Error(w, "Please log in or sign up first.", http.StatusUnauthorized)
		return
	}

	sessions, err := h.sessions.GetSessionsByUser(r.Context(), user.ID.String())
	if err != nil {
		http.Error(w, "failed fetch sessions: "+err.Error(), http.StatusInternalServerError)
		return
	}

	if len(sessions) == 0 {
		http.Error(w, "No sessions found for this user.", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"sessions": sessions,
	})
}

// PUT /api/sessions/{sessionId}
func (h *SessionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionIDParam(w, r)
	if !ok {
		return
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json: "+err.Error(), http.StatusBadRequest)
		return
	}

	session, err := h.sessions.UpdateSessionName(r.Context(), id, req.Name)
	if err != nil {
		http.Error(w, "failed update session: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if session == nil {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"message": "Session updated successfully",
		"session": session,
	})
}

// DELETE /api/sessions/{sessionId}
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionIDParam(w, r)
	if !ok {
		return
	}

	if err := h.sessions.DeleteSession(r.Context(), id); err != nil {
		http.Error(w, "failed delete session: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"message": "Session deleted successfully",
	})
}

// POST /api/sessions/{sessionId}/notes
func (h *SessionHandler) SaveNotes(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionIDParam(w, r)
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

	if err := h.sessions.UpdateSessionNotes(r.Context(), id, req.Notes); err != nil {
		http.Error(w, "failed save notes: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"message": "Notes saved successfully",
	})
}

// GET /api/sessions/{sessionId}/notes
func (h *SessionHandler) GetNotes(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionIDParam(w, r)
	if !ok {
		return
	}

	notes, err := h.sessions.GetSessionNotes(r.Context(), id)
	if err != nil {
		http.Error(w, "failed get notes: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"notes": notes,
	})
}

func sessionIDParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	idStr := chi.URLParam(r, "sessionId")
	if idStr == "" {
		http.Error(w, "missing session id", http.StatusBadRequest)
		return 0, false
	}

	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "invalid session id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
