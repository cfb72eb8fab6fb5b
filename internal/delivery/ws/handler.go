package ws

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/Vovarama1992/studyhall/internal/ports"
)

type startMsg struct {
	VideoID int `json:"videoID"`
}

// SummaryHandler upgrades the connection, joins the requested room and
// optionally kicks off summarization for a video. Generated chunks reach
// the room through the broadcast listener in main.
func SummaryHandler(hub *Hub, summarizer ports.VideoSummarizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		conn, err := Upgrader.Upgrade(w, r, nil)
		if err != nil {
			http.Error(w, "ws upgrade failed", http.StatusBadRequest)
			return
		}

		roomID := r.URL.Query().Get("roomID")
		if roomID == "" {
			roomID = "default"
		}

		// the connection owns its context; closing the socket stops
		// in-flight summarization
		ctx, cancel := context.WithCancel(context.Background())

		hub.Register(roomID, conn)
		defer func() {
			cancel()
			hub.Unregister(roomID, conn)
		}()

		_, raw, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var req startMsg
		if err := json.Unmarshal(raw, &req); err != nil {
			hub.SendToRoom(roomID, []byte(`{"status":"error"}`))
			return
		}

		if req.VideoID > 0 {
			hub.SendToRoom(roomID, []byte(`{"status":"processing_started"}`))

			go func() {
				if _, err := summarizer.Summarize(ctx, req.VideoID, roomID); err != nil {
					log.Printf("[ws] summarize failed room=%s video=%d err=%v", roomID, req.VideoID, err)
					hub.SendToRoom(roomID, []byte(`{"status":"error"}`))
					return
				}

				resp, _ := json.Marshal(map[string]any{
					"status":  "done",
					"videoID": req.VideoID,
				})
				hub.SendToRoom(roomID, resp)
			}()
		}

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}
}
