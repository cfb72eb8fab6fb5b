package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/studyhall/internal/delivery"
	ws "github.com/Vovarama1992/studyhall/internal/delivery/ws"
	"github.com/Vovarama1992/studyhall/internal/domain"
	"github.com/Vovarama1992/studyhall/internal/infra"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

func main() {

	// LOGGER
	zcore, _ := zap.NewProduction()
	zl := logger.NewZapLogger(zcore.Sugar())

	// ENV
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	youtubeKey := os.Getenv("YOUTUBE_API_KEY")
	if youtubeKey == "" {
		panic("YOUTUBE_API_KEY is not set")
	}

	authURL := os.Getenv("SUPABASE_AUTH_URL")
	if authURL == "" {
		panic("SUPABASE_AUTH_URL is not set")
	}

	authKey := os.Getenv("SUPABASE_ANON_KEY")
	if authKey == "" {
		panic("SUPABASE_ANON_KEY is not set")
	}

	if os.Getenv("GEMINI_API_KEY") == "" {
		log.Println("WARN: GEMINI_API_KEY is not set; summarization will fail")
	}

	// POSTGRES
	ctx := context.Background()

	pool, err := infra.NewPgxPool(ctx)
	if err != nil {
		panic("cannot connect pgxpool: " + err.Error())
	}
	defer pool.Close()

	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := pool.Ping(ctxPing); err != nil {
		panic("postgres ping failed: " + err.Error())
	}

	// REPOS
	sessionRepo := infra.NewPostgresSessionRepo(pool)
	videoRepo := infra.NewPostgresVideoRepo(pool)

	// EXTERNAL CLIENTS
	identity := infra.NewSupabaseIdentity(authURL, authKey)
	youtube := infra.NewYouTubeClient(youtubeKey, "")
	transcripts := infra.NewTimedTextClient("")
	gemini := infra.NewGeminiClient()

	// SERVICES
	ingestService := domain.NewIngestService(videoRepo, youtube, zl)
	summaryService := domain.NewSummaryService(videoRepo, transcripts, gemini)

	// WS HUB
	hub := ws.NewHub()

	// BROADCAST LISTENER
	go func() {
		for ev := range summaryService.Events() {

			type wsChunk struct {
				VideoID int    `json:"videoId"`
				Seq     int    `json:"seq"`
				Text    string `json:"text"`
			}

			payload, err := json.Marshal(wsChunk{
				VideoID: ev.VideoID,
				Seq:     ev.Seq,
				Text:    ev.Text,
			})
			if err != nil {
				log.Printf("[SEND][ERR] json marshal failed: %v", err)
				continue
			}

			hub.SendToRoom(ev.RoomID, payload)
		}
	}()

	// HANDLERS
	authHandler := delivery.NewAuthHandler(identity, zl)
	sessionHandler := delivery.NewSessionHandler(sessionRepo, zl)
	videoHandler := delivery.NewVideoHandler(videoRepo, ingestService, summaryService, zl)

	// ROUTER
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}))

	delivery.RegisterRoutes(r, authHandler, identity, sessionHandler, videoHandler)

	r.Get("/ws", ws.SummaryHandler(hub, summaryService))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: "server started",
		Fields:  map[string]any{"port": port},
	})

	if err := http.ListenAndServe(":"+port, r); err != nil {
		zl.Log(logger.LogEntry{
			Level:   "error",
			Message: "server crashed",
			Error:   err,
		})
	}
}
