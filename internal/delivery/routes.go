package delivery

import (
	"github.com/Vovarama1992/studyhall/internal/ports"
	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(
	r chi.Router,
	hAuth *AuthHandler,
	identity ports.IdentityService,
	hSession *SessionHandler,
	hVideo *VideoHandler,
) {

	// auth is public; the handlers read the cookie themselves
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/signin", hAuth.SignIn)
		r.Post("/signup", hAuth.SignUp)
		r.Post("/forgot-password", hAuth.ForgotPassword)
		r.Post("/signout", hAuth.SignOut)
		r.Get("/user", hAuth.GetUser)
	})

	r.Route("/api/sessions", func(r chi.Router) {
		r.Use(AuthMiddleware(identity))
		r.Post("/create", hSession.Create)
		r.Get("/sessions", hSession.List)
		r.Put("/{sessionId}", hSession.Update)
		r.Delete("/{sessionId}", hSession.Delete)
		r.Post("/{sessionId}/notes", hSession.SaveNotes)
		r.Get("/{sessionId}/notes", hSession.GetNotes)
	})

	r.Route("/api/videos", func(r chi.Router) {
		r.Use(AuthMiddleware(identity))
		r.Post("/create", hVideo.Create)
		r.Get("/", hVideo.List)
		r.Post("/{videoId}/notes", hVideo.SaveNotes)
		r.Post("/{videoId}/summarize", hVideo.Summarize)
	})
}
