package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/gafur55/interactive-ai-backend/internal/api/handlers"
	"github.com/gafur55/interactive-ai-backend/internal/api/middleware"
	"github.com/gafur55/interactive-ai-backend/internal/avatar"
	"github.com/gafur55/interactive-ai-backend/internal/config"
	"github.com/gafur55/interactive-ai-backend/internal/llm"
	"github.com/gafur55/interactive-ai-backend/internal/speech/stt"
	"github.com/gafur55/interactive-ai-backend/internal/speech/tts"
)

type Router struct {
	mux   *chi.Mux
	cfg   *config.Config
	chat  llm.Provider
	stt   stt.Provider
	tts   tts.Provider
	video avatar.Provider
}

func NewRouter(cfg *config.Config) *Router {
	return &Router{
		mux:   chi.NewRouter(),
		cfg:   cfg,
		chat:  llm.NewOpenAIProvider(llm.OpenAIConfig{APIKey: cfg.OpenAI.APIKey}),
		stt:   stt.NewOpenAISTT(stt.OpenAIConfig{APIKey: cfg.OpenAI.APIKey}),
		tts:   tts.NewElevenLabsTTS(tts.ElevenLabsConfig{APIKey: cfg.ElevenLabs.APIKey}),
		video: avatar.NewHeyGen(avatar.HeyGenConfig{APIKey: cfg.HeyGen.APIKey}),
	}
}

func (rt *Router) Setup() http.Handler {
	r := rt.mux

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS(rt.cfg.CORS.AllowedOrigin))

	health := handlers.NewHealthHandler()
	r.Get("/", health.Home)

	speechH := handlers.NewSpeechHandler(rt.stt, rt.tts, rt.cfg.OpenAI.APIKey, rt.cfg.ElevenLabs.APIKey)
	r.Post("/stt", speechH.Transcribe)
	r.Post("/tts", speechH.Synthesize)

	chatH := handlers.NewChatHandler(rt.chat, rt.cfg.OpenAI.APIKey)
	r.Post("/chat", chatH.Complete)

	avatarH := handlers.NewAvatarHandler(rt.video, rt.cfg.HeyGen.APIKey, "")
	r.Route("/heygen", func(r chi.Router) {
		r.Post("/avatar", avatarH.Generate)
		r.Get("/status/{video_id}", avatarH.Status)
		r.Get("/download/{video_id}", avatarH.Download)
	})

	return r
}
